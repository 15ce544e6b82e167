package middleware

import (
	"time"

	"github.com/andidevel/mireis/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger emits one structured log line per request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).Milliseconds(),
			"ip":       c.ClientIP(),
		}
		if user, ok := session.CurrentUser(c); ok {
			fields["user_id"] = user.ID
		}

		log.WithFields(fields).Info("request")
	}
}
