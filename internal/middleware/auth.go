package middleware

import (
	"net/http"

	"github.com/andidevel/mireis/internal/session"
	"github.com/andidevel/mireis/internal/util"

	"github.com/gin-gonic/gin"
)

// LoginRequiredMessage is shown (or returned) when an anonymous client
// hits a guarded route.
const LoginRequiredMessage = "You must be logged in to access this resource"

// RequireUser guards page handlers: anonymous requests get a warning
// notice and a redirect to the index page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); !ok {
			session.AddNotice(c, session.LevelWarning, LoginRequiredMessage+"!")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserJSON guards data handlers: anonymous requests get the JSON
// envelope error instead of a redirect.
func RequireUserJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentUser(c); !ok {
			util.JSONError(c, LoginRequiredMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
