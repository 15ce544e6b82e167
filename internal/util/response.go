package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data endpoints always answer HTTP 200 with the same envelope; the
// error_message field tells success from failure.

// JSONRows wraps data rows in the response envelope.
func JSONRows(c *gin.Context, rows []map[string]interface{}) {
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{
		"error_message": "",
		"data":          rows,
	})
}

// JSONError reports a failure in the response envelope with an empty
// data array.
func JSONError(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"error_message": msg,
		"data":          []map[string]interface{}{},
	})
}
