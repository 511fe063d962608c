package middleware

import (
	"log"
	"net/http"

	"discussion-board/helper"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the shared error stage. Handlers forward failures with
// c.Error and abort; once the chain unwinds this renders the last error with
// the status the helper maps it to.
func ErrorHandler(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := h.GetStatusCode(err)
		log.Printf("[%s] %s %s -> %d: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, status, err)

		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Something went wrong on our side."
		}

		c.HTML(status, "error", gin.H{
			"page":        "error",
			"title":       http.StatusText(status),
			"status":      status,
			"message":     message,
			"currentUser": GetCurrentUser(c),
		})
	}
}
