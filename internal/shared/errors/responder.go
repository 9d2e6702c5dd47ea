package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the failure envelope with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, NewError(msg))
}

// RespondMessage writes a 200 confirmation envelope.
func RespondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, NewMessage(msg))
}

// StatusMapper translates a service error into an HTTP status and message.
// It reports false when it does not recognize the error.
type StatusMapper func(err error) (int, string, bool)

// RespondServiceError runs the mappers in order and falls back to a 500
// envelope for unrecognized errors, so infrastructure failures are never
// reported as client mistakes.
func RespondServiceError(c *gin.Context, err error, mappers ...StatusMapper) {
	for _, mapper := range mappers {
		if status, msg, ok := mapper(err); ok {
			RespondError(c, status, msg)
			return
		}
	}
	RespondError(c, http.StatusInternalServerError, err.Error())
}
