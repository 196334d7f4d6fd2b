package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the shape of every failed response.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageBody is returned by operations that have no row to show.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as the raw response body.
func JSON[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// List writes rows as a JSON array, never null.
func List[T any](ctx *gin.Context, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	ctx.JSON(http.StatusOK, rows)
}

func Message(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, MessageBody{Message: message})
}

// Error writes {"error": message} and aborts the handler chain.
func Error(ctx *gin.Context, status int, message string, details map[string]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: message, Details: details})
}
