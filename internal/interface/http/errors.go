package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/pkg/helpers"
	"github.com/oksasatya/postboard/pkg/response"
	"github.com/oksasatya/postboard/pkg/validation"
)

const msgUnexpected = "An unexpected error occurred"

// statusFor maps a store failure to its HTTP status and client message.
func statusFor(err error) (int, string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrUniqueViolation):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrForeignKeyViolation), errors.Is(err, repository.ErrValidation):
		status = http.StatusBadRequest
	default:
		return status, msgUnexpected
	}
	var ce *repository.ConstraintError
	if errors.As(err, &ce) {
		return status, ce.Message
	}
	return status, err.Error()
}

// fail renders err. Server-side failures are logged with the request id and
// never leak the cause to the client.
func fail(c *gin.Context, logger *logrus.Logger, op string, err error) {
	status, msg := statusFor(err)
	record(op, status)
	if status >= http.StatusInternalServerError && logger != nil {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"op":         op,
		})
	}
	var details map[string]string
	var ce *repository.ConstraintError
	if status == http.StatusBadRequest && errors.As(err, &ce) && ce.Field != "" {
		details = map[string]string{ce.Field: ce.Message}
	}
	response.Error(c, status, msg, details)
}

// badPayload renders a binding failure.
func badPayload(c *gin.Context, op string, err error) {
	record(op, http.StatusBadRequest)
	response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// immutableFields are accepted in update bodies and ignored.
type immutableFields struct {
	ID        any `json:"id"`
	UserID    any `json:"userId"`
	PostID    any `json:"postId"`
	CreatedAt any `json:"createdAt"`
}
