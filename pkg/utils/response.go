package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "refill-system/pkg/errors"
	"refill-system/pkg/types"
)

type HttpResponse struct {
	Status     bool              `json:"status"`
	Body       interface{}       `json:"body,omitempty"`
	Message    string            `json:"message"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ListResponse(ctx echo.Context, body interface{}, message string, pg types.Pagination) error {
	return ctx.JSON(http.StatusOK, &HttpResponse{
		Status:     true,
		Body:       body,
		Message:    message,
		Pagination: &pg,
	})
}

// ErrorResponse maps the error to an HTTP status, logs the internal cause
// and returns only the user-facing message to the client.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusFor(err)
	message := err.Error()

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		message = httpErr.Message
		logger.Error("request failed",
			zap.Int("status", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
			zap.Any("context", httpErr.Context),
		)
	} else if code >= http.StatusInternalServerError {
		message = "internal server error"
		logger.Error("request failed", zap.Int("status", code), zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
