package httputil

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jwalitptl/salon-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response with the HTTP status derived
// from the application error code.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	code := 0

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		status = statusOf(appErr.Code)
		message = appErr.Message
		code = int(appErr.Code)
	}

	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func statusOf(code errors.ErrorCode) int {
	switch code {
	case errors.ErrMissingCredentials, errors.ErrInvalidInput,
		errors.ErrMissingField, errors.ErrInvalidPrice:
		return http.StatusBadRequest
	case errors.ErrUnknownPhone, errors.ErrWrongPassword:
		return http.StatusUnauthorized
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrStoreUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
