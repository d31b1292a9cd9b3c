package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-voice-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response with a status derived
// from the application error code.
func RespondWithError(c *gin.Context, err error) {
	code := errors.CodeOf(err)

	c.JSON(statusFor(code), Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: errors.MessageOf(err),
		},
	})
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrInvalidInput:
		return http.StatusBadRequest
	case errors.ErrUnknownDoctor, errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrDoctorNotWorking, errors.ErrSlotUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
