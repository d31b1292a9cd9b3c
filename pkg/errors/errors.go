package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	ErrUnknownDoctor    ErrorCode = "UNKNOWN_DOCTOR"
	ErrDoctorNotWorking ErrorCode = "DOCTOR_NOT_WORKING"
	ErrSlotUnavailable  ErrorCode = "SLOT_UNAVAILABLE"
	ErrInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrInternal         ErrorCode = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from err, or ErrInternal for plain errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// MessageOf extracts the caller-facing message from err. Plain errors map
// to a generic message so internals never leak into a response.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// Error constructors
func UnknownDoctor(name string) *AppError {
	return &AppError{
		Code:    ErrUnknownDoctor,
		Message: fmt.Sprintf("unknown doctor %q", name),
	}
}

func DoctorNotWorking(name, day string) *AppError {
	return &AppError{
		Code:    ErrDoctorNotWorking,
		Message: fmt.Sprintf("%s does not work on %s", name, day),
	}
}

func SlotUnavailable(message string) *AppError {
	return &AppError{
		Code:    ErrSlotUnavailable,
		Message: message,
	}
}

func InvalidInput(message string, err error) *AppError {
	return &AppError{
		Code:    ErrInvalidInput,
		Message: message,
		Err:     err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}
