package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

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

// Common error codes
const (
	ErrMissingCredentials ErrorCode = iota + 1000
	ErrUnknownPhone
	ErrWrongPassword
	ErrInvalidInput
	ErrMissingField
	ErrInvalidPrice
	ErrNotFound
	ErrStoreUnavailable
)

// Error constructors
func MissingCredentials() *AppError {
	return &AppError{
		Code:    ErrMissingCredentials,
		Message: "phone and password are required",
	}
}

func UnknownPhone() *AppError {
	return &AppError{
		Code:    ErrUnknownPhone,
		Message: "phone number is not registered",
	}
}

func WrongPassword() *AppError {
	return &AppError{
		Code:    ErrWrongPassword,
		Message: "password is incorrect",
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    ErrInvalidInput,
		Message: message,
	}
}

func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrMissingField,
		Message: fmt.Sprintf("%s must not be empty", field),
	}
}

func InvalidPrice() *AppError {
	return &AppError{
		Code:    ErrInvalidPrice,
		Message: "price must be a positive number",
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func StoreUnavailable(err error) *AppError {
	return &AppError{
		Code:    ErrStoreUnavailable,
		Message: "document store unavailable",
		Err:     err,
	}
}

// CodeOf extracts the application error code from err, or zero if err is
// not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
