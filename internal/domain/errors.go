package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError is an error raised while building the ladder page, tagged with a
// code from pkg/errcodes.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode returns the code of the outermost AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}
