package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrOutOfRange = errors.New("position out of range")

	ErrNotAcceptable = errors.New("no acceptable representation")

	ErrEncoding = errors.New("encoding failed")

	ErrRateLimited = errors.New("rate limit exceeded")
)

// Codes carried in error bodies. CodeNotFound is also the code of the
// structured not-found error returned inside a successful response.
const (
	CodeNotFound        = "NF/404"
	CodeInvalidArgument = "BR/400"
	CodeNotAcceptable   = "NA/406"
	CodeRateLimited     = "RL/429"
	CodeInternal        = "IE/500"
)

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapEncodingError(cause error, message string) error {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrEncoding, cause),
	}
}

// NewRateLimitError describes a request rejected by the rate limiter.
func NewRateLimitError() *AppError {
	return &AppError{
		Code:    CodeRateLimited,
		Message: "Rate limit exceeded",
		Cause:   ErrRateLimited,
	}
}
