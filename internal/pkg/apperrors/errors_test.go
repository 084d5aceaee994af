package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "TEST_CODE",
				Message: "This is a test error",
			},
			expected: "[TEST_CODE] This is a test error",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "This is a test error without code",
			},
			expected: "This is a test error without code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying error")
	appError := &AppError{
		Code:    "TEST_CODE",
		Message: "This is a test error",
		Cause:   cause,
	}

	if unwrapped := appError.Unwrap(); unwrapped != cause {
		t.Errorf("expected %v, got %v", cause, unwrapped)
	}
}

func TestWrapEncodingError(t *testing.T) {
	cause := errors.New("proto: cannot parse invalid wire-format data")
	err := WrapEncodingError(cause, "failed to encode response")

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != CodeInternal {
		t.Errorf("expected code %q, got %q", CodeInternal, appErr.Code)
	}
	if !errors.Is(err, ErrEncoding) {
		t.Error("expected error to wrap ErrEncoding")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to wrap the original cause")
	}
}

func TestNewRateLimitError(t *testing.T) {
	err := NewRateLimitError()

	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected error to wrap ErrRateLimited, got %v", err)
	}
	if err.Code != CodeRateLimited {
		t.Errorf("expected code %q, got %q", CodeRateLimited, err.Code)
	}
	if err.Error() != "[RL/429] Rate limit exceeded" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
