package usecase

import (
	"fmt"

	"farmlink/internal/errors"
)

// retryableError marks a failure the message broker should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable wraps err so that IsRetryable reports true
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
