package fee

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("fee record not found")
	ErrStudentNotFound = errors.New("student not found")
	// ErrReceiptConflict means another fee already holds the allocated
	// receipt number. Nothing was written; the caller may retry.
	ErrReceiptConflict = errors.New("receipt number already in use, retry the request")
)

// ValidationError is a request the ledger refuses before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
