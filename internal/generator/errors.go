package generator

import (
	"errors"
	"fmt"
)

// Common generation errors
var (
	// ErrEmptyBatch is returned when a batch allocator receives no ids to
	// allocate.
	ErrEmptyBatch = errors.New("batch contains no ids")

	// ErrBatchSizeMismatch is returned when the inputs of one batch do not
	// line up, e.g. a payment batch with unequal id and summary counts.
	ErrBatchSizeMismatch = errors.New("mismatched batch input sizes")

	// ErrNoActiveCompanies is returned when an invoice batch has no company
	// subset to assign invoices to.
	ErrNoActiveCompanies = errors.New("no active companies for period")

	// ErrInvalidAmountBounds is returned when the invoice amount range is
	// reversed or non-positive.
	ErrInvalidAmountBounds = errors.New("invalid invoice amount bounds")

	// ErrInvalidConfiguration is returned when the generator configuration
	// fails validation.
	ErrInvalidConfiguration = errors.New("invalid generator configuration")
)

// GenerationError wraps errors with context about which generation operation
// failed.
type GenerationError struct {
	// Op is the operation that failed (e.g., "InvoiceBatch", "GeneratePayments").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("generator: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("generator: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is chains.
func (e *GenerationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapGenerationError wraps an error as a GenerationError if it isn't
// already one.
func WrapGenerationError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return err
	}

	return &GenerationError{Op: op, Err: err, Details: details}
}
