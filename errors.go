package fieldreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for report generation failures.
var (
	// ErrBlockTooLarge is returned when an atomic block is taller than the
	// content area of a single page.
	ErrBlockTooLarge = errors.New("fieldreport: block too large for one page")
	// ErrInvalidGenerationSequence is returned when a report is requested
	// with input that cannot produce it, before any drawing begins.
	ErrInvalidGenerationSequence = errors.New("fieldreport: invalid generation sequence")
	// ErrImageDecode is returned when image bytes cannot be decoded.
	ErrImageDecode = errors.New("fieldreport: image cannot be decoded")
)

// LayoutError represents an error that occurred during a specific layout
// operation. It wraps an underlying error and includes the operation name.
type LayoutError struct {
	Op  string // operation name, e.g. "EnsureSpace", "Compose"
	Err error  // underlying error
}

func (e *LayoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fieldreport.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fieldreport.%s: unknown error", e.Op)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// NewLayoutError creates a LayoutError wrapping err with operation context.
func NewLayoutError(op string, err error) *LayoutError {
	return &LayoutError{Op: op, Err: err}
}
