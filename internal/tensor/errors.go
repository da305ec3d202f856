package tensor

import (
	"errors"
	"fmt"
)

// Error kinds. Every detailed error below unwraps to one of these so callers
// can match with errors.Is.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrDimension        = errors.New("dimension error")
	ErrInputCount       = errors.New("input count error")
	ErrBroadcast        = errors.New("broadcast error")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrIndex            = errors.New("index error")
)

// ShapeMismatchError reports a buffer whose length differs from the element
// count implied by a shape.
type ShapeMismatchError struct {
	Expected int // Element count implied by the shape
	Got      int // Element count actually supplied
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: expected %d elements, got %d", e.Expected, e.Got)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// DimensionError reports a rank or axis violation.
type DimensionError struct {
	Msg string
}

// Error implements the error interface.
func (e *DimensionError) Error() string { return "dimension error: " + e.Msg }

// Unwrap returns ErrDimension.
func (e *DimensionError) Unwrap() error { return ErrDimension }

// InputCountError reports an operation invoked with the wrong number of operands.
type InputCountError struct {
	Expected int
	Got      int
}

// Error implements the error interface.
func (e *InputCountError) Error() string {
	return fmt.Sprintf("input count error: expected %d, got %d", e.Expected, e.Got)
}

// Unwrap returns ErrInputCount.
func (e *InputCountError) Unwrap() error { return ErrInputCount }

// BroadcastError reports two shapes that cannot be broadcast together.
// Dim is the offending index in the right-aligned output shape.
type BroadcastError struct {
	Dim   int
	Size1 int
	Size2 int
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("broadcast error at dim %d: %d vs %d", e.Dim, e.Size1, e.Size2)
}

// Unwrap returns ErrBroadcast.
func (e *BroadcastError) Unwrap() error { return ErrBroadcast }

// InvalidOperationError reports a violated operation contract.
type InvalidOperationError struct {
	Msg string
}

// Error implements the error interface.
func (e *InvalidOperationError) Error() string { return "invalid operation: " + e.Msg }

// Unwrap returns ErrInvalidOperation.
func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// IndexError reports an out-of-range node or element index.
type IndexError struct {
	Msg string
}

// Error implements the error interface.
func (e *IndexError) Error() string { return "index error: " + e.Msg }

// Unwrap returns ErrIndex.
func (e *IndexError) Unwrap() error { return ErrIndex }

// Dimensionf builds a *DimensionError with a formatted message.
func Dimensionf(format string, args ...any) error {
	return &DimensionError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidOperationf builds an *InvalidOperationError with a formatted message.
func InvalidOperationf(format string, args ...any) error {
	return &InvalidOperationError{Msg: fmt.Sprintf(format, args...)}
}

// Indexf builds an *IndexError with a formatted message.
func Indexf(format string, args ...any) error {
	return &IndexError{Msg: fmt.Sprintf(format, args...)}
}
