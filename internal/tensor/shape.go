package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// Rank-0 shapes are not supported: every tensor has at least one dimension.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and all dimensions > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return Dimensionf("shape must have at least 1 dimension")
	}
	for i, dim := range s {
		if dim <= 0 {
			return Dimensionf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
//  1. Compare shapes element-wise from right to left
//  2. Dimensions are compatible if they are equal or one of them is 1
//  3. Missing leading dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5)    + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → *BroadcastError{Dim: 1, Size1: 4, Size2: 5}
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim := alignedDim(a, i, maxLen)
		bDim := alignedDim(b, i, maxLen)

		switch {
		case aDim == bDim:
			result[i] = aDim
		case aDim == 1:
			result[i] = bDim
		case bDim == 1:
			result[i] = aDim
		default:
			return nil, &BroadcastError{Dim: i, Size1: aDim, Size2: bDim}
		}
	}

	return result, nil
}

// alignedDim returns the size of s at position i of a right-aligned shape of
// rank outRank, or 1 when s has no dimension there.
func alignedDim(s Shape, i, outRank int) int {
	offset := outRank - len(s)
	if i < offset {
		return 1
	}
	return s[i-offset]
}
