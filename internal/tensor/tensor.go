// Package tensor implements a dense, row-major float32 tensor with
// NumPy-style broadcasting arithmetic, matrix multiplication, reductions,
// and elementwise activations.
//
// Tensors own their buffers. Every operation allocates a fresh result; nothing
// aliases an operand's storage.
package tensor

import (
	"fmt"
	"strings"

	"github.com/born-ml/neuroncore/internal/prng"
)

// Tensor is a dense float32 buffer with a fixed shape.
//
// Invariant: len(data) == shape.NumElements(), and shape has rank >= 1.
type Tensor struct {
	data    []float32
	shape   Shape
	strides []int
}

// New creates a tensor that takes ownership of data.
//
// Fails with *DimensionError for an empty shape or a non-positive dimension,
// and with *ShapeMismatchError when len(data) does not match the shape.
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	expected := shape.NumElements()
	if len(data) != expected {
		return nil, &ShapeMismatchError{Expected: expected, Got: len(data)}
	}

	shape = shape.Clone()
	return &Tensor{
		data:    data,
		shape:   shape,
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a copy of data.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	buf := make([]float32, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float32) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]float32, shape.NumElements())
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return New(data, shape)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape) (*Tensor, error) {
	return Full(shape, 0)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// ZerosLike creates a zero-filled tensor with the shape of other.
func ZerosLike(other *Tensor) *Tensor {
	return mustFull(other.shape, 0)
}

// OnesLike creates a tensor of ones with the shape of other.
func OnesLike(other *Tensor) *Tensor {
	return mustFull(other.shape, 1)
}

// mustFull is Full for shapes taken from an existing tensor, which are valid
// by construction.
func mustFull(shape Shape, value float32) *Tensor {
	t, err := Full(shape, value)
	if err != nil {
		panic(fmt.Sprintf("tensor: shape %v of existing tensor rejected: %v", shape, err))
	}
	return t
}

// Random creates a tensor with values drawn uniformly from [-1, 1) by a
// deterministic xorshift generator seeded with seed.
func Random(shape Shape, seed uint32) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]float32, shape.NumElements())
	prng.New(seed).Fill(data, -1, 1)
	return New(data, shape)
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	s := make([]int, len(t.strides))
	copy(s, t.strides)
	return s
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns a copy of the tensor's elements in row-major order.
func (t *Tensor) Data() []float32 {
	out := make([]float32, len(t.data))
	copy(out, t.data)
	return out
}

// DataMut returns the tensor's backing buffer for in-place updates.
// The shape cannot change through it.
func (t *Tensor) DataMut() []float32 {
	return t.data
}

// At returns the element at the given coordinate.
func (t *Tensor) At(idx ...int) (float32, error) {
	flat, err := RavelIndex(idx, t.shape)
	if err != nil {
		return 0, err
	}
	return t.data[flat], nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{
		data:    data,
		shape:   t.shape.Clone(),
		strides: t.Strides(),
	}
}

// Equal reports whether both tensors have the same shape and identical
// elements. NaN never equals NaN.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String formats the tensor as Tensor(shape=[...], data=[...]).
func (t *Tensor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(shape=%v, data=[", t.shape)
	for i, v := range t.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteString("])")
	return b.String()
}
