package tensor

import "math"

// Add returns t + other with broadcasting.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, func(a, b float32) float32 { return a + b })
}

// Sub returns t - other with broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, func(a, b float32) float32 { return a - b })
}

// Mul returns t * other (element-wise) with broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, func(a, b float32) float32 { return a * b })
}

// Div returns t / other (element-wise) with broadcasting.
// A zero divisor produces NaN instead of an error.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.elementwise(other, func(a, b float32) float32 {
		if b == 0 {
			return float32(math.NaN())
		}
		return a / b
	})
}

// elementwise applies fn over the broadcast of t and other.
//
// Each output coordinate is mapped independently into both operands: size-1
// operand dimensions always read index 0 and missing leading dimensions are
// skipped.
func (t *Tensor) elementwise(other *Tensor, fn func(a, b float32) float32) (*Tensor, error) {
	outShape, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		return nil, err
	}

	outStrides := outShape.ComputeStrides()
	out := make([]float32, outShape.NumElements())
	for flat := range out {
		coord := unravel(flat, outStrides)
		out[flat] = fn(t.data[t.broadcastOffset(coord)], other.data[other.broadcastOffset(coord)])
	}

	return New(out, outShape)
}

// broadcastOffset maps a coordinate of a broadcast output shape into t's
// flat buffer. The coordinate must come from a shape that t broadcasts to.
func (t *Tensor) broadcastOffset(outCoord []int) int {
	offset := len(outCoord) - len(t.shape)
	flat := 0
	for d, size := range t.shape {
		if size == 1 {
			continue
		}
		flat += outCoord[d+offset] * t.strides[d]
	}
	return flat
}

// Map returns a new tensor with fn applied to every element.
func (t *Tensor) Map(fn func(float32) float32) *Tensor {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}
	return out
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return t.Map(func(v float32) float32 { return -v })
}

// Scale returns t * factor.
func (t *Tensor) Scale(factor float32) *Tensor {
	return t.Map(func(v float32) float32 { return v * factor })
}
