package tensor

import "math"

// ReLU applies max(x, 0) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return t.Map(func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Log applies the natural logarithm element-wise.
// Non-positive inputs follow IEEE semantics (-Inf for 0, NaN for negatives).
func (t *Tensor) Log() *Tensor {
	return t.Map(func(v float32) float32 { return float32(math.Log(float64(v))) })
}

// Exp applies e^x element-wise.
func (t *Tensor) Exp() *Tensor {
	return t.Map(func(v float32) float32 { return float32(math.Exp(float64(v))) })
}
