package ops

import (
	"math"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// SoftmaxOp represents the softmax operation along the last dimension.
//
// Forward (for each row):
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The max-shifting ensures numerical stability (prevents overflow).
//
// Backward:
//
//	∂L/∂x_j = softmax_j * (∂L/∂softmax_j - Σ_i (∂L/∂softmax_i * softmax_i))
//
// Rank-1 inputs are a single row; rank-2 inputs are processed row-wise.
type SoftmaxOp struct{}

// Name returns "softmax".
func (SoftmaxOp) Name() string { return "softmax" }

// Arity returns 1.
func (SoftmaxOp) Arity() int { return 1 }

// Forward computes the row-wise softmax.
func (SoftmaxOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	x := inputs[0]
	rows, cols, err := softmaxRows(x)
	if err != nil {
		return nil, err
	}

	out := x.Clone()
	data := out.DataMut()
	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]

		maxVal := float32(math.Inf(-1))
		for _, v := range row {
			maxVal = max(maxVal, v)
		}

		var sum float32
		for c, v := range row {
			e := float32(math.Exp(float64(v - maxVal)))
			row[c] = e
			sum += e
		}
		for c := range row {
			row[c] /= sum
		}
	}
	return out, nil
}

// Backward computes the Jacobian-vector product y ⊙ (g − Σ g⊙y) per row.
func (op SoftmaxOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	x := inputs[0]
	if !x.Shape().Equal(gradOutput.Shape()) {
		return nil, tensor.InvalidOperationf("softmax grad_output shape %v does not match input %v",
			gradOutput.Shape(), x.Shape())
	}

	y, err := op.Forward(inputs)
	if err != nil {
		return nil, err
	}
	rows, cols, err := softmaxRows(x)
	if err != nil {
		return nil, err
	}

	grad := tensor.ZerosLike(x)
	out := grad.DataMut()
	yData := y.DataMut()
	gData := gradOutput.DataMut()
	for r := 0; r < rows; r++ {
		base := r * cols
		var dot float32
		for c := 0; c < cols; c++ {
			dot += gData[base+c] * yData[base+c]
		}
		for c := 0; c < cols; c++ {
			out[base+c] = yData[base+c] * (gData[base+c] - dot)
		}
	}
	return []*tensor.Tensor{grad}, nil
}

// softmaxRows returns the row layout of a rank-1 or rank-2 tensor.
func softmaxRows(x *tensor.Tensor) (rows, cols int, err error) {
	shape := x.Shape()
	switch len(shape) {
	case 1:
		return 1, shape[0], nil
	case 2:
		return shape[0], shape[1], nil
	default:
		return 0, 0, tensor.Dimensionf("softmax supports 1D or 2D tensors, got %dD", len(shape))
	}
}
