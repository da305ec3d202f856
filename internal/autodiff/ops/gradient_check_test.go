package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neuroncore/internal/tensor"
)

const (
	epsilonGrad   = 1e-3
	gradTolerance = 2e-2
)

// weightedLoss computes Σ w ⊙ op(inputs) in float64 so that finite differences
// see the full output, not just its sum (softmax rows always sum to one).
func weightedLoss(t *testing.T, op Op, inputs []*tensor.Tensor, w *tensor.Tensor) float64 {
	t.Helper()
	out, err := op.Forward(inputs)
	require.NoError(t, err)
	o := out.Data()
	wd := w.Data()
	var sum float64
	for i := range o {
		sum += float64(o[i]) * float64(wd[i])
	}
	return sum
}

// numericalGradient computes ∂loss/∂inputs[which] with central differences.
func numericalGradient(t *testing.T, op Op, inputs []*tensor.Tensor, w *tensor.Tensor, which int) []float32 {
	t.Helper()
	data := inputs[which].DataMut()
	grad := make([]float32, len(data))
	for i := range data {
		original := data[i]

		data[i] = original + epsilonGrad
		fPlus := weightedLoss(t, op, inputs, w)

		data[i] = original - epsilonGrad
		fMinus := weightedLoss(t, op, inputs, w)

		grad[i] = float32((fPlus - fMinus) / (2 * epsilonGrad))
		data[i] = original
	}
	return grad
}

// TestBackward_MatchesNumericalGradient checks every op's analytic gradient
// against finite differences.
func TestBackward_MatchesNumericalGradient(t *testing.T) {
	a23 := []float32{0.5, -1.2, 0.8, 1.5, -0.3, 0.9}
	b23 := []float32{1.1, 1.7, -1.4, 0.6, 1.3, -0.8}
	pos23 := []float32{0.6, 1.2, 1.9, 0.7, 1.4, 0.9}

	tests := []struct {
		name   string
		op     Op
		inputs func(t *testing.T) []*tensor.Tensor
	}{
		{"add", AddOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3}), mustTensor(t, clone(b23), tensor.Shape{2, 3})}
		}},
		{"sub", SubOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3}), mustTensor(t, clone(b23), tensor.Shape{2, 3})}
		}},
		{"mul", MulOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3}), mustTensor(t, clone(b23), tensor.Shape{2, 3})}
		}},
		{"div", DivOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3}), mustTensor(t, clone(pos23), tensor.Shape{2, 3})}
		}},
		{"matmul", MatMulOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3}), mustTensor(t, clone(b23), tensor.Shape{3, 2})}
		}},
		{"relu", ReLUOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3})}
		}},
		{"sum", SumOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3})}
		}},
		{"sum_dim0", NewSumDim(0), func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3})}
		}},
		{"sum_dim1", NewSumDim(1), func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3})}
		}},
		{"log", LogOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(pos23), tensor.Shape{2, 3})}
		}},
		{"softmax_1d", SoftmaxOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{6})}
		}},
		{"softmax_2d", SoftmaxOp{}, func(t *testing.T) []*tensor.Tensor {
			return []*tensor.Tensor{mustTensor(t, clone(a23), tensor.Shape{2, 3})}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := tt.inputs(t)
			out, err := tt.op.Forward(inputs)
			require.NoError(t, err)

			// Non-uniform upstream gradient exercises every output position.
			w := tensor.ZerosLike(out)
			for i := range w.DataMut() {
				w.DataMut()[i] = 0.5 + 0.25*float32(i)
			}

			grads, err := tt.op.Backward(inputs, w)
			require.NoError(t, err)
			require.Len(t, grads, len(inputs))

			for i := range inputs {
				numeric := numericalGradient(t, tt.op, inputs, w, i)
				assert.InDeltaSlice(t, numeric, grads[i].Data(), gradTolerance, "input %d", i)
			}
		})
	}
}

func clone(s []float32) []float32 {
	return append([]float32(nil), s...)
}
