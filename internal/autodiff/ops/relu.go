package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// ReLUOp represents the ReLU activation: output = max(0, x).
//
// Backward:
//
//	grad_x = outputGrad where x > 0, else 0
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Arity returns 1.
func (ReLUOp) Arity() int { return 1 }

// Forward computes max(0, x).
func (ReLUOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	return inputs[0].ReLU(), nil
}

// Backward masks the output gradient by the sign of the input.
func (ReLUOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	x := inputs[0]
	if err := checkSameSize(x, gradOutput); err != nil {
		return nil, err
	}

	grad := tensor.ZerosLike(x)
	xData := x.DataMut()
	gData := gradOutput.DataMut()
	out := grad.DataMut()
	for i, v := range xData {
		if v > 0 {
			out[i] = gData[i]
		}
	}
	return []*tensor.Tensor{grad}, nil
}
