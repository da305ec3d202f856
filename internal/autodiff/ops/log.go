package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// LogOp represents element-wise natural logarithm operation.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Inverse:
//
//	input = exp(output)
type LogOp struct{}

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Arity returns 1.
func (LogOp) Arity() int { return 1 }

// Forward computes ln(x).
func (LogOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	return inputs[0].Log(), nil
}

// Backward computes grad_output / x.
//
// Note: This assumes input > 0 (log is only defined for positive values).
func (LogOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
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
	for i := range out {
		out[i] = gData[i] / xData[i]
	}
	return []*tensor.Tensor{grad}, nil
}

// Invert recovers x = exp(output).
func (LogOp) Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error) {
	if _, err := validateInvertArgs(known, solveFor, 1); err != nil {
		return nil, err
	}
	return output.Exp(), nil
}
