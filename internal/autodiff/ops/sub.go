package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Arity returns 2.
func (SubOp) Arity() int { return 2 }

// Forward computes a - b.
func (SubOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return inputs[0].Sub(inputs[1])
}

// Backward computes input gradients for subtraction.
func (SubOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return []*tensor.Tensor{gradOutput.Clone(), gradOutput.Neg()}, nil
}

// Invert solves out = a - b: a = out + b, b = a - out.
func (SubOp) Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error) {
	others, err := validateInvertArgs(known, solveFor, 2)
	if err != nil {
		return nil, err
	}
	if solveFor == 0 {
		return output.Add(others[0])
	}
	return others[0].Sub(output)
}
