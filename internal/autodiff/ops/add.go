package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Gradients keep the output shape; they are not reduced back over broadcast
// dimensions.
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Arity returns 2.
func (AddOp) Arity() int { return 2 }

// Forward computes a + b.
func (AddOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return inputs[0].Add(inputs[1])
}

// Backward passes the output gradient through to both inputs.
func (AddOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return []*tensor.Tensor{gradOutput.Clone(), gradOutput.Clone()}, nil
}

// Invert solves out = a + b for either operand: out - other.
func (AddOp) Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error) {
	others, err := validateInvertArgs(known, solveFor, 2)
	if err != nil {
		return nil, err
	}
	return output.Sub(others[0])
}
