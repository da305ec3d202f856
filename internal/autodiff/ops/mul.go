package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Arity returns 2.
func (MulOp) Arity() int { return 2 }

// Forward computes a * b.
func (MulOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return inputs[0].Mul(inputs[1])
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	gradA, err := gradOutput.Mul(inputs[1])
	if err != nil {
		return nil, err
	}
	gradB, err := gradOutput.Mul(inputs[0])
	if err != nil {
		return nil, err
	}
	return []*tensor.Tensor{gradA, gradB}, nil
}

// Invert solves out = a * b for either operand: out / other.
// A zero in the known operand yields NaN at that position.
func (MulOp) Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error) {
	others, err := validateInvertArgs(known, solveFor, 2)
	if err != nil {
		return nil, err
	}
	return output.Div(others[0])
}
