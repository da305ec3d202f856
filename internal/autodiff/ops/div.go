package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// DivOp represents an element-wise division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct{}

// Name returns "div".
func (DivOp) Name() string { return "div" }

// Arity returns 2.
func (DivOp) Arity() int { return 2 }

// Forward computes a / b. Division by zero produces NaN.
func (DivOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return inputs[0].Div(inputs[1])
}

// Backward computes input gradients for division.
func (DivOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	a, b := inputs[0], inputs[1]

	gradA, err := gradOutput.Div(b)
	if err != nil {
		return nil, err
	}

	// grad_b = -(outputGrad * a) / (b * b)
	bSquared, err := b.Mul(b)
	if err != nil {
		return nil, err
	}
	numerator, err := gradOutput.Mul(a)
	if err != nil {
		return nil, err
	}
	gradB, err := numerator.Div(bSquared)
	if err != nil {
		return nil, err
	}

	return []*tensor.Tensor{gradA, gradB.Neg()}, nil
}

// Invert solves out = a / b: a = out * b, b = a / out.
func (DivOp) Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error) {
	others, err := validateInvertArgs(known, solveFor, 2)
	if err != nil {
		return nil, err
	}
	if solveFor == 0 {
		return output.Mul(others[0])
	}
	return others[0].Div(output)
}
