// Package ops defines the operation contract for automatic differentiation and
// the built-in operation catalog.
//
// Each operation implements the Op interface, which provides:
//   - Forward: computes the output from concrete input tensors
//   - Backward: computes one gradient per input given the output gradient
//
// Operations whose forward pass can be solved exactly for a missing operand
// also implement InvertibleOp.
//
// Supported operations:
//   - AddOp, SubOp, MulOp, DivOp: broadcasting arithmetic (invertible)
//   - MatMulOp: 2D matrix multiplication (d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad)
//   - ReLUOp: rectified linear unit (d(ReLU(x))/dx = 1 if x > 0, else 0)
//   - SumOp: full or single-axis reduction
//   - LogOp: natural logarithm (invertible)
//   - SoftmaxOp: max-shifted softmax over rank 1 or rows of rank 2
//
// Operations are stateless values: many graph nodes may share one.
package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// Op is a differentiable operation.
type Op interface {
	// Name identifies the operation in errors and diagnostics.
	Name() string

	// Arity returns the number of inputs the operation consumes.
	Arity() int

	// Forward evaluates the operation on concrete inputs.
	Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error)

	// Backward computes gradients for inputs given the output gradient.
	// Returns exactly one gradient per input, in input order.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   gradOutput: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error)
}

// InvertibleOp is an Op whose forward pass can be inverted exactly.
type InvertibleOp interface {
	Op

	// Invert reconstructs the input at position solveFor from the forward
	// output and the remaining inputs. known has one entry per input; the
	// entry at solveFor must be nil and every other entry non-nil.
	Invert(output *tensor.Tensor, known []*tensor.Tensor, solveFor int) (*tensor.Tensor, error)
}

var (
	_ InvertibleOp = AddOp{}
	_ InvertibleOp = SubOp{}
	_ InvertibleOp = MulOp{}
	_ InvertibleOp = DivOp{}
	_ InvertibleOp = LogOp{}
	_ Op           = MatMulOp{}
	_ Op           = ReLUOp{}
	_ Op           = SumOp{}
	_ Op           = SoftmaxOp{}
)

// checkArity fails with *tensor.InputCountError unless len(inputs) == want.
func checkArity(inputs []*tensor.Tensor, want int) error {
	if len(inputs) != want {
		return &tensor.InputCountError{Expected: want, Got: len(inputs)}
	}
	return nil
}

// validateInvertArgs checks the shared Invert contract and returns the known
// operands in input order with the solveFor slot removed.
func validateInvertArgs(known []*tensor.Tensor, solveFor, arity int) ([]*tensor.Tensor, error) {
	if len(known) != arity {
		return nil, &tensor.InputCountError{Expected: arity, Got: len(known)}
	}
	if solveFor < 0 || solveFor >= arity {
		return nil, tensor.Indexf("solve_for %d out of bounds for arity %d", solveFor, arity)
	}
	if known[solveFor] != nil {
		return nil, tensor.InvalidOperationf("known[%d] must be absent (it is the solve_for slot)", solveFor)
	}

	others := make([]*tensor.Tensor, 0, arity-1)
	for i, k := range known {
		if i == solveFor {
			continue
		}
		if k == nil {
			return nil, tensor.InvalidOperationf("known[%d] must be present (only solve_for may be absent)", i)
		}
		others = append(others, k)
	}
	return others, nil
}

// checkSameSize fails with *tensor.ShapeMismatchError when a gradient does
// not cover the input element-for-element.
func checkSameSize(input, grad *tensor.Tensor) error {
	if input.NumElements() != grad.NumElements() {
		return &tensor.ShapeMismatchError{Expected: input.NumElements(), Got: grad.NumElements()}
	}
	return nil
}
