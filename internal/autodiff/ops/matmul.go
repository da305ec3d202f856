package ops

import "github.com/born-ml/neuroncore/internal/tensor"

// MatMulOp represents matrix multiplication: output = A @ B.
//
// Forward:
//
//	A: [M, K], B: [K, N] → output: [M, N]
//
// Backward:
//
//	grad_A = outputGrad @ B^T  ([M, N] @ [N, K] = [M, K])
//	grad_B = A^T @ outputGrad  ([K, M] @ [M, N] = [K, N])
type MatMulOp struct{}

// Name returns "matmul".
func (MatMulOp) Name() string { return "matmul" }

// Arity returns 2.
func (MatMulOp) Arity() int { return 2 }

// Forward computes A @ B.
func (MatMulOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	return inputs[0].MatMul(inputs[1])
}

// Backward computes input gradients for matrix multiplication.
func (MatMulOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 2); err != nil {
		return nil, err
	}
	a, b := inputs[0], inputs[1]

	bT, err := b.Transpose2D()
	if err != nil {
		return nil, err
	}
	aT, err := a.Transpose2D()
	if err != nil {
		return nil, err
	}

	gradA, err := gradOutput.MatMul(bT)
	if err != nil {
		return nil, err
	}
	gradB, err := aT.MatMul(gradOutput)
	if err != nil {
		return nil, err
	}

	return []*tensor.Tensor{gradA, gradB}, nil
}
