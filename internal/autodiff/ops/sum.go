package ops

import (
	"fmt"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// SumOp represents a reduction sum: output = sum(x) or sum(x, dim).
//
// The zero value reduces every element into shape [1]. NewSumDim reduces a
// single axis, keeping it as size 1.
//
// Backward:
//
//	grad_x = broadcast(grad_y, x.shape)
//
// For the full reduction every input position receives grad_y[0].
type SumOp struct {
	dim     int
	perAxis bool
}

// NewSumDim creates a SumOp reducing along dim.
func NewSumDim(dim int) SumOp {
	return SumOp{dim: dim, perAxis: true}
}

// Dim returns the reduced axis and whether the op reduces a single axis.
func (op SumOp) Dim() (int, bool) {
	return op.dim, op.perAxis
}

// Name returns "sum" or "sum(dim=N)".
func (op SumOp) Name() string {
	if op.perAxis {
		return fmt.Sprintf("sum(dim=%d)", op.dim)
	}
	return "sum"
}

// Arity returns 1.
func (SumOp) Arity() int { return 1 }

// Forward computes the reduction.
func (op SumOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	if op.perAxis {
		return inputs[0].SumDim(op.dim)
	}
	return inputs[0].SumAll(), nil
}

// Backward broadcasts the output gradient back across the reduced axis.
func (op SumOp) Backward(inputs []*tensor.Tensor, gradOutput *tensor.Tensor) ([]*tensor.Tensor, error) {
	if err := checkArity(inputs, 1); err != nil {
		return nil, err
	}
	x := inputs[0]
	grad := tensor.ZerosLike(x)
	out := grad.DataMut()
	gData := gradOutput.DataMut()

	if !op.perAxis {
		var g float32
		if len(gData) > 0 {
			g = gData[0]
		}
		for i := range out {
			out[i] = g
		}
		return []*tensor.Tensor{grad}, nil
	}

	xShape := x.Shape()
	if op.dim < 0 || op.dim >= len(xShape) {
		return nil, tensor.Dimensionf("invalid axis %d for rank %d", op.dim, len(xShape))
	}

	gShape := gradOutput.Shape()
	for flat := range out {
		idx, err := tensor.UnravelIndex(flat, xShape)
		if err != nil {
			return nil, err
		}
		idx[op.dim] = 0
		src, err := tensor.RavelIndex(idx, gShape)
		if err != nil {
			return nil, err
		}
		out[flat] = gData[src]
	}

	return []*tensor.Tensor{grad}, nil
}
