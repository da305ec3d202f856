// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over an
// append-only computational graph.
//
// Example:
//
//	import (
//	    "github.com/born-ml/neuroncore/autodiff"
//	    "github.com/born-ml/neuroncore/tensor"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.AddInput(input)
//	    w := g.AddParameter(weights, true)
//	    y := g.ApplyOp(autodiff.MatMul(), x, w)
//	    loss := g.ApplyOp(autodiff.Sum(), y)
//
//	    if err := g.Backward(loss); err != nil { ... }
//	    grad, _ := g.Gradient(w)
//	}
package autodiff

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/autodiff/ops"
)

// Graph is an append-only arena of nodes with accumulated gradients.
type Graph = autodiff.Graph

// Node is an entry in a Graph.
type Node = autodiff.Node

// NodeKind tags the variant held by a Node.
type NodeKind = autodiff.NodeKind

// Node kinds.
const (
	InputNode     = autodiff.InputNode
	ParameterNode = autodiff.ParameterNode
	OperationNode = autodiff.OperationNode
)

// Op is a differentiable operation.
type Op = ops.Op

// InvertibleOp is an Op that can solve for one missing operand.
type InvertibleOp = ops.InvertibleOp

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Add returns the element-wise addition op.
func Add() InvertibleOp { return ops.AddOp{} }

// Sub returns the element-wise subtraction op.
func Sub() InvertibleOp { return ops.SubOp{} }

// Mul returns the element-wise multiplication op.
func Mul() InvertibleOp { return ops.MulOp{} }

// Div returns the element-wise division op.
func Div() InvertibleOp { return ops.DivOp{} }

// MatMul returns the rank-2 matrix multiplication op.
func MatMul() Op { return ops.MatMulOp{} }

// ReLU returns the rectified linear op.
func ReLU() Op { return ops.ReLUOp{} }

// Sum returns the op that sums every element into shape [1].
func Sum() Op { return ops.SumOp{} }

// SumDim returns the op that sums along one axis, keeping rank.
func SumDim(dim int) Op { return ops.NewSumDim(dim) }

// Log returns the natural logarithm op.
func Log() InvertibleOp { return ops.LogOp{} }

// Softmax returns the softmax op over the last axis of rank-1 or rank-2 input.
func Softmax() Op { return ops.SoftmaxOp{} }
