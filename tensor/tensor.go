// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense float32 tensors.
//
// It defines:
//   - Tensor: row-major float32 tensor with NumPy-style broadcasting
//   - Shape: tensor dimensions
//   - Error kinds shared by the tensor and autodiff packages
//
// Example:
//
//	x, _ := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.New([]float32{10, 20, 30}, tensor.Shape{3})
//	y, _ := x.Add(b) // [[11 22 33] [14 25 36]]
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// Tensor is a dense, row-major float32 tensor.
type Tensor = tensor.Tensor

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// New creates a tensor that takes ownership of data.
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromSlice creates a tensor from a copy of data.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float32) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// ZerosLike creates a zero tensor shaped like other.
func ZerosLike(other *Tensor) *Tensor {
	return tensor.ZerosLike(other)
}

// OnesLike creates a tensor of ones shaped like other.
func OnesLike(other *Tensor) *Tensor {
	return tensor.OnesLike(other)
}

// Random creates a tensor with deterministic uniform values in [-1, 1).
func Random(shape Shape, seed uint32) (*Tensor, error) {
	return tensor.Random(shape, seed)
}

// BroadcastShapes returns the broadcast result shape of a and b.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// RavelIndex converts a multi-dimensional index to a row-major flat index.
func RavelIndex(idx []int, shape Shape) (int, error) {
	return tensor.RavelIndex(idx, shape)
}

// UnravelIndex converts a row-major flat index to a multi-dimensional index.
func UnravelIndex(flat int, shape Shape) ([]int, error) {
	return tensor.UnravelIndex(flat, shape)
}

// FromMatrix copies a gonum matrix into a rank-2 tensor.
func FromMatrix(m mat.Matrix) (*Tensor, error) {
	return tensor.FromMatrix(m)
}
