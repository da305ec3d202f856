// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/neuroncore/internal/tensor"

// Sentinel errors for errors.Is checks.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrDimension        = tensor.ErrDimension
	ErrInputCount       = tensor.ErrInputCount
	ErrBroadcast        = tensor.ErrBroadcast
	ErrInvalidOperation = tensor.ErrInvalidOperation
	ErrIndex            = tensor.ErrIndex
)

// Detailed error types for errors.As checks.
type (
	ShapeMismatchError    = tensor.ShapeMismatchError
	DimensionError        = tensor.DimensionError
	InputCountError       = tensor.InputCountError
	BroadcastError        = tensor.BroadcastError
	InvalidOperationError = tensor.InvalidOperationError
	IndexError            = tensor.IndexError
)
