// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neuroncore/tensor"
)

func TestPublicTensor(t *testing.T) {
	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3})
	require.NoError(t, err)

	y, err := x.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, y.Data())

	m, err := y.Matrix()
	require.NoError(t, err)
	back, err := tensor.FromMatrix(m)
	require.NoError(t, err)
	assert.True(t, back.Equal(y))
}

func TestPublicErrors(t *testing.T) {
	a, err := tensor.Zeros(tensor.Shape{2, 3})
	require.NoError(t, err)
	b, err := tensor.Ones(tensor.Shape{2, 4})
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, tensor.ErrBroadcast)

	var bErr *tensor.BroadcastError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, 1, bErr.Dim)

	_, err = tensor.New(nil, tensor.Shape{})
	assert.ErrorIs(t, err, tensor.ErrDimension)
}
