// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neuroncore/autodiff"
	"github.com/born-ml/neuroncore/tensor"
)

func TestPublicGraph(t *testing.T) {
	x, err := tensor.New([]float32{1, 2}, tensor.Shape{1, 2})
	require.NoError(t, err)
	w, err := tensor.New([]float32{3, 4}, tensor.Shape{2, 1})
	require.NoError(t, err)

	g := autodiff.NewGraph()
	xi := g.AddInput(x)
	wi := g.AddParameter(w, true)
	loss := g.ApplyOp(autodiff.Sum(), g.ApplyOp(autodiff.MatMul(), xi, wi))

	y, err := g.Forward(loss)
	require.NoError(t, err)
	assert.Equal(t, []float32{11}, y.Data())

	require.NoError(t, g.Backward(loss))
	grad, ok := g.Gradient(wi)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2}, grad.Data())

	node, err := g.Node(wi)
	require.NoError(t, err)
	assert.Equal(t, autodiff.ParameterNode, node.Kind)
}

func TestPublicInvert(t *testing.T) {
	a, err := tensor.New([]float32{2, 3}, tensor.Shape{2})
	require.NoError(t, err)
	b, err := tensor.New([]float32{4, 5}, tensor.Shape{2})
	require.NoError(t, err)

	op := autodiff.Mul()
	out, err := op.Forward([]*tensor.Tensor{a, b})
	require.NoError(t, err)

	got, err := op.Invert(out, []*tensor.Tensor{a, nil}, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, b.Data(), got.Data(), 1e-6)
}
