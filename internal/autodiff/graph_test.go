package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/autodiff/ops"
	"github.com/born-ml/neuroncore/internal/tensor"
)

func mustTensor(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(data, shape)
	require.NoError(t, err)
	return x
}

func gradient(t *testing.T, g *autodiff.Graph, id int) []float32 {
	t.Helper()
	grad, ok := g.Gradient(id)
	require.True(t, ok, "node %d has no gradient", id)
	return grad.Data()
}

func TestGraph_ForwardAdd(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddInput(mustTensor(t, []float32{1, 2}, tensor.Shape{1, 2}))
	b := g.AddInput(mustTensor(t, []float32{3, 4}, tensor.Shape{1, 2}))
	out := g.ApplyOp(ops.AddOp{}, a, b)

	y, err := g.Forward(out)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 6}, y.Data())

	alias, err := g.Tensor(out)
	require.NoError(t, err)
	assert.True(t, alias.Equal(y))
	assert.Equal(t, 3, g.Len())
}

func TestGraph_StoresCopies(t *testing.T) {
	g := autodiff.NewGraph()
	x := mustTensor(t, []float32{1, 2}, tensor.Shape{2})
	id := g.AddInput(x)
	x.DataMut()[0] = 100

	got, err := g.Forward(id)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, got.Data())

	got.DataMut()[1] = 100
	again, err := g.Forward(id)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, again.Data())
}

func TestGraph_BackwardAdd(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddParameter(mustTensor(t, []float32{1, 2}, tensor.Shape{1, 2}), true)
	b := g.AddParameter(mustTensor(t, []float32{3, 4}, tensor.Shape{1, 2}), true)
	out := g.ApplyOp(ops.AddOp{}, a, b)

	require.NoError(t, g.Backward(out))
	assert.Equal(t, []float32{1, 1}, gradient(t, g, a))
	assert.Equal(t, []float32{1, 1}, gradient(t, g, b))
	assert.Equal(t, []float32{1, 1}, gradient(t, g, out))
}

// TestGraph_SharedInputAccumulates tests that a parameter used as both
// operands receives the sum of both contributions.
func TestGraph_SharedInputAccumulates(t *testing.T) {
	g := autodiff.NewGraph()
	p := g.AddParameter(mustTensor(t, []float32{1, 2, 3}, tensor.Shape{3}), true)
	sum := g.ApplyOp(ops.AddOp{}, p, p)

	require.NoError(t, g.Backward(sum))
	assert.Equal(t, []float32{2, 2, 2}, gradient(t, g, p))

	g.ZeroGrad()
	sq := g.ApplyOp(ops.MulOp{}, p, p)
	require.NoError(t, g.Backward(sq))
	assert.Equal(t, []float32{2, 4, 6}, gradient(t, g, p))
}

// TestGraph_Diamond tests accumulation through a shared intermediate node:
// loss = sum(h + h*c) with h = a*b.
func TestGraph_Diamond(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddParameter(mustTensor(t, []float32{2}, tensor.Shape{1}), true)
	b := g.AddParameter(mustTensor(t, []float32{3}, tensor.Shape{1}), true)
	c := g.AddInput(mustTensor(t, []float32{4}, tensor.Shape{1}))
	h := g.ApplyOp(ops.MulOp{}, a, b)
	hc := g.ApplyOp(ops.MulOp{}, h, c)
	loss := g.ApplyOp(ops.AddOp{}, h, hc)

	require.NoError(t, g.Backward(loss))
	// dloss/dh = 1 + c = 5
	assert.Equal(t, []float32{5}, gradient(t, g, h))
	assert.Equal(t, []float32{15}, gradient(t, g, a))
	assert.Equal(t, []float32{10}, gradient(t, g, b))

	_, ok := g.Gradient(c)
	assert.False(t, ok, "inputs never receive gradients")
}

func TestGraph_FrozenParameter(t *testing.T) {
	g := autodiff.NewGraph()
	frozen := g.AddParameter(mustTensor(t, []float32{1}, tensor.Shape{1}), false)
	live := g.AddParameter(mustTensor(t, []float32{2}, tensor.Shape{1}), true)
	out := g.ApplyOp(ops.MulOp{}, frozen, live)

	require.NoError(t, g.Backward(out))
	_, ok := g.Gradient(frozen)
	assert.False(t, ok)
	assert.Equal(t, []float32{1}, gradient(t, g, live))

	assert.False(t, g.NodeRequiresGrad(frozen))
	assert.True(t, g.NodeRequiresGrad(live))
	assert.True(t, g.NodeRequiresGrad(out))
	assert.False(t, g.NodeRequiresGrad(99))
	assert.Equal(t, []int{live}, g.Parameters())
}

func TestGraph_RepeatedBackwardAccumulates(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddParameter(mustTensor(t, []float32{1, 2}, tensor.Shape{2}), true)
	b := g.AddInput(mustTensor(t, []float32{5, 5}, tensor.Shape{2}))
	out := g.ApplyOp(ops.AddOp{}, a, b)

	require.NoError(t, g.Backward(out))
	require.NoError(t, g.Backward(out))
	assert.Equal(t, []float32{2, 2}, gradient(t, g, a))

	g.ZeroGrad()
	_, ok := g.Gradient(a)
	assert.False(t, ok)

	require.NoError(t, g.Backward(out))
	assert.Equal(t, []float32{1, 1}, gradient(t, g, a))
}

// TestGraph_RepeatedBackwardCompoundsIntermediates tests that gradients kept
// on intermediate operation nodes are propagated again by a second Backward:
// only the output seed is reset, so deeper graphs do not simply double.
func TestGraph_RepeatedBackwardCompoundsIntermediates(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.AddParameter(mustTensor(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}), true)
	c := g.AddInput(mustTensor(t, []float32{2, 3}, tensor.Shape{2, 1}))
	rows := g.ApplyOp(ops.NewSumDim(1), x)
	scaled := g.ApplyOp(ops.MulOp{}, rows, c)
	loss := g.ApplyOp(ops.SumOp{}, scaled)

	require.NoError(t, g.Backward(loss))
	assert.Equal(t, []float32{2, 2, 2, 3, 3, 3}, gradient(t, g, x))

	require.NoError(t, g.Backward(loss))
	assert.Equal(t, []float32{1}, gradient(t, g, loss))
	assert.Equal(t, []float32{2, 2}, gradient(t, g, scaled))
	assert.Equal(t, []float32{6, 9}, gradient(t, g, rows))
	assert.Equal(t, []float32{8, 8, 8, 12, 12, 12}, gradient(t, g, x))
}

// TestGraph_LinearReLU checks gradients of sum(relu(x @ w)) by hand.
func TestGraph_LinearReLU(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.AddInput(mustTensor(t, []float32{1, 2}, tensor.Shape{1, 2}))
	w := g.AddParameter(mustTensor(t, []float32{1, -1, 1, -1}, tensor.Shape{2, 2}), true)
	mm := g.ApplyOp(ops.MatMulOp{}, x, w) // [3, -3]
	act := g.ApplyOp(ops.ReLUOp{}, mm)
	loss := g.ApplyOp(ops.SumOp{}, act)

	y, err := g.Forward(loss)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, y.Data())

	require.NoError(t, g.Backward(loss))
	assert.Equal(t, []float32{1, 0}, gradient(t, g, mm))
	// grad_w = x^T @ [1, 0]
	assert.Equal(t, []float32{1, 0, 2, 0}, gradient(t, g, w))
}

func TestGraph_IndexErrors(t *testing.T) {
	g := autodiff.NewGraph()
	_, err := g.Forward(0)
	assert.ErrorIs(t, err, tensor.ErrIndex)

	err = g.Backward(3)
	assert.ErrorIs(t, err, tensor.ErrIndex)

	_, err = g.Node(-1)
	assert.ErrorIs(t, err, tensor.ErrIndex)
}

func TestGraph_ForwardPropagatesOpErrors(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddInput(mustTensor(t, make([]float32, 6), tensor.Shape{2, 3}))
	b := g.AddInput(mustTensor(t, make([]float32, 8), tensor.Shape{2, 4}))
	bad := g.ApplyOp(ops.AddOp{}, a, b)
	arity := g.ApplyOp(ops.AddOp{}, a)

	_, err := g.Forward(bad)
	assert.ErrorIs(t, err, tensor.ErrBroadcast)

	_, err = g.Forward(arity)
	assert.ErrorIs(t, err, tensor.ErrInputCount)

	assert.ErrorIs(t, g.Backward(bad), tensor.ErrBroadcast)
}

func TestGraph_ParameterMut(t *testing.T) {
	g := autodiff.NewGraph()
	in := g.AddInput(mustTensor(t, []float32{1}, tensor.Shape{1}))
	frozen := g.AddParameter(mustTensor(t, []float32{1}, tensor.Shape{1}), false)
	live := g.AddParameter(mustTensor(t, []float32{1}, tensor.Shape{1}), true)

	_, err := g.ParameterMut(in)
	assert.ErrorIs(t, err, tensor.ErrInvalidOperation)
	_, err = g.ParameterMut(frozen)
	assert.ErrorIs(t, err, tensor.ErrInvalidOperation)
	_, err = g.ParameterMut(42)
	assert.ErrorIs(t, err, tensor.ErrInvalidOperation)

	p, err := g.ParameterMut(live)
	require.NoError(t, err)
	p.DataMut()[0] = 7

	got, err := g.Forward(live)
	require.NoError(t, err)
	assert.Equal(t, []float32{7}, got.Data())
}

func TestGraph_ApplyOpRejectsForwardReference(t *testing.T) {
	g := autodiff.NewGraph()
	a := g.AddInput(mustTensor(t, []float32{1}, tensor.Shape{1}))
	assert.Panics(t, func() { g.ApplyOp(ops.AddOp{}, a, a+1) })
	assert.Equal(t, 1, g.Len())
}

// badGradOp returns a configurable set of gradients to exercise the graph's
// contract checks.
type badGradOp struct {
	grads func(inputs []*tensor.Tensor) []*tensor.Tensor
}

func (badGradOp) Name() string { return "bad" }
func (badGradOp) Arity() int   { return 2 }
func (badGradOp) Forward(inputs []*tensor.Tensor) (*tensor.Tensor, error) {
	return inputs[0].Clone(), nil
}
func (op badGradOp) Backward(inputs []*tensor.Tensor, _ *tensor.Tensor) ([]*tensor.Tensor, error) {
	return op.grads(inputs), nil
}

func TestGraph_WrongGradientCount(t *testing.T) {
	g := autodiff.NewGraph()
	p := g.AddParameter(mustTensor(t, []float32{1}, tensor.Shape{1}), true)
	op := badGradOp{grads: func(inputs []*tensor.Tensor) []*tensor.Tensor {
		return []*tensor.Tensor{inputs[0]}
	}}
	out := g.ApplyOp(op, p, p)

	assert.ErrorIs(t, g.Backward(out), tensor.ErrInvalidOperation)
}

func TestGraph_AccumulationShapeMismatchPanics(t *testing.T) {
	g := autodiff.NewGraph()
	p := g.AddParameter(mustTensor(t, []float32{1, 2}, tensor.Shape{2}), true)
	op := badGradOp{grads: func(inputs []*tensor.Tensor) []*tensor.Tensor {
		other, _ := tensor.Ones(tensor.Shape{2, 1})
		return []*tensor.Tensor{inputs[0], other}
	}}
	out := g.ApplyOp(op, p, p)

	assert.Panics(t, func() { _ = g.Backward(out) })
}
