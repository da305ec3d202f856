package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/nn"
	"github.com/born-ml/neuroncore/internal/tensor"
)

func mustTensor(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(data, shape)
	require.NoError(t, err)
	return x
}

func TestUniform(t *testing.T) {
	a, err := nn.Uniform(4, tensor.Shape{4, 8}, 7)
	require.NoError(t, err)
	b, err := nn.Uniform(4, tensor.Shape{4, 8}, 7)
	require.NoError(t, err)
	c, err := nn.Uniform(4, tensor.Shape{4, 8}, 8)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must give the same weights")
	assert.False(t, a.Equal(c))
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, float32(-0.5))
		assert.Less(t, v, float32(0.5))
	}

	_, err = nn.Uniform(0, tensor.Shape{1}, 1)
	assert.ErrorIs(t, err, tensor.ErrDimension)
}

func TestLinear_New(t *testing.T) {
	g := autodiff.NewGraph()
	l, err := nn.NewLinear(g, nn.LinearConfig{In: 2, Out: 3, Seed: 123})
	require.NoError(t, err)

	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())
	assert.Equal(t, []int{l.Weight(), l.Bias()}, l.Parameters())
	assert.Equal(t, l.Parameters(), g.Parameters())

	w, err := g.Forward(l.Weight())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, w.Shape())
	bound := float32(1 / math.Sqrt(2))
	for _, v := range w.Data() {
		assert.LessOrEqual(t, float32(math.Abs(float64(v))), bound)
	}

	b, err := g.Forward(l.Bias())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, b.Shape())
	assert.Equal(t, []float32{0, 0, 0}, b.Data())
}

func TestLinear_InvalidConfig(t *testing.T) {
	g := autodiff.NewGraph()
	_, err := nn.NewLinear(g, nn.LinearConfig{In: 0, Out: 3})
	assert.ErrorIs(t, err, tensor.ErrDimension)
	assert.Equal(t, 0, g.Len())
}

func TestLinear_Forward(t *testing.T) {
	g := autodiff.NewGraph()
	l, err := nn.NewLinear(g, nn.LinearConfig{In: 2, Out: 3, Seed: 9})
	require.NoError(t, err)

	w, err := g.ParameterMut(l.Weight())
	require.NoError(t, err)
	copy(w.DataMut(), []float32{1, 2, 3, 4, 5, 6})
	b, err := g.ParameterMut(l.Bias())
	require.NoError(t, err)
	copy(b.DataMut(), []float32{0.5, 0.5, 0.5})

	x := g.AddInput(mustTensor(t, []float32{1, 1, 2, 0}, tensor.Shape{2, 2}))
	out, err := l.Forward(g, x)
	require.NoError(t, err)

	y, err := g.Forward(out)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, y.Shape())
	assert.Equal(t, []float32{5.5, 7.5, 9.5, 2.5, 4.5, 6.5}, y.Data())
}

func TestSequential(t *testing.T) {
	g := autodiff.NewGraph()
	l1, err := nn.NewLinear(g, nn.LinearConfig{In: 2, Out: 3, Seed: 1})
	require.NoError(t, err)
	l2, err := nn.NewLinear(g, nn.LinearConfig{In: 3, Out: 1, Seed: 2})
	require.NoError(t, err)
	model := nn.Sequential{l1, nn.ReLU{}, l2}

	assert.Len(t, model.Parameters(), 4)

	x := g.AddInput(mustTensor(t, []float32{0.5, -0.5}, tensor.Shape{1, 2}))
	out, err := model.Forward(g, x)
	require.NoError(t, err)

	y, err := g.Forward(out)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 1}, y.Shape())
}

func TestMSELoss(t *testing.T) {
	g := autodiff.NewGraph()
	pred := g.AddParameter(mustTensor(t, []float32{1, 2, 3}, tensor.Shape{3}), true)
	target := g.AddInput(mustTensor(t, []float32{1, 1, 1}, tensor.Shape{3}))

	loss, err := nn.MSELoss(g, pred, target)
	require.NoError(t, err)

	y, err := g.Forward(loss)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, y.Shape())
	assert.InDelta(t, 5.0/3.0, y.Data()[0], 1e-6)

	require.NoError(t, g.Backward(loss))
	grad, ok := g.Gradient(pred)
	require.True(t, ok)
	// 2 * (p - t) / N
	assert.InDeltaSlice(t, []float32{0, 2.0 / 3.0, 4.0 / 3.0}, grad.Data(), 1e-6)
}

func TestMSELoss_BadPrediction(t *testing.T) {
	g := autodiff.NewGraph()
	_, err := nn.MSELoss(g, 5, 6)
	assert.ErrorIs(t, err, tensor.ErrIndex)
}

func TestCrossEntropyLoss(t *testing.T) {
	g := autodiff.NewGraph()
	logits := g.AddParameter(mustTensor(t, []float32{0, 0}, tensor.Shape{2}), true)
	targets := g.AddInput(mustTensor(t, []float32{1, 0}, tensor.Shape{2}))

	loss, err := nn.CrossEntropyLoss(g, logits, targets)
	require.NoError(t, err)

	y, err := g.Forward(loss)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, y.Data()[0], 1e-6)

	require.NoError(t, g.Backward(loss))
	grad, ok := g.Gradient(logits)
	require.True(t, ok)
	// softmax - targets for one-hot targets
	assert.InDeltaSlice(t, []float32{-0.5, 0.5}, grad.Data(), 1e-5)
}

func TestCrossEntropyLoss_Batch(t *testing.T) {
	g := autodiff.NewGraph()
	logits := g.AddParameter(mustTensor(t, []float32{
		2, 1, 0,
		0, 0, 0,
	}, tensor.Shape{2, 3}), true)
	targets := g.AddInput(mustTensor(t, []float32{
		1, 0, 0,
		0, 0, 1,
	}, tensor.Shape{2, 3}))

	loss, err := nn.CrossEntropyLoss(g, logits, targets)
	require.NoError(t, err)

	y, err := g.Forward(loss)
	require.NoError(t, err)
	z := math.Exp(2) + math.Exp(1) + 1
	expected := -(2 - math.Log(z)) + math.Log(3)
	assert.InDelta(t, expected, y.Data()[0], 1e-5)

	require.NoError(t, g.Backward(loss))
	grad, ok := g.Gradient(logits)
	require.True(t, ok)
	p0 := math.Exp(2) / z
	p1 := math.Exp(1) / z
	p2 := 1 / z
	third := 1.0 / 3.0
	assert.InDeltaSlice(t, []float64{p0 - 1, p1, p2, third, third, third - 1}, toFloat64(grad.Data()), 1e-5)
}

func toFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
