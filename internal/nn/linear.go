package nn

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/autodiff/ops"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// LinearConfig holds configuration for a Linear layer.
type LinearConfig struct {
	In   int    // Number of input features
	Out  int    // Number of output features
	Seed uint32 // Weight initialization seed (0 selects the generator default)
}

// Linear implements a fully connected layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x has shape [batch_size, in]
//   - W has shape [in, out]
//   - b has shape [1, out] and broadcasts over the batch
//   - y has shape [batch_size, out]
//
// Weights are drawn from Uniform(in, ...). Biases start at zero.
type Linear struct {
	in, out int
	weight  int
	bias    int
}

// NewLinear registers a Linear layer's parameters in g.
func NewLinear(g *autodiff.Graph, cfg LinearConfig) (*Linear, error) {
	if cfg.In <= 0 || cfg.Out <= 0 {
		return nil, tensor.Dimensionf("linear layer needs positive sizes, got %dx%d", cfg.In, cfg.Out)
	}

	w, err := Uniform(cfg.In, tensor.Shape{cfg.In, cfg.Out}, cfg.Seed)
	if err != nil {
		return nil, err
	}
	b, err := tensor.Zeros(tensor.Shape{1, cfg.Out})
	if err != nil {
		return nil, err
	}

	return &Linear{
		in:     cfg.In,
		out:    cfg.Out,
		weight: g.AddParameter(w, true),
		bias:   g.AddParameter(b, true),
	}, nil
}

// Forward appends x @ W + b and returns the id of the sum node.
func (l *Linear) Forward(g *autodiff.Graph, input int) (int, error) {
	mm := g.ApplyOp(ops.MatMulOp{}, input, l.weight)
	return g.ApplyOp(ops.AddOp{}, mm, l.bias), nil
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []int {
	return []int{l.weight, l.bias}
}

// Weight returns the weight parameter id.
func (l *Linear) Weight() int { return l.weight }

// Bias returns the bias parameter id.
func (l *Linear) Bias() int { return l.bias }

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int { return l.in }

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int { return l.out }
