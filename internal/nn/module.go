// Package nn implements neural network building blocks on top of the
// autodiff graph.
//
// This package provides:
//   - Layer interface: modules that add nodes to a graph
//   - Linear: fully connected layer
//   - Loss functions: MSE, CrossEntropy
//
// Layers own no tensors. Constructing a layer registers its parameters in a
// graph, and Forward appends the operation nodes of one forward pass:
//
//	g := autodiff.NewGraph()
//	x := g.AddInput(batch)
//	fc, err := nn.NewLinear(g, nn.LinearConfig{In: 784, Out: 10, Seed: 1})
//	logits, err := fc.Forward(g, x)
//	loss, err := nn.CrossEntropyLoss(g, logits, labels)
package nn

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/autodiff/ops"
)

// Layer is the interface for all graph-building modules.
type Layer interface {
	// Parameters returns the graph ids of the layer's trainable parameters.
	Parameters() []int

	// Forward appends the layer's computation over node input and returns the
	// id of the output node.
	Forward(g *autodiff.Graph, input int) (int, error)
}

// Sequential chains layers, feeding each output into the next layer.
type Sequential []Layer

// Parameters returns the parameters of every layer in order.
func (s Sequential) Parameters() []int {
	var ids []int
	for _, l := range s {
		ids = append(ids, l.Parameters()...)
	}
	return ids
}

// Forward runs every layer in order.
func (s Sequential) Forward(g *autodiff.Graph, input int) (int, error) {
	out := input
	for _, l := range s {
		var err error
		out, err = l.Forward(g, out)
		if err != nil {
			return 0, err
		}
	}
	return out, nil
}

// ReLU is a parameterless Layer applying ops.ReLUOp.
type ReLU struct{}

// Parameters returns nil.
func (ReLU) Parameters() []int { return nil }

// Forward appends a ReLU node.
func (ReLU) Forward(g *autodiff.Graph, input int) (int, error) {
	return g.ApplyOp(ops.ReLUOp{}, input), nil
}
