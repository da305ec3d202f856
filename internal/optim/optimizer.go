// Package optim implements optimization algorithms that update the
// parameters of an autodiff graph from its accumulated gradients.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for step := range steps {
//	    out, _ := model.Forward(g, x)
//	    loss, _ := nn.MSELoss(g, out, y)
//
//	    optimizer.ZeroGrad(g)
//	    if err := g.Backward(loss); err != nil { ... }
//	    if err := optimizer.Step(g); err != nil { ... }
//	}
package optim

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to the optimizer's parameters in g.
	//
	// Parameters without a gradient (not reached by the last Backward) are
	// skipped.
	Step(g *autodiff.Graph) error

	// ZeroGrad clears the gradients held by g.
	//
	// Call it before each Backward: gradients accumulate otherwise.
	ZeroGrad(g *autodiff.Graph)

	// GetLR returns the current learning rate.
	GetLR() float32
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// getGradient returns the gradient of a trainable parameter, or nil when the
// parameter is frozen or received no gradient.
//
// A gradient whose shape differs from the parameter's is an error: it means
// the parameter was broadcast inside the graph.
func getGradient(g *autodiff.Graph, id int) (*tensor.Tensor, *tensor.Tensor, error) {
	if !g.NodeRequiresGrad(id) {
		return nil, nil, nil
	}
	grad, ok := g.Gradient(id)
	if !ok {
		return nil, nil, nil
	}
	param, err := g.ParameterMut(id)
	if err != nil {
		return nil, nil, err
	}
	if !param.Shape().Equal(grad.Shape()) {
		return nil, nil, tensor.InvalidOperationf("gradient shape %v does not match parameter %d shape %v",
			grad.Shape(), id, param.Shape())
	}
	return param, grad, nil
}
