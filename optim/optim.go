// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training graph
// parameters.
//
// Training loop pattern:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for step := range numSteps {
//	    out, _ := model.Forward(g, x)
//	    loss, _ := nn.MSELoss(g, out, y)
//
//	    optimizer.ZeroGrad(g)
//	    if err := g.Backward(loss); err != nil { ... }
//	    if err := optimizer.Step(g); err != nil { ... }
//	}
package optim

import "github.com/born-ml/neuroncore/internal/optim"

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameter ids.
func NewSGD(params []int, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
