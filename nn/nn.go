// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and losses that build nodes in an
// autodiff graph.
//
// Example:
//
//	g := autodiff.NewGraph()
//	fc1, _ := nn.NewLinear(g, nn.LinearConfig{In: 2, Out: 3, Seed: 123})
//	fc2, _ := nn.NewLinear(g, nn.LinearConfig{In: 3, Out: 1, Seed: 456})
//	model := nn.Sequential{fc1, nn.ReLU{}, fc2}
//
//	out, _ := model.Forward(g, x)
//	loss, _ := nn.MSELoss(g, out, y)
package nn

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/nn"
)

// Layer is the interface for graph-building modules.
type Layer = nn.Layer

// Sequential chains layers in order.
type Sequential = nn.Sequential

// ReLU is a parameterless activation layer.
type ReLU = nn.ReLU

// Linear is a fully connected layer.
type Linear = nn.Linear

// LinearConfig holds configuration for a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear registers a Linear layer's parameters in g.
func NewLinear(g *autodiff.Graph, cfg LinearConfig) (*Linear, error) {
	return nn.NewLinear(g, cfg)
}

// MSELoss appends mean squared error between predictions and targets.
func MSELoss(g *autodiff.Graph, predictions, targets int) (int, error) {
	return nn.MSELoss(g, predictions, targets)
}

// CrossEntropyLoss appends softmax cross entropy between logits and targets.
func CrossEntropyLoss(g *autodiff.Graph, logits, targets int) (int, error) {
	return nn.CrossEntropyLoss(g, logits, targets)
}
