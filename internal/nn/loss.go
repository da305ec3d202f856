package nn

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/autodiff/ops"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// MSELoss appends mean squared error between two nodes and returns the id of
// the loss node.
//
// Loss = sum((predictions - targets)²) / N
//
// N is the element count of predictions, evaluated once when the loss is
// built and stored as an input node. The loss has shape [1].
func MSELoss(g *autodiff.Graph, predictions, targets int) (int, error) {
	pred, err := g.Forward(predictions)
	if err != nil {
		return 0, err
	}
	n, err := tensor.New([]float32{float32(pred.NumElements())}, tensor.Shape{1})
	if err != nil {
		return 0, err
	}

	diff := g.ApplyOp(ops.SubOp{}, predictions, targets)
	squared := g.ApplyOp(ops.MulOp{}, diff, diff)
	sum := g.ApplyOp(ops.SumOp{}, squared)
	return g.ApplyOp(ops.DivOp{}, sum, g.AddInput(n)), nil
}

// CrossEntropyLoss appends cross entropy for one-hot (or soft) targets shaped
// like logits and returns the id of the loss node.
//
// Loss = -sum(targets * log(softmax(logits)))
//
// Softmax is taken over the last axis, so logits may be [classes] or
// [batch_size, classes]. The loss is summed, not averaged, over the batch.
func CrossEntropyLoss(g *autodiff.Graph, logits, targets int) (int, error) {
	negOne, err := tensor.New([]float32{-1}, tensor.Shape{1})
	if err != nil {
		return 0, err
	}

	probs := g.ApplyOp(ops.SoftmaxOp{}, logits)
	logProbs := g.ApplyOp(ops.LogOp{}, probs)
	selected := g.ApplyOp(ops.MulOp{}, logProbs, targets)
	sum := g.ApplyOp(ops.SumOp{}, selected)
	return g.ApplyOp(ops.MulOp{}, sum, g.AddInput(negOne)), nil
}
