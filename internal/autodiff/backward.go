package autodiff

import (
	"fmt"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// Backward computes gradients of node id with respect to every node it
// depends on.
//
// Algorithm:
//  1. Evaluate the output and seed its gradient with ones of the same shape
//     (the output is treated as a loss)
//  2. Order reachable nodes topologically (inputs before consumers)
//  3. Walk the order in reverse; for each operation node holding a gradient,
//     re-evaluate its inputs and apply the op's Backward
//  4. Accumulate each input gradient into nodes that require grad, adding to
//     any gradient already present
//
// Gradients are not cleared first: repeated calls accumulate until ZeroGrad.
// Only the output seed is overwritten, so gradients retained on intermediate
// operation nodes are propagated again and deeper graphs compound rather than
// double.
// A gradient whose shape disagrees with one already stored means the graph is
// malformed, and Backward panics.
func (g *Graph) Backward(id int) error {
	output, err := g.Forward(id)
	if err != nil {
		return err
	}
	g.gradients[id] = tensor.OnesLike(output)

	order, err := g.topologicalSort(id)
	if err != nil {
		return err
	}

	for i := len(order) - 1; i >= 0; i-- {
		if err := g.backwardNode(order[i]); err != nil {
			return err
		}
	}
	return nil
}

// backwardNode propagates the gradient held by node id into its inputs.
func (g *Graph) backwardNode(id int) error {
	grad, ok := g.gradients[id]
	if !ok {
		return nil
	}
	node := g.nodes[id]
	if node.Kind != OperationNode {
		return nil
	}

	inputs, err := g.evalInputs(node.Inputs)
	if err != nil {
		return err
	}

	inputGrads, err := node.Op.Backward(inputs, grad)
	if err != nil {
		return fmt.Errorf("node %d (%s) backward: %w", id, node.Op.Name(), err)
	}
	if len(inputGrads) != len(node.Inputs) {
		return tensor.InvalidOperationf("%s backward returned %d gradients for %d inputs",
			node.Op.Name(), len(inputGrads), len(node.Inputs))
	}

	for i, inputID := range node.Inputs {
		if !g.NodeRequiresGrad(inputID) {
			continue
		}
		g.accumulate(inputID, inputGrads[i])
	}
	return nil
}

// accumulate adds grad into the gradient slot of node id.
func (g *Graph) accumulate(id int, grad *tensor.Tensor) {
	existing, ok := g.gradients[id]
	if !ok {
		g.gradients[id] = grad.Clone()
		return
	}
	if !existing.Shape().Equal(grad.Shape()) {
		panic(fmt.Sprintf("autodiff: gradient shape %v for node %d does not match accumulated %v",
			grad.Shape(), id, existing.Shape()))
	}
	sum, err := existing.Add(grad)
	if err != nil {
		panic(fmt.Sprintf("autodiff: gradient accumulation for node %d: %v", id, err))
	}
	g.gradients[id] = sum
}

// topologicalSort returns every node reachable from start with each node
// after all of its inputs. Each node appears once.
func (g *Graph) topologicalSort(start int) ([]int, error) {
	visited := make(map[int]bool)
	order := make([]int, 0, len(g.nodes))

	var visit func(id int) error
	visit = func(id int) error {
		if visited[id] {
			return nil
		}
		visited[id] = true

		node, err := g.Node(id)
		if err != nil {
			return err
		}
		if node.Kind == OperationNode {
			for _, in := range node.Inputs {
				if err := visit(in); err != nil {
					return err
				}
			}
		}
		order = append(order, id)
		return nil
	}

	if err := visit(start); err != nil {
		return nil, err
	}
	return order, nil
}
