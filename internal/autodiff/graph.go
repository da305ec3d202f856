// Package autodiff implements reverse-mode automatic differentiation over an
// append-only computational graph.
//
// Architecture:
//   - Graph: arena of nodes addressed by position; a node id is its index
//   - Node: input, trainable parameter, or application of an ops.Op
//   - Forward: lazy recursive evaluation of a node's dependencies
//   - Backward: seeds ones at the output, walks a topological order in
//     reverse and accumulates gradients into every node that takes them
//
// Operation nodes may only reference earlier nodes, so the graph is a DAG by
// construction.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.AddInput(input)
//	w := g.AddParameter(weights, true)
//	y := g.ApplyOp(ops.MatMulOp{}, x, w)
//	loss := g.ApplyOp(ops.SumOp{}, y)
//	if err := g.Backward(loss); err != nil { ... }
//	grad, _ := g.Gradient(w)
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"fmt"

	"github.com/born-ml/neuroncore/internal/autodiff/ops"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// NodeKind tags the variant held by a Node.
type NodeKind int

// Node kinds.
const (
	InputNode NodeKind = iota
	ParameterNode
	OperationNode
)

// String returns a human-readable kind name.
func (k NodeKind) String() string {
	switch k {
	case InputNode:
		return "input"
	case ParameterNode:
		return "parameter"
	case OperationNode:
		return "operation"
	default:
		return "unknown"
	}
}

// Node is an entry in the graph.
//
// Input and Parameter nodes hold Value. Operation nodes hold Op and the ids of
// their inputs, each strictly less than the node's own id.
type Node struct {
	Kind         NodeKind
	Value        *tensor.Tensor // Input, Parameter
	RequiresGrad bool           // Parameter
	Op           ops.Op         // Operation
	Inputs       []int          // Operation
}

// Graph is an append-only arena of nodes plus the gradients accumulated by
// the most recent Backward calls.
type Graph struct {
	nodes     []Node
	gradients map[int]*tensor.Tensor
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make([]Node, 0, 64),
		gradients: make(map[int]*tensor.Tensor),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// AddInput appends a fixed input node holding a copy of t and returns its id.
// Input nodes never receive gradients.
func (g *Graph) AddInput(t *tensor.Tensor) int {
	return g.push(Node{Kind: InputNode, Value: t.Clone()})
}

// AddParameter appends a trainable parameter holding a copy of t.
func (g *Graph) AddParameter(t *tensor.Tensor, requiresGrad bool) int {
	return g.push(Node{Kind: ParameterNode, Value: t.Clone(), RequiresGrad: requiresGrad})
}

// ApplyOp appends an operation node over the given input ids and returns its id.
//
// Input ids must refer to already appended nodes; anything else is a
// programming error and panics, since it would break the DAG invariant.
// Operand count is not checked here: op validates it when evaluated.
func (g *Graph) ApplyOp(op ops.Op, inputs ...int) int {
	for _, id := range inputs {
		if id < 0 || id >= len(g.nodes) {
			panic(fmt.Sprintf("autodiff: %s input node %d does not exist (graph has %d nodes)",
				op.Name(), id, len(g.nodes)))
		}
	}
	ids := make([]int, len(inputs))
	copy(ids, inputs)
	return g.push(Node{Kind: OperationNode, Op: op, Inputs: ids})
}

func (g *Graph) push(n Node) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, n)
	return id
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return Node{}, tensor.Indexf("node index out of bounds: %d", id)
	}
	return g.nodes[id], nil
}

// Forward evaluates node id.
//
// Input and Parameter nodes return a copy of their tensor. Operation nodes
// evaluate their inputs recursively, in order, then apply the op. Nothing is
// memoized: shared subgraphs are recomputed on every visit.
func (g *Graph) Forward(id int) (*tensor.Tensor, error) {
	node, err := g.Node(id)
	if err != nil {
		return nil, err
	}

	switch node.Kind {
	case InputNode, ParameterNode:
		return node.Value.Clone(), nil
	case OperationNode:
		inputs, err := g.evalInputs(node.Inputs)
		if err != nil {
			return nil, err
		}
		out, err := node.Op.Forward(inputs)
		if err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", id, node.Op.Name(), err)
		}
		return out, nil
	default:
		return nil, tensor.InvalidOperationf("node %d has unknown kind %d", id, node.Kind)
	}
}

// Tensor is an alias for Forward.
func (g *Graph) Tensor(id int) (*tensor.Tensor, error) {
	return g.Forward(id)
}

func (g *Graph) evalInputs(ids []int) ([]*tensor.Tensor, error) {
	inputs := make([]*tensor.Tensor, len(ids))
	for i, id := range ids {
		t, err := g.Forward(id)
		if err != nil {
			return nil, err
		}
		inputs[i] = t
	}
	return inputs, nil
}

// Gradient returns the gradient accumulated for node id, if any.
// The returned tensor is owned by the graph until the next ZeroGrad.
func (g *Graph) Gradient(id int) (*tensor.Tensor, bool) {
	grad, ok := g.gradients[id]
	return grad, ok
}

// ZeroGrad discards every accumulated gradient.
func (g *Graph) ZeroGrad() {
	clear(g.gradients)
}

// NodeRequiresGrad reports whether node id takes gradient contributions:
// never for inputs, always for operations, and the stored flag for
// parameters. Unknown ids report false.
func (g *Graph) NodeRequiresGrad(id int) bool {
	if id < 0 || id >= len(g.nodes) {
		return false
	}
	node := g.nodes[id]
	switch node.Kind {
	case ParameterNode:
		return node.RequiresGrad
	case OperationNode:
		return true
	default:
		return false
	}
}

// ParameterMut returns the stored tensor of a trainable parameter for
// in-place updates. Fails with *tensor.InvalidOperationError when id is not
// a parameter or the parameter does not require grad.
func (g *Graph) ParameterMut(id int) (*tensor.Tensor, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, tensor.InvalidOperationf("parameter expected, node %d does not exist", id)
	}
	node := g.nodes[id]
	switch {
	case node.Kind != ParameterNode:
		return nil, tensor.InvalidOperationf("parameter expected, node %d is %s", id, node.Kind)
	case !node.RequiresGrad:
		return nil, tensor.InvalidOperationf("parameter %d does not require grad", id)
	}
	return node.Value, nil
}

// Parameters returns the ids of all parameter nodes that require grad, in
// insertion order.
func (g *Graph) Parameters() []int {
	var ids []int
	for id, n := range g.nodes {
		if n.Kind == ParameterNode && n.RequiresGrad {
			ids = append(ids, id)
		}
	}
	return ids
}
