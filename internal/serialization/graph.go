package serialization

import (
	"fmt"
	"io"
	"sort"

	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// SaveParameters writes the current values of the named graph nodes to w.
// Tensors are stored sorted by name.
func SaveParameters(w io.Writer, g *autodiff.Graph, params map[string]int, metadata map[string]string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	tensors := make([]Tensor, 0, len(names))
	for _, name := range names {
		value, err := g.Forward(params[name])
		if err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
		tensors = append(tensors, Tensor{Name: name, Shape: value.Shape(), Data: value.DataMut()})
	}

	return NewWriter(w).Write(tensors, metadata)
}

// LoadParameters reads a checkpoint from r and copies each named tensor into
// the matching trainable parameter of g. It returns the checkpoint metadata.
//
// Every name must be present with the parameter's exact shape. Nothing is
// modified unless all of them are.
func LoadParameters(r io.Reader, g *autodiff.Graph, params map[string]int) (map[string]string, error) {
	ckpt, err := Read(r)
	if err != nil {
		return nil, err
	}

	type update struct {
		dst *tensor.Tensor
		src *tensor.Tensor
	}
	updates := make([]update, 0, len(params))
	for name, id := range params {
		dst, err := g.ParameterMut(id)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		src, err := ckpt.Tensor(name)
		if err != nil {
			return nil, err
		}
		if !src.Shape().Equal(dst.Shape()) {
			return nil, fmt.Errorf("parameter %q has shape %v, checkpoint holds %v: %w",
				name, dst.Shape(), src.Shape(), tensor.ErrShapeMismatch)
		}
		updates = append(updates, update{dst: dst, src: src})
	}

	for _, u := range updates {
		copy(u.dst.DataMut(), u.src.DataMut())
	}
	return ckpt.Metadata(), nil
}
