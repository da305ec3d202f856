package optim

import (
	"github.com/born-ml/neuroncore/internal/autodiff"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity - lr * gradient
//	param = param + velocity
//
// Velocities are kept per parameter id and start at zero.
type SGD struct {
	params     []int
	lr         float32
	momentum   float32
	velocities map[int]*tensor.Tensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter ids.
func NewSGD(params []int, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	ids := make([]int, len(params))
	copy(ids, params)
	return &SGD{
		params:     ids,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[int]*tensor.Tensor),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(g *autodiff.Graph) error {
	for _, id := range s.params {
		param, grad, err := getGradient(g, id)
		if err != nil {
			return err
		}
		if grad == nil {
			continue
		}

		if s.momentum == 0 {
			s.updateParameter(param, grad)
		} else {
			s.updateParameterWithMomentum(id, param, grad)
		}
	}
	return nil
}

func (s *SGD) updateParameter(param, grad *tensor.Tensor) {
	p := param.DataMut()
	gd := grad.DataMut()
	for i := range p {
		p[i] -= s.lr * gd[i]
	}
}

func (s *SGD) updateParameterWithMomentum(id int, param, grad *tensor.Tensor) {
	velocity, ok := s.velocities[id]
	if !ok {
		velocity = tensor.ZerosLike(param)
		s.velocities[id] = velocity
	}

	v := velocity.DataMut()
	p := param.DataMut()
	gd := grad.DataMut()
	for i := range p {
		v[i] = s.momentum*v[i] - s.lr*gd[i]
		p[i] += v[i]
	}
}

// ZeroGrad clears every gradient in g.
func (s *SGD) ZeroGrad(g *autodiff.Graph) {
	g.ZeroGrad()
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

// Velocity returns the momentum buffer of parameter id, if one exists.
func (s *SGD) Velocity(id int) (*tensor.Tensor, bool) {
	v, ok := s.velocities[id]
	return v, ok
}
