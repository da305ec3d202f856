package nn

import (
	"math"

	"github.com/born-ml/neuroncore/internal/prng"
	"github.com/born-ml/neuroncore/internal/tensor"
)

// Uniform creates a tensor with values drawn from U(-1/sqrt(fanIn), 1/sqrt(fanIn))
// by an XorShift32 generator seeded with seed.
//
// The same seed always yields the same tensor.
func Uniform(fanIn int, shape tensor.Shape, seed uint32) (*tensor.Tensor, error) {
	if fanIn <= 0 {
		return nil, tensor.Dimensionf("fan-in must be positive, got %d", fanIn)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	bound := float32(1 / math.Sqrt(float64(fanIn)))

	data := make([]float32, shape.NumElements())
	prng.New(seed).Fill(data, -bound, bound)
	return tensor.New(data, shape)
}
