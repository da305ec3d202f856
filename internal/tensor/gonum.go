package tensor

import "gonum.org/v1/gonum/mat"

// Matrix converts a rank-2 tensor into a gonum dense matrix (float64 copy).
func (t *Tensor) Matrix() (*mat.Dense, error) {
	if t.Rank() != 2 {
		return nil, Dimensionf("matrix conversion requires a 2D tensor, got %dD", t.Rank())
	}
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = float64(v)
	}
	return mat.NewDense(t.shape[0], t.shape[1], data), nil
}

// FromMatrix converts any gonum matrix into a rank-2 tensor, narrowing
// elements to float32. An empty matrix fails with *DimensionError.
func FromMatrix(m mat.Matrix) (*Tensor, error) {
	rows, cols := m.Dims()
	data := make([]float32, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float32(m.At(i, j))
		}
	}
	return New(data, Shape{rows, cols})
}
