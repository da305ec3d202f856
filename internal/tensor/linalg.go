package tensor

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Both operands must be rank 2 (*DimensionError otherwise) and share the inner
// dimension (*InvalidOperationError otherwise). Uses the naive O(n³) loop.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if t.Rank() != 2 || other.Rank() != 2 {
		return nil, Dimensionf("matmul requires 2D tensors, got %dD and %dD", t.Rank(), other.Rank())
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, InvalidOperationf("matmul shape mismatch %v @ %v", t.shape, other.shape)
	}

	out := make([]float32, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += t.data[i*k+p] * other.data[p*n+j]
			}
			out[i*n+j] = sum
		}
	}

	return New(out, Shape{m, n})
}

// Transpose2D swaps the two axes of a rank-2 tensor, rearranging its data.
func (t *Tensor) Transpose2D() (*Tensor, error) {
	if t.Rank() != 2 {
		return nil, Dimensionf("transpose_2d requires a 2D tensor, got %dD", t.Rank())
	}

	rows, cols := t.shape[0], t.shape[1]
	out := make([]float32, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c*rows+r] = t.data[r*cols+c]
		}
	}

	return New(out, Shape{cols, rows})
}
