package tensor

// RavelIndex converts a multi-dimensional coordinate into a row-major flat
// offset for shape.
func RavelIndex(idx []int, shape Shape) (int, error) {
	if len(idx) != len(shape) {
		return 0, Dimensionf("rank mismatch: idx rank %d != shape rank %d", len(idx), len(shape))
	}

	strides := shape.ComputeStrides()
	flat := 0
	for i, c := range idx {
		if c < 0 || c >= shape[i] {
			return 0, Indexf("index %d out of bounds for dim %d with size %d", c, i, shape[i])
		}
		flat += c * strides[i]
	}
	return flat, nil
}

// UnravelIndex converts a row-major flat offset into a coordinate for shape.
func UnravelIndex(flat int, shape Shape) ([]int, error) {
	numel := shape.NumElements()
	if flat < 0 || flat >= numel {
		return nil, Indexf("flat index %d out of bounds for %d elements", flat, numel)
	}
	return unravel(flat, shape.ComputeStrides()), nil
}

// unravel is UnravelIndex without bounds checking, for callers that iterate a
// known-valid range with precomputed strides.
func unravel(flat int, strides []int) []int {
	out := make([]int, len(strides))
	for i, s := range strides {
		out[i] = flat / s
		flat %= s
	}
	return out
}
