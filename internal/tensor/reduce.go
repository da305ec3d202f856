package tensor

// SumAll reduces every element into a single-element rank-1 tensor.
func (t *Tensor) SumAll() *Tensor {
	var total float32
	for _, v := range t.data {
		total += v
	}
	return &Tensor{data: []float32{total}, shape: Shape{1}, strides: []int{1}}
}

// SumDim reduces along axis, keeping it as a size-1 dimension.
//
// Example: summing [[1,2],[3,4]] along 0 gives [[4,6]] with shape [1,2].
func (t *Tensor) SumDim(axis int) (*Tensor, error) {
	if axis < 0 || axis >= t.Rank() {
		return nil, Dimensionf("invalid axis %d for rank %d", axis, t.Rank())
	}

	outShape := t.shape.Clone()
	outShape[axis] = 1
	out, err := Zeros(outShape)
	if err != nil {
		return nil, err
	}

	for flat, v := range t.data {
		coord := unravel(flat, t.strides)
		coord[axis] = 0
		dst, err := RavelIndex(coord, outShape)
		if err != nil {
			return nil, err
		}
		out.data[dst] += v
	}

	return out, nil
}
