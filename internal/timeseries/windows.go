// Package timeseries provides sliding-window helpers over sampled signals.
package timeseries

import (
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// Windows returns every window of length window over x, starting at offsets
// 0, stride, 2*stride, ... while the window still fits.
//
// Each window is a copy. A series shorter than window yields no windows.
// Fails with *tensor.InvalidOperationError when window or stride is below 1.
func Windows[T any](x []T, window, stride int) ([][]T, error) {
	if window < 1 || stride < 1 {
		return nil, tensor.InvalidOperationf("window and stride must be >= 1, got window=%d stride=%d", window, stride)
	}
	if len(x) < window {
		return [][]T{}, nil
	}

	out := make([][]T, 0, (len(x)-window)/stride+1)
	for start := 0; start+window <= len(x); start += stride {
		w := make([]T, window)
		copy(w, x[start:start+window])
		out = append(out, w)
	}
	return out, nil
}

// Windows1D windows a scalar series.
func Windows1D(x []float32, window, stride int) ([][]float32, error) {
	return Windows(x, window, stride)
}

// Windows2D windows a series of feature vectors. Rows are copied, so each
// window owns its vectors.
func Windows2D(x [][]float32, window, stride int) ([][][]float32, error) {
	windows, err := Windows(x, window, stride)
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		for i, row := range w {
			w[i] = append([]float32(nil), row...)
		}
	}
	return windows, nil
}

// WindowMeans reduces each window of x to its mean.
func WindowMeans(x []float32, window, stride int) ([]float32, error) {
	windows, err := Windows1D(x, window, stride)
	if err != nil {
		return nil, err
	}

	means := make([]float32, len(windows))
	buf := make([]float64, window)
	for i, w := range windows {
		for j, v := range w {
			buf[j] = float64(v)
		}
		means[i] = float32(stat.Mean(buf, nil))
	}
	return means, nil
}

// ToTensor stacks windows into a [len(windows), window] tensor.
func ToTensor(windows [][]float32) (*tensor.Tensor, error) {
	if len(windows) == 0 {
		return nil, tensor.Dimensionf("no windows to stack")
	}
	width := len(windows[0])
	data := make([]float32, 0, len(windows)*width)
	for _, w := range windows {
		if len(w) != width {
			return nil, &tensor.ShapeMismatchError{Expected: width, Got: len(w)}
		}
		data = append(data, w...)
	}
	return tensor.New(data, tensor.Shape{len(windows), width})
}
