package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/neuroncore/internal/tensor"
)

// TestMatMul_MatchesGonum cross-checks the naive product against gonum.
func TestMatMul_MatchesGonum(t *testing.T) {
	a, err := tensor.Random(tensor.Shape{3, 4}, 11)
	require.NoError(t, err)
	b, err := tensor.Random(tensor.Shape{4, 2}, 12)
	require.NoError(t, err)

	got, err := a.MatMul(b)
	require.NoError(t, err)

	am, err := a.Matrix()
	require.NoError(t, err)
	bm, err := b.Matrix()
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(am, bm)

	wantT, err := tensor.FromMatrix(&want)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, got.Shape())
	assert.InDeltaSlice(t, wantT.Data(), got.Data(), 1e-5)
}

// TestTranspose2D_MatchesGonum cross-checks Transpose2D against mat.Matrix.T.
func TestTranspose2D_MatchesGonum(t *testing.T) {
	x, err := tensor.Random(tensor.Shape{2, 5}, 3)
	require.NoError(t, err)

	got, err := x.Transpose2D()
	require.NoError(t, err)

	m, err := x.Matrix()
	require.NoError(t, err)
	want, err := tensor.FromMatrix(m.T())
	require.NoError(t, err)

	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.Data(), got.Data())
}

func TestMatrix_RequiresRank2(t *testing.T) {
	x, err := tensor.Ones(tensor.Shape{4})
	require.NoError(t, err)
	_, err = x.Matrix()
	assert.ErrorIs(t, err, tensor.ErrDimension)
}

func TestFromMatrix_RejectsEmpty(t *testing.T) {
	_, err := tensor.FromMatrix(&mat.Dense{})
	assert.ErrorIs(t, err, tensor.ErrDimension)

	x, err := tensor.FromMatrix(mat.NewDense(1, 2, []float64{1.5, -2}))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 2}, x.Shape())
	assert.Equal(t, []int{2, 1}, x.Strides())
	assert.Equal(t, []float32{1.5, -2}, x.Data())
}
