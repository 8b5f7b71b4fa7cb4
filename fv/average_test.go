package fv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFaceToCell2D(t *testing.T) {
	g := mustGrid(t, []int{3, 4}, []float64{0.5, 0.25})

	cellFlux, err := FaceToCell(g, arange(g.NumFaces))
	require.NoError(t, err)

	r, c := cellFlux.Dims()
	assert.Equal(t, g.NumCells, r)
	assert.Equal(t, g.Dim, c)

	// Corner cell (0,0): one face per axis, halved rather than averaged.
	assert.InDeltaSlice(t, []float64{0, 4}, mat.Row(nil, g.CellIndex([]int{0, 0}), cellFlux), 1e-14)
	// Corner cell (2,3).
	assert.InDeltaSlice(t, []float64{3.5, 8}, mat.Row(nil, g.CellIndex([]int{2, 3}), cellFlux), 1e-14)
	// Interior cell (1,1): true two-face averages.
	assert.InDeltaSlice(t, []float64{2.5, 10.5}, mat.Row(nil, g.CellIndex([]int{1, 1}), cellFlux), 1e-14)
}

func TestFaceToCell3D(t *testing.T) {
	g := mustGrid(t, []int{3, 4, 5}, []float64{0.5, 0.25, 2})

	cellFlux, err := FaceToCell(g, arange(g.NumFaces))
	require.NoError(t, err)

	r, c := cellFlux.Dims()
	assert.Equal(t, g.NumCells, r)
	assert.Equal(t, g.Dim, c)

	assert.InDeltaSlice(t, []float64{0, 20, 42.5},
		mat.Row(nil, g.CellIndex([]int{0, 0, 0}), cellFlux), 1e-14)
	assert.InDeltaSlice(t, []float64{19.5, 42, 66},
		mat.Row(nil, g.CellIndex([]int{2, 3, 4}), cellFlux), 1e-14)
	assert.InDeltaSlice(t, []float64{10.5, 51.5, 95},
		mat.Row(nil, g.CellIndex([]int{1, 1, 1}), cellFlux), 1e-14)
}

func TestFaceToCellDimensionMismatch(t *testing.T) {
	g := mustGrid(t, []int{3, 4}, []float64{0.5, 0.25})

	_, err := FaceToCell(g, make([]float64, g.NumCells))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCellToFaceArithmetic(t *testing.T) {
	g := mustGrid(t, []int{2, 2}, []float64{1, 1})
	values := []float64{1, 2, 3, 4}

	faces, err := CellToFace(g, values, ArithmeticAverage)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 3.5, 2, 3}, faces, 1e-14)
}

func TestCellToFaceHarmonic(t *testing.T) {
	g := mustGrid(t, []int{2, 2}, []float64{1, 1})
	values := []float64{1, 2, 3, 4}

	faces, err := CellToFace(g, values, HarmonicAverage)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4.0 / 3, 24.0 / 7, 1.5, 8.0 / 3}, faces, 1e-14)
}

func TestCellToFaceHarmonicZeroSum(t *testing.T) {
	g := mustGrid(t, []int{2, 2}, []float64{1, 1})
	values := []float64{1, -1, 0, 0}

	faces, err := CellToFace(g, values, HarmonicAverage)
	require.NoError(t, err)
	assert.Zero(t, faces[0])
}

func TestCellToFaceErrors(t *testing.T) {
	g := mustGrid(t, []int{2, 2}, []float64{1, 1})

	_, err := CellToFace(g, make([]float64, g.NumCells-1), ArithmeticAverage)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = CellToFace(g, make([]float64, g.NumCells), CellAverage(9))
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
