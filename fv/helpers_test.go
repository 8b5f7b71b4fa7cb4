package fv

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cssr-tools/darsia/grid"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, shape []int, voxelSize []float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(shape, voxelSize)
	if err != nil {
		t.Fatalf("grid.New(%v, %v): %v", shape, voxelSize, err)
	}
	return g
}

// arange returns [0, 1, ..., n-1] as floats.
func arange(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}

// rowNonZeros scans row i of m and returns the columns and values of its
// nonzero entries in ascending column order.
func rowNonZeros(m mat.Matrix, i int) ([]int, []float64) {
	_, c := m.Dims()
	var cols []int
	var vals []float64
	for j := 0; j < c; j++ {
		if v := m.At(i, j); v != 0 {
			cols = append(cols, j)
			vals = append(vals, v)
		}
	}
	return cols, vals
}
