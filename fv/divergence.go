package fv

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/cssr-tools/darsia/grid"
)

// Divergence is the discrete divergence operator of a structured grid: a
// sparse (NumCells x NumFaces) matrix with the signed face area at the two
// cells incident to each face. Applied to a per-face normal-flux vector it
// yields the net outward flux per cell. Entries are area weighted, not
// volume normalized; divide by the cell volume separately for a rate.
type Divergence struct {
	grid *grid.Grid
	mat  *sparse.CSR
}

// NewDivergence assembles the divergence matrix for g. For a face in axis
// group d with lower cell L and upper cell U the row entries are
// D[L,f] = +A_d and D[U,f] = -A_d, where A_d is the cross section of a face
// normal to axis d.
func NewDivergence(g *grid.Grid) *Divergence {
	nnz := 2 * g.NumFaces
	rows := make([]int, 0, nnz)
	cols := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for f := 0; f < g.NumFaces; f++ {
		area := g.FaceAreas[g.FaceAxis(f)]
		lower, upper := g.FaceCells(f)
		rows = append(rows, lower, upper)
		cols = append(cols, f, f)
		data = append(data, area, -area)
	}
	coo := sparse.NewCOO(g.NumCells, g.NumFaces, rows, cols, data)
	return &Divergence{grid: g, mat: coo.ToCSR()}
}

// Matrix returns the assembled sparse matrix.
func (d *Divergence) Matrix() *sparse.CSR { return d.mat }

// Apply computes the per-cell net outward flux of a per-face flux vector.
func (d *Divergence) Apply(flux []float64) ([]float64, error) {
	if len(flux) != d.grid.NumFaces {
		return nil, fmt.Errorf("%w: flux has length %d, grid has %d faces",
			ErrDimensionMismatch, len(flux), d.grid.NumFaces)
	}
	out := make([]float64, d.grid.NumCells)
	sparse.MulMatRawVec(d.mat, flux, out)
	return out, nil
}
