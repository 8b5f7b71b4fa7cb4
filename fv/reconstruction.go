package fv

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cssr-tools/darsia/grid"
)

// TangentialReconstruction estimates, for every face, the flux components
// orthogonal to the face's own normal direction by averaging neighboring
// faces. It holds dim-1 sparse (NumFaces x NumFaces) matrices: matrix j maps
// a per-face normal-flux vector to the estimate along the j-th tangential
// axis of each face, where the tangential axes of a face with normal d are
// the remaining axes in ascending order.
//
// For a face f and tangential axis e the stencil is the up to four faces
// with normal e bounding f's two incident cells, each entering with a fixed
// weight of 1/4. Candidates missing at the domain boundary drop out and the
// weights are never renormalized, so exterior faces carry a systematically
// damped estimate.
type TangentialReconstruction struct {
	grid *grid.Grid
	mats []*sparse.CSR
}

// NewTangentialReconstruction assembles the dim-1 tangential averaging
// matrices for g.
func NewTangentialReconstruction(g *grid.Grid) *TangentialReconstruction {
	slots := g.Dim - 1
	rows := make([][]int, slots)
	cols := make([][]int, slots)
	data := make([][]float64, slots)

	cell := make([]int, g.Dim)
	neighbor := make([]int, g.Dim)
	for f := 0; f < g.NumFaces; f++ {
		axis, coord := g.FaceCoord(f)
		slot := 0
		for e := 0; e < g.Dim; e++ {
			if e == axis {
				continue
			}
			// The two incident cells along the face normal, offset 0 being
			// the lower cell.
			for off := 0; off <= 1; off++ {
				copy(cell, coord)
				cell[axis] += off
				// The two faces bounding the cell along axis e, as far as
				// they exist.
				for _, gap := range [2]int{cell[e] - 1, cell[e]} {
					if gap < 0 || gap > g.Shape[e]-2 {
						continue
					}
					copy(neighbor, cell)
					neighbor[e] = gap
					rows[slot] = append(rows[slot], f)
					cols[slot] = append(cols[slot], g.FaceIndex(e, neighbor))
					data[slot] = append(data[slot], 0.25)
				}
			}
			slot++
		}
	}

	mats := make([]*sparse.CSR, slots)
	for j := 0; j < slots; j++ {
		coo := sparse.NewCOO(g.NumFaces, g.NumFaces, rows[j], cols[j], data[j])
		mats[j] = coo.ToCSR()
	}
	return &TangentialReconstruction{grid: g, mats: mats}
}

// Matrices returns the dim-1 assembled matrices in tangential-slot order.
// The returned matrices are shared and must be treated as read-only.
func (t *TangentialReconstruction) Matrices() []*sparse.CSR { return t.mats }

// Apply evaluates all tangential slots for a per-face normal-flux vector,
// returning one vector of length NumFaces per slot.
func (t *TangentialReconstruction) Apply(flux []float64) ([][]float64, error) {
	if len(flux) != t.grid.NumFaces {
		return nil, fmt.Errorf("%w: flux has length %d, grid has %d faces",
			ErrDimensionMismatch, len(flux), t.grid.NumFaces)
	}
	out := make([][]float64, len(t.mats))
	for j, m := range t.mats {
		out[j] = make([]float64, t.grid.NumFaces)
		sparse.MulMatRawVec(m, flux, out[j])
	}
	return out, nil
}

// FullReconstruction composes the raw normal component of each face with the
// tangential estimates into a complete per-face vector field. The tangential
// matrices are built once at construction and reused across applications.
type FullReconstruction struct {
	grid       *grid.Grid
	tangential *TangentialReconstruction
}

// NewFullReconstruction assembles the full face reconstruction for g.
func NewFullReconstruction(g *grid.Grid) *FullReconstruction {
	return &FullReconstruction{grid: g, tangential: NewTangentialReconstruction(g)}
}

// Apply returns a dense (NumFaces x Dim) field: in row f, the column of f's
// own normal axis carries the input value unchanged and every other column
// carries the tangential estimate for that axis.
func (r *FullReconstruction) Apply(flux []float64) (*mat.Dense, error) {
	g := r.grid
	tangential, err := r.tangential.Apply(flux)
	if err != nil {
		return nil, err
	}
	full := mat.NewDense(g.NumFaces, g.Dim, nil)
	for f := 0; f < g.NumFaces; f++ {
		axis := g.FaceAxis(f)
		slot := 0
		for k := 0; k < g.Dim; k++ {
			if k == axis {
				full.Set(f, k, flux[f])
				continue
			}
			full.Set(f, k, tangential[slot][f])
			slot++
		}
	}
	return full, nil
}
