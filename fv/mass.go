package fv

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/cssr-tools/darsia/grid"
)

// MassMode selects the degrees of freedom a mass matrix is assembled for.
type MassMode uint8

const (
	// CellVolumes is the cell-centered mass matrix: every diagonal entry is
	// the voxel volume.
	CellVolumes MassMode = iota
	// LumpedFaceVolumes is the face-centered lumped mass matrix: every face
	// is assigned the full voxel volume, independent of its normal direction
	// and of boundary proximity. The lumping is deliberate; no half volumes
	// from the two incident cells.
	LumpedFaceVolumes
)

// Mass is a diagonal mass matrix over cell or face degrees of freedom.
type Mass struct {
	grid *grid.Grid
	mode MassMode
	mat  *sparse.DIA
}

// NewMass assembles the diagonal mass matrix for g in the given mode. Any
// mode outside the two declared variants fails with ErrUnsupportedMode.
func NewMass(g *grid.Grid, mode MassMode) (*Mass, error) {
	var n int
	switch mode {
	case CellVolumes:
		n = g.NumCells
	case LumpedFaceVolumes:
		n = g.NumFaces
	default:
		return nil, fmt.Errorf("%w: mass mode %d", ErrUnsupportedMode, mode)
	}
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = g.CellVolume
	}
	return &Mass{grid: g, mode: mode, mat: sparse.NewDIA(n, n, diag)}, nil
}

// Mode returns the variant the matrix was assembled for.
func (m *Mass) Mode() MassMode { return m.mode }

// Matrix returns the assembled diagonal matrix.
func (m *Mass) Matrix() *sparse.DIA { return m.mat }

// Apply scales a vector of cell or face degrees of freedom by the diagonal.
func (m *Mass) Apply(v []float64) ([]float64, error) {
	n, _ := m.mat.Dims()
	if len(v) != n {
		return nil, fmt.Errorf("%w: input has length %d, operator has %d degrees of freedom",
			ErrDimensionMismatch, len(v), n)
	}
	out := make([]float64, n)
	for i, x := range v {
		out[i] = x * m.mat.At(i, i)
	}
	return out, nil
}
