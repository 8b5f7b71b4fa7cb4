package fv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cssr-tools/darsia/grid"
)

// FaceToCell reconstructs a per-cell vector field from a per-face normal
// flux. The result is a dense (NumCells x Dim) matrix, rows in cell linear-id
// order: entry (c, d) is half the sum of the up to two faces incident to c
// along axis d. Cells missing a neighbor on one side keep the halved single
// contribution; there is no renormalization, so boundary cells are damped
// independently per axis.
func FaceToCell(g *grid.Grid, flux []float64) (*mat.Dense, error) {
	if len(flux) != g.NumFaces {
		return nil, fmt.Errorf("%w: flux has length %d, grid has %d faces",
			ErrDimensionMismatch, len(flux), g.NumFaces)
	}
	out := mat.NewDense(g.NumCells, g.Dim, nil)
	for c := 0; c < g.NumCells; c++ {
		for d := 0; d < g.Dim; d++ {
			v := 0.0
			for _, f := range g.FacesOf(c, d) {
				v += 0.5 * flux[f]
			}
			out.Set(c, d, v)
		}
	}
	return out, nil
}

// CellAverage selects how the two cell values incident to a face are
// combined by CellToFace.
type CellAverage uint8

const (
	// ArithmeticAverage combines incident cell values as (a + b) / 2.
	ArithmeticAverage CellAverage = iota
	// HarmonicAverage combines incident cell values as 2ab / (a + b),
	// zero when the sum vanishes. Suited to cell transmissibilities.
	HarmonicAverage
)

// CellToFace averages a per-cell scalar onto the interior faces of g,
// returning one value per face in global face order.
func CellToFace(g *grid.Grid, values []float64, mode CellAverage) ([]float64, error) {
	if len(values) != g.NumCells {
		return nil, fmt.Errorf("%w: values has length %d, grid has %d cells",
			ErrDimensionMismatch, len(values), g.NumCells)
	}
	switch mode {
	case ArithmeticAverage, HarmonicAverage:
	default:
		return nil, fmt.Errorf("%w: cell average %d", ErrUnsupportedMode, mode)
	}
	out := make([]float64, g.NumFaces)
	for f := 0; f < g.NumFaces; f++ {
		lower, upper := g.FaceCells(f)
		a, b := values[lower], values[upper]
		switch mode {
		case ArithmeticAverage:
			out[f] = 0.5 * (a + b)
		case HarmonicAverage:
			if s := a + b; s != 0 {
				out[f] = 2 * a * b / s
			}
		}
	}
	return out, nil
}
