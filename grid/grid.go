package grid

import "fmt"

// Grid describes a regular lattice of axis-aligned voxels with uniform
// per-axis spacing. All fields are populated at construction and must be
// treated as read-only.
type Grid struct {
	Dim       int       // Spatial dimension, 2 or 3
	Shape     []int     // Cells per axis
	VoxelSize []float64 // Physical spacing per axis

	NumCells int // Total number of cells
	NumFaces int // Total number of interior faces, all axis groups

	FaceCounts  []int // Interior faces per normal axis: (n_d - 1) * prod_{k != d} n_k
	FaceOffsets []int // Start of each axis group in the global face numbering

	CellVolume float64   // prod_k h_k, identical for every cell
	FaceAreas  []float64 // Cross section per normal axis: prod_{k != d} h_k

	cellStrides []int   // Flattening strides for cell multi-indices
	faceStrides [][]int // Flattening strides per face group

	interiorFaces []int // Faces with a full tangential neighborhood
	exteriorFaces []int // Faces touching the domain boundary tangentially
}

// New validates the descriptor and builds the full index model: strides,
// face-group offsets, geometric weights and the interior/exterior face
// classification.
func New(shape []int, voxelSize []float64) (*Grid, error) {
	if len(shape) != len(voxelSize) {
		return nil, fmt.Errorf("%w: shape has %d axes, voxel size has %d",
			ErrInvalidGrid, len(shape), len(voxelSize))
	}
	dim := len(shape)
	if dim < 2 || dim > 3 {
		return nil, fmt.Errorf("%w: dimension %d, want 2 or 3", ErrInvalidGrid, dim)
	}
	for d := 0; d < dim; d++ {
		if shape[d] <= 0 {
			return nil, fmt.Errorf("%w: shape[%d] = %d must be positive",
				ErrInvalidGrid, d, shape[d])
		}
		if voxelSize[d] <= 0 {
			return nil, fmt.Errorf("%w: voxel size[%d] = %g must be positive",
				ErrInvalidGrid, d, voxelSize[d])
		}
	}

	g := &Grid{
		Dim:       dim,
		Shape:     append([]int(nil), shape...),
		VoxelSize: append([]float64(nil), voxelSize...),

		FaceCounts:  make([]int, dim),
		FaceOffsets: make([]int, dim),
		FaceAreas:   make([]float64, dim),
		faceStrides: make([][]int, dim),
	}

	g.NumCells = 1
	g.CellVolume = 1
	for d := 0; d < dim; d++ {
		g.NumCells *= shape[d]
		g.CellVolume *= voxelSize[d]
	}
	g.cellStrides = strides(g.Shape)

	for d := 0; d < dim; d++ {
		ext := faceExtent(g.Shape, d)
		count := 1
		for _, n := range ext {
			count *= n
		}
		g.FaceCounts[d] = count
		g.FaceOffsets[d] = g.NumFaces
		g.NumFaces += count
		g.faceStrides[d] = strides(ext)

		area := 1.0
		for k := 0; k < dim; k++ {
			if k != d {
				area *= voxelSize[k]
			}
		}
		g.FaceAreas[d] = area
	}

	g.classifyFaces()

	return g, nil
}

// strides computes axis-0-fastest flattening strides for a lattice extent.
func strides(extent []int) []int {
	s := make([]int, len(extent))
	s[0] = 1
	for k := 1; k < len(extent); k++ {
		s[k] = s[k-1] * extent[k-1]
	}
	return s
}

// faceExtent is the lattice extent of the axis-d face group: the cell extent
// with axis d shortened by one.
func faceExtent(shape []int, d int) []int {
	ext := append([]int(nil), shape...)
	ext[d]--
	return ext
}

// CellIndex flattens a cell multi-index into its linear id.
func (g *Grid) CellIndex(coord []int) int {
	id := 0
	for k, c := range coord {
		id += c * g.cellStrides[k]
	}
	return id
}

// CellCoord recovers the multi-index of a cell from its linear id.
func (g *Grid) CellCoord(cell int) []int {
	coord := make([]int, g.Dim)
	for k := 0; k < g.Dim; k++ {
		coord[k] = cell % g.Shape[k]
		cell /= g.Shape[k]
	}
	return coord
}

// FaceIndex flattens a face-lattice coordinate (the lower cell's multi-index
// with coordinate axis replaced by the gap) into the global face id.
func (g *Grid) FaceIndex(axis int, coord []int) int {
	id := g.FaceOffsets[axis]
	for k, c := range coord {
		id += c * g.faceStrides[axis][k]
	}
	return id
}

// FaceAxis returns the normal axis of the group containing face.
func (g *Grid) FaceAxis(face int) int {
	for d := g.Dim - 1; d > 0; d-- {
		if face >= g.FaceOffsets[d] {
			return d
		}
	}
	return 0
}

// FaceCoord recovers the normal axis and the face-lattice coordinate of a
// face from its global id.
func (g *Grid) FaceCoord(face int) (axis int, coord []int) {
	axis = g.FaceAxis(face)
	local := face - g.FaceOffsets[axis]
	ext := faceExtent(g.Shape, axis)
	coord = make([]int, g.Dim)
	for k := 0; k < g.Dim; k++ {
		coord[k] = local % ext[k]
		local /= ext[k]
	}
	return axis, coord
}

// FaceCells returns the linear ids of the two cells sharing a face: the
// lower cell (coordinate equal to the gap along the normal axis) and the
// upper cell (gap plus one). The adjacency is fixed at construction.
func (g *Grid) FaceCells(face int) (lower, upper int) {
	axis, coord := g.FaceCoord(face)
	lower = g.CellIndex(coord)
	upper = lower + g.cellStrides[axis]
	return lower, upper
}

// FacesOf returns the global ids of the faces incident to cell along axis:
// two for cells interior to that axis, one at the domain boundary, and none
// when the axis holds a single cell.
func (g *Grid) FacesOf(cell, axis int) []int {
	coord := g.CellCoord(cell)
	faces := make([]int, 0, 2)
	if coord[axis] > 0 {
		coord[axis]--
		faces = append(faces, g.FaceIndex(axis, coord))
		coord[axis]++
	}
	if coord[axis] < g.Shape[axis]-1 {
		faces = append(faces, g.FaceIndex(axis, coord))
	}
	return faces
}
