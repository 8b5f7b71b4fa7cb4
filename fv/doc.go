// Package fv assembles sparse finite-volume operators over a structured
// voxel grid: the discrete divergence, diagonal mass matrices, and the
// face-based flux reconstructions used to turn per-face normal fluxes into
// full vector fields.
//
// Every operator is derived once, eagerly, from an immutable grid.Grid and
// never mutated afterwards, so operators can be shared freely across
// goroutines. Sparse matrices are accumulated as (row, col, value) triplets
// and compressed into CSR form exactly once; diagonal operators use DIA
// storage. Assembly is O(NumFaces), each face contributing a small constant
// number of entries.
//
// Inputs are plain []float64 vectors in the grid's global face or cell
// numbering. Malformed inputs fail eagerly with ErrDimensionMismatch; unknown
// operator modes fail with ErrUnsupportedMode. No operation leaves partial
// state behind.
package fv
