// Package grid models a structured, axis-aligned lattice of uniform voxels
// in two or three dimensions, together with the index algebra shared by all
// finite-volume operators built on top of it.
//
// Cells are addressed by multi-indices flattened with axis 0 varying fastest:
// the linear id of (c0, ..., c_{dim-1}) is sum_k c_k * stride_k with
// stride_0 = 1 and stride_k = stride_{k-1} * n_{k-1}.
//
// Only interior faces are represented, i.e. faces shared by two axis-adjacent
// cells; domain-boundary faces are never materialized. Faces are grouped by
// their normal axis. A face in group d separates the cells with coordinate
// d = g and d = g+1 ("lower" and "upper" cell) and is addressed by the cell
// multi-index with coordinate d replaced by the gap g, flattened with the
// same rule but with extent n_d - 1 along axis d. Groups are concatenated in
// axis order, so a global face id is its group offset plus its local id.
//
// All derived quantities are computed eagerly at construction; a Grid is
// immutable afterwards and safe for concurrent use.
package grid
