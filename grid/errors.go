package grid

import "errors"

// ErrInvalidGrid indicates a malformed grid descriptor: mismatched shape and
// voxel-size arity, a non-positive entry, or an unsupported dimension.
var ErrInvalidGrid = errors.New("grid: invalid grid")
