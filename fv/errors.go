package fv

import "errors"

var (
	// ErrUnsupportedMode indicates an unknown mass-matrix or cell-average
	// variant.
	ErrUnsupportedMode = errors.New("fv: unsupported mode")
	// ErrDimensionMismatch indicates an input vector whose length does not
	// match the grid's face or cell count.
	ErrDimensionMismatch = errors.New("fv: dimension mismatch")
)
