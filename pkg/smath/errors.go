package smath

import "errors"

// ErrShapeMismatch is returned when two grids that should have come
// from identically-configured simulator runs disagree on dimensions.
var ErrShapeMismatch = errors.New("grid shape mismatch")
