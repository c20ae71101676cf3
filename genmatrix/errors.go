package genmatrix

import "errors"

// ErrTooFewColumns indicates n was too small for the requested fixture.
var ErrTooFewColumns = errors.New("genmatrix: n too small")

// ErrInvalidDensity indicates a requested density outside its valid range.
var ErrInvalidDensity = errors.New("genmatrix: density out of range")
