package eff

import "errors"

var (
	ErrLengthMismatch = errors.New("eff: x and success must have the same length")
	ErrNoData         = errors.New("eff: no input values")
	ErrInvalidBins    = errors.New("eff: bin count must be positive")
	ErrInvalidRange   = errors.New("eff: range low must be less than high")
)
