//go:build !fastmath

package binomial

import "math"

// expFn computes e^x using the standard library.
func expFn(x float64) float64 {
	return math.Exp(x)
}
