//go:build fastmath

package binomial

import "github.com/meko-christian/algo-approx"

// expFn computes e^x using fast approximation. The exact-mode error walk
// evaluates the PMF tens of thousands of times per bin, so the reduced
// precision trades directly against run time.
func expFn(x float64) float64 {
	return approx.FastExp(x)
}
