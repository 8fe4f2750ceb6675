package eff

import "math"

// Wilson returns the Wilson score interval for the proportion
// successes/n at z standard deviations (z = 1 for ~68.3%, 1.96 for 95%).
// The interval stays inside [0, 1] even for extreme proportions, making
// it a cheap alternative to the exact credible interval when p is close
// to 0 or 1. For n = 0 the interval is the whole domain.
func Wilson(successes, n int, z float64) (lo, hi float64) {
	if n <= 0 {
		return 0, 1
	}

	p := float64(successes) / float64(n)
	nf := float64(n)

	den := 1 + z*z/nf
	center := p + z*z/(2*nf)
	rad := z * math.Sqrt((p*(1-p)+z*z/(4*nf))/nf)

	return (center - rad) / den, (center + rad) / den
}
