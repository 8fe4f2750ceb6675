// Package binomial provides the binomial probability mass function and
// likelihood integrals used for efficiency error estimation.
package binomial

import "math"

// LogPMF returns log P(K=k) for a Binomial(n, p) distribution. The p = 0
// and p = 1 limits are handled exactly; impossible outcomes return -Inf.
func LogPMF(k, n int, p float64) float64 {
	if k < 0 || n < 0 || k > n || math.IsNaN(p) {
		return math.Inf(-1)
	}

	if p <= 0 {
		if k == 0 {
			return 0
		}

		return math.Inf(-1)
	}

	if p >= 1 {
		if k == n {
			return 0
		}

		return math.Inf(-1)
	}

	lgN, _ := math.Lgamma(float64(n + 1))
	lgK, _ := math.Lgamma(float64(k + 1))
	lgNK, _ := math.Lgamma(float64(n - k + 1))

	return lgN - lgK - lgNK + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p)
}

// PMF returns P(K=k) for a Binomial(n, p) distribution.
func PMF(k, n int, p float64) float64 {
	lp := LogPMF(k, n, p)
	if math.IsInf(lp, -1) {
		return 0
	}

	return expFn(lp)
}
