package binomial

// simpsonPanels is the panel count for the composite Simpson rule. Must be
// even. The binomial likelihood is smooth on [0,1], so a fixed panel count
// gives ample precision for interval-mass normalization.
const simpsonPanels = 2048

// IntegratePMF integrates the binomial likelihood PMF(k, n, p) over
// p in [lo, hi] using the composite Simpson rule. Bounds are clamped to
// [0, 1]; an empty or inverted interval integrates to zero.
func IntegratePMF(k, n int, lo, hi float64) float64 {
	if lo < 0 {
		lo = 0
	}

	if hi > 1 {
		hi = 1
	}

	if hi <= lo {
		return 0
	}

	h := (hi - lo) / simpsonPanels
	sum := PMF(k, n, lo) + PMF(k, n, hi)

	for i := 1; i < simpsonPanels; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}

		sum += w * PMF(k, n, lo+float64(i)*h)
	}

	return sum * h / 3
}
