package binomial

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPMFKnownValues(t *testing.T) {
	cases := []struct {
		k, n int
		p    float64
		want float64
	}{
		{0, 1, 0.5, 0.5},
		{1, 1, 0.5, 0.5},
		{1, 2, 0.5, 0.5},
		{2, 4, 0.5, 0.375},    // C(4,2)/16
		{3, 5, 0.6, 0.34560},  // C(5,3) * 0.6^3 * 0.4^2
		{0, 10, 0.1, math.Pow(0.9, 10)},
		{10, 10, 0.9, math.Pow(0.9, 10)},
	}

	for _, tc := range cases {
		got := PMF(tc.k, tc.n, tc.p)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("PMF(%d, %d, %v) = %v, want %v", tc.k, tc.n, tc.p, got, tc.want)
		}
	}
}

func TestPMFLimits(t *testing.T) {
	if got := PMF(0, 5, 0); got != 1 {
		t.Errorf("PMF(0, 5, 0) = %v, want 1", got)
	}

	if got := PMF(3, 5, 0); got != 0 {
		t.Errorf("PMF(3, 5, 0) = %v, want 0", got)
	}

	if got := PMF(5, 5, 1); got != 1 {
		t.Errorf("PMF(5, 5, 1) = %v, want 1", got)
	}

	if got := PMF(4, 5, 1); got != 0 {
		t.Errorf("PMF(4, 5, 1) = %v, want 0", got)
	}

	if got := PMF(6, 5, 0.5); got != 0 {
		t.Errorf("PMF(6, 5, 0.5) = %v, want 0 for k > n", got)
	}

	if got := PMF(-1, 5, 0.5); got != 0 {
		t.Errorf("PMF(-1, 5, 0.5) = %v, want 0 for k < 0", got)
	}
}

func TestPMFSumsToOne(t *testing.T) {
	const n = 20
	p := 0.37

	var sum float64
	for k := 0; k <= n; k++ {
		sum += PMF(k, n, p)
	}

	if !almostEqual(sum, 1, tolerance) {
		t.Errorf("sum over k = %v, want 1", sum)
	}
}

func TestIntegratePMFFullDomain(t *testing.T) {
	// Integral of the binomial likelihood over p in [0,1] is 1/(n+1)
	// for any k (Bayes-Laplace rule of succession).
	for _, n := range []int{1, 5, 20} {
		for k := 0; k <= n; k++ {
			got := IntegratePMF(k, n, 0, 1)
			want := 1 / float64(n+1)

			if !almostEqual(got, want, 1e-6) {
				t.Errorf("IntegratePMF(%d, %d, 0, 1) = %v, want %v", k, n, got, want)
			}
		}
	}
}

func TestIntegratePMFSplit(t *testing.T) {
	// Mass below + mass above the point estimate must add up to the
	// full-domain integral.
	const (
		k = 3
		n = 5
	)

	p := 0.6
	below := IntegratePMF(k, n, 0, p)
	above := IntegratePMF(k, n, p, 1)
	full := IntegratePMF(k, n, 0, 1)

	if !almostEqual(below+above, full, 1e-9) {
		t.Errorf("below+above = %v, want %v", below+above, full)
	}
}

func TestIntegratePMFDegenerate(t *testing.T) {
	if got := IntegratePMF(2, 5, 0.4, 0.4); got != 0 {
		t.Errorf("zero-width interval = %v, want 0", got)
	}

	if got := IntegratePMF(2, 5, 0.7, 0.3); got != 0 {
		t.Errorf("inverted interval = %v, want 0", got)
	}

	// Bounds clamped to [0, 1].
	a := IntegratePMF(2, 5, -1, 2)
	b := IntegratePMF(2, 5, 0, 1)

	if !almostEqual(a, b, tolerance) {
		t.Errorf("clamped integral = %v, want %v", a, b)
	}
}
