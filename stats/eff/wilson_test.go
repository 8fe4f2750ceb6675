package eff

import (
	"math"
	"testing"
)

func TestWilsonKnownValue(t *testing.T) {
	// 90 successes out of 100 at 95% confidence.
	lo, hi := Wilson(90, 100, 1.96)

	if !almostEqual(lo, 0.82563, 5e-4) {
		t.Errorf("lo = %v, want ~0.82563", lo)
	}

	if !almostEqual(hi, 0.94477, 5e-4) {
		t.Errorf("hi = %v, want ~0.94477", hi)
	}
}

func TestWilsonNoTrials(t *testing.T) {
	lo, hi := Wilson(0, 0, 1.96)
	if lo != 0 || hi != 1 {
		t.Errorf("n=0: got (%v, %v), want (0, 1)", lo, hi)
	}
}

func TestWilsonStaysInDomain(t *testing.T) {
	cases := []struct{ k, n int }{
		{0, 1}, {1, 1}, {0, 50}, {50, 50}, {1, 2}, {25, 50},
	}

	for _, tc := range cases {
		lo, hi := Wilson(tc.k, tc.n, 1.96)
		p := float64(tc.k) / float64(tc.n)

		if lo < 0 || hi > 1 || lo > hi {
			t.Errorf("Wilson(%d, %d): interval (%v, %v) malformed", tc.k, tc.n, lo, hi)
		}

		if p < lo-1e-12 || p > hi+1e-12 {
			t.Errorf("Wilson(%d, %d): p = %v outside (%v, %v)", tc.k, tc.n, p, lo, hi)
		}
	}
}

func TestWilsonShrinksWithN(t *testing.T) {
	lo1, hi1 := Wilson(5, 10, 1)
	lo2, hi2 := Wilson(500, 1000, 1)

	if hi2-lo2 >= hi1-lo1 {
		t.Errorf("interval did not shrink: n=10 width %v, n=1000 width %v", hi1-lo1, hi2-lo2)
	}

	// Large n converges on the normal approximation.
	want := math.Sqrt(0.25 / 1000)
	if !almostEqual(hi2-lo2, 2*want, 1e-3) {
		t.Errorf("n=1000 width = %v, want ~%v", hi2-lo2, 2*want)
	}
}
