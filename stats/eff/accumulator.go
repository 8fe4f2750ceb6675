package eff

import (
	"fmt"

	"github.com/cwbudde/algo-astro/stats/hist"
)

// Accumulator builds an efficiency histogram incrementally over fixed bin
// edges. For the same data it produces bit-for-bit identical results with
// [Compute].
type Accumulator struct {
	edges     hist.Edges
	total     []int
	successes []int
}

// NewAccumulator creates an accumulator over the given bin edges. The
// edges are copied and validated once here.
func NewAccumulator(edges hist.Edges) (*Accumulator, error) {
	if err := edges.Validate(); err != nil {
		return nil, fmt.Errorf("eff: invalid bin edges: %w", err)
	}

	e := append(hist.Edges(nil), edges...)

	return &Accumulator{
		edges:     e,
		total:     make([]int, e.NumBins()),
		successes: make([]int, e.NumBins()),
	}, nil
}

// Add records a single trial. Values outside the edges are ignored.
func (a *Accumulator) Add(x float64, success bool) {
	i := a.edges.Index(x)
	if i < 0 {
		return
	}

	a.total[i]++

	if success {
		a.successes[i]++
	}
}

// AddBlock records a block of trials matched positionally.
func (a *Accumulator) AddBlock(xs []float64, oks []bool) error {
	if len(xs) != len(oks) {
		return ErrLengthMismatch
	}

	for i, x := range xs {
		a.Add(x, oks[i])
	}

	return nil
}

// Count returns the number of trials recorded so far, excluding values
// that fell outside the edges.
func (a *Accumulator) Count() int {
	var n int
	for _, c := range a.total {
		n += c
	}

	return n
}

// Result computes the efficiency histogram from the accumulated counts.
// Only the error-mode options (WithFullErrors, WithReturnAll, WithStep)
// apply here; the bin specification was fixed at construction.
func (a *Accumulator) Result(opts ...Option) Result {
	cfg := ApplyOptions(opts...)
	return fromCounts(a.edges, a.total, a.successes, cfg)
}

// Reset clears all accumulated counts, keeping the edges.
func (a *Accumulator) Reset() {
	for i := range a.total {
		a.total[i] = 0
		a.successes[i] = 0
	}
}
