// Package hist provides bin-edge construction and value binning for
// one-dimensional histograms.
//
// Bins follow the NumPy convention: each bin is half-open on the right,
// [edges[i], edges[i+1]), except the last bin, which is closed on both
// sides, [edges[n-1], edges[n]]. Values outside [edges[0], edges[n]] do
// not belong to any bin.
package hist

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrInvalidBinCount = errors.New("hist: bin count must be positive")
	ErrInvalidRange    = errors.New("hist: range low must be less than high")
	ErrTooFewEdges     = errors.New("hist: at least two bin edges required")
	ErrEdgeOrder       = errors.New("hist: bin edges must be strictly increasing")
)

// Edges holds nbins+1 strictly increasing bin boundaries.
type Edges []float64

// Linear returns nbins+1 equal-width bin edges partitioning [lo, hi].
func Linear(nbins int, lo, hi float64) (Edges, error) {
	if nbins < 1 {
		return nil, ErrInvalidBinCount
	}

	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, ErrInvalidRange
	}

	edges := make(Edges, nbins+1)
	width := (hi - lo) / float64(nbins)

	for i := range edges {
		edges[i] = lo + float64(i)*width
	}

	// Guard against rounding drift on the final edge: values equal to hi
	// must land in the last bin.
	edges[nbins] = hi

	return edges, nil
}

// Validate reports whether the edges form a usable bin specification.
func (e Edges) Validate() error {
	if len(e) < 2 {
		return ErrTooFewEdges
	}

	for i, v := range e {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrEdgeOrder
		}

		if i > 0 && v <= e[i-1] {
			return ErrEdgeOrder
		}
	}

	return nil
}

// NumBins returns the number of bins described by the edges.
func (e Edges) NumBins() int {
	if len(e) < 2 {
		return 0
	}

	return len(e) - 1
}

// Centers returns the midpoint of each bin.
func (e Edges) Centers() []float64 {
	n := e.NumBins()
	if n == 0 {
		return nil
	}

	centers := make([]float64, n)
	for i := range centers {
		centers[i] = (e[i] + e[i+1]) / 2
	}

	return centers
}

// Index returns the bin index for x, or -1 if x lies outside the edges.
// The caller must have validated the edges.
func (e Edges) Index(x float64) int {
	n := e.NumBins()
	if n == 0 || math.IsNaN(x) || x < e[0] || x > e[n] {
		return -1
	}

	// Closed final edge: a value exactly on the rightmost boundary
	// belongs to the last bin.
	if x == e[n] {
		return n - 1
	}

	// Smallest i with e[i] > x; the containing bin starts one edge below.
	idx := sort.Search(len(e), func(i int) bool { return e[i] > x })

	return idx - 1
}

// Count returns the number of values falling into each bin. Values outside
// the edges are skipped.
func Count(x []float64, edges Edges) ([]int, error) {
	if err := edges.Validate(); err != nil {
		return nil, err
	}

	counts := make([]int, edges.NumBins())

	for _, v := range x {
		if i := edges.Index(v); i >= 0 {
			counts[i]++
		}
	}

	return counts, nil
}
