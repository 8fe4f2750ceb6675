package eff

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-astro/internal/binomial"
	"github.com/cwbudde/algo-astro/stats/hist"
)

// intervalMass is the fraction of one-sided likelihood mass captured by
// the exact-mode walk (68.26%, the one-sigma fraction).
const intervalMass = 0.6826

// Result holds an efficiency histogram. All slices have the same length;
// after empty-bin filtering the positions stay consistent across fields.
type Result struct {
	// Centers is the midpoint of each bin.
	Centers []float64
	// P is the efficiency estimate per bin, in [0, 1]. Empty bins report 0.
	P []float64
	// ErrLow and ErrHigh are the downward and upward errors on P.
	// Empty bins report (0, 1).
	ErrLow  []float64
	ErrHigh []float64
	// Total and Successes are the underlying per-bin counts.
	Total     []int
	Successes []int
}

// Len returns the number of bins in the result.
func (r Result) Len() int { return len(r.Centers) }

// Compute bins the values in x, counts the fraction with success true in
// each bin, and estimates the error on that fraction. x and success are
// matched positionally and must have the same length. Values outside the
// binned range are excluded from all counts.
func Compute(x []float64, success []bool, opts ...Option) (Result, error) {
	if len(x) != len(success) {
		return Result{}, ErrLengthMismatch
	}

	if len(x) == 0 {
		return Result{}, ErrNoData
	}

	cfg := ApplyOptions(opts...)

	edges, err := resolveEdges(cfg, x)
	if err != nil {
		return Result{}, err
	}

	total := make([]int, edges.NumBins())
	successes := make([]int, edges.NumBins())

	for i, v := range x {
		b := edges.Index(v)
		if b < 0 {
			continue
		}

		total[b]++

		if success[i] {
			successes[b]++
		}
	}

	return fromCounts(edges, total, successes, cfg), nil
}

// resolveEdges turns the configured bin specification into validated
// edges. Explicit edges win; otherwise equal-width bins are built over the
// configured or data-derived range.
func resolveEdges(cfg Config, x []float64) (hist.Edges, error) {
	if cfg.Edges != nil {
		if err := cfg.Edges.Validate(); err != nil {
			return nil, fmt.Errorf("eff: invalid bin edges: %w", err)
		}

		return cfg.Edges, nil
	}

	if cfg.Bins < 1 {
		return nil, ErrInvalidBins
	}

	lo, hi := cfg.RangeLow, cfg.RangeHigh
	if !cfg.HasRange {
		lo, hi = dataRange(x)
	}

	// Rejects lo >= hi and NaN bounds in one shot. A constant-valued x
	// with no explicit range lands here as well: its derived range is
	// zero-width and cannot form bins.
	if !(lo < hi) {
		return nil, ErrInvalidRange
	}

	edges, err := hist.Linear(cfg.Bins, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("eff: invalid bin specification: %w", err)
	}

	return edges, nil
}

func dataRange(x []float64) (lo, hi float64) {
	lo, hi = x[0], x[0]

	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// fromCounts computes efficiencies and errors from per-bin counts. Shared
// by Compute and Accumulator.Result so both produce identical output for
// identical data.
func fromCounts(edges hist.Edges, total, successes []int, cfg Config) Result {
	n := edges.NumBins()

	res := Result{
		Centers:   edges.Centers(),
		P:         make([]float64, n),
		ErrLow:    make([]float64, n),
		ErrHigh:   make([]float64, n),
		Total:     append([]int(nil), total...),
		Successes: append([]int(nil), successes...),
	}

	for i := 0; i < n; i++ {
		if total[i] == 0 {
			// Empty bin: zero efficiency, 100% upward uncertainty.
			res.ErrHigh[i] = 1
			continue
		}

		p := float64(successes[i]) / float64(total[i])
		res.P[i] = p

		if cfg.FullErrors {
			res.ErrLow[i], res.ErrHigh[i] = exactErrors(successes[i], total[i], p, cfg.Step)
		} else {
			e := math.Sqrt(p * (1 - p) / float64(total[i]))
			res.ErrLow[i], res.ErrHigh[i] = e, e
		}
	}

	if cfg.ReturnAll {
		return res
	}

	return filterValid(res)
}

// filterValid drops empty bins, keeping all fields positionally aligned.
func filterValid(r Result) Result {
	out := Result{}

	for i := range r.Total {
		if r.Total[i] == 0 {
			continue
		}

		out.Centers = append(out.Centers, r.Centers[i])
		out.P = append(out.P, r.P[i])
		out.ErrLow = append(out.ErrLow, r.ErrLow[i])
		out.ErrHigh = append(out.ErrHigh, r.ErrHigh[i])
		out.Total = append(out.Total, r.Total[i])
		out.Successes = append(out.Successes, r.Successes[i])
	}

	return out
}

// exactErrors computes the 68.3% credible interval around p for k
// successes out of n trials. The likelihood mass below and above p is
// integrated first; the walks then accumulate mass outward until each
// side has captured intervalMass of its share.
func exactErrors(k, n int, p, step float64) (lo, hi float64) {
	if step <= 0 {
		step = defaultStep
	}

	below := binomial.IntegratePMF(k, n, 0, p)
	above := binomial.IntegratePMF(k, n, p, 1)

	lo = walkDown(k, n, p, step, intervalMass*below)
	hi = walkUp(k, n, p, step, intervalMass*above)

	return lo, hi
}

// walkDown returns the distance below p at which the accumulated
// likelihood mass reaches target. The walk evaluates the PMF at midpoints
// p - step/2, p - 3*step/2, ... and always terminates: it is capped at
// enough iterations to traverse [0, 1] and stops at the domain boundary,
// clamping the result to p (the interval cannot extend below zero).
func walkDown(k, n int, p, step, target float64) float64 {
	if target <= 0 {
		return 0
	}

	maxIter := int(1/step) + 2
	sum := 0.0
	cur := p - step/2

	for i := 0; i < maxIter && sum < target; i++ {
		if cur <= 0 {
			return p
		}

		sum += binomial.PMF(k, n, cur) * step
		cur -= step
	}

	d := p - cur
	if d > p {
		d = p
	}

	return d
}

// walkUp is the mirror of walkDown, accumulating mass above p and
// clamping the result to 1-p.
func walkUp(k, n int, p, step, target float64) float64 {
	if target <= 0 {
		return 0
	}

	maxIter := int(1/step) + 2
	sum := 0.0
	cur := p + step/2

	for i := 0; i < maxIter && sum < target; i++ {
		if cur >= 1 {
			return 1 - p
		}

		sum += binomial.PMF(k, n, cur) * step
		cur += step
	}

	d := cur - p
	if d > 1-p {
		d = 1 - p
	}

	return d
}
