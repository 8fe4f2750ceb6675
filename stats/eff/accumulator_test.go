package eff

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-astro/stats/hist"
)

func TestAccumulatorMatchesCompute(t *testing.T) {
	x, success := generateTrials(300, 12, 3)

	edges, err := hist.Linear(10, 0, 12)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	acc, err := NewAccumulator(edges)
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}

	// Feed in uneven blocks to exercise the streaming path.
	if err := acc.AddBlock(x[:100], success[:100]); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	for i := 100; i < 250; i++ {
		acc.Add(x[i], success[i])
	}

	if err := acc.AddBlock(x[250:], success[250:]); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	for _, full := range []bool{false, true} {
		want, err := Compute(x, success, WithEdges(edges), WithFullErrors(full), WithReturnAll(true))
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}

		got := acc.Result(WithFullErrors(full), WithReturnAll(true))
		requireResultsEqual(t, got, want)
	}
}

func TestAccumulatorCountExcludesOutOfRange(t *testing.T) {
	acc, err := NewAccumulator(hist.Edges{0, 1})
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}

	acc.Add(0.5, true)
	acc.Add(-1, true)
	acc.Add(2, false)

	if got := acc.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestAccumulatorBlockLengthMismatch(t *testing.T) {
	acc, err := NewAccumulator(hist.Edges{0, 1})
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}

	if err := acc.AddBlock([]float64{0.1, 0.2}, []bool{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestAccumulatorInvalidEdges(t *testing.T) {
	if _, err := NewAccumulator(hist.Edges{1, 0}); !errors.Is(err, hist.ErrEdgeOrder) {
		t.Errorf("got %v, want wrapped hist.ErrEdgeOrder", err)
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc, err := NewAccumulator(hist.Edges{0, 1, 2})
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}

	acc.Add(0.5, true)
	acc.Add(1.5, false)
	acc.Reset()

	if got := acc.Count(); got != 0 {
		t.Errorf("Count after Reset = %d, want 0", got)
	}

	res := acc.Result(WithReturnAll(true))
	for i := range res.Total {
		if res.Total[i] != 0 {
			t.Errorf("bin %d not cleared: total = %d", i, res.Total[i])
		}
	}
}

func TestAccumulatorEdgesCopied(t *testing.T) {
	edges := hist.Edges{0, 1, 2}

	acc, err := NewAccumulator(edges)
	if err != nil {
		t.Fatalf("NewAccumulator: %v", err)
	}

	// Mutating the caller's slice must not affect the accumulator.
	edges[2] = -5
	acc.Add(1.5, true)

	if got := acc.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}
