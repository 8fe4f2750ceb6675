package eff

import "github.com/cwbudde/algo-astro/stats/hist"

// defaultStep is the exact-mode integration step for the outward
// mass-accumulation walk.
const defaultStep = 2e-5

// Config holds efficiency histogram parameters.
type Config struct {
	// Bins is the number of equal-width bins; ignored when Edges is set.
	Bins int
	// Edges, when non-nil, gives the bin boundaries explicitly and takes
	// precedence over Bins and the range.
	Edges hist.Edges
	// RangeLow/RangeHigh bound the binned domain when HasRange is set;
	// otherwise the range is derived from the data.
	RangeLow  float64
	RangeHigh float64
	HasRange  bool
	// FullErrors selects the exact credible-interval computation.
	FullErrors bool
	// ReturnAll keeps empty bins in the output.
	ReturnAll bool
	// Step is the exact-mode integration step size.
	Step float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: 10 equal-width bins over the
// data range, approximate errors, empty bins filtered.
func DefaultConfig() Config {
	return Config{
		Bins: 10,
		Step: defaultStep,
	}
}

// WithBins sets the number of equal-width bins.
func WithBins(n int) Option {
	return func(cfg *Config) {
		cfg.Bins = n
	}
}

// WithEdges sets explicit bin edges, overriding WithBins and WithRange.
func WithEdges(edges hist.Edges) Option {
	return func(cfg *Config) {
		cfg.Edges = edges
	}
}

// WithRange bounds the binned domain; values outside [lo, hi] are
// excluded from all counts.
func WithRange(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.RangeLow = lo
		cfg.RangeHigh = hi
		cfg.HasRange = true
	}
}

// WithFullErrors selects the exact credible-interval error computation.
func WithFullErrors(full bool) Option {
	return func(cfg *Config) {
		cfg.FullErrors = full
	}
}

// WithReturnAll keeps empty bins in the output.
func WithReturnAll(all bool) Option {
	return func(cfg *Config) {
		cfg.ReturnAll = all
	}
}

// WithStep sets the exact-mode integration step. Non-positive values are
// ignored.
func WithStep(h float64) Option {
	return func(cfg *Config) {
		if h > 0 {
			cfg.Step = h
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
