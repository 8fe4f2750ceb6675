package lightcurve

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Point is a single photometric observation.
type Point struct {
	Time    float64
	Flux    float64
	FluxErr float64
	ZP      float64
	Band    string
}

// Curve is an ordered sequence of observations.
type Curve []Point

// Times returns the observation times.
func (c Curve) Times() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Time
	}

	return out
}

// Fluxes returns the observed fluxes.
func (c Curve) Fluxes() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Flux
	}

	return out
}

// ScaleToZP returns a copy of the curve with all fluxes and flux errors
// rescaled to a common zero point: flux *= 10^(-0.4*(zp-refZP)). Points
// sharing a zero point are scaled as one block.
func ScaleToZP(c Curve, refZP float64) Curve {
	out := make(Curve, len(c))
	copy(out, c)

	flux := make([]float64, 0, len(out))
	ferr := make([]float64, 0, len(out))

	for i := 0; i < len(out); {
		j := i + 1
		for j < len(out) && out[j].ZP == out[i].ZP {
			j++
		}

		factor := math.Pow(10, -0.4*(out[i].ZP-refZP))

		flux = flux[:j-i]
		ferr = ferr[:j-i]

		for k := i; k < j; k++ {
			flux[k-i] = out[k].Flux
			ferr[k-i] = out[k].FluxErr
		}

		vecmath.ScaleBlock(flux, flux, factor)
		vecmath.ScaleBlock(ferr, ferr, factor)

		for k := i; k < j; k++ {
			out[k].Flux = flux[k-i]
			out[k].FluxErr = ferr[k-i]
			out[k].ZP = refZP
		}

		i = j
	}

	return out
}

// SplitBands groups the curve by band, preserving point order within each
// band, and returns the bands in order of first appearance.
func SplitBands(c Curve) (map[string]Curve, []string) {
	byBand := make(map[string]Curve)

	var order []string

	for _, p := range c {
		if _, seen := byBand[p.Band]; !seen {
			order = append(order, p.Band)
		}

		byBand[p.Band] = append(byBand[p.Band], p)
	}

	return byBand, order
}

// PeakNormalize returns a copy of the curve with fluxes and errors divided
// by the maximum flux, along with the normalization value. The maximum
// flux must be positive.
func PeakNormalize(c Curve) (Curve, float64, error) {
	if len(c) == 0 {
		return nil, 0, ErrEmptyCurve
	}

	peak := c[0].Flux
	for _, p := range c[1:] {
		if p.Flux > peak {
			peak = p.Flux
		}
	}

	if peak <= 0 {
		return nil, 0, ErrNoPositiveFlux
	}

	flux := c.Fluxes()
	ferr := make([]float64, len(c))

	for i, p := range c {
		ferr[i] = p.FluxErr
	}

	vecmath.ScaleBlock(flux, flux, 1/peak)
	vecmath.ScaleBlock(ferr, ferr, 1/peak)

	out := make(Curve, len(c))
	copy(out, c)

	for i := range out {
		out[i].Flux = flux[i]
		out[i].FluxErr = ferr[i]
	}

	return out, peak, nil
}
