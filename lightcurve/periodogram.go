package lightcurve

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Periodogram estimates the one-sided power spectrum of a uniformly
// sampled flux series with sample step dt. The mean is removed and the
// series is zero-padded to the next power of two before the transform.
// Power is normalized by the original series length; freqs[k] = k/(N*dt)
// where N is the padded length.
func Periodogram(flux []float64, dt float64) (freqs, power []float64, err error) {
	if len(flux) < 2 {
		return nil, nil, ErrTooFewPoints
	}

	if dt <= 0 {
		return nil, nil, ErrInvalidSampleStep
	}

	var mean float64
	for _, v := range flux {
		mean += v
	}

	mean /= float64(len(flux))

	fftSize := nextPowerOf2(len(flux))

	in := make([]complex128, fftSize)
	for i, v := range flux {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("lightcurve: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("lightcurve: forward FFT failed: %w", err)
	}

	nBins := fftSize/2 + 1
	re := make([]float64, nBins)
	im := make([]float64, nBins)

	for i := 0; i < nBins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power = make([]float64, nBins)
	vecmath.Power(power, re, im)
	vecmath.ScaleBlock(power, power, 1/float64(len(flux)))

	freqs = make([]float64, nBins)
	binHz := 1 / (float64(fftSize) * dt)

	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return freqs, power, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
