package lightcurve

// Resample interpolates the curve linearly onto n uniformly spaced times
// spanning [first, last]. Observation times must be non-decreasing and
// n must be at least 2. The time span must be positive.
func Resample(c Curve, n int) (times, flux []float64, err error) {
	if len(c) < 2 {
		return nil, nil, ErrTooFewPoints
	}

	if n < 2 {
		return nil, nil, ErrTooFewPoints
	}

	for i := 1; i < len(c); i++ {
		if c[i].Time < c[i-1].Time {
			return nil, nil, ErrUnsortedTimes
		}
	}

	t0 := c[0].Time
	t1 := c[len(c)-1].Time

	if t1 <= t0 {
		return nil, nil, ErrInvalidSampleStep
	}

	times = make([]float64, n)
	flux = make([]float64, n)
	dt := (t1 - t0) / float64(n-1)

	// Index of the segment [c[seg], c[seg+1]] containing the current
	// sample time; advances monotonically with the output grid.
	seg := 0

	for i := 0; i < n; i++ {
		t := t0 + float64(i)*dt
		if i == n-1 {
			t = t1
		}

		for seg < len(c)-2 && c[seg+1].Time < t {
			seg++
		}

		a, b := c[seg], c[seg+1]

		if b.Time == a.Time {
			flux[i] = a.Flux
		} else {
			frac := (t - a.Time) / (b.Time - a.Time)
			flux[i] = a.Flux + frac*(b.Flux-a.Flux)
		}

		times[i] = t
	}

	return times, flux, nil
}
