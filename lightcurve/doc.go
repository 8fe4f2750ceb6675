// Package lightcurve prepares photometric light-curve data for analysis:
// zero-point flux calibration, per-band splitting, peak normalization,
// uniform resampling, and FFT-based periodogram estimation.
//
// A light curve is an ordered sequence of [Point] observations. Fluxes
// recorded at different instrumental zero points are made comparable by
// [ScaleToZP], which applies the standard magnitude scaling factor
// 10^(-0.4*(zp-ref)). [Resample] and [Periodogram] turn an irregularly
// sampled curve into a one-sided power spectrum for period searches.
package lightcurve
