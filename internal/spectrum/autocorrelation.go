// Package spectrum provides an FFT-based diagnostic for the event-driven
// gas: the autocorrelation of a recorded scalar time series (typically a
// tracked particle's velocity component, or the wall-impulse increments),
// used to estimate a collision frequency independent of counting events
// directly. It is read-only: it never feeds back into the scheduler, so it
// does not reintroduce any force or integration the core excludes.
package spectrum

import (
	"math/cmplx"

	"hardsphere/pkg/fft"
)

// Autocorrelate returns the normalized autocorrelation of samples via the
// Wiener-Khinchin theorem: the inverse FFT of the power spectrum of the
// (zero-padded) signal. Autocorrelate(samples)[0] is always 1 provided the
// signal has nonzero variance.
func Autocorrelate(samples []float64) []float64 {
	n := len(samples)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	padded := make([]complex128, 2*n)
	for i, v := range samples {
		padded[i] = complex(v-mean, 0)
	}

	processor := fft.NewFFTProcessor()
	spectrum := processor.FFT1D(padded)

	power := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		power[i] = complex(cmplx.Abs(c)*cmplx.Abs(c), 0)
	}

	correlation := processor.IFFT1D(power)

	result := make([]float64, n)
	norm := real(correlation[0])
	if norm == 0 {
		return result
	}
	for lag := 0; lag < n; lag++ {
		result[lag] = real(correlation[lag]) / norm
	}
	return result
}

// DecorrelationTime returns the smallest lag at which the autocorrelation
// first drops at or below threshold, or len(samples) if it never does. A
// short decorrelation time relative to the mean collision interval means
// the tracked quantity is being randomized efficiently by collisions.
func DecorrelationTime(samples []float64, threshold float64) int {
	ac := Autocorrelate(samples)
	for lag, v := range ac {
		if v <= threshold {
			return lag
		}
	}
	return len(samples)
}
