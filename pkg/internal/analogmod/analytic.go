package analogmod

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// analytic returns the analytic signal of a real waveform: the original
// samples in the real part and their Hilbert transform in the imaginary
// part, built by zeroing the negative half of the spectrum and doubling
// the positive half.
func analytic(samples []float64) []complex128 {
	n := len(samples)
	if n == 0 {
		return nil
	}
	spectrum := fft.FFTReal(samples)
	for k := 1; k < (n+1)/2; k++ {
		spectrum[k] *= 2
	}
	for k := n/2 + 1; k < n; k++ {
		spectrum[k] = 0
	}
	return fft.IFFT(spectrum)
}

// envelope returns the instantaneous amplitude of a real waveform.
func envelope(samples []float64) []float64 {
	a := analytic(samples)
	env := make([]float64, len(a))
	for i, v := range a {
		env[i] = cmplx.Abs(v)
	}
	return env
}

// instantaneousPhase returns the unwrapped instantaneous phase of a real
// waveform in radians.
func instantaneousPhase(samples []float64) []float64 {
	a := analytic(samples)
	phase := make([]float64, len(a))
	for i, v := range a {
		phase[i] = cmplx.Phase(v)
	}
	unwrap(phase)
	return phase
}

// unwrap removes 2*pi discontinuities in place. It assumes the true phase
// advances less than pi per sample, which holds whenever the carrier sits
// safely below Nyquist and the modulation index stays in range.
func unwrap(phase []float64) {
	if len(phase) == 0 {
		return
	}
	var offset float64
	prev := phase[0]
	for i := 1; i < len(phase); i++ {
		raw := phase[i]
		d := raw - prev
		if d > math.Pi {
			offset -= 2 * math.Pi
		} else if d < -math.Pi {
			offset += 2 * math.Pi
		}
		phase[i] = raw + offset
		prev = raw
	}
}
