package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/signal"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Tone is one sinusoidal component of a multi-tone waveform.
type Tone = signal.Tone

// Sine generates n samples of amplitude*sin(2*pi*freq*t) at the given
// sample rate.
func Sine(freq, amplitude, sampleRate float64, n int) (types.Waveform, error) {
	return signal.Sine(freq, amplitude, sampleRate, n)
}

// Cosine generates n samples of amplitude*cos(2*pi*freq*t) at the given
// sample rate.
func Cosine(freq, amplitude, sampleRate float64, n int) (types.Waveform, error) {
	return signal.Cosine(freq, amplitude, sampleRate, n)
}

// OffsetSine generates a sine shifted by a constant offset, the classic
// strictly-positive source-coding demo input.
func OffsetSine(freq, amplitude, offset, sampleRate float64, n int) (types.Waveform, error) {
	return signal.OffsetSine(freq, amplitude, offset, sampleRate, n)
}

// MultiTone generates n samples of a sum of sines at the given sample
// rate.
func MultiTone(sampleRate float64, n int, tones ...Tone) (types.Waveform, error) {
	return signal.MultiTone(sampleRate, n, tones...)
}

// MSE returns the mean squared error between two equal-length sample
// slices.
func MSE(a, b []float64) (float64, error) {
	return signal.MSE(a, b)
}

// MaxAbsError returns the largest absolute per-sample difference between
// two equal-length sample slices.
func MaxAbsError(a, b []float64) (float64, error) {
	return signal.MaxAbsError(a, b)
}

// RangeOf returns the amplitude interval a waveform occupies.
func RangeOf(w types.Waveform) types.Range {
	return signal.RangeOf(w)
}

// PeakAbs returns the largest absolute sample value in a waveform.
func PeakAbs(w types.Waveform) float64 {
	return signal.PeakAbs(w)
}
