// Package signal provides the waveform construction and measurement helpers
// the rest of the library builds on: deterministic test-signal generators,
// reconstruction-error metrics, and amplitude-range inspection.
//
// Generators are fully determined by their parameters. Every oscillator
// starts at phase zero on sample zero, so two calls with the same arguments
// produce identical waveforms and tests can pin exact sample values.

package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Tone is one sinusoidal component of a multi-tone waveform.
type Tone struct {
	Freq      float64 // Frequency in Hz.
	Amplitude float64 // Peak amplitude.
}

// Sine generates n samples of amplitude*sin(2*pi*freq*t) at the given sample
// rate.
func Sine(freq, amplitude, sampleRate float64, n int) (types.Waveform, error) {
	return oscillate(math.Sin, freq, amplitude, sampleRate, n)
}

// Cosine generates n samples of amplitude*cos(2*pi*freq*t) at the given
// sample rate.
func Cosine(freq, amplitude, sampleRate float64, n int) (types.Waveform, error) {
	return oscillate(math.Cos, freq, amplitude, sampleRate, n)
}

// OffsetSine generates a sine shifted by a constant offset. It reproduces
// the classic source-coding demo input offset+amplitude*sin(2*pi*freq*t),
// which stays strictly positive whenever offset exceeds amplitude.
func OffsetSine(freq, amplitude, offset, sampleRate float64, n int) (types.Waveform, error) {
	w, err := Sine(freq, amplitude, sampleRate, n)
	if err != nil {
		return types.Waveform{}, err
	}
	for i := range w.Samples {
		w.Samples[i] += offset
	}
	return w, nil
}

// MultiTone generates n samples of a sum of sines at the given sample rate.
// No tones yields the all-zero waveform.
func MultiTone(sampleRate float64, n int, tones ...Tone) (types.Waveform, error) {
	if err := checkBase(sampleRate, n); err != nil {
		return types.Waveform{}, err
	}
	for _, tone := range tones {
		if err := checkFreq(tone.Freq, sampleRate); err != nil {
			return types.Waveform{}, err
		}
	}

	samples := make([]float64, n)
	t := timeBase(sampleRate, n)
	for _, tone := range tones {
		omega := 2 * math.Pi * tone.Freq
		for i, ti := range t {
			samples[i] += tone.Amplitude * math.Sin(omega*ti)
		}
	}
	return types.Waveform{Samples: samples, SampleRate: sampleRate}, nil
}

func oscillate(f func(float64) float64, freq, amplitude, sampleRate float64, n int) (types.Waveform, error) {
	if err := checkBase(sampleRate, n); err != nil {
		return types.Waveform{}, err
	}
	if err := checkFreq(freq, sampleRate); err != nil {
		return types.Waveform{}, err
	}
	samples := make([]float64, n)
	omega := 2 * math.Pi * freq
	for i, ti := range timeBase(sampleRate, n) {
		samples[i] = amplitude * f(omega*ti)
	}
	return types.Waveform{Samples: samples, SampleRate: sampleRate}, nil
}

func checkBase(sampleRate float64, n int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", types.ErrInvalidConfiguration, sampleRate)
	}
	if n < 0 {
		return fmt.Errorf("%w: sample count must not be negative, got %d", types.ErrInvalidConfiguration, n)
	}
	return nil
}

func checkFreq(freq, sampleRate float64) error {
	if freq < 0 {
		return fmt.Errorf("%w: tone frequency must not be negative, got %v", types.ErrInvalidConfiguration, freq)
	}
	if nyquist := sampleRate / 2; freq >= nyquist {
		return fmt.Errorf("%w: tone frequency %v Hz at or above Nyquist %v Hz", types.ErrInvalidConfiguration, freq, nyquist)
	}
	return nil
}

// timeBase returns n sample instants starting at zero, 1/sampleRate apart.
func timeBase(sampleRate float64, n int) []float64 {
	t := make([]float64, n)
	if n > 1 {
		floats.Span(t, 0, float64(n-1)/sampleRate)
	}
	return t
}
