package builder

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Map applies a function to each element in the slice.
func Map[T any](elems []T, f func(T) T) []T {
	return utils.Map[T](elems, f)
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter[T](elems, f)
}

// AnalyzeWaveform runs a spectral survey over a waveform: the power
// spectrum of the nonnegative frequency bins, the dominant frequency,
// time-domain energy, the dominant bin's power against everything else
// as a signal-to-noise estimate and the strongest local spectral peaks.
// A pure tone on an exact bin reports a very large SNR; an empty waveform
// reports zeros.
func AnalyzeWaveform(wave types.Waveform) types.WaveAnalysis {
	if wave.Len() == 0 {
		return types.WaveAnalysis{}
	}

	spectrum := fft.FFTReal(wave.Samples)

	powerSpectrum := make([]float64, len(spectrum)/2)
	totalPower := 0.0
	maxPower := 0.0
	dominantIndex := 0
	for i := range powerSpectrum {
		power := cmplx.Abs(spectrum[i]) * cmplx.Abs(spectrum[i])
		powerSpectrum[i] = power
		totalPower += power
		if power > maxPower {
			maxPower = power
			dominantIndex = i
		}
	}

	totalEnergy := 0.0
	for _, v := range wave.Samples {
		totalEnergy += v * v
	}

	return types.WaveAnalysis{
		PowerSpectrum: powerSpectrum,
		DominantFreq:  float64(dominantIndex) * wave.SampleRate / float64(wave.Len()),
		TotalEnergy:   totalEnergy,
		SNR:           10 * math.Log10(maxPower/(totalPower-maxPower)),
		Peaks:         findPeaks(powerSpectrum, wave.SampleRate, wave.Len()),
	}
}

// findPeaks collects the local maxima of a power spectrum, strongest first,
// capped at the five largest.
func findPeaks(powerSpectrum []float64, sampleRate float64, n int) []types.Peak {
	var peaks []types.Peak
	for i := 1; i < len(powerSpectrum)-1; i++ {
		if powerSpectrum[i] > powerSpectrum[i-1] && powerSpectrum[i] > powerSpectrum[i+1] && powerSpectrum[i] > 0 {
			freq := float64(i) * sampleRate / float64(n)
			peaks = append(peaks, types.Peak{Freq: freq, Value: powerSpectrum[i]})
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Value > peaks[j].Value
	})

	if len(peaks) > 5 {
		return peaks[:5]
	}
	return peaks
}
