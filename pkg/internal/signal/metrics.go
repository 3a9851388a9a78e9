package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// MSE returns the mean squared error between two equal-length sample
// slices. Two empty slices compare at zero error; a length mismatch is
// ErrMalformedInput, not a distance.
func MSE(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: sample counts differ (%d vs %d)", types.ErrMalformedInput, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum / float64(len(a)), nil
}

// MaxAbsError returns the largest absolute per-sample difference between
// two equal-length sample slices. It is the metric analog reconstructions
// are verified with.
func MaxAbsError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: sample counts differ (%d vs %d)", types.ErrMalformedInput, len(a), len(b))
	}
	maxErr := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxErr {
			maxErr = d
		}
	}
	return maxErr, nil
}

// RangeOf returns the amplitude interval a waveform occupies. An empty
// waveform yields the degenerate zero range.
func RangeOf(w types.Waveform) types.Range {
	if len(w.Samples) == 0 {
		return types.Range{}
	}
	return types.Range{Min: floats.Min(w.Samples), Max: floats.Max(w.Samples)}
}

// PeakAbs returns max|s| over the waveform's samples, zero when empty. It
// sizes modulation indices against the analog preconditions.
func PeakAbs(w types.Waveform) float64 {
	peak := 0.0
	for _, s := range w.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}
