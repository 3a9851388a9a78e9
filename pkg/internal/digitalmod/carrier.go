package digitalmod

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/signal"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// symbolWindow returns the number of samples one symbol occupies under the
// scheme. 4-QAM doubles the span because each symbol carries two bits.
func symbolWindow(scheme types.Scheme, samplesPerSymbol int) int {
	if scheme == types.QAM4 {
		return 2 * samplesPerSymbol
	}
	return samplesPerSymbol
}

// checkAlignment confirms a demodulation input divides into whole symbol
// spans and returns the symbol count.
func checkAlignment(sampleCount, window int) (int, error) {
	if sampleCount%window != 0 {
		return 0, fmt.Errorf("%w: %d samples is not a whole number of %d-sample symbol spans", types.ErrMalformedInput, sampleCount, window)
	}
	return sampleCount / window, nil
}

// sineRef builds one symbol span of amplitude*sin(2*pi*freq*t), phase zero
// at the span start.
func sineRef(freq, amplitude float64, cfg types.CarrierConfig, n int) ([]float64, error) {
	w, err := signal.Sine(freq, amplitude, cfg.SampleRate, n)
	if err != nil {
		return nil, err
	}
	return w.Samples, nil
}

// cosineRef builds one symbol span of amplitude*cos(2*pi*freq*t).
func cosineRef(freq, amplitude float64, cfg types.CarrierConfig, n int) ([]float64, error) {
	w, err := signal.Cosine(freq, amplitude, cfg.SampleRate, n)
	if err != nil {
		return nil, err
	}
	return w.Samples, nil
}

// fillScaled writes gain*ref into dst. Both strategies compute each sample
// as one multiplication, so the outputs are identical.
func fillScaled(dst []float64, gain float64, ref []float64, strategy types.ExecutionStrategy) {
	if strategy == types.StrategyVectorized {
		floats.ScaleTo(dst, gain, ref)
		return
	}
	for j := range dst {
		dst[j] = gain * ref[j]
	}
}

// addScaled accumulates gain*ref into dst.
func addScaled(dst []float64, gain float64, ref []float64, strategy types.ExecutionStrategy) {
	if strategy == types.StrategyVectorized {
		floats.AddScaled(dst, gain, ref)
		return
	}
	for j := range dst {
		dst[j] += gain * ref[j]
	}
}

// correlate returns the inner product of one received span with a
// reference carrier.
func correlate(chunk, ref []float64, strategy types.ExecutionStrategy) float64 {
	if strategy == types.StrategyVectorized {
		return floats.Dot(chunk, ref)
	}
	var sum float64
	for j := range chunk {
		sum += chunk[j] * ref[j]
	}
	return sum
}

// absSum returns the L1 energy of one received span.
func absSum(chunk []float64, strategy types.ExecutionStrategy) float64 {
	if strategy == types.StrategyVectorized {
		return floats.Norm(chunk, 1)
	}
	var sum float64
	for _, v := range chunk {
		if v < 0 {
			sum -= v
		} else {
			sum += v
		}
	}
	return sum
}
