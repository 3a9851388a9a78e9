package digitalmod

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// BFSK keys the carrier frequency: 1 transmits the high tone at
// CarrierFreq+FreqDeviation, 0 the low tone at CarrierFreq-FreqDeviation.
// The demodulator correlates each span against unit-amplitude references
// for both tones and picks the stronger match.

func modulateBFSK(cfg types.CarrierConfig, bits types.BitSequence) ([]float64, error) {
	sps := cfg.SamplesPerSymbol
	high, err := sineRef(cfg.CarrierFreq+cfg.FreqDeviation, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}
	low, err := sineRef(cfg.CarrierFreq-cfg.FreqDeviation, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, len(bits)*sps)
	for i, b := range bits {
		tone := low
		if b == types.One {
			tone = high
		}
		fillScaled(samples[i*sps:(i+1)*sps], 1, tone, cfg.Strategy)
	}
	return samples, nil
}

func demodulateBFSK(cfg types.CarrierConfig, samples []float64, n int) (types.BitSequence, error) {
	sps := cfg.SamplesPerSymbol
	high, err := sineRef(cfg.CarrierFreq+cfg.FreqDeviation, 1, cfg, sps)
	if err != nil {
		return nil, err
	}
	low, err := sineRef(cfg.CarrierFreq-cfg.FreqDeviation, 1, cfg, sps)
	if err != nil {
		return nil, err
	}

	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		chunk := samples[i*sps : (i+1)*sps]
		highCorr := math.Abs(correlate(chunk, high, cfg.Strategy))
		lowCorr := math.Abs(correlate(chunk, low, cfg.Strategy))
		if highCorr > lowCorr {
			bits[i] = types.One
		}
	}
	return bits, nil
}
