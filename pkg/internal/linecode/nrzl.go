package linecode

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// NRZ-L holds one level for the whole interval: +Amplitude encodes 1,
// -Amplitude encodes 0.

func encodeNRZL(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	samples := make([]float64, len(bits)*spb)
	for i, b := range bits {
		level := -cfg.Amplitude
		if b == types.One {
			level = cfg.Amplitude
		}
		emitLevel(samples[i*spb:(i+1)*spb], level, cfg.Strategy)
	}
	return samples
}

func decodeNRZL(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	spb := cfg.SamplesPerBit
	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		if samples[i*spb] > 0 {
			bits[i] = types.One
		}
	}
	return bits
}
