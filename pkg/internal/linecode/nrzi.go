package linecode

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// NRZI encodes 1 as a transition at the interval start and 0 as no
// transition. The decoder recovers bits by comparing each interval's level
// against the previous one, seeded with the same initial level the encoder
// folded from.

func encodeNRZI(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	samples := make([]float64, len(bits)*spb)
	level := initialLevel(types.NRZI, cfg)
	for i, b := range bits {
		if b == types.One {
			level = -level
		}
		emitLevel(samples[i*spb:(i+1)*spb], level, cfg.Strategy)
	}
	return samples
}

func decodeNRZI(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	spb := cfg.SamplesPerBit
	bits := make(types.BitSequence, n)
	last := initialLevel(types.NRZI, cfg) > 0
	for i := 0; i < n; i++ {
		cur := samples[i*spb] > 0
		if cur != last {
			bits[i] = types.One
		}
		last = cur
	}
	return bits
}
