package linecode

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// Differential Manchester always transitions at the bit midpoint; the bit
// value lives in the interval boundary. A 0 adds a boundary transition, a 1
// leaves the boundary level alone. The decoder compares each interval's
// opening level against the previous interval's closing level.

func encodeDiffManchester(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	window := 2 * spb
	samples := make([]float64, len(bits)*window)
	level := initialLevel(types.DiffManchester, cfg)
	for i, b := range bits {
		if b == types.Zero {
			level = -level
		}
		first := level
		level = -level
		emitHalves(samples[i*window:(i+1)*window], first, level, spb, cfg.Strategy)
	}
	return samples
}

func decodeDiffManchester(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	window := 2 * cfg.SamplesPerBit
	bits := make(types.BitSequence, n)
	prevEnd := initialLevel(types.DiffManchester, cfg) > 0
	for i := 0; i < n; i++ {
		start := samples[i*window] > 0
		end := samples[(i+1)*window-1] > 0
		if start == prevEnd {
			bits[i] = types.One
		}
		prevEnd = end
	}
	return bits
}
