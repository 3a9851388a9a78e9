package linecode

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// Manchester (IEEE 802.3 convention): 0 is a high-to-low transition at the
// bit midpoint, 1 is low-to-high. Every bit carries a mid-bit transition, so
// each bit occupies 2*SamplesPerBit samples on the wave.

func encodeManchester(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	window := 2 * spb
	a := cfg.Amplitude
	samples := make([]float64, len(bits)*window)
	for i, b := range bits {
		seg := samples[i*window : (i+1)*window]
		if b == types.Zero {
			emitHalves(seg, a, -a, spb, cfg.Strategy)
		} else {
			emitHalves(seg, -a, a, spb, cfg.Strategy)
		}
	}
	return samples
}

func decodeManchester(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	window := 2 * cfg.SamplesPerBit
	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		// The first half level identifies the transition direction.
		if samples[i*window] <= 0 {
			bits[i] = types.One
		}
	}
	return bits
}
