package sourcecodec

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// Delta modulation emits one bit per sample: 1 when the sample sits above
// the running approximation, which then climbs one step, 0 when it does
// not, which drops it one step. The decoder replays the same staircase and
// reports its value after each move.

func encodeDelta(cfg types.DeltaConfig, wave types.Waveform) types.BitSequence {
	bits := make(types.BitSequence, len(wave.Samples))
	approx := cfg.Initial
	for i, v := range wave.Samples {
		if v > approx {
			bits[i] = types.One
			approx += cfg.StepSize
		} else {
			approx -= cfg.StepSize
		}
	}
	return bits
}

func decodeDelta(cfg types.DeltaConfig, bits types.BitSequence) []float64 {
	out := make([]float64, len(bits))
	approx := cfg.Initial
	for i, b := range bits {
		if b == types.One {
			approx += cfg.StepSize
		} else {
			approx -= cfg.StepSize
		}
		out[i] = approx
	}
	return out
}
