package linecode

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Pseudoternary is Bipolar-AMI with the roles swapped: 1 is the zero level
// and 0 is an alternating-polarity mark.

func encodePseudoternary(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	samples := make([]float64, len(bits)*spb)
	mark := -firstMark(cfg)
	for i, b := range bits {
		if b != types.Zero {
			continue
		}
		mark = -mark
		emitLevel(samples[i*spb:(i+1)*spb], mark, cfg.Strategy)
	}
	return samples
}

func decodePseudoternary(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	spb := cfg.SamplesPerBit
	half := cfg.Amplitude / 2
	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		if math.Abs(samples[i*spb]) <= half {
			bits[i] = types.One
		}
	}
	return bits
}
