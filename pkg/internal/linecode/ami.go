package linecode

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Bipolar-AMI represents 0 as the zero level and 1 as alternating-polarity
// marks. The mark polarity folds across the whole sequence so consecutive
// ones never repeat a level; the first mark takes FirstMark's polarity.

func encodeBipolarAMI(cfg types.LineConfig, bits types.BitSequence) []float64 {
	spb := cfg.SamplesPerBit
	samples := make([]float64, len(bits)*spb)
	mark := -firstMark(cfg)
	for i, b := range bits {
		if b != types.One {
			continue
		}
		mark = -mark
		emitLevel(samples[i*spb:(i+1)*spb], mark, cfg.Strategy)
	}
	return samples
}

func decodeBipolarAMI(cfg types.LineConfig, samples []float64, n int) types.BitSequence {
	spb := cfg.SamplesPerBit
	half := cfg.Amplitude / 2
	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		if math.Abs(samples[i*spb]) > half {
			bits[i] = types.One
		}
	}
	return bits
}
