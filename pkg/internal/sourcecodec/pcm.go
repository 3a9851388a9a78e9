package sourcecodec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// PCM quantizes to the nearest of 2^BitDepth uniform levels across the
// configured range and emits level indices as fixed-width code words,
// most significant bit first.

func encodePCM(cfg types.PCMConfig, wave types.Waveform) types.BitSequence {
	depth := cfg.BitDepth
	span := cfg.Range.Span()
	levels := float64(uint64(1)<<uint(depth) - 1)

	shifted := shiftToZeroBase(wave.Samples, cfg.Range, cfg.Strategy)
	bits := make(types.BitSequence, 0, len(shifted)*depth)
	for _, v := range shifted {
		var code uint64
		if span > 0 {
			code = uint64(math.Round(v / span * levels))
		}
		for k := depth - 1; k >= 0; k-- {
			bits = append(bits, types.Bit(code>>uint(k)&1))
		}
	}
	return bits
}

func decodePCM(cfg types.PCMConfig, bits types.BitSequence) ([]float64, error) {
	depth := cfg.BitDepth
	if len(bits)%depth != 0 {
		return nil, fmt.Errorf("%w: %d bits is not a whole number of %d-bit code words", types.ErrMalformedInput, len(bits), depth)
	}
	n := len(bits) / depth
	span := cfg.Range.Span()
	levels := float64(uint64(1)<<uint(depth) - 1)

	out := make([]float64, n)
	if span > 0 {
		for i := 0; i < n; i++ {
			var code uint64
			for k := 0; k < depth; k++ {
				code = code<<1 | uint64(bits[i*depth+k])
			}
			out[i] = float64(code) / levels * span
		}
	}
	shiftBy(out, cfg.Range.Min, cfg.Strategy)
	return out, nil
}

// shiftToZeroBase clamps every sample into the range and rebases it so the
// range minimum sits at zero. Both strategies produce identical values;
// the vectorized path batches the rebase.
func shiftToZeroBase(samples []float64, r types.Range, strategy types.ExecutionStrategy) []float64 {
	shifted := make([]float64, len(samples))
	for i, v := range samples {
		if v < r.Min {
			v = r.Min
		} else if v > r.Max {
			v = r.Max
		}
		shifted[i] = v
	}
	shiftBy(shifted, -r.Min, strategy)
	return shifted
}

func shiftBy(samples []float64, offset float64, strategy types.ExecutionStrategy) {
	if strategy == types.StrategyVectorized {
		floats.AddConst(offset, samples)
		return
	}
	for i := range samples {
		samples[i] += offset
	}
}
