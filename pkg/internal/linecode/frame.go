package linecode

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// bitWindow returns the number of samples one bit occupies under the
// scheme: one signaling interval, or two half intervals for the biphase
// schemes.
func bitWindow(scheme types.Scheme, samplesPerBit int) int {
	switch scheme {
	case types.Manchester, types.DiffManchester:
		return 2 * samplesPerBit
	default:
		return samplesPerBit
	}
}

// checkAlignment confirms a decode input divides into whole bit windows and
// returns the bit count.
func checkAlignment(sampleCount, window int) (int, error) {
	if sampleCount%window != 0 {
		return 0, fmt.Errorf("%w: %d samples is not a whole number of %d-sample bit intervals", types.ErrMalformedInput, sampleCount, window)
	}
	return sampleCount / window, nil
}

// emitLevel writes one constant signaling interval into dst. The vectorized
// strategy lifts the zeroed destination by the level in one slice
// operation; both paths store the identical value.
func emitLevel(dst []float64, level float64, strategy types.ExecutionStrategy) {
	if strategy == types.StrategyVectorized {
		floats.AddConst(level, dst)
		return
	}
	for i := range dst {
		dst[i] = level
	}
}

// emitHalves writes a two-level biphase bit, first half then second half.
func emitHalves(dst []float64, first, second float64, samplesPerBit int, strategy types.ExecutionStrategy) {
	emitLevel(dst[:samplesPerBit], first, strategy)
	emitLevel(dst[samplesPerBit:], second, strategy)
}
