package pipeline

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/signal"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Default verification tolerances for the analog modulation schemes. The
// envelope and phase recoveries carry a small edge error from the finite
// analytic-signal construction; FM additionally differentiates the
// recovered phase, which multiplies that error by the ratio of sample
// rate to deviation constant, so its bar sits higher.
const (
	defaultAMTolerance = 0.05
	defaultFMTolerance = 0.25
	defaultPMTolerance = 0.1
)

// verify measures how faithfully the recovery matches the input. Digital
// payloads must match bit for bit; analog payloads must stay within the
// scheme's tolerance at every sample. The distortion is the bit error
// fraction or the worst sample error respectively.
func verify(descriptor types.SchemeDescriptor, cfg settings, input, recovered types.Signal) (bool, float64) {
	if descriptor.Mode.InputKind() == types.SignalBits {
		return compareBits(descriptor.Scheme, input.Bits, recovered.Bits)
	}
	maxErr, err := signal.MaxAbsError(input.Wave.Samples, recovered.Wave.Samples)
	if err != nil {
		return false, math.Inf(1)
	}
	return maxErr <= analogToleranceFor(descriptor.Scheme, cfg), maxErr
}

// compareBits verifies a digital recovery. The quadrature scheme pads odd
// inputs with one zero bit, so exactly that pad is accepted back and the
// comparison runs over the input length. The error fraction counts
// positions that differ, or one when the lengths cannot be reconciled.
func compareBits(scheme types.Scheme, input, recovered types.BitSequence) (bool, float64) {
	if scheme == types.QAM4 && len(recovered) == len(input)+1 && recovered[len(recovered)-1] == types.Zero {
		recovered = recovered[:len(input)]
	}
	if len(recovered) != len(input) {
		return false, 1
	}
	if len(input) == 0 {
		return true, 0
	}
	wrong := 0
	for i := range input {
		if input[i] != recovered[i] {
			wrong++
		}
	}
	return wrong == 0, float64(wrong) / float64(len(input))
}

// analogToleranceFor derives the verification bar for a scheme when no
// override is set. PCM cannot beat its quantization step and delta
// modulation hunts around the signal within a step of its slope bound, so
// both derive from the active configuration; the modulation schemes use
// the fixed defaults.
func analogToleranceFor(scheme types.Scheme, cfg settings) float64 {
	if cfg.tolerance > 0 {
		return cfg.tolerance
	}
	switch scheme {
	case types.PCM:
		return cfg.pcm.Range.Span() / float64(uint64(1)<<uint(cfg.pcm.BitDepth))
	case types.DeltaMod:
		return 2 * cfg.delta.StepSize
	case types.AM:
		return defaultAMTolerance
	case types.FM:
		return defaultFMTolerance
	default:
		return defaultPMTolerance
	}
}
