package digitalmod

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// 4-QAM maps bit pairs onto the carrier's in-phase and quadrature
// components over a doubled symbol span: the first bit scales cos, the
// second scales -sin, each by +1 for a 1 bit and -1 for a 0 bit. The
// demodulator correlates each span with unit cos and sin references; the
// in-phase bit is the sign of the cos correlation and the quadrature bit
// inverts the sign of the sin correlation.

// padQAM right-pads odd bit counts with a zero bit so every symbol carries
// a full pair.
func padQAM(bits types.BitSequence) types.BitSequence {
	if len(bits)%2 == 0 {
		return bits
	}
	padded := make(types.BitSequence, len(bits)+1)
	copy(padded, bits)
	return padded
}

func modulateQAM(cfg types.CarrierConfig, bits types.BitSequence) ([]float64, error) {
	window := 2 * cfg.SamplesPerSymbol
	inPhase, err := cosineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, window)
	if err != nil {
		return nil, err
	}
	quadrature, err := sineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, window)
	if err != nil {
		return nil, err
	}

	bits = padQAM(bits)
	samples := make([]float64, len(bits)/2*window)
	for s := 0; s < len(bits)/2; s++ {
		iGain, qGain := -1.0, -1.0
		if bits[2*s] == types.One {
			iGain = 1.0
		}
		if bits[2*s+1] == types.One {
			qGain = 1.0
		}
		seg := samples[s*window : (s+1)*window]
		fillScaled(seg, iGain, inPhase, cfg.Strategy)
		addScaled(seg, -qGain, quadrature, cfg.Strategy)
	}
	return samples, nil
}

func demodulateQAM(cfg types.CarrierConfig, samples []float64, n int) (types.BitSequence, error) {
	window := 2 * cfg.SamplesPerSymbol
	inPhase, err := cosineRef(cfg.CarrierFreq, 1, cfg, window)
	if err != nil {
		return nil, err
	}
	quadrature, err := sineRef(cfg.CarrierFreq, 1, cfg, window)
	if err != nil {
		return nil, err
	}

	bits := make(types.BitSequence, 2*n)
	for s := 0; s < n; s++ {
		chunk := samples[s*window : (s+1)*window]
		if correlate(chunk, inPhase, cfg.Strategy) > 0 {
			bits[2*s] = types.One
		}
		if correlate(chunk, quadrature, cfg.Strategy) < 0 {
			bits[2*s+1] = types.One
		}
	}
	return bits, nil
}
