package digitalmod

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// BPSK keys the carrier phase: 1 transmits the carrier at phase zero, 0 at
// phase 180. The demodulator correlates each span with the phase-zero
// reference and reads the sign.

func modulateBPSK(cfg types.CarrierConfig, bits types.BitSequence) ([]float64, error) {
	sps := cfg.SamplesPerSymbol
	ref, err := sineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}
	samples := make([]float64, len(bits)*sps)
	for i, b := range bits {
		gain := -1.0
		if b == types.One {
			gain = 1.0
		}
		fillScaled(samples[i*sps:(i+1)*sps], gain, ref, cfg.Strategy)
	}
	return samples, nil
}

func demodulateBPSK(cfg types.CarrierConfig, samples []float64, n int) (types.BitSequence, error) {
	sps := cfg.SamplesPerSymbol
	ref, err := sineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}

	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		if correlate(samples[i*sps:(i+1)*sps], ref, cfg.Strategy) > 0 {
			bits[i] = types.One
		}
	}
	return bits, nil
}
