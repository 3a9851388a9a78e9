package digitalmod

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// ASK keys the carrier amplitude: 1 transmits one symbol span of the
// carrier, 0 transmits silence. The demodulator compares each span's L1
// energy against half the energy of a full-amplitude span.

func modulateASK(cfg types.CarrierConfig, bits types.BitSequence) ([]float64, error) {
	sps := cfg.SamplesPerSymbol
	mark, err := sineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}
	samples := make([]float64, len(bits)*sps)
	for i, b := range bits {
		if b != types.One {
			continue
		}
		fillScaled(samples[i*sps:(i+1)*sps], 1, mark, cfg.Strategy)
	}
	return samples, nil
}

func demodulateASK(cfg types.CarrierConfig, samples []float64, n int) (types.BitSequence, error) {
	sps := cfg.SamplesPerSymbol
	mark, err := sineRef(cfg.CarrierFreq, cfg.Amplitude, cfg, sps)
	if err != nil {
		return nil, err
	}
	threshold := absSum(mark, cfg.Strategy) / 2

	bits := make(types.BitSequence, n)
	for i := 0; i < n; i++ {
		energy := absSum(samples[i*sps:(i+1)*sps], cfg.Strategy)
		if energy > threshold {
			bits[i] = types.One
		}
	}
	return bits, nil
}
