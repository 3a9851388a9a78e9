package analogmod

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// AM impresses the message on the carrier envelope:
// s = A*(1 + k*m)*cos(2*pi*fc*t). While k*max|m| stays under 1 the
// envelope never folds through zero, so the analytic-signal magnitude
// recovers A*(1 + k*m) and the message falls out by rescaling.

func modulateAM(cfg types.AnalogCarrierConfig, msg types.Waveform) []float64 {
	gain := affineTo(msg.Samples, cfg.AMSensitivity, 1, cfg.Strategy)
	out := make([]float64, len(gain))
	omega := 2 * math.Pi * cfg.CarrierFreq
	dt := 1 / cfg.SampleRate
	for i := range out {
		out[i] = gain[i] * (cfg.Amplitude * math.Cos(omega*(float64(i)*dt)))
	}
	return out
}

func demodulateAM(cfg types.AnalogCarrierConfig, samples []float64) []float64 {
	env := envelope(samples)
	rescaled := affineTo(env, 1/cfg.Amplitude, -1, cfg.Strategy)
	return scaleTo(rescaled, 1/cfg.AMSensitivity, cfg.Strategy)
}
