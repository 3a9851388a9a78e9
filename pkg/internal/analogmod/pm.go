package analogmod

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// PM impresses the message on the carrier phase directly:
// s = A*cos(2*pi*fc*t + kp*m). The demodulator strips the carrier ramp
// from the unwrapped instantaneous phase and rescales by kp; there is no
// integration to invert.

func modulatePM(cfg types.AnalogCarrierConfig, msg types.Waveform) []float64 {
	deviation := scaleTo(msg.Samples, cfg.PMSensitivity, cfg.Strategy)
	out := make([]float64, len(deviation))
	omega := 2 * math.Pi * cfg.CarrierFreq
	dt := 1 / cfg.SampleRate
	for i := range out {
		out[i] = cfg.Amplitude * math.Cos(omega*(float64(i)*dt)+deviation[i])
	}
	return out
}

func demodulatePM(cfg types.AnalogCarrierConfig, samples []float64) []float64 {
	phase := instantaneousPhase(samples)
	dt := 1 / cfg.SampleRate
	omega := 2 * math.Pi * cfg.CarrierFreq

	deviation := make([]float64, len(phase))
	for i, p := range phase {
		deviation[i] = p - omega*(float64(i)*dt)
	}
	return scaleTo(deviation, 1/cfg.PMSensitivity, cfg.Strategy)
}
