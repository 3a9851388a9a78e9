package analogmod

import (
	"math"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// FM impresses the message on the carrier's instantaneous frequency:
// s = A*cos(2*pi*fc*t + 2*pi*kf*cumint(m)), with cumint the left-Riemann
// running integral. The demodulator extracts the unwrapped instantaneous
// phase, strips the carrier ramp and takes the backward difference, which
// exactly inverts the running sum: the first deviation sample already
// holds 2*pi*kf*m[0]*dt.

func modulateFM(cfg types.AnalogCarrierConfig, msg types.Waveform) []float64 {
	dt := 1 / cfg.SampleRate
	integral := integrate(msg.Samples, dt, cfg.Strategy)
	out := make([]float64, len(integral))
	omega := 2 * math.Pi * cfg.CarrierFreq
	twoPiKf := 2 * math.Pi * cfg.FMSensitivity
	for i := range out {
		out[i] = cfg.Amplitude * math.Cos(omega*(float64(i)*dt)+twoPiKf*integral[i])
	}
	return out
}

func demodulateFM(cfg types.AnalogCarrierConfig, samples []float64) []float64 {
	phase := instantaneousPhase(samples)
	dt := 1 / cfg.SampleRate
	omega := 2 * math.Pi * cfg.CarrierFreq
	recip := 1 / (2 * math.Pi * cfg.FMSensitivity * dt)

	out := make([]float64, len(phase))
	prev := 0.0
	for i, p := range phase {
		dev := p - omega*(float64(i)*dt)
		out[i] = (dev - prev) * recip
		prev = dev
	}
	return out
}
