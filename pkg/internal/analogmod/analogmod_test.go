package analogmod_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cigdemahmet27/commlink/pkg/internal/analogmod"
	"github.com/cigdemahmet27/commlink/pkg/internal/signal"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// cleanCarrier returns carrier parameters with a power-of-two sample rate
// and an integer carrier frequency, keeping the FFT-based demodulation
// exact to rounding error.
func cleanCarrier() types.AnalogCarrierConfig {
	return types.AnalogCarrierConfig{
		SampleRate:    1024,
		CarrierFreq:   64,
		Amplitude:     1,
		AMSensitivity: 1,
		FMSensitivity: 8,
		PMSensitivity: math.Pi / 2,
	}
}

func mustModem(t *testing.T, scheme types.Scheme, options ...types.Option[types.AnalogModem]) types.AnalogModem {
	t.Helper()
	m, err := analogmod.New(scheme, options...)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", scheme, err)
	}
	return m
}

// toneMessage returns one second of 0.5*sin(2*pi*4*t): four whole cycles,
// so the message spectrum lands on exact bins.
func toneMessage(t *testing.T) types.Waveform {
	t.Helper()
	msg, err := signal.Sine(4, 0.5, 1024, 1024)
	if err != nil {
		t.Fatalf("Sine failed: %v", err)
	}
	return msg
}

// constantMessage stamps a deliberately wrong rate: the configuration owns
// the time base and the input stamp must not be consulted.
func constantMessage(value float64, n int) types.Waveform {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = value
	}
	return types.NewWaveform(samples, 8000)
}

func TestAMModulatePinnedEnvelope(t *testing.T) {
	cfg := cleanCarrier()
	cfg.Amplitude = 2
	m := mustModem(t, types.AM, analogmod.WithAnalogCarrierConfig(cfg))

	// A constant message scales the whole carrier: 2*(1 + 0.25)*cos(2*pi*64*t).
	wave, err := m.Modulate(constantMessage(0.25, 1024))
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	if wave.SampleRate != 1024 {
		t.Fatalf("Expected the configured rate 1024, got %v", wave.SampleRate)
	}
	if wave.Samples[0] != 2.5 {
		t.Errorf("Expected 2.5 at the cosine peak, got %v", wave.Samples[0])
	}
	if got := wave.Samples[4]; math.Abs(got) > 1e-9 { // quarter carrier period
		t.Errorf("Expected a zero crossing at sample 4, got %v", got)
	}
	if got := wave.Samples[8]; math.Abs(got+2.5) > 1e-9 { // half carrier period
		t.Errorf("Expected -2.5 at sample 8, got %v", got)
	}

	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}
	for i, v := range recovered.Samples {
		if math.Abs(v-0.25) > 1e-9 {
			t.Fatalf("Sample %d: expected 0.25 back, got %v", i, v)
		}
	}
}

func TestAMRoundTripRecoversMessage(t *testing.T) {
	m := mustModem(t, types.AM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))
	msg := toneMessage(t)

	wave, err := m.Modulate(msg)
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}

	maxErr, err := signal.MaxAbsError(msg.Samples, recovered.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	if maxErr > 1e-6 {
		t.Errorf("Recovered message off by %v, expected near-exact recovery", maxErr)
	}
	if recovered.SampleRate != 1024 {
		t.Errorf("Expected the configured rate 1024, got %v", recovered.SampleRate)
	}
}

func TestFMRoundTripRecoversMessage(t *testing.T) {
	m := mustModem(t, types.FM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))
	msg := toneMessage(t)

	wave, err := m.Modulate(msg)
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}

	maxErr, err := signal.MaxAbsError(msg.Samples, recovered.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	if maxErr > 1e-6 {
		t.Errorf("Recovered message off by %v, expected near-exact recovery", maxErr)
	}
}

func TestFMConstantMessageRecoversLevel(t *testing.T) {
	// A constant message parks the carrier at fc + kf*m. The backward
	// difference inverts the running integral exactly, first sample
	// included.
	m := mustModem(t, types.FM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))

	wave, err := m.Modulate(constantMessage(0.5, 1024))
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}
	for i, v := range recovered.Samples {
		if math.Abs(v-0.5) > 1e-9 {
			t.Fatalf("Sample %d: expected 0.5 back, got %v", i, v)
		}
	}
}

func TestPMRoundTripRecoversMessage(t *testing.T) {
	m := mustModem(t, types.PM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))
	msg := toneMessage(t)

	wave, err := m.Modulate(msg)
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}

	maxErr, err := signal.MaxAbsError(msg.Samples, recovered.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	if maxErr > 1e-6 {
		t.Errorf("Recovered message off by %v, expected near-exact recovery", maxErr)
	}
}

func TestPMConstantMessageShiftsPhase(t *testing.T) {
	// kp*m = pi/4, so the carrier opens at cos(pi/4) instead of 1.
	m := mustModem(t, types.PM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))

	wave, err := m.Modulate(constantMessage(0.5, 1024))
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}
	if math.Abs(wave.Samples[0]-math.Sqrt2/2) > 1e-12 {
		t.Errorf("Expected cos(pi/4) at sample 0, got %v", wave.Samples[0])
	}

	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}
	for i, v := range recovered.Samples {
		if math.Abs(v-0.5) > 1e-9 {
			t.Fatalf("Sample %d: expected 0.5 back, got %v", i, v)
		}
	}
}

func TestStrategiesProduceIdenticalWaves(t *testing.T) {
	msg := toneMessage(t)

	for _, scheme := range []types.Scheme{types.AM, types.FM, types.PM} {
		scalarCfg := cleanCarrier()
		scalarCfg.Strategy = types.StrategyScalar
		vectorCfg := cleanCarrier()
		vectorCfg.Strategy = types.StrategyVectorized

		sm := mustModem(t, scheme, analogmod.WithAnalogCarrierConfig(scalarCfg))
		vm := mustModem(t, scheme, analogmod.WithAnalogCarrierConfig(vectorCfg))

		sWave, err := sm.Modulate(msg)
		if err != nil {
			t.Fatalf("%s: scalar Modulate failed: %v", scheme, err)
		}
		vWave, err := vm.Modulate(msg)
		if err != nil {
			t.Fatalf("%s: vectorized Modulate failed: %v", scheme, err)
		}

		// The element-wise paths round identically under both strategies.
		// FM runs the message through a running sum first, whose grouping
		// the vectorized kernel is free to change, so it gets a tolerance.
		tol := 0.0
		if scheme == types.FM {
			tol = 1e-9
		}
		for i := range sWave.Samples {
			if math.Abs(sWave.Samples[i]-vWave.Samples[i]) > tol {
				t.Fatalf("%s: sample %d differs between strategies: %v vs %v", scheme, i, sWave.Samples[i], vWave.Samples[i])
			}
		}

		sRec, err := sm.Demodulate(sWave)
		if err != nil {
			t.Fatalf("%s: scalar Demodulate failed: %v", scheme, err)
		}
		vRec, err := vm.Demodulate(sWave)
		if err != nil {
			t.Fatalf("%s: vectorized Demodulate failed: %v", scheme, err)
		}
		for i := range sRec.Samples {
			if sRec.Samples[i] != vRec.Samples[i] {
				t.Fatalf("%s: demodulated sample %d differs between strategies: %v vs %v", scheme, i, sRec.Samples[i], vRec.Samples[i])
			}
		}
	}
}

func TestDemodulateNeedsMatchingCarrier(t *testing.T) {
	m := mustModem(t, types.PM, analogmod.WithAnalogCarrierConfig(cleanCarrier()))
	msg := toneMessage(t)

	wave, err := m.Modulate(msg)
	if err != nil {
		t.Fatalf("Modulate failed: %v", err)
	}

	offCfg := cleanCarrier()
	offCfg.CarrierFreq = 63
	m.SetAnalogCarrierConfig(offCfg)

	recovered, err := m.Demodulate(wave)
	if err != nil {
		t.Fatalf("Demodulate failed: %v", err)
	}
	maxErr, err := signal.MaxAbsError(msg.Samples, recovered.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	// The leftover 1 Hz carrier ramp sweeps through 4 message units.
	if maxErr < 1 {
		t.Errorf("Expected a mismatched carrier to wreck the recovery, max error %v", maxErr)
	}
}

func TestEmptyMessage(t *testing.T) {
	for _, scheme := range []types.Scheme{types.AM, types.FM, types.PM} {
		m := mustModem(t, scheme, analogmod.WithAnalogCarrierConfig(cleanCarrier()))

		wave, err := m.Modulate(types.Waveform{SampleRate: 1024})
		if err != nil {
			t.Fatalf("%s: Modulate failed on an empty message: %v", scheme, err)
		}
		if wave.Len() != 0 {
			t.Errorf("%s: expected an empty wave, got %d samples", scheme, wave.Len())
		}

		recovered, err := m.Demodulate(wave)
		if err != nil {
			t.Fatalf("%s: Demodulate failed on an empty wave: %v", scheme, err)
		}
		if recovered.Len() != 0 {
			t.Errorf("%s: expected an empty message, got %d samples", scheme, recovered.Len())
		}
	}
}

func TestSensitivityValidatedPerCall(t *testing.T) {
	cfg := cleanCarrier()
	cfg.AMSensitivity = 0
	m := mustModem(t, types.AM, analogmod.WithAnalogCarrierConfig(cfg))

	if _, err := m.Modulate(toneMessage(t)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration for zero AM sensitivity, got %v", err)
	}

	m.SetAnalogCarrierConfig(cleanCarrier())
	if _, err := m.Modulate(toneMessage(t)); err != nil {
		t.Fatalf("Modulate failed after restoring the sensitivity: %v", err)
	}

	fmCfg := cleanCarrier()
	fmCfg.FMSensitivity = -2
	fm := mustModem(t, types.FM, analogmod.WithAnalogCarrierConfig(fmCfg))
	if _, err := fm.Demodulate(types.NewWaveform(make([]float64, 16), 1024)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration for negative FM sensitivity, got %v", err)
	}
}

func TestSchemesIgnoreOtherSensitivities(t *testing.T) {
	cfg := cleanCarrier()
	cfg.FMSensitivity = 0
	cfg.PMSensitivity = -1
	m := mustModem(t, types.AM, analogmod.WithAnalogCarrierConfig(cfg))

	wave, err := m.Modulate(toneMessage(t))
	if err != nil {
		t.Fatalf("AM reads only its own sensitivity, yet Modulate failed: %v", err)
	}
	if _, err := m.Demodulate(wave); err != nil {
		t.Errorf("Demodulate failed: %v", err)
	}
}

func TestNewRejectsNonAnalogSchemes(t *testing.T) {
	for _, scheme := range []types.Scheme{types.NRZL, types.BPSK, types.PCM} {
		if _, err := analogmod.New(scheme); !errors.Is(err, types.ErrUnknownScheme) {
			t.Errorf("New(%s): expected ErrUnknownScheme, got %v", scheme, err)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := cleanCarrier()
	cfg.CarrierFreq = 512 // at Nyquist
	if _, err := analogmod.New(types.AM, analogmod.WithAnalogCarrierConfig(cfg)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration for a carrier at Nyquist, got %v", err)
	}
}

func TestValidateAnalogCarrierPair(t *testing.T) {
	tx := cleanCarrier()
	rx := cleanCarrier()
	if err := types.ValidateAnalogCarrierPair(tx, rx); err != nil {
		t.Fatalf("Identical configurations failed to validate: %v", err)
	}

	rx.CarrierFreq = 65
	if err := types.ValidateAnalogCarrierPair(tx, rx); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration for mismatched carriers, got %v", err)
	}
}

func TestComponentMetadataDefaultsAndOverride(t *testing.T) {
	m := mustModem(t, types.FM)

	meta := m.GetComponentMetadata()
	if meta.Type != "ANALOG_MODEM" {
		t.Errorf("Expected type ANALOG_MODEM, got %q", meta.Type)
	}
	if meta.Name != "FM" {
		t.Errorf("Expected default name FM, got %q", meta.Name)
	}
	if meta.ID == "" {
		t.Error("Expected a generated id")
	}
	if m.GetScheme() != types.FM {
		t.Errorf("Expected scheme FM, got %s", m.GetScheme())
	}

	m.SetComponentMetadata("uplink", "modem-1")
	meta = m.GetComponentMetadata()
	if meta.Name != "uplink" || meta.ID != "modem-1" {
		t.Errorf("Expected the overridden name and id, got %+v", meta)
	}
	if meta.Type != "ANALOG_MODEM" {
		t.Errorf("Type should survive the override, got %q", meta.Type)
	}
}
