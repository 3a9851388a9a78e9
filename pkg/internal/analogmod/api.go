package analogmod

import (
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Modulate impresses the message waveform onto the carrier under the
// configured scheme. The configuration and the scheme's sensitivity are
// validated on every call; keeping the modulation index inside its
// documented range is the caller's responsibility.
func (m *Modem) Modulate(message types.Waveform) (types.Waveform, error) {
	cfg, err := m.validatedConfig()
	if err != nil {
		m.notifyFailure("Modulate", err)
		return types.Waveform{}, err
	}

	var samples []float64
	switch m.scheme {
	case types.AM:
		samples = modulateAM(cfg, message)
	case types.FM:
		samples = modulateFM(cfg, message)
	case types.PM:
		samples = modulatePM(cfg, message)
	default:
		err := fmt.Errorf("%w: %s", types.ErrUnknownScheme, m.scheme)
		return types.Waveform{}, err
	}

	m.NotifyLoggers(
		types.DebugLevel,
		"Modulate",
		"component", m.GetComponentMetadata(),
		"event", "Modulate",
		"result", "SUCCESS",
		"scheme", m.scheme.String(),
		"samples", len(samples),
	)
	return types.NewWaveform(samples, cfg.SampleRate), nil
}

// Demodulate recovers the message from the modulated carrier through the
// analytic signal, using the same configuration used to modulate.
func (m *Modem) Demodulate(wave types.Waveform) (types.Waveform, error) {
	cfg, err := m.validatedConfig()
	if err != nil {
		m.notifyFailure("Demodulate", err)
		return types.Waveform{}, err
	}

	var samples []float64
	switch m.scheme {
	case types.AM:
		samples = demodulateAM(cfg, wave.Samples)
	case types.FM:
		samples = demodulateFM(cfg, wave.Samples)
	case types.PM:
		samples = demodulatePM(cfg, wave.Samples)
	default:
		err := fmt.Errorf("%w: %s", types.ErrUnknownScheme, m.scheme)
		return types.Waveform{}, err
	}

	m.NotifyLoggers(
		types.DebugLevel,
		"Demodulate",
		"component", m.GetComponentMetadata(),
		"event", "Demodulate",
		"result", "SUCCESS",
		"scheme", m.scheme.String(),
		"samples", len(samples),
	)
	return types.NewWaveform(samples, cfg.SampleRate), nil
}

func (m *Modem) validatedConfig() (types.AnalogCarrierConfig, error) {
	cfg := m.snapshotConfig()
	if err := cfg.Validate(); err != nil {
		return types.AnalogCarrierConfig{}, err
	}
	if err := checkSensitivity(m.scheme, cfg); err != nil {
		return types.AnalogCarrierConfig{}, err
	}
	return cfg, nil
}

func (m *Modem) notifyFailure(event string, err error) {
	m.NotifyLoggers(
		types.ErrorLevel,
		event,
		"component", m.GetComponentMetadata(),
		"event", event,
		"result", "FAILURE",
		"scheme", m.scheme.String(),
		"error", err.Error(),
	)
}

// GetScheme returns the modulation scheme the modem implements.
func (m *Modem) GetScheme() types.Scheme {
	return m.scheme
}

// SetAnalogCarrierConfig replaces the modem's carrier parameters. The next
// Modulate or Demodulate validates them before touching samples.
func (m *Modem) SetAnalogCarrierConfig(cfg types.AnalogCarrierConfig) {
	m.configLock.Lock()
	m.config = cfg
	m.configLock.Unlock()
}

// GetAnalogCarrierConfig returns the modem's carrier parameters.
func (m *Modem) GetAnalogCarrierConfig() types.AnalogCarrierConfig {
	return m.snapshotConfig()
}

// GetComponentMetadata returns the modem metadata.
func (m *Modem) GetComponentMetadata() types.ComponentMetadata {
	m.metadataLock.Lock()
	metadata := m.componentMetadata
	m.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata updates modem metadata values.
func (m *Modem) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
	m.metadataLock.Unlock()
}

func (m *Modem) snapshotConfig() types.AnalogCarrierConfig {
	m.configLock.Lock()
	cfg := m.config
	m.configLock.Unlock()
	return cfg
}
