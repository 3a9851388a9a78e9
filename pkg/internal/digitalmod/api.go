package digitalmod

import (
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Modulate maps the bit sequence onto carrier symbols under the configured
// scheme. Every bit occupies SamplesPerSymbol samples, or twice that per
// bit pair for 4-QAM. The configuration is validated on every call so a
// modem never emits samples under parameters that would not construct.
func (m *Modem) Modulate(bits types.BitSequence) (types.Waveform, error) {
	cfg := m.snapshotConfig()
	if err := cfg.Validate(); err != nil {
		m.NotifyLoggers(
			types.ErrorLevel,
			"Modulate",
			"component", m.GetComponentMetadata(),
			"event", "Modulate",
			"result", "FAILURE",
			"scheme", m.scheme.String(),
			"error", err.Error(),
		)
		return types.Waveform{}, err
	}

	var samples []float64
	var err error
	switch m.scheme {
	case types.ASK:
		samples, err = modulateASK(cfg, bits)
	case types.BPSK:
		samples, err = modulateBPSK(cfg, bits)
	case types.BFSK:
		samples, err = modulateBFSK(cfg, bits)
	case types.QAM4:
		samples, err = modulateQAM(cfg, bits)
	default:
		err = fmt.Errorf("%w: %s", types.ErrUnknownScheme, m.scheme)
	}
	if err != nil {
		m.NotifyLoggers(
			types.ErrorLevel,
			"Modulate",
			"component", m.GetComponentMetadata(),
			"event", "Modulate",
			"result", "FAILURE",
			"scheme", m.scheme.String(),
			"error", err.Error(),
		)
		return types.Waveform{}, err
	}

	m.NotifyLoggers(
		types.DebugLevel,
		"Modulate",
		"component", m.GetComponentMetadata(),
		"event", "Modulate",
		"result", "SUCCESS",
		"scheme", m.scheme.String(),
		"bits", len(bits),
		"samples", len(samples),
	)
	return types.NewWaveform(samples, cfg.SampleRate), nil
}

// Demodulate recovers the bit sequence by correlating each symbol span
// against reference carriers built from the modem's own configuration.
// Sample counts that do not divide into whole symbol spans return
// ErrMalformedInput. 4-QAM returns two bits per span, including any bit
// the transmitter padded.
func (m *Modem) Demodulate(wave types.Waveform) (types.BitSequence, error) {
	cfg := m.snapshotConfig()
	if err := cfg.Validate(); err != nil {
		m.NotifyLoggers(
			types.ErrorLevel,
			"Demodulate",
			"component", m.GetComponentMetadata(),
			"event", "Demodulate",
			"result", "FAILURE",
			"scheme", m.scheme.String(),
			"error", err.Error(),
		)
		return nil, err
	}

	n, err := checkAlignment(wave.Len(), symbolWindow(m.scheme, cfg.SamplesPerSymbol))
	if err != nil {
		m.NotifyLoggers(
			types.ErrorLevel,
			"Demodulate",
			"component", m.GetComponentMetadata(),
			"event", "Demodulate",
			"result", "FAILURE",
			"scheme", m.scheme.String(),
			"samples", wave.Len(),
			"error", err.Error(),
		)
		return nil, err
	}

	var bits types.BitSequence
	switch m.scheme {
	case types.ASK:
		bits, err = demodulateASK(cfg, wave.Samples, n)
	case types.BPSK:
		bits, err = demodulateBPSK(cfg, wave.Samples, n)
	case types.BFSK:
		bits, err = demodulateBFSK(cfg, wave.Samples, n)
	case types.QAM4:
		bits, err = demodulateQAM(cfg, wave.Samples, n)
	default:
		err = fmt.Errorf("%w: %s", types.ErrUnknownScheme, m.scheme)
	}
	if err != nil {
		return nil, err
	}

	m.NotifyLoggers(
		types.DebugLevel,
		"Demodulate",
		"component", m.GetComponentMetadata(),
		"event", "Demodulate",
		"result", "SUCCESS",
		"scheme", m.scheme.String(),
		"samples", wave.Len(),
		"bits", len(bits),
	)
	return bits, nil
}

// GetScheme returns the modulation scheme the modem implements.
func (m *Modem) GetScheme() types.Scheme {
	return m.scheme
}

// SetCarrierConfig replaces the modem's carrier parameters. The next
// Modulate or Demodulate validates them before touching samples.
func (m *Modem) SetCarrierConfig(cfg types.CarrierConfig) {
	m.configLock.Lock()
	m.config = cfg
	m.configLock.Unlock()
}

// GetCarrierConfig returns the modem's carrier parameters.
func (m *Modem) GetCarrierConfig() types.CarrierConfig {
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

func (m *Modem) snapshotConfig() types.CarrierConfig {
	m.configLock.Lock()
	cfg := m.config
	m.configLock.Unlock()
	return cfg
}
