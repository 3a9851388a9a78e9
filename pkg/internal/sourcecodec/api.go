package sourcecodec

import (
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Encode digitizes the waveform under the configured scheme: PCM emits
// BitDepth bits per sample, delta modulation one bit per sample. The active
// parameter set is validated on every call.
func (c *Codec) Encode(wave types.Waveform) (types.BitSequence, error) {
	var bits types.BitSequence
	switch c.scheme {
	case types.PCM:
		cfg := c.GetPCMConfig()
		if err := cfg.Validate(); err != nil {
			c.notifyFailure("Encode", err)
			return nil, err
		}
		bits = encodePCM(cfg, wave)
	case types.DeltaMod:
		cfg := c.GetDeltaConfig()
		if err := cfg.Validate(); err != nil {
			c.notifyFailure("Encode", err)
			return nil, err
		}
		bits = encodeDelta(cfg, wave)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownScheme, c.scheme)
	}

	c.NotifyLoggers(
		types.DebugLevel,
		"Encode",
		"component", c.GetComponentMetadata(),
		"event", "Encode",
		"result", "SUCCESS",
		"scheme", c.scheme.String(),
		"samples", wave.Len(),
		"bits", len(bits),
	)
	return bits, nil
}

// Decode reconstructs a waveform from encoded bits, stamped with the
// active configuration's sample rate. PCM bit counts that do not divide
// into whole code words return ErrMalformedInput.
func (c *Codec) Decode(bits types.BitSequence) (types.Waveform, error) {
	var samples []float64
	var rate float64
	switch c.scheme {
	case types.PCM:
		cfg := c.GetPCMConfig()
		if err := cfg.Validate(); err != nil {
			c.notifyFailure("Decode", err)
			return types.Waveform{}, err
		}
		out, err := decodePCM(cfg, bits)
		if err != nil {
			c.notifyFailure("Decode", err)
			return types.Waveform{}, err
		}
		samples, rate = out, cfg.SampleRate
	case types.DeltaMod:
		cfg := c.GetDeltaConfig()
		if err := cfg.Validate(); err != nil {
			c.notifyFailure("Decode", err)
			return types.Waveform{}, err
		}
		samples, rate = decodeDelta(cfg, bits), cfg.SampleRate
	default:
		return types.Waveform{}, fmt.Errorf("%w: %s", types.ErrUnknownScheme, c.scheme)
	}

	c.NotifyLoggers(
		types.DebugLevel,
		"Decode",
		"component", c.GetComponentMetadata(),
		"event", "Decode",
		"result", "SUCCESS",
		"scheme", c.scheme.String(),
		"bits", len(bits),
		"samples", len(samples),
	)
	return types.NewWaveform(samples, rate), nil
}

func (c *Codec) notifyFailure(event string, err error) {
	c.NotifyLoggers(
		types.ErrorLevel,
		event,
		"component", c.GetComponentMetadata(),
		"event", event,
		"result", "FAILURE",
		"scheme", c.scheme.String(),
		"error", err.Error(),
	)
}

// GetScheme returns the source coding scheme the codec implements.
func (c *Codec) GetScheme() types.Scheme {
	return c.scheme
}

// SetPCMConfig replaces the PCM parameters. The next PCM call validates
// them before touching samples.
func (c *Codec) SetPCMConfig(cfg types.PCMConfig) {
	c.configLock.Lock()
	c.pcmConfig = cfg
	c.configLock.Unlock()
}

// GetPCMConfig returns the PCM parameters.
func (c *Codec) GetPCMConfig() types.PCMConfig {
	c.configLock.Lock()
	cfg := c.pcmConfig
	c.configLock.Unlock()
	return cfg
}

// SetDeltaConfig replaces the delta modulation parameters.
func (c *Codec) SetDeltaConfig(cfg types.DeltaConfig) {
	c.configLock.Lock()
	c.deltaConfig = cfg
	c.configLock.Unlock()
}

// GetDeltaConfig returns the delta modulation parameters.
func (c *Codec) GetDeltaConfig() types.DeltaConfig {
	c.configLock.Lock()
	cfg := c.deltaConfig
	c.configLock.Unlock()
	return cfg
}

// GetComponentMetadata returns the codec metadata.
func (c *Codec) GetComponentMetadata() types.ComponentMetadata {
	c.metadataLock.Lock()
	metadata := c.componentMetadata
	c.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata updates codec metadata values.
func (c *Codec) SetComponentMetadata(name string, id string) {
	c.metadataLock.Lock()
	c.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: c.componentMetadata.Type}
	c.metadataLock.Unlock()
}
