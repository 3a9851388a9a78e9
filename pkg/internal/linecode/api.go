package linecode

import (
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// Encode maps the bit sequence onto voltage levels under the configured
// scheme. Every bit occupies SamplesPerBit samples, or twice that for the
// biphase schemes. The configuration is validated on every call so a codec
// never emits samples under parameters that would not construct.
func (c *Codec) Encode(bits types.BitSequence) (types.Waveform, error) {
	cfg := c.snapshotConfig()
	if err := cfg.Validate(); err != nil {
		c.NotifyLoggers(
			types.ErrorLevel,
			"Encode",
			"component", c.GetComponentMetadata(),
			"event", "Encode",
			"result", "FAILURE",
			"scheme", c.scheme.String(),
			"error", err.Error(),
		)
		return types.Waveform{}, err
	}

	var samples []float64
	switch c.scheme {
	case types.NRZL:
		samples = encodeNRZL(cfg, bits)
	case types.NRZI:
		samples = encodeNRZI(cfg, bits)
	case types.Manchester:
		samples = encodeManchester(cfg, bits)
	case types.DiffManchester:
		samples = encodeDiffManchester(cfg, bits)
	case types.BipolarAMI:
		samples = encodeBipolarAMI(cfg, bits)
	case types.Pseudoternary:
		samples = encodePseudoternary(cfg, bits)
	default:
		err := fmt.Errorf("%w: %s", types.ErrUnknownScheme, c.scheme)
		return types.Waveform{}, err
	}

	c.NotifyLoggers(
		types.DebugLevel,
		"Encode",
		"component", c.GetComponentMetadata(),
		"event", "Encode",
		"result", "SUCCESS",
		"scheme", c.scheme.String(),
		"bits", len(bits),
		"samples", len(samples),
	)
	return types.NewWaveform(samples, cfg.SampleRate), nil
}

// Decode recovers the bit sequence from a line-coded waveform. Levels are
// read at the interval boundaries the encoder wrote, and transition-coded
// schemes fold from the same initial level the encoder used. Sample counts
// that do not divide into whole bit intervals return ErrMalformedInput.
func (c *Codec) Decode(wave types.Waveform) (types.BitSequence, error) {
	cfg := c.snapshotConfig()
	if err := cfg.Validate(); err != nil {
		c.NotifyLoggers(
			types.ErrorLevel,
			"Decode",
			"component", c.GetComponentMetadata(),
			"event", "Decode",
			"result", "FAILURE",
			"scheme", c.scheme.String(),
			"error", err.Error(),
		)
		return nil, err
	}

	n, err := checkAlignment(wave.Len(), bitWindow(c.scheme, cfg.SamplesPerBit))
	if err != nil {
		c.NotifyLoggers(
			types.ErrorLevel,
			"Decode",
			"component", c.GetComponentMetadata(),
			"event", "Decode",
			"result", "FAILURE",
			"scheme", c.scheme.String(),
			"samples", wave.Len(),
			"error", err.Error(),
		)
		return nil, err
	}

	var bits types.BitSequence
	switch c.scheme {
	case types.NRZL:
		bits = decodeNRZL(cfg, wave.Samples, n)
	case types.NRZI:
		bits = decodeNRZI(cfg, wave.Samples, n)
	case types.Manchester:
		bits = decodeManchester(cfg, wave.Samples, n)
	case types.DiffManchester:
		bits = decodeDiffManchester(cfg, wave.Samples, n)
	case types.BipolarAMI:
		bits = decodeBipolarAMI(cfg, wave.Samples, n)
	case types.Pseudoternary:
		bits = decodePseudoternary(cfg, wave.Samples, n)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownScheme, c.scheme)
	}

	c.NotifyLoggers(
		types.DebugLevel,
		"Decode",
		"component", c.GetComponentMetadata(),
		"event", "Decode",
		"result", "SUCCESS",
		"scheme", c.scheme.String(),
		"samples", wave.Len(),
		"bits", len(bits),
	)
	return bits, nil
}

// GetScheme returns the line coding scheme the codec implements.
func (c *Codec) GetScheme() types.Scheme {
	return c.scheme
}

// SetLineConfig replaces the codec's line parameters. The next Encode or
// Decode validates them before touching samples.
func (c *Codec) SetLineConfig(cfg types.LineConfig) {
	c.configLock.Lock()
	c.config = cfg
	c.configLock.Unlock()
}

// GetLineConfig returns the codec's line parameters.
func (c *Codec) GetLineConfig() types.LineConfig {
	return c.snapshotConfig()
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

func (c *Codec) snapshotConfig() types.LineConfig {
	c.configLock.Lock()
	cfg := c.config
	c.configLock.Unlock()
	return cfg
}
