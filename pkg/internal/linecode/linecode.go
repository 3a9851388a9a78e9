// Package linecode implements the digital-to-digital conversions: bits in,
// voltage-level waveforms out, and back. Six schemes are provided, NRZ-L,
// NRZI, Manchester, differential Manchester, bipolar AMI and pseudoternary,
// all behind one Codec component dispatching on a closed scheme set.
//
// Level conventions are fixed and observable:
//   - NRZ-L: bit 1 is +Amplitude, bit 0 is -Amplitude.
//   - NRZI: a transition at the interval start encodes 1; the line starts
//     at +Amplitude unless configured otherwise.
//   - Manchester: bit 0 is high-to-low, bit 1 is low-to-high; each half
//     interval spans SamplesPerBit samples.
//   - Differential Manchester: every bit has a mid-interval transition; a
//     boundary transition encodes 0. The line starts at -Amplitude unless
//     configured otherwise.
//   - Bipolar AMI: bit 0 is zero volts, bit 1 alternates mark polarity
//     starting from FirstMark. Pseudoternary swaps the bit roles.
//
// The transition-coded schemes thread their line state through an explicit
// fold over the bit sequence; nothing survives a call, so codecs are safe
// for concurrent use once configured.

package linecode

import (
	"fmt"
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Codec is the line coding component. It carries the scheme, the shared
// line parameters, identifying metadata and any attached loggers.
type Codec struct {
	componentMetadata types.ComponentMetadata // Metadata for the codec, including ID and type.
	scheme            types.Scheme            // The line coding scheme this codec implements.
	config            types.LineConfig        // Shared line parameters; validated on every call.
	loggers           []types.Logger          // Loggers for recording events and errors.
	loggersLock       sync.Mutex              // Protects access to the loggers slice.
	configLock        sync.Mutex              // Protects access to the line parameters.
	metadataLock      sync.Mutex              // Protects access to the component metadata.
}

// New creates a line codec for the given scheme, applying any options over
// the defaults. Schemes outside the digital-to-digital set are rejected
// with ErrUnknownScheme; configurations that fail validation are rejected
// with ErrInvalidConfiguration.
func New(scheme types.Scheme, options ...types.Option[types.LineCodec]) (types.LineCodec, error) {
	if scheme.Mode() != types.DigitalToDigital {
		return nil, fmt.Errorf("%w: %s is not a line coding scheme", types.ErrUnknownScheme, scheme)
	}
	c := &Codec{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "LINE_CODEC",
			Name: scheme.String(),
		},
		scheme: scheme,
		config: types.DefaultLineConfig(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// initialLevel resolves the configured starting line level for the
// transition-coded schemes. NRZI idles high, differential Manchester idles
// low, matching the decoder's seeds.
func initialLevel(scheme types.Scheme, cfg types.LineConfig) float64 {
	p := cfg.InitialLevel
	if p == types.PolarityDefault {
		if scheme == types.DiffManchester {
			p = types.PolarityNegative
		} else {
			p = types.PolarityPositive
		}
	}
	return float64(p) * cfg.Amplitude
}

// firstMark resolves the polarity of the first nonzero pulse for the
// bipolar schemes.
func firstMark(cfg types.LineConfig) float64 {
	p := cfg.FirstMark
	if p == types.PolarityDefault {
		p = types.PolarityPositive
	}
	return float64(p) * cfg.Amplitude
}
