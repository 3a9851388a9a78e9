// Package digitalmod implements the digital-to-analog conversions: bits in,
// modulated carrier waveforms out, and back. Four schemes are provided,
// ASK, BPSK, BFSK and 4-QAM, all behind one Modem component dispatching on
// a closed scheme set.
//
// Every symbol interval restarts the carrier at phase zero, so a symbol's
// samples depend only on its own bits and the configuration. The
// demodulator rebuilds the same reference carriers from its configuration
// and decides by correlation: energy thresholding for ASK, sign of the
// in-phase correlation for BPSK, the stronger of two tone correlations for
// BFSK, and the signs of the in-phase and quadrature correlations for
// 4-QAM. Both ends of a link must therefore share one configuration;
// ValidateCarrierPair makes the check explicit.
//
// 4-QAM carries two bits per symbol over a doubled symbol span. Odd bit
// counts are right-padded with a zero bit before mapping.

package digitalmod

import (
	"fmt"
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Modem is the digital modulation component. It carries the scheme, the
// carrier parameters, identifying metadata and any attached loggers.
type Modem struct {
	componentMetadata types.ComponentMetadata // Metadata for the modem, including ID and type.
	scheme            types.Scheme            // The modulation scheme this modem implements.
	config            types.CarrierConfig     // Carrier parameters; validated on every call.
	loggers           []types.Logger          // Loggers for recording events and errors.
	loggersLock       sync.Mutex              // Protects access to the loggers slice.
	configLock        sync.Mutex              // Protects access to the carrier parameters.
	metadataLock      sync.Mutex              // Protects access to the component metadata.
}

// New creates a digital modem for the given scheme, applying any options
// over the defaults. Schemes outside the digital-to-analog set are rejected
// with ErrUnknownScheme; configurations that fail validation are rejected
// with ErrInvalidConfiguration.
func New(scheme types.Scheme, options ...types.Option[types.DigitalModem]) (types.DigitalModem, error) {
	if scheme.Mode() != types.DigitalToAnalog {
		return nil, fmt.Errorf("%w: %s is not a digital modulation scheme", types.ErrUnknownScheme, scheme)
	}
	m := &Modem{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DIGITAL_MODEM",
			Name: scheme.String(),
		},
		scheme: scheme,
		config: types.DefaultCarrierConfig(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if err := m.config.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
