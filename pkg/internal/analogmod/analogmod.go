// Package analogmod implements the analog-to-analog conversions: message
// waveforms in, modulated carrier waveforms out, and back. Three schemes
// are provided, AM, FM and PM, behind one Modem component dispatching on a
// closed scheme set.
//
// Unlike the digital modems, the carrier runs on a continuous time base
// t = i/SampleRate across the whole waveform. The configuration's sample
// rate governs that time base; the input waveform's stamp is not consulted.
//
// Demodulation goes through the analytic signal: an FFT-built Hilbert
// transform supplies the instantaneous amplitude for AM and the unwrapped
// instantaneous phase for FM and PM. Recovery is tight when the modulation
// index stays inside its documented range (AM: k*max|m| < 1, FM:
// fc + kf*max|m| below Nyquist, PM: kp*max|m| < pi) and the content is
// reasonably band-limited; outside those ranges the envelope folds or the
// phase wraps and the recovered message is the caller's responsibility.

package analogmod

import (
	"fmt"
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Modem is the analog modulation component. It carries the scheme, the
// carrier parameters, identifying metadata and any attached loggers.
type Modem struct {
	componentMetadata types.ComponentMetadata   // Metadata for the modem, including ID and type.
	scheme            types.Scheme              // The modulation scheme this modem implements.
	config            types.AnalogCarrierConfig // Carrier parameters; validated on every call.
	loggers           []types.Logger            // Loggers for recording events and errors.
	loggersLock       sync.Mutex                // Protects access to the loggers slice.
	configLock        sync.Mutex                // Protects access to the carrier parameters.
	metadataLock      sync.Mutex                // Protects access to the component metadata.
}

// New creates an analog modem for the given scheme, applying any options
// over the defaults. Schemes outside the analog-to-analog set are rejected
// with ErrUnknownScheme; configurations that fail validation are rejected
// with ErrInvalidConfiguration.
func New(scheme types.Scheme, options ...types.Option[types.AnalogModem]) (types.AnalogModem, error) {
	if scheme.Mode() != types.AnalogToAnalog {
		return nil, fmt.Errorf("%w: %s is not an analog modulation scheme", types.ErrUnknownScheme, scheme)
	}
	m := &Modem{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "ANALOG_MODEM",
			Name: scheme.String(),
		},
		scheme: scheme,
		config: types.DefaultAnalogCarrierConfig(),
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
