// Package digitalmod provides options for configuring digital modem components.
//
// This file defines the options used to customize a modem at construction:
// attaching loggers, replacing the carrier parameters and overriding
// component metadata.
package digitalmod

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// WithLogger creates an option to add a logger to a digital modem.
//
// Parameters:
//   - logger: One or more logger instances to be added to the modem for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.DigitalModem] that, when called with a modem,
//	connects the specified logger(s) to the modem.
func WithLogger(logger ...types.Logger) types.Option[types.DigitalModem] {
	return func(m types.DigitalModem) {
		m.ConnectLogger(logger...)
	}
}

// WithCarrierConfig creates an option to replace the modem's carrier parameters.
//
// Parameters:
//   - config: The carrier parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.DigitalModem] that, when called with a modem,
//	replaces its carrier parameters. Validation happens when the constructor
//	finishes applying options.
func WithCarrierConfig(config types.CarrierConfig) types.Option[types.DigitalModem] {
	return func(m types.DigitalModem) {
		m.SetCarrierConfig(config)
	}
}

// WithComponentMetadata creates an option to override default component metadata.
//
// Parameters:
//   - name: The name to assign to the modem.
//   - id: The id to assign to the modem.
//
// Returns:
//
//	A function conforming to types.Option[types.DigitalModem] that, when called with a modem,
//	overrides its name and id.
func WithComponentMetadata(name string, id string) types.Option[types.DigitalModem] {
	return func(m types.DigitalModem) {
		m.SetComponentMetadata(name, id)
	}
}
