package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/digitalmod"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewDigitalModem creates a modem for the given digital-to-analog scheme
// with the provided configuration options.
func NewDigitalModem(scheme types.Scheme, options ...types.Option[types.DigitalModem]) (types.DigitalModem, error) {
	return digitalmod.New(scheme, options...)
}

// DigitalModemWithLogger adds one or more loggers to the modem.
func DigitalModemWithLogger(logger ...types.Logger) types.Option[types.DigitalModem] {
	return digitalmod.WithLogger(logger...)
}

// DigitalModemWithCarrierConfig replaces the modem's carrier parameters.
func DigitalModemWithCarrierConfig(config types.CarrierConfig) types.Option[types.DigitalModem] {
	return digitalmod.WithCarrierConfig(config)
}

// DigitalModemWithComponentMetadata adds component metadata overrides.
func DigitalModemWithComponentMetadata(name string, id string) types.Option[types.DigitalModem] {
	return digitalmod.WithComponentMetadata(name, id)
}
