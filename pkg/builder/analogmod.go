package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/analogmod"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewAnalogModem creates a modem for the given analog-to-analog scheme
// with the provided configuration options.
func NewAnalogModem(scheme types.Scheme, options ...types.Option[types.AnalogModem]) (types.AnalogModem, error) {
	return analogmod.New(scheme, options...)
}

// AnalogModemWithLogger adds one or more loggers to the modem.
func AnalogModemWithLogger(logger ...types.Logger) types.Option[types.AnalogModem] {
	return analogmod.WithLogger(logger...)
}

// AnalogModemWithAnalogCarrierConfig replaces the modem's carrier
// parameters.
func AnalogModemWithAnalogCarrierConfig(config types.AnalogCarrierConfig) types.Option[types.AnalogModem] {
	return analogmod.WithAnalogCarrierConfig(config)
}

// AnalogModemWithComponentMetadata adds component metadata overrides.
func AnalogModemWithComponentMetadata(name string, id string) types.Option[types.AnalogModem] {
	return analogmod.WithComponentMetadata(name, id)
}
