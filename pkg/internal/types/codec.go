// pkg/internal/types/codec.go
package types

// The four codec contracts below mirror the four conversion categories.
// Every transformation is a pure function over (input, configuration): no
// hidden state survives a call, so an encode followed by the matching decode
// under the same configuration reproduces the input (analog paths within
// their documented tolerance). Configuration is applied through options at
// construction and validated again on every call, so a codec never touches
// samples under parameters that would not validate.

// LineCodec converts bits to a line-coded digital waveform and back.
type LineCodec interface {
	// Encode maps bits to voltage-level samples, SamplesPerBit samples per
	// signaling interval (per half interval for the biphase schemes). An
	// empty sequence yields an empty waveform.
	Encode(bits BitSequence) (Waveform, error)

	// Decode recovers bits from a line-coded waveform. The sample count
	// must be a whole number of signaling intervals or ErrMalformedInput
	// is returned.
	Decode(wave Waveform) (BitSequence, error)

	// ConnectLogger attaches one or more loggers to the codec.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the codec's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the codec's name and id.
	SetComponentMetadata(name string, id string)

	// GetScheme returns the line coding scheme the codec implements.
	GetScheme() Scheme

	// SetLineConfig replaces the codec's configuration.
	SetLineConfig(LineConfig)

	// GetLineConfig returns the codec's configuration.
	GetLineConfig() LineConfig
}

// DigitalModem converts bits to a modulated carrier waveform and back.
type DigitalModem interface {
	// Modulate maps bits onto carrier symbols. An empty sequence yields an
	// empty waveform.
	Modulate(bits BitSequence) (Waveform, error)

	// Demodulate recovers bits by correlating against reference carriers
	// built from the same configuration used to modulate. The sample count
	// must be a whole number of symbol spans or ErrMalformedInput is
	// returned.
	Demodulate(wave Waveform) (BitSequence, error)

	// ConnectLogger attaches one or more loggers to the modem.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the modem's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the modem's name and id.
	SetComponentMetadata(name string, id string)

	// GetScheme returns the modulation scheme the modem implements.
	GetScheme() Scheme

	// SetCarrierConfig replaces the modem's carrier configuration.
	SetCarrierConfig(CarrierConfig)

	// GetCarrierConfig returns the modem's carrier configuration.
	GetCarrierConfig() CarrierConfig
}

// SourceCodec converts an analog waveform to bits and back. One codec
// carries both the PCM and the delta modulation parameter sets; the scheme
// selects which set a call reads.
type SourceCodec interface {
	// Encode digitizes the waveform. An empty waveform yields an empty
	// sequence.
	Encode(wave Waveform) (BitSequence, error)

	// Decode reconstructs a waveform from encoded bits at the configured
	// sample rate. Bit counts that do not divide into whole code words
	// return ErrMalformedInput.
	Decode(bits BitSequence) (Waveform, error)

	// ConnectLogger attaches one or more loggers to the codec.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the codec's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the codec's name and id.
	SetComponentMetadata(name string, id string)

	// GetScheme returns the source coding scheme the codec implements.
	GetScheme() Scheme

	// SetPCMConfig replaces the pulse-code modulation parameters.
	SetPCMConfig(PCMConfig)

	// GetPCMConfig returns the pulse-code modulation parameters.
	GetPCMConfig() PCMConfig

	// SetDeltaConfig replaces the delta modulation parameters.
	SetDeltaConfig(DeltaConfig)

	// GetDeltaConfig returns the delta modulation parameters.
	GetDeltaConfig() DeltaConfig
}

// AnalogModem converts an analog message waveform to a modulated carrier
// waveform and back.
type AnalogModem interface {
	// Modulate impresses the message onto the carrier. An empty message
	// yields an empty waveform.
	Modulate(message Waveform) (Waveform, error)

	// Demodulate recovers the message from the modulated carrier using the
	// same configuration used to modulate.
	Demodulate(wave Waveform) (Waveform, error)

	// ConnectLogger attaches one or more loggers to the modem.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the modem's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the modem's name and id.
	SetComponentMetadata(name string, id string)

	// GetScheme returns the modulation scheme the modem implements.
	GetScheme() Scheme

	// SetAnalogCarrierConfig replaces the modem's carrier configuration.
	SetAnalogCarrierConfig(AnalogCarrierConfig)

	// GetAnalogCarrierConfig returns the modem's carrier configuration.
	GetAnalogCarrierConfig() AnalogCarrierConfig
}
