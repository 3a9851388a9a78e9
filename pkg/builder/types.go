package builder

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// Core signal types re-exported from the internal types package.
type Bit = types.Bit

type BitSequence = types.BitSequence

type Waveform = types.Waveform

type Signal = types.Signal

type SignalKind = types.SignalKind

type WaveAnalysis = types.WaveAnalysis

type Peak = types.Peak

// Scheme taxonomy.
type Mode = types.Mode

type Scheme = types.Scheme

type SchemeDescriptor = types.SchemeDescriptor

// Component interfaces.
type LineCodec = types.LineCodec

type DigitalModem = types.DigitalModem

type SourceCodec = types.SourceCodec

type AnalogModem = types.AnalogModem

type Pipeline = types.Pipeline

type Probe = types.Probe

// Configuration.
type LineConfig = types.LineConfig

type CarrierConfig = types.CarrierConfig

type PCMConfig = types.PCMConfig

type DeltaConfig = types.DeltaConfig

type AnalogCarrierConfig = types.AnalogCarrierConfig

type Range = types.Range

type Polarity = types.Polarity

type ExecutionStrategy = types.ExecutionStrategy

// Transmission plumbing.
type Channel = types.Channel

type TransmissionState = types.TransmissionState

type TransmissionResult = types.TransmissionResult

type ComponentMetadata = types.ComponentMetadata

const (
	Zero = types.Zero
	One  = types.One
)

const (
	SignalBits = types.SignalBits
	SignalWave = types.SignalWave
)

const (
	DigitalToDigital = types.DigitalToDigital
	DigitalToAnalog  = types.DigitalToAnalog
	AnalogToDigital  = types.AnalogToDigital
	AnalogToAnalog   = types.AnalogToAnalog
)

const (
	NRZL           = types.NRZL
	NRZI           = types.NRZI
	Manchester     = types.Manchester
	DiffManchester = types.DiffManchester
	BipolarAMI     = types.BipolarAMI
	Pseudoternary  = types.Pseudoternary
	ASK            = types.ASK
	BPSK           = types.BPSK
	BFSK           = types.BFSK
	QAM4           = types.QAM4
	PCM            = types.PCM
	DeltaMod       = types.DeltaMod
	AM             = types.AM
	FM             = types.FM
	PM             = types.PM
)

const (
	StateIdle     = types.StateIdle
	StateEncoded  = types.StateEncoded
	StateDecoded  = types.StateDecoded
	StateVerified = types.StateVerified
	StateFailed   = types.StateFailed
)

const (
	StrategyScalar     = types.StrategyScalar
	StrategyVectorized = types.StrategyVectorized
)

const (
	PolarityDefault  = types.PolarityDefault
	PolarityPositive = types.PolarityPositive
	PolarityNegative = types.PolarityNegative
)

// Sentinel errors every component reports through.
var (
	ErrUnknownScheme        = types.ErrUnknownScheme
	ErrInvalidConfiguration = types.ErrInvalidConfiguration
	ErrMalformedInput       = types.ErrMalformedInput
)

// ParseBitSequence parses a string of '0' and '1' runes.
func ParseBitSequence(s string) (BitSequence, error) {
	return types.ParseBitSequence(s)
}

// MustParseBitSequence parses a bit string and panics on malformed input.
func MustParseBitSequence(s string) BitSequence {
	return types.MustParseBitSequence(s)
}

// ParseScheme resolves a scheme from its display name or a common alias.
func ParseScheme(s string) (Scheme, error) {
	return types.ParseScheme(s)
}

// ParseMode resolves a conversion mode from its display name.
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}

// NewSchemeDescriptor pairs a mode with a scheme, rejecting mismatches.
func NewSchemeDescriptor(mode Mode, scheme Scheme) (SchemeDescriptor, error) {
	return types.NewSchemeDescriptor(mode, scheme)
}

// DescriptorFor returns the descriptor a scheme naturally belongs to.
func DescriptorFor(scheme Scheme) SchemeDescriptor {
	return types.DescriptorFor(scheme)
}

// AllSchemes lists every registered scheme in display order.
func AllSchemes() []Scheme {
	return types.AllSchemes()
}

// NewWaveform wraps samples and a sample rate into a Waveform.
func NewWaveform(samples []float64, sampleRate float64) Waveform {
	return types.NewWaveform(samples, sampleRate)
}

// BitSignal wraps a bit sequence as a pipeline input or output.
func BitSignal(bits BitSequence) Signal {
	return types.BitSignal(bits)
}

// WaveSignal wraps a waveform as a pipeline input or output.
func WaveSignal(wave Waveform) Signal {
	return types.WaveSignal(wave)
}

// IdentityChannel passes signals through untouched. It is the channel a
// pipeline starts with.
func IdentityChannel(s Signal) Signal {
	return types.IdentityChannel(s)
}

// ValidateCarrierPair confirms transmit and receive carrier parameters
// are identical before a link is built from them.
func ValidateCarrierPair(tx, rx CarrierConfig) error {
	return types.ValidateCarrierPair(tx, rx)
}

// ValidateAnalogCarrierPair confirms transmit and receive analog carrier
// parameters are identical before a link is built from them.
func ValidateAnalogCarrierPair(tx, rx AnalogCarrierConfig) error {
	return types.ValidateAnalogCarrierPair(tx, rx)
}

// DefaultLineConfig returns the line coding defaults.
func DefaultLineConfig() LineConfig {
	return types.DefaultLineConfig()
}

// DefaultCarrierConfig returns the digital modulation defaults.
func DefaultCarrierConfig() CarrierConfig {
	return types.DefaultCarrierConfig()
}

// DefaultPCMConfig returns the PCM defaults.
func DefaultPCMConfig() PCMConfig {
	return types.DefaultPCMConfig()
}

// DefaultDeltaConfig returns the delta modulation defaults.
func DefaultDeltaConfig() DeltaConfig {
	return types.DefaultDeltaConfig()
}

// DefaultAnalogCarrierConfig returns the analog modulation defaults.
func DefaultAnalogCarrierConfig() AnalogCarrierConfig {
	return types.DefaultAnalogCarrierConfig()
}
