package types

import (
	"fmt"
	"math"
)

// ExecutionStrategy selects how a codec executes its single reference
// algorithm. Both strategies compute the same samples in the same order;
// the vectorized path batches the arithmetic over whole intervals. Results
// are interchangeable, so the strategy is a performance knob, never a
// semantic one.
type ExecutionStrategy int

const (
	// StrategyScalar computes sample by sample.
	StrategyScalar ExecutionStrategy = iota
	// StrategyVectorized computes over whole slices at a time.
	StrategyVectorized
)

// String returns the strategy name used in logs.
func (s ExecutionStrategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyVectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("ExecutionStrategy(%d)", int(s))
	}
}

// Polarity is a signed unit voltage direction. The zero value means
// "use the scheme's documented default", letting configurations leave
// initial states unset.
type Polarity int

const (
	// PolarityDefault defers to the scheme's documented initial state.
	PolarityDefault Polarity = 0
	// PolarityPositive selects the +Amplitude level.
	PolarityPositive Polarity = 1
	// PolarityNegative selects the -Amplitude level.
	PolarityNegative Polarity = -1
)

// LineConfig carries the shared parameters of every line coding scheme.
type LineConfig struct {
	// SamplesPerBit is the number of samples one signaling interval spans.
	// Biphase schemes emit this many samples per half interval, so one bit
	// occupies twice as many samples there.
	SamplesPerBit int

	// Amplitude is the magnitude of the high and low line levels in volts.
	Amplitude float64

	// InitialLevel seeds the line level assumed before the first bit for
	// the transition-coded schemes (NRZI, differential Manchester). Encoder
	// and decoder must agree on it.
	InitialLevel Polarity

	// FirstMark sets the polarity of the first nonzero pulse for the
	// bipolar schemes (AMI, pseudoternary).
	FirstMark Polarity

	// SampleRate is the nominal sampling frequency of the emitted waveform
	// in Hz.
	SampleRate float64

	// Strategy selects scalar or vectorized execution.
	Strategy ExecutionStrategy
}

// DefaultLineConfig returns the line coding defaults: 100 samples per bit
// at 1 kHz with unit amplitude.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		SamplesPerBit: 100,
		Amplitude:     1,
		SampleRate:    1000,
	}
}

// Validate checks the configuration for use with any line coding scheme.
func (c LineConfig) Validate() error {
	if c.SamplesPerBit < 1 {
		return fmt.Errorf("%w: samples per bit must be at least 1, got %d", ErrInvalidConfiguration, c.SamplesPerBit)
	}
	if c.Amplitude <= 0 {
		return fmt.Errorf("%w: amplitude must be positive, got %v", ErrInvalidConfiguration, c.Amplitude)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfiguration, c.SampleRate)
	}
	if err := validPolarity("initial level", c.InitialLevel); err != nil {
		return err
	}
	return validPolarity("first mark", c.FirstMark)
}

func validPolarity(field string, p Polarity) error {
	switch p {
	case PolarityDefault, PolarityPositive, PolarityNegative:
		return nil
	default:
		return fmt.Errorf("%w: %s must be -1, 0 or +1, got %d", ErrInvalidConfiguration, field, int(p))
	}
}

// CarrierConfig carries the parameters of the digital modulation schemes.
// Both directions of a link must be built from one CarrierConfig; any field
// mismatch between modulator and demodulator silently corrupts recovered
// bits, which is why ValidateCarrierPair exists.
type CarrierConfig struct {
	// SampleRate is the sampling frequency in Hz.
	SampleRate float64

	// CarrierFreq is the carrier frequency in Hz. It must sit below the
	// Nyquist frequency SampleRate/2.
	CarrierFreq float64

	// Amplitude is the carrier amplitude.
	Amplitude float64

	// SamplesPerSymbol is the number of samples one bit interval spans.
	// A 4-QAM symbol carries two bits and spans twice this many samples.
	SamplesPerSymbol int

	// FreqDeviation is the BFSK tone offset in Hz: binary 1 transmits at
	// CarrierFreq+FreqDeviation, binary 0 at CarrierFreq-FreqDeviation.
	// Ignored by the other schemes.
	FreqDeviation float64

	// Strategy selects scalar or vectorized execution.
	Strategy ExecutionStrategy
}

// DefaultCarrierConfig returns the digital modulation defaults: a 5 Hz unit
// carrier sampled at 1 kHz, one-second symbols, 2 Hz BFSK deviation.
func DefaultCarrierConfig() CarrierConfig {
	return CarrierConfig{
		SampleRate:       1000,
		CarrierFreq:      5,
		Amplitude:        1,
		SamplesPerSymbol: 1000,
		FreqDeviation:    2,
	}
}

// Validate checks the configuration for use with any digital modulation
// scheme. The BFSK tone constraint is only enforced when a deviation is
// set, since the other schemes ignore the field.
func (c CarrierConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfiguration, c.SampleRate)
	}
	if c.CarrierFreq <= 0 {
		return fmt.Errorf("%w: carrier frequency must be positive, got %v", ErrInvalidConfiguration, c.CarrierFreq)
	}
	if nyquist := c.SampleRate / 2; c.CarrierFreq >= nyquist {
		return fmt.Errorf("%w: carrier frequency %v Hz at or above Nyquist %v Hz", ErrInvalidConfiguration, c.CarrierFreq, nyquist)
	}
	if c.Amplitude <= 0 {
		return fmt.Errorf("%w: amplitude must be positive, got %v", ErrInvalidConfiguration, c.Amplitude)
	}
	if c.SamplesPerSymbol < 1 {
		return fmt.Errorf("%w: samples per symbol must be at least 1, got %d", ErrInvalidConfiguration, c.SamplesPerSymbol)
	}
	if c.FreqDeviation < 0 {
		return fmt.Errorf("%w: frequency deviation must not be negative, got %v", ErrInvalidConfiguration, c.FreqDeviation)
	}
	if c.FreqDeviation > 0 {
		if c.CarrierFreq-c.FreqDeviation <= 0 {
			return fmt.Errorf("%w: low tone %v Hz not positive", ErrInvalidConfiguration, c.CarrierFreq-c.FreqDeviation)
		}
		if nyquist := c.SampleRate / 2; c.CarrierFreq+c.FreqDeviation >= nyquist {
			return fmt.Errorf("%w: high tone %v Hz at or above Nyquist %v Hz", ErrInvalidConfiguration, c.CarrierFreq+c.FreqDeviation, nyquist)
		}
	}
	return nil
}

// ValidateCarrierPair confirms a transmit and a receive configuration are
// field-for-field identical. Links built from mismatched carrier parameters
// do not fail, they decode garbage, so the check runs before any samples
// are touched.
func ValidateCarrierPair(tx, rx CarrierConfig) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := rx.Validate(); err != nil {
		return err
	}
	if tx != rx {
		return fmt.Errorf("%w: transmit and receive carrier parameters differ (tx %+v, rx %+v)", ErrInvalidConfiguration, tx, rx)
	}
	return nil
}

// Range is a closed amplitude interval. Min == Max describes a flat line.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// PCMConfig carries the pulse-code modulation parameters.
type PCMConfig struct {
	// BitDepth is the number of bits per code word; quantization uses
	// 2^BitDepth uniform levels across Range.
	BitDepth int

	// Range is the amplitude interval quantization covers. Samples are
	// clamped to it. Encoder and decoder must share it; derive it from the
	// input with signal.RangeOf when no fixed range is mandated.
	Range Range

	// SampleRate is the rate reconstructed waveforms are stamped with.
	SampleRate float64

	// Strategy selects scalar or vectorized execution.
	Strategy ExecutionStrategy
}

// DefaultPCMConfig returns 3-bit quantization over [-1, 1] at 1 kHz.
func DefaultPCMConfig() PCMConfig {
	return PCMConfig{
		BitDepth:   3,
		Range:      Range{Min: -1, Max: 1},
		SampleRate: 1000,
	}
}

// Validate checks the PCM parameters.
func (c PCMConfig) Validate() error {
	if c.BitDepth < 1 || c.BitDepth > 32 {
		return fmt.Errorf("%w: bit depth must be in [1, 32], got %d", ErrInvalidConfiguration, c.BitDepth)
	}
	if c.Range.Min > c.Range.Max {
		return fmt.Errorf("%w: amplitude range min %v above max %v", ErrInvalidConfiguration, c.Range.Min, c.Range.Max)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfiguration, c.SampleRate)
	}
	return nil
}

// DeltaConfig carries the delta modulation parameters.
type DeltaConfig struct {
	// StepSize is the fixed amount the running approximation moves per bit.
	StepSize float64

	// Initial is the approximation value before the first sample. Encoder
	// and decoder must agree on it.
	Initial float64

	// SampleRate is the rate reconstructed waveforms are stamped with.
	SampleRate float64

	// Strategy selects scalar or vectorized execution.
	Strategy ExecutionStrategy
}

// DefaultDeltaConfig returns a 0.1 step from a zero start at 1 kHz.
func DefaultDeltaConfig() DeltaConfig {
	return DeltaConfig{
		StepSize:   0.1,
		SampleRate: 1000,
	}
}

// Validate checks the delta modulation parameters.
func (c DeltaConfig) Validate() error {
	if c.StepSize <= 0 {
		return fmt.Errorf("%w: step size must be positive, got %v", ErrInvalidConfiguration, c.StepSize)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfiguration, c.SampleRate)
	}
	return nil
}

// AnalogCarrierConfig carries the parameters of the analog modulation
// schemes. The same pairing rule as CarrierConfig applies: modulator and
// demodulator share one configuration or the recovered message is garbage.
type AnalogCarrierConfig struct {
	// SampleRate is the sampling frequency in Hz. Message and carrier share it.
	SampleRate float64

	// CarrierFreq is the carrier frequency in Hz, below SampleRate/2.
	CarrierFreq float64

	// Amplitude is the unmodulated carrier amplitude.
	Amplitude float64

	// AMSensitivity k scales the message before it modulates the envelope:
	// s = A(1 + k*m)cos. Keep k*max|m| below 1 to avoid overmodulation.
	AMSensitivity float64

	// FMSensitivity kf is the frequency swing in Hz per unit message
	// amplitude. Keep CarrierFreq + kf*max|m| below SampleRate/2.
	FMSensitivity float64

	// PMSensitivity kp is the phase swing in radians per unit message
	// amplitude. Keep kp*max|m| below pi so the phase stays unambiguous.
	PMSensitivity float64

	// Strategy selects scalar or vectorized execution.
	Strategy ExecutionStrategy
}

// DefaultAnalogCarrierConfig returns the analog modulation defaults: a 5 Hz
// unit carrier sampled at 1 kHz, unit AM sensitivity, 5 Hz/unit frequency
// sensitivity and pi/2 rad/unit phase sensitivity.
func DefaultAnalogCarrierConfig() AnalogCarrierConfig {
	return AnalogCarrierConfig{
		SampleRate:    1000,
		CarrierFreq:   5,
		Amplitude:     1,
		AMSensitivity: 1,
		FMSensitivity: 5,
		PMSensitivity: math.Pi / 2,
	}
}

// Validate checks the shared analog carrier parameters. Sensitivities are
// validated by the scheme that uses them, since each scheme reads only its
// own.
func (c AnalogCarrierConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfiguration, c.SampleRate)
	}
	if c.CarrierFreq <= 0 {
		return fmt.Errorf("%w: carrier frequency must be positive, got %v", ErrInvalidConfiguration, c.CarrierFreq)
	}
	if nyquist := c.SampleRate / 2; c.CarrierFreq >= nyquist {
		return fmt.Errorf("%w: carrier frequency %v Hz at or above Nyquist %v Hz", ErrInvalidConfiguration, c.CarrierFreq, nyquist)
	}
	if c.Amplitude <= 0 {
		return fmt.Errorf("%w: amplitude must be positive, got %v", ErrInvalidConfiguration, c.Amplitude)
	}
	return nil
}

// ValidateAnalogCarrierPair confirms transmit and receive analog carrier
// configurations are identical, mirroring ValidateCarrierPair.
func ValidateAnalogCarrierPair(tx, rx AnalogCarrierConfig) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := rx.Validate(); err != nil {
		return err
	}
	if tx != rx {
		return fmt.Errorf("%w: transmit and receive analog carrier parameters differ (tx %+v, rx %+v)", ErrInvalidConfiguration, tx, rx)
	}
	return nil
}
