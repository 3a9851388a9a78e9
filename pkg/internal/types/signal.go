package types

import (
	"fmt"
	"strings"
	"time"
)

// Bit is a single binary digit. Only the values 0 and 1 are meaningful;
// constructors and parsers reject anything else.
type Bit uint8

const (
	// Zero is the binary digit 0.
	Zero Bit = 0
	// One is the binary digit 1.
	One Bit = 1
)

// BitSequence is an ordered sequence of bits, the digital payload of a link.
// The zero value is an empty, usable sequence.
type BitSequence []Bit

// ParseBitSequence converts a textual bit string such as "0100101" into a
// BitSequence. Any rune other than '0' or '1' yields ErrMalformedInput.
func ParseBitSequence(s string) (BitSequence, error) {
	bits := make(BitSequence, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		default:
			return nil, fmt.Errorf("%w: bit string contains %q at index %d", ErrMalformedInput, r, i)
		}
	}
	return bits, nil
}

// MustParseBitSequence is ParseBitSequence for compile-time constant inputs,
// panicking on malformed text. Intended for tests and examples.
func MustParseBitSequence(s string) BitSequence {
	bits, err := ParseBitSequence(s)
	if err != nil {
		panic(err)
	}
	return bits
}

// String renders the sequence as a bit string, e.g. "0100101".
func (b BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Equal reports whether two bit sequences have identical length and content.
func (b BitSequence) Equal(other BitSequence) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Waveform is a uniformly sampled real-valued signal. Samples holds the
// amplitude values in order; SampleRate is the sampling frequency in Hz and
// must be positive for any non-empty waveform.
type Waveform struct {
	Samples    []float64
	SampleRate float64
}

// NewWaveform wraps samples and a sample rate into a Waveform. The rate is
// not checked here; the configurations that produce waveforms validate
// their rates before any samples exist.
func NewWaveform(samples []float64, sampleRate float64) Waveform {
	return Waveform{Samples: samples, SampleRate: sampleRate}
}

// Len returns the number of samples.
func (w Waveform) Len() int { return len(w.Samples) }

// Duration returns the time span the waveform covers. A waveform with no
// samples or no sample rate has zero duration.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 || len(w.Samples) == 0 {
		return 0
	}
	return time.Duration(float64(len(w.Samples)) / w.SampleRate * float64(time.Second))
}

// SignalKind discriminates the payload held by a Signal.
type SignalKind int

const (
	// SignalBits marks a Signal carrying a BitSequence.
	SignalBits SignalKind = iota
	// SignalWave marks a Signal carrying a Waveform.
	SignalWave
)

// String returns the kind name used in logs and errors.
func (k SignalKind) String() string {
	switch k {
	case SignalBits:
		return "bits"
	case SignalWave:
		return "waveform"
	default:
		return fmt.Sprintf("SignalKind(%d)", int(k))
	}
}

// Signal is the tagged carrier of link payloads: either a BitSequence or a
// Waveform, never both. The Kind discriminator says which field is valid.
// Components accept and return Signals so a pipeline can move any payload
// through the same stages without reflection or interface casts.
type Signal struct {
	Kind SignalKind
	Bits BitSequence
	Wave Waveform
}

// BitSignal wraps a bit sequence as a Signal.
func BitSignal(bits BitSequence) Signal {
	return Signal{Kind: SignalBits, Bits: bits}
}

// WaveSignal wraps a waveform as a Signal.
func WaveSignal(w Waveform) Signal {
	return Signal{Kind: SignalWave, Wave: w}
}

// Len returns the payload length in the payload's own unit: bits for a bit
// signal, samples for a waveform signal.
func (s Signal) Len() int {
	if s.Kind == SignalBits {
		return len(s.Bits)
	}
	return len(s.Wave.Samples)
}
