package types

import (
	"fmt"
	"strings"
)

// Mode is the conversion category a transmission uses, named by the signal
// kind entering the transmitter and the kind that crosses the channel.
type Mode int

const (
	// DigitalToDigital converts bits to a line-coded waveform and back.
	DigitalToDigital Mode = iota
	// DigitalToAnalog converts bits to a modulated carrier and back.
	DigitalToAnalog
	// AnalogToDigital converts a waveform to bits and back.
	AnalogToDigital
	// AnalogToAnalog converts a message waveform to a modulated carrier and back.
	AnalogToAnalog
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case DigitalToDigital:
		return "Digital-to-Digital"
	case DigitalToAnalog:
		return "Digital-to-Analog"
	case AnalogToDigital:
		return "Analog-to-Digital"
	case AnalogToAnalog:
		return "Analog-to-Analog"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// InputKind returns the signal kind the mode's encoder consumes.
func (m Mode) InputKind() SignalKind {
	switch m {
	case DigitalToDigital, DigitalToAnalog:
		return SignalBits
	default:
		return SignalWave
	}
}

// ChannelKind returns the signal kind the mode places on the channel.
func (m Mode) ChannelKind() SignalKind {
	switch m {
	case AnalogToDigital:
		return SignalBits
	default:
		return SignalWave
	}
}

// ParseMode resolves a display name such as "Digital-to-Analog" to its Mode.
// Matching ignores case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "digital-to-digital":
		return DigitalToDigital, nil
	case "digital-to-analog":
		return DigitalToAnalog, nil
	case "analog-to-digital":
		return AnalogToDigital, nil
	case "analog-to-analog":
		return AnalogToAnalog, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", ErrUnknownScheme, name)
	}
}

// Scheme identifies one concrete encoding or modulation technique. The set
// is closed: every scheme the library implements has a constant here, and
// dispatch over schemes is exhaustive.
type Scheme int

const (
	// NRZL is non-return-to-zero level line coding.
	NRZL Scheme = iota
	// NRZI is non-return-to-zero inverted line coding.
	NRZI
	// Manchester is biphase Manchester line coding.
	Manchester
	// DiffManchester is differential Manchester line coding.
	DiffManchester
	// BipolarAMI is bipolar alternate-mark-inversion line coding.
	BipolarAMI
	// Pseudoternary is bipolar line coding with marks on binary 0.
	Pseudoternary
	// ASK is binary amplitude-shift keying.
	ASK
	// BPSK is binary phase-shift keying.
	BPSK
	// BFSK is binary frequency-shift keying.
	BFSK
	// QAM4 is four-point quadrature amplitude modulation.
	QAM4
	// PCM is pulse-code modulation source coding.
	PCM
	// DeltaMod is delta-modulation source coding.
	DeltaMod
	// AM is amplitude modulation of an analog message.
	AM
	// FM is frequency modulation of an analog message.
	FM
	// PM is phase modulation of an analog message.
	PM
)

// String returns the display name of the scheme.
func (s Scheme) String() string {
	switch s {
	case NRZL:
		return "NRZ-L"
	case NRZI:
		return "NRZI"
	case Manchester:
		return "Manchester"
	case DiffManchester:
		return "Diff. Manchester"
	case BipolarAMI:
		return "Bipolar AMI"
	case Pseudoternary:
		return "Pseudoternary"
	case ASK:
		return "ASK"
	case BPSK:
		return "BPSK"
	case BFSK:
		return "BFSK"
	case QAM4:
		return "4-QAM"
	case PCM:
		return "PCM"
	case DeltaMod:
		return "Delta Modulation"
	case AM:
		return "AM"
	case FM:
		return "FM"
	case PM:
		return "PM"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Mode returns the conversion category the scheme belongs to.
func (s Scheme) Mode() Mode {
	switch s {
	case NRZL, NRZI, Manchester, DiffManchester, BipolarAMI, Pseudoternary:
		return DigitalToDigital
	case ASK, BPSK, BFSK, QAM4:
		return DigitalToAnalog
	case PCM, DeltaMod:
		return AnalogToDigital
	default:
		return AnalogToAnalog
	}
}

// ParseScheme resolves a display name to its Scheme. The longer labels some
// front ends use, such as "PCM (Pulse Code Mod)" or "DM (Delta Mod)", are
// accepted alongside the short names. Matching ignores case.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nrz-l", "nrzl":
		return NRZL, nil
	case "nrzi", "nrz-i":
		return NRZI, nil
	case "manchester":
		return Manchester, nil
	case "diff. manchester", "differential manchester", "diff manchester":
		return DiffManchester, nil
	case "bipolar ami", "ami":
		return BipolarAMI, nil
	case "pseudoternary":
		return Pseudoternary, nil
	case "ask":
		return ASK, nil
	case "bpsk":
		return BPSK, nil
	case "bfsk", "fsk":
		return BFSK, nil
	case "4-qam", "qam", "4qam":
		return QAM4, nil
	case "pcm", "pcm (pulse code mod)":
		return PCM, nil
	case "dm", "delta modulation", "dm (delta mod)":
		return DeltaMod, nil
	case "am":
		return AM, nil
	case "fm":
		return FM, nil
	case "pm":
		return PM, nil
	default:
		return 0, fmt.Errorf("%w: scheme %q", ErrUnknownScheme, name)
	}
}

// AllSchemes returns every scheme constant in declaration order. The slice
// is freshly allocated on each call.
func AllSchemes() []Scheme {
	return []Scheme{
		NRZL, NRZI, Manchester, DiffManchester, BipolarAMI, Pseudoternary,
		ASK, BPSK, BFSK, QAM4,
		PCM, DeltaMod,
		AM, FM, PM,
	}
}

// SchemeDescriptor pairs a mode with one of its schemes. It is the unit of
// dispatch for a transmission: nothing runs until the pair validates.
type SchemeDescriptor struct {
	Mode   Mode
	Scheme Scheme
}

// NewSchemeDescriptor validates the pairing and returns the descriptor.
// A scheme presented under a mode it does not belong to is rejected with
// ErrUnknownScheme.
func NewSchemeDescriptor(mode Mode, scheme Scheme) (SchemeDescriptor, error) {
	if scheme.Mode() != mode {
		return SchemeDescriptor{}, fmt.Errorf("%w: scheme %s does not belong to mode %s", ErrUnknownScheme, scheme, mode)
	}
	return SchemeDescriptor{Mode: mode, Scheme: scheme}, nil
}

// DescriptorFor returns the descriptor for a scheme under its own mode.
func DescriptorFor(scheme Scheme) SchemeDescriptor {
	return SchemeDescriptor{Mode: scheme.Mode(), Scheme: scheme}
}

// String renders the descriptor as "Mode/Scheme".
func (d SchemeDescriptor) String() string {
	return d.Mode.String() + "/" + d.Scheme.String()
}
