package types

import (
	"context"
	"fmt"
)

// TransmissionState tracks a pipeline run through its life cycle. States
// only ever advance; a failed run stops at StateFailed and is never retried,
// since every operation is deterministic and would fail identically.
type TransmissionState int

const (
	// StateIdle is the state before any transformation has run.
	StateIdle TransmissionState = iota
	// StateEncoded means the input has been encoded onto the channel form.
	StateEncoded
	// StateDecoded means the received signal has been decoded back.
	StateDecoded
	// StateVerified means decode output matched the input within tolerance.
	StateVerified
	// StateFailed means an operation errored or verification missed.
	StateFailed
)

// String returns the state name used in logs and results.
func (s TransmissionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateEncoded:
		return "Encoded"
	case StateDecoded:
		return "Decoded"
	case StateVerified:
		return "Verified"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("TransmissionState(%d)", int(s))
	}
}

// TransmissionResult is the record of one full pipeline run: what went in,
// what crossed the channel, what came back, and how faithfully.
type TransmissionResult struct {
	// Descriptor names the mode and scheme the run used.
	Descriptor SchemeDescriptor

	// Input is the original signal handed to Run.
	Input Signal

	// Transmitted is the encoded signal as it entered the channel.
	Transmitted Signal

	// Received is the decoded signal recovered on the far side.
	Received Signal

	// State is the terminal state of the run.
	State TransmissionState

	// Verified reports whether Received matched Input, exactly for digital
	// payloads and within the configured tolerance for analog ones.
	Verified bool

	// Distortion is the measured reconstruction error magnitude, reported
	// whether or not verification passed: the maximum absolute sample
	// difference for analog payloads, the bit error fraction for digital
	// ones. Zero means a perfect recovery.
	Distortion float64
}

// Pipeline runs complete transmissions: encode, channel, decode, verify.
// Configuration is attached before the first Run and never mutated by one;
// concurrent Runs of independently configured pipelines cannot interfere.
type Pipeline interface {
	// ConnectLogger attaches one or more loggers for run diagnostics.
	ConnectLogger(...Logger)

	// ConnectProbe attaches one or more probes whose callbacks fire on
	// stage transitions.
	ConnectProbe(...Probe)

	// SetChannel replaces the identity channel with a custom medium.
	SetChannel(Channel)

	// SetLineConfig replaces the line coding parameters used for
	// digital-to-digital runs.
	SetLineConfig(LineConfig)

	// SetCarrierConfig replaces the carrier parameters used for
	// digital-to-analog runs.
	SetCarrierConfig(CarrierConfig)

	// SetPCMConfig replaces the PCM parameters used for analog-to-digital
	// runs under the PCM scheme.
	SetPCMConfig(PCMConfig)

	// SetDeltaConfig replaces the delta modulation parameters used for
	// analog-to-digital runs under the delta modulation scheme.
	SetDeltaConfig(DeltaConfig)

	// SetAnalogCarrierConfig replaces the carrier parameters used for
	// analog-to-analog runs.
	SetAnalogCarrierConfig(AnalogCarrierConfig)

	// SetAnalogTolerance overrides the verification tolerance for analog
	// payloads. Zero restores the per-scheme default.
	SetAnalogTolerance(float64)

	// GetComponentMetadata retrieves the pipeline's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the pipeline's name and id.
	SetComponentMetadata(name string, id string)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// Run executes one transmission of input under the descriptor and
	// reports the result. The context is checked between stages.
	Run(ctx context.Context, descriptor SchemeDescriptor, input Signal) (TransmissionResult, error)
}
