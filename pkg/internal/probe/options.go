// Package probe provides options for configuring Probe components.
//
// This file defines the options used to customize a probe at construction:
// attaching loggers, registering callbacks for pipeline events and
// overriding component metadata.
package probe

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// WithLogger creates an option to add a logger to a probe.
//
// Parameters:
//   - logger: One or more logger instances to be added to the probe for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	connects the specified logger(s) to the probe.
func WithLogger(logger ...types.Logger) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.ConnectLogger(logger...)
	}
}

// WithOnEncodeFunc creates an option to register a callback for the encode stage.
//
// Parameters:
//   - callback: One or more callback functions receiving the original input
//     and the transmitted signal the encoder produced from it.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	registers the specified callback(s) for the encode event.
func WithOnEncodeFunc(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, input types.Signal, transmitted types.Signal)) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.RegisterOnEncode(callback...)
	}
}

// WithOnDecodeFunc creates an option to register a callback for the decode stage.
//
// Parameters:
//   - callback: One or more callback functions receiving the signal that
//     crossed the channel and the signal recovered from it.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	registers the specified callback(s) for the decode event.
func WithOnDecodeFunc(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, received types.Signal, recovered types.Signal)) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.RegisterOnDecode(callback...)
	}
}

// WithOnStateChangeFunc creates an option to register a callback for state transitions.
//
// Parameters:
//   - callback: One or more callback functions receiving the state the run
//     left and the state it entered.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	registers the specified callback(s) for every state transition.
func WithOnStateChangeFunc(callback ...func(c types.ComponentMetadata, from types.TransmissionState, to types.TransmissionState)) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.RegisterOnStateChange(callback...)
	}
}

// WithOnVerifyFunc creates an option to register a callback for the end of a run.
//
// Parameters:
//   - callback: One or more callback functions receiving the final
//     transmission result, whether verification passed or failed.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	registers the specified callback(s) for the verify event.
func WithOnVerifyFunc(callback ...func(c types.ComponentMetadata, result types.TransmissionResult)) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.RegisterOnVerify(callback...)
	}
}

// WithOnErrorFunc creates an option to register a callback for stage errors.
//
// Parameters:
//   - callback: One or more callback functions receiving the error a stage
//     returned.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	registers the specified callback(s) for the error event.
func WithOnErrorFunc(callback ...func(c types.ComponentMetadata, err error)) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.RegisterOnError(callback...)
	}
}

// WithComponentMetadata creates an option to override default component metadata.
//
// Parameters:
//   - name: The name to assign to the probe.
//   - id: The id to assign to the probe.
//
// Returns:
//
//	A function conforming to types.Option[types.Probe] that, when called with a probe,
//	overrides its name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Probe] {
	return func(p types.Probe) {
		p.SetComponentMetadata(name, id)
	}
}
