// Package pipeline provides options for configuring transmission pipelines.
//
// This file defines the options used to customize a pipeline at
// construction: attaching loggers and probes, replacing the per-mode codec
// parameters, installing a channel and overriding component metadata.
package pipeline

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// WithLogger creates an option to add a logger to a pipeline.
//
// Parameters:
//   - logger: One or more logger instances to be added to the pipeline for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	connects the specified logger(s) to the pipeline.
func WithLogger(logger ...types.Logger) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectLogger(logger...)
	}
}

// WithProbe creates an option to attach a probe to a pipeline.
//
// Parameters:
//   - probe: One or more probe instances whose callbacks fire on run events.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	connects the specified probe(s) to the pipeline.
func WithProbe(probe ...types.Probe) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectProbe(probe...)
	}
}

// WithLineConfig creates an option to replace the parameters used for
// digital-to-digital runs.
//
// Parameters:
//   - config: The line coding parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces its line coding parameters. Validation happens on the Run that
//	uses them.
func WithLineConfig(config types.LineConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetLineConfig(config)
	}
}

// WithCarrierConfig creates an option to replace the parameters used for
// digital-to-analog runs.
//
// Parameters:
//   - config: The carrier parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces its digital carrier parameters. Validation happens on the Run
//	that uses them.
func WithCarrierConfig(config types.CarrierConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetCarrierConfig(config)
	}
}

// WithPCMConfig creates an option to replace the parameters used for
// analog-to-digital runs under the PCM scheme.
//
// Parameters:
//   - config: The PCM parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces its PCM parameters. Validation happens on the Run that uses
//	them.
func WithPCMConfig(config types.PCMConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetPCMConfig(config)
	}
}

// WithDeltaConfig creates an option to replace the parameters used for
// analog-to-digital runs under the delta modulation scheme.
//
// Parameters:
//   - config: The delta modulation parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces its delta modulation parameters. Validation happens on the Run
//	that uses them.
func WithDeltaConfig(config types.DeltaConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetDeltaConfig(config)
	}
}

// WithAnalogCarrierConfig creates an option to replace the parameters used
// for analog-to-analog runs.
//
// Parameters:
//   - config: The analog carrier parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces its analog carrier parameters. Validation happens on the Run
//	that uses them.
func WithAnalogCarrierConfig(config types.AnalogCarrierConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetAnalogCarrierConfig(config)
	}
}

// WithChannel creates an option to install the channel crossed between
// encode and decode.
//
// Parameters:
//   - channel: The channel function applied to every transmitted signal.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	replaces the identity channel with the given one.
func WithChannel(channel types.Channel) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetChannel(channel)
	}
}

// WithAnalogTolerance creates an option to override the verification
// tolerance for analog payloads.
//
// Parameters:
//   - tolerance: The largest acceptable per-sample error. Zero keeps the
//     per-scheme default.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	sets the verification tolerance.
func WithAnalogTolerance(tolerance float64) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetAnalogTolerance(tolerance)
	}
}

// WithComponentMetadata creates an option to override default component metadata.
//
// Parameters:
//   - name: The name to assign to the pipeline.
//   - id: The id to assign to the pipeline.
//
// Returns:
//
//	A function conforming to types.Option[types.Pipeline] that, when called with a pipeline,
//	overrides its name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetComponentMetadata(name, id)
	}
}
