// Package sourcecodec provides options for configuring source codec components.
//
// This file defines the options used to customize a source codec at
// construction: attaching loggers, replacing either parameter set and
// overriding component metadata.
package sourcecodec

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// WithLogger creates an option to add a logger to a source codec.
//
// Parameters:
//   - logger: One or more logger instances to be added to the codec for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.SourceCodec] that, when called with a codec,
//	connects the specified logger(s) to the codec.
func WithLogger(logger ...types.Logger) types.Option[types.SourceCodec] {
	return func(c types.SourceCodec) {
		c.ConnectLogger(logger...)
	}
}

// WithPCMConfig creates an option to replace the codec's PCM parameters.
//
// Parameters:
//   - config: The PCM parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.SourceCodec] that, when called with a codec,
//	replaces its PCM parameters. Validation happens when the constructor
//	finishes applying options, and only when the codec's scheme reads them.
func WithPCMConfig(config types.PCMConfig) types.Option[types.SourceCodec] {
	return func(c types.SourceCodec) {
		c.SetPCMConfig(config)
	}
}

// WithDeltaConfig creates an option to replace the codec's delta modulation parameters.
//
// Parameters:
//   - config: The delta modulation parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.SourceCodec] that, when called with a codec,
//	replaces its delta modulation parameters.
func WithDeltaConfig(config types.DeltaConfig) types.Option[types.SourceCodec] {
	return func(c types.SourceCodec) {
		c.SetDeltaConfig(config)
	}
}

// WithComponentMetadata creates an option to override default component metadata.
//
// Parameters:
//   - name: The name to assign to the codec.
//   - id: The id to assign to the codec.
//
// Returns:
//
//	A function conforming to types.Option[types.SourceCodec] that, when called with a codec,
//	overrides its name and id.
func WithComponentMetadata(name string, id string) types.Option[types.SourceCodec] {
	return func(c types.SourceCodec) {
		c.SetComponentMetadata(name, id)
	}
}
