// Package linecode provides options for configuring line codec components.
//
// This file defines the options used to customize a line codec at
// construction: attaching loggers, replacing the shared line parameters and
// overriding component metadata.
package linecode

import "github.com/cigdemahmet27/commlink/pkg/internal/types"

// WithLogger creates an option to add a logger to a line codec.
//
// Parameters:
//   - logger: One or more logger instances to be added to the codec for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.LineCodec] that, when called with a codec,
//	connects the specified logger(s) to the codec.
func WithLogger(logger ...types.Logger) types.Option[types.LineCodec] {
	return func(c types.LineCodec) {
		c.ConnectLogger(logger...)
	}
}

// WithLineConfig creates an option to replace the codec's line parameters.
//
// Parameters:
//   - config: The line parameters to apply.
//
// Returns:
//
//	A function conforming to types.Option[types.LineCodec] that, when called with a codec,
//	replaces its line parameters. Validation happens when the constructor
//	finishes applying options.
func WithLineConfig(config types.LineConfig) types.Option[types.LineCodec] {
	return func(c types.LineCodec) {
		c.SetLineConfig(config)
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
//	A function conforming to types.Option[types.LineCodec] that, when called with a codec,
//	overrides its name and id.
func WithComponentMetadata(name string, id string) types.Option[types.LineCodec] {
	return func(c types.LineCodec) {
		c.SetComponentMetadata(name, id)
	}
}
