package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/linecode"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewLineCodec creates a line codec for the given digital-to-digital
// scheme with the provided configuration options.
func NewLineCodec(scheme types.Scheme, options ...types.Option[types.LineCodec]) (types.LineCodec, error) {
	return linecode.New(scheme, options...)
}

// LineCodecWithLogger adds one or more loggers to the codec.
func LineCodecWithLogger(logger ...types.Logger) types.Option[types.LineCodec] {
	return linecode.WithLogger(logger...)
}

// LineCodecWithLineConfig replaces the codec's line parameters.
func LineCodecWithLineConfig(config types.LineConfig) types.Option[types.LineCodec] {
	return linecode.WithLineConfig(config)
}

// LineCodecWithComponentMetadata adds component metadata overrides.
func LineCodecWithComponentMetadata(name string, id string) types.Option[types.LineCodec] {
	return linecode.WithComponentMetadata(name, id)
}
