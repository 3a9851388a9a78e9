package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/sourcecodec"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewSourceCodec creates a source codec for the given analog-to-digital
// scheme with the provided configuration options.
func NewSourceCodec(scheme types.Scheme, options ...types.Option[types.SourceCodec]) (types.SourceCodec, error) {
	return sourcecodec.New(scheme, options...)
}

// SourceCodecWithLogger adds one or more loggers to the codec.
func SourceCodecWithLogger(logger ...types.Logger) types.Option[types.SourceCodec] {
	return sourcecodec.WithLogger(logger...)
}

// SourceCodecWithPCMConfig replaces the codec's PCM parameters.
func SourceCodecWithPCMConfig(config types.PCMConfig) types.Option[types.SourceCodec] {
	return sourcecodec.WithPCMConfig(config)
}

// SourceCodecWithDeltaConfig replaces the codec's delta modulation
// parameters.
func SourceCodecWithDeltaConfig(config types.DeltaConfig) types.Option[types.SourceCodec] {
	return sourcecodec.WithDeltaConfig(config)
}

// SourceCodecWithComponentMetadata adds component metadata overrides.
func SourceCodecWithComponentMetadata(name string, id string) types.Option[types.SourceCodec] {
	return sourcecodec.WithComponentMetadata(name, id)
}
