package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/pipeline"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewTransmissionPipeline creates a pipeline that encodes, channels,
// decodes and verifies signals under a scheme descriptor, with the
// provided configuration options.
func NewTransmissionPipeline(options ...types.Option[types.Pipeline]) types.Pipeline {
	return pipeline.New(options...)
}

// PipelineWithLogger adds one or more loggers to the pipeline.
func PipelineWithLogger(logger ...types.Logger) types.Option[types.Pipeline] {
	return pipeline.WithLogger(logger...)
}

// PipelineWithProbe attaches one or more probes to the pipeline.
func PipelineWithProbe(probe ...types.Probe) types.Option[types.Pipeline] {
	return pipeline.WithProbe(probe...)
}

// PipelineWithLineConfig sets the parameters for digital-to-digital runs.
func PipelineWithLineConfig(config types.LineConfig) types.Option[types.Pipeline] {
	return pipeline.WithLineConfig(config)
}

// PipelineWithCarrierConfig sets the parameters for digital-to-analog
// runs.
func PipelineWithCarrierConfig(config types.CarrierConfig) types.Option[types.Pipeline] {
	return pipeline.WithCarrierConfig(config)
}

// PipelineWithPCMConfig sets the parameters for PCM runs.
func PipelineWithPCMConfig(config types.PCMConfig) types.Option[types.Pipeline] {
	return pipeline.WithPCMConfig(config)
}

// PipelineWithDeltaConfig sets the parameters for delta modulation runs.
func PipelineWithDeltaConfig(config types.DeltaConfig) types.Option[types.Pipeline] {
	return pipeline.WithDeltaConfig(config)
}

// PipelineWithAnalogCarrierConfig sets the parameters for analog-to-analog
// runs.
func PipelineWithAnalogCarrierConfig(config types.AnalogCarrierConfig) types.Option[types.Pipeline] {
	return pipeline.WithAnalogCarrierConfig(config)
}

// PipelineWithChannel installs the channel crossed between encode and
// decode.
func PipelineWithChannel(channel types.Channel) types.Option[types.Pipeline] {
	return pipeline.WithChannel(channel)
}

// PipelineWithAnalogTolerance overrides the verification tolerance for
// analog payloads. Zero keeps the per-scheme default.
func PipelineWithAnalogTolerance(tolerance float64) types.Option[types.Pipeline] {
	return pipeline.WithAnalogTolerance(tolerance)
}

// PipelineWithComponentMetadata adds component metadata overrides.
func PipelineWithComponentMetadata(name string, id string) types.Option[types.Pipeline] {
	return pipeline.WithComponentMetadata(name, id)
}
