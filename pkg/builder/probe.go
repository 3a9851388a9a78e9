package builder

import (
	"github.com/cigdemahmet27/commlink/pkg/internal/probe"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// NewProbe creates a probe with the provided configuration options.
func NewProbe(options ...types.Option[types.Probe]) types.Probe {
	return probe.New(options...)
}

// ProbeWithLogger adds one or more loggers to the probe.
func ProbeWithLogger(logger ...types.Logger) types.Option[types.Probe] {
	return probe.WithLogger(logger...)
}

// ProbeWithOnEncodeFunc registers callbacks fired after a successful
// encode stage.
func ProbeWithOnEncodeFunc(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, input types.Signal, transmitted types.Signal)) types.Option[types.Probe] {
	return probe.WithOnEncodeFunc(callback...)
}

// ProbeWithOnDecodeFunc registers callbacks fired after a successful
// decode stage.
func ProbeWithOnDecodeFunc(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, received types.Signal, recovered types.Signal)) types.Option[types.Probe] {
	return probe.WithOnDecodeFunc(callback...)
}

// ProbeWithOnStateChangeFunc registers callbacks fired on every run state
// transition.
func ProbeWithOnStateChangeFunc(callback ...func(c types.ComponentMetadata, from types.TransmissionState, to types.TransmissionState)) types.Option[types.Probe] {
	return probe.WithOnStateChangeFunc(callback...)
}

// ProbeWithOnVerifyFunc registers callbacks fired with the final result of
// each run.
func ProbeWithOnVerifyFunc(callback ...func(c types.ComponentMetadata, result types.TransmissionResult)) types.Option[types.Probe] {
	return probe.WithOnVerifyFunc(callback...)
}

// ProbeWithOnErrorFunc registers callbacks fired when a run stage fails.
func ProbeWithOnErrorFunc(callback ...func(c types.ComponentMetadata, err error)) types.Option[types.Probe] {
	return probe.WithOnErrorFunc(callback...)
}

// ProbeWithComponentMetadata adds component metadata overrides.
func ProbeWithComponentMetadata(name string, id string) types.Option[types.Probe] {
	return probe.WithComponentMetadata(name, id)
}
