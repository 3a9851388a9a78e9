// Package sourcecodec implements the analog-to-digital conversions:
// waveforms in, bit sequences out, and back. Two schemes are provided, PCM
// and delta modulation, behind one Codec component dispatching on a closed
// scheme set.
//
// PCM clamps each sample into the configured amplitude range, quantizes it
// to the nearest of 2^BitDepth uniform levels and emits the level index as
// a BitDepth-bit code word, most significant bit first. Reconstruction maps
// each code word back to its level center, so the absolute error of any
// in-range sample is bounded by Span/2^BitDepth. A degenerate range
// (Min == Max) encodes every sample as code zero and reconstructs the flat
// line exactly.
//
// Delta modulation tracks the message with a fixed-step staircase: each bit
// reports whether the sample sits above the running approximation, and both
// ends move their staircases identically from the shared initial value.
// Steps too small for the message slope overload and lag the input; steps
// too large ring around it. The fold is inherently sequential, so the
// execution strategy only affects the PCM paths.
//
// One codec carries both parameter sets; the scheme selects which one a
// call reads and validates.

package sourcecodec

import (
	"fmt"
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Codec is the source coding component. It carries the scheme, the PCM and
// delta parameter sets, identifying metadata and any attached loggers.
type Codec struct {
	componentMetadata types.ComponentMetadata // Metadata for the codec, including ID and type.
	scheme            types.Scheme            // The source coding scheme this codec implements.
	pcmConfig         types.PCMConfig         // PCM parameters; read when the scheme is PCM.
	deltaConfig       types.DeltaConfig       // Delta parameters; read when the scheme is DeltaMod.
	loggers           []types.Logger          // Loggers for recording events and errors.
	loggersLock       sync.Mutex              // Protects access to the loggers slice.
	configLock        sync.Mutex              // Protects access to both parameter sets.
	metadataLock      sync.Mutex              // Protects access to the component metadata.
}

// New creates a source codec for the given scheme, applying any options
// over the defaults. Schemes outside the analog-to-digital set are rejected
// with ErrUnknownScheme; an active configuration that fails validation is
// rejected with ErrInvalidConfiguration.
func New(scheme types.Scheme, options ...types.Option[types.SourceCodec]) (types.SourceCodec, error) {
	if scheme.Mode() != types.AnalogToDigital {
		return nil, fmt.Errorf("%w: %s is not a source coding scheme", types.ErrUnknownScheme, scheme)
	}
	c := &Codec{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SOURCE_CODEC",
			Name: scheme.String(),
		},
		scheme:      scheme,
		pcmConfig:   types.DefaultPCMConfig(),
		deltaConfig: types.DefaultDeltaConfig(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if err := c.validateActive(); err != nil {
		return nil, err
	}
	return c, nil
}

// validateActive checks the parameter set the codec's scheme reads. The
// inactive set is never touched, so it may hold anything.
func (c *Codec) validateActive() error {
	if c.scheme == types.DeltaMod {
		return c.GetDeltaConfig().Validate()
	}
	return c.GetPCMConfig().Validate()
}
