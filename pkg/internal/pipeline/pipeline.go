// Package pipeline runs complete transmissions over a simulated link. One
// Run takes a scheme descriptor and an input signal, builds the matching
// codec pair, and walks the signal through encode, channel, decode and
// verify, reporting a TransmissionResult at the end.
//
// A run advances Idle -> Encoded -> Decoded -> Verified, ending in Failed
// when a stage errors, the context is canceled, or the recovery misses the
// verification bar. Every transition is logged and mirrored to attached
// probes. Descriptor problems are caught before any transformation: a
// scheme outside the known set fails with ErrUnknownScheme, and an input
// whose kind does not match the mode fails with ErrInvalidConfiguration.
//
// The pipeline holds one configuration per mode plus the channel, and
// freezes a snapshot of all of it at the top of each Run. The codec pair
// is built from that snapshot, so concurrent runs and mid-run
// reconfiguration never share mutable state.
package pipeline

import (
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Pipeline is the transmission component. It carries per-mode codec
// parameters, the channel crossed between the two ends, attached probes
// and loggers, and identifying metadata.
type Pipeline struct {
	componentMetadata types.ComponentMetadata   // Metadata for the pipeline, including ID and type.
	lineConfig        types.LineConfig          // Parameters for digital-to-digital runs.
	carrierConfig     types.CarrierConfig       // Parameters for digital-to-analog runs.
	pcmConfig         types.PCMConfig           // Parameters for analog-to-digital runs under PCM.
	deltaConfig       types.DeltaConfig         // Parameters for analog-to-digital runs under delta modulation.
	analogConfig      types.AnalogCarrierConfig // Parameters for analog-to-analog runs.
	analogTolerance   float64                   // Verification tolerance override; zero derives per scheme.
	channel           types.Channel             // Transformation applied between encode and decode.
	probes            []types.Probe             // Probes mirroring run events.
	loggers           []types.Logger            // Loggers for recording events and errors.
	configLock        sync.Mutex                // Protects the configs, tolerance and channel.
	probesLock        sync.Mutex                // Protects access to the probes slice.
	loggersLock       sync.Mutex                // Protects access to the loggers slice.
	metadataLock      sync.Mutex                // Protects access to the component metadata.
}

// settings is one run's frozen view of the pipeline configuration.
type settings struct {
	line      types.LineConfig
	carrier   types.CarrierConfig
	pcm       types.PCMConfig
	delta     types.DeltaConfig
	analog    types.AnalogCarrierConfig
	channel   types.Channel
	tolerance float64
}

// New creates a transmission pipeline with default parameters for every
// mode and the identity channel, applying any options over those defaults.
// Construction cannot fail; a Run validates the descriptor and whatever
// configuration that particular transmission uses.
func New(options ...types.Option[types.Pipeline]) types.Pipeline {
	p := &Pipeline{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PIPELINE",
		},
		lineConfig:    types.DefaultLineConfig(),
		carrierConfig: types.DefaultCarrierConfig(),
		pcmConfig:     types.DefaultPCMConfig(),
		deltaConfig:   types.DefaultDeltaConfig(),
		analogConfig:  types.DefaultAnalogCarrierConfig(),
		channel:       types.IdentityChannel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// snapshotSettings copies the whole configuration under one lock hold so a
// run sees a single consistent view.
func (p *Pipeline) snapshotSettings() settings {
	p.configLock.Lock()
	s := settings{
		line:      p.lineConfig,
		carrier:   p.carrierConfig,
		pcm:       p.pcmConfig,
		delta:     p.deltaConfig,
		analog:    p.analogConfig,
		channel:   p.channel,
		tolerance: p.analogTolerance,
	}
	p.configLock.Unlock()
	return s
}
