// Package probe implements the observation component pipelines report
// into. A Probe holds registered callbacks for the stages of a
// transmission and invokes them synchronously, in registration order, on
// the goroutine running the pipeline. The probe keeps no state of its own
// between runs; everything a callback learns arrives through its
// arguments.
//
// Probes are the attachment surface for anything that wants to watch a
// link without being part of it: tests register counting callbacks,
// timing harnesses register clocks, plotting front ends register
// collectors.
package probe

import (
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// Probe provides callback hooks for pipeline telemetry.
type Probe struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnEncode      []func(types.ComponentMetadata, types.SchemeDescriptor, types.Signal, types.Signal)
	OnDecode      []func(types.ComponentMetadata, types.SchemeDescriptor, types.Signal, types.Signal)
	OnStateChange []func(types.ComponentMetadata, types.TransmissionState, types.TransmissionState)
	OnVerify      []func(types.ComponentMetadata, types.TransmissionResult)
	OnError       []func(types.ComponentMetadata, error)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
}

// New constructs a Probe with optional configuration.
func New(options ...types.Option[types.Probe]) types.Probe {
	p := &Probe{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PROBE",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	return p
}
