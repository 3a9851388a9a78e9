package pipeline

import (
	"context"
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/internal/analogmod"
	"github.com/cigdemahmet27/commlink/pkg/internal/digitalmod"
	"github.com/cigdemahmet27/commlink/pkg/internal/linecode"
	"github.com/cigdemahmet27/commlink/pkg/internal/sourcecodec"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
	"github.com/cigdemahmet27/commlink/pkg/internal/utils"
)

// link is the codec pair one run transmits through. Both directions close
// over a single configured component, so a run is immune to configuration
// changes made while it is in flight.
type link struct {
	encode func(types.Signal) (types.Signal, error)
	decode func(types.Signal) (types.Signal, error)
}

// Run executes one transmission of input under the descriptor. The input
// is encoded, passed through the channel, decoded and verified, the state
// advancing through Encoded, Decoded and Verified as each stage lands. A
// verification miss ends in StateFailed with a nil error; stage failures
// and context cancellation end in StateFailed with the error.
func (p *Pipeline) Run(ctx context.Context, descriptor types.SchemeDescriptor, input types.Signal) (types.TransmissionResult, error) {
	result := types.TransmissionResult{
		Descriptor: descriptor,
		Input:      input,
		State:      types.StateIdle,
	}
	meta := p.GetComponentMetadata()

	p.NotifyLoggers(
		types.DebugLevel,
		"Run",
		"component", meta,
		"event", "Run",
		"descriptor", descriptor.String(),
		"input", input.Len(),
	)

	if err := checkDescriptor(descriptor, input); err != nil {
		return p.fail(result, "Run", err)
	}

	cfg := p.snapshotSettings()
	l, err := p.buildLink(descriptor, cfg)
	if err != nil {
		return p.fail(result, "Run", err)
	}

	if err := ctx.Err(); err != nil {
		return p.fail(result, "Encode", fmt.Errorf("run canceled before encoding: %w", err))
	}
	transmitted, err := l.encode(input)
	if err != nil {
		return p.fail(result, "Encode", err)
	}
	result.Transmitted = transmitted
	result = p.advance(result, types.StateEncoded)
	p.eachProbe(func(pr types.Probe) { pr.InvokeOnEncode(meta, descriptor, input, transmitted) })

	if err := ctx.Err(); err != nil {
		return p.fail(result, "Decode", fmt.Errorf("run canceled before decoding: %w", err))
	}
	received := cfg.channel(transmitted)
	recovered, err := l.decode(received)
	if err != nil {
		return p.fail(result, "Decode", err)
	}
	result.Received = recovered
	result = p.advance(result, types.StateDecoded)
	p.eachProbe(func(pr types.Probe) { pr.InvokeOnDecode(meta, descriptor, received, recovered) })

	if err := ctx.Err(); err != nil {
		return p.fail(result, "Verify", fmt.Errorf("run canceled before verification: %w", err))
	}
	result.Verified, result.Distortion = verify(descriptor, cfg, input, recovered)
	if result.Verified {
		result = p.advance(result, types.StateVerified)
	} else {
		result = p.advance(result, types.StateFailed)
	}
	p.eachProbe(func(pr types.Probe) { pr.InvokeOnVerify(meta, result) })

	level := types.InfoLevel
	outcome := "SUCCESS"
	if !result.Verified {
		level = types.WarnLevel
		outcome = "FAILURE"
	}
	p.NotifyLoggers(
		level,
		"Run",
		"component", meta,
		"event", "Verify",
		"result", outcome,
		"descriptor", descriptor.String(),
		"distortion", result.Distortion,
	)
	return result, nil
}

// buildLink constructs the codec pair for the descriptor from the run's
// configuration snapshot. The pipeline's loggers are connected to the
// component so per-stage diagnostics land alongside run logs.
func (p *Pipeline) buildLink(descriptor types.SchemeDescriptor, cfg settings) (link, error) {
	loggers := p.snapshotLoggers()
	switch descriptor.Mode {
	case types.DigitalToDigital:
		codec, err := linecode.New(descriptor.Scheme,
			linecode.WithLineConfig(cfg.line),
			linecode.WithLogger(loggers...),
		)
		if err != nil {
			return link{}, err
		}
		return link{
			encode: func(s types.Signal) (types.Signal, error) {
				wave, err := codec.Encode(s.Bits)
				if err != nil {
					return types.Signal{}, err
				}
				return types.WaveSignal(wave), nil
			},
			decode: func(s types.Signal) (types.Signal, error) {
				bits, err := codec.Decode(s.Wave)
				if err != nil {
					return types.Signal{}, err
				}
				return types.BitSignal(bits), nil
			},
		}, nil

	case types.DigitalToAnalog:
		modem, err := digitalmod.New(descriptor.Scheme,
			digitalmod.WithCarrierConfig(cfg.carrier),
			digitalmod.WithLogger(loggers...),
		)
		if err != nil {
			return link{}, err
		}
		return link{
			encode: func(s types.Signal) (types.Signal, error) {
				wave, err := modem.Modulate(s.Bits)
				if err != nil {
					return types.Signal{}, err
				}
				return types.WaveSignal(wave), nil
			},
			decode: func(s types.Signal) (types.Signal, error) {
				bits, err := modem.Demodulate(s.Wave)
				if err != nil {
					return types.Signal{}, err
				}
				return types.BitSignal(bits), nil
			},
		}, nil

	case types.AnalogToDigital:
		codec, err := sourcecodec.New(descriptor.Scheme,
			sourcecodec.WithPCMConfig(cfg.pcm),
			sourcecodec.WithDeltaConfig(cfg.delta),
			sourcecodec.WithLogger(loggers...),
		)
		if err != nil {
			return link{}, err
		}
		return link{
			encode: func(s types.Signal) (types.Signal, error) {
				bits, err := codec.Encode(s.Wave)
				if err != nil {
					return types.Signal{}, err
				}
				return types.BitSignal(bits), nil
			},
			decode: func(s types.Signal) (types.Signal, error) {
				wave, err := codec.Decode(s.Bits)
				if err != nil {
					return types.Signal{}, err
				}
				return types.WaveSignal(wave), nil
			},
		}, nil

	case types.AnalogToAnalog:
		modem, err := analogmod.New(descriptor.Scheme,
			analogmod.WithAnalogCarrierConfig(cfg.analog),
			analogmod.WithLogger(loggers...),
		)
		if err != nil {
			return link{}, err
		}
		return link{
			encode: func(s types.Signal) (types.Signal, error) {
				wave, err := modem.Modulate(s.Wave)
				if err != nil {
					return types.Signal{}, err
				}
				return types.WaveSignal(wave), nil
			},
			decode: func(s types.Signal) (types.Signal, error) {
				wave, err := modem.Demodulate(s.Wave)
				if err != nil {
					return types.Signal{}, err
				}
				return types.WaveSignal(wave), nil
			},
		}, nil

	default:
		return link{}, fmt.Errorf("%w: mode %s", types.ErrUnknownScheme, descriptor.Mode)
	}
}

// checkDescriptor rejects descriptors the pipeline cannot transmit before
// any stage runs. Scheme membership is tested against the closed scheme
// set rather than through Scheme.Mode alone, which would fold unknown
// values into the analog default.
func checkDescriptor(descriptor types.SchemeDescriptor, input types.Signal) error {
	if !knownScheme(descriptor.Scheme) {
		return fmt.Errorf("%w: %s", types.ErrUnknownScheme, descriptor.Scheme)
	}
	if descriptor.Scheme.Mode() != descriptor.Mode {
		return fmt.Errorf("%w: scheme %s does not belong to mode %s", types.ErrUnknownScheme, descriptor.Scheme, descriptor.Mode)
	}
	if input.Kind != descriptor.Mode.InputKind() {
		return fmt.Errorf("%w: mode %s takes %s input, got %s",
			types.ErrInvalidConfiguration, descriptor.Mode, descriptor.Mode.InputKind(), input.Kind)
	}
	return nil
}

func knownScheme(scheme types.Scheme) bool {
	return utils.Contains(types.AllSchemes(), scheme)
}

// advance moves the run to the next state, logging the transition and
// firing the state change callbacks on every attached probe.
func (p *Pipeline) advance(result types.TransmissionResult, to types.TransmissionState) types.TransmissionResult {
	from := result.State
	result.State = to
	meta := p.GetComponentMetadata()
	p.NotifyLoggers(
		types.DebugLevel,
		"Run",
		"component", meta,
		"event", "StateChange",
		"from", from.String(),
		"to", to.String(),
	)
	p.eachProbe(func(pr types.Probe) { pr.InvokeOnStateChange(meta, from, to) })
	return result
}

// fail ends the run in StateFailed. The stage error is logged and handed
// to error callbacks before the terminal transition fires.
func (p *Pipeline) fail(result types.TransmissionResult, stage string, err error) (types.TransmissionResult, error) {
	meta := p.GetComponentMetadata()
	p.NotifyLoggers(
		types.ErrorLevel,
		stage,
		"component", meta,
		"event", stage,
		"result", "FAILURE",
		"descriptor", result.Descriptor.String(),
		"error", err.Error(),
	)
	p.eachProbe(func(pr types.Probe) { pr.InvokeOnError(meta, err) })
	result = p.advance(result, types.StateFailed)
	return result, err
}

// eachProbe calls fn on a snapshot of the attached probes, in attachment
// order.
func (p *Pipeline) eachProbe(fn func(types.Probe)) {
	p.probesLock.Lock()
	probes := make([]types.Probe, len(p.probes))
	copy(probes, p.probes)
	p.probesLock.Unlock()

	for _, probe := range probes {
		if probe == nil {
			continue
		}
		fn(probe)
	}
}

// ConnectProbe attaches probes whose callbacks fire on run events. Nil
// probes are ignored.
func (p *Pipeline) ConnectProbe(probes ...types.Probe) {
	if len(probes) == 0 {
		return
	}

	n := 0
	for _, probe := range probes {
		if probe != nil {
			probes[n] = probe
			n++
		}
	}
	if n == 0 {
		return
	}
	probes = probes[:n]

	p.probesLock.Lock()
	p.probes = append(p.probes, probes...)
	p.probesLock.Unlock()

	for _, probe := range probes {
		p.NotifyLoggers(
			types.DebugLevel,
			"ConnectProbe",
			"component", p.GetComponentMetadata(),
			"event", "ConnectProbe",
			"result", "SUCCESS",
			"target", probe.GetComponentMetadata(),
		)
	}
}

// SetChannel replaces the channel crossed between encode and decode. A
// nil channel restores the identity channel.
func (p *Pipeline) SetChannel(channel types.Channel) {
	if channel == nil {
		channel = types.IdentityChannel
	}
	p.configLock.Lock()
	p.channel = channel
	p.configLock.Unlock()
}

// SetLineConfig replaces the parameters used for digital-to-digital runs.
// The next Run validates them before touching samples.
func (p *Pipeline) SetLineConfig(cfg types.LineConfig) {
	p.configLock.Lock()
	p.lineConfig = cfg
	p.configLock.Unlock()
}

// SetCarrierConfig replaces the parameters used for digital-to-analog
// runs.
func (p *Pipeline) SetCarrierConfig(cfg types.CarrierConfig) {
	p.configLock.Lock()
	p.carrierConfig = cfg
	p.configLock.Unlock()
}

// SetPCMConfig replaces the parameters used for analog-to-digital runs
// under the PCM scheme.
func (p *Pipeline) SetPCMConfig(cfg types.PCMConfig) {
	p.configLock.Lock()
	p.pcmConfig = cfg
	p.configLock.Unlock()
}

// SetDeltaConfig replaces the parameters used for analog-to-digital runs
// under the delta modulation scheme.
func (p *Pipeline) SetDeltaConfig(cfg types.DeltaConfig) {
	p.configLock.Lock()
	p.deltaConfig = cfg
	p.configLock.Unlock()
}

// SetAnalogCarrierConfig replaces the parameters used for analog-to-analog
// runs.
func (p *Pipeline) SetAnalogCarrierConfig(cfg types.AnalogCarrierConfig) {
	p.configLock.Lock()
	p.analogConfig = cfg
	p.configLock.Unlock()
}

// SetAnalogTolerance overrides the verification tolerance for analog
// payloads. Zero restores the per-scheme default.
func (p *Pipeline) SetAnalogTolerance(tolerance float64) {
	p.configLock.Lock()
	p.analogTolerance = tolerance
	p.configLock.Unlock()
}

// GetComponentMetadata returns the pipeline metadata.
func (p *Pipeline) GetComponentMetadata() types.ComponentMetadata {
	p.metadataLock.Lock()
	metadata := p.componentMetadata
	p.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata updates pipeline metadata values.
func (p *Pipeline) SetComponentMetadata(name string, id string) {
	p.metadataLock.Lock()
	p.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: p.componentMetadata.Type}
	p.metadataLock.Unlock()
}

func (p *Pipeline) snapshotLoggers() []types.Logger {
	p.loggersLock.Lock()
	loggers := make([]types.Logger, len(p.loggers))
	copy(loggers, p.loggers)
	p.loggersLock.Unlock()
	return loggers
}
