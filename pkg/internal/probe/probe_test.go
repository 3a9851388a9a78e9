package probe_test

import (
	"errors"
	"testing"

	"github.com/cigdemahmet27/commlink/pkg/internal/probe"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

func TestCallbacksFireInRegistrationOrder(t *testing.T) {
	var order []string
	p := probe.New(
		probe.WithOnEncodeFunc(func(c types.ComponentMetadata, d types.SchemeDescriptor, input, transmitted types.Signal) {
			order = append(order, "first")
		}),
		probe.WithOnEncodeFunc(func(c types.ComponentMetadata, d types.SchemeDescriptor, input, transmitted types.Signal) {
			order = append(order, "second")
		}),
	)

	p.InvokeOnEncode(types.ComponentMetadata{}, types.DescriptorFor(types.NRZL), types.Signal{}, types.Signal{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("Expected callbacks in registration order, got %v", order)
	}
}

func TestCallbackArgumentsPassThrough(t *testing.T) {
	meta := types.ComponentMetadata{ID: "p-1", Type: "PIPELINE", Name: "link"}
	descriptor := types.DescriptorFor(types.Manchester)
	input := types.BitSignal(types.MustParseBitSequence("101"))
	transmitted := types.WaveSignal(types.NewWaveform([]float64{1, -1}, 1000))

	var got struct {
		meta        types.ComponentMetadata
		descriptor  types.SchemeDescriptor
		inputLen    int
		transmitted int
	}
	p := probe.New()
	p.RegisterOnEncode(func(c types.ComponentMetadata, d types.SchemeDescriptor, in, tx types.Signal) {
		got.meta = c
		got.descriptor = d
		got.inputLen = in.Len()
		got.transmitted = tx.Len()
	})

	p.InvokeOnEncode(meta, descriptor, input, transmitted)

	if got.meta != meta {
		t.Errorf("Expected metadata %+v, got %+v", meta, got.meta)
	}
	if got.descriptor != descriptor {
		t.Errorf("Expected descriptor %s, got %s", descriptor, got.descriptor)
	}
	if got.inputLen != 3 || got.transmitted != 2 {
		t.Errorf("Expected payload lengths 3 and 2, got %d and %d", got.inputLen, got.transmitted)
	}
}

func TestAllHooksInvoke(t *testing.T) {
	var encodes, decodes, transitions, verifies, errs int
	sentinel := errors.New("stage failed")

	p := probe.New(
		probe.WithOnEncodeFunc(func(types.ComponentMetadata, types.SchemeDescriptor, types.Signal, types.Signal) { encodes++ }),
		probe.WithOnDecodeFunc(func(types.ComponentMetadata, types.SchemeDescriptor, types.Signal, types.Signal) { decodes++ }),
		probe.WithOnStateChangeFunc(func(types.ComponentMetadata, types.TransmissionState, types.TransmissionState) { transitions++ }),
		probe.WithOnVerifyFunc(func(types.ComponentMetadata, types.TransmissionResult) { verifies++ }),
		probe.WithOnErrorFunc(func(c types.ComponentMetadata, err error) {
			errs++
			if !errors.Is(err, sentinel) {
				t.Errorf("Expected the sentinel error, got %v", err)
			}
		}),
	)

	meta := types.ComponentMetadata{}
	d := types.DescriptorFor(types.PCM)
	p.InvokeOnEncode(meta, d, types.Signal{}, types.Signal{})
	p.InvokeOnDecode(meta, d, types.Signal{}, types.Signal{})
	p.InvokeOnStateChange(meta, types.StateIdle, types.StateEncoded)
	p.InvokeOnStateChange(meta, types.StateEncoded, types.StateDecoded)
	p.InvokeOnVerify(meta, types.TransmissionResult{State: types.StateVerified, Verified: true})
	p.InvokeOnError(meta, sentinel)

	if encodes != 1 || decodes != 1 || transitions != 2 || verifies != 1 || errs != 1 {
		t.Errorf("Expected counts 1/1/2/1/1, got %d/%d/%d/%d/%d", encodes, decodes, transitions, verifies, errs)
	}
}

func TestInvokeWithoutCallbacks(t *testing.T) {
	p := probe.New()

	// Nothing registered: every invocation is a no-op.
	p.InvokeOnEncode(types.ComponentMetadata{}, types.DescriptorFor(types.AM), types.Signal{}, types.Signal{})
	p.InvokeOnDecode(types.ComponentMetadata{}, types.DescriptorFor(types.AM), types.Signal{}, types.Signal{})
	p.InvokeOnStateChange(types.ComponentMetadata{}, types.StateIdle, types.StateFailed)
	p.InvokeOnVerify(types.ComponentMetadata{}, types.TransmissionResult{})
	p.InvokeOnError(types.ComponentMetadata{}, errors.New("ignored"))
}

func TestRegisterAfterConstruction(t *testing.T) {
	p := probe.New()

	var result types.TransmissionResult
	p.RegisterOnVerify(func(c types.ComponentMetadata, r types.TransmissionResult) { result = r })

	p.InvokeOnVerify(types.ComponentMetadata{}, types.TransmissionResult{
		Descriptor: types.DescriptorFor(types.DeltaMod),
		State:      types.StateVerified,
		Verified:   true,
		Distortion: 0.25,
	})

	if !result.Verified || result.State != types.StateVerified {
		t.Errorf("Expected a verified result, got %+v", result)
	}
	if result.Distortion != 0.25 {
		t.Errorf("Expected distortion 0.25, got %v", result.Distortion)
	}
	if result.Descriptor.Scheme != types.DeltaMod {
		t.Errorf("Expected the delta modulation descriptor, got %s", result.Descriptor)
	}
}

func TestComponentMetadataDefaultsAndOverride(t *testing.T) {
	p := probe.New()

	meta := p.GetComponentMetadata()
	if meta.Type != "PROBE" {
		t.Errorf("Expected type PROBE, got %q", meta.Type)
	}
	if meta.ID == "" {
		t.Error("Expected a generated id")
	}

	named := probe.New(probe.WithComponentMetadata("run-watcher", "probe-1"))
	meta = named.GetComponentMetadata()
	if meta.Name != "run-watcher" || meta.ID != "probe-1" {
		t.Errorf("Expected overridden metadata, got %+v", meta)
	}
	if meta.Type != "PROBE" {
		t.Errorf("Type should survive the override, got %q", meta.Type)
	}
}
