package builder

import (
	"context"
	"errors"
	"testing"
)

func TestNewLineCodecRoundTrip(t *testing.T) {
	codec, err := NewLineCodec(Manchester,
		LineCodecWithLineConfig(LineConfig{SamplesPerBit: 4, Amplitude: 1, SampleRate: 8000}),
	)
	if err != nil {
		t.Fatalf("NewLineCodec error: %v", err)
	}

	bits := MustParseBitSequence("1011")
	wave, err := codec.Encode(bits)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := codec.Decode(wave)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !back.Equal(bits) {
		t.Fatalf("round trip mismatch: sent %q, got %q", bits, back)
	}
}

func TestNewDigitalModemRejectsForeignScheme(t *testing.T) {
	if _, err := NewDigitalModem(NRZL); !errors.Is(err, ErrUnknownScheme) {
		t.Fatalf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestNewSourceCodecReconstructsWithinStep(t *testing.T) {
	codec, err := NewSourceCodec(PCM)
	if err != nil {
		t.Fatalf("NewSourceCodec error: %v", err)
	}

	input, err := Sine(5, 1, 1000, 200)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}
	bits, err := codec.Encode(input)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	wave, err := codec.Decode(bits)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	// Default quantizer: three bits across [-1, 1].
	maxErr, err := MaxAbsError(input.Samples, wave.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError error: %v", err)
	}
	if maxErr > 2.0/8 {
		t.Fatalf("reconstruction error %.6f above one quantization step", maxErr)
	}
}

func TestNewTransmissionPipelineRunsAllModes(t *testing.T) {
	verified := 0
	pr := NewProbe(ProbeWithOnVerifyFunc(func(_ ComponentMetadata, result TransmissionResult) {
		if !result.Verified {
			t.Errorf("%s: verification failed with distortion %v", result.Descriptor, result.Distortion)
		}
		verified++
	}))

	p := NewTransmissionPipeline(
		PipelineWithLogger(NewLogger(LoggerWithLevel("error"))),
		PipelineWithProbe(pr),
		PipelineWithLineConfig(LineConfig{SamplesPerBit: 4, Amplitude: 1, SampleRate: 1000}),
		PipelineWithCarrierConfig(CarrierConfig{SampleRate: 50, CarrierFreq: 5, Amplitude: 1, SamplesPerSymbol: 50, FreqDeviation: 2}),
		PipelineWithPCMConfig(PCMConfig{BitDepth: 8, Range: Range{Min: -0.5, Max: 0.5}, SampleRate: 1024}),
		PipelineWithDeltaConfig(DeltaConfig{StepSize: 0.05, SampleRate: 1024}),
		PipelineWithAnalogCarrierConfig(AnalogCarrierConfig{
			SampleRate:    1024,
			CarrierFreq:   64,
			Amplitude:     1,
			AMSensitivity: 1,
			FMSensitivity: 8,
			PMSensitivity: 1,
		}),
	)

	message, err := Sine(4, 0.5, 1024, 1024)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}
	runs := []struct {
		scheme Scheme
		input  Signal
	}{
		{Manchester, BitSignal(MustParseBitSequence("1101"))},
		{BPSK, BitSignal(MustParseBitSequence("1101"))},
		{PCM, WaveSignal(message)},
		{FM, WaveSignal(message)},
	}
	for _, run := range runs {
		result, err := p.Run(context.Background(), DescriptorFor(run.scheme), run.input)
		if err != nil {
			t.Fatalf("%s: Run error: %v", run.scheme, err)
		}
		if result.State != StateVerified {
			t.Fatalf("%s: expected StateVerified, got %s", run.scheme, result.State)
		}
	}
	if verified != len(runs) {
		t.Fatalf("expected %d verification callbacks, got %d", len(runs), verified)
	}
}
