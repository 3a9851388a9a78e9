package main

import (
	"context"
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/builder"
)

func printSummary(result builder.TransmissionResult) {
	fmt.Printf("Run %s:\n", result.Descriptor)
	fmt.Printf("  State: %s\n", result.State)
	fmt.Printf("  Verified: %t\n", result.Verified)
	fmt.Printf("  Distortion: %g\n", result.Distortion)
	fmt.Printf("  Input samples: %d, transmitted: %d, received: %d\n",
		result.Input.Len(), result.Transmitted.Len(), result.Received.Len())
	fmt.Println()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))

	probe := builder.NewProbe(
		builder.ProbeWithOnStateChangeFunc(func(c builder.ComponentMetadata, from builder.TransmissionState, to builder.TransmissionState) {
			fmt.Printf("  %s: %s -> %s\n", c.Name, from, to)
		}),
	)

	fmt.Println("Creating a transmission pipeline configured for all four modes...")

	pipeline := builder.NewTransmissionPipeline(
		builder.PipelineWithComponentMetadata("link", "link-1"),
		builder.PipelineWithLogger(logger),
		builder.PipelineWithProbe(probe),
		builder.PipelineWithLineConfig(builder.LineConfig{
			SamplesPerBit: 4,
			Amplitude:     1,
			SampleRate:    1000,
		}),
		builder.PipelineWithCarrierConfig(builder.CarrierConfig{
			SampleRate:       50,
			CarrierFreq:      5,
			Amplitude:        1,
			SamplesPerSymbol: 50,
			FreqDeviation:    2,
		}),
		builder.PipelineWithPCMConfig(builder.PCMConfig{
			BitDepth:   8,
			Range:      builder.Range{Min: -0.5, Max: 0.5},
			SampleRate: 1024,
		}),
		builder.PipelineWithDeltaConfig(builder.DeltaConfig{
			StepSize:   0.05,
			SampleRate: 1024,
		}),
		builder.PipelineWithAnalogCarrierConfig(builder.AnalogCarrierConfig{
			SampleRate:    1024,
			CarrierFreq:   64,
			Amplitude:     1,
			FMSensitivity: 8,
		}),
	)

	bits := builder.BitSignal(builder.MustParseBitSequence("0110100111"))

	message, err := builder.Sine(4, 0.5, 1024, 1024)
	if err != nil {
		fmt.Printf("Error building message waveform: %v\n", err)
		return
	}
	wave := builder.WaveSignal(message)

	runs := []struct {
		scheme builder.Scheme
		input  builder.Signal
	}{
		{builder.Manchester, bits},
		{builder.BPSK, bits},
		{builder.PCM, wave},
		{builder.FM, wave},
	}

	for _, run := range runs {
		descriptor := builder.DescriptorFor(run.scheme)
		fmt.Printf("Transmitting over %s...\n", descriptor)

		result, err := pipeline.Run(ctx, descriptor, run.input)
		if err != nil {
			fmt.Printf("Error running %s: %v\n", descriptor, err)
			return
		}

		printSummary(result)
	}

	fmt.Println("All transmissions finished.")
}
