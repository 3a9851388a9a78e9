package main

import (
	"fmt"

	"github.com/cigdemahmet27/commlink/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))

	fmt.Println("Creating a Manchester line codec...")

	codec, err := builder.NewLineCodec(
		builder.Manchester,
		builder.LineCodecWithLineConfig(builder.LineConfig{
			SamplesPerBit: 4,
			Amplitude:     1,
			SampleRate:    8000,
		}),
		builder.LineCodecWithLogger(logger),
	)
	if err != nil {
		fmt.Printf("Error creating codec: %v\n", err)
		return
	}

	bits := builder.MustParseBitSequence("1011001")

	fmt.Printf("Encoding bit sequence %s...\n", bits)

	wave, err := codec.Encode(bits)
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}

	fmt.Printf("Encoded %d bits into %d samples at %.0f Hz.\n", len(bits), wave.Len(), wave.SampleRate)
	fmt.Printf("First bit on the line: %v\n", wave.Samples[:8])

	fmt.Println("Decoding the waveform back into bits...")

	recovered, err := codec.Decode(wave)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}

	fmt.Printf("Recovered bit sequence %s.\n", recovered)

	if recovered.Equal(bits) {
		fmt.Println("Round trip succeeded.")
	} else {
		fmt.Println("Round trip corrupted the bits.")
	}
}
