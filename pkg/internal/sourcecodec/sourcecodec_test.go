package sourcecodec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cigdemahmet27/commlink/pkg/internal/signal"
	"github.com/cigdemahmet27/commlink/pkg/internal/sourcecodec"
	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

func mustCodec(t *testing.T, scheme types.Scheme, options ...types.Option[types.SourceCodec]) types.SourceCodec {
	t.Helper()
	c, err := sourcecodec.New(scheme, options...)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", scheme, err)
	}
	return c
}

func pcmCodec(t *testing.T, depth int, r types.Range) types.SourceCodec {
	t.Helper()
	cfg := types.DefaultPCMConfig()
	cfg.BitDepth = depth
	cfg.Range = r
	return mustCodec(t, types.PCM, sourcecodec.WithPCMConfig(cfg))
}

func TestPCMEncodePinnedCodes(t *testing.T) {
	c := pcmCodec(t, 2, types.Range{Min: 0, Max: 3})

	bits, err := c.Encode(types.NewWaveform([]float64{0, 1, 2, 3}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "00011011" {
		t.Fatalf("Expected codes 00 01 10 11, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, want := range []float64{0, 1, 2, 3} {
		if math.Abs(wave.Samples[i]-want) > 1e-9 {
			t.Errorf("Sample %d: expected %v, got %v", i, want, wave.Samples[i])
		}
	}
}

func TestPCMRoundsToNearestLevel(t *testing.T) {
	// Two levels at 0 and 3: anything above the midpoint belongs to the
	// upper level.
	c := pcmCodec(t, 1, types.Range{Min: 0, Max: 3})

	bits, err := c.Encode(types.NewWaveform([]float64{0.2, 1.4, 1.6, 2.9}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "0011" {
		t.Fatalf("Expected 0011, got %q", bits)
	}
}

func TestPCMReconstructionErrorBound(t *testing.T) {
	input, err := signal.Sine(5, 1, 1000, 500)
	if err != nil {
		t.Fatalf("Sine failed: %v", err)
	}

	for _, depth := range []int{1, 2, 3, 6, 10} {
		cfg := types.DefaultPCMConfig()
		cfg.BitDepth = depth
		cfg.Range = signal.RangeOf(input)
		c := mustCodec(t, types.PCM, sourcecodec.WithPCMConfig(cfg))

		bits, err := c.Encode(input)
		if err != nil {
			t.Fatalf("depth %d: Encode failed: %v", depth, err)
		}
		wave, err := c.Decode(bits)
		if err != nil {
			t.Fatalf("depth %d: Decode failed: %v", depth, err)
		}

		worst, err := signal.MaxAbsError(input.Samples, wave.Samples)
		if err != nil {
			t.Fatalf("depth %d: MaxAbsError failed: %v", depth, err)
		}
		bound := cfg.Range.Span() / math.Pow(2, float64(depth))
		if worst > bound+1e-9 {
			t.Errorf("depth %d: worst error %v above bound %v", depth, worst, bound)
		}
	}
}

func TestPCMFlatLineUsesCodeZero(t *testing.T) {
	flat := make([]float64, 8)
	for i := range flat {
		flat[i] = 0.7
	}
	c := pcmCodec(t, 3, types.Range{Min: 0.7, Max: 0.7})

	bits, err := c.Encode(types.NewWaveform(flat, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "000000000000000000000000" {
		t.Fatalf("Expected all-zero codes, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, s := range wave.Samples {
		if s != 0.7 {
			t.Errorf("Sample %d: expected the flat line back, got %v", i, s)
		}
	}
}

func TestPCMClampsOutOfRangeSamples(t *testing.T) {
	c := pcmCodec(t, 2, types.Range{Min: -1, Max: 1})

	bits, err := c.Encode(types.NewWaveform([]float64{-5, 5}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "0011" {
		t.Fatalf("Expected the extreme codes, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if math.Abs(wave.Samples[0]+1) > 1e-12 || math.Abs(wave.Samples[1]-1) > 1e-12 {
		t.Errorf("Expected clamped samples to land on the range edges, got %v", wave.Samples)
	}
}

func TestPCMDecodeRejectsPartialCodeWord(t *testing.T) {
	c := pcmCodec(t, 3, types.Range{Min: -1, Max: 1})

	if _, err := c.Decode(types.MustParseBitSequence("0101010")); !errors.Is(err, types.ErrMalformedInput) {
		t.Fatalf("Expected ErrMalformedInput for 7 bits at depth 3, got %v", err)
	}
}

func TestPCMDecodeStampsConfiguredRate(t *testing.T) {
	cfg := types.DefaultPCMConfig()
	cfg.SampleRate = 250
	c := mustCodec(t, types.PCM, sourcecodec.WithPCMConfig(cfg))

	wave, err := c.Decode(types.MustParseBitSequence("000111"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if wave.SampleRate != 250 {
		t.Errorf("Expected the configured rate 250, got %v", wave.SampleRate)
	}
}

func TestPCMStrategiesAgree(t *testing.T) {
	input, err := signal.Sine(3, 0.8, 200, 64)
	if err != nil {
		t.Fatalf("Sine failed: %v", err)
	}

	scalarCfg := types.DefaultPCMConfig()
	scalarCfg.Strategy = types.StrategyScalar
	vectorCfg := types.DefaultPCMConfig()
	vectorCfg.Strategy = types.StrategyVectorized

	scalar := mustCodec(t, types.PCM, sourcecodec.WithPCMConfig(scalarCfg))
	vector := mustCodec(t, types.PCM, sourcecodec.WithPCMConfig(vectorCfg))

	sb, err := scalar.Encode(input)
	if err != nil {
		t.Fatalf("scalar Encode failed: %v", err)
	}
	vb, err := vector.Encode(input)
	if err != nil {
		t.Fatalf("vectorized Encode failed: %v", err)
	}
	if !sb.Equal(vb) {
		t.Fatal("Strategies encoded different bits")
	}

	sw, err := scalar.Decode(sb)
	if err != nil {
		t.Fatalf("scalar Decode failed: %v", err)
	}
	vw, err := vector.Decode(vb)
	if err != nil {
		t.Fatalf("vectorized Decode failed: %v", err)
	}
	for i := range sw.Samples {
		if sw.Samples[i] != vw.Samples[i] {
			t.Fatalf("Sample %d differs between strategies: %v vs %v", i, sw.Samples[i], vw.Samples[i])
		}
	}
}

func TestDeltaStaircasePinned(t *testing.T) {
	cfg := types.DeltaConfig{StepSize: 1, SampleRate: 1000}
	c := mustCodec(t, types.DeltaMod, sourcecodec.WithDeltaConfig(cfg))

	bits, err := c.Encode(types.NewWaveform([]float64{0.5, 1.5, 0.5, -2}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "1100" {
		t.Fatalf("Expected 1100, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, want := range []float64{1, 2, 1, 0} {
		if wave.Samples[i] != want {
			t.Errorf("Sample %d: expected %v, got %v", i, want, wave.Samples[i])
		}
	}
}

func TestDeltaTracksSlowSignal(t *testing.T) {
	input, err := signal.Sine(1, 1, 1000, 1000)
	if err != nil {
		t.Fatalf("Sine failed: %v", err)
	}

	cfg := types.DeltaConfig{StepSize: 0.05, SampleRate: 1000}
	c := mustCodec(t, types.DeltaMod, sourcecodec.WithDeltaConfig(cfg))

	bits, err := c.Encode(input)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	worst, err := signal.MaxAbsError(input.Samples, wave.Samples)
	if err != nil {
		t.Fatalf("MaxAbsError failed: %v", err)
	}
	// Granular noise rings within a couple of steps once the staircase
	// has caught the signal.
	if worst > 2.5*cfg.StepSize {
		t.Errorf("Worst tracking error %v above %v", worst, 2.5*cfg.StepSize)
	}
}

func TestDeltaSlopeOverloadLagsBehind(t *testing.T) {
	cfg := types.DeltaConfig{StepSize: 0.1, SampleRate: 1000}
	c := mustCodec(t, types.DeltaMod, sourcecodec.WithDeltaConfig(cfg))

	bits, err := c.Encode(types.NewWaveform([]float64{0, 10}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "01" {
		t.Fatalf("Expected 01, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// One step per sample cannot reach a jump of 10.
	if wave.Samples[1] != 0 {
		t.Errorf("Expected the staircase stuck at 0, got %v", wave.Samples[1])
	}
}

func TestDeltaInitialSeedsBothEnds(t *testing.T) {
	cfg := types.DeltaConfig{StepSize: 0.5, Initial: 2, SampleRate: 1000}
	c := mustCodec(t, types.DeltaMod, sourcecodec.WithDeltaConfig(cfg))

	bits, err := c.Encode(types.NewWaveform([]float64{2.1, 2.1}, 1000))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if bits.String() != "10" {
		t.Fatalf("Expected 10, got %q", bits)
	}

	wave, err := c.Decode(bits)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if wave.Samples[0] != 2.5 || wave.Samples[1] != 2 {
		t.Errorf("Expected the staircase to start from 2, got %v", wave.Samples)
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, scheme := range []types.Scheme{types.PCM, types.DeltaMod} {
		c := mustCodec(t, scheme)

		bits, err := c.Encode(types.Waveform{SampleRate: 1000})
		if err != nil {
			t.Fatalf("%s: Encode of empty waveform failed: %v", scheme, err)
		}
		if len(bits) != 0 {
			t.Errorf("%s: expected no bits, got %d", scheme, len(bits))
		}

		wave, err := c.Decode(nil)
		if err != nil {
			t.Fatalf("%s: Decode of empty bits failed: %v", scheme, err)
		}
		if wave.Len() != 0 {
			t.Errorf("%s: expected an empty waveform, got %d samples", scheme, wave.Len())
		}
	}
}

func TestNewRejectsNonSourceSchemes(t *testing.T) {
	for _, scheme := range []types.Scheme{types.NRZL, types.ASK, types.AM} {
		if _, err := sourcecodec.New(scheme); !errors.Is(err, types.ErrUnknownScheme) {
			t.Errorf("New(%s): expected ErrUnknownScheme, got %v", scheme, err)
		}
	}
}

func TestNewRejectsInvalidActiveConfig(t *testing.T) {
	cfg := types.DefaultPCMConfig()
	cfg.Range = types.Range{Min: 1, Max: -1}
	if _, err := sourcecodec.New(types.PCM, sourcecodec.WithPCMConfig(cfg)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for an inverted range, got %v", err)
	}

	dcfg := types.DefaultDeltaConfig()
	dcfg.StepSize = 0
	if _, err := sourcecodec.New(types.DeltaMod, sourcecodec.WithDeltaConfig(dcfg)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for a zero step, got %v", err)
	}

	// The inactive parameter set is never read, so it never blocks
	// construction.
	if _, err := sourcecodec.New(types.PCM, sourcecodec.WithDeltaConfig(dcfg)); err != nil {
		t.Errorf("Expected the inactive delta config to be ignored, got %v", err)
	}
}

func TestSetPCMConfigValidatedOnNextCall(t *testing.T) {
	c := mustCodec(t, types.PCM)

	broken := types.DefaultPCMConfig()
	broken.BitDepth = 0
	c.SetPCMConfig(broken)

	if _, err := c.Encode(types.NewWaveform([]float64{0.5}, 1000)); !errors.Is(err, types.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration after breaking the config, got %v", err)
	}
}

func TestComponentMetadataDefaults(t *testing.T) {
	c := mustCodec(t, types.DeltaMod)

	meta := c.GetComponentMetadata()
	if meta.Type != "SOURCE_CODEC" {
		t.Errorf("Expected type SOURCE_CODEC, got %q", meta.Type)
	}
	if meta.Name != "Delta Modulation" {
		t.Errorf("Expected scheme display name, got %q", meta.Name)
	}
}
