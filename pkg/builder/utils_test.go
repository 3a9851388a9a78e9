package builder

import (
	"math"
	"testing"
)

func TestMapFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := Map(in, func(v int) int { return v * 2 })
	if len(out) != 4 || out[0] != 2 || out[3] != 8 {
		t.Fatalf("unexpected map output: %v", out)
	}

	filtered := Filter(out, func(v int) bool { return v%4 == 0 })
	if len(filtered) != 2 || filtered[0] != 4 || filtered[1] != 8 {
		t.Fatalf("unexpected filter output: %v", filtered)
	}
}

func TestAnalyzeWaveformFindsDominantTone(t *testing.T) {
	wave, err := Sine(50, 1, 1024, 1024)
	if err != nil {
		t.Fatalf("Sine error: %v", err)
	}

	analysis := AnalyzeWaveform(wave)
	if len(analysis.PowerSpectrum) != 512 {
		t.Fatalf("expected 512 power bins, got %d", len(analysis.PowerSpectrum))
	}
	if analysis.DominantFreq != 50 {
		t.Fatalf("expected dominant frequency 50 Hz, got %.2f", analysis.DominantFreq)
	}
	if math.Abs(analysis.TotalEnergy-512) > 1e-6 {
		t.Fatalf("expected energy 512, got %.9f", analysis.TotalEnergy)
	}
	if analysis.SNR < 100 {
		t.Fatalf("expected a pure tone to dominate its spectrum, snr %.2f dB", analysis.SNR)
	}
	if len(analysis.Peaks) == 0 || analysis.Peaks[0].Freq != 50 {
		t.Fatalf("expected the strongest peak at 50 Hz, got %+v", analysis.Peaks)
	}
}

func TestAnalyzeWaveformEmptyInput(t *testing.T) {
	analysis := AnalyzeWaveform(Waveform{})
	if len(analysis.PowerSpectrum) != 0 || analysis.DominantFreq != 0 || analysis.TotalEnergy != 0 {
		t.Fatalf("expected a zero analysis for an empty waveform, got %+v", analysis)
	}
}
