package types

// WaveAnalysis summarizes the frequency content of a waveform: where the
// power sits, how much of it there is, and how cleanly it stands above the
// rest of the spectrum.
type WaveAnalysis struct {
	PowerSpectrum []float64 // Per-bin power over the nonnegative frequencies.
	DominantFreq  float64   // Frequency of the strongest bin in Hz.
	TotalEnergy   float64   // Sum of squared samples in the time domain.
	SNR           float64   // Dominant-bin power against all other bins, in dB.
	Peaks         []Peak    // Local spectral maxima, strongest first.
}

// Peak is one local maximum in a power spectrum.
type Peak struct {
	Freq  float64
	Value float64
}
