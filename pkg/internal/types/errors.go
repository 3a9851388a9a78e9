package types

import "errors"

// Sentinel errors for the failure categories every component shares. Callers
// match them with errors.Is; components wrap them with fmt.Errorf("%w: ...")
// to attach the offending values.
var (
	// ErrMalformedInput reports input that cannot be interpreted under the
	// scheme's framing: stray characters in a bit string, a waveform whose
	// length is not a whole number of intervals, a code stream that is not a
	// whole number of words. Inputs are never silently truncated.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownScheme reports a scheme or mode outside the closed set, or a
	// scheme paired with a mode it does not belong to.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrInvalidConfiguration reports configuration that fails validation:
	// non-positive rates or amplitudes, a carrier above Nyquist, mismatched
	// transmit and receive parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
