package analogmod

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

// checkSensitivity validates the sensitivity the scheme reads. The shared
// Validate leaves these to the scheme, since each scheme reads only its
// own field.
func checkSensitivity(scheme types.Scheme, cfg types.AnalogCarrierConfig) error {
	switch scheme {
	case types.AM:
		if cfg.AMSensitivity <= 0 {
			return fmt.Errorf("%w: AM sensitivity must be positive, got %v", types.ErrInvalidConfiguration, cfg.AMSensitivity)
		}
	case types.FM:
		if cfg.FMSensitivity <= 0 {
			return fmt.Errorf("%w: FM sensitivity must be positive, got %v", types.ErrInvalidConfiguration, cfg.FMSensitivity)
		}
	case types.PM:
		if cfg.PMSensitivity <= 0 {
			return fmt.Errorf("%w: PM sensitivity must be positive, got %v", types.ErrInvalidConfiguration, cfg.PMSensitivity)
		}
	}
	return nil
}

// scaleTo writes c*src into a new slice. Both strategies compute each
// element as one multiplication, so the outputs are identical.
func scaleTo(src []float64, c float64, strategy types.ExecutionStrategy) []float64 {
	out := make([]float64, len(src))
	if strategy == types.StrategyVectorized {
		floats.ScaleTo(out, c, src)
		return out
	}
	for i, v := range src {
		out[i] = c * v
	}
	return out
}

// affineTo writes scale*src[i] + offset into a new slice.
func affineTo(src []float64, scale, offset float64, strategy types.ExecutionStrategy) []float64 {
	out := scaleTo(src, scale, strategy)
	if strategy == types.StrategyVectorized {
		floats.AddConst(offset, out)
		return out
	}
	for i := range out {
		out[i] += offset
	}
	return out
}

// integrate writes the left-Riemann cumulative integral of src with step
// dt: out[i] = (src[0] + ... + src[i]) * dt.
func integrate(src []float64, dt float64, strategy types.ExecutionStrategy) []float64 {
	out := make([]float64, len(src))
	if len(src) == 0 {
		return out
	}
	if strategy == types.StrategyVectorized {
		floats.CumSum(out, src)
		floats.Scale(dt, out)
		return out
	}
	out[0] = src[0]
	for i := 1; i < len(src); i++ {
		out[i] = out[i-1] + src[i]
	}
	for i := range out {
		out[i] *= dt
	}
	return out
}
