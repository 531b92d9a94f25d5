// Package builder provides internal helper functions and types
// for configuring per-coupler calibration in device constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// CalibrationFn produces a calibration scalar (error rate or duration) for
// the coupler (u,v) given an optional *rand.Rand source. It must be
// deterministic for a given RNG seed.
type CalibrationFn func(u, v int, rng *rand.Rand) float64

// IdealFn always returns 0: no error, no duration.
func IdealFn(_, _ int, _ *rand.Rand) float64 {
	return 0
}

// ConstantErrorFn returns a CalibrationFn that always yields eps.
// Panics unless 0 ≤ eps < 1.
func ConstantErrorFn(eps float64) CalibrationFn {
	if !(eps >= 0 && eps < 1) {
		panic(fmt.Sprintf("ConstantErrorFn: eps must be in [0,1), got %g", eps))
	}
	return func(_, _ int, _ *rand.Rand) float64 {
		return eps
	}
}

// UniformErrorFn returns a CalibrationFn sampling error rates uniformly in
// [lo, hi). Panics unless 0 ≤ lo ≤ hi < 1.
// If rng is nil, yields lo to keep a deterministic fallback.
func UniformErrorFn(lo, hi float64) CalibrationFn {
	if !(lo >= 0 && lo <= hi && hi < 1) {
		panic(fmt.Sprintf("UniformErrorFn: require 0 ≤ lo ≤ hi < 1, got lo=%g, hi=%g", lo, hi))
	}
	return uniform(lo, hi)
}

// ConstantDurationFn returns a CalibrationFn that always yields d.
// Panics if d < 0.
func ConstantDurationFn(d float64) CalibrationFn {
	if !(d >= 0) {
		panic(fmt.Sprintf("ConstantDurationFn: d must be ≥ 0, got %g", d))
	}
	return func(_, _ int, _ *rand.Rand) float64 {
		return d
	}
}

// UniformDurationFn returns a CalibrationFn sampling durations uniformly in
// [lo, hi). Panics unless 0 ≤ lo ≤ hi. Nil rng yields lo.
func UniformDurationFn(lo, hi float64) CalibrationFn {
	if !(lo >= 0 && lo <= hi) {
		panic(fmt.Sprintf("UniformDurationFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return uniform(lo, hi)
}

func uniform(lo, hi float64) CalibrationFn {
	return func(_, _ int, rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}
