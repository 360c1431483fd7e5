// Package builder provides link value distributions used by fixtures and
// models when WithValueFn is set.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultLinkValue is what the constant distributions fall back to when
// they have no RNG to draw from.
const DefaultLinkValue float64 = 1

// ValueFn produces a link value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultLinkValue. Never panics.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultLinkValue
}

// ConstantValueFn returns a ValueFn that always yields value.
// Panics if value < 0.
func ConstantValueFn(value float64) ValueFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantValueFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultLinkValue.
func UniformValueFn(min, max float64) ValueFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformValueFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultLinkValue
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev), clipped at 0.
// Panics if stddev < 0. If rng is nil, yields DefaultLinkValue.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultLinkValue
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// ExponentialValueFn returns a ValueFn sampling from Exp(rate), mean 1/rate.
// Panics if rate ≤ 0. If rng is nil, yields DefaultLinkValue.
func ExponentialValueFn(rate float64) ValueFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialValueFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultLinkValue
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantValue sets a fixed link value via ConstantValueFn.
func WithConstantValue(v float64) Option {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValue sets link values ∼ U[min,max) via UniformValueFn.
func WithUniformValue(min, max float64) Option {
	return WithValueFn(UniformValueFn(min, max))
}

// WithNormalValue sets link values ∼ N(mean,stddev) via NormalValueFn.
func WithNormalValue(mean, stddev float64) Option {
	return WithValueFn(NormalValueFn(mean, stddev))
}

// WithExponentialValue sets link values ∼ Exp(rate) via ExponentialValueFn.
func WithExponentialValue(rate float64) Option {
	return WithValueFn(ExponentialValueFn(rate))
}
