package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netforge/builder"
)

func TestValueFns_NilRand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultLinkValue, builder.DefaultValueFn(nil))
	assert.Equal(t, 3.0, builder.ConstantValueFn(3)(nil))
	assert.Equal(t, builder.DefaultLinkValue, builder.UniformValueFn(2, 5)(nil))
	assert.Equal(t, builder.DefaultLinkValue, builder.NormalValueFn(10, 2)(nil))
	assert.Equal(t, builder.DefaultLinkValue, builder.ExponentialValueFn(0.5)(nil))
}

func TestValueFns_Ranges(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	uniform := builder.UniformValueFn(2, 5)
	normal := builder.NormalValueFn(0, 3)
	exp := builder.ExponentialValueFn(2)
	for i := 0; i < 200; i++ {
		u := uniform(rng)
		assert.GreaterOrEqual(t, u, 2.0)
		assert.Less(t, u, 5.0)
		assert.GreaterOrEqual(t, normal(rng), 0.0, "normal draws are clipped at zero")
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}

	assert.Equal(t, 4.0, builder.UniformValueFn(4, 4)(rng))
}

func TestValueFns_Reproducible(t *testing.T) {
	t.Parallel()

	fn := builder.NormalValueFn(5, 1)
	a, b := rand.New(rand.NewSource(8)), rand.New(rand.NewSource(8))
	for i := 0; i < 10; i++ {
		require.Equal(t, fn(a), fn(b))
	}
}

func TestValueFns_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.ConstantValueFn(-1) })
	assert.Panics(t, func() { builder.UniformValueFn(-1, 2) })
	assert.Panics(t, func() { builder.UniformValueFn(3, 2) })
	assert.Panics(t, func() { builder.NormalValueFn(0, -1) })
	assert.Panics(t, func() { builder.ExponentialValueFn(0) })
	assert.Panics(t, func() { builder.WithExponentialValue(-2) })
}
