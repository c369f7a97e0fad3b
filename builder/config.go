// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

// ModelFn produces one numeric attribute for the node with the given
// insertion ordinal (0-based) at the given depth (1 for top-level call sites).
type ModelFn func(rng *rand.Rand, ordinal, depth int) uint64

// Deterministic defaults.
const (
	defaultCost    = 1
	defaultBenefit = 1
	defaultBudget  = 100
)

// config aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type config struct {
	nameFn    func(int) string
	rng       *rand.Rand
	costFn    ModelFn
	benefitFn ModelFn
	budgetFn  ModelFn
}

// newConfig builds a config with deterministic defaults and applies opts in
// order; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		nameFn:    func(i int) string { return "m" + strconv.Itoa(i) },
		costFn:    Constant(defaultCost),
		benefitFn: Constant(defaultBenefit),
		budgetFn:  Constant(defaultBudget),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Constant returns a ModelFn that always yields v.
func Constant(v uint64) ModelFn {
	return func(*rand.Rand, int, int) uint64 { return v }
}

// Uniform returns a ModelFn drawing uniformly from [lo, hi]. Without an RNG
// it yields lo. Panics if hi < lo.
func Uniform(lo, hi uint64) ModelFn {
	if hi < lo {
		panic("builder: Uniform requires lo <= hi")
	}

	return func(rng *rand.Rand, _, _ int) uint64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + uint64(rng.Int63n(int64(hi-lo+1)))
	}
}

// ByOrdinal returns a ModelFn computing f(ordinal); handy for golden fixtures.
func ByOrdinal(f func(ordinal int) uint64) ModelFn {
	return func(_ *rand.Rand, ordinal, _ int) uint64 { return f(ordinal) }
}
