// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes tree construction.
type Option func(*config)

// WithNameScheme sets the node name generator: ordinal -> name.
// Panics on nil.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *config) { c.nameFn = fn }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithCostFn overrides the per-node cost model. Values above MaxUint32 are clamped.
// Panics on nil.
func WithCostFn(fn ModelFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *config) { c.costFn = fn }
}

// WithBenefitFn overrides the per-node benefit model. Panics on nil.
func WithBenefitFn(fn ModelFn) Option {
	if fn == nil {
		panic("builder: WithBenefitFn(nil)")
	}

	return func(c *config) { c.benefitFn = fn }
}

// WithBudgetFn overrides the per-node budget model. Panics on nil.
func WithBudgetFn(fn ModelFn) Option {
	if fn == nil {
		panic("builder: WithBudgetFn(nil)")
	}

	return func(c *config) { c.budgetFn = fn }
}
