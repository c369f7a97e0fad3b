// SPDX-License-Identifier: MIT

// Package builder assembles deterministic Inlining Decision Tree fixtures
// for tests, examples and benchmarks.
//
// Design contract:
//   - One orchestrator: BuildTree(root, opts, cons...). Creates the tree,
//     resolves the config, runs the constructors in order under the root.
//   - Functional options (Option) resolve into an immutable config.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     trees, global indices included.
//   - Safety: constructors return sentinel errors; only option constructors
//     panic, and only on nil arguments.
//
// Topologies:
//
//	Chain(n)        root → c0 → c1 → … → c(n-1)
//	Star(n)         root → {c0 … c(n-1)}
//	Balanced(f, d)  complete f-ary tree of depth d below the root
//
// Node model:
//
//	Cost, benefit and budget come from ModelFn hooks (WithCostFn,
//	WithBenefitFn, WithBudgetFn). The defaults are constants; the Uniform*
//	helpers draw from the configured RNG, seeded via WithSeed.
package builder
