// SPDX-License-Identifier: MIT

// Package proposal provides the set algebra and memo storage used by a
// dynamic-programming inliner that solves a tree-shaped knapsack over an
// Inlining Decision Tree (IDT).
//
// Proposal
//
//	A Proposal is a subset of IDT nodes chosen for inlining. Membership is a
//	bit set addressed at BitPosition(globalIndex) = globalIndex+1, so the
//	root (global index -1) owns bit 0. The set is allocated lazily from a
//	region.Region the first time it is needed.
//
//	Cost and Benefit are memoized aggregates over the member nodes. Any
//	mutation (AddNode, UnionInPlace) marks them stale, including a no-op
//	AddNode of an existing member. The next read recomputes both together
//	by walking the set bits and resolving each back through the IDT; nodes
//	the IDT no longer knows are skipped.
//
//	The cost accumulator is uint32 and wraps on overflow; benefit uses uint64.
//	Per-node costs are small in practice, so this is a documented limit
//	rather than a checked condition.
//
// Memo policy
//
//	MemoZeroSentinel (default) keeps the historical encoding where a zero
//	aggregate means "stale": a proposal whose real cost is zero recomputes on
//	every Cost call and still returns zero. MemoTracked keeps an explicit
//	fresh flag instead and caches genuine zeros.
//
// Table
//
//	Table is a dense rows×cols grid of proposal references for the DP driver.
//	Get never fails: unset or out-of-range cells resolve to Empty(), the one
//	process-wide immutable empty proposal. Set with a nil proposal or an
//	out-of-range index panics.
//
// Errors
//
//	Contract violations (nil operands, bad indices, writing to Empty(),
//	aggregating without an IDT) panic with an assertion failure that wraps a
//	package sentinel, so a recovering caller can still use errors.Is.
//
// Concurrency
//
//	Proposals and tables belong to a single compilation and are not safe for
//	concurrent mutation. Empty() is never written and may be shared freely.
package proposal
