// SPDX-License-Identifier: MIT

// Package idt defines the Inlining Decision Tree contract consumed by the
// proposal layer, together with Tree, a small in-memory implementation used
// by fixtures, examples and tests.
//
// An IDT is a tree of candidate call sites. The root is the method being
// compiled and carries the global index RootGlobalIndex (-1); every other
// node gets a dense, non-negative global index that is unique within one
// tree. Each node exposes the numbers the knapsack cares about:
//
//   - Cost:    code-size impact of inlining the call site (uint32).
//   - Benefit: estimated performance gain (uint64).
//   - Budget:  the cost ceiling still available below this node.
//
// plus display data (byte-code position and size, signature, name) used by
// diagnostics.
//
// Tree layout:
//
//	      root (-1)
//	      /      \
//	   A (0)    B (1)
//	     |
//	   C (2)
//
// Indices are handed out in insertion order. Remove detaches a leaf so that
// NodeByGlobalIndex returns nil for its index afterwards; indices are never
// reused, which is what lets a proposal built before the removal keep
// aggregating (it simply skips the missing node).
//
// Concurrency:
//
//	Tree guards its catalog with a sync.RWMutex, so concurrent readers are
//	safe. The proposal layer itself is single-goroutine per compilation.
package idt
