// SPDX-License-Identifier: MIT

// Package lvinline holds the data structures an inliner uses to search for a
// good set of call sites to inline.
//
// The module is organized into small packages:
//
//	idt/      - inlining dependency tree: Node and IDT contracts plus an in-memory Tree
//	proposal/ - Proposal (a node set with memoized cost and benefit), the
//	            canonical Empty() proposal, the Table used by the knapsack-style
//	            driver and the diagnostic Report
//	region/   - bulk-freed allocation scope backing proposals and tables
//	bfs/      - breadth-first walk over an IDT with hooks
//	trace/    - diagnostic option names and zap-backed line sinks
//	config/   - YAML and environment configuration
//	builder/  - deterministic IDT fixtures for tests and benchmarks
//
// A typical driver allocates one Region per compilation, fills a Table with
// proposals grown by AddNode and UnionInPlace, compares them by Benefit under
// a Cost budget and releases the Region when the decision is made.
package lvinline
