// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over an idt.IDT, returning
// the visit order and per-node depth, with optional hooks and depth limiting.
//
// What
//
//   - Explore call sites level by level from the root (or a chosen start node).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from global index → distance (edges) from the start
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of individual children via WithFilterChild.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Children are enqueued in Node.Child order, so the visit sequence is fully
//	reproducible for a given tree.
//
// Malformed trees
//
//	An external IDT could hand back the same node twice (a shared child or a
//	cycle). Each global index is visited at most once, so the walk always
//	terminates.
//
// Complexity
//
//	Time O(N), memory O(N) for N reachable nodes.
package bfs
