// SPDX-License-Identifier: MIT

// Package trace carries the diagnostic surface of the proposal layer: which
// reports are enabled (Options) and where their pre-formatted lines go (Sink).
//
// Two channels exist, mirroring the compiler options that enable them:
//
//	trace-inlining-proposals → Sink.Trace    (per-compilation trace log)
//	verbose-inlining         → Sink.Verbose  (shared verbose log)
//
// Diagnostics never affect results: a Nop sink, or both options disabled,
// only removes output.
package trace
