// SPDX-License-Identifier: MIT

// Package region models the per-compilation memory region that backs
// proposal sets and proposal tables.
//
// A Region hands out storage (bit sets for proposals, cell slices for
// tables) and is torn down in bulk with Release. There is no per-object
// free. After Release every further allocation is a programming error and
// panics with an assertion failure wrapping ErrReleased; the caller that
// owns the region must not keep using proposals built from it.
//
// Each Region carries a random identity (uuid) so that diagnostics emitted
// by concurrent compilations can be told apart.
//
// Concurrency:
//
//	A Region belongs to one compilation and is not safe for concurrent use.
package region
