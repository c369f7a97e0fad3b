// SPDX-License-Identifier: MIT

package proposal

import "github.com/katalvlaran/lvinline/idt"

// BitPosition maps a global node index to its bit in a proposal set.
// Bit 0 belongs to the root (idt.RootGlobalIndex). Panics for indices below
// the root index.
func BitPosition(globalIndex int) uint {
	if globalIndex < idt.RootGlobalIndex {
		fatalf(ErrBadIndex, "BitPosition(%d)", globalIndex)
	}

	return uint(globalIndex + 1)
}

// NodeIndex is the inverse of BitPosition.
func NodeIndex(bit uint) int {
	return int(bit) - 1
}

// validIndex reports whether globalIndex has a bit position.
func validIndex(globalIndex int) bool {
	return globalIndex >= idt.RootGlobalIndex
}
