// SPDX-License-Identifier: MIT

package proposal

// empty is the canonical empty proposal: no members, zero aggregates, no
// IDT and no region. It is never written after package initialization.
var empty = &Proposal{frozen: true, fresh: true}

// Empty returns the process-wide immutable empty proposal. Every query works
// on it; every mutation panics with ErrImmutable.
func Empty() *Proposal { return empty }
