// SPDX-License-Identifier: MIT

package proposal

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the membership of p. Proposals with equal membership
// hash equal regardless of set capacity, region or aggregates; an empty
// proposal hashes like Empty().
func (p *Proposal) Fingerprint() uint64 {
	d := xxhash.New()
	if p.IsEmpty() {
		return d.Sum64()
	}

	var buf [8]byte
	for bit, ok := p.nodes.NextSet(0); ok; bit, ok = p.nodes.NextSet(bit + 1) {
		binary.LittleEndian.PutUint64(buf[:], uint64(bit))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// SameMembers reports whether p and other hold exactly the same nodes.
func (p *Proposal) SameMembers(other *Proposal) bool {
	if other == nil {
		fatalf(ErrNilProposal, "SameMembers")
	}
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() == other.IsEmpty()
	}
	if p.nodes.Count() != other.nodes.Count() {
		return false
	}

	return p.nodes.IntersectionCardinality(other.nodes) == p.nodes.Count()
}
