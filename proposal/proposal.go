// SPDX-License-Identifier: MIT

package proposal

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvinline/idt"
	"github.com/katalvlaran/lvinline/region"
)

// Proposal is a set of IDT nodes selected for inlining with memoized
// aggregate cost and benefit.
//
// nodes stays nil until the first insertion. Under MemoZeroSentinel a zero
// cost or benefit means "recompute"; under MemoTracked fresh decides.
type Proposal struct {
	nodes   *bitset.BitSet
	cost    uint32
	benefit uint64
	fresh   bool
	policy  MemoPolicy

	tree   idt.IDT
	region *region.Region

	// frozen is set only on the canonical empty proposal.
	frozen bool
}

// spanner is implemented by IDTs that know their index range up front.
type spanner interface {
	IndexSpan() int
}

// New returns an empty proposal over tree whose storage comes from r.
// Panics if r is nil.
func New(r *region.Region, tree idt.IDT, opts ...Option) *Proposal {
	if r == nil {
		fatalf(ErrNilRegion, "New")
	}
	p := &Proposal{tree: tree, region: r, policy: DefaultMemoPolicy}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Clone copies p, membership included, into region r. The copy is never
// frozen, so cloning Empty() yields a mutable empty proposal.
func (p *Proposal) Clone(r *region.Region) *Proposal {
	if r == nil {
		fatalf(ErrNilRegion, "Clone")
	}
	c := &Proposal{
		cost:    p.cost,
		benefit: p.benefit,
		fresh:   p.fresh,
		policy:  p.policy,
		tree:    p.tree,
		region:  r,
	}
	if p.nodes != nil {
		c.nodes = r.CloneBitSet(p.nodes)
	}

	return c
}

// AddNode inserts n. Re-adding a member leaves membership unchanged but
// still invalidates the memoized aggregates.
// Panics if n is nil, its index is below the root index, or p is Empty().
func (p *Proposal) AddNode(n idt.Node) {
	p.mustBeMutable("AddNode")
	if n == nil {
		fatalf(ErrNilNode, "AddNode")
	}
	bit := BitPosition(n.GlobalIndex())
	p.ensure(bit + 1)
	if !p.nodes.Test(bit) {
		p.nodes.Set(bit)
	}
	p.invalidate()
}

// IsEmpty reports whether p has no members.
func (p *Proposal) IsEmpty() bool {
	return p.nodes == nil || p.nodes.None()
}

// Len returns the number of members, the root slot included.
func (p *Proposal) Len() int {
	if p.nodes == nil {
		return 0
	}

	return int(p.nodes.Count())
}

// Cost returns the summed cost of the member nodes.
func (p *Proposal) Cost() uint32 {
	if p.frozen {
		return p.cost
	}
	if p.stale(p.cost == 0) {
		p.computeCostAndBenefit()
	}

	return p.cost
}

// Benefit returns the summed benefit of the member nodes.
func (p *Proposal) Benefit() uint64 {
	if p.frozen {
		return p.benefit
	}
	if p.stale(p.benefit == 0) {
		p.computeCostAndBenefit()
	}

	return p.benefit
}

// EnsureInitialized allocates the member set if it does not exist yet.
// An existing set is never reallocated.
func (p *Proposal) EnsureInitialized() {
	p.mustBeMutable("EnsureInitialized")
	p.ensure(0)
}

// Contains reports whether n is a member. A nil node is never a member.
func (p *Proposal) Contains(n idt.Node) bool {
	if n == nil || p.IsEmpty() || !validIndex(n.GlobalIndex()) {
		return false
	}

	return p.nodes.Test(BitPosition(n.GlobalIndex()))
}

// UnionInPlace replaces the membership of p with the union of a and b.
// The previous membership of p is discarded, not merged. p may alias a or b.
// Panics if a or b is nil or p is Empty().
func (p *Proposal) UnionInPlace(a, b *Proposal) {
	p.mustBeMutable("UnionInPlace")
	if a == nil || b == nil {
		fatalf(ErrNilProposal, "UnionInPlace(a=%t, b=%t)", a != nil, b != nil)
	}
	p.ensure(0)
	a.ensureIfMutable()
	b.ensureIfMutable()

	other := b
	switch {
	case p == a:
	case p == b:
		other = a
	case a.nodes == nil:
		p.nodes.ClearAll()
	default:
		a.nodes.CopyFull(p.nodes)
	}
	if other.nodes != nil {
		p.nodes.InPlaceUnion(other.nodes)
	}
	p.invalidate()
}

// Intersects reports whether p and other share at least one member.
// Panics if other is nil.
func (p *Proposal) Intersects(other *Proposal) bool {
	if other == nil {
		fatalf(ErrNilProposal, "Intersects")
	}
	if p.nodes == nil || other.nodes == nil {
		return false
	}

	return p.nodes.IntersectionCardinality(other.nodes) > 0
}

// Indices returns the member global indices in ascending order.
func (p *Proposal) Indices() []int {
	if p.IsEmpty() {
		return nil
	}
	out := make([]int, 0, p.nodes.Count())
	for bit, ok := p.nodes.NextSet(0); ok; bit, ok = p.nodes.NextSet(bit + 1) {
		out = append(out, NodeIndex(bit))
	}

	return out
}

// IDT returns the tree p resolves indices against.
func (p *Proposal) IDT() idt.IDT { return p.tree }

// Region returns the region backing p's storage; nil for Empty().
func (p *Proposal) Region() *region.Region { return p.region }

// MemoPolicy returns the policy p was built with.
func (p *Proposal) MemoPolicy() MemoPolicy { return p.policy }

// stale reports whether the aggregates must be recomputed. zero is the
// sentinel test for the aggregate being read.
func (p *Proposal) stale(zero bool) bool {
	if p.policy == MemoTracked {
		return !p.fresh
	}

	return zero
}

func (p *Proposal) invalidate() {
	p.cost = 0
	p.benefit = 0
	p.fresh = false
}

// computeCostAndBenefit refreshes both aggregates from the member set.
func (p *Proposal) computeCostAndBenefit() {
	p.cost = 0
	p.benefit = 0
	p.fresh = true
	if p.IsEmpty() {
		return
	}
	if p.tree == nil {
		p.fresh = false
		fatalf(ErrNoIDT, "aggregating %d members", p.nodes.Count())
	}

	for bit, ok := p.nodes.NextSet(0); ok; bit, ok = p.nodes.NextSet(bit + 1) {
		n := p.tree.NodeByGlobalIndex(NodeIndex(bit))
		if n == nil {
			// stale index: the tree changed after the node was added
			continue
		}
		p.cost += n.Cost()
		p.benefit += n.Benefit()
	}
}

// ensure allocates the member set with room for capacity bits.
func (p *Proposal) ensure(capacity uint) {
	if p.nodes != nil {
		return
	}
	if s, ok := p.tree.(spanner); ok {
		if span := uint(s.IndexSpan()) + 1; span > capacity {
			capacity = span
		}
	}
	p.nodes = p.region.NewBitSet(capacity)
}

func (p *Proposal) ensureIfMutable() {
	if !p.frozen {
		p.ensure(0)
	}
}

func (p *Proposal) mustBeMutable(op string) {
	if p.frozen {
		fatalf(ErrImmutable, "%s", op)
	}
}
