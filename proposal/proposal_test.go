// SPDX-License-Identifier: MIT

package proposal_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinline/idt"
	"github.com/katalvlaran/lvinline/proposal"
	"github.com/katalvlaran/lvinline/region"
)

func TestBitPosition_ReservesSlotZeroForRoot(t *testing.T) {
	assert.Equal(t, uint(0), proposal.BitPosition(idt.RootGlobalIndex))
	assert.Equal(t, uint(1), proposal.BitPosition(0))
	assert.Equal(t, uint(8), proposal.BitPosition(7))
	assert.Equal(t, 7, proposal.NodeIndex(proposal.BitPosition(7)))
	assert.Equal(t, idt.RootGlobalIndex, proposal.NodeIndex(0))

	err := recoverErr(func() { proposal.BitPosition(-2) })
	assert.ErrorIs(t, err, proposal.ErrBadIndex)
}

func TestProposal_NewIsEmpty(t *testing.T) {
	s := newScenario(t)
	p := proposal.New(region.New(), s.tree)

	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, uint32(0), p.Cost())
	assert.Equal(t, uint64(0), p.Benefit())
	assert.False(t, p.Contains(s.a))
	assert.Nil(t, p.Indices())

	p.EnsureInitialized()
	assert.True(t, p.IsEmpty(), "an allocated set with no bits is still empty")
}

func TestProposal_Scenario(t *testing.T) {
	s := newScenario(t)
	r := region.New()

	p := proposal.New(r, s.tree)
	p.AddNode(s.a)
	assert.Equal(t, uint32(10), p.Cost())
	assert.Equal(t, uint64(100), p.Benefit())

	p.AddNode(s.b)
	assert.Equal(t, uint32(15), p.Cost())
	assert.Equal(t, uint64(140), p.Benefit())

	q := proposal.New(r, s.tree)
	q.AddNode(s.a)
	assert.True(t, p.Intersects(q))
	assert.True(t, q.Intersects(p))

	u := proposal.New(r, s.tree)
	u.UnionInPlace(p, q)
	assert.Equal(t, []int{0, 1}, u.Indices())
	assert.Equal(t, uint32(15), u.Cost())
	assert.Equal(t, uint64(140), u.Benefit())
}

func TestProposal_AddNodeIsIdempotent(t *testing.T) {
	s := newScenario(t)
	r := region.New()

	once := proposal.New(r, s.tree)
	once.AddNode(s.a)

	twice := proposal.New(r, s.tree)
	twice.AddNode(s.a)
	twice.AddNode(s.a)

	assert.True(t, once.SameMembers(twice))
	assert.Equal(t, once.Fingerprint(), twice.Fingerprint())
	assert.Equal(t, 1, twice.Len())
	assert.Equal(t, once.Cost(), twice.Cost())
}

func TestProposal_NoOpAddStillInvalidatesMemo(t *testing.T) {
	s := newScenario(t)
	tree := &countingIDT{IDT: s.tree}
	p := proposal.New(region.New(), tree)
	p.AddNode(s.a)

	require.Equal(t, uint32(10), p.Cost())
	after := tree.lookups
	_ = p.Cost()
	assert.Equal(t, after, tree.lookups, "fresh memo must not recompute")

	p.AddNode(s.a)
	require.Equal(t, uint32(10), p.Cost())
	assert.Greater(t, tree.lookups, after, "re-adding a member still marks the memo stale")
}

func TestProposal_Membership(t *testing.T) {
	s := newScenario(t)
	p := proposal.New(region.New(), s.tree)
	p.AddNode(s.b)

	assert.True(t, p.Contains(s.b))
	assert.False(t, p.Contains(s.a))
	assert.False(t, p.Contains(nil))
	assert.False(t, p.Contains(s.tree.Root()), "root is only a member when added explicitly")

	p.AddNode(s.tree.Root())
	assert.True(t, p.Contains(s.tree.Root()))
	assert.Equal(t, []int{idt.RootGlobalIndex, 1}, p.Indices())
}

func TestProposal_UnionIsDestructiveAssignment(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	extra, err := s.tree.AddChild(s.b, idt.NodeSpec{Name: "C", Cost: 1, Benefit: 1})
	require.NoError(t, err)

	a := proposal.New(r, s.tree)
	a.AddNode(s.a)
	b := proposal.New(r, s.tree)
	b.AddNode(s.b)

	dst := proposal.New(r, s.tree)
	dst.AddNode(extra)
	require.Equal(t, uint32(1), dst.Cost())

	dst.UnionInPlace(a, b)
	assert.Equal(t, []int{0, 1}, dst.Indices(), "prior membership is discarded")
	assert.False(t, dst.Contains(extra))
	assert.Equal(t, uint32(15), dst.Cost())

	assert.False(t, a.Intersects(b))
	assert.True(t, dst.Intersects(a))
	assert.True(t, dst.Intersects(b))
	assert.Equal(t, []int{0}, a.Indices(), "operands are not modified")
	assert.Equal(t, []int{1}, b.Indices())
}

func TestProposal_UnionAliasing(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	a := proposal.New(r, s.tree)
	a.AddNode(s.a)
	b := proposal.New(r, s.tree)
	b.AddNode(s.b)

	a.UnionInPlace(a, b)
	assert.Equal(t, []int{0, 1}, a.Indices())
	assert.Equal(t, uint32(15), a.Cost())

	c := proposal.New(r, s.tree)
	c.AddNode(s.a)
	b.UnionInPlace(c, b)
	assert.Equal(t, []int{0, 1}, b.Indices())

	b.UnionInPlace(b, b)
	assert.Equal(t, []int{0, 1}, b.Indices())
}

func TestProposal_UnionWithEmptyOperands(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	a := proposal.New(r, s.tree)
	a.AddNode(s.a)

	dst := proposal.New(r, s.tree)
	dst.UnionInPlace(proposal.Empty(), a)
	assert.Equal(t, []int{0}, dst.Indices())

	dst.UnionInPlace(proposal.Empty(), proposal.Empty())
	assert.True(t, dst.IsEmpty())
	assert.Equal(t, uint32(0), dst.Cost())

	fresh := proposal.New(r, s.tree)
	dst.UnionInPlace(fresh, a)
	assert.Equal(t, []int{0}, dst.Indices())
	assert.True(t, fresh.IsEmpty(), "operands are allocated but stay empty")

	assert.True(t, proposal.Empty().IsEmpty(), "the canonical empty proposal is never written")
}

func TestProposal_Intersects(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	p := proposal.New(r, s.tree)
	q := proposal.New(r, s.tree)

	assert.False(t, p.Intersects(q), "both unallocated")
	p.AddNode(s.a)
	assert.False(t, p.Intersects(q), "other unallocated")
	q.EnsureInitialized()
	assert.False(t, p.Intersects(q), "other allocated but empty")
	q.AddNode(s.b)
	assert.False(t, p.Intersects(q), "disjoint")
	q.AddNode(s.a)
	assert.True(t, p.Intersects(q))
	assert.False(t, p.Intersects(proposal.Empty()))
}

func TestProposal_ZeroCostRecomputesEveryRead(t *testing.T) {
	tr := idt.NewTree(idt.NodeSpec{Name: "root"})
	free, err := tr.AddChild(tr.RootNode(), idt.NodeSpec{Name: "free", Cost: 0, Benefit: 0})
	require.NoError(t, err)
	tree := &countingIDT{IDT: tr}

	p := proposal.New(region.New(), tree)
	p.AddNode(free)

	for i := 1; i <= 3; i++ {
		assert.Equal(t, uint32(0), p.Cost())
		assert.Equal(t, i, tree.lookups, "zero sentinel forces a recompute on read %d", i)
	}

	tracked := proposal.New(region.New(), tree, proposal.WithMemoPolicy(proposal.MemoTracked))
	tracked.AddNode(free)
	tree.lookups = 0
	assert.Equal(t, uint32(0), tracked.Cost())
	assert.Equal(t, uint64(0), tracked.Benefit())
	assert.Equal(t, uint32(0), tracked.Cost())
	assert.Equal(t, 1, tree.lookups, "tracked memo caches a genuine zero")
}

func TestProposal_RecomputeReflectsMutation(t *testing.T) {
	s := newScenario(t)
	for _, policy := range []proposal.MemoPolicy{proposal.MemoZeroSentinel, proposal.MemoTracked} {
		t.Run(policy.String(), func(t *testing.T) {
			p := proposal.New(region.New(), s.tree, proposal.WithMemoPolicy(policy))
			p.AddNode(s.a)
			assert.Equal(t, uint64(100), p.Benefit())
			p.AddNode(s.b)
			assert.Equal(t, uint64(140), p.Benefit())
			assert.Equal(t, uint32(15), p.Cost())
		})
	}
}

func TestProposal_MissingNodesAreSkipped(t *testing.T) {
	s := newScenario(t)
	leaf, err := s.tree.AddChild(s.a, idt.NodeSpec{Name: "leaf", Cost: 3, Benefit: 30})
	require.NoError(t, err)

	p := proposal.New(region.New(), s.tree)
	p.AddNode(s.a)
	p.AddNode(leaf)
	require.Equal(t, uint32(13), p.Cost())

	require.NoError(t, s.tree.Remove(leaf.GlobalIndex()))
	p.AddNode(s.a) // invalidate
	assert.Equal(t, uint32(10), p.Cost())
	assert.Equal(t, uint64(100), p.Benefit())
	assert.True(t, p.Contains(leaf), "membership keeps the stale index")
}

func TestProposal_Clone(t *testing.T) {
	s := newScenario(t)
	src := proposal.New(region.New(), s.tree, proposal.WithMemoPolicy(proposal.MemoTracked))
	src.AddNode(s.a)
	require.Equal(t, uint32(10), src.Cost())

	other := region.New()
	c := src.Clone(other)
	assert.Same(t, other, c.Region())
	assert.Equal(t, s.tree, c.IDT())
	assert.Equal(t, proposal.MemoTracked, c.MemoPolicy())
	assert.True(t, c.SameMembers(src))
	assert.Equal(t, uint32(10), c.Cost())

	c.AddNode(s.b)
	assert.False(t, src.Contains(s.b), "clone owns its own set")
	assert.Equal(t, uint32(15), c.Cost())

	blank := proposal.New(region.New(), s.tree).Clone(other)
	assert.True(t, blank.IsEmpty())

	fromEmpty := proposal.Empty().Clone(other)
	fromEmpty.EnsureInitialized()
	assert.True(t, fromEmpty.IsEmpty())
}

func TestProposal_Fingerprint(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	p := proposal.New(r, s.tree)
	q := proposal.New(r, s.tree)
	q.EnsureInitialized()

	assert.Equal(t, proposal.Empty().Fingerprint(), p.Fingerprint())
	assert.Equal(t, p.Fingerprint(), q.Fingerprint())

	p.AddNode(s.a)
	q.AddNode(s.b)
	assert.NotEqual(t, p.Fingerprint(), q.Fingerprint())
	assert.False(t, p.SameMembers(q))

	q.UnionInPlace(p, proposal.Empty())
	assert.Equal(t, p.Fingerprint(), q.Fingerprint())
	assert.True(t, p.SameMembers(q))
}

func TestProposal_ContractViolationsAreFatal(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	p := proposal.New(r, s.tree)

	cases := []struct {
		name string
		fn   func()
		want error
	}{
		{"nil region", func() { proposal.New(nil, s.tree) }, proposal.ErrNilRegion},
		{"clone into nil region", func() { p.Clone(nil) }, proposal.ErrNilRegion},
		{"nil node", func() { p.AddNode(nil) }, proposal.ErrNilNode},
		{"nil union operand", func() { p.UnionInPlace(nil, p) }, proposal.ErrNilProposal},
		{"nil intersects operand", func() { p.Intersects(nil) }, proposal.ErrNilProposal},
		{"add to empty", func() { proposal.Empty().AddNode(s.a) }, proposal.ErrImmutable},
		{"union into empty", func() { proposal.Empty().UnionInPlace(p, p) }, proposal.ErrImmutable},
		{"init empty", func() { proposal.Empty().EnsureInitialized() }, proposal.ErrImmutable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := recoverErr(tc.fn)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, errors.IsAssertionFailure(err))
		})
	}
}

func TestProposal_AggregateWithoutIDT(t *testing.T) {
	s := newScenario(t)
	p := proposal.New(region.New(), nil)
	assert.Equal(t, uint32(0), p.Cost(), "an empty proposal needs no IDT")

	p.AddNode(s.a)
	err := recoverErr(func() { p.Cost() })
	assert.ErrorIs(t, err, proposal.ErrNoIDT)
}

func TestProposal_ReleasedRegionIsFatal(t *testing.T) {
	s := newScenario(t)
	r := region.New()
	p := proposal.New(r, s.tree)
	r.Release()

	err := recoverErr(func() { p.AddNode(s.a) })
	assert.ErrorIs(t, err, region.ErrReleased)
}

func TestMemoPolicy_Parse(t *testing.T) {
	m, err := proposal.ParseMemoPolicy("tracked")
	require.NoError(t, err)
	assert.Equal(t, proposal.MemoTracked, m)

	m, err = proposal.ParseMemoPolicy("")
	require.NoError(t, err)
	assert.Equal(t, proposal.DefaultMemoPolicy, m)

	_, err = proposal.ParseMemoPolicy("lazy")
	assert.ErrorIs(t, err, proposal.ErrUnknownMemoPolicy)

	assert.Equal(t, "MemoPolicy(9)", proposal.MemoPolicy(9).String())
	assert.Panics(t, func() { proposal.WithMemoPolicy(proposal.MemoPolicy(9)) })
}
