// SPDX-License-Identifier: MIT

package region

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// wordBits is the size of one bitset storage word.
const wordBits = 64

// Sentinel errors. Both are raised as panics: they signal a driver bug.
var (
	// ErrReleased indicates an allocation from a region that was already torn down.
	ErrReleased = errors.New("region: region already released")

	// ErrBadSize indicates a negative allocation request.
	ErrBadSize = errors.New("region: negative allocation size")
)

// Region is a bulk-freed allocation scope.
//
// live keeps every allocation reachable until Release so that the region,
// not the garbage collector's view of individual proposals, decides lifetime.
type Region struct {
	id       uuid.UUID
	released bool

	allocations int
	words       uint64
	live        []any
}

// New returns an empty, live region.
func New() *Region {
	return &Region{id: uuid.New()}
}

// ID returns the region identity.
func (r *Region) ID() uuid.UUID { return r.id }

// NewBitSet allocates a bit set able to hold bit positions [0, capacity)
// without growing. capacity may be zero; the set grows on demand.
func (r *Region) NewBitSet(capacity uint) *bitset.BitSet {
	r.mustBeLive("NewBitSet")
	b := bitset.New(capacity)
	r.account(b, uint64(capacity+wordBits-1)/wordBits)

	return b
}

// CloneBitSet allocates a copy of src from this region. A nil src yields a
// fresh empty set.
func (r *Region) CloneBitSet(src *bitset.BitSet) *bitset.BitSet {
	r.mustBeLive("CloneBitSet")
	if src == nil {
		return r.NewBitSet(0)
	}
	b := src.Clone()
	r.account(b, uint64(src.Len()+wordBits-1)/wordBits)

	return b
}

// NewCells allocates n zeroed cells of type T from r.
func NewCells[T any](r *Region, n int) []T {
	r.mustBeLive("NewCells")
	if n < 0 {
		panic(errors.WithAssertionFailure(errors.Wrapf(ErrBadSize, "NewCells(%d)", n)))
	}
	cells := make([]T, n)
	r.account(cells, uint64(n))

	return cells
}

// Release tears the region down. Calling it twice is harmless.
func (r *Region) Release() {
	r.released = true
	r.live = nil
}

// Released reports whether Release was called.
func (r *Region) Released() bool { return r.released }

// Allocations returns how many objects were allocated since New.
func (r *Region) Allocations() int { return r.allocations }

// Words returns the number of storage words requested since New.
// Bit sets count 64-bit words, cell slices count cells.
func (r *Region) Words() uint64 { return r.words }

func (r *Region) account(obj any, words uint64) {
	r.allocations++
	r.words += words
	r.live = append(r.live, obj)
}

func (r *Region) mustBeLive(op string) {
	if r == nil {
		panic(errors.AssertionFailedf("region: %s on nil region", op))
	}
	if r.released {
		panic(errors.WithAssertionFailure(errors.Wrapf(ErrReleased, "%s on region %s", op, r.id)))
	}
}
