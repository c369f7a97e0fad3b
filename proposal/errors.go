// SPDX-License-Identifier: MIT

package proposal

import "github.com/cockroachdb/errors"

// Sentinel errors. All but ErrUnknownMemoPolicy are raised through panics:
// they mark a bug in the calling driver, not a data condition.
var (
	// ErrNilNode indicates AddNode was called with a nil node.
	ErrNilNode = errors.New("proposal: node is nil")

	// ErrNilProposal indicates a nil proposal operand or table value.
	ErrNilProposal = errors.New("proposal: proposal is nil")

	// ErrNilRegion indicates a proposal or table was requested without a region.
	ErrNilRegion = errors.New("proposal: region is nil")

	// ErrNoIDT indicates aggregation or reporting of a non-empty proposal
	// that is not bound to an IDT.
	ErrNoIDT = errors.New("proposal: proposal has no IDT")

	// ErrBadIndex indicates a global index below the root index.
	ErrBadIndex = errors.New("proposal: invalid global index")

	// ErrImmutable indicates an attempt to mutate the canonical empty proposal.
	ErrImmutable = errors.New("proposal: canonical empty proposal is immutable")

	// ErrOutOfRange indicates a table write outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("proposal: table index out of range")

	// ErrBadShape indicates a table with negative dimensions.
	ErrBadShape = errors.New("proposal: invalid table shape")

	// ErrUnknownMemoPolicy is returned by ParseMemoPolicy.
	ErrUnknownMemoPolicy = errors.New("proposal: unknown memo policy")
)

// fatalf aborts the current operation with an assertion failure wrapping sentinel.
func fatalf(sentinel error, format string, args ...interface{}) {
	panic(errors.WithAssertionFailure(errors.Wrapf(sentinel, format, args...)))
}
