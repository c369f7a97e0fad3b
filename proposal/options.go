// SPDX-License-Identifier: MIT

package proposal

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// MemoPolicy selects how a proposal tracks whether its aggregates are current.
type MemoPolicy int

const (
	// MemoZeroSentinel treats a zero cost (or benefit) as "not computed".
	MemoZeroSentinel MemoPolicy = iota

	// MemoTracked keeps an explicit fresh flag; zero aggregates are cached.
	MemoTracked
)

// DefaultMemoPolicy is the policy used when no option overrides it.
const DefaultMemoPolicy = MemoZeroSentinel

var memoPolicyNames = map[MemoPolicy]string{
	MemoZeroSentinel: "zero-sentinel",
	MemoTracked:      "tracked",
}

// String implements fmt.Stringer.
func (m MemoPolicy) String() string {
	if s, ok := memoPolicyNames[m]; ok {
		return s
	}

	return fmt.Sprintf("MemoPolicy(%d)", int(m))
}

// ParseMemoPolicy maps "zero-sentinel" or "tracked" to a policy.
// The empty string selects DefaultMemoPolicy.
func ParseMemoPolicy(s string) (MemoPolicy, error) {
	if s == "" {
		return DefaultMemoPolicy, nil
	}
	for m, name := range memoPolicyNames {
		if name == s {
			return m, nil
		}
	}

	return DefaultMemoPolicy, errors.Wrapf(ErrUnknownMemoPolicy, "%q", s)
}

// Option configures a proposal at construction.
type Option func(*Proposal)

// WithMemoPolicy selects the memo policy. Panics on an unknown policy value.
func WithMemoPolicy(m MemoPolicy) Option {
	if _, ok := memoPolicyNames[m]; !ok {
		panic(fmt.Sprintf("proposal: WithMemoPolicy(%d): unknown policy", int(m)))
	}

	return func(p *Proposal) { p.policy = m }
}
