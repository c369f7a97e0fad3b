// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvinline/idt"
)

const (
	methodChain    = "Chain"
	methodStar     = "Star"
	methodBalanced = "Balanced"

	minNodes = 1
)

// Chain returns a Constructor that hangs a call chain of n nodes below the
// parent: parent → c0 → c1 → … → c(n-1).
func Chain(n int) Constructor {
	return func(s *state, parent *idt.TreeNode, depth int) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minNodes, ErrTooFewNodes)
		}
		cur := parent
		for i := 0; i < n; i++ {
			next, err := s.add(methodChain, cur, depth+i+1)
			if err != nil {
				return err
			}
			cur = next
		}

		return nil
	}
}

// Star returns a Constructor that adds n sibling call sites below the parent.
func Star(n int) Constructor {
	return func(s *state, parent *idt.TreeNode, depth int) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minNodes, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			if _, err := s.add(methodStar, parent, depth+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Balanced returns a Constructor that grows a complete fanout-ary tree of
// the given depth below the parent, level by level, so global indices follow
// breadth-first order.
func Balanced(fanout, levels int) Constructor {
	return func(s *state, parent *idt.TreeNode, depth int) error {
		if fanout < minNodes {
			return fmt.Errorf("%s: fanout=%d < min=%d: %w", methodBalanced, fanout, minNodes, ErrTooFewNodes)
		}
		if levels < minNodes {
			return fmt.Errorf("%s: levels=%d < min=%d: %w", methodBalanced, levels, minNodes, ErrTooFewNodes)
		}
		frontier := []*idt.TreeNode{parent}
		for level := 1; level <= levels; level++ {
			next := make([]*idt.TreeNode, 0, len(frontier)*fanout)
			for _, p := range frontier {
				for k := 0; k < fanout; k++ {
					n, err := s.add(methodBalanced, p, depth+level)
					if err != nil {
						return err
					}
					next = append(next, n)
				}
			}
			frontier = next
		}

		return nil
	}
}

// Under applies cons below the node that the previous constructors created
// with the given ordinal. It lets fixtures combine shapes, e.g. a star whose
// second leaf carries a chain.
func Under(ordinal int, cons ...Constructor) Constructor {
	return func(s *state, _ *idt.TreeNode, _ int) error {
		target := s.tree.NodeByGlobalIndex(ordinal)
		tn, ok := target.(*idt.TreeNode)
		if !ok {
			return fmt.Errorf("Under(%d): %w", ordinal, idt.ErrNodeNotFound)
		}
		depth := 0
		for p := tn; !p.IsRoot(); p = p.Parent() {
			depth++
		}
		for _, fn := range cons {
			if err := fn(s, tn, depth); err != nil {
				return err
			}
		}

		return nil
	}
}
