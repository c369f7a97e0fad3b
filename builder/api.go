// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinline/idt"
)

// rootName is the name given to every fixture root.
const rootName = "root"

// Constructor grows the tree below parent. depth is parent's depth
// (0 for the root).
type Constructor func(b *state, parent *idt.TreeNode, depth int) error

// state is the per-build context handed to constructors.
type state struct {
	tree    *idt.Tree
	cfg     config
	ordinal int
}

// BuildTree creates a tree with a root named "root" and applies every
// constructor under that root, in order. Constructor errors are wrapped
// with "BuildTree: %w".
func BuildTree(opts []Option, cons ...Constructor) (*idt.Tree, error) {
	s := &state{
		tree: idt.NewTree(idt.NodeSpec{Name: rootName, Signature: rootName}),
		cfg:  newConfig(opts...),
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, s.tree.RootNode(), 0); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return s.tree, nil
}

// add creates the next node below parent using the configured models.
func (s *state) add(method string, parent *idt.TreeNode, depth int) (*idt.TreeNode, error) {
	ord := s.ordinal
	name := s.cfg.nameFn(ord)
	cost := s.cfg.costFn(s.cfg.rng, ord, depth)
	if cost > math.MaxUint32 {
		cost = math.MaxUint32
	}
	spec := idt.NodeSpec{
		Name:          name,
		Signature:     name + "()V",
		ByteCodeIndex: parent.NumChildren(),
		ByteCodeSize:  int(cost),
		Cost:          uint32(cost),
		Benefit:       s.cfg.benefitFn(s.cfg.rng, ord, depth),
		Budget:        int(s.cfg.budgetFn(s.cfg.rng, ord, depth)),
	}
	n, err := s.tree.AddChild(parent, spec)
	if err != nil {
		return nil, wrapf(method, "AddChild("+name+")", err)
	}
	s.ordinal++

	return n, nil
}
