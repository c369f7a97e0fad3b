// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvinline/idt"
)

// Sentinel errors returned by BFS.
var (
	// ErrTreeNil is returned if a nil tree is passed.
	ErrTreeNil = errors.New("bfs: tree is nil")

	// ErrNoRoot is returned when the tree has no root and no start node was given.
	ErrNoRoot = errors.New("bfs: tree has no root")

	// ErrOptionViolation wraps every rejected Option.
	ErrOptionViolation = errors.New("bfs: invalid option")
)

// Option tunes a walk. A rejected Option is remembered and reported by BFS
// before any node is visited.
type Option func(*BFSOptions)

// BFSOptions is the resolved walk configuration.
type BFSOptions struct {
	// Start overrides the tree root as the first node to visit.
	Start idt.Node

	// OnEnqueue sees each node once, when it joins the queue.
	OnEnqueue func(n idt.Node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n idt.Node, depth int)

	// OnVisit runs in visit order. A non-nil error ends the walk.
	OnVisit func(n idt.Node, depth int) error

	// MaxDepth bounds the distance from Start; 0 means unbounded.
	MaxDepth int

	// FilterChild prunes the subtree under child when it returns false.
	FilterChild func(parent, child idt.Node) bool

	// first rejected option
	err error
}

// DefaultOptions walks the whole tree from its root with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue:   func(idt.Node, int) {},
		OnDequeue:   func(idt.Node, int) {},
		OnVisit:     func(idt.Node, int) error { return nil },
		MaxDepth:    0,
		FilterChild: func(_, _ idt.Node) bool { return true },
		err:         nil,
	}
}

// WithStart begins the walk at n instead of the root.
func WithStart(n idt.Node) Option {
	return func(o *BFSOptions) {
		if n != nil {
			o.Start = n
		}
	}
}

// WithOnEnqueue sets OnEnqueue; nil keeps the current hook.
func WithOnEnqueue(fn func(n idt.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets OnDequeue; nil keeps the current hook.
func WithOnDequeue(fn func(n idt.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets OnVisit; nil keeps the current hook.
func WithOnVisit(fn func(n idt.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth visits nodes up to depth d inclusive. Zero removes the limit;
// a negative d is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: WithMaxDepth(%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterChild skips a child (and its subtree) when fn returns false.
func WithFilterChild(fn func(parent, child idt.Node) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// BFSResult lists visited nodes in order; Depth maps a global index to its
// edge distance from the start node.
type BFSResult struct {
	Order []idt.Node
	Depth map[int]int
}

// Indices returns the global indices of Order, in visit sequence.
func (r *BFSResult) Indices() []int {
	out := make([]int, len(r.Order))
	for i, n := range r.Order {
		out[i] = n.GlobalIndex()
	}

	return out
}
