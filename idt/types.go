// SPDX-License-Identifier: MIT

package idt

import (
	"errors"
	"sync"
)

// RootGlobalIndex is the global index carried by the root of every tree.
const RootGlobalIndex = -1

// Sentinel errors for tree construction.
var (
	// ErrNilParent indicates AddChild was called without a parent.
	ErrNilParent = errors.New("idt: parent node is nil")

	// ErrForeignParent indicates the parent does not belong to this tree.
	ErrForeignParent = errors.New("idt: parent belongs to another tree")

	// ErrNodeNotFound indicates a global index that is not (or no longer) in the tree.
	ErrNodeNotFound = errors.New("idt: node not found")

	// ErrHasChildren indicates Remove was asked to detach an inner node.
	ErrHasChildren = errors.New("idt: node has children")

	// ErrRemoveRoot indicates Remove was asked to detach the root.
	ErrRemoveRoot = errors.New("idt: root cannot be removed")
)

// Node is the read-only view of one call site in an IDT.
type Node interface {
	// GlobalIndex is the dense index of this node; RootGlobalIndex for the root.
	GlobalIndex() int

	// ParentGlobalIndex is the parent's index; RootGlobalIndex for top-level
	// call sites and for the root itself.
	ParentGlobalIndex() int

	// ByteCodeIndex is the call-site position inside the caller.
	ByteCodeIndex() int

	// ByteCodeSize is the size of the callee's byte code.
	ByteCodeSize() int

	Cost() uint32
	Benefit() uint64
	Budget() int

	NumChildren() int

	// Child returns the i-th child in insertion order, or nil if i is out of range.
	Child(i int) Node

	// Signature identifies the resolved target method.
	Signature() string

	// Name is a short human label used in diagnostics.
	Name() string
}

// IDT is the tree contract the proposal layer relies on.
type IDT interface {
	Root() Node

	// NodeByGlobalIndex returns nil for indices not present in the tree.
	NodeByGlobalIndex(i int) Node
}

// NodeSpec carries the per-node model used when adding a node to a Tree.
type NodeSpec struct {
	Name          string
	Signature     string
	ByteCodeIndex int
	ByteCodeSize  int
	Cost          uint32
	Benefit       uint64
	Budget        int
}

// TreeNode is the concrete Node stored by Tree.
type TreeNode struct {
	tree     *Tree
	index    int
	parent   *TreeNode
	children []*TreeNode
	spec     NodeSpec
}

// Tree is an in-memory IDT.
//
// byIndex[i] holds the node with global index i, or nil once it was removed.
type Tree struct {
	mu      sync.RWMutex
	root    *TreeNode
	byIndex []*TreeNode
	live    int
}

// NewTree creates a tree whose root is described by root.
// Complexity: O(1).
func NewTree(root NodeSpec) *Tree {
	t := &Tree{}
	t.root = &TreeNode{tree: t, index: RootGlobalIndex, spec: root}

	return t
}

var (
	_ IDT  = (*Tree)(nil)
	_ Node = (*TreeNode)(nil)
)
