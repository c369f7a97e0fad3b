// SPDX-License-Identifier: MIT

package idt

import "fmt"

// Root returns the root node.
func (t *Tree) Root() Node { return t.root }

// RootNode returns the root as its concrete type, for use with AddChild.
func (t *Tree) RootNode() *TreeNode { return t.root }

// AddChild appends a new call site below parent and assigns it the next
// global index.
//
// Errors:
//   - ErrNilParent if parent is nil.
//   - ErrForeignParent if parent was created by another Tree.
//   - ErrNodeNotFound if parent was removed.
//
// Complexity: O(1) amortized.
func (t *Tree) AddChild(parent *TreeNode, spec NodeSpec) (*TreeNode, error) {
	if parent == nil {
		return nil, ErrNilParent
	}
	if parent.tree != t {
		return nil, ErrForeignParent
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if parent.index != RootGlobalIndex && t.byIndex[parent.index] == nil {
		return nil, fmt.Errorf("AddChild: parent #%d: %w", parent.index, ErrNodeNotFound)
	}

	n := &TreeNode{tree: t, index: len(t.byIndex), parent: parent, spec: spec}
	t.byIndex = append(t.byIndex, n)
	parent.children = append(parent.children, n)
	t.live++

	return n, nil
}

// NodeByGlobalIndex returns the node with global index i. The root is
// returned for RootGlobalIndex; nil is returned for unknown or removed indices.
// Complexity: O(1).
func (t *Tree) NodeByGlobalIndex(i int) Node {
	if i == RootGlobalIndex {
		return t.root
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if i < 0 || i >= len(t.byIndex) || t.byIndex[i] == nil {
		// returning a typed nil would break callers' nil checks
		return nil
	}

	return t.byIndex[i]
}

// Size returns the number of live non-root nodes.
func (t *Tree) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.live
}

// IndexSpan returns one past the highest global index ever assigned.
// Proposals over this tree never need more than IndexSpan()+1 bits.
func (t *Tree) IndexSpan() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byIndex)
}

// Nodes returns the live non-root nodes in ascending global index order.
// Complexity: O(N).
func (t *Tree) Nodes() []*TreeNode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*TreeNode, 0, t.live)
	for _, n := range t.byIndex {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// Remove detaches the leaf with global index i. The index is retired, so
// NodeByGlobalIndex(i) returns nil from now on.
//
// Errors:
//   - ErrRemoveRoot for RootGlobalIndex.
//   - ErrNodeNotFound for unknown or already removed indices.
//   - ErrHasChildren if the node still has children.
func (t *Tree) Remove(i int) error {
	if i == RootGlobalIndex {
		return ErrRemoveRoot
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.byIndex) || t.byIndex[i] == nil {
		return fmt.Errorf("Remove(#%d): %w", i, ErrNodeNotFound)
	}
	n := t.byIndex[i]
	if len(n.children) > 0 {
		return fmt.Errorf("Remove(#%d): %w", i, ErrHasChildren)
	}

	siblings := n.parent.children
	for k, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:k:k], siblings[k+1:]...)
			break
		}
	}
	t.byIndex[i] = nil
	t.live--

	return nil
}
