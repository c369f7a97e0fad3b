// SPDX-License-Identifier: MIT

package idt

// GlobalIndex implements Node.
func (n *TreeNode) GlobalIndex() int { return n.index }

// ParentGlobalIndex implements Node.
func (n *TreeNode) ParentGlobalIndex() int {
	if n.parent == nil {
		return RootGlobalIndex
	}

	return n.parent.index
}

func (n *TreeNode) ByteCodeIndex() int { return n.spec.ByteCodeIndex }
func (n *TreeNode) ByteCodeSize() int  { return n.spec.ByteCodeSize }
func (n *TreeNode) Cost() uint32       { return n.spec.Cost }
func (n *TreeNode) Benefit() uint64    { return n.spec.Benefit }
func (n *TreeNode) Budget() int        { return n.spec.Budget }
func (n *TreeNode) Signature() string  { return n.spec.Signature }
func (n *TreeNode) Name() string       { return n.spec.Name }

// NumChildren implements Node.
func (n *TreeNode) NumChildren() int {
	n.tree.mu.RLock()
	defer n.tree.mu.RUnlock()

	return len(n.children)
}

// Child implements Node. Out-of-range i yields nil.
func (n *TreeNode) Child(i int) Node {
	n.tree.mu.RLock()
	defer n.tree.mu.RUnlock()
	if i < 0 || i >= len(n.children) {
		return nil
	}

	return n.children[i]
}

// Parent returns the parent node, or nil for the root.
func (n *TreeNode) Parent() *TreeNode { return n.parent }

// IsRoot reports whether n is the tree root.
func (n *TreeNode) IsRoot() bool { return n.index == RootGlobalIndex }
