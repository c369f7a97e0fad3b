// SPDX-License-Identifier: MIT

package proposal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvinline/idt"
)

// scenario is root → {A(0): cost 10, benefit 100; B(1): cost 5, benefit 40}.
type scenario struct {
	tree *idt.Tree
	a, b *idt.TreeNode
}

func newScenario(t testing.TB) scenario {
	t.Helper()
	tr := idt.NewTree(idt.NodeSpec{Name: "Main.run", Signature: "Main.run()V"})
	a, err := tr.AddChild(tr.RootNode(), idt.NodeSpec{
		Name: "A", Signature: "Lib.a()I", ByteCodeIndex: 3, ByteCodeSize: 12, Cost: 10, Benefit: 100, Budget: 50,
	})
	require.NoError(t, err)
	b, err := tr.AddChild(tr.RootNode(), idt.NodeSpec{
		Name: "B", Signature: "Lib.b()I", ByteCodeIndex: 9, ByteCodeSize: 6, Cost: 5, Benefit: 40, Budget: 50,
	})
	require.NoError(t, err)

	return scenario{tree: tr, a: a, b: b}
}

// countingIDT counts NodeByGlobalIndex calls so tests can observe recomputation.
type countingIDT struct {
	idt.IDT
	lookups int
}

func (c *countingIDT) NodeByGlobalIndex(i int) idt.Node {
	c.lookups++
	return c.IDT.NodeByGlobalIndex(i)
}

// recoverErr runs fn and returns the error it panicked with, or nil.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
