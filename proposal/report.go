// SPDX-License-Identifier: MIT

package proposal

import (
	"fmt"

	"github.com/katalvlaran/lvinline/bfs"
	"github.com/katalvlaran/lvinline/idt"
	"github.com/katalvlaran/lvinline/trace"
)

// Report line layouts.
const (
	reportEmpty  = "#Proposal: empty"
	reportHeader = "#Proposal: %d methods inlined into %s, cost: %d"
	reportNode   = "#Proposal: #%d : #%d %s @%d -> bcsz=%d %s target %s, benefit = %d, cost = %d, budget = %d"

	markInlined    = "INLINED"
	markNotInlined = "NOT inlined"
)

// Report writes a breadth-first listing of the IDT to sink, marking every
// non-root node as inlined or not by this proposal. opts.Proposals routes
// lines to sink.Trace and opts.Verbose to sink.Verbose; with both disabled
// Report does nothing. Neither the proposal membership nor the tree is
// changed (reading the header cost may refresh the memo).
//
// Panics with ErrNoIDT if p has members but no IDT.
func (p *Proposal) Report(sink trace.Sink, opts trace.Options) {
	if sink == nil || !opts.Enabled() {
		return
	}
	emit := func(line string) {
		if opts.Proposals {
			sink.Trace(line)
		}
		if opts.Verbose {
			sink.Verbose(line)
		}
	}

	if p.nodes == nil {
		emit(reportEmpty)
		return
	}
	if p.tree == nil {
		fatalf(ErrNoIDT, "Report")
	}

	root := p.tree.Root()
	emit(fmt.Sprintf(reportHeader, p.inlinedCount(), root.Name(), p.Cost()))

	// OnVisit never fails, so the walk cannot return an error here.
	_, _ = bfs.BFS(p.tree, bfs.WithStart(root), bfs.WithOnVisit(func(n idt.Node, _ int) error {
		if n.GlobalIndex() == idt.RootGlobalIndex {
			return nil
		}
		mark := markNotInlined
		if p.nodes.Test(BitPosition(n.GlobalIndex())) {
			mark = markInlined
		}
		emit(fmt.Sprintf(reportNode,
			n.GlobalIndex(),
			n.ParentGlobalIndex(),
			mark,
			n.ByteCodeIndex(),
			n.ByteCodeSize(),
			n.Signature(),
			n.Name(),
			n.Benefit(),
			n.Cost(),
			n.Budget(),
		))
		return nil
	}))
}

// inlinedCount is the number of members excluding the root slot.
func (p *Proposal) inlinedCount() int {
	count := p.Len()
	if p.nodes.Test(BitPosition(idt.RootGlobalIndex)) {
		count--
	}

	return count
}
