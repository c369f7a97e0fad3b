// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvinline/idt"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  idt.Node
	depth int
}

// walker holds the state of one traversal.
type walker struct {
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS walks t breadth-first starting at its root, applying any number of
// functional Options.
// Returns ErrTreeNil or ErrNoRoot for invalid input, ErrOptionViolation for
// bad options, or any user-supplied hook error.
func BFS(t idt.IDT, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	// resolve options; a rejected one fails the walk up front
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := o.Start
	if start == nil {
		start = t.Root()
	}
	if start == nil {
		return nil, ErrNoRoot
	}

	w := &walker{
		opts:    o,
		visited: make(map[int]bool),
		res: &BFSResult{
			Depth: make(map[int]int),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(n idt.Node, d int) {
	w.visited[n.GlobalIndex()] = true
	w.res.Depth[n.GlobalIndex()] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the queue head and runs OnDequeue on it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at #%d: %w", item.node.GlobalIndex(), err)
	}

	return nil
}

// enqueueChildren applies filtering and MaxDepth, then enqueues each unseen child.
func (w *walker) enqueueChildren(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	count := item.node.NumChildren()
	for i := 0; i < count; i++ {
		child := item.node.Child(i)
		if child == nil || !w.opts.FilterChild(item.node, child) {
			continue
		}
		if !w.visited[child.GlobalIndex()] {
			w.enqueue(child, nextDepth)
		}
	}
}
