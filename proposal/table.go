// SPDX-License-Identifier: MIT

package proposal

import "github.com/katalvlaran/lvinline/region"

// Table is a dense rows×cols grid of proposal references, stored row-major.
// A nil cell means "never set" and reads as Empty().
type Table struct {
	rows, cols int
	cells      []*Proposal
	region     *region.Region
}

// NewTable allocates a rows×cols table from r. Zero-sized axes are allowed
// (every Get then yields Empty()); negative ones panic with ErrBadShape.
func NewTable(r *region.Region, rows, cols int) *Table {
	if r == nil {
		fatalf(ErrNilRegion, "NewTable")
	}
	if rows < 0 || cols < 0 {
		fatalf(ErrBadShape, "NewTable(%d, %d)", rows, cols)
	}

	return &Table{
		rows:   rows,
		cols:   cols,
		cells:  region.NewCells[*Proposal](r, rows*cols),
		region: r,
	}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// inRange reports whether (row, col) addresses a cell.
func (t *Table) inRange(row, col int) bool {
	return row >= 0 && row < t.rows && col >= 0 && col < t.cols
}

// Get returns the proposal stored at (row, col). Unset cells and
// out-of-range coordinates yield Empty(); Get never fails.
// Complexity: O(1).
func (t *Table) Get(row, col int) *Proposal {
	if !t.inRange(row, col) {
		return Empty()
	}
	if p := t.cells[row*t.cols+col]; p != nil {
		return p
	}

	return Empty()
}

// IsSet reports whether (row, col) holds a stored proposal.
func (t *Table) IsSet(row, col int) bool {
	return t.inRange(row, col) && t.cells[row*t.cols+col] != nil
}

// Set stores p at (row, col), replacing any previous reference.
// Panics with ErrNilProposal for a nil p and ErrOutOfRange for a bad index.
// Complexity: O(1).
func (t *Table) Set(row, col int, p *Proposal) {
	if p == nil {
		fatalf(ErrNilProposal, "Table.Set(%d, %d)", row, col)
	}
	if row < 0 || row >= t.rows {
		fatalf(ErrOutOfRange, "Table.Set: row %d not in [0, %d)", row, t.rows)
	}
	if col < 0 || col >= t.cols {
		fatalf(ErrOutOfRange, "Table.Set: col %d not in [0, %d)", col, t.cols)
	}
	t.cells[row*t.cols+col] = p
}

// Reset forgets every stored reference; all cells read as Empty() again.
func (t *Table) Reset() {
	for i := range t.cells {
		t.cells[i] = nil
	}
}

// Region returns the region the table was allocated from.
func (t *Table) Region() *region.Region { return t.region }
