// Package table maps logical row numbers onto page storage.
//
// EDUCATIONAL NOTES:
// ------------------
// The table is a thin layer of arithmetic over the pager. Given a row
// number it answers one question: which bytes hold that row?
//
//	page   = rowNum / RowsPerPage
//	offset = (rowNum % RowsPerPage) * RowSize
//
// Because the answer depends only on the row number, there is no index to
// maintain and no free-space bookkeeping: the table is append-only and
// rows are located in O(1).

package table

import (
	"github.com/pkg/errors"

	"github.com/cabewaldrop/tinytable/internal/row"
	"github.com/cabewaldrop/tinytable/internal/storage"
)

// MaxRows is the hard capacity of a table: every slot of every page.
const MaxRows = storage.RowsPerPage * storage.MaxPages

// ErrTableFull is returned by inserts once the table holds MaxRows rows.
var ErrTableFull = errors.New("table full")

// ErrRowOutOfRange is returned when a row number at or beyond MaxRows is
// located. The execution engine checks capacity before locating, so hitting
// this error means a bug, not bad user input.
var ErrRowOutOfRange = errors.New("row number out of range")

// Table is an append-only, capacity-bounded collection of fixed-width rows
// backed by lazily allocated pages.
type Table struct {
	pager   *storage.Pager
	numRows uint32
}

// New creates an empty table ready for inserts. No pages are allocated
// until the first row is written.
func New() *Table {
	return &Table{
		pager: storage.NewPager(),
	}
}

// NumRows returns how many rows the table currently holds.
func (t *Table) NumRows() uint32 {
	return t.numRows
}

// IsFull reports whether the table has reached MaxRows.
func (t *Table) IsFull() bool {
	return t.numRows >= MaxRows
}

// PageCount returns how many pages have been allocated so far.
func (t *Table) PageCount() int {
	return t.pager.PageCount()
}

// RowSlot returns the mutable RowSize-byte range for rowNum, allocating the
// containing page on first touch. The same rowNum always maps to the same
// bytes until the table is closed.
func (t *Table) RowSlot(rowNum uint32) ([]byte, error) {
	if rowNum >= MaxRows {
		return nil, errors.Wrapf(ErrRowOutOfRange, "row %d, max %d", rowNum, MaxRows)
	}

	pageNum := rowNum / storage.RowsPerPage
	page, err := t.pager.Page(pageNum)
	if err != nil {
		return nil, errors.Wrapf(err, "locating row %d", rowNum)
	}

	return page.RowSlot(rowNum % storage.RowsPerPage), nil
}

// Append writes r into the next free slot and bumps the row count.
// The caller validates field widths first; Append only enforces capacity.
// On any failure the table is left unchanged.
func (t *Table) Append(r row.Row) error {
	if t.IsFull() {
		return ErrTableFull
	}

	slot, err := t.RowSlot(t.numRows)
	if err != nil {
		return err
	}

	r.Serialize(slot)
	t.numRows++
	return nil
}

// RowAt decodes the row stored at rowNum. rowNum must be below NumRows.
func (t *Table) RowAt(rowNum uint32) (row.Row, error) {
	if rowNum >= t.numRows {
		return row.Row{}, errors.Wrapf(ErrRowOutOfRange, "row %d, have %d", rowNum, t.numRows)
	}

	slot, err := t.RowSlot(rowNum)
	if err != nil {
		return row.Row{}, err
	}
	return row.Deserialize(slot), nil
}

// Close releases every page the table owns. The table must not be used
// afterwards; closing twice is a no-op.
func (t *Table) Close() {
	t.pager.Release()
}
