package engine

import (
	"github.com/cabewaldrop/tinytable/internal/row"
	"github.com/cabewaldrop/tinytable/internal/table"
)

// Cursor is a forward-only scan over a table's rows in insertion order.
// Rows are decoded lazily, one per Next call.
//
// Usage:
//
//	cur := exec.Select()
//	for cur.Next() {
//	    r := cur.Row()
//	    ...
//	}
//	if err := cur.Err(); err != nil { ... }
type Cursor struct {
	table *table.Table
	end   uint32 // row count captured at cursor creation
	next  uint32
	cur   row.Row
	err   error
}

func newCursor(t *table.Table) *Cursor {
	return &Cursor{
		table: t,
		end:   t.NumRows(),
	}
}

// Next advances the cursor. It returns false when the scan is exhausted or
// a decode fails; check Err to tell the two apart.
func (c *Cursor) Next() bool {
	if c.err != nil || c.next >= c.end {
		return false
	}

	r, err := c.table.RowAt(c.next)
	if err != nil {
		c.err = err
		return false
	}

	c.cur = r
	c.next++
	return true
}

// Row returns the row the cursor is positioned on. Only valid after a
// Next call that returned true.
func (c *Cursor) Row() row.Row {
	return c.cur
}

// Err returns the first error the scan hit, if any.
func (c *Cursor) Err() error {
	return c.err
}
