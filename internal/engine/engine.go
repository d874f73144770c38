// Package engine implements statement execution against a table.
//
// EDUCATIONAL NOTES:
// ------------------
// The engine is the narrow waist between the front ends (REPL, TUI, web)
// and the storage core. Every insert, no matter which surface it arrived
// from, goes through the same two checks before a single byte is written:
// 1. Capacity - the table must have a free slot
// 2. Field widths - oversized text must never be copied into a page
//
// Because both checks happen before the encode, a failed insert leaves the
// table exactly as it was.

package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cabewaldrop/tinytable/internal/row"
	"github.com/cabewaldrop/tinytable/internal/sql/parser"
	"github.com/cabewaldrop/tinytable/internal/storage"
	"github.com/cabewaldrop/tinytable/internal/table"
)

// Executor runs statements against a single table.
type Executor struct {
	table *table.Table
}

// New creates an executor over an empty table.
func New() *Executor {
	return &Executor{table: table.New()}
}

// Table exposes the underlying table for stats and tests.
func (e *Executor) Table() *table.Table {
	return e.table
}

// Insert validates r and appends it to the table.
// Returns table.ErrTableFull or row.ErrFieldTooLong; on error the table
// is unchanged.
func (e *Executor) Insert(r row.Row) error {
	if e.table.IsFull() {
		return table.ErrTableFull
	}
	if err := r.Validate(); err != nil {
		return err
	}
	return errors.Wrap(e.table.Append(r), "insert")
}

// Select returns a fresh cursor over the table's rows in insertion order.
// Each call starts a new scan from the stored bytes, so the result always
// reflects the table as of the call.
func (e *Executor) Select() *Cursor {
	return newCursor(e.table)
}

// SelectAll materializes a full scan. Convenience for the web and UI
// layers, which render complete result sets anyway.
func (e *Executor) SelectAll() ([]row.Row, error) {
	rows := make([]row.Row, 0, e.table.NumRows())
	cur := e.Select()
	for cur.Next() {
		rows = append(rows, cur.Row())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Execute dispatches a parsed statement and renders its result.
func (e *Executor) Execute(stmt parser.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *parser.InsertStatement:
		if err := e.Insert(s.Row); err != nil {
			return nil, err
		}
		return &Result{Message: "Executed."}, nil

	case *parser.SelectStatement:
		rows, err := e.SelectAll()
		if err != nil {
			return nil, err
		}
		return newSelectResult(rows), nil

	default:
		return nil, errors.Errorf("unsupported statement type %T", stmt)
	}
}

// Stats describes the table's current shape for the stats surfaces.
type Stats struct {
	NumRows   uint32 `json:"num_rows"`
	MaxRows   uint32 `json:"max_rows"`
	PageCount int    `json:"page_count"`
	MaxPages  int    `json:"max_pages"`
}

// Stats reports row and page usage.
func (e *Executor) Stats() Stats {
	return Stats{
		NumRows:   e.table.NumRows(),
		MaxRows:   table.MaxRows,
		PageCount: e.table.PageCount(),
		MaxPages:  storage.MaxPages,
	}
}

// String formats stats for the REPL's .stats command.
func (s Stats) String() string {
	return fmt.Sprintf("rows: %d/%d, pages: %d/%d", s.NumRows, s.MaxRows, s.PageCount, s.MaxPages)
}

// Close releases the table's pages. The executor must not be used after.
func (e *Executor) Close() {
	e.table.Close()
}
