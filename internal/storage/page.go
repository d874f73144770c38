// Package storage implements the page-based memory layer for tinytable.
//
// EDUCATIONAL NOTES:
// ------------------
// Real databases store data in fixed-size blocks called "pages" (typically
// 4KB or 8KB). tinytable keeps every page in memory, but the geometry is
// the same one an on-disk layout would use:
// 1. Fixed-size blocks - a page is always exactly PageSize bytes
// 2. Packed rows - rows sit back to back with no per-row header
// 3. O(1) addressing - a row's slot is pure arithmetic on its index
//
// Bytes past the last whole row in a page are never used; a row never
// straddles a page boundary.

package storage

import (
	"github.com/cabewaldrop/tinytable/internal/row"
)

const (
	// PageSize is the size of each page in bytes.
	// 4KB matches the virtual memory page size on most systems, so one
	// database page maps to one OS page.
	PageSize = 4096

	// RowsPerPage is how many whole rows fit in a page.
	RowsPerPage = PageSize / row.RowSize
)

// Page is a fixed-size block holding up to RowsPerPage packed rows.
// A new page starts zeroed, which doubles as the padding for text fields.
type Page struct {
	data [PageSize]byte
}

// NewPage allocates a zeroed page.
func NewPage() *Page {
	return &Page{}
}

// RowSlot returns the RowSize-byte sub-slice for the given in-page slot.
// slot must be in [0, RowsPerPage); the slice expression bounds-checks it.
func (p *Page) RowSlot(slot uint32) []byte {
	offset := slot * uint32(row.RowSize)
	return p.data[offset : offset+uint32(row.RowSize)]
}

// Data returns the full page buffer. Used by tests to inspect raw layout.
func (p *Page) Data() []byte {
	return p.data[:]
}
