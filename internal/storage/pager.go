// Package storage - Pager component
//
// EDUCATIONAL NOTES:
// ------------------
// The Pager owns the table's pages. It sits between the table's logical
// row addressing and the raw memory blocks.
//
// Key responsibilities:
// 1. Lazy allocation - a page is created the first time any row in its
//    range is touched, so an empty table holds no pages at all
// 2. Capacity bounding - at most MaxPages pages ever exist
// 3. Deterministic release - Release drops every page exactly once
//
// In a disk-backed database the pager would also read and write pages at
// file offsets and cache them in a buffer pool; the in-memory map here is
// the degenerate case where every page is always "cached".

package storage

import (
	"github.com/pkg/errors"
)

const (
	// MaxPages is the hard cap on pages a single pager will allocate.
	MaxPages = 100
)

// ErrPageOutOfRange is returned for a page index at or beyond MaxPages.
// Reaching it indicates a bug in the caller's capacity check, not a
// user-facing condition.
var ErrPageOutOfRange = errors.New("page index out of range")

// ErrPagerReleased is returned when a pager is used after Release.
var ErrPagerReleased = errors.New("pager already released")

// Pager is a capacity-bounded, sparse collection of lazily allocated pages.
// The zero number of pages is valid; slots populate on first access.
type Pager struct {
	pages map[uint32]*Page
}

// NewPager creates an empty pager with no pages allocated.
func NewPager() *Pager {
	return &Pager{
		pages: make(map[uint32]*Page),
	}
}

// Page returns page pageNum, allocating a zeroed page on first access.
func (p *Pager) Page(pageNum uint32) (*Page, error) {
	if p.pages == nil {
		return nil, ErrPagerReleased
	}
	if pageNum >= MaxPages {
		return nil, errors.Wrapf(ErrPageOutOfRange, "page %d, max %d", pageNum, MaxPages)
	}

	page, ok := p.pages[pageNum]
	if !ok {
		page = NewPage()
		p.pages[pageNum] = page
	}
	return page, nil
}

// PageCount returns the number of pages allocated so far.
func (p *Pager) PageCount() int {
	return len(p.pages)
}

// Release drops every allocated page. The pager is unusable afterwards;
// calling Release again is a no-op.
//
// With a garbage collector "release" means cutting the references, so
// nothing keeps the table's memory alive past its lifetime.
func (p *Pager) Release() {
	p.pages = nil
}

// Released reports whether Release has been called.
func (p *Pager) Released() bool {
	return p.pages == nil
}
