package storage

import (
	"errors"
	"testing"
)

func TestPagerLazyAllocation(t *testing.T) {
	pager := NewPager()

	if pager.PageCount() != 0 {
		t.Errorf("fresh pager should hold no pages, got %d", pager.PageCount())
	}

	// Touching a page allocates it.
	if _, err := pager.Page(0); err != nil {
		t.Fatalf("Page(0) failed: %v", err)
	}
	if pager.PageCount() != 1 {
		t.Errorf("expected 1 page after first touch, got %d", pager.PageCount())
	}

	// Touching the same page again must not allocate another.
	if _, err := pager.Page(0); err != nil {
		t.Fatalf("Page(0) failed: %v", err)
	}
	if pager.PageCount() != 1 {
		t.Errorf("expected 1 page after repeat touch, got %d", pager.PageCount())
	}
}

func TestPagerSparseAllocation(t *testing.T) {
	pager := NewPager()

	// Touching a high page must not allocate the pages below it.
	if _, err := pager.Page(7); err != nil {
		t.Fatalf("Page(7) failed: %v", err)
	}
	if pager.PageCount() != 1 {
		t.Errorf("expected only page 7 allocated, got %d pages", pager.PageCount())
	}
}

func TestPagerReturnsSamePage(t *testing.T) {
	pager := NewPager()

	first, err := pager.Page(3)
	if err != nil {
		t.Fatalf("Page(3) failed: %v", err)
	}
	second, err := pager.Page(3)
	if err != nil {
		t.Fatalf("Page(3) failed: %v", err)
	}

	if first != second {
		t.Error("repeat access must return the identical page")
	}
}

func TestPagerCapacityBound(t *testing.T) {
	pager := NewPager()

	if _, err := pager.Page(MaxPages - 1); err != nil {
		t.Errorf("last valid page should allocate: %v", err)
	}

	_, err := pager.Page(MaxPages)
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("expected ErrPageOutOfRange, got %v", err)
	}
}

func TestPagerRelease(t *testing.T) {
	pager := NewPager()
	if _, err := pager.Page(0); err != nil {
		t.Fatalf("Page(0) failed: %v", err)
	}

	pager.Release()
	if !pager.Released() {
		t.Error("pager should report released")
	}
	if pager.PageCount() != 0 {
		t.Errorf("released pager should hold no pages, got %d", pager.PageCount())
	}

	if _, err := pager.Page(0); !errors.Is(err, ErrPagerReleased) {
		t.Errorf("expected ErrPagerReleased, got %v", err)
	}

	// Releasing twice is harmless.
	pager.Release()
}
