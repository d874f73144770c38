package storage

import (
	"testing"

	"github.com/cabewaldrop/tinytable/internal/row"
)

func TestPageGeometry(t *testing.T) {
	if RowsPerPage != 14 {
		t.Errorf("expected 14 rows per page for a 291-byte row, got %d", RowsPerPage)
	}
	if RowsPerPage*row.RowSize > PageSize {
		t.Errorf("rows overflow the page: %d * %d > %d", RowsPerPage, row.RowSize, PageSize)
	}
}

func TestRowSlotAddressing(t *testing.T) {
	page := NewPage()

	for slot := uint32(0); slot < RowsPerPage; slot++ {
		s := page.RowSlot(slot)
		if len(s) != row.RowSize {
			t.Fatalf("slot %d: expected %d bytes, got %d", slot, row.RowSize, len(s))
		}
	}

	// Slots must be packed back to back: writing the last byte of slot 0
	// must land immediately before the first byte of slot 1.
	page.RowSlot(0)[row.RowSize-1] = 0xAA
	page.RowSlot(1)[0] = 0xBB

	data := page.Data()
	if data[row.RowSize-1] != 0xAA {
		t.Error("slot 0 does not end at RowSize-1")
	}
	if data[row.RowSize] != 0xBB {
		t.Error("slot 1 does not start at RowSize")
	}
}

func TestRowSlotsDoNotOverlap(t *testing.T) {
	page := NewPage()

	fill := func(slot uint32, b byte) {
		s := page.RowSlot(slot)
		for i := range s {
			s[i] = b
		}
	}

	fill(0, 0x11)
	fill(1, 0x22)
	fill(0, 0x11) // rewrite to catch slot 1 clobbering slot 0

	for i, b := range page.RowSlot(1) {
		if b != 0x22 {
			t.Fatalf("slot 1 byte %d clobbered: got %#x", i, b)
		}
	}
}

func TestNewPageIsZeroed(t *testing.T) {
	page := NewPage()
	for i, b := range page.Data() {
		if b != 0 {
			t.Fatalf("byte %d of a fresh page is %#x, expected 0", i, b)
		}
	}
}
