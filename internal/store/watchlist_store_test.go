package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestAdd_AllowsDuplicateSymbols(t *testing.T) {
	wl := NewWatchlistStore()

	first := wl.Add("TCS")
	second := wl.Add("TCS")

	if wl.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", wl.Len())
	}
	if first.ID == second.ID {
		t.Error("expected distinct handles for duplicate rows")
	}

	// Distinct symbols collapse for refresh purposes
	if symbols := wl.Symbols(); len(symbols) != 1 || symbols[0] != "TCS" {
		t.Errorf("expected distinct symbols [TCS], got %v", symbols)
	}
}

func TestRemove_TargetsExactlyOneRow(t *testing.T) {
	wl := NewWatchlistStore()
	first := wl.Add("TCS")
	wl.Add("TCS")

	if !wl.Remove(first.ID) {
		t.Fatal("expected removal to succeed")
	}
	if wl.Len() != 1 {
		t.Errorf("expected 1 entry left, got %d", wl.Len())
	}
	if wl.Remove(first.ID) {
		t.Error("expected second removal of same handle to fail")
	}
}

func TestRemove_UnknownHandle(t *testing.T) {
	wl := NewWatchlistStore()
	wl.Add("INFY")

	if wl.Remove(uuid.New()) {
		t.Error("expected removal of unknown handle to fail")
	}
	if wl.Len() != 1 {
		t.Errorf("expected entry untouched, got %d", wl.Len())
	}
}
