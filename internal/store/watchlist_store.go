package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tradedeck/internal/domain"
)

// WatchlistStore is the in-memory watchlist. Adding never deduplicates, so
// the same symbol can appear on multiple rows; removal is by entry handle.
type WatchlistStore struct {
	mu      sync.RWMutex
	entries []domain.WatchlistEntry
}

// NewWatchlistStore creates an empty watchlist store.
func NewWatchlistStore() *WatchlistStore {
	return &WatchlistStore{}
}

// Add appends a new entry for the symbol and returns it.
func (s *WatchlistStore) Add(symbol string) domain.WatchlistEntry {
	entry := domain.WatchlistEntry{
		ID:      uuid.New(),
		Symbol:  symbol,
		AddedAt: time.Now(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry
}

// Remove deletes the entry with the given handle. Returns false if no such
// entry exists.
func (s *WatchlistStore) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the watchlist in insertion order.
func (s *WatchlistStore) Entries() []domain.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WatchlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Symbols returns the distinct symbols currently on the watchlist, in first
// appearance order. Duplicate rows collapse to one refresh target.
func (s *WatchlistStore) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.entries))
	symbols := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		if seen[entry.Symbol] {
			continue
		}
		seen[entry.Symbol] = true
		symbols = append(symbols, entry.Symbol)
	}
	return symbols
}

// Len returns the number of entries, duplicates included.
func (s *WatchlistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
