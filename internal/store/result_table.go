package store

import (
	"log"
	"sync"
	"time"

	"tradedeck/internal/domain"
)

// ResultTable is the in-memory results table, keyed by symbol. It replaces
// the rendered table as the source of truth; views are projections of its
// snapshot. The upsert invariant is at most one row per symbol, enforced by a
// linear scan before insert.
type ResultTable struct {
	mu   sync.RWMutex
	rows []domain.ResultRow
}

// NewResultTable creates an empty results table.
func NewResultTable() *ResultTable {
	return &ResultTable{}
}

// Upsert merges a row into the table. A row without a symbol is rejected with
// a warning and the table is left unchanged. An existing row for the symbol
// is overwritten in place; otherwise the row is appended. Returns whether the
// table changed.
func (t *ResultTable) Upsert(row domain.ResultRow) bool {
	if row.Symbol == "" {
		log.Printf("[WARN] result table: upsert without symbol ignored")
		return false
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if t.rows[i].Symbol == row.Symbol {
			t.rows[i] = row
			return true
		}
	}
	t.rows = append(t.rows, row)
	return true
}

// UpsertLTP updates only the last traded price for a symbol, preserving any
// prediction already on the row. Creates the row if the symbol is new.
func (t *ResultTable) UpsertLTP(symbol string, ltp float64) {
	if symbol == "" {
		log.Printf("[WARN] result table: LTP update without symbol ignored")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for i := range t.rows {
		if t.rows[i].Symbol == symbol {
			t.rows[i].LTP = &ltp
			t.rows[i].UpdatedAt = now
			return
		}
	}
	t.rows = append(t.rows, domain.ResultRow{Symbol: symbol, LTP: &ltp, UpdatedAt: now})
}

// RemoveAll deletes every row whose symbol matches and returns how many were
// removed. Zero matches is not an error.
func (t *ResultTable) RemoveAll(symbol string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.rows[:0]
	removed := 0
	for _, row := range t.rows {
		if row.Symbol == symbol {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	t.rows = kept
	return removed
}

// Rows returns a snapshot of the table in insertion order.
func (t *ResultTable) Rows() []domain.ResultRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.ResultRow, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the current row count.
func (t *ResultTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
