package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistEntry is one row in the watchlist. Adding the same symbol twice
// creates two entries; each entry carries its own handle so removal always
// targets exactly one row.
type WatchlistEntry struct {
	ID      uuid.UUID `json:"id"`
	Symbol  string    `json:"symbol"`
	AddedAt time.Time `json:"added_at"`
}
