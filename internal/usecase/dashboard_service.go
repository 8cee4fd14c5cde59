package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"tradedeck/internal/domain"
	"tradedeck/internal/store"
)

// DashboardService orchestrates the watchlist and results table: seeding,
// bot triggers, and row removal. The guiding rule is availability over
// correctness: when the backend cannot produce live data the table is filled
// from the sample dataset rather than left empty.
type DashboardService struct {
	gateway   domain.BotGateway
	watchlist *store.WatchlistStore
	table     *store.ResultTable
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(gateway domain.BotGateway, watchlist *store.WatchlistStore, table *store.ResultTable) *DashboardService {
	return &DashboardService{
		gateway:   gateway,
		watchlist: watchlist,
		table:     table,
	}
}

// Seed populates the watchlist with the configured default symbols and loads
// the sample dataset so the table is never empty at startup.
func (s *DashboardService) Seed(ctx context.Context, symbols []string) {
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" {
			continue
		}
		s.watchlist.Add(symbol)
	}
	log.Printf("[INFO] dashboard: seeded watchlist with %d symbol(s)", s.watchlist.Len())

	if err := s.LoadSampleData(ctx); err != nil {
		log.Printf("[WARN] dashboard: initial sample load failed: %v", err)
	}
}

// TriggerBot starts backend processing for a symbol and merges the returned
// snapshot into the table. A backend-reported error or unusable payload is
// not fatal: it is logged and the sample dataset is loaded instead, with no
// retry of the original request. Transport failures also fall back to sample
// data but are surfaced to the caller.
func (s *DashboardService) TriggerBot(ctx context.Context, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return domain.ErrSymbolRequired
	}

	snapshot, err := s.gateway.StartBot(ctx, symbol)
	if err != nil {
		log.Printf("[ERROR] dashboard: start-bot failed for %s: %v", symbol, err)
		if sampleErr := s.LoadSampleData(ctx); sampleErr != nil {
			log.Printf("[WARN] dashboard: sample fallback failed: %v", sampleErr)
		}
		return fmt.Errorf("start-bot failed for %s: %w", symbol, err)
	}

	if !snapshot.Usable() {
		if snapshot.Error != "" {
			log.Printf("[WARN] dashboard: backend error for %s: %s, loading sample data", symbol, snapshot.Error)
		} else {
			log.Printf("[WARN] dashboard: unusable start-bot payload for %s, loading sample data", symbol)
		}
		if sampleErr := s.LoadSampleData(ctx); sampleErr != nil {
			log.Printf("[WARN] dashboard: sample fallback failed: %v", sampleErr)
		}
		return nil
	}

	s.table.Upsert(snapshot.Row())
	log.Printf("[OK] dashboard: merged live data for %s", snapshot.Symbol)
	return nil
}

// LoadSampleData fetches the default sample dataset and merges it into the
// table.
func (s *DashboardService) LoadSampleData(ctx context.Context) error {
	sample, err := s.gateway.FetchSampleData(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sample data: %w", err)
	}
	if !s.table.Upsert(sample.Row()) {
		return fmt.Errorf("sample dataset carries no symbol")
	}
	log.Printf("[INFO] dashboard: sample data loaded for %s", sample.Symbol)
	return nil
}

// AddToWatchlist appends a symbol to the watchlist. Duplicates are allowed.
func (s *DashboardService) AddToWatchlist(symbol string) (domain.WatchlistEntry, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return domain.WatchlistEntry{}, domain.ErrSymbolRequired
	}
	return s.watchlist.Add(symbol), nil
}

// RemoveFromWatchlist removes the entry with the given handle.
func (s *DashboardService) RemoveFromWatchlist(id uuid.UUID) bool {
	return s.watchlist.Remove(id)
}

// RemoveStock deletes every results-table row for the symbol and returns the
// count. Removing all matches tolerates the should-be-impossible duplicate
// row case.
func (s *DashboardService) RemoveStock(symbol string) int {
	return s.table.RemoveAll(strings.ToUpper(strings.TrimSpace(symbol)))
}

// Watchlist returns the current watchlist entries.
func (s *DashboardService) Watchlist() []domain.WatchlistEntry {
	return s.watchlist.Entries()
}

// TableRows returns the current results-table snapshot.
func (s *DashboardService) TableRows() []domain.ResultRow {
	return s.table.Rows()
}
