package infra

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"tradedeck/internal/domain"
	"tradedeck/internal/store"
)

// RefreshScheduler periodically refreshes the last traded price of every
// watchlist symbol so the results table stays warm between user actions.
// Prices come from the spot provider; per-symbol failures are logged and
// skipped, never fatal.
type RefreshScheduler struct {
	cron      *cron.Cron
	spec      string
	watchlist *store.WatchlistStore
	table     *store.ResultTable
	spot      domain.SpotProvider
}

// NewRefreshScheduler creates a new scheduler. spec is a standard cron
// expression; empty means every minute.
func NewRefreshScheduler(spec string, watchlist *store.WatchlistStore, table *store.ResultTable, spot domain.SpotProvider) *RefreshScheduler {
	if spec == "" {
		spec = "*/1 * * * *"
	}
	return &RefreshScheduler{
		cron:      cron.New(),
		spec:      spec,
		watchlist: watchlist,
		table:     table,
		spot:      spot,
	}
}

// Start registers and starts the refresh job.
func (s *RefreshScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		s.refresh(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[OK] refresh scheduler started (%s)", s.spec)
	return nil
}

// Stop stops the scheduler gracefully.
func (s *RefreshScheduler) Stop() {
	s.cron.Stop()
	log.Println("[OK] refresh scheduler stopped")
}

// RunNow performs one refresh pass immediately.
func (s *RefreshScheduler) RunNow() {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	s.refresh(ctx)
}

func (s *RefreshScheduler) refresh(ctx context.Context) {
	symbols := s.watchlist.Symbols()
	if len(symbols) == 0 {
		return
	}

	updated := 0
	for _, symbol := range symbols {
		price, err := s.spot.FetchSpotPrice(ctx, symbol)
		if err != nil {
			log.Printf("[WARN] refresh: spot price failed for %s: %v", symbol, err)
			continue
		}
		s.table.UpsertLTP(symbol, price)
		updated++
	}

	log.Printf("[INFO] refresh: updated %d/%d watchlist symbol(s)", updated, len(symbols))
}
