package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"tradedeck/internal/domain"
	"tradedeck/internal/render"
	"tradedeck/internal/utils"
)

// ChartService loads chart data and owns the single rendered chart view.
// Loading tries the primary backend source first and hops to the fallback
// provider exactly once when the primary yields no usable series. Each load
// takes a generation token; a completion that lost the race to a newer load
// is discarded instead of overwriting the fresher view.
type ChartService struct {
	gateway  domain.BotGateway
	fallback domain.ChartProvider

	mu      sync.Mutex
	gen     uint64
	loading bool
	view    *render.ChartView
}

// NewChartService creates a new ChartService.
func NewChartService(gateway domain.BotGateway, fallback domain.ChartProvider) *ChartService {
	return &ChartService{
		gateway:  gateway,
		fallback: fallback,
	}
}

// Load fetches and renders the chart for symbol/timeframe. Timeframe defaults
// to 5m. The returned view is also installed as the current view unless a
// newer load has started in the meantime.
func (s *ChartService) Load(ctx context.Context, symbol, timeframe string) (*render.ChartView, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		log.Printf("[WARN] chart: load requested without symbol")
		return nil, domain.ErrSymbolRequired
	}
	if timeframe == "" {
		timeframe = utils.DefaultTimeframe
	}

	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.loading = true
	s.mu.Unlock()

	series, err := s.gateway.FetchChart(ctx, symbol, timeframe)
	if err != nil {
		log.Printf("[WARN] chart: primary fetch failed for %s: %v", symbol, err)
		series = nil
	}

	if series.Empty() {
		if err == nil {
			log.Printf("[INFO] chart: primary returned no data for %s, falling back", symbol)
		}
		series, err = s.fallback.FetchSeries(ctx, symbol, timeframe)
		if err != nil {
			s.finish(myGen, nil)
			return nil, fmt.Errorf("chart fallback failed for %s: %w", symbol, err)
		}
	}

	view := render.BuildChartView(series)
	if !s.finish(myGen, view) {
		log.Printf("[INFO] chart: discarding stale response for %s (superseded)", symbol)
	}
	return view, nil
}

// finish commits the view if this load is still the newest one. Returns
// whether the commit happened.
func (s *ChartService) finish(gen uint64, view *render.ChartView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.loading = false
	if view != nil {
		s.view = view
	}
	return true
}

// View returns the currently rendered chart (nil before the first successful
// load) and whether a load is in flight.
func (s *ChartService) View() (*render.ChartView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.loading
}
