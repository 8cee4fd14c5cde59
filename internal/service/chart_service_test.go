package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tradedeck/internal/domain"
	"tradedeck/internal/render"
)

// fakeGateway implements domain.BotGateway with scripted chart responses.
type fakeGateway struct {
	mu          sync.Mutex
	chartSeries *domain.ChartSeries
	chartErr    error
	chartCalls  int

	placeResult *domain.OrderResult
	placeErr    error
	lastOrder   domain.OrderRequest
	placeCalls  int
}

func (f *fakeGateway) StartBot(ctx context.Context, symbol string) (*domain.BotSnapshot, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeGateway) FetchSampleData(ctx context.Context) (*domain.BotSnapshot, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeGateway) FetchChart(ctx context.Context, symbol, timeframe string) (*domain.ChartSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chartCalls++
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.chartSeries, nil
}

func (f *fakeGateway) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placeCalls++
	f.lastOrder = order
	return f.placeResult, f.placeErr
}

func (f *fakeGateway) HealthCheck(ctx context.Context) error { return nil }

// fakeProvider implements domain.ChartProvider and records its calls.
type fakeProvider struct {
	mu            sync.Mutex
	series        *domain.ChartSeries
	err           error
	calls         int
	lastSymbol    string
	lastTimeframe string
}

func (f *fakeProvider) FetchSeries(ctx context.Context, symbol, timeframe string) (*domain.ChartSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastSymbol = symbol
	f.lastTimeframe = timeframe
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

func closePtr(v float64) *float64 { return &v }

func primarySeries(symbol string) *domain.ChartSeries {
	return &domain.ChartSeries{
		Symbol:    symbol,
		Timeframe: "5m",
		Source:    domain.SourcePrimary,
		Points: []domain.SeriesPoint{
			{Date: "2025-08-22 09:15:00", Close: closePtr(3500)},
			{Date: "2025-08-22 09:20:00", Close: closePtr(3502)},
		},
	}
}

func fallbackSeries(symbol string) *domain.ChartSeries {
	return &domain.ChartSeries{
		Symbol:    symbol,
		Timeframe: "5m",
		Source:    domain.SourceFallback,
		Points: []domain.SeriesPoint{
			{Time: "2025-08-22 09:15:00", CloseAlt: closePtr(3499)},
		},
	}
}

func TestLoad_PrimaryDataUsesPrimaryStyling(t *testing.T) {
	gateway := &fakeGateway{chartSeries: primarySeries("TCS")}
	fallback := &fakeProvider{}
	svc := NewChartService(gateway, fallback)

	view, err := svc.Load(context.Background(), "tcs", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Color != render.ColorPrimary {
		t.Errorf("expected primary color, got %s", view.Color)
	}
	if fallback.calls != 0 {
		t.Errorf("expected no fallback call, got %d", fallback.calls)
	}
	if view.Timeframe != "5m" {
		t.Errorf("expected default timeframe 5m, got %s", view.Timeframe)
	}
	if len(view.Values) != 2 {
		t.Errorf("expected 2 values, got %d", len(view.Values))
	}
}

func TestLoad_EmptyPrimaryTriggersExactlyOneFallback(t *testing.T) {
	gateway := &fakeGateway{chartSeries: &domain.ChartSeries{Symbol: "TCS", Source: domain.SourcePrimary}}
	fallback := &fakeProvider{series: fallbackSeries("TCS")}
	svc := NewChartService(gateway, fallback)

	view, err := svc.Load(context.Background(), "TCS", "15m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.calls != 1 {
		t.Fatalf("expected exactly one fallback call, got %d", fallback.calls)
	}
	if fallback.lastSymbol != "TCS" || fallback.lastTimeframe != "15m" {
		t.Errorf("fallback called with (%s, %s), want (TCS, 15m)", fallback.lastSymbol, fallback.lastTimeframe)
	}
	if view.Color != render.ColorFallback {
		t.Errorf("expected fallback color, got %s", view.Color)
	}
}

func TestLoad_PrimaryErrorFallsBack(t *testing.T) {
	gateway := &fakeGateway{chartErr: errors.New("status=500")}
	fallback := &fakeProvider{series: fallbackSeries("TCS")}
	svc := NewChartService(gateway, fallback)

	view, err := svc.Load(context.Background(), "TCS", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Source != domain.SourceFallback {
		t.Errorf("expected fallback source, got %s", view.Source)
	}
}

func TestLoad_BothSourcesFailing(t *testing.T) {
	gateway := &fakeGateway{chartErr: errors.New("primary down")}
	fallback := &fakeProvider{err: errors.New("yahoo down")}
	svc := NewChartService(gateway, fallback)

	if _, err := svc.Load(context.Background(), "TCS", ""); err == nil {
		t.Fatal("expected error when both sources fail")
	}
	if _, loading := svc.View(); loading {
		t.Error("expected loading flag cleared after failure")
	}
}

func TestLoad_MissingSymbol(t *testing.T) {
	svc := NewChartService(&fakeGateway{}, &fakeProvider{})

	_, err := svc.Load(context.Background(), "  ", "5m")
	if !errors.Is(err, domain.ErrSymbolRequired) {
		t.Fatalf("expected ErrSymbolRequired, got %v", err)
	}
	if gw, ok := svc.gateway.(*fakeGateway); ok && gw.chartCalls != 0 {
		t.Errorf("expected no network activity, got %d calls", gw.chartCalls)
	}
}

func TestLoad_StaleCompletionDoesNotOverwriteNewerView(t *testing.T) {
	gateway := &fakeGateway{chartSeries: primarySeries("TCS")}
	fallback := &fakeProvider{}
	svc := NewChartService(gateway, fallback)

	// First load takes generation 1 but completes after a newer load.
	svc.mu.Lock()
	svc.gen++
	staleGen := svc.gen
	svc.mu.Unlock()

	// Newer load runs to completion and installs its view.
	newer, err := svc.Load(context.Background(), "INFY", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The stale load now tries to commit.
	stale := render.BuildChartView(primarySeries("TCS"))
	if svc.finish(staleGen, stale) {
		t.Fatal("expected stale commit to be rejected")
	}

	view, _ := svc.View()
	if view.Symbol != newer.Symbol {
		t.Errorf("expected view for %s to survive, got %s", newer.Symbol, view.Symbol)
	}
}
