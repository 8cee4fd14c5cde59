package usecase

import (
	"context"
	"errors"
	"testing"

	"tradedeck/internal/domain"
	"tradedeck/internal/store"
)

// fakeGateway implements domain.BotGateway with scripted bot and sample
// responses.
type fakeGateway struct {
	botSnapshot *domain.BotSnapshot
	botErr      error
	botCalls    int

	sample      *domain.BotSnapshot
	sampleErr   error
	sampleCalls int
}

func (f *fakeGateway) StartBot(ctx context.Context, symbol string) (*domain.BotSnapshot, error) {
	f.botCalls++
	return f.botSnapshot, f.botErr
}

func (f *fakeGateway) FetchSampleData(ctx context.Context) (*domain.BotSnapshot, error) {
	f.sampleCalls++
	return f.sample, f.sampleErr
}

func (f *fakeGateway) FetchChart(ctx context.Context, symbol, timeframe string) (*domain.ChartSeries, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeGateway) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeGateway) HealthCheck(ctx context.Context) error { return nil }

func price(v float64) *float64 { return &v }

func newService(gateway domain.BotGateway) (*DashboardService, *store.ResultTable) {
	table := store.NewResultTable()
	return NewDashboardService(gateway, store.NewWatchlistStore(), table), table
}

func TestTriggerBot_UsablePayloadMergesRow(t *testing.T) {
	gateway := &fakeGateway{
		botSnapshot: &domain.BotSnapshot{Symbol: "TCS", LTP: price(3500), Prediction: "N/A"},
	}
	svc, table := newService(gateway)

	if err := svc.TriggerBot(context.Background(), " tcs "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := table.Rows()
	if len(rows) != 1 || rows[0].Symbol != "TCS" {
		t.Fatalf("expected one TCS row, got %+v", rows)
	}
	if gateway.sampleCalls != 0 {
		t.Errorf("expected no sample fallback, got %d calls", gateway.sampleCalls)
	}
}

func TestTriggerBot_BackendErrorLoadsSampleInstead(t *testing.T) {
	gateway := &fakeGateway{
		botSnapshot: &domain.BotSnapshot{Symbol: "TCS", Error: "rate limited"},
		sample:      &domain.BotSnapshot{Symbol: "ACC", LTP: price(1900)},
	}
	svc, table := newService(gateway)

	if err := svc.TriggerBot(context.Background(), "TCS"); err != nil {
		t.Fatalf("backend-reported error should not be fatal, got %v", err)
	}

	rows := table.Rows()
	if len(rows) != 1 || rows[0].Symbol != "ACC" {
		t.Fatalf("expected only the sample row ACC, got %+v", rows)
	}
	if gateway.botCalls != 1 {
		t.Errorf("expected no retry of start-bot, got %d calls", gateway.botCalls)
	}
}

func TestTriggerBot_TransportFailureSurfacesAndFallsBack(t *testing.T) {
	gateway := &fakeGateway{
		botErr: errors.New("connection refused"),
		sample: &domain.BotSnapshot{Symbol: "ACC"},
	}
	svc, table := newService(gateway)

	if err := svc.TriggerBot(context.Background(), "TCS"); err == nil {
		t.Fatal("expected transport failure to be surfaced")
	}
	if gateway.sampleCalls != 1 {
		t.Errorf("expected sample fallback, got %d calls", gateway.sampleCalls)
	}
	if table.Len() != 1 {
		t.Errorf("expected sample row in table, got %d rows", table.Len())
	}
}

func TestTriggerBot_EmptySymbolSendsNothing(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _ := newService(gateway)

	if err := svc.TriggerBot(context.Background(), "   "); !errors.Is(err, domain.ErrSymbolRequired) {
		t.Fatalf("expected ErrSymbolRequired, got %v", err)
	}
	if gateway.botCalls != 0 || gateway.sampleCalls != 0 {
		t.Error("expected no request at all for empty symbol")
	}
}

func TestTriggerBot_PayloadWithoutSymbolFallsBack(t *testing.T) {
	gateway := &fakeGateway{
		botSnapshot: &domain.BotSnapshot{LTP: price(100)},
		sample:      &domain.BotSnapshot{Symbol: "ACC"},
	}
	svc, table := newService(gateway)

	if err := svc.TriggerBot(context.Background(), "TCS"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := table.Rows()
	if len(rows) != 1 || rows[0].Symbol != "ACC" {
		t.Fatalf("expected sample row only, got %+v", rows)
	}
}

func TestSeed_PopulatesWatchlistAndSample(t *testing.T) {
	gateway := &fakeGateway{sample: &domain.BotSnapshot{Symbol: "ACC", LTP: price(1900)}}
	watchlist := store.NewWatchlistStore()
	table := store.NewResultTable()
	svc := NewDashboardService(gateway, watchlist, table)

	svc.Seed(context.Background(), []string{"reliance", " TCS ", ""})

	if watchlist.Len() != 2 {
		t.Errorf("expected 2 watchlist entries, got %d", watchlist.Len())
	}
	symbols := watchlist.Symbols()
	if symbols[0] != "RELIANCE" || symbols[1] != "TCS" {
		t.Errorf("expected normalized symbols, got %v", symbols)
	}
	if table.Len() != 1 {
		t.Errorf("expected sample row loaded, got %d rows", table.Len())
	}
}

func TestRemoveStock_NormalizesSymbol(t *testing.T) {
	gateway := &fakeGateway{}
	svc, table := newService(gateway)
	table.Upsert(domain.ResultRow{Symbol: "TCS"})

	if removed := svc.RemoveStock(" tcs "); removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
}
