package domain

import "context"

// BotGateway is the trading backend consumed by the dashboard: bot start,
// order placement, the primary chart source, and the bundled sample dataset.
type BotGateway interface {
	// StartBot asks the backend to start processing the symbol and returns
	// the resulting snapshot. Backend-reported failures come back as a
	// snapshot with Error set, not as a Go error.
	StartBot(ctx context.Context, symbol string) (*BotSnapshot, error)

	// FetchSampleData loads the default sample dataset.
	FetchSampleData(ctx context.Context) (*BotSnapshot, error)

	// FetchChart fetches the primary close-price series for symbol/timeframe.
	FetchChart(ctx context.Context, symbol, timeframe string) (*ChartSeries, error)

	// PlaceOrder submits an order and returns the backend's verdict.
	// Rejections come back as a non-success OrderResult, not as a Go error.
	PlaceOrder(ctx context.Context, order OrderRequest) (*OrderResult, error)

	// HealthCheck probes whether the backend is reachable.
	HealthCheck(ctx context.Context) error
}

// ChartProvider is a secondary chart data source used when the primary source
// returns no usable series. It must produce the same series shape the
// renderer consumes.
type ChartProvider interface {
	FetchSeries(ctx context.Context, symbol, timeframe string) (*ChartSeries, error)
}

// SpotProvider supplies last traded prices for the watchlist refresh job.
type SpotProvider interface {
	FetchSpotPrice(ctx context.Context, symbol string) (float64, error)
}
