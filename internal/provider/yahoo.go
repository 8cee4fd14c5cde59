package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"tradedeck/internal/domain"
	"tradedeck/internal/utils"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements the fallback chart and spot-price source using the
// Yahoo Finance public chart API.
type YahooProvider struct {
	BaseURL   string
	Suffix    string            // exchange suffix appended to plain symbols, e.g. ".NS"
	SymbolMap map[string]string // overrides for symbols that don't follow the suffix rule
	Client    *http.Client
}

// NewYahooProvider creates a new Yahoo Finance provider. Plain equity symbols
// get the exchange suffix appended; index tickers (^NSEI) and already
// qualified symbols pass through untouched.
func NewYahooProvider(suffix string) *YahooProvider {
	if suffix == "" {
		suffix = ".NS"
	}
	return &YahooProvider{
		BaseURL:   defaultYahooBaseURL,
		Suffix:    suffix,
		SymbolMap: map[string]string{},
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *YahooProvider) yahooSymbol(symbol string) string {
	if mapped, ok := p.SymbolMap[symbol]; ok {
		return mapped
	}
	if strings.ContainsAny(symbol, ".^=") {
		return symbol
	}
	return symbol + p.Suffix
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (p *YahooProvider) fetchChart(ctx context.Context, symbol, interval, rng string) (*yahooChart, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		p.BaseURL, url.PathEscape(p.yahooSymbol(symbol)), interval, rng)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	return &chart, nil
}

// FetchSeries fetches a close-price series shaped exactly like the primary
// provider's, tagged as fallback data. Bars without a close (holidays,
// halted sessions) are skipped.
func (p *YahooProvider) FetchSeries(ctx context.Context, symbol, timeframe string) (*domain.ChartSeries, error) {
	interval := utils.YahooInterval(timeframe)

	chart, err := p.fetchChart(ctx, symbol, interval, utils.YahooRange(interval))
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	type bar struct {
		ts    int64
		close float64
	}
	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bars = append(bars, bar{ts: ts, close: *quote.Close[i]})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })

	points := make([]domain.SeriesPoint, 0, len(bars))
	for _, b := range bars {
		closePrice := b.close
		points = append(points, domain.SeriesPoint{
			Time:     time.Unix(b.ts, 0).UTC().Format("2006-01-02 15:04:05"),
			CloseAlt: &closePrice,
		})
	}

	return &domain.ChartSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Source:    domain.SourceFallback,
		Points:    points,
	}, nil
}

// FetchSpotPrice returns the latest daily close for the symbol.
func (p *YahooProvider) FetchSpotPrice(ctx context.Context, symbol string) (float64, error) {
	chart, err := p.fetchChart(ctx, symbol, "1d", "1d")
	if err != nil {
		return 0, err
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return 0, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	for i := len(quote.Close) - 1; i >= 0; i-- {
		if quote.Close[i] != nil {
			return *quote.Close[i], nil
		}
	}
	return 0, fmt.Errorf("yahoo: no price data for %s", symbol)
}
