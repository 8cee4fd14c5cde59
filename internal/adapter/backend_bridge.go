package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tradedeck/internal/domain"
)

// BackendBridge implements domain.BotGateway against the trading backend's
// HTTP API.
type BackendBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendBridge creates a new trading backend bridge.
func NewBackendBridge(baseURL string) *BackendBridge {
	return &BackendBridge{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// startBotRequest is the wire body for the start-bot endpoint.
type startBotRequest struct {
	Symbol string `json:"symbol"`
}

// StartBot asks the backend to start processing the symbol. The backend
// reports semantic failures (rate limits, unknown symbols) inside the payload
// rather than through transport errors, so those come back as a snapshot with
// Error set and a nil Go error.
func (b *BackendBridge) StartBot(ctx context.Context, symbol string) (*domain.BotSnapshot, error) {
	jsonData, err := json.Marshal(startBotRequest{Symbol: symbol})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal start-bot request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/start-bot", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create start-bot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call start-bot: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read start-bot response: %w", err)
	}

	// Error payloads arrive with non-2xx status codes but still decode into
	// the snapshot shape; only an undecodable body is a transport failure.
	var snapshot domain.BotSnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("start-bot returned unusable payload: status=%d, body=%s", resp.StatusCode, string(body))
	}

	return &snapshot, nil
}

// FetchSampleData loads the default sample dataset served by the backend.
func (b *BackendBridge) FetchSampleData(ctx context.Context) (*domain.BotSnapshot, error) {
	endpoint := fmt.Sprintf("%s/static/data/sample_data.json", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sample data request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sample data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sample data fetch failed: status=%d", resp.StatusCode)
	}

	var snapshot domain.BotSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode sample data: %w", err)
	}

	return &snapshot, nil
}

// chartPayload is the backend's chart response envelope.
type chartPayload struct {
	Status string               `json:"status,omitempty"`
	Symbol string               `json:"symbol"`
	Source string               `json:"source,omitempty"`
	Data   []domain.SeriesPoint `json:"data"`
}

// FetchChart fetches the primary close-price series. An OK response with an
// empty data array is not an error here; the caller decides whether to fall
// back.
func (b *BackendBridge) FetchChart(ctx context.Context, symbol, timeframe string) (*domain.ChartSeries, error) {
	endpoint := fmt.Sprintf("%s/chart/%s?timeframe=%s",
		b.baseURL, url.PathEscape(symbol), url.QueryEscape(timeframe))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call chart endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chart fetch failed for %s: status=%d, body=%s", symbol, resp.StatusCode, string(body))
	}

	var payload chartPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}

	source := payload.Source
	if source == "" {
		source = domain.SourcePrimary
	}

	return &domain.ChartSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Source:    source,
		Points:    payload.Data,
	}, nil
}

// PlaceOrder submits an order. Backend rejections arrive as non-2xx responses
// with a decodable {status, message} body; those come back as a non-success
// OrderResult so the caller can surface the server's text.
func (b *BackendBridge) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	jsonData, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/place-order", b.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create place-order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call place-order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read place-order response: %w", err)
	}

	var result domain.OrderResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("place-order returned unusable payload: status=%d, body=%s", resp.StatusCode, string(body))
	}

	return &result, nil
}

// HealthCheck probes the backend root route.
func (b *BackendBridge) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", b.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach trading backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("trading backend is unhealthy: status=%d", resp.StatusCode)
	}

	return nil
}
