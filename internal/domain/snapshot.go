package domain

import "time"

// BotSnapshot is the backend's response to a start-bot request, and also the
// shape of the bundled sample dataset. Only symbol is guaranteed; a snapshot
// may instead carry an error message from the backend.
type BotSnapshot struct {
	Symbol     string   `json:"symbol"`
	LTP        *float64 `json:"ltp,omitempty"`
	Open       *float64 `json:"open,omitempty"`
	High       *float64 `json:"high,omitempty"`
	Low        *float64 `json:"low,omitempty"`
	Close      *float64 `json:"close,omitempty"`
	BuyPrice   *float64 `json:"buy_price,omitempty"`
	SellPrice  *float64 `json:"sell_price,omitempty"`
	Prediction string   `json:"prediction,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Usable reports whether the snapshot can be merged into the results table.
func (s *BotSnapshot) Usable() bool {
	return s != nil && s.Error == "" && s.Symbol != ""
}

// Row converts the snapshot into a result table row.
func (s *BotSnapshot) Row() ResultRow {
	return ResultRow{
		Symbol:     s.Symbol,
		LTP:        s.LTP,
		Prediction: s.Prediction,
		UpdatedAt:  time.Now(),
	}
}
