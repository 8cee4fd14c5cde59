package domain

import "time"

// ResultRow is one row of the results table, keyed by symbol. LTP and
// prediction are optional; missing values are rendered as placeholders, not
// omitted.
type ResultRow struct {
	Symbol     string    `json:"symbol"`
	LTP        *float64  `json:"ltp,omitempty"`
	Prediction string    `json:"prediction,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
