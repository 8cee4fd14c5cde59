package render

import (
	"strconv"

	"tradedeck/internal/domain"
)

// Placeholder text for missing optional fields; rendered literally rather
// than omitting the cell.
const (
	PlaceholderLTP        = "N/A"
	PlaceholderPrediction = "-"
)

// TableRow is one rendered results-table row. All cells are display strings.
type TableRow struct {
	Symbol     string `json:"symbol"`
	LTP        string `json:"ltp"`
	Prediction string `json:"prediction"`
}

// BuildTableRows projects result rows into their rendered form, substituting
// placeholders for missing values.
func BuildTableRows(rows []domain.ResultRow) []TableRow {
	out := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		rendered := TableRow{
			Symbol:     row.Symbol,
			LTP:        PlaceholderLTP,
			Prediction: row.Prediction,
		}
		if row.LTP != nil {
			rendered.LTP = strconv.FormatFloat(*row.LTP, 'f', 2, 64)
		}
		if rendered.Prediction == "" {
			rendered.Prediction = PlaceholderPrediction
		}
		out = append(out, rendered)
	}
	return out
}
