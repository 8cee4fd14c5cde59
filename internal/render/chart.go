package render

import "tradedeck/internal/domain"

// Line colors encode provenance: fallback-sourced data is visibly distinct
// from primary data.
const (
	ColorPrimary  = "#2962ff"
	ColorFallback = "#ff6d00"
)

// ChartView is the fully rendered chart: parallel label/value slices plus the
// styling derived from the series source. It is a pure projection of a
// ChartSeries; building one has no side effects.
type ChartView struct {
	Symbol    string    `json:"symbol"`
	Timeframe string    `json:"timeframe"`
	Source    string    `json:"source"`
	Color     string    `json:"color"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

// BuildChartView projects a series into a renderable view. Labels prefer the
// named date field and fall back to the generic time field; values prefer the
// capitalized close field and fall back to the lowercase variant, so both
// provider schemas render without prior transformation. Points with no close
// at all are dropped.
func BuildChartView(series *domain.ChartSeries) *ChartView {
	view := &ChartView{
		Symbol:    series.Symbol,
		Timeframe: series.Timeframe,
		Source:    series.Source,
		Color:     ColorPrimary,
		Labels:    make([]string, 0, len(series.Points)),
		Values:    make([]float64, 0, len(series.Points)),
	}
	if series.Source == domain.SourceFallback {
		view.Color = ColorFallback
	}

	for _, point := range series.Points {
		value := point.Close
		if value == nil {
			value = point.CloseAlt
		}
		if value == nil {
			continue
		}

		label := point.Date
		if label == "" {
			label = point.Time
		}

		view.Labels = append(view.Labels, label)
		view.Values = append(view.Values, *value)
	}

	return view
}
