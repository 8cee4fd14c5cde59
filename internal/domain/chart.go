package domain

// Chart data provenance
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// SeriesPoint is one bar as delivered by a chart provider. The primary
// backend labels its fields Date/Close while the Yahoo fallback uses
// time/close; both spellings are kept on the point and the renderer picks
// whichever is set.
type SeriesPoint struct {
	Date     string   `json:"Date,omitempty"`
	Time     string   `json:"time,omitempty"`
	Close    *float64 `json:"Close,omitempty"`
	CloseAlt *float64 `json:"close,omitempty"`
}

// ChartSeries is an ordered close-price series for one symbol/timeframe,
// tagged with the provider that produced it. Series are fetched fresh on
// every request and never cached; a later load fully replaces the rendered
// view.
type ChartSeries struct {
	Symbol    string        `json:"symbol"`
	Timeframe string        `json:"timeframe"`
	Source    string        `json:"source"`
	Points    []SeriesPoint `json:"data"`
}

// Empty reports whether the series carries no usable bars.
func (s *ChartSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}
