package utils

// DefaultTimeframe is used when a chart request carries no timeframe.
const DefaultTimeframe = "5m"

// yahooIntervals maps dashboard timeframes onto the intervals Yahoo Finance
// actually serves. Timeframes without a native interval snap to the nearest
// coarser one.
var yahooIntervals = map[string]string{
	"1m":  "1m",
	"3m":  "1m",
	"5m":  "5m",
	"10m": "5m",
	"15m": "15m",
	"30m": "30m",
	"1h":  "60m",
	"1d":  "1d",
}

// YahooInterval resolves a dashboard timeframe to a Yahoo chart interval.
// Unknown timeframes resolve to the default.
func YahooInterval(timeframe string) string {
	if interval, ok := yahooIntervals[timeframe]; ok {
		return interval
	}
	return yahooIntervals[DefaultTimeframe]
}

// YahooRange returns the history window to request for an interval: intraday
// intervals get the last trading week, daily gets a month.
func YahooRange(interval string) string {
	if interval == "1d" {
		return "1mo"
	}
	return "7d"
}
