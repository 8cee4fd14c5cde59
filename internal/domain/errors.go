package domain

import "errors"

var (
	// ErrSymbolRequired is returned when an operation needs a non-empty
	// symbol and the caller supplied none. No request is issued in that case.
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrNoOpenTicket is returned when an order submit or close references a
	// ticket that is not the currently open one.
	ErrNoOpenTicket = errors.New("no matching open order ticket")
)
