package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction sides. The dialog accepts any string for side; these are the
// values the UI actually sends.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// OrderTicket is the context of one open order dialog: which symbol and side
// the user is ordering. Each ticket carries its own identity so a submit can
// never pick up a stale context from a previously opened dialog.
type OrderTicket struct {
	ID       uuid.UUID `json:"id"`
	Symbol   string    `json:"symbol"`
	Side     string    `json:"side"`
	OpenedAt time.Time `json:"opened_at"`
}

// OrderForm holds the user-entered order fields. Everything stays a plain
// string and is sent verbatim; the backend owns coercion and validation.
type OrderForm struct {
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	SLPrice      string `json:"sl_price"`
	TriggerPrice string `json:"trigger_price"`
	OrderType    string `json:"order_type"`
	Product      string `json:"product"`
}

// OrderRequest is the wire body for the backend's place-order endpoint.
type OrderRequest struct {
	Symbol          string `json:"symbol"`
	TransactionType string `json:"transaction_type"`
	Quantity        string `json:"quantity"`
	Price           string `json:"price"`
	SLPrice         string `json:"sl_price"`
	TriggerPrice    string `json:"trigger_price"`
	OrderType       string `json:"order_type"`
	Product         string `json:"product"`
}

// OrderResult is the backend's verdict on a submitted order.
type OrderResult struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success reports whether the backend accepted the order.
func (r *OrderResult) Success() bool {
	return r != nil && r.Status == "success"
}
