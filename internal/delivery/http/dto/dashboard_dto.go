package dto

import (
	"fmt"

	"tradedeck/internal/domain"
	"tradedeck/internal/render"
)

// SymbolRequest carries a single symbol, used by watchlist add and bot start.
type SymbolRequest struct {
	Symbol string `json:"symbol"`
}

// OpenTicketRequest opens an order dialog for a symbol/side pair.
type OpenTicketRequest struct {
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
}

// SubmitOrderRequest carries the user-entered order form. All fields are
// plain strings forwarded verbatim to the backend.
type SubmitOrderRequest struct {
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	SLPrice      string `json:"sl_price"`
	TriggerPrice string `json:"trigger_price"`
	OrderType    string `json:"order_type"`
	Product      string `json:"product"`
}

// Form converts the request into the domain order form.
func (r SubmitOrderRequest) Form() domain.OrderForm {
	return domain.OrderForm{
		Quantity:     r.Quantity,
		Price:        r.Price,
		SLPrice:      r.SLPrice,
		TriggerPrice: r.TriggerPrice,
		OrderType:    r.OrderType,
		Product:      r.Product,
	}
}

// TicketResponse is an open order dialog, including its display title.
type TicketResponse struct {
	Ticket domain.OrderTicket `json:"ticket"`
	Title  string             `json:"title"`
}

// NewTicketResponse builds the dialog view for a ticket.
func NewTicketResponse(ticket *domain.OrderTicket) TicketResponse {
	return TicketResponse{
		Ticket: *ticket,
		Title:  fmt.Sprintf("Place %s Order for %s", ticket.Side, ticket.Symbol),
	}
}

// DashboardResponse is the full dashboard projection: watchlist entries plus
// the rendered results table.
type DashboardResponse struct {
	Watchlist []domain.WatchlistEntry `json:"watchlist"`
	Table     []render.TableRow       `json:"table"`
}
