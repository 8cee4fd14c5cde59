package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tradedeck/internal/domain"
)

// Notifier pushes order outcomes to an external channel. A nil result means
// the order never reached the backend.
type Notifier interface {
	NotifyOrder(ticket domain.OrderTicket, result *domain.OrderResult) error
}

// OrderDesk owns the order dialog lifecycle: CLOSED -> OPEN(symbol, side) ->
// SUBMITTING -> CLOSED. There is a single open slot; opening a new ticket
// replaces the previous one, and a submit must reference the currently open
// ticket, so a stale dialog context can never leak into an order.
type OrderDesk struct {
	gateway  domain.BotGateway
	notifier Notifier

	mu   sync.Mutex
	open *domain.OrderTicket
}

// NewOrderDesk creates a new OrderDesk. notifier may be nil.
func NewOrderDesk(gateway domain.BotGateway, notifier Notifier) *OrderDesk {
	return &OrderDesk{
		gateway:  gateway,
		notifier: notifier,
	}
}

// Open starts an order dialog for symbol/side and returns its ticket. Side is
// accepted verbatim. Any previously open ticket is replaced.
func (d *OrderDesk) Open(symbol, side string) (*domain.OrderTicket, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrSymbolRequired
	}

	ticket := &domain.OrderTicket{
		ID:       uuid.New(),
		Symbol:   symbol,
		Side:     side,
		OpenedAt: time.Now(),
	}

	d.mu.Lock()
	d.open = ticket
	d.mu.Unlock()

	return ticket, nil
}

// Close dismisses the dialog for the given ticket. Closing a ticket that has
// already been replaced is a no-op.
func (d *OrderDesk) Close(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open != nil && d.open.ID == id {
		d.open = nil
	}
}

// Ticket returns the currently open ticket, or nil.
func (d *OrderDesk) Ticket() *domain.OrderTicket {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Submit sends the order for the given ticket with the user-entered form
// fields attached verbatim. The dialog is closed unconditionally, whatever
// the outcome: success, backend rejection, or transport failure.
func (d *OrderDesk) Submit(ctx context.Context, id uuid.UUID, form domain.OrderForm) (*domain.OrderResult, error) {
	d.mu.Lock()
	if d.open == nil || d.open.ID != id {
		d.mu.Unlock()
		return nil, domain.ErrNoOpenTicket
	}
	ticket := *d.open
	d.open = nil // dialog closes no matter how the submit ends
	d.mu.Unlock()

	order := domain.OrderRequest{
		Symbol:          ticket.Symbol,
		TransactionType: ticket.Side,
		Quantity:        form.Quantity,
		Price:           form.Price,
		SLPrice:         form.SLPrice,
		TriggerPrice:    form.TriggerPrice,
		OrderType:       form.OrderType,
		Product:         form.Product,
	}

	result, err := d.gateway.PlaceOrder(ctx, order)
	if err != nil {
		log.Printf("[ERROR] order: submit failed for %s %s: %v", ticket.Side, ticket.Symbol, err)
		d.notify(ticket, nil)
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	if result.Success() {
		log.Printf("[OK] order placed: %s %s (order_id=%s)", ticket.Side, ticket.Symbol, result.OrderID)
	} else {
		log.Printf("[WARN] order rejected for %s %s: %s", ticket.Side, ticket.Symbol, result.Message)
	}
	d.notify(ticket, result)

	return result, nil
}

func (d *OrderDesk) notify(ticket domain.OrderTicket, result *domain.OrderResult) {
	if d.notifier == nil {
		return
	}
	if err := d.notifier.NotifyOrder(ticket, result); err != nil {
		log.Printf("[WARN] order: notification failed: %v", err)
	}
}
