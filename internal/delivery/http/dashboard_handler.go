package http

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tradedeck/internal/delivery/http/dto"
	"tradedeck/internal/domain"
	"tradedeck/internal/render"
	"tradedeck/internal/service"
	"tradedeck/internal/usecase"
)

// DashboardHandler exposes the dashboard controller's operations. Every GET
// is a pure projection of the in-memory model; every mutation goes through
// the services.
type DashboardHandler struct {
	dashboard *usecase.DashboardService
	charts    *service.ChartService
	orders    *service.OrderDesk
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *usecase.DashboardService, charts *service.ChartService, orders *service.OrderDesk) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		charts:    charts,
		orders:    orders,
	}
}

// GET /api/dashboard - watchlist plus the rendered results table
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	return SuccessResponse(c, dto.DashboardResponse{
		Watchlist: h.dashboard.Watchlist(),
		Table:     render.BuildTableRows(h.dashboard.TableRows()),
	})
}

// POST /api/watchlist - append a symbol (duplicates allowed)
func (h *DashboardHandler) AddToWatchlist(c echo.Context) error {
	var req dto.SymbolRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body")
	}

	entry, err := h.dashboard.AddToWatchlist(req.Symbol)
	if errors.Is(err, domain.ErrSymbolRequired) {
		return BadRequestResponse(c, "Symbol is required")
	}
	return CreatedResponse(c, entry)
}

// DELETE /api/watchlist/:id - remove one watchlist entry by handle
func (h *DashboardHandler) RemoveFromWatchlist(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid watchlist entry id")
	}
	if !h.dashboard.RemoveFromWatchlist(id) {
		return NotFoundResponse(c, "Watchlist entry not found")
	}
	return SuccessMessageResponse(c, "Watchlist entry removed", nil)
}

// POST /api/bot/start - trigger backend processing for a symbol
func (h *DashboardHandler) StartBot(c echo.Context) error {
	var req dto.SymbolRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body")
	}

	err := h.dashboard.TriggerBot(c.Request().Context(), req.Symbol)
	switch {
	case errors.Is(err, domain.ErrSymbolRequired):
		return BadRequestResponse(c, "Symbol is required")
	case err != nil:
		// Sample data was already loaded as a fallback; the failure is still
		// surfaced so the user sees it.
		return BadGatewayResponse(c, "Failed to start bot, showing sample data", err)
	}

	return SuccessResponse(c, dto.DashboardResponse{
		Watchlist: h.dashboard.Watchlist(),
		Table:     render.BuildTableRows(h.dashboard.TableRows()),
	})
}

// DELETE /api/stocks/:symbol - remove all results-table rows for a symbol
func (h *DashboardHandler) RemoveStock(c echo.Context) error {
	removed := h.dashboard.RemoveStock(c.Param("symbol"))
	return SuccessResponse(c, map[string]interface{}{"removed": removed})
}

// GET /api/chart/:symbol?timeframe= - load and render a chart
func (h *DashboardHandler) LoadChart(c echo.Context) error {
	view, err := h.charts.Load(c.Request().Context(), c.Param("symbol"), c.QueryParam("timeframe"))
	switch {
	case errors.Is(err, domain.ErrSymbolRequired):
		return BadRequestResponse(c, "Symbol is required")
	case err != nil:
		return BadGatewayResponse(c, "Chart data not available", err)
	}
	return SuccessResponse(c, view)
}

// POST /api/orders/ticket - open an order dialog
func (h *DashboardHandler) OpenTicket(c echo.Context) error {
	var req dto.OpenTicketRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body")
	}

	ticket, err := h.orders.Open(req.Symbol, req.Side)
	if errors.Is(err, domain.ErrSymbolRequired) {
		return BadRequestResponse(c, "Symbol is required")
	}
	return CreatedResponse(c, dto.NewTicketResponse(ticket))
}

// DELETE /api/orders/ticket/:id - dismiss an order dialog
func (h *DashboardHandler) CloseTicket(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid ticket id")
	}
	h.orders.Close(id)
	return SuccessMessageResponse(c, "Order dialog closed", nil)
}

// POST /api/orders/ticket/:id/submit - submit the order for an open dialog
func (h *DashboardHandler) SubmitOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid ticket id")
	}

	var req dto.SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.orders.Submit(c.Request().Context(), id, req.Form())
	switch {
	case errors.Is(err, domain.ErrNoOpenTicket):
		return ConflictResponse(c, "No matching open order ticket")
	case err != nil:
		return BadGatewayResponse(c, "Order failed", err)
	}

	if !result.Success() {
		return BadGatewayResponse(c, "Order failed: "+result.Message, nil)
	}
	return SuccessMessageResponse(c, "Order placed successfully! Order ID: "+result.OrderID, result)
}
