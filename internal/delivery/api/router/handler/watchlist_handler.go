package handler

import (
	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WatchlistHandlerParams holds dependencies for WatchlistHandler, injected by Fx.
type WatchlistHandlerParams struct {
	fx.In

	WatchlistUC usecase.WatchlistUsecase
}

// WatchlistHandler exposes buyer saved items
type WatchlistHandler struct {
	watchlistUC usecase.WatchlistUsecase
}

// NewWatchlistHandler is the constructor for WatchlistHandler
func NewWatchlistHandler(params WatchlistHandlerParams) *WatchlistHandler {
	return &WatchlistHandler{watchlistUC: params.WatchlistUC}
}

// AddWatchlistItemRequest represents the request body for saving a product
type AddWatchlistItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddItem saves a product for the caller
func (h *WatchlistHandler) AddItem(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	var req AddWatchlistItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.watchlistUC.AddItem(c.Request().Context(), caller, req.ProductID); err != nil {
		return err
	}

	return response.OK(c)
}

// RemoveItem removes the product named by the productId query parameter
func (h *WatchlistHandler) RemoveItem(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	if err := h.watchlistUC.RemoveItem(c.Request().Context(), caller, c.QueryParam("productId")); err != nil {
		return err
	}

	return response.OK(c)
}
