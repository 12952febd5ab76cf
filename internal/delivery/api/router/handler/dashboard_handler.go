package handler

import (
	"net/http"

	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves buyer dashboards and farmer logistics
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

// GetBuyerDashboard returns the caller's snapshot. data is null while none is available.
func (h *DashboardHandler) GetBuyerDashboard(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	snapshot, err := h.dashboardUC.GetBuyerDashboard(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetFarmerLogistics returns the logistics of the farmer named by the farmerId query parameter
func (h *DashboardHandler) GetFarmerLogistics(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	logistics, err := h.dashboardUC.GetFarmerLogistics(c.Request().Context(), caller, c.QueryParam("farmerId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, logistics)
}
