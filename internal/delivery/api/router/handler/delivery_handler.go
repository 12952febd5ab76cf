package handler

import (
	"net/http"

	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Metrics    *metrics.Metrics
}

// DeliveryHandler exposes the delivery ledger
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	metrics    *metrics.Metrics
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		metrics:    params.Metrics,
	}
}

// PartyRequest identifies one side of an order
type PartyRequest struct {
	UID   string `json:"uid" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// TermsRequest is the commercial part of an accepted bid
type TermsRequest struct {
	DeliveryOption string          `json:"deliveryOption" validate:"required,oneof=express standard pickup"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit" validate:"required"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
}

// CreateDeliveryRequest represents an accepted bid
type CreateDeliveryRequest struct {
	BidID      string       `json:"bidId" validate:"required"`
	ProductID  string       `json:"productId" validate:"required"`
	Farmer     PartyRequest `json:"farmer"`
	Buyer      PartyRequest `json:"buyer"`
	Terms      TermsRequest `json:"terms"`
	Milestones []string     `json:"milestones" validate:"omitempty,min=2,dive,required"`
}

// AdvanceMilestoneRequest names the milestone to reach
type AdvanceMilestoneRequest struct {
	TargetStep *int `json:"targetStep" validate:"required"`
}

// CreateDelivery creates the delivery of an accepted bid
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.Terms.Quantity.IsPositive() || req.Terms.PricePerUnit.IsNegative() {
		return domainerrors.ErrInvalidArgument.WithDetails("terms.quantity must be positive and terms.pricePerUnit not negative")
	}

	view, err := h.deliveryUC.CreateDelivery(c.Request().Context(), caller, &usecase.CreateDeliveryInput{
		BidID:     req.BidID,
		ProductID: req.ProductID,
		Farmer:    entity.Party(req.Farmer),
		Buyer:     entity.Party(req.Buyer),
		Terms: entity.Terms{
			DeliveryOption: req.Terms.DeliveryOption,
			Quantity:       req.Terms.Quantity,
			Unit:           req.Terms.Unit,
			PricePerUnit:   req.Terms.PricePerUnit,
		},
		Milestones: req.Milestones,
	})
	if err != nil {
		return err
	}
	h.metrics.DeliveriesCreated.Inc()

	return response.Success(c, http.StatusCreated, view)
}

// GetDelivery returns one delivery
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	id, err := parseDeliveryID(c)
	if err != nil {
		return err
	}

	view, err := h.deliveryUC.GetDelivery(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}

// AdvanceMilestone moves a delivery one milestone forward
func (h *DeliveryHandler) AdvanceMilestone(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	id, err := parseDeliveryID(c)
	if err != nil {
		return err
	}

	var req AdvanceMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.deliveryUC.AdvanceMilestone(c.Request().Context(), caller, id, *req.TargetStep)
	if err != nil {
		return err
	}
	h.metrics.ObserveMilestone(view.Status)

	return response.Success(c, http.StatusOK, view)
}

// TrackingQR renders the tracking label of a delivery
func (h *DeliveryHandler) TrackingQR(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	id, err := parseDeliveryID(c)
	if err != nil {
		return err
	}

	image, err := h.deliveryUC.TrackingQR(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.PNG(c, image)
}

func parseDeliveryID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// an id that cannot exist is reported like a missing delivery
		return uuid.Nil, domainerrors.ErrDeliveryNotFound.WithDetails("invalid delivery id")
	}

	return id, nil
}
