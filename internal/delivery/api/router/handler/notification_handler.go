package handler

import (
	"log/slog"

	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	ChannelUC usecase.ChannelUsecase
	Logger    *slog.Logger
}

// NotificationHandler exposes the notification token registry
type NotificationHandler struct {
	channelUC usecase.ChannelUsecase
	logger    *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		channelUC: params.ChannelUC,
		logger:    params.Logger,
	}
}

// RegisterChannelRequest represents the request body for registering a push token
type RegisterChannelRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
}

// UnregisterChannelRequest represents the request body for removing a push token
type UnregisterChannelRequest struct {
	Token string `json:"token" validate:"required"`
}

// Register binds a push token to the caller
func (h *NotificationHandler) Register(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	var req RegisterChannelRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err = h.channelUC.Register(c.Request().Context(), caller, &usecase.RegisterChannelInput{
		Token:    req.Token,
		Platform: req.Platform,
		Label:    req.Label,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// Unregister removes a push token owned by the caller
func (h *NotificationHandler) Unregister(c echo.Context) error {
	caller, err := middleware.MustCaller(c)
	if err != nil {
		return err
	}

	var req UnregisterChannelRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.channelUC.Unregister(c.Request().Context(), caller, req.Token); err != nil {
		return err
	}

	return response.OK(c)
}
