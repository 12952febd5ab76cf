// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
)

// displayFormat renders deliveries in the configured location.
type displayFormat struct {
	loc    *time.Location
	layout string
}

func newDisplayFormat(cfg *config.Config, logger *slog.Logger) displayFormat {
	format := displayFormat{loc: time.UTC, layout: entity.DefaultDisplayLayout}
	if cfg == nil || cfg.Display == nil {
		return format
	}

	if cfg.Display.TimeLayout != "" {
		format.layout = cfg.Display.TimeLayout
	}
	if cfg.Display.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Display.Timezone)
		if err != nil {
			logger.Warn("Unknown display timezone, falling back to UTC",
				slog.String("timezone", cfg.Display.Timezone),
				slog.Any("error", err),
			)
		} else {
			format.loc = loc
		}
	}

	return format
}

func (f displayFormat) view(d *entity.Delivery) entity.DeliveryView {
	return entity.FormatForDisplay(d, f.loc, f.layout)
}

func (f displayFormat) views(deliveries []*entity.Delivery) []entity.DeliveryView {
	views := make([]entity.DeliveryView, 0, len(deliveries))
	for _, d := range deliveries {
		views = append(views, f.view(d))
	}

	return views
}

// unavailable logs a storage failure and hides it behind ErrUnavailable.
func unavailable(ctx context.Context, logger *slog.Logger, err error, message string) error {
	logger.ErrorContext(ctx, message, slog.Any("error", err))

	return domainerrors.ErrUnavailable.WrapMessage(message)
}

// canManage reports whether the caller may change the delivery.
func canManage(caller entity.Caller, d *entity.Delivery) bool {
	return caller.IsAdmin() || caller.Is(d.Farmer.UID)
}

// canView reports whether the caller is a party of the delivery or an admin.
func canView(caller entity.Caller, d *entity.Delivery) bool {
	return canManage(caller, d) || caller.Is(d.Buyer.UID)
}
