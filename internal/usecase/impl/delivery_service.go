package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	qrcode       service.QRCodeService
	coordinator  usecase.RefreshCoordinator
	notifier     usecase.Notifier
	display      displayFormat
	logger       *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	QRCode       service.QRCodeService
	Coordinator  usecase.RefreshCoordinator
	Notifier     usecase.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: params.DeliveryRepo,
		qrcode:       params.QRCode,
		coordinator:  params.Coordinator,
		notifier:     params.Notifier,
		display:      newDisplayFormat(params.Config, params.Logger),
		logger:       params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDelivery builds the ledger entry of an accepted bid.
func (srv *deliveryService) CreateDelivery(ctx context.Context, caller entity.Caller, input *usecase.CreateDeliveryInput) (*entity.DeliveryView, error) {
	delivery, err := entity.NewDelivery(entity.NewDeliveryParams{
		BidID:      input.BidID,
		ProductID:  input.ProductID,
		Farmer:     input.Farmer,
		Buyer:      input.Buyer,
		Terms:      input.Terms,
		Milestones: input.Milestones,
	}, time.Now())
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	if !canManage(caller, delivery) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the farmer or an admin can create a delivery")
	}

	stored, created, err := srv.deliveryRepo.CreateIfAbsent(ctx, delivery)
	if err != nil {
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to create delivery")
	}

	if !created {
		if !canManage(caller, stored) {
			return nil, domainerrors.ErrForbidden.WrapMessage("bid belongs to another farmer")
		}
		srv.log(ctx).Debug("Delivery already exists for bid", slog.String("bidID", stored.BidID), slog.Any("deliveryID", stored.ID))

		view := srv.display.view(stored)

		return &view, nil
	}

	srv.log(ctx).Info("Delivery created",
		slog.Any("deliveryID", stored.ID),
		slog.String("bidID", stored.BidID),
		slog.String("buyerUID", stored.Buyer.UID),
	)

	srv.afterChange(ctx, stored,
		stored.Status,
		fmt.Sprintf("%s accepted your bid. Estimated delivery: %s", partyName(stored.Farmer, "The farmer"), stored.ETA),
	)

	view := srv.display.view(stored)

	return &view, nil
}

// GetDelivery returns a delivery to one of its parties.
func (srv *deliveryService) GetDelivery(ctx context.Context, caller entity.Caller, id uuid.UUID) (*entity.DeliveryView, error) {
	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(caller, delivery) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a party of this delivery")
	}

	view := srv.display.view(delivery)

	return &view, nil
}

// AdvanceMilestone completes the milestone directly after the current one.
func (srv *deliveryService) AdvanceMilestone(ctx context.Context, caller entity.Caller, id uuid.UUID, targetStep int) (*entity.DeliveryView, error) {
	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(caller, delivery) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the farmer or an admin can advance a delivery")
	}

	fromStep := delivery.CurrentStep
	if err := delivery.Advance(targetStep, time.Now()); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	err = srv.deliveryRepo.SaveProgress(ctx, delivery, fromStep)
	switch {
	case errors.Is(err, repository.ErrStaleDelivery):
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("delivery is no longer at step %d", fromStep))
	case errors.Is(err, repository.ErrDeliveryNotFound):
		return nil, domainerrors.ErrDeliveryNotFound
	case err != nil:
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to save delivery progress")
	}

	srv.log(ctx).Info("Milestone advanced",
		slog.Any("deliveryID", delivery.ID),
		slog.Int("step", delivery.CurrentStep),
		slog.String("status", delivery.Status),
	)

	detail := delivery.Events[delivery.CurrentStep].Detail
	if detail == "" {
		detail = "Your order is now: " + delivery.Status
	}
	srv.afterChange(ctx, delivery, delivery.Status, detail)

	view := srv.display.view(delivery)

	return &view, nil
}

// TrackingQR renders the tracking label of a delivery.
func (srv *deliveryService) TrackingQR(ctx context.Context, caller entity.Caller, id uuid.UUID) ([]byte, error) {
	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canManage(caller, delivery) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the farmer or an admin can print tracking labels")
	}

	png, err := srv.qrcode.GenerateTrackingQR(delivery.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tracking QR", slog.Any("deliveryID", delivery.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate tracking QR")
	}

	return png, nil
}

func (srv *deliveryService) find(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to load delivery")
	}

	return delivery, nil
}

// afterChange refreshes both dashboards and tells the buyer. None of it blocks the caller.
func (srv *deliveryService) afterChange(ctx context.Context, delivery *entity.Delivery, title, body string) {
	srv.coordinator.ScheduleRefresh(ctx, delivery.Buyer.UID, delivery.Buyer.Email)
	srv.coordinator.ScheduleFarmerRefresh(ctx, delivery.Farmer.UID)
	srv.notifier.Notify(ctx, delivery.Buyer.UID, title, body, srv.qrcode.TrackingURL(delivery.ID))
}

func partyName(p entity.Party, fallback string) string {
	if p.Name == "" {
		return fallback
	}

	return p.Name
}
