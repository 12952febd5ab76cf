package impl

import (
	"context"
	"log/slog"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"go.uber.org/fx"
)

// maxPushBatch is the FCM multicast limit.
const maxPushBatch = 500

// ErrNoRecipient is returned for dispatch events without a recipient. Redelivery cannot fix it.
var ErrNoRecipient = errors.New("dispatch event has no recipient")

type dispatchService struct {
	channels  usecase.ChannelUsecase
	push      service.NotificationService
	batchSize int
	logger    *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Channels usecase.ChannelUsecase
	Push     service.NotificationService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	batchSize := maxPushBatch
	if params.Config != nil && params.Config.Dispatch != nil &&
		params.Config.Dispatch.BatchSize > 0 && params.Config.Dispatch.BatchSize < maxPushBatch {
		batchSize = params.Config.Dispatch.BatchSize
	}

	return &dispatchService{
		channels:  params.Channels,
		push:      params.Push,
		batchSize: batchSize,
		logger:    params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver sends the event to every channel of its recipient. Only a failure to read the
// registry is retryable: once messages went out, redelivery would duplicate them.
func (srv *dispatchService) Deliver(ctx context.Context, event *entity.DispatchEvent) (*entity.DispatchResult, error) {
	if event.UID == "" {
		return nil, ErrNoRecipient
	}

	channels, err := srv.channels.ListChannelsForUser(ctx, event.UID)
	if err != nil {
		return nil, usecase.Retryable(err)
	}

	result := &entity.DispatchResult{Channels: len(channels)}
	if len(channels) == 0 {
		srv.log(ctx).Info("No notification channels for recipient", slog.String("uid", event.UID))

		return result, nil
	}

	tokens := make([]string, 0, len(channels))
	for _, channel := range channels {
		tokens = append(tokens, channel.Token)
	}

	msg := service.PushMessage{Title: event.Title, Body: event.Body, URL: event.URL}
	outcome := usecase.ChannelOutcome{}

	for start := 0; start < len(tokens); start += srv.batchSize {
		batch := tokens[start:min(start+srv.batchSize, len(tokens))]

		pushResult, err := srv.push.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			srv.log(ctx).Error("Failed to send push batch",
				slog.String("notificationID", event.NotificationID.String()),
				slog.Int("batchStart", start),
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)
			outcome.Failed = append(outcome.Failed, batch...)

			continue
		}

		outcome.Succeeded = append(outcome.Succeeded, pushResult.SucceededTokens...)
		outcome.Invalid = append(outcome.Invalid, pushResult.InvalidTokens...)
		outcome.Failed = append(outcome.Failed, pushResult.FailedTokens...)
	}

	result.Sent = len(outcome.Succeeded)
	result.Failed = len(outcome.Invalid) + len(outcome.Failed)

	revoked, err := srv.channels.RecordDeliveryOutcome(ctx, outcome)
	if err != nil {
		srv.log(ctx).Error("Failed to record delivery outcome",
			slog.String("notificationID", event.NotificationID.String()),
			slog.Any("error", err),
		)
	}
	result.Revoked = int(revoked)

	srv.log(ctx).Info("Notification dispatched",
		slog.String("notificationID", event.NotificationID.String()),
		slog.Int("channels", result.Channels),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("revoked", result.Revoked),
	)

	return result, nil
}
