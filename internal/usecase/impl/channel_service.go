package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"go.uber.org/fx"
)

// channelService implements the ChannelUsecase interface.
type channelService struct {
	txManager   repository.TransactionManager
	channelRepo repository.ChannelRepository
	maxFailures int
	logger      *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ChannelRepo repository.ChannelRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewChannelService is the constructor for channelService.
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	maxFailures := 0
	if params.Config != nil && params.Config.Dispatch != nil {
		maxFailures = params.Config.Dispatch.MaxConsecutiveFailures
	}

	return &channelService{
		txManager:   params.TxManager,
		channelRepo: params.ChannelRepo,
		maxFailures: maxFailures,
		logger:      params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if len(token) < entity.MinTokenLength {
		return "", domainerrors.ErrTokenTooShort
	}

	return token, nil
}

// Register claims the token for the caller. A token held by another user changes owner.
func (srv *channelService) Register(ctx context.Context, caller entity.Caller, input *usecase.RegisterChannelInput) (*entity.NotificationChannel, error) {
	token, err := normalizeToken(input.Token)
	if err != nil {
		return nil, err
	}

	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if platform == "" {
		platform = entity.DefaultPlatform
	}

	now := time.Now()
	channel := &entity.NotificationChannel{
		Token:     token,
		UID:       caller.UID,
		Email:     entity.NormalizeEmail(caller.Email),
		Platform:  platform,
		Label:     strings.TrimSpace(input.Label),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.channelRepo.Upsert(ctx, channel); err != nil {
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to register notification channel")
	}

	srv.log(ctx).Debug("Notification channel registered", slog.String("uid", caller.UID), slog.String("platform", platform))

	return channel, nil
}

// Unregister deletes the token only when the caller owns it.
func (srv *channelService) Unregister(ctx context.Context, caller entity.Caller, token string) error {
	token, err := normalizeToken(token)
	if err != nil {
		return err
	}

	removed, err := srv.channelRepo.DeleteOwned(ctx, caller.UID, token)
	if err != nil {
		return unavailable(ctx, srv.log(ctx), err, "failed to unregister notification channel")
	}

	srv.log(ctx).Debug("Notification channel unregistered", slog.String("uid", caller.UID), slog.Bool("removed", removed))

	return nil
}

// ListChannelsForUser returns the fan-out targets of uid.
func (srv *channelService) ListChannelsForUser(ctx context.Context, uid string) ([]*entity.NotificationChannel, error) {
	channels, err := srv.channelRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification channels")
	}

	return channels, nil
}

// RevokeChannels removes permanently rejected tokens.
func (srv *channelService) RevokeChannels(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	revoked, err := srv.channelRepo.DeleteByTokens(ctx, tokens)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke notification channels")
	}

	return revoked, nil
}

// RecordDeliveryOutcome applies the revocation policy to one fan-out in a single transaction.
func (srv *channelService) RecordDeliveryOutcome(ctx context.Context, outcome usecase.ChannelOutcome) (int64, error) {
	var revoked int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		channelRepo := repoFactory.NewChannelRepository()

		if len(outcome.Invalid) > 0 {
			n, err := channelRepo.DeleteByTokens(ctx, outcome.Invalid)
			if err != nil {
				return errors.Wrap(err, "failed to revoke invalid tokens")
			}
			revoked += n
		}

		if len(outcome.Succeeded) > 0 {
			if err := channelRepo.ResetFailures(ctx, outcome.Succeeded); err != nil {
				return errors.Wrap(err, "failed to reset failure counters")
			}
		}

		if len(outcome.Failed) == 0 {
			return nil
		}

		if err := channelRepo.IncrementFailures(ctx, outcome.Failed, time.Now()); err != nil {
			return errors.Wrap(err, "failed to record delivery failures")
		}

		if srv.maxFailures <= 0 {
			return nil
		}

		n, err := channelRepo.DeleteFailing(ctx, outcome.Failed, srv.maxFailures)
		if err != nil {
			return errors.Wrap(err, "failed to revoke failing tokens")
		}
		revoked += n

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to record delivery outcome")
	}

	if revoked > 0 {
		srv.log(ctx).Info("Notification channels revoked", slog.Int64("revoked", revoked))
	}

	return revoked, nil
}

// PruneStale removes channels that were not registered again since olderThan.
func (srv *channelService) PruneStale(ctx context.Context, olderThan time.Time) (int64, error) {
	pruned, err := srv.channelRepo.DeleteStale(ctx, olderThan)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune stale notification channels")
	}

	return pruned, nil
}
