package repository

import (
	"context"
	"time"

	"farmlink/internal/domain/entity"
)

// ChannelRepository defines the interface for the notification token registry.
type ChannelRepository interface {
	// Upsert registers the channel keyed by token. An existing token is reassigned to the
	// new owner, its failure counters are reset and its creation time is kept.
	Upsert(ctx context.Context, channel *entity.NotificationChannel) error

	// DeleteOwned removes the token only if it belongs to uid. Returns whether a row was removed.
	DeleteOwned(ctx context.Context, uid, token string) (bool, error)

	// ListByUser retrieves all channels of a user.
	ListByUser(ctx context.Context, uid string) ([]*entity.NotificationChannel, error)

	// DeleteByTokens removes the given tokens regardless of owner.
	DeleteByTokens(ctx context.Context, tokens []string) (int64, error)

	// IncrementFailures bumps the consecutive failure counter of the given tokens.
	IncrementFailures(ctx context.Context, tokens []string, at time.Time) error

	// ResetFailures clears the failure counter of the given tokens.
	ResetFailures(ctx context.Context, tokens []string) error

	// DeleteFailing removes the given tokens whose failure counter reached maxFailures.
	DeleteFailing(ctx context.Context, tokens []string, maxFailures int) (int64, error)

	// DeleteStale removes channels not registered again since olderThan.
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
}
