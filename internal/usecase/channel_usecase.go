package usecase

import (
	"context"
	"time"

	"farmlink/internal/domain/entity"
)

// RegisterChannelInput represents a push token registration
type RegisterChannelInput struct {
	Token    string
	Platform string
	Label    string
}

// ChannelOutcome is the per-token result of one fan-out
type ChannelOutcome struct {
	Succeeded []string
	Invalid   []string
	Failed    []string
}

// ChannelUsecase defines the interface for the notification token registry
type ChannelUsecase interface {
	// Register binds the token to the caller, taking it over from any previous owner
	Register(ctx context.Context, caller entity.Caller, input *RegisterChannelInput) (*entity.NotificationChannel, error)

	// Unregister removes the token if it belongs to the caller, otherwise does nothing
	Unregister(ctx context.Context, caller entity.Caller, token string) error

	// ListChannelsForUser returns every channel of uid for fan-out
	ListChannelsForUser(ctx context.Context, uid string) ([]*entity.NotificationChannel, error)

	// RevokeChannels removes tokens rejected permanently by the push provider
	RevokeChannels(ctx context.Context, tokens []string) (int64, error)

	// RecordDeliveryOutcome revokes invalid tokens, tracks consecutive failures and revokes
	// channels that reached the failure limit. Returns the number of revoked channels.
	RecordDeliveryOutcome(ctx context.Context, outcome ChannelOutcome) (int64, error)

	// PruneStale removes channels not registered again since olderThan
	PruneStale(ctx context.Context, olderThan time.Time) (int64, error)
}
