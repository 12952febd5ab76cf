package usecase

import (
	"context"

	"farmlink/internal/domain/entity"
)

// Notifier queues a best-effort notification to every channel of a user
type Notifier interface {
	Notify(ctx context.Context, uid, title, body, url string)
}

// DispatchUsecase delivers dispatch events to push channels
type DispatchUsecase interface {
	// Deliver fans the event out to every channel of its recipient
	Deliver(ctx context.Context, event *entity.DispatchEvent) (*entity.DispatchResult, error)
}
