package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// notifier hands notifications to the event bus from the task queue, so a slow
// or failing bus never delays the request that caused the notification.
type notifier struct {
	queue     service.TaskQueue
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NotifierParams holds dependencies for the Notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Queue     service.TaskQueue
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewNotifier is the constructor for notifier.
func NewNotifier(params NotifierParams) usecase.Notifier {
	return &notifier{
		queue:     params.Queue,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (n *notifier) Notify(ctx context.Context, uid, title, body, url string) {
	if uid == "" {
		return
	}

	event := &entity.DispatchEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: uuid.New(),
		UID:            uid,
		Title:          title,
		Body:           body,
		URL:            url,
	}

	key := constants.TaskKey(constants.TaskKindNotify, event.NotificationID.String())
	queued := n.queue.Submit(ctx, key, func(taskCtx context.Context) error {
		return errors.Wrap(n.publisher.PublishDispatchEvent(taskCtx, event), "failed to publish dispatch event")
	})
	if queued {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Debug("Notification queued",
			slog.String("uid", uid),
			slog.String("notificationID", event.NotificationID.String()),
		)
	}
}
