package service

import (
	"context"
)

// PushMessage is the payload delivered to every channel. The client opens URL on click.
type PushMessage struct {
	Title string
	Body  string
	URL   string
}

// PushResult classifies the tokens of one batch send.
type PushResult struct {
	SucceededTokens []string // delivered
	InvalidTokens   []string // permanently rejected, must be revoked
	FailedTokens    []string // transient failures, may succeed later
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends the message to at most 500 tokens in one request.
	// An error means the whole batch could not be attempted.
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
