// Package service defines interfaces for infrastructure services used by the use cases.
package service

import (
	"context"

	"farmlink/internal/domain/entity"
)

// EventPublisher defines the interface for publishing dispatch events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a notification request for async delivery
	PublishDispatchEvent(ctx context.Context, event *entity.DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
