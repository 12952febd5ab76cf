package service

import "context"

// Task is a unit of background work. ctx carries the task deadline.
type Task func(ctx context.Context) error

// TaskQueue runs side effects off the request path.
type TaskQueue interface {
	// Submit queues task without blocking. A non-empty key that is already waiting is
	// coalesced with the pending task. Returns false when the task was dropped.
	Submit(ctx context.Context, key string, task Task) bool
}
