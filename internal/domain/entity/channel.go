package entity

import "time"

// DefaultPlatform is assigned to channels registered without a platform.
const DefaultPlatform = "web"

// MinTokenLength is the shortest channel token accepted by the registry.
const MinTokenLength = 10

// NotificationChannel is a push token bound to exactly one owner.
type NotificationChannel struct {
	Token         string     `json:"token"`           // FCM registration token, primary key.
	UID           string     `json:"uid"`             // Owner of the channel; last registration wins.
	Email         string     `json:"email"`           // Normalized owner email.
	Platform      string     `json:"platform"`        // Client platform (web, ios, android).
	Label         string     `json:"label"`           // Optional user-visible device label.
	FailureCount  int        `json:"failure_count"`   // Consecutive transient delivery failures.
	LastFailureAt *time.Time `json:"last_failure_at"` // Time of the most recent transient failure.
	CreatedAt     time.Time  `json:"created_at"`      // First registration, never updated.
	UpdatedAt     time.Time  `json:"updated_at"`      // Refreshed on every registration.
}
