package entity

import "github.com/google/uuid"

// DispatchEvent asks the dispatcher to notify every channel of one user.
type DispatchEvent struct {
	RequestID      string    `json:"request_id"`      // Request that triggered the notification, for log correlation.
	NotificationID uuid.UUID `json:"notification_id"` // Unique id of this notification.
	UID            string    `json:"uid"`             // Recipient.
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	URL            string    `json:"url"` // Opened when the notification is clicked.
}

// DispatchResult summarizes one fan-out.
type DispatchResult struct {
	Channels int `json:"channels"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Revoked  int `json:"revoked"`
}
