package model

import (
	"time"
)

// NotificationChannelModel is the GORM-specific struct for the 'notification_channels' table.
// The token is the primary key, so one token can only ever have one owner.
type NotificationChannelModel struct {
	Token         string `gorm:"type:varchar(512);primaryKey"`
	UID           string `gorm:"type:varchar(128);not null;index"`
	Email         string `gorm:"type:varchar(255)"`
	Platform      string `gorm:"type:varchar(32);not null;default:'web'"`
	Label         string `gorm:"type:varchar(255)"`
	FailureCount  int    `gorm:"not null;default:0"`
	LastFailureAt *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationChannelModel) TableName() string {
	return "notification_channels"
}
