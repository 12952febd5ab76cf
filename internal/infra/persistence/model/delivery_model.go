package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// Events and milestones are stored as JSON so the whole log is updated in one statement.
type DeliveryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BidID          string          `gorm:"type:varchar(128);not null;uniqueIndex"`
	ProductID      string          `gorm:"type:varchar(128);not null"`
	FarmerUID      string          `gorm:"type:varchar(128);not null;index:idx_deliveries_farmer_updated,priority:1"`
	FarmerName     string          `gorm:"type:varchar(255)"`
	FarmerEmail    string          `gorm:"type:varchar(255)"`
	BuyerUID       string          `gorm:"type:varchar(128);not null;index:idx_deliveries_buyer_updated,priority:1"`
	BuyerName      string          `gorm:"type:varchar(255)"`
	BuyerEmail     string          `gorm:"type:varchar(255)"`
	Milestones     StringList      `gorm:"type:jsonb;not null"`
	CurrentStep    int             `gorm:"not null;default:0"`
	Status         string          `gorm:"type:varchar(128);not null"`
	Completed      bool            `gorm:"not null;default:false"`
	Events         EventList       `gorm:"type:jsonb;not null"`
	DeliveryOption string          `gorm:"type:varchar(32)"`
	Quantity       decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Unit           string          `gorm:"type:varchar(32)"`
	PricePerUnit   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ETA            string          `gorm:"type:varchar(64)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null;index:idx_deliveries_farmer_updated,priority:2;index:idx_deliveries_buyer_updated,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
