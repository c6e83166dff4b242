package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase represents the database model for a simulated gold purchase
type Purchase struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null;index:idx_purchases_user_id"`
	Amount    float64         `gorm:"not null"`
	Grams     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Status    string          `gorm:"not null;size:20"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}
