package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// PurchaseStatus is the outcome recorded with each purchase
type PurchaseStatus string

// StatusSuccess is the only status a recorded purchase can carry
const StatusSuccess PurchaseStatus = "success"

// Purchase is a simulated gold purchase event. It is created once and never mutated.
type Purchase struct {
	ID        uint64          // Assigned by the store on insert
	UserID    int64           // Caller-supplied user identifier, not checked against any user table
	Amount    float64         // Amount as sent by the caller, no range validation
	Grams     decimal.Decimal // Gold weight bought at the configured rate
	Status    PurchaseStatus
	CreatedAt time.Time
}

// NewPurchase builds a successful purchase record for the given user and amount
func NewPurchase(userID int64, amount float64, rate GoldRate, timeProvider coreport.TimeProvider) *Purchase {
	return &Purchase{
		UserID:    userID,
		Amount:    amount,
		Grams:     rate.GramsFor(amount),
		Status:    StatusSuccess,
		CreatedAt: timeProvider.Now(),
	}
}

// IsSuccess reports whether the purchase was recorded successfully
func (p *Purchase) IsSuccess() bool {
	return p.Status == StatusSuccess
}
