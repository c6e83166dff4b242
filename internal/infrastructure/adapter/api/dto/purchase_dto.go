package dto

import "time"

// PurchaseRequest represents the API request for a simulated gold purchase.
// Pointers let binding tell an absent key from an explicit zero
type PurchaseRequest struct {
	UserID *int64   `json:"user_id" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

// PurchaseResponse echoes the request with the outcome
type PurchaseResponse struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// PurchaseRecord is one stored purchase row
type PurchaseRecord struct {
	ID        uint64    `json:"id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Grams     string    `json:"grams"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseListResponse lists the purchases of one user
type PurchaseListResponse struct {
	UserID    int64            `json:"user_id"`
	Purchases []PurchaseRecord `json:"purchases"`
}
