package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/shopspring/decimal"
)

// GramsPrecision is the number of decimal places kept for gold weight
const GramsPrecision = 6

// DefaultRatePerGram is the fixed simulated price of one gram of gold
const DefaultRatePerGram = 6000.0

// GoldRate is the simulated price of one gram of gold in the purchase currency
type GoldRate struct {
	perGram decimal.Decimal
}

// NewGoldRate validates and wraps a price per gram
func NewGoldRate(perGram float64) (GoldRate, error) {
	rate := decimal.NewFromFloat(perGram)
	if !rate.IsPositive() {
		return GoldRate{}, fmt.Errorf("%w: %v", errs.ErrInvalidGoldRate, perGram)
	}
	return GoldRate{perGram: rate}, nil
}

// PerGram returns the price of one gram
func (r GoldRate) PerGram() decimal.Decimal {
	return r.perGram
}

// GramsFor converts a purchase amount into grams, rounded to GramsPrecision places.
// Zero and negative amounts are converted as-is.
func (r GoldRate) GramsFor(amount float64) decimal.Decimal {
	if r.perGram.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount).DivRound(r.perGram, GramsPrecision)
}
