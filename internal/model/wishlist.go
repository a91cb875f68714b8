package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistItem is a savings goal toward a planned purchase.
type WishlistItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	IsPurchased  bool            `json:"isPurchased"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// WishlistInput carries the user-supplied fields for a new wishlist item.
type WishlistInput struct {
	Name         string
	TargetAmount decimal.Decimal
}

// Progress returns saved/target as a percentage capped at 100, or zero for
// a zero target.
func (w WishlistItem) Progress() decimal.Decimal {
	if w.TargetAmount.IsZero() {
		return decimal.Zero
	}
	p := w.SavedAmount.Div(w.TargetAmount).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
