package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a cash movement.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single dated cash movement. Category references are weak:
// deleting a category never cascades into transactions.
type Transaction struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"` // day granularity
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // >= 0
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId,omitempty"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TransactionInput is the caller-supplied shape for creating a transaction.
// The store assigns ID and timestamps.
type TransactionInput struct {
	Date          time.Time
	Type          TransactionType
	Amount        decimal.Decimal
	CategoryID    string
	SubcategoryID string
	Note          string
}
