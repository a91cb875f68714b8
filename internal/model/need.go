package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrencePeriod controls in which months a monthly need is due.
type RecurrencePeriod string

const (
	RecurMonthly RecurrencePeriod = "monthly"
	RecurYearly  RecurrencePeriod = "yearly"
	RecurForever RecurrencePeriod = "forever"
)

// MonthlyNeed is a recurring budgeted obligation. Whether it is due in a
// given month is always derived from StartMonth and RecurrencePeriod,
// never stored.
type MonthlyNeed struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	BudgetAmount     decimal.Decimal  `json:"budgetAmount"`
	DueDay           int              `json:"dueDay,omitempty"` // 0 = unset
	RecurrencePeriod RecurrencePeriod `json:"recurrencePeriod,omitempty"`
	StartMonth       string           `json:"startMonth"` // YYYY-MM
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// MonthlyNeedPayment records the actual amount paid against a need in one
// month. At most one exists per (NeedID, YearMonth) pair.
type MonthlyNeedPayment struct {
	ID           string          `json:"id"`
	NeedID       string          `json:"needId"`
	YearMonth    string          `json:"yearMonth"` // YYYY-MM
	ActualAmount decimal.Decimal `json:"actualAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MonthlyNeedInput is the caller-supplied shape for creating a need.
type MonthlyNeedInput struct {
	Name             string
	BudgetAmount     decimal.Decimal
	DueDay           int
	RecurrencePeriod RecurrencePeriod
	StartMonth       string // defaults to the creation month when empty
}
