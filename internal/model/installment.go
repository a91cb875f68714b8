package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is derived from the payment ledger, never set directly.
type InstallmentStatus string

const (
	InstallmentActive  InstallmentStatus = "active"
	InstallmentPaidOff InstallmentStatus = "paid_off"
)

// Installment is a fixed-tenor repayment plan. Status and CurrentPeriod are
// persisted for export compatibility but the embedded payment ledger is the
// sole source of truth: both fields are re-derived on every read and write.
type Installment struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	TotalTenor    int                  `json:"totalTenor"` // number of monthly periods
	MonthlyAmount decimal.Decimal      `json:"monthlyAmount"`
	StartDate     time.Time            `json:"startDate"`
	Subcategory   string               `json:"subcategory,omitempty"`
	Status        InstallmentStatus    `json:"status"`
	CurrentPeriod int                  `json:"currentMonth"` // periods completed
	Payments      []InstallmentPayment `json:"payments"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// InstallmentPayment is an append-only ledger entry. The sum of payment
// amounts is the sole source of truth for repayment progress.
type InstallmentPayment struct {
	ID            string          `json:"id"`
	InstallmentID string          `json:"installmentId"`
	Amount        decimal.Decimal `json:"amount"` // > 0
	Date          time.Time       `json:"date"`
	Note          string          `json:"note,omitempty"`
}

// InstallmentInput is the caller-supplied shape for creating an installment.
type InstallmentInput struct {
	Name          string
	TotalTenor    int
	MonthlyAmount decimal.Decimal
	StartDate     time.Time
	Subcategory   string
}

// PaymentInput is the caller-supplied shape for recording a payment.
type PaymentInput struct {
	Amount decimal.Decimal
	Date   time.Time
	Note   string
}

// TotalAmount returns totalTenor x monthlyAmount.
func (i Installment) TotalAmount() decimal.Decimal {
	return i.MonthlyAmount.Mul(decimal.NewFromInt(int64(i.TotalTenor)))
}
