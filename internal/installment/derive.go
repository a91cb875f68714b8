// Package installment derives repayment state for installment plans from
// their payment ledgers. Progress is payment-driven, never calendar-driven:
// a one-period plan completes the moment it is fully paid and an unpaid plan
// never completes just because months have elapsed.
package installment

import (
	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
)

// State is the derived repayment state of one installment.
type State struct {
	Status              model.InstallmentStatus
	CurrentPeriod       int // whole periods completed, in [0, totalTenor]
	TotalPaid           decimal.Decimal
	PeriodPaid          decimal.Decimal // partial payment into the current period
	RemainingThisPeriod decimal.Decimal
	TotalAmount         decimal.Decimal
	RemainingAmount     decimal.Decimal // total minus paid, negative when overpaid
}

// Derive computes the repayment state from the payment ledger. It is pure
// and idempotent: deriving twice from the same ledger yields equal states.
// For a non-positive monthly amount the plan is reported active with zero
// progress rather than failing.
func Derive(inst model.Installment) State {
	totalPaid := decimal.Zero
	for _, p := range inst.Payments {
		totalPaid = totalPaid.Add(p.Amount)
	}
	totalAmount := inst.TotalAmount()

	st := State{
		Status:          model.InstallmentActive,
		TotalPaid:       totalPaid,
		TotalAmount:     totalAmount,
		RemainingAmount: totalAmount.Sub(totalPaid),
	}

	if inst.MonthlyAmount.Sign() <= 0 {
		st.PeriodPaid = decimal.Zero
		st.RemainingThisPeriod = decimal.Zero
		return st
	}

	quo, rem := totalPaid.QuoRem(inst.MonthlyAmount, 0)
	period := int(quo.IntPart())
	if period < 0 {
		period = 0
	}
	if period > inst.TotalTenor {
		period = inst.TotalTenor
	}
	st.CurrentPeriod = period
	st.PeriodPaid = rem
	st.RemainingThisPeriod = inst.MonthlyAmount.Sub(rem)

	if totalPaid.GreaterThanOrEqual(totalAmount) {
		st.Status = model.InstallmentPaidOff
		st.CurrentPeriod = inst.TotalTenor
		st.PeriodPaid = decimal.Zero
		st.RemainingThisPeriod = decimal.Zero
	}
	return st
}

// Apply writes the derived status and period back onto the record. Every
// persistence path must call this so the stored fields cannot drift from
// the ledger.
func Apply(inst *model.Installment) State {
	st := Derive(*inst)
	inst.Status = st.Status
	inst.CurrentPeriod = st.CurrentPeriod
	return st
}

// ActiveInMonth reports whether the installment carried a repayment
// obligation during the given month: it had started by month end and the
// payments made before the month began did not yet cover the full amount.
// This replays historical status from the ledger instead of projecting the
// present-day status onto past months, so the month of the final payment
// still counts as committed and later months do not.
func ActiveInMonth(inst model.Installment, m month.Key) bool {
	if !inst.StartDate.Before(m.End()) {
		return false
	}
	paid := decimal.Zero
	for _, p := range inst.Payments {
		if p.Date.Before(m.Start()) {
			paid = paid.Add(p.Amount)
		}
	}
	return paid.LessThan(inst.TotalAmount())
}
