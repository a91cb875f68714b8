// Package recurrence decides in which months a recurring monthly need is
// due. The evaluation is pure: it depends only on the need's start month and
// recurrence period, never on wall-clock time or stored state, so the same
// question can be asked for any historical or future month.
package recurrence

import (
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
)

// StartMonth returns the need's effective start month: the stored value, or
// the creation month when none was recorded.
func StartMonth(need model.MonthlyNeed) (month.Key, error) {
	if need.StartMonth == "" {
		return month.FromTime(need.CreatedAt), nil
	}
	return month.Parse(need.StartMonth)
}

// ShouldShowForMonth reports whether the need is due in the target month.
// Nothing is due before the start month. A monthly need runs for exactly
// twelve months beginning with the start month. A yearly need is due on the
// start month's calendar month every year. A forever need (the default when
// the period is unset) is due in every month from the start onward.
// Unparseable start months evaluate to false rather than failing.
func ShouldShowForMonth(need model.MonthlyNeed, target month.Key) bool {
	start, err := StartMonth(need)
	if err != nil {
		return false
	}

	monthsDiff := target.Index() - start.Index()
	if monthsDiff < 0 {
		return false
	}

	switch need.RecurrencePeriod {
	case model.RecurMonthly:
		return monthsDiff < 12
	case model.RecurYearly:
		return target.Month == start.Month
	default:
		return true
	}
}

// DueStatus pairs a need due in a month with that month's recorded payment.
type DueStatus struct {
	Need    model.MonthlyNeed
	Paid    bool
	Payment model.MonthlyNeedPayment
}

// DueForMonth returns the needs due in the target month, each joined with
// its payment record for that month when one exists.
func DueForMonth(needs []model.MonthlyNeed, payments []model.MonthlyNeedPayment, target month.Key) []DueStatus {
	paid := make(map[string]model.MonthlyNeedPayment, len(payments))
	key := target.String()
	for _, p := range payments {
		if p.YearMonth == key {
			paid[p.NeedID] = p
		}
	}

	var due []DueStatus
	for _, need := range needs {
		if !ShouldShowForMonth(need, target) {
			continue
		}
		st := DueStatus{Need: need}
		if p, ok := paid[need.ID]; ok {
			st.Paid = true
			st.Payment = p
		}
		due = append(due, st)
	}
	return due
}
