package recurrence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
)

func mk(period model.RecurrencePeriod, startMonth string) model.MonthlyNeed {
	return model.MonthlyNeed{
		ID:               "need-1",
		Name:             "Rent",
		BudgetAmount:     decimal.NewFromInt(2000000),
		RecurrencePeriod: period,
		StartMonth:       startMonth,
		CreatedAt:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
}

func key(s string) month.Key {
	k, err := month.Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

func TestShouldShow_Monthly_TwelveMonthWindow(t *testing.T) {
	need := mk(model.RecurMonthly, "2024-06")

	// Inclusive of the start month, exclusive at month 12.
	for m := key("2024-06"); m.Before(key("2025-06")); m = m.Add(1) {
		assert.True(t, ShouldShowForMonth(need, m), "expected due in %s", m)
	}
	assert.False(t, ShouldShowForMonth(need, key("2025-06")))
	assert.False(t, ShouldShowForMonth(need, key("2024-05")))
}

func TestShouldShow_Yearly_SameCalendarMonth(t *testing.T) {
	need := mk(model.RecurYearly, "2024-03")

	assert.True(t, ShouldShowForMonth(need, key("2024-03")))
	assert.True(t, ShouldShowForMonth(need, key("2025-03")))
	assert.True(t, ShouldShowForMonth(need, key("2030-03")))

	assert.False(t, ShouldShowForMonth(need, key("2023-03")), "never before the start")
	assert.False(t, ShouldShowForMonth(need, key("2024-04")))
	assert.False(t, ShouldShowForMonth(need, key("2025-02")))
}

func TestShouldShow_Forever(t *testing.T) {
	need := mk(model.RecurForever, "2024-06")

	assert.False(t, ShouldShowForMonth(need, key("2024-05")))
	assert.True(t, ShouldShowForMonth(need, key("2024-06")))
	assert.True(t, ShouldShowForMonth(need, key("2099-12")))
}

func TestShouldShow_DefaultPeriodIsForever(t *testing.T) {
	need := mk("", "2024-06")
	assert.True(t, ShouldShowForMonth(need, key("2030-01")))
}

func TestShouldShow_StartMonthDefaultsToCreation(t *testing.T) {
	need := mk(model.RecurForever, "")
	// CreatedAt is June 2024.
	assert.False(t, ShouldShowForMonth(need, key("2024-05")))
	assert.True(t, ShouldShowForMonth(need, key("2024-06")))
}

func TestShouldShow_UnparseableStartMonth(t *testing.T) {
	need := mk(model.RecurForever, "garbage")
	assert.False(t, ShouldShowForMonth(need, key("2024-06")))
}

func TestDueForMonth_JoinsPayments(t *testing.T) {
	needs := []model.MonthlyNeed{
		mk(model.RecurForever, "2024-01"),
		{
			ID:               "need-2",
			Name:             "Insurance",
			BudgetAmount:     decimal.NewFromInt(300000),
			RecurrencePeriod: model.RecurYearly,
			StartMonth:       "2024-03",
		},
	}
	payments := []model.MonthlyNeedPayment{
		{ID: "p1", NeedID: "need-1", YearMonth: "2024-06", ActualAmount: decimal.NewFromInt(1900000)},
		{ID: "p2", NeedID: "need-1", YearMonth: "2024-05", ActualAmount: decimal.NewFromInt(1800000)},
	}

	due := DueForMonth(needs, payments, key("2024-06"))
	require.Len(t, due, 1, "yearly need not due in June")
	assert.Equal(t, "need-1", due[0].Need.ID)
	assert.True(t, due[0].Paid)
	assert.True(t, due[0].Payment.ActualAmount.Equal(decimal.NewFromInt(1900000)),
		"joined against the June payment, not May")

	due = DueForMonth(needs, payments, key("2025-03"))
	require.Len(t, due, 2)
}
