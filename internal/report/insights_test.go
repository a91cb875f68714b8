package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasku-dev/kasku/internal/model"
)

func levels(insights []Insight) []InsightLevel {
	out := make([]InsightLevel, len(insights))
	for i, in := range insights {
		out[i] = in.Level
	}
	return out
}

func TestInsights_DeficitAndExpenseJump(t *testing.T) {
	engine, st := newEngine(t)
	require.NoError(t, st.SetTransactions([]model.Transaction{
		tx("1", model.TransactionIncome, "1000", "salary", date(2024, 6, 25)),
		tx("2", model.TransactionExpense, "1500", "food", date(2024, 6, 10)),
		tx("3", model.TransactionExpense, "1000", "food", date(2024, 5, 10)),
	}))

	insights, err := engine.Insights(date(2024, 6, 30))
	require.NoError(t, err)

	// Deficit warning and expense-jump warning (150% of last month) both fire.
	require.Len(t, insights, 2)
	assert.Contains(t, insights[0].Message, "more than you earned")
	assert.Contains(t, insights[1].Message, "last month")
}

func TestInsights_HealthySituation(t *testing.T) {
	engine, st := newEngine(t)
	require.NoError(t, st.SetTransactions([]model.Transaction{
		tx("1", model.TransactionIncome, "1000", "salary", date(2024, 6, 25)),
		tx("2", model.TransactionExpense, "700", "food", date(2024, 6, 10)),
	}))
	require.NoError(t, st.SetSettings(model.Settings{
		MonthlyLivingCost:       dec("100"),
		EmergencyFundMultiplier: 6,
		EmergencyFundSavings:    dec("600"),
	}))

	insights, err := engine.Insights(date(2024, 6, 30))
	require.NoError(t, err)

	// 30% surplus and a fully funded emergency fund.
	require.Len(t, insights, 2)
	assert.Equal(t, []InsightLevel{InsightSuccess, InsightSuccess}, levels(insights))
}

func TestInsights_IndependentRulesAllFire(t *testing.T) {
	engine, st := newEngine(t)
	require.NoError(t, st.SetTransactions([]model.Transaction{
		tx("1", model.TransactionIncome, "100", "salary", date(2024, 6, 25)),
		tx("2", model.TransactionExpense, "500", "food", date(2024, 6, 10)),
	}))
	require.NoError(t, st.SetSettings(model.Settings{
		MonthlyLivingCost:       dec("1000"),
		EmergencyFundMultiplier: 6,
		EmergencyFundSavings:    dec("100"),
	}))
	require.NoError(t, st.SetInstallments([]model.Installment{{
		ID:            "i1",
		Name:          "Bike",
		TotalTenor:    12,
		MonthlyAmount: dec("100"),
		StartDate:     date(2024, 1, 1),
	}}))
	require.NoError(t, st.SetAssets([]model.Asset{
		asset("l1", "Debt", true, "9999"),
	}))

	insights, err := engine.Insights(date(2024, 6, 30))
	require.NoError(t, err)

	// Deficit, underfunded emergency fund, active installments and negative
	// net worth: four independent rules, none suppressing another.
	require.Len(t, insights, 4)
	assert.Equal(t,
		[]InsightLevel{InsightWarning, InsightWarning, InsightInfo, InsightWarning},
		levels(insights))
}

func TestInsights_QuietWhenNothingApplies(t *testing.T) {
	engine, st := newEngine(t)
	require.NoError(t, st.SetTransactions([]model.Transaction{
		tx("1", model.TransactionIncome, "1000", "salary", date(2024, 6, 25)),
		tx("2", model.TransactionExpense, "900", "food", date(2024, 6, 10)),
	}))

	insights, err := engine.Insights(date(2024, 6, 30))
	require.NoError(t, err)
	assert.Empty(t, insights, "modest surplus, no fund target, no installments, zero net worth")
}
