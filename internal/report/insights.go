package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/installment"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
)

// InsightLevel classifies an insight message.
type InsightLevel string

const (
	InsightInfo    InsightLevel = "info"
	InsightSuccess InsightLevel = "success"
	InsightWarning InsightLevel = "warning"
)

// Insight is one rule-generated observation about the current month.
type Insight struct {
	Level   InsightLevel
	Message string
}

// Insights evaluates the fixed rule list against the current aggregates.
// Rules are independent: every applicable rule fires and none suppresses
// another. The order of the returned slice is the rule order.
func (e *Engine) Insights(asOf time.Time) ([]Insight, error) {
	current := month.FromTime(asOf)

	income, expense, err := e.MonthTotals(current)
	if err != nil {
		return nil, err
	}
	_, prevExpense, err := e.MonthTotals(current.Add(-1))
	if err != nil {
		return nil, err
	}
	fund, err := e.EmergencyFund()
	if err != nil {
		return nil, err
	}
	insts, err := e.store.Installments()
	if err != nil {
		return nil, err
	}
	worth, err := e.NetWorth()
	if err != nil {
		return nil, err
	}

	surplus := SurplusRate(income, expense)
	activeInstallments := 0
	for _, inst := range insts {
		if installment.Derive(inst).Status == model.InstallmentActive {
			activeInstallments++
		}
	}

	var out []Insight
	add := func(level InsightLevel, format string, args ...any) {
		out = append(out, Insight{Level: level, Message: fmt.Sprintf(format, args...)})
	}

	if surplus.Sign() < 0 {
		add(InsightWarning, "you spent more than you earned this month (surplus %s%%)", surplus.StringFixed(1))
	}
	if surplus.GreaterThanOrEqual(decimal.NewFromInt(20)) {
		add(InsightSuccess, "strong surplus: %s%% of income kept this month", surplus.StringFixed(1))
	}
	if fund.Target.Sign() > 0 && fund.Progress.LessThan(decimal.NewFromInt(50)) {
		add(InsightWarning, "emergency fund at %s%% of target", fund.Progress.StringFixed(1))
	}
	if fund.Target.Sign() > 0 && fund.Progress.GreaterThanOrEqual(hundred) {
		add(InsightSuccess, "emergency fund fully funded")
	}
	if activeInstallments > 0 {
		add(InsightInfo, "%d active installment plans", activeInstallments)
	}
	if prevExpense.Sign() > 0 {
		ratio := expense.Div(prevExpense).Mul(hundred)
		if ratio.GreaterThan(decimal.NewFromInt(120)) {
			add(InsightWarning, "expenses are %s%% of last month's", ratio.StringFixed(0))
		}
	}
	if worth.NetWorth.Sign() < 0 {
		add(InsightWarning, "net worth is negative (%s)", worth.NetWorth.StringFixed(0))
	}

	return out, nil
}
