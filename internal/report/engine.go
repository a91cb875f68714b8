// Package report derives financial views from the record store: cashflow
// series, expense breakdowns, category comparisons, net-worth trend,
// emergency-fund progress and rule-based insights. Everything is computed
// per call from the full collections; nothing is cached or stored.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/installment"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
	"github.com/kasku-dev/kasku/internal/store"
)

var hundred = decimal.NewFromInt(100)

// DefaultWindow is the number of months covered by historical series.
const DefaultWindow = 6

// Engine computes derived financial state from the record store.
type Engine struct {
	store *store.Store
}

// NewEngine creates an aggregation Engine.
func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st}
}

// CashflowPoint is one month of the cashflow series.
type CashflowPoint struct {
	Month       month.Key
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Installment decimal.Decimal // committed monthly installment amounts
	Net         decimal.Decimal // income - expense - installment
}

// CashflowSeries returns one point per month for the n months ending with
// the month containing asOf, oldest first. The installment component is
// replayed per month from each plan's ledger, so a plan paid off last year
// does not burden last year's months it had already cleared.
func (e *Engine) CashflowSeries(asOf time.Time, n int) ([]CashflowPoint, error) {
	if n <= 0 {
		return nil, nil
	}
	txs, err := e.store.Transactions()
	if err != nil {
		return nil, err
	}
	insts, err := e.store.Installments()
	if err != nil {
		return nil, err
	}

	current := month.FromTime(asOf)
	points := make([]CashflowPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := current.Add(-i)
		p := CashflowPoint{
			Month:       m,
			Income:      decimal.Zero,
			Expense:     decimal.Zero,
			Installment: decimal.Zero,
		}
		for _, t := range txs {
			if !m.Contains(t.Date) {
				continue
			}
			switch t.Type {
			case model.TransactionIncome:
				p.Income = p.Income.Add(t.Amount)
			case model.TransactionExpense:
				p.Expense = p.Expense.Add(t.Amount)
			}
		}
		for _, inst := range insts {
			if installment.ActiveInMonth(inst, m) {
				p.Installment = p.Installment.Add(inst.MonthlyAmount)
			}
		}
		p.Net = p.Income.Sub(p.Expense).Sub(p.Installment)
		points = append(points, p)
	}
	return points, nil
}

// BreakdownRow is one category's share of a month's expenses.
type BreakdownRow struct {
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
	Percentage   decimal.Decimal // of the month's total expenses
}

// ExpenseBreakdown groups the month's expense transactions by category.
// Rows are sorted by amount descending and their percentages sum to 100
// whenever any expense exists; no expenses yields an empty slice.
func (e *Engine) ExpenseBreakdown(m month.Key) ([]BreakdownRow, error) {
	txs, err := e.store.Transactions()
	if err != nil {
		return nil, err
	}
	cats, err := e.store.Categories()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	totals := make(map[string]decimal.Decimal)
	grand := decimal.Zero
	for _, t := range txs {
		if t.Type != model.TransactionExpense || !m.Contains(t.Date) {
			continue
		}
		cur, ok := totals[t.CategoryID]
		if !ok {
			cur = decimal.Zero
		}
		totals[t.CategoryID] = cur.Add(t.Amount)
		grand = grand.Add(t.Amount)
	}
	if len(totals) == 0 {
		return nil, nil
	}

	rows := make([]BreakdownRow, 0, len(totals))
	for catID, amount := range totals {
		row := BreakdownRow{
			CategoryID:   catID,
			CategoryName: names[catID],
			Amount:       amount,
			Percentage:   decimal.Zero,
		}
		if grand.Sign() > 0 {
			row.Percentage = amount.Div(grand).Mul(hundred)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].CategoryID < rows[j].CategoryID
	})
	return rows, nil
}

// ComparisonRow joins a category's current-month expense total with its
// previous-month total.
type ComparisonRow struct {
	CategoryID       string
	CategoryName     string
	Current          decimal.Decimal
	Previous         decimal.Decimal
	Change           decimal.Decimal
	ChangePercentage decimal.Decimal
}

// CompareCategories takes the topN categories of the current month by
// expense amount and joins each against the same category's previous-month
// total (zero when absent). A category that had nothing last month and
// something this month reports a 100% change.
func (e *Engine) CompareCategories(current month.Key, topN int) ([]ComparisonRow, error) {
	curRows, err := e.ExpenseBreakdown(current)
	if err != nil {
		return nil, err
	}
	prevRows, err := e.ExpenseBreakdown(current.Add(-1))
	if err != nil {
		return nil, err
	}

	prev := make(map[string]decimal.Decimal, len(prevRows))
	for _, r := range prevRows {
		prev[r.CategoryID] = r.Amount
	}

	if topN > 0 && len(curRows) > topN {
		curRows = curRows[:topN]
	}

	rows := make([]ComparisonRow, 0, len(curRows))
	for _, r := range curRows {
		p, ok := prev[r.CategoryID]
		if !ok {
			p = decimal.Zero
		}
		row := ComparisonRow{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Current:      r.Amount,
			Previous:     p,
			Change:       r.Amount.Sub(p),
		}
		switch {
		case p.Sign() > 0:
			row.ChangePercentage = row.Change.Div(p).Mul(hundred)
		case r.Amount.Sign() > 0:
			row.ChangePercentage = hundred
		default:
			row.ChangePercentage = decimal.Zero
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SurplusRate returns (income-expense)/income as a percentage, and zero
// when income is zero.
func SurplusRate(income, expense decimal.Decimal) decimal.Decimal {
	if income.Sign() == 0 {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(hundred)
}

// MonthTotals sums one month's income and expense transactions.
func (e *Engine) MonthTotals(m month.Key) (income, expense decimal.Decimal, err error) {
	txs, err := e.store.Transactions()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txs {
		if !m.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case model.TransactionIncome:
			income = income.Add(t.Amount)
		case model.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense, nil
}
