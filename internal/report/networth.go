package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/month"
)

// NetWorthSummary is the present-day net-worth split.
type NetWorthSummary struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
}

// NetWorth sums current asset values minus current liability values. An
// empty asset set yields exactly zero.
func (e *Engine) NetWorth() (NetWorthSummary, error) {
	assets, err := e.store.Assets()
	if err != nil {
		return NetWorthSummary{}, err
	}

	sum := NetWorthSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
	}
	for _, a := range assets {
		if a.IsLiability {
			sum.Liabilities = sum.Liabilities.Add(a.CurrentValue)
		} else {
			sum.Assets = sum.Assets.Add(a.CurrentValue)
		}
	}
	sum.NetWorth = sum.Assets.Sub(sum.Liabilities)
	return sum, nil
}

// NetWorthPoint is one month of the net-worth trend.
type NetWorthPoint struct {
	Month       month.Key
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
}

// NetWorthTrend reconstructs each month's net worth as a staircase: per
// asset, the most recent value-history point at or before the month's end.
// An asset with no point yet that month contributes nothing. Not a stored
// time series; recomputed from history on every call.
func (e *Engine) NetWorthTrend(asOf time.Time, n int) ([]NetWorthPoint, error) {
	if n <= 0 {
		return nil, nil
	}
	assets, err := e.store.Assets()
	if err != nil {
		return nil, err
	}

	current := month.FromTime(asOf)
	points := make([]NetWorthPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := current.Add(-i)
		cutoff := m.End().Add(-time.Nanosecond)
		p := NetWorthPoint{
			Month:       m,
			Assets:      decimal.Zero,
			Liabilities: decimal.Zero,
		}
		for _, a := range assets {
			v, ok := a.ValueAt(cutoff)
			if !ok {
				continue
			}
			if a.IsLiability {
				p.Liabilities = p.Liabilities.Add(v)
			} else {
				p.Assets = p.Assets.Add(v)
			}
		}
		p.NetWorth = p.Assets.Sub(p.Liabilities)
		points = append(points, p)
	}
	return points, nil
}

// EmergencyFundStatus reports progress toward the emergency-fund target.
type EmergencyFundStatus struct {
	Target   decimal.Decimal // monthly living cost x multiplier
	Savings  decimal.Decimal
	Progress decimal.Decimal // percentage capped at 100, zero for zero target
}

// EmergencyFund computes target and progress from the stored settings.
func (e *Engine) EmergencyFund() (EmergencyFundStatus, error) {
	settings, err := e.store.Settings()
	if err != nil {
		return EmergencyFundStatus{}, err
	}

	st := EmergencyFundStatus{
		Target:   settings.MonthlyLivingCost.Mul(decimal.NewFromInt(int64(settings.EmergencyFundMultiplier))),
		Savings:  settings.EmergencyFundSavings,
		Progress: decimal.Zero,
	}
	if st.Target.Sign() > 0 {
		st.Progress = st.Savings.Div(st.Target).Mul(hundred)
		if st.Progress.GreaterThan(hundred) {
			st.Progress = hundred
		}
	}
	return st, nil
}
