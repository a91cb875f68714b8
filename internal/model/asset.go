package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a tracked holding. IsLiability flips its sign in net worth.
// ValueHistory holds at most one point per day; a same-day revaluation
// overwrites that day's point rather than appending a duplicate.
type Asset struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	IsLiability  bool              `json:"isLiability"`
	CurrentValue decimal.Decimal   `json:"currentValue"`
	ValueHistory []AssetValuePoint `json:"valueHistory"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// AssetValuePoint is one dated valuation of an asset.
type AssetValuePoint struct {
	Date  time.Time       `json:"date"` // day granularity
	Value decimal.Decimal `json:"value"`
}

// AssetInput is the caller-supplied shape for creating an asset.
type AssetInput struct {
	Name         string
	IsLiability  bool
	CurrentValue decimal.Decimal
}

// ValueAt returns the most recent recorded value at or before the cutoff,
// reconstructing the asset's historical value as a staircase. The boolean
// is false when no point exists at or before the cutoff.
func (a Asset) ValueAt(cutoff time.Time) (decimal.Decimal, bool) {
	best := decimal.Zero
	found := false
	var bestDate time.Time
	for _, p := range a.ValueHistory {
		if p.Date.After(cutoff) {
			continue
		}
		if !found || p.Date.After(bestDate) {
			best = p.Value
			bestDate = p.Date
			found = true
		}
	}
	return best, found
}

// RecordValue applies a revaluation: CurrentValue is replaced and the
// history gains (or overwrites) the point for the valuation day.
func (a *Asset) RecordValue(day time.Time, value decimal.Decimal) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	a.CurrentValue = value
	for i, p := range a.ValueHistory {
		if p.Date.Equal(day) {
			a.ValueHistory[i].Value = value
			return
		}
	}
	a.ValueHistory = append(a.ValueHistory, AssetValuePoint{Date: day, Value: value})
}
