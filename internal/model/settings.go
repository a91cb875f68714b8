package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds per-user financial preferences kept in the record store.
type Settings struct {
	Currency                string          `json:"currency"`
	MonthlyLivingCost       decimal.Decimal `json:"monthlyLivingCost"`
	EmergencyFundMultiplier int             `json:"emergencyFundMultiplier"`
	EmergencyFundSavings    decimal.Decimal `json:"emergencyFundSavings"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

// DefaultSettings returns the settings used before the user configures any.
func DefaultSettings() Settings {
	return Settings{
		Currency:                "IDR",
		EmergencyFundMultiplier: 6,
	}
}
