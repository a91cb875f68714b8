package bundle

import (
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
)

// migration upgrades a bundle from one schema version to the next. Every
// step is pure, additive and idempotent: it fills missing fields with
// defaults and never removes data.
type migration struct {
	from  int
	apply func(model.AppData) model.AppData
}

var migrations = []migration{
	{from: 1, apply: migrateV1toV2},
	{from: 2, apply: migrateV2toV3},
}

// Migrate upgrades a bundle to the current schema version by applying the
// numbered chain sequentially from the bundle's version. Bundles already at
// the current version pass through unchanged.
func Migrate(data model.AppData) model.AppData {
	for _, m := range migrations {
		if data.Version == m.from {
			data = m.apply(data)
			data.Version = m.from + 1
		}
	}
	return data
}

// v2 introduced the wishlist collection and the emergency-fund settings.
func migrateV1toV2(data model.AppData) model.AppData {
	if data.Wishlist == nil {
		data.Wishlist = []model.WishlistItem{}
	}
	if data.Settings.Currency == "" {
		data.Settings.Currency = model.DefaultSettings().Currency
	}
	if data.Settings.EmergencyFundMultiplier == 0 {
		data.Settings.EmergencyFundMultiplier = model.DefaultSettings().EmergencyFundMultiplier
	}
	return data
}

// v3 introduced asset value history and explicit need start months.
func migrateV2toV3(data model.AppData) model.AppData {
	for i := range data.Assets {
		if len(data.Assets[i].ValueHistory) > 0 {
			continue
		}
		day := data.Assets[i].UpdatedAt
		if day.IsZero() {
			day = data.ExportedAt
		}
		data.Assets[i].ValueHistory = []model.AssetValuePoint{{
			Date:  day,
			Value: data.Assets[i].CurrentValue,
		}}
	}
	for i := range data.MonthlyNeeds {
		if data.MonthlyNeeds[i].StartMonth == "" {
			data.MonthlyNeeds[i].StartMonth = month.FromTime(data.MonthlyNeeds[i].CreatedAt).String()
		}
		if data.MonthlyNeeds[i].RecurrencePeriod == "" {
			data.MonthlyNeeds[i].RecurrencePeriod = model.RecurForever
		}
	}
	return data
}
