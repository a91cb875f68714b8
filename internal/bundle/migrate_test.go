package bundle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasku-dev/kasku/internal/model"
)

func TestMigrate_V1ToCurrent(t *testing.T) {
	old := model.AppData{
		Version:    1,
		ExportedAt: date(2024, 6, 30),
		Assets: []model.Asset{{
			ID: "a1", Name: "Savings", CurrentValue: dec("10000000"),
			UpdatedAt: date(2024, 5, 1),
		}},
		MonthlyNeeds: []model.MonthlyNeed{{
			ID: "n1", Name: "Rent", BudgetAmount: dec("2000000"),
			CreatedAt: date(2024, 2, 10),
		}},
	}

	got := Migrate(old)

	assert.Equal(t, model.SchemaVersion, got.Version)
	assert.NotNil(t, got.Wishlist)
	assert.Equal(t, "IDR", got.Settings.Currency)
	assert.Equal(t, 6, got.Settings.EmergencyFundMultiplier)

	require.Len(t, got.Assets[0].ValueHistory, 1)
	assert.Equal(t, date(2024, 5, 1), got.Assets[0].ValueHistory[0].Date)
	assert.True(t, got.Assets[0].ValueHistory[0].Value.Equal(dec("10000000")))

	assert.Equal(t, "2024-02", got.MonthlyNeeds[0].StartMonth)
	assert.Equal(t, model.RecurForever, got.MonthlyNeeds[0].RecurrencePeriod)
}

func TestMigrate_SeedsHistoryFromExportDateWhenUpdatedAtMissing(t *testing.T) {
	old := model.AppData{
		Version:    2,
		ExportedAt: date(2024, 6, 30),
		Assets:     []model.Asset{{ID: "a1", CurrentValue: dec("500")}},
	}
	got := Migrate(old)
	require.Len(t, got.Assets[0].ValueHistory, 1)
	assert.Equal(t, date(2024, 6, 30), got.Assets[0].ValueHistory[0].Date)
}

func TestMigrate_CurrentVersionPassesThrough(t *testing.T) {
	cur := model.AppData{
		Version: model.SchemaVersion,
		Assets: []model.Asset{{
			ID:           "a1",
			CurrentValue: dec("100"),
			ValueHistory: []model.AssetValuePoint{{Date: date(2024, 1, 1), Value: dec("100")}},
		}},
		Settings: model.Settings{Currency: "USD", EmergencyFundMultiplier: 3},
	}
	got := Migrate(cur)
	assert.Equal(t, cur, got)
}

func TestMigrate_Idempotent(t *testing.T) {
	old := model.AppData{
		Version:      1,
		ExportedAt:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		MonthlyNeeds: []model.MonthlyNeed{{ID: "n1", CreatedAt: date(2024, 3, 1)}},
	}
	once := Migrate(old)
	twice := Migrate(once)
	assert.Equal(t, once, twice)
}
