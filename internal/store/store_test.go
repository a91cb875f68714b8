package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasku-dev/kasku/internal/model"
)

func TestMissingCollectionIsEmpty(t *testing.T) {
	s := New(t.TempDir())

	txs, err := s.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	cats, err := s.Categories()
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestRoundTripPreservesDecimals(t *testing.T) {
	s := New(t.TempDir())
	amount := decimal.RequireFromString("123456.78")

	in := []model.Transaction{{
		ID:         "t1",
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:       model.TransactionExpense,
		Amount:     amount,
		CategoryID: "food",
	}}
	require.NoError(t, s.SetTransactions(in))

	out, err := s.Transactions()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Amount.Equal(amount))
	assert.Equal(t, in[0].Date, out[0].Date)
}

func TestSetReplacesWholeCollection(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SetCategories([]model.Category{
		{ID: "a", Name: "A", Type: model.CategoryExpense},
		{ID: "b", Name: "B", Type: model.CategoryExpense},
	}))
	require.NoError(t, s.SetCategories([]model.Category{
		{ID: "c", Name: "C", Type: model.CategoryIncome},
	}))

	cats, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "c", cats[0].ID)
}

func TestSettingsDefaultWhenUnset(t *testing.T) {
	s := New(t.TempDir())

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	want := model.Settings{
		Currency:                "USD",
		MonthlyLivingCost:       decimal.RequireFromString("2500"),
		EmergencyFundMultiplier: 3,
	}
	require.NoError(t, s.SetSettings(want))

	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, want.Currency, got.Currency)
	assert.Equal(t, want.EmergencyFundMultiplier, got.EmergencyFundMultiplier)
	assert.True(t, got.MonthlyLivingCost.Equal(want.MonthlyLivingCost))
}

func TestLazyDirectoryCreation(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "data")
	s := New(root)

	_, err := s.Transactions()
	require.NoError(t, err, "reading before any write is fine")
	_, statErr := os.Stat(root)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, s.SetTransactions(nil))
	_, statErr = os.Stat(root)
	assert.NoError(t, statErr)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets.json"), []byte("{oops"), 0o644))

	_, err := s.Assets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assets")
}
