package asset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(store.New(t.TempDir()))
	svc.now = func() time.Time { return date(2024, 6, 15) }
	return svc
}

func TestValidateInput(t *testing.T) {
	assert.Empty(t, ValidateInput(model.AssetInput{Name: "Savings", CurrentValue: dec("100")}))

	errs := ValidateInput(model.AssetInput{CurrentValue: dec("-1")})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "currentValue", errs[1].Field)
}

func TestCreateSeedsValueHistory(t *testing.T) {
	svc := newService(t)

	a, err := svc.Create(model.AssetInput{Name: "Savings", CurrentValue: dec("10000000")})
	require.NoError(t, err)
	assert.True(t, a.CurrentValue.Equal(dec("10000000")))
	require.Len(t, a.ValueHistory, 1)
	assert.Equal(t, date(2024, 6, 15), a.ValueHistory[0].Date)
}

func TestRevalueAppendsAndOverwrites(t *testing.T) {
	svc := newService(t)
	a, err := svc.Create(model.AssetInput{Name: "Gold", CurrentValue: dec("5000000")})
	require.NoError(t, err)

	got, err := svc.Revalue(a.ID, date(2024, 7, 1), dec("5200000"))
	require.NoError(t, err)
	assert.True(t, got.CurrentValue.Equal(dec("5200000")))
	assert.Len(t, got.ValueHistory, 2)

	// Same day again: overwrite, no new point.
	got, err = svc.Revalue(a.ID, date(2024, 7, 1), dec("5250000"))
	require.NoError(t, err)
	assert.Len(t, got.ValueHistory, 2)
	assert.True(t, got.CurrentValue.Equal(dec("5250000")))

	v, ok := got.ValueAt(date(2024, 7, 2))
	require.True(t, ok)
	assert.True(t, v.Equal(dec("5250000")))
	v, ok = got.ValueAt(date(2024, 6, 20))
	require.True(t, ok)
	assert.True(t, v.Equal(dec("5000000")), "staircase keeps the older value before the revaluation")
}

func TestRevalue_Invalid(t *testing.T) {
	svc := newService(t)
	a, err := svc.Create(model.AssetInput{Name: "Gold", CurrentValue: dec("1")})
	require.NoError(t, err)

	_, err = svc.Revalue(a.ID, date(2024, 7, 1), dec("-1"))
	require.Error(t, err)

	_, err = svc.Revalue("missing", date(2024, 7, 1), dec("1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	a, err := svc.Create(model.AssetInput{Name: "Gold", CurrentValue: dec("1")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(a.ID))
	all, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(a.ID), ErrNotFound)
}
