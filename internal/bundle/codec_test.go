package bundle

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

func seedStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(t.TempDir())
	require.NoError(t, st.SetTransactions([]model.Transaction{{
		ID:         "t1",
		Date:       date(2024, 6, 1),
		Type:       model.TransactionExpense,
		Amount:     dec("125000"),
		CategoryID: "food",
		Note:       "groceries",
	}}))
	require.NoError(t, st.SetCategories([]model.Category{{
		ID:   "food",
		Name: "Food",
		Type: model.CategoryExpense,
		Subcategories: []model.Subcategory{
			{ID: "g", Name: "Groceries", ParentID: "food"},
		},
	}}))
	require.NoError(t, st.SetInstallments([]model.Installment{{
		ID:            "i1",
		Name:          "Bike",
		TotalTenor:    12,
		MonthlyAmount: dec("500000"),
		StartDate:     date(2024, 1, 1),
		Status:        model.InstallmentActive,
		Payments: []model.InstallmentPayment{
			{ID: "p1", InstallmentID: "i1", Amount: dec("500000"), Date: date(2024, 1, 5)},
		},
	}}))
	require.NoError(t, st.SetMonthlyNeeds([]model.MonthlyNeed{{
		ID: "n1", Name: "Rent", BudgetAmount: dec("2000000"),
		RecurrencePeriod: model.RecurForever, StartMonth: "2024-01",
	}}))
	require.NoError(t, st.SetMonthlyNeedPayments([]model.MonthlyNeedPayment{{
		ID: "np1", NeedID: "n1", YearMonth: "2024-06", ActualAmount: dec("2000000"),
	}}))
	require.NoError(t, st.SetAssets([]model.Asset{{
		ID: "a1", Name: "Savings", CurrentValue: dec("10000000"),
		ValueHistory: []model.AssetValuePoint{{Date: date(2024, 6, 1), Value: dec("10000000")}},
	}}))
	require.NoError(t, st.SetWishlist([]model.WishlistItem{{
		ID: "w1", Name: "Camera", TargetAmount: dec("8000000"), SavedAmount: dec("2000000"),
	}}))
	require.NoError(t, st.SetSettings(model.Settings{
		Currency:                "IDR",
		MonthlyLivingCost:       dec("4000000"),
		EmergencyFundMultiplier: 6,
	}))
	return st
}

func TestRoundTrip(t *testing.T) {
	src := seedStore(t)

	data, err := Export(src, date(2024, 6, 30))
	require.NoError(t, err)
	assert.Equal(t, model.SchemaVersion, data.Version)

	raw, err := Encode(data)
	require.NoError(t, err)

	decoded, errs := Decode(raw)
	require.Empty(t, errs)

	dst := store.New(t.TempDir())
	require.NoError(t, Import(dst, decoded, ModeReplace))

	back, err := Export(dst, date(2024, 6, 30))
	require.NoError(t, err)

	assert.Equal(t, data.Transactions, back.Transactions)
	assert.Equal(t, data.Categories, back.Categories)
	assert.Equal(t, data.Wishlist, back.Wishlist)
	assert.Equal(t, data.MonthlyNeeds, back.MonthlyNeeds)
	assert.Equal(t, data.MonthlyNeedPayments, back.MonthlyNeedPayments)
	assert.Equal(t, data.Assets, back.Assets)
	assert.True(t, data.Settings.MonthlyLivingCost.Equal(back.Settings.MonthlyLivingCost))
	require.Len(t, back.Installments, 1)
	assert.True(t, back.Installments[0].MonthlyAmount.Equal(dec("500000")))
	require.Len(t, back.Installments[0].Payments, 1)
}

func TestRoundTrip_EmptyDataSet(t *testing.T) {
	src := store.New(t.TempDir())

	data, err := Export(src, date(2024, 6, 30))
	require.NoError(t, err)
	raw, err := Encode(data)
	require.NoError(t, err)
	decoded, errs := Decode(raw)
	require.Empty(t, errs)

	dst := store.New(t.TempDir())
	require.NoError(t, Import(dst, decoded, ModeReplace))

	txs, err := dst.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, errs := Decode([]byte("{not json"))
	require.Len(t, errs, 1)
	assert.Equal(t, "bundle", errs[0].Field)
}

func TestDecode_StructuralErrors(t *testing.T) {
	raw := []byte(`{
		"version": 99,
		"transactions": [
			{"id": "t1", "type": "bogus", "amount": "10"},
			{"id": "t1", "type": "income", "amount": "10"}
		]
	}`)
	_, errs := Decode(raw)
	require.NotEmpty(t, errs)

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["version"], "version out of range")
	assert.True(t, fields["transactions"], "unknown type and duplicate id")
}

func TestImport_MergeAppendsOnlyUnseenIDs(t *testing.T) {
	dst := store.New(t.TempDir())
	require.NoError(t, dst.SetTransactions([]model.Transaction{{
		ID: "t1", Type: model.TransactionExpense, Amount: dec("1"),
		CategoryID: "food", Date: date(2024, 6, 1), Note: "local",
	}}))
	require.NoError(t, dst.SetSettings(model.Settings{Currency: "USD", EmergencyFundMultiplier: 3}))

	incoming := model.AppData{
		Version: model.SchemaVersion,
		Transactions: []model.Transaction{
			{ID: "t1", Type: model.TransactionExpense, Amount: dec("999"),
				CategoryID: "food", Date: date(2024, 6, 1), Note: "remote"},
			{ID: "t2", Type: model.TransactionIncome, Amount: dec("5"),
				CategoryID: "salary", Date: date(2024, 6, 2)},
		},
		Settings: model.Settings{Currency: "IDR", EmergencyFundMultiplier: 6},
	}
	require.NoError(t, Import(dst, incoming, ModeMerge))

	txs, err := dst.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "local", txs[0].Note, "merge never updates in place")
	assert.Equal(t, "t2", txs[1].ID)

	settings, err := dst.Settings()
	require.NoError(t, err)
	assert.Equal(t, "USD", settings.Currency, "merge keeps local settings")
}

func TestImport_UnknownMode(t *testing.T) {
	dst := store.New(t.TempDir())
	err := Import(dst, model.AppData{Version: model.SchemaVersion}, "upsert")
	require.Error(t, err)
}
