package transaction

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
	st := store.New(t.TempDir())
	require.NoError(t, st.SetCategories([]model.Category{
		{
			ID:   "food",
			Name: "Food",
			Type: model.CategoryExpense,
			Subcategories: []model.Subcategory{
				{ID: "groceries", Name: "Groceries", ParentID: "food"},
			},
		},
		{ID: "salary", Name: "Salary", Type: model.CategoryIncome},
	}))
	return NewService(st)
}

func validInput() model.TransactionInput {
	return model.TransactionInput{
		Date:       date(2024, 6, 10),
		Type:       model.TransactionExpense,
		Amount:     dec("125000"),
		CategoryID: "food",
		Note:       "groceries",
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.TransactionInput)
		wantField string
	}{
		{"valid", func(in *model.TransactionInput) {}, ""},
		{"bad type", func(in *model.TransactionInput) { in.Type = "loan" }, "type"},
		{"negative amount", func(in *model.TransactionInput) { in.Amount = dec("-1") }, "amount"},
		{"missing date", func(in *model.TransactionInput) { in.Date = time.Time{} }, "date"},
		{"missing category", func(in *model.TransactionInput) { in.CategoryID = "" }, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := ValidateInput(in)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestCreate_PersistsTransaction(t *testing.T) {
	svc := newService(t)

	tx, err := svc.Create(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, tx.ID, all[0].ID)
	assert.True(t, all[0].Amount.Equal(dec("125000")))
}

func TestCreate_UnknownCategory(t *testing.T) {
	svc := newService(t)
	in := validInput()
	in.CategoryID = "missing"

	_, err := svc.Create(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoryId")
}

func TestCreate_CategoryTypeMustMatchTransactionType(t *testing.T) {
	svc := newService(t)

	in := validInput()
	in.Type = model.TransactionIncome
	in.CategoryID = "food"
	_, err := svc.Create(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "income transactions take income categories")

	in.CategoryID = "salary"
	_, err = svc.Create(in)
	require.NoError(t, err)

	in = validInput()
	in.CategoryID = "salary"
	_, err = svc.Create(in)
	require.Error(t, err, "expense against an income category")

	// Transfers are categorized under expense categories.
	in = validInput()
	in.Type = model.TransactionTransfer
	_, err = svc.Create(in)
	require.NoError(t, err)
}

func TestUpdate_ChecksCategoryType(t *testing.T) {
	svc := newService(t)
	tx, err := svc.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.CategoryID = "salary"
	_, err = svc.Update(tx.ID, in)
	require.Error(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "food", all[0].CategoryID, "rejected update leaves the record untouched")
}

func TestCreate_SubcategoryMustBelongToCategory(t *testing.T) {
	svc := newService(t)

	in := validInput()
	in.SubcategoryID = "groceries"
	_, err := svc.Create(in)
	require.NoError(t, err)

	in.SubcategoryID = "rent"
	_, err = svc.Create(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcategoryId")
}

func TestUpdate(t *testing.T) {
	svc := newService(t)
	tx, err := svc.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Amount = dec("99000")
	in.Note = "corrected"
	got, err := svc.Update(tx.ID, in)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("99000")))
	assert.Equal(t, "corrected", got.Note)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "corrected", all[0].Note)
}

func TestUpdate_Unknown(t *testing.T) {
	svc := newService(t)
	_, err := svc.Update("missing", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	tx, err := svc.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(tx.ID))

	all, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(tx.ID), ErrNotFound)
}
