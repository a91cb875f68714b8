// Package bundle serializes the full data set to a single versioned JSON
// document and back. Decoding validates the document's shape before any
// store write; importing supports wholesale replacement or id-based merge;
// a numbered chain of pure migrations upgrades old bundles on the way in.
package bundle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// ImportMode selects how an imported bundle is applied to the store.
type ImportMode string

const (
	// ModeReplace overwrites every collection with the bundle's contents.
	ModeReplace ImportMode = "replace"
	// ModeMerge appends only records whose ID is not already present.
	// Existing records are never updated in place.
	ModeMerge ImportMode = "merge"
)

// Export reads every collection and wraps it in a bundle at the current
// schema version.
func Export(st *store.Store, now time.Time) (model.AppData, error) {
	var (
		data model.AppData
		err  error
	)
	data.Version = model.SchemaVersion
	data.ExportedAt = now

	if data.Settings, err = st.Settings(); err != nil {
		return model.AppData{}, err
	}
	if data.Transactions, err = st.Transactions(); err != nil {
		return model.AppData{}, err
	}
	if data.Categories, err = st.Categories(); err != nil {
		return model.AppData{}, err
	}
	if data.Wishlist, err = st.Wishlist(); err != nil {
		return model.AppData{}, err
	}
	if data.Installments, err = st.Installments(); err != nil {
		return model.AppData{}, err
	}
	if data.MonthlyNeeds, err = st.MonthlyNeeds(); err != nil {
		return model.AppData{}, err
	}
	if data.MonthlyNeedPayments, err = st.MonthlyNeedPayments(); err != nil {
		return model.AppData{}, err
	}
	if data.Assets, err = st.Assets(); err != nil {
		return model.AppData{}, err
	}
	return data, nil
}

// Encode renders a bundle as indented JSON.
func Encode(data model.AppData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bundle: %w", err)
	}
	return out, nil
}

// Decode parses and validates a bundle document. Structural problems are
// returned as a field-error list and the bundle is rejected; nothing is
// written anywhere.
func Decode(raw []byte) (model.AppData, []model.FieldError) {
	var data model.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.AppData{}, []model.FieldError{{Field: "bundle", Message: fmt.Sprintf("not valid JSON: %v", err)}}
	}
	if errs := Validate(data); len(errs) > 0 {
		return model.AppData{}, errs
	}
	return data, nil
}

// Validate checks a decoded bundle's structure: version bounds, non-empty
// unique IDs per collection and known discriminator values.
func Validate(data model.AppData) []model.FieldError {
	var errs []model.FieldError

	if data.Version < 1 || data.Version > model.SchemaVersion {
		errs = append(errs, model.FieldError{
			Field:   "version",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", model.SchemaVersion, data.Version),
		})
	}

	checkIDs := func(field string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for i, recID := range ids {
			if recID == "" {
				errs = append(errs, model.FieldError{Field: field, Message: fmt.Sprintf("record %d has no id", i)})
				continue
			}
			if seen[recID] {
				errs = append(errs, model.FieldError{Field: field, Message: fmt.Sprintf("duplicate id %s", recID)})
			}
			seen[recID] = true
		}
	}

	txIDs := make([]string, len(data.Transactions))
	for i, t := range data.Transactions {
		txIDs[i] = t.ID
		switch t.Type {
		case model.TransactionIncome, model.TransactionExpense, model.TransactionTransfer:
		default:
			errs = append(errs, model.FieldError{
				Field:   "transactions",
				Message: fmt.Sprintf("record %s has unknown type %q", t.ID, t.Type),
			})
		}
		if t.Amount.Sign() < 0 {
			errs = append(errs, model.FieldError{
				Field:   "transactions",
				Message: fmt.Sprintf("record %s has negative amount", t.ID),
			})
		}
	}
	checkIDs("transactions", txIDs)

	catIDs := make([]string, len(data.Categories))
	for i, c := range data.Categories {
		catIDs[i] = c.ID
	}
	checkIDs("categories", catIDs)

	instIDs := make([]string, len(data.Installments))
	for i, inst := range data.Installments {
		instIDs[i] = inst.ID
	}
	checkIDs("installments", instIDs)

	needIDs := make([]string, len(data.MonthlyNeeds))
	for i, n := range data.MonthlyNeeds {
		needIDs[i] = n.ID
	}
	checkIDs("monthlyNeeds", needIDs)

	payIDs := make([]string, len(data.MonthlyNeedPayments))
	for i, p := range data.MonthlyNeedPayments {
		payIDs[i] = p.ID
	}
	checkIDs("monthlyNeedPayments", payIDs)

	assetIDs := make([]string, len(data.Assets))
	for i, a := range data.Assets {
		assetIDs[i] = a.ID
	}
	checkIDs("assets", assetIDs)

	wishIDs := make([]string, len(data.Wishlist))
	for i, w := range data.Wishlist {
		wishIDs[i] = w.ID
	}
	checkIDs("wishlist", wishIDs)

	return errs
}

// Import migrates the bundle to the current schema version and applies it
// to the store in the given mode.
func Import(st *store.Store, data model.AppData, mode ImportMode) error {
	data = Migrate(data)

	switch mode {
	case ModeReplace:
		return importReplace(st, data)
	case ModeMerge:
		return importMerge(st, data)
	default:
		return fmt.Errorf("unknown import mode %q", mode)
	}
}

func importReplace(st *store.Store, data model.AppData) error {
	if err := st.SetSettings(data.Settings); err != nil {
		return err
	}
	if err := st.SetTransactions(data.Transactions); err != nil {
		return err
	}
	if err := st.SetCategories(data.Categories); err != nil {
		return err
	}
	if err := st.SetWishlist(data.Wishlist); err != nil {
		return err
	}
	if err := st.SetInstallments(data.Installments); err != nil {
		return err
	}
	if err := st.SetMonthlyNeeds(data.MonthlyNeeds); err != nil {
		return err
	}
	if err := st.SetMonthlyNeedPayments(data.MonthlyNeedPayments); err != nil {
		return err
	}
	return st.SetAssets(data.Assets)
}

// mergeByID appends items from incoming whose ID is absent from existing.
func mergeByID[T any](existing, incoming []T, idOf func(T) string) []T {
	seen := make(map[string]bool, len(existing))
	for _, rec := range existing {
		seen[idOf(rec)] = true
	}
	out := existing
	for _, rec := range incoming {
		if !seen[idOf(rec)] {
			out = append(out, rec)
		}
	}
	return out
}

func importMerge(st *store.Store, data model.AppData) error {
	txs, err := st.Transactions()
	if err != nil {
		return err
	}
	if err := st.SetTransactions(mergeByID(txs, data.Transactions,
		func(t model.Transaction) string { return t.ID })); err != nil {
		return err
	}

	cats, err := st.Categories()
	if err != nil {
		return err
	}
	if err := st.SetCategories(mergeByID(cats, data.Categories,
		func(c model.Category) string { return c.ID })); err != nil {
		return err
	}

	wish, err := st.Wishlist()
	if err != nil {
		return err
	}
	if err := st.SetWishlist(mergeByID(wish, data.Wishlist,
		func(w model.WishlistItem) string { return w.ID })); err != nil {
		return err
	}

	insts, err := st.Installments()
	if err != nil {
		return err
	}
	if err := st.SetInstallments(mergeByID(insts, data.Installments,
		func(i model.Installment) string { return i.ID })); err != nil {
		return err
	}

	needsList, err := st.MonthlyNeeds()
	if err != nil {
		return err
	}
	if err := st.SetMonthlyNeeds(mergeByID(needsList, data.MonthlyNeeds,
		func(n model.MonthlyNeed) string { return n.ID })); err != nil {
		return err
	}

	pays, err := st.MonthlyNeedPayments()
	if err != nil {
		return err
	}
	if err := st.SetMonthlyNeedPayments(mergeByID(pays, data.MonthlyNeedPayments,
		func(p model.MonthlyNeedPayment) string { return p.ID })); err != nil {
		return err
	}

	assets, err := st.Assets()
	if err != nil {
		return err
	}
	// Merge never touches settings: the local settings object stays.
	return st.SetAssets(mergeByID(assets, data.Assets,
		func(a model.Asset) string { return a.ID }))
}
