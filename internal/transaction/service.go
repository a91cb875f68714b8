// Package transaction manages the transaction collection: validated
// creation, update and deletion. Category references are validated at
// write time but remain weak afterwards; see the category package for
// what happens when a referenced category is deleted.
package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// ErrNotFound is returned for an unknown transaction ID.
var ErrNotFound = errors.New("transaction not found")

// Service provides transaction operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates a transaction Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ValidateInput checks a transaction input, returning field-level errors.
func ValidateInput(in model.TransactionInput) []model.FieldError {
	var errs []model.FieldError
	switch in.Type {
	case model.TransactionIncome, model.TransactionExpense, model.TransactionTransfer:
	default:
		errs = append(errs, model.FieldError{Field: "type", Message: "must be income, expense or transfer"})
	}
	if in.Amount.Sign() < 0 {
		errs = append(errs, model.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if in.Date.IsZero() {
		errs = append(errs, model.FieldError{Field: "date", Message: "is required"})
	}
	if in.CategoryID == "" {
		errs = append(errs, model.FieldError{Field: "categoryId", Message: "is required"})
	}
	return errs
}

// checkCategory verifies the input's category reference: the category must
// exist, its type must match the one offered for the transaction type, and
// any subcategory must belong to it.
func (s *Service) checkCategory(in model.TransactionInput) error {
	cats, err := s.store.Categories()
	if err != nil {
		return err
	}
	var parent *model.Category
	for i := range cats {
		if cats[i].ID == in.CategoryID {
			parent = &cats[i]
			break
		}
	}
	if parent == nil {
		return fmt.Errorf("invalid transaction: categoryId: %s not found", in.CategoryID)
	}
	if want := model.TransactionCategoryType(in.Type); parent.Type != want {
		return fmt.Errorf("invalid transaction: categoryId: %q is a %s category; %s transactions take %s categories",
			parent.Name, parent.Type, in.Type, want)
	}
	if in.SubcategoryID != "" {
		if _, ok := parent.Subcategory(in.SubcategoryID); !ok {
			return fmt.Errorf("invalid transaction: subcategoryId: %s not in category %q",
				in.SubcategoryID, parent.Name)
		}
	}
	return nil
}

// Create validates the input, checks the category reference and persists a
// new transaction.
func (s *Service) Create(in model.TransactionInput) (model.Transaction, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.Transaction{}, fmt.Errorf("invalid transaction: %s", model.JoinFieldErrors(errs))
	}
	if err := s.checkCategory(in); err != nil {
		return model.Transaction{}, err
	}

	now := s.now()
	tx := model.Transaction{
		ID:            id.New(),
		Date:          in.Date,
		Type:          in.Type,
		Amount:        in.Amount,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Note:          in.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	txs, err := s.store.Transactions()
	if err != nil {
		return model.Transaction{}, err
	}
	txs = append(txs, tx)
	if err := s.store.SetTransactions(txs); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Update replaces the mutable fields of an existing transaction.
func (s *Service) Update(txID string, in model.TransactionInput) (model.Transaction, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.Transaction{}, fmt.Errorf("invalid transaction: %s", model.JoinFieldErrors(errs))
	}
	if err := s.checkCategory(in); err != nil {
		return model.Transaction{}, err
	}

	txs, err := s.store.Transactions()
	if err != nil {
		return model.Transaction{}, err
	}
	for i := range txs {
		if txs[i].ID != txID {
			continue
		}
		txs[i].Date = in.Date
		txs[i].Type = in.Type
		txs[i].Amount = in.Amount
		txs[i].CategoryID = in.CategoryID
		txs[i].SubcategoryID = in.SubcategoryID
		txs[i].Note = in.Note
		txs[i].UpdatedAt = s.now()
		if err := s.store.SetTransactions(txs); err != nil {
			return model.Transaction{}, err
		}
		return txs[i], nil
	}
	return model.Transaction{}, ErrNotFound
}

// Delete removes a transaction. Nothing cascades.
func (s *Service) Delete(txID string) error {
	txs, err := s.store.Transactions()
	if err != nil {
		return err
	}
	kept := txs[:0]
	found := false
	for _, t := range txs {
		if t.ID == txID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrNotFound
	}
	return s.store.SetTransactions(kept)
}

// List returns the full transaction collection.
func (s *Service) List() ([]model.Transaction, error) {
	return s.store.Transactions()
}
