// Package wishlist manages savings goals: named purchases with a target
// amount and a running saved total.
package wishlist

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// ErrNotFound is returned for an unknown wishlist item ID.
var ErrNotFound = errors.New("wishlist item not found")

// Service provides wishlist operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates a wishlist Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ValidateInput checks a wishlist input, returning field-level errors.
func ValidateInput(in model.WishlistInput) []model.FieldError {
	var errs []model.FieldError
	if in.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "is required"})
	}
	if in.TargetAmount.Sign() <= 0 {
		errs = append(errs, model.FieldError{Field: "targetAmount", Message: "must be positive"})
	}
	return errs
}

// Create validates and persists a new wishlist item with nothing saved yet.
func (s *Service) Create(in model.WishlistInput) (model.WishlistItem, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.WishlistItem{}, fmt.Errorf("invalid wishlist item: %s", model.JoinFieldErrors(errs))
	}

	now := s.now()
	item := model.WishlistItem{
		ID:           id.New(),
		Name:         in.Name,
		TargetAmount: in.TargetAmount,
		SavedAmount:  decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	all, err := s.store.Wishlist()
	if err != nil {
		return model.WishlistItem{}, err
	}
	all = append(all, item)
	if err := s.store.SetWishlist(all); err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

// AddSaving increases an item's saved total. The amount must be positive;
// saving past the target is allowed.
func (s *Service) AddSaving(itemID string, amount decimal.Decimal) (model.WishlistItem, error) {
	if amount.Sign() <= 0 {
		return model.WishlistItem{}, fmt.Errorf("invalid saving: amount must be positive")
	}

	all, err := s.store.Wishlist()
	if err != nil {
		return model.WishlistItem{}, err
	}
	for i := range all {
		if all[i].ID != itemID {
			continue
		}
		all[i].SavedAmount = all[i].SavedAmount.Add(amount)
		all[i].UpdatedAt = s.now()
		if err := s.store.SetWishlist(all); err != nil {
			return model.WishlistItem{}, err
		}
		return all[i], nil
	}
	return model.WishlistItem{}, ErrNotFound
}

// MarkPurchased flags an item as bought. SavedAmount is left as the record
// of what was put aside.
func (s *Service) MarkPurchased(itemID string) (model.WishlistItem, error) {
	all, err := s.store.Wishlist()
	if err != nil {
		return model.WishlistItem{}, err
	}
	for i := range all {
		if all[i].ID != itemID {
			continue
		}
		all[i].IsPurchased = true
		all[i].UpdatedAt = s.now()
		if err := s.store.SetWishlist(all); err != nil {
			return model.WishlistItem{}, err
		}
		return all[i], nil
	}
	return model.WishlistItem{}, ErrNotFound
}

// Delete removes a wishlist item.
func (s *Service) Delete(itemID string) error {
	all, err := s.store.Wishlist()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, it := range all {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrNotFound
	}
	return s.store.SetWishlist(kept)
}

// List returns the full wishlist collection.
func (s *Service) List() ([]model.WishlistItem, error) {
	return s.store.Wishlist()
}
