// Package asset manages tracked holdings and their valuation history.
package asset

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// ErrNotFound is returned for an unknown asset ID.
var ErrNotFound = errors.New("asset not found")

// Service provides asset operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates an asset Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ValidateInput checks an asset input, returning field-level errors.
func ValidateInput(in model.AssetInput) []model.FieldError {
	var errs []model.FieldError
	if in.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "is required"})
	}
	if in.CurrentValue.Sign() < 0 {
		errs = append(errs, model.FieldError{Field: "currentValue", Message: "must not be negative"})
	}
	return errs
}

// Create validates and persists a new asset. The initial value seeds the
// valuation history at the creation day.
func (s *Service) Create(in model.AssetInput) (model.Asset, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.Asset{}, fmt.Errorf("invalid asset: %s", model.JoinFieldErrors(errs))
	}

	now := s.now()
	a := model.Asset{
		ID:          id.New(),
		Name:        in.Name,
		IsLiability: in.IsLiability,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a.RecordValue(now, in.CurrentValue)

	all, err := s.store.Assets()
	if err != nil {
		return model.Asset{}, err
	}
	all = append(all, a)
	if err := s.store.SetAssets(all); err != nil {
		return model.Asset{}, err
	}
	return a, nil
}

// Revalue records a new value for an asset as of a day. A second
// revaluation on the same day overwrites that day's history point.
func (s *Service) Revalue(assetID string, day time.Time, value decimal.Decimal) (model.Asset, error) {
	if value.Sign() < 0 {
		return model.Asset{}, fmt.Errorf("invalid value: must not be negative")
	}

	all, err := s.store.Assets()
	if err != nil {
		return model.Asset{}, err
	}
	for i := range all {
		if all[i].ID != assetID {
			continue
		}
		all[i].RecordValue(day, value)
		all[i].UpdatedAt = s.now()
		if err := s.store.SetAssets(all); err != nil {
			return model.Asset{}, err
		}
		return all[i], nil
	}
	return model.Asset{}, ErrNotFound
}

// Delete removes an asset and its valuation history.
func (s *Service) Delete(assetID string) error {
	all, err := s.store.Assets()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, a := range all {
		if a.ID == assetID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrNotFound
	}
	return s.store.SetAssets(kept)
}

// List returns the full asset collection.
func (s *Service) List() ([]model.Asset, error) {
	return s.store.Assets()
}
