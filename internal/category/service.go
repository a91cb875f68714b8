// Package category owns the category/subcategory taxonomy and the
// delete-with-migration protocol that keeps transactions from being
// orphaned. Deletion never cascades into transactions: references are
// re-pointed or cleared, the records themselves always survive.
package category

import (
	"fmt"
	"strings"
	"time"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// SubDeleteMode selects what happens to transactions referencing a deleted
// subcategory.
type SubDeleteMode string

const (
	// SubDeleteClearRef clears the subcategory reference on affected
	// transactions, leaving their category untouched. This is the default.
	SubDeleteClearRef SubDeleteMode = "clear"
	// SubDeleteMigrate re-points affected transactions to a sibling
	// subcategory and requires a migration target.
	SubDeleteMigrate SubDeleteMode = "migrate"
)

// Result is the outcome of a delete operation. OK=false means the operation
// was refused and no data was touched; Message explains why.
type Result struct {
	OK       bool
	Migrated int // transactions re-pointed or cleared
	Message  string
}

func refused(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Service provides category operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates a category Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// CategoryInput is the caller-supplied shape for creating a category.
type CategoryInput struct {
	Name string
	Type model.CategoryType
}

// ValidateName checks name uniqueness case-insensitively across the whole
// set, excluding the category with skipID (empty for creates).
func ValidateName(cats []model.Category, name, skipID string) []model.FieldError {
	var errs []model.FieldError
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return append(errs, model.FieldError{Field: "name", Message: "is required"})
	}
	for _, c := range cats {
		if c.ID != skipID && strings.EqualFold(c.Name, trimmed) {
			errs = append(errs, model.FieldError{Field: "name", Message: fmt.Sprintf("%q already exists", c.Name)})
			break
		}
	}
	return errs
}

// Create validates and persists a new category.
func (s *Service) Create(in CategoryInput) (model.Category, error) {
	cats, err := s.store.Categories()
	if err != nil {
		return model.Category{}, err
	}
	if errs := ValidateName(cats, in.Name, ""); len(errs) > 0 {
		return model.Category{}, fmt.Errorf("invalid category: %s", model.JoinFieldErrors(errs))
	}

	now := s.now()
	cat := model.Category{
		ID:            id.New(),
		Name:          strings.TrimSpace(in.Name),
		Type:          in.Type,
		Subcategories: []model.Subcategory{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	cats = append(cats, cat)
	if err := s.store.SetCategories(cats); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// AddSubcategory appends a subcategory to an existing category.
func (s *Service) AddSubcategory(parentID, name string) (model.Subcategory, error) {
	cats, err := s.store.Categories()
	if err != nil {
		return model.Subcategory{}, err
	}
	for i := range cats {
		if cats[i].ID != parentID {
			continue
		}
		sub := model.Subcategory{ID: id.New(), Name: strings.TrimSpace(name), ParentID: parentID}
		cats[i].Subcategories = append(cats[i].Subcategories, sub)
		cats[i].UpdatedAt = s.now()
		if err := s.store.SetCategories(cats); err != nil {
			return model.Subcategory{}, err
		}
		return sub, nil
	}
	return model.Subcategory{}, fmt.Errorf("category %s not found", parentID)
}

// DeleteCategory removes a category and its subcategories. When transactions
// still reference the category a migration target is mandatory: each such
// transaction is re-pointed to migrateToID and its subcategory reference is
// cleared (subcategories are category-specific, so no cross-category mapping
// is attempted). Without a target the delete is refused untouched. Default
// categories are always refused.
func (s *Service) DeleteCategory(catID, migrateToID string) (Result, error) {
	cats, err := s.store.Categories()
	if err != nil {
		return Result{}, err
	}

	idx := -1
	for i, c := range cats {
		if c.ID == catID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return refused("category %s not found", catID), nil
	}
	if cats[idx].IsDefault {
		return refused("default category %q cannot be deleted", cats[idx].Name), nil
	}
	if migrateToID != "" {
		target := -1
		for i, c := range cats {
			if c.ID == migrateToID {
				target = i
				break
			}
		}
		if target < 0 {
			return refused("migration target %s not found", migrateToID), nil
		}
		if migrateToID == catID {
			return refused("cannot migrate a category to itself"), nil
		}
	}

	txs, err := s.store.Transactions()
	if err != nil {
		return Result{}, err
	}
	referencing := 0
	for _, t := range txs {
		if t.CategoryID == catID {
			referencing++
		}
	}

	if referencing > 0 && migrateToID == "" {
		return refused("%d transactions reference %q; supply a migration target", referencing, cats[idx].Name), nil
	}

	if referencing > 0 {
		for i := range txs {
			if txs[i].CategoryID == catID {
				txs[i].CategoryID = migrateToID
				txs[i].SubcategoryID = ""
				txs[i].UpdatedAt = s.now()
			}
		}
		if err := s.store.SetTransactions(txs); err != nil {
			return Result{}, err
		}
	}

	cats = append(cats[:idx], cats[idx+1:]...)
	if err := s.store.SetCategories(cats); err != nil {
		return Result{}, err
	}
	return Result{OK: true, Migrated: referencing}, nil
}

// DeleteSubcategory removes one subcategory from its parent. In migrate mode
// referencing transactions are re-pointed to a sibling subcategory; in clear
// mode (the default) their subcategory reference is cleared while the
// category reference stays intact.
func (s *Service) DeleteSubcategory(parentID, subID string, mode SubDeleteMode, migrateToID string) (Result, error) {
	if mode == "" {
		mode = SubDeleteClearRef
	}

	cats, err := s.store.Categories()
	if err != nil {
		return Result{}, err
	}

	catIdx, subIdx := -1, -1
	for i, c := range cats {
		if c.ID != parentID {
			continue
		}
		catIdx = i
		for j, sub := range c.Subcategories {
			if sub.ID == subID {
				subIdx = j
				break
			}
		}
	}
	if catIdx < 0 {
		return refused("category %s not found", parentID), nil
	}
	if subIdx < 0 {
		return refused("subcategory %s not found", subID), nil
	}

	if mode == SubDeleteMigrate {
		if migrateToID == "" || migrateToID == subID {
			return refused("migrate mode requires a sibling subcategory target"), nil
		}
		if _, ok := cats[catIdx].Subcategory(migrateToID); !ok {
			return refused("migration target %s is not a subcategory of the same category", migrateToID), nil
		}
	}

	txs, err := s.store.Transactions()
	if err != nil {
		return Result{}, err
	}
	touched := 0
	for i := range txs {
		if txs[i].SubcategoryID != subID {
			continue
		}
		if mode == SubDeleteMigrate {
			txs[i].SubcategoryID = migrateToID
		} else {
			txs[i].SubcategoryID = ""
		}
		txs[i].UpdatedAt = s.now()
		touched++
	}
	if touched > 0 {
		if err := s.store.SetTransactions(txs); err != nil {
			return Result{}, err
		}
	}

	subs := cats[catIdx].Subcategories
	cats[catIdx].Subcategories = append(subs[:subIdx], subs[subIdx+1:]...)
	cats[catIdx].UpdatedAt = s.now()
	if err := s.store.SetCategories(cats); err != nil {
		return Result{}, err
	}
	return Result{OK: true, Migrated: touched}, nil
}
