// Package store provides keyed whole-collection persistence. Each collection
// lives in one JSON file under the data directory; a read returns the full
// collection and a write replaces the full file. There are no partial
// updates: the last writer of a collection wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kasku-dev/kasku/internal/model"
)

// Collection keys. One JSON file per key; installment payments are embedded
// in their installment record rather than stored under their own key.
const (
	KeyTransactions        = "transactions"
	KeyCategories          = "categories"
	KeyInstallments        = "installments"
	KeyMonthlyNeeds        = "monthlyNeeds"
	KeyMonthlyNeedPayments = "monthlyNeedPayments"
	KeyAssets              = "assets"
	KeyWishlist            = "wishlist"
	KeySettings            = "settings"
)

// Store reads and writes collections under a data directory.
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir. The directory is created lazily on
// the first write.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// DataDir returns the root directory holding the collection files.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// get unmarshals a collection file into out. A missing file is not an
// error: out is left at its zero value.
func (s *Store) get(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading collection %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding collection %s: %w", key, err)
	}
	return nil
}

// set replaces the collection file with the JSON encoding of v.
func (s *Store) set(key string, v any) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("writing collection %s: %w", key, err)
	}
	return nil
}

// Transactions returns the full transaction collection.
func (s *Store) Transactions() ([]model.Transaction, error) {
	var out []model.Transaction
	err := s.get(KeyTransactions, &out)
	return out, err
}

// SetTransactions replaces the full transaction collection.
func (s *Store) SetTransactions(txs []model.Transaction) error {
	return s.set(KeyTransactions, txs)
}

// Categories returns the full category collection.
func (s *Store) Categories() ([]model.Category, error) {
	var out []model.Category
	err := s.get(KeyCategories, &out)
	return out, err
}

// SetCategories replaces the full category collection.
func (s *Store) SetCategories(cats []model.Category) error {
	return s.set(KeyCategories, cats)
}

// Installments returns the full installment collection, ledgers included.
func (s *Store) Installments() ([]model.Installment, error) {
	var out []model.Installment
	err := s.get(KeyInstallments, &out)
	return out, err
}

// SetInstallments replaces the full installment collection.
func (s *Store) SetInstallments(insts []model.Installment) error {
	return s.set(KeyInstallments, insts)
}

// MonthlyNeeds returns the full monthly-need collection.
func (s *Store) MonthlyNeeds() ([]model.MonthlyNeed, error) {
	var out []model.MonthlyNeed
	err := s.get(KeyMonthlyNeeds, &out)
	return out, err
}

// SetMonthlyNeeds replaces the full monthly-need collection.
func (s *Store) SetMonthlyNeeds(needs []model.MonthlyNeed) error {
	return s.set(KeyMonthlyNeeds, needs)
}

// MonthlyNeedPayments returns the full need-payment collection.
func (s *Store) MonthlyNeedPayments() ([]model.MonthlyNeedPayment, error) {
	var out []model.MonthlyNeedPayment
	err := s.get(KeyMonthlyNeedPayments, &out)
	return out, err
}

// SetMonthlyNeedPayments replaces the full need-payment collection.
func (s *Store) SetMonthlyNeedPayments(pays []model.MonthlyNeedPayment) error {
	return s.set(KeyMonthlyNeedPayments, pays)
}

// Assets returns the full asset collection.
func (s *Store) Assets() ([]model.Asset, error) {
	var out []model.Asset
	err := s.get(KeyAssets, &out)
	return out, err
}

// SetAssets replaces the full asset collection.
func (s *Store) SetAssets(assets []model.Asset) error {
	return s.set(KeyAssets, assets)
}

// Wishlist returns the full wishlist collection.
func (s *Store) Wishlist() ([]model.WishlistItem, error) {
	var out []model.WishlistItem
	err := s.get(KeyWishlist, &out)
	return out, err
}

// SetWishlist replaces the full wishlist collection.
func (s *Store) SetWishlist(items []model.WishlistItem) error {
	return s.set(KeyWishlist, items)
}

// Settings returns the stored settings, or defaults when none were written.
func (s *Store) Settings() (model.Settings, error) {
	path := s.path(KeySettings)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	var out model.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return model.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return out, nil
}

// SetSettings replaces the stored settings.
func (s *Store) SetSettings(st model.Settings) error {
	return s.set(KeySettings, st)
}
