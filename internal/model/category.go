package model

import "time"

// CategoryType determines which transaction or asset kinds a category applies to.
type CategoryType string

const (
	CategoryIncome    CategoryType = "income"
	CategoryExpense   CategoryType = "expense"
	CategoryAsset     CategoryType = "asset"
	CategoryLiability CategoryType = "liability"
)

// Category is a taxonomy node. It owns its subcategories: deleting the
// category deletes all of them. Default categories may not be deleted.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          CategoryType  `json:"type"`
	Subcategories []Subcategory `json:"subcategories"`
	IsDefault     bool          `json:"isDefault"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Subcategory exists only inside its parent category.
type Subcategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// Subcategory returns the subcategory with the given ID, if present.
func (c Category) Subcategory(id string) (Subcategory, bool) {
	for _, s := range c.Subcategories {
		if s.ID == id {
			return s, true
		}
	}
	return Subcategory{}, false
}

// TransactionCategoryType maps a transaction type to the category type
// offered for it. Transfers are categorized under expense categories.
func TransactionCategoryType(t TransactionType) CategoryType {
	if t == TransactionIncome {
		return CategoryIncome
	}
	return CategoryExpense
}
