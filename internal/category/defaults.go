package category

import (
	"time"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
)

// DefaultSet returns the seed categories written by `kasku init`. They are
// marked IsDefault and can never be deleted.
func DefaultSet(now time.Time) []model.Category {
	mk := func(name string, typ model.CategoryType, subNames ...string) model.Category {
		cat := model.Category{
			ID:            id.New(),
			Name:          name,
			Type:          typ,
			Subcategories: []model.Subcategory{},
			IsDefault:     true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		for _, sn := range subNames {
			cat.Subcategories = append(cat.Subcategories, model.Subcategory{
				ID: id.New(), Name: sn, ParentID: cat.ID,
			})
		}
		return cat
	}

	return []model.Category{
		mk("Salary", model.CategoryIncome, "Base Salary", "Bonus"),
		mk("Side Income", model.CategoryIncome),
		mk("Food & Drink", model.CategoryExpense, "Groceries", "Eating Out"),
		mk("Housing", model.CategoryExpense, "Rent", "Utilities"),
		mk("Transportation", model.CategoryExpense, "Fuel", "Public Transit"),
		mk("Health", model.CategoryExpense),
		mk("Entertainment", model.CategoryExpense),
		mk("Savings & Investment", model.CategoryAsset),
		mk("Debt Payment", model.CategoryLiability),
	}
}
