package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/transaction"
)

func newAddCommand(dir *string) *cobra.Command {
	var (
		txType string
		amount string
		date   string
		cat    string
		subcat string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			return runAdd(ws, txType, amount, date, cat, subcat, note)
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "income, expense or transfer")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&cat, "category", "", "category name or ID (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&subcat, "subcategory", "", "subcategory name or ID")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")

	return cmd
}

func runAdd(ws *workspace, txType, amount, date, cat, subcat, note string) error {
	amt, err := parseAmount(amount)
	if err != nil {
		return err
	}
	day, err := parseDate(date)
	if err != nil {
		return err
	}

	catID, subID, err := resolveCategory(ws, cat, subcat, model.TransactionCategoryType(model.TransactionType(txType)))
	if err != nil {
		return err
	}

	svc := transaction.NewService(ws.store)
	tx, err := svc.Create(model.TransactionInput{
		Date:          day,
		Type:          model.TransactionType(txType),
		Amount:        amt,
		CategoryID:    catID,
		SubcategoryID: subID,
		Note:          note,
	})
	if err != nil {
		return err
	}

	ws.finishMutation("transaction.create", tx.ID, fmt.Sprintf("%s %s", tx.Type, tx.Amount.StringFixed(2)))
	fmt.Printf("Recorded %s of %s (%s)\n", tx.Type, tx.Amount.StringFixed(2), tx.ID)
	return nil
}

// resolveCategory accepts either an ID or a case-insensitive name for the
// category and, optionally, one of its subcategories. A non-empty want
// rejects a match whose category type differs.
func resolveCategory(ws *workspace, cat, subcat string, want model.CategoryType) (catID, subID string, err error) {
	cats, err := ws.store.Categories()
	if err != nil {
		return "", "", err
	}
	for _, c := range cats {
		if c.ID != cat && !strings.EqualFold(c.Name, cat) {
			continue
		}
		if want != "" && c.Type != want {
			return "", "", fmt.Errorf("category %q is a %s category, want %s", c.Name, c.Type, want)
		}
		if subcat == "" {
			return c.ID, "", nil
		}
		for _, s := range c.Subcategories {
			if s.ID == subcat || strings.EqualFold(s.Name, subcat) {
				return c.ID, s.ID, nil
			}
		}
		return "", "", fmt.Errorf("subcategory %q not found in category %q", subcat, c.Name)
	}
	return "", "", fmt.Errorf("category %q not found", cat)
}
