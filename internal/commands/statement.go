package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/importer"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/transaction"
)

func newStatementCommand(dir *string) *cobra.Command {
	var (
		format    string
		cat       string
		incomeCat string
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Import bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			return runStatement(ws, format, cat, incomeCat)
		},
	}

	cmd.Flags().StringVar(&format, "format", "bca", "statement format")
	cmd.Flags().StringVar(&cat, "category", "", "expense category for debit rows (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&incomeCat, "income-category", "", "income category for credit rows")

	return cmd
}

func runStatement(ws *workspace, format, cat, incomeCat string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	expenseCatID, _, err := resolveCategory(ws, cat, "", model.CategoryExpense)
	if err != nil {
		return err
	}
	incomeCatID := ""
	if incomeCat != "" {
		incomeCatID, _, err = resolveCategory(ws, incomeCat, "", model.CategoryIncome)
		if err != nil {
			return err
		}
	}

	files, err := importer.Scan(ws.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No statement files in import/.")
		return nil
	}

	svc := transaction.NewService(ws.store)
	total := 0
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		rows, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		for _, row := range rows {
			txType := model.TransactionExpense
			rowCatID := expenseCatID
			amount := row.Amount
			if amount.Sign() > 0 {
				if incomeCatID == "" {
					return fmt.Errorf("%s has credit rows; set --income-category", file.Name)
				}
				txType = model.TransactionIncome
				rowCatID = incomeCatID
			} else {
				amount = amount.Neg()
			}
			if _, err := svc.Create(model.TransactionInput{
				Date:       row.Date,
				Type:       txType,
				Amount:     amount,
				CategoryID: rowCatID,
				Note:       row.Description,
			}); err != nil {
				return fmt.Errorf("%s: %w", file.Name, err)
			}
		}

		if err := importer.MarkProcessed(ws.root, file.Name); err != nil {
			return err
		}
		fmt.Printf("Imported %d transactions from %s\n", len(rows), file.Name)
		total += len(rows)
	}

	ws.finishMutation("statement.import", "", fmt.Sprintf("%d transactions from %d files", total, len(files)))
	return nil
}
