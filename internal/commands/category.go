package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/category"
	"github.com/kasku-dev/kasku/internal/model"
)

func newCategoryCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category operations",
	}
	cmd.AddCommand(newCategoryAddCommand(dir))
	cmd.AddCommand(newCategoryDeleteCommand(dir))
	return cmd
}

func newCategoryAddCommand(dir *string) *cobra.Command {
	var catType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			svc := category.NewService(ws.store)
			cat, err := svc.Create(category.CategoryInput{
				Name: args[0],
				Type: model.CategoryType(catType),
			})
			if err != nil {
				return err
			}
			ws.finishMutation("category.create", cat.ID, cat.Name)
			fmt.Printf("Created %s category %q\n", cat.Type, cat.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&catType, "type", "expense", "income, expense, asset or liability")
	return cmd
}

func newCategoryDeleteCommand(dir *string) *cobra.Command {
	var migrateTo string

	cmd := &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a category, migrating its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}

			catID, _, err := resolveCategory(ws, args[0], "", "")
			if err != nil {
				return err
			}
			var targetID string
			if migrateTo != "" {
				targetID, _, err = resolveCategory(ws, migrateTo, "", "")
				if err != nil {
					return err
				}
			}

			svc := category.NewService(ws.store)
			res, err := svc.DeleteCategory(catID, targetID)
			if err != nil {
				return err
			}
			if !res.OK {
				return fmt.Errorf("%s", res.Message)
			}

			ws.finishMutation("category.delete", catID, fmt.Sprintf("migrated %d transactions", res.Migrated))
			if res.Migrated > 0 {
				fmt.Printf("Deleted category, re-pointed %d transactions to %q\n", res.Migrated, migrateTo)
			} else {
				fmt.Println("Deleted category")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&migrateTo, "migrate-to", "", "category to re-point referencing transactions to")
	return cmd
}
