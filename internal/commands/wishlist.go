package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/wishlist"
)

func newWishCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Savings goal operations",
	}
	cmd.AddCommand(newWishAddCommand(dir))
	cmd.AddCommand(newWishSaveCommand(dir))
	cmd.AddCommand(newWishBuyCommand(dir))
	cmd.AddCommand(newWishListCommand(dir))
	return cmd
}

func newWishAddCommand(dir *string) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(target)
			if err != nil {
				return err
			}

			svc := wishlist.NewService(ws.store)
			item, err := svc.Create(model.WishlistInput{Name: args[0], TargetAmount: amt})
			if err != nil {
				return err
			}

			ws.finishMutation("wishlist.create", item.ID, item.Name)
			fmt.Printf("Created goal %q targeting %s\n", item.Name, item.TargetAmount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "target amount (required)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newWishSaveCommand(dir *string) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "save <name-or-id>",
		Short: "Put money toward a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			itemID, err := resolveWish(ws, args[0])
			if err != nil {
				return err
			}

			svc := wishlist.NewService(ws.store)
			item, err := svc.AddSaving(itemID, amt)
			if err != nil {
				return err
			}

			ws.finishMutation("wishlist.save", item.ID, amt.StringFixed(2))
			fmt.Printf("Saved %s toward %q (%s%% there)\n",
				amt.StringFixed(2), item.Name, item.Progress().StringFixed(0))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to put aside (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWishBuyCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <name-or-id>",
		Short: "Mark a goal as purchased",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			itemID, err := resolveWish(ws, args[0])
			if err != nil {
				return err
			}

			svc := wishlist.NewService(ws.store)
			item, err := svc.MarkPurchased(itemID)
			if err != nil {
				return err
			}

			ws.finishMutation("wishlist.buy", item.ID, item.Name)
			fmt.Printf("Marked %q as purchased\n", item.Name)
			return nil
		},
	}
	return cmd
}

func newWishListCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}

			svc := wishlist.NewService(ws.store)
			items, err := svc.List()
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No savings goals yet.")
				return nil
			}
			for _, it := range items {
				status := fmt.Sprintf("%s%% of %s", it.Progress().StringFixed(0), it.TargetAmount.StringFixed(2))
				if it.IsPurchased {
					status = "purchased"
				}
				fmt.Printf("%-24s saved %12s  %s\n", it.Name, it.SavedAmount.StringFixed(2), status)
			}
			return nil
		},
	}
	return cmd
}

func resolveWish(ws *workspace, ref string) (string, error) {
	items, err := ws.store.Wishlist()
	if err != nil {
		return "", err
	}
	for _, it := range items {
		if it.ID == ref || strings.EqualFold(it.Name, ref) {
			return it.ID, nil
		}
	}
	return "", fmt.Errorf("wishlist item %q not found", ref)
}
