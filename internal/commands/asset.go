package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/asset"
	"github.com/kasku-dev/kasku/internal/model"
)

func newAssetCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Asset and liability operations",
	}
	cmd.AddCommand(newAssetAddCommand(dir))
	cmd.AddCommand(newAssetValueCommand(dir))
	cmd.AddCommand(newAssetListCommand(dir))
	return cmd
}

func newAssetAddCommand(dir *string) *cobra.Command {
	var (
		value     string
		liability bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Track a new asset or liability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(value)
			if err != nil {
				return err
			}

			svc := asset.NewService(ws.store)
			a, err := svc.Create(model.AssetInput{
				Name:         args[0],
				IsLiability:  liability,
				CurrentValue: amt,
			})
			if err != nil {
				return err
			}

			ws.finishMutation("asset.create", a.ID, a.Name)
			kind := "asset"
			if a.IsLiability {
				kind = "liability"
			}
			fmt.Printf("Tracking %s %q valued at %s\n", kind, a.Name, a.CurrentValue.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "current value (required)")
	_ = cmd.MarkFlagRequired("value")
	cmd.Flags().BoolVar(&liability, "liability", false, "track as a liability")

	return cmd
}

func newAssetValueCommand(dir *string) *cobra.Command {
	var (
		value string
		day   string
	)

	cmd := &cobra.Command{
		Use:   "value <name-or-id>",
		Short: "Record a revaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(value)
			if err != nil {
				return err
			}
			when, err := parseDate(day)
			if err != nil {
				return err
			}
			assetID, err := resolveAsset(ws, args[0])
			if err != nil {
				return err
			}

			svc := asset.NewService(ws.store)
			a, err := svc.Revalue(assetID, when, amt)
			if err != nil {
				return err
			}

			ws.finishMutation("asset.value", a.ID, amt.StringFixed(2))
			fmt.Printf("Revalued %q to %s\n", a.Name, a.CurrentValue.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "new value (required)")
	_ = cmd.MarkFlagRequired("value")
	cmd.Flags().StringVar(&day, "date", "", "valuation date YYYY-MM-DD (default today)")

	return cmd
}

func newAssetListCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked assets and liabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}

			svc := asset.NewService(ws.store)
			all, err := svc.List()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No assets tracked yet.")
				return nil
			}
			for _, a := range all {
				kind := "asset"
				if a.IsLiability {
					kind = "liability"
				}
				fmt.Printf("%-24s %-9s %14s\n", a.Name, kind, a.CurrentValue.StringFixed(2))
			}
			return nil
		},
	}
	return cmd
}

func resolveAsset(ws *workspace, ref string) (string, error) {
	all, err := ws.store.Assets()
	if err != nil {
		return "", err
	}
	for _, a := range all {
		if a.ID == ref || strings.EqualFold(a.Name, ref) {
			return a.ID, nil
		}
	}
	return "", fmt.Errorf("asset %q not found", ref)
}
