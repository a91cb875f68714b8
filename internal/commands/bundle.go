package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/bundle"
	"github.com/kasku-dev/kasku/internal/model"
)

func newExportCommand(dir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full data set to a JSON bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}

			data, err := bundle.Export(ws.store, time.Now())
			if err != nil {
				return err
			}
			raw, err := bundle.Encode(data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("writing bundle: %w", err)
			}

			fmt.Printf("Exported %d transactions, %d categories, %d installments to %s\n",
				len(data.Transactions), len(data.Categories), len(data.Installments), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImportCommand(dir *string) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a JSON bundle into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading bundle: %w", err)
			}
			data, errs := bundle.Decode(raw)
			if len(errs) > 0 {
				return fmt.Errorf("invalid bundle: %s", model.JoinFieldErrors(errs))
			}

			if err := bundle.Import(ws.store, data, bundle.ImportMode(mode)); err != nil {
				return err
			}

			ws.finishMutation("bundle.import", "", fmt.Sprintf("%s %s", mode, args[0]))
			fmt.Printf("Imported %s in %s mode\n", args[0], mode)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(bundle.ModeReplace), "replace or merge")
	return cmd
}
