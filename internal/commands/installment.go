package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/installment"
	"github.com/kasku-dev/kasku/internal/model"
)

func newInstallmentCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installment",
		Short: "Installment plan operations",
	}
	cmd.AddCommand(newInstallmentAddCommand(dir))
	cmd.AddCommand(newInstallmentPayCommand(dir))
	cmd.AddCommand(newInstallmentListCommand(dir))
	return cmd
}

func newInstallmentAddCommand(dir *string) *cobra.Command {
	var (
		name   string
		tenor  int
		amount string
		start  string
		subcat string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an installment plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			day, err := parseDate(start)
			if err != nil {
				return err
			}

			svc := installment.NewService(ws.store)
			inst, err := svc.Create(model.InstallmentInput{
				Name:          name,
				TotalTenor:    tenor,
				MonthlyAmount: amt,
				StartDate:     day,
				Subcategory:   subcat,
			})
			if err != nil {
				return err
			}

			ws.finishMutation("installment.create", inst.ID, inst.Name)
			fmt.Printf("Created installment %q: %d x %s\n", inst.Name, inst.TotalTenor, inst.MonthlyAmount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().IntVar(&tenor, "tenor", 0, "number of monthly periods (required)")
	_ = cmd.MarkFlagRequired("tenor")
	cmd.Flags().StringVar(&amount, "monthly", "", "monthly amount (required)")
	_ = cmd.MarkFlagRequired("monthly")
	cmd.Flags().StringVar(&start, "start", "", "start date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&subcat, "subcategory", "", "free-form grouping label")

	return cmd
}

func newInstallmentPayCommand(dir *string) *cobra.Command {
	var (
		amount string
		date   string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "pay <name-or-id>",
		Short: "Record a payment against a plan",
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
			day, err := parseDate(date)
			if err != nil {
				return err
			}

			svc := installment.NewService(ws.store)
			instID, err := resolveInstallment(ws, svc, args[0])
			if err != nil {
				return err
			}

			inst, err := svc.AddPayment(instID, model.PaymentInput{Amount: amt, Date: day, Note: note})
			if errors.Is(err, installment.ErrPaidOff) {
				return fmt.Errorf("%q is already paid off; nothing recorded", args[0])
			}
			if err != nil {
				return err
			}

			st := installment.Derive(inst)
			ws.finishMutation("installment.pay", inst.ID, amt.StringFixed(2))
			fmt.Printf("Paid %s toward %q: period %d/%d, %s\n",
				amt.StringFixed(2), inst.Name, st.CurrentPeriod, inst.TotalTenor, st.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "payment amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "payment date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")

	return cmd
}

func newInstallmentListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans with derived progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			insts, err := installment.NewService(ws.store).List()
			if err != nil {
				return err
			}
			if len(insts) == 0 {
				fmt.Println("No installment plans.")
				return nil
			}
			for _, inst := range insts {
				st := installment.Derive(inst)
				fmt.Printf("%-24s %8s  period %d/%d  paid %s of %s\n",
					inst.Name, st.Status, st.CurrentPeriod, inst.TotalTenor,
					st.TotalPaid.StringFixed(2), st.TotalAmount.StringFixed(2))
			}
			return nil
		},
	}
}

func resolveInstallment(ws *workspace, svc *installment.Service, ref string) (string, error) {
	insts, err := svc.List()
	if err != nil {
		return "", err
	}
	for _, inst := range insts {
		if inst.ID == ref || strings.EqualFold(inst.Name, ref) {
			return inst.ID, nil
		}
	}
	return "", fmt.Errorf("installment %q not found", ref)
}
