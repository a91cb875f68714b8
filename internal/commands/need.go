package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
	"github.com/kasku-dev/kasku/internal/needs"
	"github.com/kasku-dev/kasku/internal/recurrence"
)

func newNeedCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "need",
		Short: "Recurring monthly need operations",
	}
	cmd.AddCommand(newNeedAddCommand(dir))
	cmd.AddCommand(newNeedPayCommand(dir))
	cmd.AddCommand(newNeedDueCommand(dir))
	return cmd
}

func newNeedAddCommand(dir *string) *cobra.Command {
	var (
		budget string
		dueDay int
		period string
		start  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a recurring need",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			amt, err := parseAmount(budget)
			if err != nil {
				return err
			}

			svc := needs.NewService(ws.store)
			need, err := svc.Create(model.MonthlyNeedInput{
				Name:             args[0],
				BudgetAmount:     amt,
				DueDay:           dueDay,
				RecurrencePeriod: model.RecurrencePeriod(period),
				StartMonth:       start,
			})
			if err != nil {
				return err
			}

			ws.finishMutation("need.create", need.ID, need.Name)
			fmt.Printf("Created %s need %q budgeted at %s\n",
				need.RecurrencePeriod, need.Name, need.BudgetAmount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "budgeted amount (required)")
	_ = cmd.MarkFlagRequired("budget")
	cmd.Flags().IntVar(&dueDay, "due-day", 0, "day of month the need is due")
	cmd.Flags().StringVar(&period, "period", "forever", "monthly, yearly or forever")
	cmd.Flags().StringVar(&start, "start", "", "start month YYYY-MM (default current month)")

	return cmd
}

func newNeedPayCommand(dir *string) *cobra.Command {
	var (
		amount   string
		monthArg string
	)

	cmd := &cobra.Command{
		Use:   "pay <name-or-id>",
		Short: "Record the actual amount paid for a month",
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
			target, err := parseMonthFlag(monthArg)
			if err != nil {
				return err
			}

			needID, err := resolveNeed(ws, args[0])
			if err != nil {
				return err
			}

			svc := needs.NewService(ws.store)
			pay, err := svc.UpsertPayment(needID, target, amt)
			if err != nil {
				return err
			}

			ws.finishMutation("need.pay", pay.ID, fmt.Sprintf("%s %s", pay.YearMonth, amt.StringFixed(2)))
			fmt.Printf("Recorded %s for %s\n", amt.StringFixed(2), pay.YearMonth)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "actual amount paid (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&monthArg, "month", "", "month YYYY-MM (default current month)")

	return cmd
}

func newNeedDueCommand(dir *string) *cobra.Command {
	var monthArg string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List needs due in a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			target, err := parseMonthFlag(monthArg)
			if err != nil {
				return err
			}

			needList, err := ws.store.MonthlyNeeds()
			if err != nil {
				return err
			}
			pays, err := ws.store.MonthlyNeedPayments()
			if err != nil {
				return err
			}

			due := recurrence.DueForMonth(needList, pays, target)
			if len(due) == 0 {
				fmt.Printf("Nothing due in %s.\n", target)
				return nil
			}
			for _, d := range due {
				status := "unpaid"
				if d.Paid {
					status = "paid " + d.Payment.ActualAmount.StringFixed(2)
				}
				fmt.Printf("%-24s budget %10s  %s\n", d.Need.Name, d.Need.BudgetAmount.StringFixed(2), status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthArg, "month", "", "month YYYY-MM (default current month)")
	return cmd
}

func parseMonthFlag(s string) (month.Key, error) {
	if s == "" {
		return month.FromTime(time.Now()), nil
	}
	return month.Parse(s)
}

func resolveNeed(ws *workspace, ref string) (string, error) {
	needList, err := ws.store.MonthlyNeeds()
	if err != nil {
		return "", err
	}
	for _, n := range needList {
		if n.ID == ref || strings.EqualFold(n.Name, ref) {
			return n.ID, nil
		}
	}
	return "", fmt.Errorf("monthly need %q not found", ref)
}
