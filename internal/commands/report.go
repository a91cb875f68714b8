package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/report"
)

func newReportCommand(dir *string) *cobra.Command {
	var monthArg string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show cashflow, breakdown, net worth and insights",
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
			return runReport(ws, target.End().Add(-time.Hour))
		},
	}

	cmd.Flags().StringVar(&monthArg, "month", "", "month YYYY-MM (default current month)")
	return cmd
}

func runReport(ws *workspace, asOf time.Time) error {
	engine := report.NewEngine(ws.store)

	window := ws.cfg.Report.WindowMonths
	if window <= 0 {
		window = report.DefaultWindow
	}
	topN := ws.cfg.Report.TopCategories

	series, err := engine.CashflowSeries(asOf, window)
	if err != nil {
		return err
	}
	fmt.Println("Cashflow:")
	for _, p := range series {
		fmt.Printf("  %s  in %12s  out %12s  installments %12s  net %12s\n",
			p.Month, p.Income.StringFixed(2), p.Expense.StringFixed(2),
			p.Installment.StringFixed(2), p.Net.StringFixed(2))
	}

	current := series[len(series)-1].Month
	rows, err := engine.ExpenseBreakdown(current)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		fmt.Printf("\nExpenses in %s:\n", current)
		for _, r := range rows {
			name := r.CategoryName
			if name == "" {
				name = r.CategoryID
			}
			fmt.Printf("  %-24s %12s  %5s%%\n", name, r.Amount.StringFixed(2), r.Percentage.StringFixed(1))
		}
	}

	comps, err := engine.CompareCategories(current, topN)
	if err != nil {
		return err
	}
	if len(comps) > 0 {
		fmt.Println("\nVersus last month:")
		for _, c := range comps {
			name := c.CategoryName
			if name == "" {
				name = c.CategoryID
			}
			fmt.Printf("  %-24s %12s -> %12s  (%s%%)\n",
				name, c.Previous.StringFixed(2), c.Current.StringFixed(2), c.ChangePercentage.StringFixed(1))
		}
	}

	worth, err := engine.NetWorth()
	if err != nil {
		return err
	}
	fmt.Printf("\nNet worth: %s (assets %s, liabilities %s)\n",
		worth.NetWorth.StringFixed(2), worth.Assets.StringFixed(2), worth.Liabilities.StringFixed(2))

	fund, err := engine.EmergencyFund()
	if err != nil {
		return err
	}
	if fund.Target.Sign() > 0 {
		fmt.Printf("Emergency fund: %s of %s (%s%%)\n",
			fund.Savings.StringFixed(2), fund.Target.StringFixed(2), fund.Progress.StringFixed(1))
	}

	insights, err := engine.Insights(asOf)
	if err != nil {
		return err
	}
	if len(insights) > 0 {
		fmt.Println("\nInsights:")
		for _, in := range insights {
			fmt.Printf("  [%s] %s\n", in.Level, in.Message)
		}
	}
	return nil
}
