package cmd

import (
	"fmt"
	"strings"

	"fincast/internal/cli"
	"fincast/internal/engine"
	"fincast/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDebtsExtra    float64
	flagDebtsSchedule string
	flagDebtsMonths   int
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Compare debt payoff strategies",
	RunE:  runDebts,
}

func init() {
	debtsCmd.Flags().Float64VarP(&flagDebtsExtra, "extra", "e", -1, "Extra monthly budget (default from config)")
	debtsCmd.Flags().StringVar(&flagDebtsSchedule, "schedule", "", "Print the amortization schedule for the named debt")
	debtsCmd.Flags().IntVar(&flagDebtsMonths, "months", 0, "Solve the payment that retires --schedule's debt in N months")
	rootCmd.AddCommand(debtsCmd)
}

func runDebts(_ *cobra.Command, _ []string) error {
	snap, cfg, err := loadData()
	if err != nil {
		return err
	}

	if len(snap.Debts) == 0 {
		fmt.Println("\n  No debts tracked. Add one with: fincast add debt")
		return nil
	}

	if flagDebtsSchedule != "" {
		return printSchedule(snap.Debts, flagDebtsSchedule, flagDebtsMonths)
	}

	extra := cfg.Debts.ExtraMonthly
	if flagDebtsExtra >= 0 {
		extra = flagDebtsExtra
	}

	result := engine.OptimizeDebts(snap.Debts, extra)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEBT PAYOFF  extra %s/month", cli.FormatMoney(extra))))
	fmt.Println()

	rows := make([][]string, 0, len(snap.Debts))
	for _, d := range snap.Debts {
		rows = append(rows, []string{
			d.Name,
			cli.FormatMoney(d.Balance),
			cli.FormatRate(d.AnnualRate),
			cli.FormatMoney(d.MonthlyPayment),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Tracked debts",
		Headers: []string{"Debt", "Balance", "Rate", "Payment"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Print(renderStrategy(result.Avalanche))
	fmt.Println()
	fmt.Print(renderStrategy(result.Snowball))

	fmt.Println()
	fmt.Printf("  Recommended: %s", cli.Good(strings.ToUpper(string(result.Recommended))))
	if result.InterestSavings > 0 {
		fmt.Printf(" (saves %s in interest)", cli.FormatMoney(result.InterestSavings))
	}
	fmt.Println()
	fmt.Println()

	return nil
}

func renderStrategy(r *model.StrategyResult) string {
	if r == nil {
		return ""
	}

	rows := make([][]string, 0, len(r.Debts))
	for _, d := range r.Debts {
		rows = append(rows, []string{
			d.Name,
			cli.FormatMonths(d.MonthsToPayoff),
			cli.FormatMoney(d.TotalInterest),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"total",
		cli.FormatMonths(r.TotalMonths),
		cli.FormatMoney(r.TotalInterest),
	})

	return cli.RenderTable(cli.Table{
		Title:   strings.ToUpper(string(r.Strategy)),
		Headers: []string{"Debt", "Payoff", "Interest"},
		Rows:    rows,
	})
}

func printSchedule(debts []model.Debt, name string, months int) error {
	var debt *model.Debt
	for i := range debts {
		if strings.EqualFold(debts[i].Name, name) {
			debt = &debts[i]
			break
		}
	}
	if debt == nil {
		return fmt.Errorf("no debt named %q", name)
	}

	payment := debt.MonthlyPayment
	if months > 0 {
		payment = engine.MinimumPayment(debt.Balance, debt.AnnualRate, months)
		fmt.Printf("\n  Payment to retire %s in %s: %s\n",
			debt.Name, cli.FormatMonths(months), cli.FormatMoney(payment))
	}

	schedule := engine.AmortizationSchedule(debt.Balance, debt.AnnualRate, payment, debt.StartDate)
	if len(schedule) == 0 {
		fmt.Println("\n  Nothing to amortize.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCHEDULE  %s at %s/month", debt.Name, cli.FormatMoney(payment))))
	fmt.Println()

	rows := make([][]string, 0, len(schedule))
	for _, e := range schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Month),
			cli.FormatDate(e.Date),
			cli.FormatMoney(e.Payment),
			cli.FormatMoney(e.Principal),
			cli.FormatMoney(e.Interest),
			cli.FormatMoney(e.Balance),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Date", "Payment", "Principal", "Interest", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
