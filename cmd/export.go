package cmd

import (
	"fmt"
	"strings"

	"fincast/internal/engine"
	"fincast/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export projections to an Excel workbook",
	Long: `Export writes the current forecast, debt payoff plan, amortization
schedules, and goal projections to an .xlsx workbook.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}

	snap, cfg, err := loadData()
	if err != nil {
		return err
	}
	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	days := horizonDays(cfg)
	in := engine.NewForecastInput(cfg.General.StartingBalance, days, asOf,
		snap.ActiveRecurring(), snap.Transactions)
	forecast := engine.Forecast(in)
	savings := engine.AnalyzeSavings(snap.Transactions, asOf, cfg.Forecast.LookbackDays)

	wb := export.Workbook{
		Forecast:     forecast,
		Optimization: engine.OptimizeDebts(snap.Debts, cfg.Debts.ExtraMonthly),
	}
	for _, d := range snap.Debts {
		entries := engine.AmortizationSchedule(d.Balance, d.AnnualRate,
			d.MonthlyPayment+cfg.Debts.ExtraMonthly, asOf)
		if len(entries) == 0 {
			continue
		}
		wb.Schedules = append(wb.Schedules, export.NamedSchedule{Name: d.Name, Entries: entries})
	}
	for _, g := range snap.Goals {
		wb.Goals = append(wb.Goals, export.NamedProjection{
			Name:       g.Name,
			Projection: engine.ProjectGoal(g, savings.MonthlyIncome, savings.MonthlyExpenses, asOf),
		})
	}

	if err := export.Write(path, wb); err != nil {
		return err
	}

	fmt.Printf("  Wrote %s (%d-day forecast, %d debts, %d goals)\n",
		path, days, len(snap.Debts), len(snap.Goals))
	return nil
}
