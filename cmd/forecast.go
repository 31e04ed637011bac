package cmd

import (
	"fmt"

	"fincast/internal/cli"
	"fincast/internal/engine"

	"github.com/spf13/cobra"
)

var flagForecastTable bool

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the daily balance over the horizon",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&flagForecastTable, "table", false, "Print the full daily table")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %d days from %s", days, cli.FormatDate(asOf))))
	fmt.Println()

	fmt.Printf("  Starting   %s\n", cli.FormatMoney(forecast.StartingBalance))
	fmt.Printf("  Ending     %s\n", cli.FormatMoney(forecast.EndingBalance()))
	fmt.Printf("  Minimum    %s on %s\n",
		cli.FormatMoney(forecast.MinBalance), cli.FormatDate(forecast.MinBalanceDate))
	fmt.Printf("  Runway     %s\n", cli.FormatDays(forecast.RunwayDays, days))

	printWarnings(forecast, days)

	if len(forecast.Summaries) > 0 {
		rows := make([][]string, 0, len(forecast.Summaries))
		for _, s := range forecast.Summaries {
			rows = append(rows, []string{
				fmt.Sprintf("%d days", s.Days),
				cli.FormatMoney(s.TotalIncome),
				cli.FormatMoney(s.TotalExpenses),
				cli.FormatSignedMoney(s.NetChange),
				cli.FormatMoney(s.EndingBalance),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Period", "Income", "Expenses", "Net", "Ending"},
			Rows:    rows,
		}))
	}

	balances := make([]float64, len(forecast.DailyBalances))
	for i, pt := range forecast.DailyBalances {
		balances[i] = pt.Balance
	}
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(balances))
	fmt.Println()

	if flagForecastTable {
		rows := make([][]string, 0, len(forecast.DailyBalances))
		for _, pt := range forecast.DailyBalances {
			rows = append(rows, []string{
				cli.FormatDate(pt.Date),
				cli.FormatMoney(pt.Income),
				cli.FormatMoney(pt.Expenses),
				cli.FormatSignedMoney(pt.Net),
				cli.FormatMoney(pt.Balance),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Date", "Income", "Expenses", "Net", "Balance"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
