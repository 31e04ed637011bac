package cmd

import (
	"fmt"

	"fincast/internal/cli"
	"fincast/internal/engine"
	"fincast/internal/model"

	"github.com/spf13/cobra"
)

func runOverview(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINCAST OVERVIEW  %s", cli.FormatDate(asOf))))
	fmt.Println()

	balance := cli.FormatMoney(forecast.StartingBalance)
	ending := cli.FormatMoney(forecast.EndingBalance())
	if forecast.EndingBalance() < forecast.StartingBalance {
		ending = cli.Warn(ending)
	} else {
		ending = cli.Good(ending)
	}

	fmt.Printf("  Balance          %s\n", balance)
	fmt.Printf("  In %d days       %s\n", days, ending)
	fmt.Printf("  Runway           %s\n", cli.FormatDays(forecast.RunwayDays, days))
	fmt.Printf("  Monthly income   %s\n", cli.FormatMoney(savings.MonthlyIncome))
	fmt.Printf("  Monthly expenses %s\n", cli.FormatMoney(savings.MonthlyExpenses))
	fmt.Printf("  Savings rate     %s\n", cli.FormatPercent(savings.SavingsRatePct))
	fmt.Println()

	if len(snap.Debts) > 0 {
		total := 0.0
		for _, d := range snap.Debts {
			total += d.Balance
		}
		fmt.Printf("  Debt balance     %s across %d debts\n", cli.FormatMoney(total), len(snap.Debts))
	}
	if len(snap.Goals) > 0 {
		fmt.Printf("  Goals            %d tracked\n", len(snap.Goals))
	}

	printWarnings(forecast, days)

	balances := make([]float64, len(forecast.DailyBalances))
	for i, pt := range forecast.DailyBalances {
		balances[i] = pt.Balance
	}
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(balances))
	fmt.Println()

	return nil
}

func printWarnings(forecast model.ForecastResult, days int) {
	for _, w := range forecast.Warnings {
		switch w.Kind {
		case model.WarnCritical:
			fmt.Printf("\n  %s\n", cli.Bad(fmt.Sprintf(
				"CRITICAL: funds run out in %d days", w.RunwayDays)))
		case model.WarnLow:
			fmt.Printf("\n  %s\n", cli.Warn(fmt.Sprintf(
				"LOW: balance dips to %s on %s",
				cli.FormatMoney(w.MinBalance), cli.FormatDate(w.MinDate))))
		}
	}
}
