package cmd

import (
	"fmt"

	"fincast/internal/cli"
	"fincast/internal/engine"
	"fincast/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagScenarioType      string
	flagScenarioAmount    float64
	flagScenarioPercent   float64
	flagScenarioFrequency string
	flagScenarioDirection string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Compare a what-if change against the baseline forecast",
	Long: `Simulate a financial change and compare it with the baseline projection.

Types:
  income-change       monthly income delta (--amount) or percent (--percent)
  expense-change      monthly expense delta (--amount) or percent (--percent)
  new-recurring       a new recurring item (--amount, --frequency, --direction)
  goal-acceleration   extra monthly savings toward a goal (--amount)
  budget-cut          monthly spending reduction (--amount)`,
	RunE: runScenario,
}

func init() {
	scenarioCmd.Flags().StringVarP(&flagScenarioType, "type", "t", "", "Scenario type (required)")
	scenarioCmd.Flags().Float64VarP(&flagScenarioAmount, "amount", "a", 0, "Monthly or per-occurrence amount")
	scenarioCmd.Flags().Float64VarP(&flagScenarioPercent, "percent", "p", 0, "Percent change instead of a fixed amount")
	scenarioCmd.Flags().StringVarP(&flagScenarioFrequency, "frequency", "f", "monthly", "Frequency for new-recurring")
	scenarioCmd.Flags().StringVar(&flagScenarioDirection, "direction", "expense", "Direction for new-recurring (income|expense)")
	_ = scenarioCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(scenarioCmd)
}

func scenarioInput() (model.ScenarioKind, model.ScenarioParams, error) {
	var kind model.ScenarioKind
	params := model.ScenarioParams{
		MonthlyAmount: flagScenarioAmount,
		Percent:       flagScenarioPercent,
		UsePercent:    flagScenarioPercent != 0,
		Amount:        flagScenarioAmount,
	}

	switch flagScenarioType {
	case "income-change":
		kind = model.ScenarioIncomeChange
	case "expense-change":
		kind = model.ScenarioExpenseChange
	case "goal-acceleration":
		kind = model.ScenarioGoalAcceleration
	case "budget-cut":
		kind = model.ScenarioBudgetCut
	case "new-recurring":
		kind = model.ScenarioNewRecurring
		freq, ok := model.ParseFrequency(flagScenarioFrequency)
		if !ok {
			return "", params, fmt.Errorf("invalid --frequency %q", flagScenarioFrequency)
		}
		params.Frequency = freq
		switch flagScenarioDirection {
		case "income":
			params.Direction = model.Income
		case "expense":
			params.Direction = model.Expense
		default:
			return "", params, fmt.Errorf("invalid --direction %q", flagScenarioDirection)
		}
	default:
		return "", params, fmt.Errorf("unknown scenario type %q", flagScenarioType)
	}

	return kind, params, nil
}

func runScenario(_ *cobra.Command, _ []string) error {
	kind, params, err := scenarioInput()
	if err != nil {
		return err
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
	result := engine.SimulateScenario(model.ScenarioInput{
		Forecast: engine.NewForecastInput(cfg.General.StartingBalance, days, asOf,
			snap.ActiveRecurring(), snap.Transactions),
		Kind:   kind,
		Params: params,
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO  %s over %d days", flagScenarioType, days)))
	fmt.Println()

	rows := [][]string{
		{"Ending balance",
			cli.FormatMoney(result.Baseline.EndingBalance()),
			cli.FormatMoney(result.Modified.EndingBalance())},
		{"Minimum balance",
			cli.FormatMoney(result.Baseline.MinBalance),
			cli.FormatMoney(result.Modified.MinBalance)},
		{"Runway",
			cli.FormatDays(result.Baseline.RunwayDays, days),
			cli.FormatDays(result.Modified.RunwayDays, days)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Baseline", "Modified"},
		Rows:    rows,
	}))

	c := result.Comparison
	delta := cli.FormatSignedMoney(c.BalanceDelta)
	if c.IsImprovement {
		delta = cli.Good(delta)
	} else if c.BalanceDelta < 0 {
		delta = cli.Bad(delta)
	}

	fmt.Println()
	fmt.Printf("  Balance delta  %s (%s)\n", delta, cli.FormatPercent(c.BalanceDeltaPct))
	if c.RunwayDeltaDays != 0 {
		fmt.Printf("  Runway delta   %+d days\n", c.RunwayDeltaDays)
	}
	fmt.Printf("\n  %s\n\n", result.Recommendation)

	return nil
}
