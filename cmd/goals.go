package cmd

import (
	"fmt"

	"fincast/internal/cli"
	"fincast/internal/engine"
	"fincast/internal/model"

	"github.com/spf13/cobra"
)

var flagGoalsMilestones bool

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Project savings goals and their milestones",
	RunE:  runGoals,
}

func init() {
	goalsCmd.Flags().BoolVarP(&flagGoalsMilestones, "milestones", "m", false, "Show the milestone breakdown per goal")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	snap, cfg, err := loadData()
	if err != nil {
		return err
	}

	if len(snap.Goals) == 0 {
		fmt.Println("\n  No goals tracked. Add one with: fincast add goal")
		return nil
	}

	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	savings := engine.AnalyzeSavings(snap.Transactions, asOf, cfg.Forecast.LookbackDays)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	for _, goal := range snap.Goals {
		p := engine.ProjectGoal(goal, savings.MonthlyIncome, savings.MonthlyExpenses, asOf)

		status := string(p.Status)
		switch p.Status {
		case model.GoalAchieved, model.GoalOnTrack:
			status = cli.Good(status)
		case model.GoalAtRisk:
			status = cli.Warn(status)
		case model.GoalBehind:
			status = cli.Bad(status)
		}

		fmt.Printf("  %s  %s\n", goal.Name, status)
		fmt.Printf("    %s\n", cli.RenderProgressBar(goal.ProgressFraction(), 30))
		fmt.Printf("    %s of %s by %s\n",
			cli.FormatMoney(goal.CurrentAmount),
			cli.FormatMoney(goal.TargetAmount),
			cli.FormatDate(goal.TargetDate))
		fmt.Printf("    Required %s/month, available %s/month, probability %s\n",
			cli.FormatMoney(p.RequiredMonthly),
			cli.FormatMoney(p.AvailableMonthly),
			cli.FormatPercent(p.Probability*100))
		if p.Status != model.GoalAchieved {
			if p.EstimatedMonths >= model.EstimatedMonthsCap {
				fmt.Printf("    No completion estimate at the current pace\n")
			} else {
				fmt.Printf("    Estimated completion %s (%s)\n",
					cli.FormatDate(p.EstimatedCompletion),
					cli.FormatMonths(p.EstimatedMonths))
			}
		}

		if flagGoalsMilestones {
			printMilestones(engine.AdaptiveMilestones(goal, savings, asOf))
		}
		fmt.Println()
	}

	return nil
}

func printMilestones(plan model.MilestonePlan) {
	rows := make([][]string, 0, len(plan.Milestones))
	for _, m := range plan.Milestones {
		status := string(m.Status)
		if m.Achieved {
			status = "done"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d%%", m.Percent),
			cli.FormatMoney(m.Amount),
			cli.FormatDate(m.EstimatedDate),
			status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Milestone", "Amount", "Estimated", "Status"},
		Rows:    rows,
	}))

	for _, a := range plan.Advice {
		switch a.Kind {
		case model.AdviceShortfall:
			fmt.Printf("    Save %s more per month to stay on plan\n", cli.FormatMoney(a.MonthlyAmount))
		case model.AdviceSurplus:
			fmt.Printf("    Running %s/month ahead of plan\n", cli.FormatMoney(a.MonthlyAmount))
		case model.AdviceSteady:
			fmt.Printf("    On pace, keep the current contribution\n")
		case model.AdviceLowRate:
			fmt.Printf("    Overall savings rate is %s, consider trimming expenses\n", cli.FormatPercent(a.SavingsRatePct))
		case model.AdviceHighRate:
			fmt.Printf("    Strong savings rate at %s\n", cli.FormatPercent(a.SavingsRatePct))
		}
	}
}
