package cmd

import (
	"fmt"
	"os"

	"fincast/internal/cli"
	"fincast/internal/engine"
	"fincast/internal/model"
	"fincast/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	flagRecurringSave    bool
	flagRecurringMinConf float64
)

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Detect recurring patterns in transaction history",
	RunE:  runRecurring,
}

func init() {
	recurringCmd.Flags().BoolVar(&flagRecurringSave, "save", false, "Persist detected patterns as recurring obligations")
	recurringCmd.Flags().Float64Var(&flagRecurringMinConf, "min-confidence", 0, "Only show candidates at or above this confidence")
	rootCmd.AddCommand(recurringCmd)
}

func runRecurring(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snap, err := s.LoadSnapshot()
	if err != nil {
		return err
	}

	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	candidates := engine.DetectRecurring(snap.Transactions, asOf)

	var shown []model.RecurringCandidate
	for _, c := range candidates {
		if c.Confidence >= flagRecurringMinConf && !alreadyTracked(snap.Recurring, c) {
			shown = append(shown, c)
		}
	}

	if len(shown) == 0 {
		fmt.Println("\n  No recurring patterns detected.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Description", "Type", "Amount", "Frequency", "Next", "Seen", "Confidence"})
	for _, c := range shown {
		t.AppendRow(table.Row{
			c.Description,
			string(c.Direction),
			cli.FormatMoney(c.Amount),
			string(c.Frequency),
			cli.FormatDate(c.NextDate),
			c.Occurrences,
			cli.FormatPercent(c.Confidence * 100),
		})
	}
	t.SetStyle(table.StyleRounded)

	fmt.Println()
	t.Render()

	if !flagRecurringSave {
		fmt.Println("\n  Run with --save to track these as recurring obligations.")
		return nil
	}

	saved := 0
	for _, c := range shown {
		r := model.RecurringObligation{
			ID:          store.NewID(),
			Direction:   c.Direction,
			Amount:      c.Amount,
			Description: c.Description,
			Category:    c.Category,
			Frequency:   c.Frequency,
			NextDate:    c.NextDate,
			Active:      true,
		}
		if err := s.SaveRecurring(r); err != nil {
			return fmt.Errorf("saving %q: %w", c.Description, err)
		}
		saved++
	}
	fmt.Printf("\n  Saved %d recurring obligations.\n", saved)

	return nil
}

// alreadyTracked filters candidates that match an existing active obligation
// by description and direction.
func alreadyTracked(existing []model.RecurringObligation, c model.RecurringCandidate) bool {
	for _, r := range existing {
		if r.Active && r.Direction == c.Direction && r.Description == c.Description {
			return true
		}
	}
	return false
}
