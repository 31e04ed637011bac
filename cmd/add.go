package cmd

import (
	"fmt"
	"strconv"
	"time"

	"fincast/internal/cli"
	"fincast/internal/model"
	"fincast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagAddDirection string
	flagAddCategory  string
	flagAddDate      string
	flagAddFrequency string
	flagAddEndDate   string
	flagAddKind      string
	flagAddRate      float64
	flagAddPayment   float64
	flagAddCurrent   float64
	flagAddPriority  int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add transactions, recurring obligations, debts, and goals",
}

var addTxnCmd = &cobra.Command{
	Use:   "txn AMOUNT DESCRIPTION",
	Short: "Record a transaction",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddTxn,
}

var addRecurringCmd = &cobra.Command{
	Use:   "recurring AMOUNT DESCRIPTION",
	Short: "Track a recurring obligation",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddRecurring,
}

var addDebtCmd = &cobra.Command{
	Use:   "debt NAME BALANCE",
	Short: "Track a debt",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddDebt,
}

var addGoalCmd = &cobra.Command{
	Use:   "goal NAME TARGET",
	Short: "Track a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddGoal,
}

func init() {
	addTxnCmd.Flags().StringVar(&flagAddDirection, "direction", "expense", "income or expense")
	addTxnCmd.Flags().StringVar(&flagAddCategory, "category", "", "Category label")
	addTxnCmd.Flags().StringVar(&flagAddDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")

	addRecurringCmd.Flags().StringVar(&flagAddDirection, "direction", "expense", "income or expense")
	addRecurringCmd.Flags().StringVar(&flagAddCategory, "category", "", "Category label")
	addRecurringCmd.Flags().StringVar(&flagAddFrequency, "frequency", "monthly", "daily|weekly|biweekly|monthly|quarterly|yearly")
	addRecurringCmd.Flags().StringVar(&flagAddDate, "next", "", "Next due date (YYYY-MM-DD, default today)")
	addRecurringCmd.Flags().StringVar(&flagAddEndDate, "end", "", "Optional end date (YYYY-MM-DD)")

	addDebtCmd.Flags().StringVar(&flagAddKind, "kind", "debt", "debt or loan")
	addDebtCmd.Flags().Float64Var(&flagAddRate, "rate", 0, "Annual interest rate percent")
	addDebtCmd.Flags().Float64Var(&flagAddPayment, "payment", 0, "Monthly payment")
	addDebtCmd.Flags().StringVar(&flagAddDate, "start", "", "Start date (YYYY-MM-DD, default today)")

	addGoalCmd.Flags().Float64Var(&flagAddCurrent, "current", 0, "Amount already saved")
	addGoalCmd.Flags().StringVar(&flagAddDate, "by", "", "Target date (YYYY-MM-DD)")
	addGoalCmd.Flags().IntVar(&flagAddPriority, "priority", 0, "Priority ordinal (lower first)")

	addCmd.AddCommand(addTxnCmd, addRecurringCmd, addDebtCmd, addGoalCmd)
	rootCmd.AddCommand(addCmd)
}

func parseAmountArg(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", v)
	}
	return v, nil
}

func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func parseDirectionFlag(s string) (model.Direction, error) {
	switch s {
	case "income":
		return model.Income, nil
	case "expense":
		return model.Expense, nil
	}
	return "", fmt.Errorf("invalid direction %q: want income or expense", s)
}

func runAddTxn(_ *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}
	direction, err := parseDirectionFlag(flagAddDirection)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(flagAddDate)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	txn := model.Transaction{
		ID:          store.NewID(),
		Direction:   direction,
		Amount:      amount,
		Description: args[1],
		Category:    flagAddCategory,
		Date:        date,
	}
	if err := s.SaveTransaction(txn); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s %s (%s)\n", string(direction), cli.FormatMoney(amount), args[1])
	return nil
}

func runAddRecurring(_ *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}
	direction, err := parseDirectionFlag(flagAddDirection)
	if err != nil {
		return err
	}
	frequency, ok := model.ParseFrequency(flagAddFrequency)
	if !ok {
		return fmt.Errorf("invalid frequency %q", flagAddFrequency)
	}
	next, err := parseDateFlag(flagAddDate)
	if err != nil {
		return err
	}

	var end time.Time
	if flagAddEndDate != "" {
		if end, err = parseDateFlag(flagAddEndDate); err != nil {
			return err
		}
		if end.Before(next) {
			return fmt.Errorf("end date %s is before next date %s", flagAddEndDate, cli.FormatDate(next))
		}
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	r := model.RecurringObligation{
		ID:          store.NewID(),
		Direction:   direction,
		Amount:      amount,
		Description: args[1],
		Category:    flagAddCategory,
		Frequency:   frequency,
		NextDate:    next,
		EndDate:     end,
		Active:      true,
	}
	if err := s.SaveRecurring(r); err != nil {
		return err
	}

	fmt.Printf("  Tracking %s %s %s (next %s)\n",
		string(frequency), string(direction), cli.FormatMoney(amount), cli.FormatDate(next))
	return nil
}

func runAddDebt(_ *cobra.Command, args []string) error {
	balance, err := parseAmountArg(args[1])
	if err != nil {
		return err
	}

	var kind model.DebtKind
	switch flagAddKind {
	case "debt":
		kind = model.KindDebt
	case "loan":
		kind = model.KindLoan
	default:
		return fmt.Errorf("invalid kind %q: want debt or loan", flagAddKind)
	}

	if flagAddRate < 0 {
		return fmt.Errorf("rate must not be negative")
	}
	start, err := parseDateFlag(flagAddDate)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	d := model.Debt{
		ID:             store.NewID(),
		Name:           args[0],
		Kind:           kind,
		Principal:      balance,
		Balance:        balance,
		AnnualRate:     flagAddRate,
		MonthlyPayment: flagAddPayment,
		StartDate:      start,
	}
	if err := s.SaveDebt(d); err != nil {
		return err
	}

	fmt.Printf("  Tracking %s %q: %s at %s\n",
		flagAddKind, d.Name, cli.FormatMoney(balance), cli.FormatRate(d.AnnualRate))
	return nil
}

func runAddGoal(_ *cobra.Command, args []string) error {
	target, err := parseAmountArg(args[1])
	if err != nil {
		return err
	}
	if flagAddDate == "" {
		return fmt.Errorf("--by date is required for a goal")
	}
	targetDate, err := parseDateFlag(flagAddDate)
	if err != nil {
		return err
	}
	if flagAddCurrent < 0 || flagAddCurrent > target {
		return fmt.Errorf("--current must be between 0 and the target")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	g := model.Goal{
		ID:            store.NewID(),
		Name:          args[0],
		TargetAmount:  target,
		CurrentAmount: flagAddCurrent,
		TargetDate:    targetDate,
		Priority:      flagAddPriority,
	}
	if err := s.SaveGoal(g); err != nil {
		return err
	}

	fmt.Printf("  Tracking goal %q: %s by %s\n",
		g.Name, cli.FormatMoney(target), cli.FormatDate(targetDate))
	return nil
}
