// Package model defines domain types for fincast entities and projections.
package model

import "time"

// Direction classifies a cash movement as money in or money out.
type Direction string

const (
	Income  Direction = "income"
	Expense Direction = "expense"
)

// Frequency is the repeat interval of a recurring obligation.
type Frequency string

const (
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// Interval returns the fixed day interval for a frequency.
// Unknown frequencies fall back to monthly.
func (f Frequency) Interval() int {
	switch f {
	case Daily:
		return 1
	case Weekly:
		return 7
	case Biweekly:
		return 14
	case Monthly:
		return 30
	case Quarterly:
		return 90
	case Yearly:
		return 365
	default:
		return 30
	}
}

// ParseFrequency maps a string to a Frequency, reporting whether it is known.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case Daily, Weekly, Biweekly, Monthly, Quarterly, Yearly:
		return Frequency(s), true
	}
	return "", false
}

// Transaction is one dated, typed cash movement from history.
type Transaction struct {
	ID          string
	Direction   Direction
	Amount      float64
	Description string
	Category    string
	Date        time.Time
}

// RecurringObligation is a declared scheduled income or expense.
// The engine reads these as snapshots; they are owned and mutated elsewhere.
type RecurringObligation struct {
	ID          string
	Direction   Direction
	Amount      float64
	Description string
	Category    string
	Frequency   Frequency
	NextDate    time.Time
	EndDate     time.Time // zero value means no end date
	Active      bool
}

// DueOn reports whether the obligation falls due on the given calendar day.
// Due dates are computed by stepping the fixed day interval forward from
// NextDate; an obligation contributes at most once per day.
func (r RecurringObligation) DueOn(day time.Time) bool {
	if !r.Active {
		return false
	}
	d := dateOnly(day)
	next := dateOnly(r.NextDate)
	if d.Before(next) {
		return false
	}
	if !r.EndDate.IsZero() && d.After(dateOnly(r.EndDate)) {
		return false
	}
	offset := int(d.Sub(next).Hours() / 24)
	return offset%r.Frequency.Interval() == 0
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DebtKind distinguishes money the user owes from money owed to the user.
// The engine's math is identical for both; the kind only matters to callers.
type DebtKind string

const (
	KindDebt DebtKind = "debt"
	KindLoan DebtKind = "loan"
)

// Debt is a single interest-bearing balance with a fixed monthly payment.
type Debt struct {
	ID             string
	Name           string
	Kind           DebtKind
	Principal      float64
	Balance        float64 // outstanding, non-increasing across a simulation
	AnnualRate     float64 // percent, e.g. 18.0
	MonthlyPayment float64
	StartDate      time.Time
}

// Goal is a savings target with a deadline.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    time.Time
	Priority      int // ordinal, tie-breaking only
}

// ProgressFraction returns current/target clamped to [0, 1].
func (g Goal) ProgressFraction() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
