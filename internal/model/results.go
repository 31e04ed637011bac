package model

import "time"

// Averages holds historical daily and monthly cash-flow averages for one
// direction, computed over a trailing lookback window.
type Averages struct {
	Daily   float64
	Monthly float64
	Total   float64
	Count   int
}

// SavingsAnalysis summarizes the trailing savings rate used by goal
// milestone adjustment.
type SavingsAnalysis struct {
	LookbackDays    int
	TotalIncome     float64
	TotalExpenses   float64
	TotalSavings    float64
	MonthlyIncome   float64
	MonthlyExpenses float64
	MonthlySavings  float64
	SavingsRatePct  float64 // savings as a percentage of income
}

// DailyBalancePoint is one day of a balance projection. Points are produced
// once per forecast run and never mutated afterwards.
type DailyBalancePoint struct {
	Date     time.Time
	Balance  float64
	Income   float64
	Expenses float64
	Net      float64
}

// WarningKind classifies a forecast warning.
type WarningKind string

const (
	WarnCritical WarningKind = "critical"
	WarnLow      WarningKind = "warning"
)

// Warning is a threshold-triggered forecast warning. The engine emits
// structured figures only; callers render them.
type Warning struct {
	Kind       WarningKind
	RunwayDays int       // set for critical warnings
	MinBalance float64   // set for low-balance warnings
	MinDate    time.Time // set for low-balance warnings
}

// PeriodSummary is a rollup of the forecast at a fixed checkpoint.
type PeriodSummary struct {
	Days            int
	PeriodStart     time.Time
	PeriodEnd       time.Time
	StartingBalance float64
	EndingBalance   float64
	TotalIncome     float64
	TotalExpenses   float64
	NetChange       float64
}

// ForecastInput bundles the snapshot a forecast runs over.
type ForecastInput struct {
	StartingBalance float64
	ForecastDays    int
	AsOf            time.Time
	Obligations     []RecurringObligation
	IncomeAvg       Averages
	ExpenseAvg      Averages
}

// ForecastResult is the full output of one balance projection run.
// DailyBalances has exactly ForecastDays+1 points, day 0 being today.
type ForecastResult struct {
	StartingBalance float64
	ForecastDays    int
	Start           time.Time
	End             time.Time
	DailyBalances   []DailyBalancePoint
	MinBalance      float64
	MinBalanceDate  time.Time
	RunwayDays      int // ForecastDays+1 when balance never reaches zero
	Warnings        []Warning
	Summaries       []PeriodSummary
	IncomeAvg       Averages
	ExpenseAvg      Averages
}

// EndingBalance returns the balance on the final projected day.
func (f ForecastResult) EndingBalance() float64 {
	if len(f.DailyBalances) == 0 {
		return f.StartingBalance
	}
	return f.DailyBalances[len(f.DailyBalances)-1].Balance
}

// ScenarioKind tags a what-if scenario.
type ScenarioKind string

const (
	ScenarioIncomeChange     ScenarioKind = "income_change"
	ScenarioExpenseChange    ScenarioKind = "expense_change"
	ScenarioNewRecurring     ScenarioKind = "new_recurring"
	ScenarioGoalAcceleration ScenarioKind = "goal_acceleration"
	ScenarioBudgetCut        ScenarioKind = "budget_cut"
)

// ScenarioParams is the parameter bag for a scenario. Which fields apply
// depends on the kind: MonthlyAmount or Percent for income/expense changes,
// Amount+Frequency+Direction for new_recurring, MonthlyAmount for
// goal_acceleration and budget_cut.
type ScenarioParams struct {
	MonthlyAmount float64
	Percent       float64
	UsePercent    bool
	Amount        float64
	Frequency     Frequency
	Direction     Direction
}

// ScenarioInput bundles a scenario run: the forecast snapshot plus the
// scenario description.
type ScenarioInput struct {
	Forecast ForecastInput
	Kind     ScenarioKind
	Params   ScenarioParams
}

// ScenarioComparison is the diff between baseline and modified projections.
type ScenarioComparison struct {
	BalanceDelta    float64
	BalanceDeltaPct float64
	RunwayDeltaDays int // modified minus baseline; negative shortens runway
	IsImprovement   bool
}

// ScenarioResult holds both projections and their comparison.
type ScenarioResult struct {
	Kind           ScenarioKind
	Params         ScenarioParams
	Baseline       ForecastResult
	Modified       ForecastResult
	Comparison     ScenarioComparison
	Recommendation string
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int
	Date      time.Time
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Strategy tags a debt payoff ordering.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche"
	StrategySnowball  Strategy = "snowball"
	StrategyNone      Strategy = "none"
)

// DebtPayoff is the simulated outcome for one debt under a strategy.
type DebtPayoff struct {
	ID             string
	Name           string
	MonthsToPayoff int
	TotalInterest  float64
}

// StrategyResult aggregates a full payoff simulation under one ordering.
type StrategyResult struct {
	Strategy      Strategy
	TotalMonths   int
	TotalInterest float64
	Debts         []DebtPayoff
}

// DebtOptimizationResult compares the two orderings. Avalanche and Snowball
// are nil when there are no debts, and Recommended is StrategyNone.
type DebtOptimizationResult struct {
	Recommended     Strategy
	Avalanche       *StrategyResult
	Snowball        *StrategyResult
	InterestSavings float64
}

// GoalStatus classifies projected goal progress.
type GoalStatus string

const (
	GoalAchieved GoalStatus = "achieved"
	GoalOnTrack  GoalStatus = "on-track"
	GoalAtRisk   GoalStatus = "at-risk"
	GoalBehind   GoalStatus = "behind"
)

// EstimatedMonthsCap is the sentinel for goals that cannot complete on
// current surplus (available monthly <= 0).
const EstimatedMonthsCap = 999

// GoalProjection is the closed-form projection of one goal.
type GoalProjection struct {
	TargetAmount        float64
	CurrentAmount       float64
	RemainingAmount     float64
	TargetDate          time.Time
	MonthsRemaining     int
	RequiredMonthly     float64
	AvailableMonthly    float64
	EstimatedMonths     int
	EstimatedCompletion time.Time
	Status              GoalStatus
	Probability         float64
	OnTrack             bool
}

// MilestoneStatus classifies a single milestone checkpoint.
type MilestoneStatus string

const (
	MilestoneAchieved MilestoneStatus = "achieved"
	MilestoneOnTrack  MilestoneStatus = "on_track"
	MilestoneAtRisk   MilestoneStatus = "at_risk"
	MilestoneBehind   MilestoneStatus = "behind"
)

// Milestone is one percentage checkpoint of a goal.
type Milestone struct {
	Percent       int
	Amount        float64
	EstimatedDate time.Time
	Status        MilestoneStatus
	Achieved      bool
}

// AdviceKind classifies a structured milestone recommendation.
type AdviceKind string

const (
	AdviceShortfall AdviceKind = "shortfall" // extra monthly savings needed
	AdviceSurplus   AdviceKind = "surplus"   // saving more than required
	AdviceSteady    AdviceKind = "steady"    // on pace, keep going
	AdviceLowRate   AdviceKind = "low_rate"  // overall savings rate is weak
	AdviceHighRate  AdviceKind = "high_rate" // overall savings rate is strong
)

// Advice is a data-driven recommendation: numbers, not prose.
type Advice struct {
	Kind           AdviceKind
	MonthlyAmount  float64 // shortfall or surplus per month
	SavingsRatePct float64 // set for rate advice
}

// MilestonePlan is the adaptive milestone schedule for one goal.
type MilestonePlan struct {
	GoalID          string
	GoalName        string
	TargetAmount    float64
	CurrentAmount   float64
	ProgressPct     float64
	RemainingAmount float64
	DaysRemaining   int
	MonthsRemaining float64
	RequiredMonthly float64
	MonthlySavings  float64
	OnTrack         bool
	Milestones      []Milestone
	Advice          []Advice
	Savings         SavingsAnalysis
}

// RecurringCandidate is a mined recurring-pattern suggestion.
type RecurringCandidate struct {
	Direction   Direction
	Amount      float64
	Description string
	Category    string
	Frequency   Frequency
	NextDate    time.Time
	Occurrences int
	Confidence  float64
	SampleDates []time.Time
}
