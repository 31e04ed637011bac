package engine

import (
	"fmt"

	"fincast/internal/model"
)

// SimulateScenario runs the baseline forecast and then an identical day loop
// with the scenario delta applied, and diffs the two. Both passes are pure
// and deterministic: the same input always yields a bit-identical result.
func SimulateScenario(in model.ScenarioInput) model.ScenarioResult {
	baseline := Forecast(in.Forecast)
	modified := applyScenario(baseline, in)

	comparison := compare(baseline, modified)

	return model.ScenarioResult{
		Kind:           in.Kind,
		Params:         in.Params,
		Baseline:       baseline,
		Modified:       modified,
		Comparison:     comparison,
		Recommendation: recommendation(comparison),
	}
}

// applyScenario replays the baseline series day by day with the scenario's
// delta applied to each day's income or expense figure, then recomputes the
// running balance, minimum, runway, warnings, and rollups from scratch.
func applyScenario(baseline model.ForecastResult, in model.ScenarioInput) model.ForecastResult {
	params := in.Params

	// goal_acceleration and budget_cut are expense deltas in disguise:
	// acceleration spends more each month, a cut spends less.
	kind := in.Kind
	switch kind {
	case model.ScenarioGoalAcceleration:
		kind = model.ScenarioExpenseChange
		params.UsePercent = false
	case model.ScenarioBudgetCut:
		kind = model.ScenarioExpenseChange
		params.UsePercent = false
		params.MonthlyAmount = -params.MonthlyAmount
	}

	series := make([]model.DailyBalancePoint, 0, len(baseline.DailyBalances))
	balance := baseline.StartingBalance

	minBalance := 0.0
	minDate := baseline.Start
	minSet := false

	for offset, day := range baseline.DailyBalances {
		income := day.Income
		expenses := day.Expenses

		switch kind {
		case model.ScenarioIncomeChange:
			if params.UsePercent {
				income = income * (1 + params.Percent/100)
			} else {
				income += params.MonthlyAmount / 30
			}
		case model.ScenarioExpenseChange:
			if params.UsePercent {
				expenses = expenses * (1 + params.Percent/100)
			} else {
				expenses += params.MonthlyAmount / 30
			}
			if expenses < 0 {
				expenses = 0
			}
		case model.ScenarioNewRecurring:
			if offset%params.Frequency.Interval() == 0 {
				if params.Direction == model.Income {
					income += params.Amount
				} else {
					expenses += params.Amount
				}
			}
		}

		balance = round2(balance + income - expenses)

		pt := model.DailyBalancePoint{
			Date:     day.Date,
			Balance:  balance,
			Income:   round2(income),
			Expenses: round2(expenses),
			Net:      round2(income - expenses),
		}
		series = append(series, pt)

		if !minSet || pt.Balance < minBalance {
			minBalance = pt.Balance
			minDate = pt.Date
			minSet = true
		}
	}

	result := model.ForecastResult{
		StartingBalance: baseline.StartingBalance,
		ForecastDays:    baseline.ForecastDays,
		Start:           baseline.Start,
		End:             baseline.End,
		DailyBalances:   series,
		MinBalance:      minBalance,
		MinBalanceDate:  minDate,
		RunwayDays:      runwayDays(series, baseline.ForecastDays),
		IncomeAvg:       baseline.IncomeAvg,
		ExpenseAvg:      baseline.ExpenseAvg,
	}
	result.Warnings = forecastWarnings(result)
	result.Summaries = periodSummaries(result)

	return result
}

func compare(baseline, modified model.ForecastResult) model.ScenarioComparison {
	delta := round2(modified.EndingBalance() - baseline.EndingBalance())

	var pct float64
	if baseline.EndingBalance() != 0 {
		pct = round2(delta / baseline.EndingBalance() * 100)
	}

	return model.ScenarioComparison{
		BalanceDelta:    delta,
		BalanceDeltaPct: pct,
		RunwayDeltaDays: modified.RunwayDays - baseline.RunwayDays,
		IsImprovement:   delta > 0,
	}
}

// recommendation is deliberately a fixed template keyed off the comparison;
// anything conversational belongs to the caller.
func recommendation(c model.ScenarioComparison) string {
	if c.IsImprovement {
		return fmt.Sprintf("This change improves the projected position by %.2f over the horizon.", c.BalanceDelta)
	}
	return fmt.Sprintf("This change reduces the projected position by %.2f over the horizon.", -c.BalanceDelta)
}
