package engine

import (
	"time"

	"fincast/internal/model"
)

// Warning thresholds for the forecaster.
const (
	criticalRunwayDays = 30
	lowBalanceFraction = 0.20
)

// summaryCheckpoints are the fixed rollup offsets, emitted when they fit
// inside the horizon.
var summaryCheckpoints = []int{30, 60, 90}

// NewForecastInput assembles a forecast snapshot: it computes the trailing
// historical averages from history and pairs them with the declared
// obligations. The heavy lifting stays in Forecast, which is pure over the
// assembled input.
func NewForecastInput(
	startingBalance float64,
	forecastDays int,
	asOf time.Time,
	obligations []model.RecurringObligation,
	history []model.Transaction,
) model.ForecastInput {
	from := asOf.AddDate(0, 0, -HistoryLookbackDays)
	return model.ForecastInput{
		StartingBalance: startingBalance,
		ForecastDays:    forecastDays,
		AsOf:            asOf,
		Obligations:     obligations,
		IncomeAvg:       HistoricalAverages(history, model.Income, from, asOf),
		ExpenseAvg:      HistoricalAverages(history, model.Expense, from, asOf),
	}
}

// Forecast projects the daily balance over in.ForecastDays days starting at
// in.AsOf. The result series has exactly ForecastDays+1 points, day 0 being
// the as-of day itself. Degenerate input (no obligations, no history)
// produces flat zero-activity days rather than an error.
func Forecast(in model.ForecastInput) model.ForecastResult {
	days := in.ForecastDays
	if days < 0 {
		days = 0
	}

	series := make([]model.DailyBalancePoint, 0, days+1)
	balance := in.StartingBalance

	minBalance := 0.0
	minDate := in.AsOf
	minSet := false

	for offset := 0; offset <= days; offset++ {
		day := in.AsOf.AddDate(0, 0, offset)

		dayIncome, dayExpenses := dueAmounts(in.Obligations, day)

		// Declared obligations take precedence over the historical
		// fallback; the two are never summed for the same day.
		if dayExpenses == 0 {
			dayExpenses = in.ExpenseAvg.Daily
		}
		if dayIncome == 0 {
			dayIncome = in.IncomeAvg.Daily
		}

		balance = round2(balance + dayIncome - dayExpenses)

		pt := model.DailyBalancePoint{
			Date:     day,
			Balance:  balance,
			Income:   round2(dayIncome),
			Expenses: round2(dayExpenses),
			Net:      round2(dayIncome - dayExpenses),
		}
		series = append(series, pt)

		// First occurrence wins on ties.
		if !minSet || pt.Balance < minBalance {
			minBalance = pt.Balance
			minDate = pt.Date
			minSet = true
		}
	}

	runway := runwayDays(series, days)

	result := model.ForecastResult{
		StartingBalance: in.StartingBalance,
		ForecastDays:    days,
		Start:           in.AsOf,
		End:             in.AsOf.AddDate(0, 0, days),
		DailyBalances:   series,
		MinBalance:      minBalance,
		MinBalanceDate:  minDate,
		RunwayDays:      runway,
		IncomeAvg:       in.IncomeAvg,
		ExpenseAvg:      in.ExpenseAvg,
	}

	result.Warnings = forecastWarnings(result)
	result.Summaries = periodSummaries(result)

	return result
}

// dueAmounts sums the declared obligations falling due on the given day,
// split by direction.
func dueAmounts(obligations []model.RecurringObligation, day time.Time) (income, expenses float64) {
	for _, ob := range obligations {
		if !ob.DueOn(day) {
			continue
		}
		switch ob.Direction {
		case model.Income:
			income += ob.Amount
		case model.Expense:
			expenses += ob.Amount
		}
	}
	return income, expenses
}

// runwayDays returns the offset of the first day the balance drops to zero
// or below, or the forecastDays+1 sentinel when it never does.
func runwayDays(series []model.DailyBalancePoint, forecastDays int) int {
	for i, pt := range series {
		if pt.Balance <= 0 {
			return i
		}
	}
	return forecastDays + 1
}

func forecastWarnings(r model.ForecastResult) []model.Warning {
	var warnings []model.Warning
	switch {
	case r.RunwayDays <= r.ForecastDays && r.RunwayDays <= criticalRunwayDays:
		warnings = append(warnings, model.Warning{
			Kind:       model.WarnCritical,
			RunwayDays: r.RunwayDays,
		})
	case r.MinBalance < r.StartingBalance*lowBalanceFraction:
		warnings = append(warnings, model.Warning{
			Kind:       model.WarnLow,
			MinBalance: r.MinBalance,
			MinDate:    r.MinBalanceDate,
		})
	}
	return warnings
}

func periodSummaries(r model.ForecastResult) []model.PeriodSummary {
	var summaries []model.PeriodSummary
	for _, days := range summaryCheckpoints {
		if days > r.ForecastDays {
			continue
		}

		var totalIncome, totalExpenses float64
		for _, pt := range r.DailyBalances[:days+1] {
			totalIncome += pt.Income
			totalExpenses += pt.Expenses
		}

		ending := r.DailyBalances[days].Balance
		summaries = append(summaries, model.PeriodSummary{
			Days:            days,
			PeriodStart:     r.Start,
			PeriodEnd:       r.Start.AddDate(0, 0, days),
			StartingBalance: r.StartingBalance,
			EndingBalance:   ending,
			TotalIncome:     round2(totalIncome),
			TotalExpenses:   round2(totalExpenses),
			NetChange:       round2(ending - r.StartingBalance),
		})
	}
	return summaries
}
