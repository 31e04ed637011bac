package engine

import (
	"testing"

	"fincast/internal/model"
)

func TestForecast_SeriesLength(t *testing.T) {
	result := Forecast(model.ForecastInput{
		StartingBalance: 500,
		ForecastDays:    90,
		AsOf:            day(2026, 1, 1),
	})

	if len(result.DailyBalances) != 91 {
		t.Errorf("len(DailyBalances) = %d, want 91", len(result.DailyBalances))
	}
	if result.DailyBalances[0].Date != day(2026, 1, 1) {
		t.Errorf("first point = %v, want %v", result.DailyBalances[0].Date, day(2026, 1, 1))
	}
	if result.DailyBalances[90].Date != day(2026, 4, 1) {
		t.Errorf("last point = %v, want %v", result.DailyBalances[90].Date, day(2026, 4, 1))
	}
}

func TestForecast_DailyObligationSeries(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    5,
		AsOf:            asOf,
		Obligations: []model.RecurringObligation{
			{
				Direction: model.Expense,
				Amount:    100,
				Frequency: model.Daily,
				NextDate:  asOf.AddDate(0, 0, 1),
				Active:    true,
			},
		},
	})

	want := []float64{1000, 900, 800, 700, 600, 500}
	if len(result.DailyBalances) != len(want) {
		t.Fatalf("len(DailyBalances) = %d, want %d", len(result.DailyBalances), len(want))
	}
	for i, w := range want {
		if result.DailyBalances[i].Balance != w {
			t.Errorf("balance[%d] = %v, want %v", i, result.DailyBalances[i].Balance, w)
		}
	}

	if result.MinBalance != 500 {
		t.Errorf("MinBalance = %v, want 500", result.MinBalance)
	}
	if result.RunwayDays != 6 {
		t.Errorf("RunwayDays = %d, want sentinel 6", result.RunwayDays)
	}
}

func TestForecast_RunwayAndCriticalWarning(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 250,
		ForecastDays:    10,
		AsOf:            asOf,
		Obligations: []model.RecurringObligation{
			{
				Direction: model.Expense,
				Amount:    100,
				Frequency: model.Daily,
				NextDate:  asOf.AddDate(0, 0, 1),
				Active:    true,
			},
		},
	})

	// 250, 150, 50, -50: first non-positive balance at offset 3.
	if result.RunwayDays != 3 {
		t.Errorf("RunwayDays = %d, want 3", result.RunwayDays)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
	if result.Warnings[0].Kind != model.WarnCritical {
		t.Errorf("warning kind = %v, want %v", result.Warnings[0].Kind, model.WarnCritical)
	}
	if result.Warnings[0].RunwayDays != 3 {
		t.Errorf("warning runway = %d, want 3", result.Warnings[0].RunwayDays)
	}
}

func TestForecast_LowBalanceWarning(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    60,
		AsOf:            asOf,
		Obligations: []model.RecurringObligation{
			{
				Direction: model.Expense,
				Amount:    850,
				Frequency: model.Yearly,
				NextDate:  asOf.AddDate(0, 0, 10),
				Active:    true,
			},
		},
	})

	// Balance dips to 150, under 20% of the 1000 start, but never to zero.
	if result.RunwayDays != 61 {
		t.Errorf("RunwayDays = %d, want sentinel 61", result.RunwayDays)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
	w := result.Warnings[0]
	if w.Kind != model.WarnLow {
		t.Errorf("warning kind = %v, want %v", w.Kind, model.WarnLow)
	}
	if w.MinBalance != 150 {
		t.Errorf("warning min balance = %v, want 150", w.MinBalance)
	}
	if w.MinDate != asOf.AddDate(0, 0, 10) {
		t.Errorf("warning min date = %v, want %v", w.MinDate, asOf.AddDate(0, 0, 10))
	}
}

func TestForecast_FallbackNeverSummed(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    1,
		AsOf:            asOf,
		Obligations: []model.RecurringObligation{
			{
				Direction: model.Expense,
				Amount:    100,
				Frequency: model.Daily,
				NextDate:  asOf,
				Active:    true,
			},
		},
		ExpenseAvg: model.Averages{Daily: 40},
	})

	// The declared obligation is due every day, so the historical average
	// must never be added on top of it.
	for i, pt := range result.DailyBalances {
		if pt.Expenses != 100 {
			t.Errorf("expenses[%d] = %v, want 100 (obligation only)", i, pt.Expenses)
		}
	}
}

func TestForecast_FallbackWhenNothingDue(t *testing.T) {
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    2,
		AsOf:            day(2026, 1, 1),
		IncomeAvg:       model.Averages{Daily: 50},
		ExpenseAvg:      model.Averages{Daily: 30},
	})

	for i, pt := range result.DailyBalances {
		if pt.Income != 50 {
			t.Errorf("income[%d] = %v, want 50", i, pt.Income)
		}
		if pt.Expenses != 30 {
			t.Errorf("expenses[%d] = %v, want 30", i, pt.Expenses)
		}
		if pt.Net != 20 {
			t.Errorf("net[%d] = %v, want 20", i, pt.Net)
		}
	}
	if got := result.EndingBalance(); got != 1060 {
		t.Errorf("EndingBalance() = %v, want 1060", got)
	}
}

func TestForecast_InactiveAndEndedObligationsIgnored(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    30,
		AsOf:            asOf,
		Obligations: []model.RecurringObligation{
			{
				Direction: model.Expense,
				Amount:    100,
				Frequency: model.Daily,
				NextDate:  asOf,
				Active:    false,
			},
			{
				Direction: model.Expense,
				Amount:    100,
				Frequency: model.Daily,
				NextDate:  asOf,
				EndDate:   asOf.AddDate(0, 0, 4),
				Active:    true,
			},
		},
	})

	// Only the ended obligation contributes, and only through day 4.
	if got := result.EndingBalance(); got != 500 {
		t.Errorf("EndingBalance() = %v, want 500", got)
	}
}

func TestForecast_MinBalanceFirstOnTie(t *testing.T) {
	result := Forecast(model.ForecastInput{
		StartingBalance: 750,
		ForecastDays:    14,
		AsOf:            day(2026, 6, 1),
	})

	// Flat series: every day ties, the first must win.
	if result.MinBalance != 750 {
		t.Errorf("MinBalance = %v, want 750", result.MinBalance)
	}
	if result.MinBalanceDate != day(2026, 6, 1) {
		t.Errorf("MinBalanceDate = %v, want %v", result.MinBalanceDate, day(2026, 6, 1))
	}
}

func TestForecast_PeriodSummaries(t *testing.T) {
	asOf := day(2026, 1, 1)
	result := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    90,
		AsOf:            asOf,
		IncomeAvg:       model.Averages{Daily: 10},
	})

	if len(result.Summaries) != 3 {
		t.Fatalf("len(Summaries) = %d, want 3", len(result.Summaries))
	}

	first := result.Summaries[0]
	if first.Days != 30 {
		t.Errorf("Summaries[0].Days = %d, want 30", first.Days)
	}
	if !approx(first.TotalIncome, 310) { // offsets 0..30 inclusive
		t.Errorf("Summaries[0].TotalIncome = %v, want 310", first.TotalIncome)
	}
	if !approx(first.NetChange, first.EndingBalance-first.StartingBalance) {
		t.Errorf("NetChange = %v, want ending-starting = %v",
			first.NetChange, first.EndingBalance-first.StartingBalance)
	}

	shortHorizon := Forecast(model.ForecastInput{
		StartingBalance: 1000,
		ForecastDays:    45,
		AsOf:            asOf,
	})
	if len(shortHorizon.Summaries) != 1 {
		t.Errorf("len(Summaries) = %d for 45-day horizon, want 1", len(shortHorizon.Summaries))
	}
}

func TestForecast_NegativeDaysClamped(t *testing.T) {
	result := Forecast(model.ForecastInput{
		StartingBalance: 100,
		ForecastDays:    -7,
		AsOf:            day(2026, 1, 1),
	})

	if len(result.DailyBalances) != 1 {
		t.Errorf("len(DailyBalances) = %d, want 1", len(result.DailyBalances))
	}
	if result.ForecastDays != 0 {
		t.Errorf("ForecastDays = %d, want 0", result.ForecastDays)
	}
}
