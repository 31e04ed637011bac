package engine

import (
	"testing"

	"fincast/internal/model"
)

func flatForecastInput(balance float64, days int) model.ForecastInput {
	return model.ForecastInput{
		StartingBalance: balance,
		ForecastDays:    days,
		AsOf:            day(2026, 1, 1),
	}
}

func TestSimulateScenario_ZeroDeltaIdentical(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: model.ForecastInput{
			StartingBalance: 1000,
			ForecastDays:    30,
			AsOf:            day(2026, 1, 1),
			ExpenseAvg:      model.Averages{Daily: 12.34},
		},
		Kind:   model.ScenarioIncomeChange,
		Params: model.ScenarioParams{MonthlyAmount: 0},
	})

	base := result.Baseline.DailyBalances
	mod := result.Modified.DailyBalances
	if len(base) != len(mod) {
		t.Fatalf("series lengths differ: %d vs %d", len(base), len(mod))
	}
	for i := range base {
		if base[i].Balance != mod[i].Balance {
			t.Errorf("balance[%d]: baseline %v != modified %v", i, base[i].Balance, mod[i].Balance)
		}
	}

	if result.Comparison.BalanceDelta != 0 {
		t.Errorf("BalanceDelta = %v, want 0", result.Comparison.BalanceDelta)
	}
	if result.Comparison.RunwayDeltaDays != 0 {
		t.Errorf("RunwayDeltaDays = %d, want 0", result.Comparison.RunwayDeltaDays)
	}
	if result.Comparison.IsImprovement {
		t.Error("IsImprovement = true, want false for zero delta")
	}
}

func TestSimulateScenario_Deterministic(t *testing.T) {
	in := model.ScenarioInput{
		Forecast: flatForecastInput(2500, 60),
		Kind:     model.ScenarioExpenseChange,
		Params:   model.ScenarioParams{MonthlyAmount: 450},
	}

	a := SimulateScenario(in)
	b := SimulateScenario(in)

	for i := range a.Modified.DailyBalances {
		if a.Modified.DailyBalances[i].Balance != b.Modified.DailyBalances[i].Balance {
			t.Fatalf("run disagreement at offset %d", i)
		}
	}
	if a.Comparison != b.Comparison {
		t.Errorf("comparisons differ: %+v vs %+v", a.Comparison, b.Comparison)
	}
}

func TestSimulateScenario_IncomeIncrease(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: flatForecastInput(1000, 30),
		Kind:     model.ScenarioIncomeChange,
		Params:   model.ScenarioParams{MonthlyAmount: 300},
	})

	// 300/month spreads to 10/day over all 31 points.
	if got := result.Modified.EndingBalance(); got != 1310 {
		t.Errorf("modified ending = %v, want 1310", got)
	}
	if result.Comparison.BalanceDelta != 310 {
		t.Errorf("BalanceDelta = %v, want 310", result.Comparison.BalanceDelta)
	}
	if result.Comparison.BalanceDeltaPct != 31 {
		t.Errorf("BalanceDeltaPct = %v, want 31", result.Comparison.BalanceDeltaPct)
	}
	if !result.Comparison.IsImprovement {
		t.Error("IsImprovement = false, want true")
	}
	if result.Recommendation == "" {
		t.Error("empty recommendation")
	}
}

func TestSimulateScenario_ExpensePercent(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: model.ForecastInput{
			StartingBalance: 1000,
			ForecastDays:    10,
			AsOf:            day(2026, 1, 1),
			ExpenseAvg:      model.Averages{Daily: 50},
		},
		Kind:   model.ScenarioExpenseChange,
		Params: model.ScenarioParams{Percent: -20, UsePercent: true},
	})

	for i, pt := range result.Modified.DailyBalances {
		if pt.Expenses != 40 {
			t.Errorf("expenses[%d] = %v, want 40 after -20%%", i, pt.Expenses)
		}
	}
	if !result.Comparison.IsImprovement {
		t.Error("spending cut should improve the position")
	}
}

func TestSimulateScenario_ExpenseFloor(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: flatForecastInput(1000, 10),
		Kind:     model.ScenarioBudgetCut,
		Params:   model.ScenarioParams{MonthlyAmount: 300},
	})

	// Baseline has no spending, so a cut cannot push expenses negative.
	for i, pt := range result.Modified.DailyBalances {
		if pt.Expenses != 0 {
			t.Errorf("expenses[%d] = %v, want floor 0", i, pt.Expenses)
		}
	}
	if result.Comparison.BalanceDelta != 0 {
		t.Errorf("BalanceDelta = %v, want 0", result.Comparison.BalanceDelta)
	}
}

func TestSimulateScenario_NewRecurringExpense(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: flatForecastInput(1000, 27),
		Kind:     model.ScenarioNewRecurring,
		Params: model.ScenarioParams{
			Amount:    100,
			Frequency: model.Weekly,
			Direction: model.Expense,
		},
	})

	// Weekly hits offsets 0, 7, 14, 21.
	if got := result.Modified.EndingBalance(); got != 600 {
		t.Errorf("modified ending = %v, want 600", got)
	}
	if result.Comparison.BalanceDelta != -400 {
		t.Errorf("BalanceDelta = %v, want -400", result.Comparison.BalanceDelta)
	}
	if result.Comparison.IsImprovement {
		t.Error("IsImprovement = true, want false")
	}
}

func TestSimulateScenario_GoalAccelerationShortensRunway(t *testing.T) {
	result := SimulateScenario(model.ScenarioInput{
		Forecast: flatForecastInput(100, 30),
		Kind:     model.ScenarioGoalAcceleration,
		Params:   model.ScenarioParams{MonthlyAmount: 300},
	})

	// 10/day against a 100 balance runs out at offset 9.
	if result.Modified.RunwayDays != 9 {
		t.Errorf("modified RunwayDays = %d, want 9", result.Modified.RunwayDays)
	}
	if result.Baseline.RunwayDays != 31 {
		t.Errorf("baseline RunwayDays = %d, want sentinel 31", result.Baseline.RunwayDays)
	}
	if result.Comparison.RunwayDeltaDays != -22 {
		t.Errorf("RunwayDeltaDays = %d, want -22", result.Comparison.RunwayDeltaDays)
	}
}
