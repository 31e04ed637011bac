package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"fincast/internal/model"
)

func sampleForecast() model.ForecastResult {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.ForecastResult{
		StartingBalance: 1000,
		ForecastDays:    2,
		Start:           start,
		End:             start.AddDate(0, 0, 2),
		DailyBalances: []model.DailyBalancePoint{
			{Date: start, Balance: 1000},
			{Date: start.AddDate(0, 0, 1), Balance: 950, Expenses: 50, Net: -50},
			{Date: start.AddDate(0, 0, 2), Balance: 900, Expenses: 50, Net: -50},
		},
		MinBalance:     900,
		MinBalanceDate: start.AddDate(0, 0, 2),
		RunwayDays:     3,
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	wb := Workbook{
		Forecast: sampleForecast(),
		Optimization: model.DebtOptimizationResult{
			Recommended: model.StrategyAvalanche,
			Avalanche: &model.StrategyResult{
				Strategy: model.StrategyAvalanche,
				Debts:    []model.DebtPayoff{{Name: "card", MonthsToPayoff: 12, TotalInterest: 450}},
			},
			Snowball: &model.StrategyResult{
				Strategy: model.StrategySnowball,
				Debts:    []model.DebtPayoff{{Name: "card", MonthsToPayoff: 12, TotalInterest: 450}},
			},
		},
		Schedules: []NamedSchedule{
			{
				Name: "card",
				Entries: []model.ScheduleEntry{
					{Month: 1, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Payment: 200, Principal: 125, Interest: 75, Balance: 4875},
				},
			},
		},
		Goals: []NamedProjection{
			{
				Name: "vacation",
				Projection: model.GoalProjection{
					TargetAmount: 3000, CurrentAmount: 500, RemainingAmount: 2500,
					Status: model.GoalOnTrack, Probability: 0.85,
					EstimatedCompletion: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}

	if err := Write(path, wb); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	want := map[string]bool{"Forecast": false, "Debts": false, "Schedule card": false, "Goals": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
		if s == "Sheet1" {
			t.Error("default Sheet1 should be removed")
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing sheet %q", name)
		}
	}

	rows, err := f.GetRows("Forecast")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) < 4 {
		t.Fatalf("forecast rows = %d, want at least 4", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][1] != "Balance" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "2026-01-01" {
		t.Errorf("first data row date = %q, want 2026-01-01", rows[1][0])
	}
}
