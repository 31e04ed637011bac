package engine

import (
	"testing"

	"fincast/internal/model"
)

func testDebts() []model.Debt {
	return []model.Debt{
		{
			ID:             "d1",
			Name:           "card",
			Balance:        3000,
			AnnualRate:     22,
			MonthlyPayment: 90,
		},
		{
			ID:             "d2",
			Name:           "car loan",
			Balance:        9000,
			AnnualRate:     6,
			MonthlyPayment: 250,
		},
		{
			ID:             "d3",
			Name:           "student loan",
			Balance:        6000,
			AnnualRate:     4.5,
			MonthlyPayment: 150,
		},
	}
}

func TestOptimizeDebts_Empty(t *testing.T) {
	result := OptimizeDebts(nil, 100)

	if result.Recommended != model.StrategyNone {
		t.Errorf("Recommended = %v, want %v", result.Recommended, model.StrategyNone)
	}
	if result.Avalanche != nil || result.Snowball != nil {
		t.Error("expected nil strategy results for empty debt list")
	}
	if result.InterestSavings != 0 {
		t.Errorf("InterestSavings = %v, want 0", result.InterestSavings)
	}
}

func TestOptimizeDebts_Ordering(t *testing.T) {
	result := OptimizeDebts(testDebts(), 100)

	av := result.Avalanche
	if av == nil {
		t.Fatal("nil avalanche result")
	}
	if av.Debts[0].Name != "card" {
		t.Errorf("avalanche first = %q, want highest-rate card", av.Debts[0].Name)
	}

	sb := result.Snowball
	if sb == nil {
		t.Fatal("nil snowball result")
	}
	if sb.Debts[0].Name != "card" {
		t.Errorf("snowball first = %q, want smallest-balance card", sb.Debts[0].Name)
	}
	if sb.Debts[1].Name != "student loan" {
		t.Errorf("snowball second = %q, want student loan", sb.Debts[1].Name)
	}
}

func TestOptimizeDebts_AvalancheNeverWorse(t *testing.T) {
	result := OptimizeDebts(testDebts(), 100)

	if result.Avalanche.TotalInterest > result.Snowball.TotalInterest {
		t.Errorf("avalanche interest %v > snowball %v",
			result.Avalanche.TotalInterest, result.Snowball.TotalInterest)
	}
	if result.Recommended != model.StrategyAvalanche {
		t.Errorf("Recommended = %v, want %v", result.Recommended, model.StrategyAvalanche)
	}
}

func TestOptimizeDebts_Aggregates(t *testing.T) {
	result := OptimizeDebts(testDebts(), 0)

	av := result.Avalanche
	maxMonths := 0
	sumInterest := 0.0
	for _, d := range av.Debts {
		if d.MonthsToPayoff > maxMonths {
			maxMonths = d.MonthsToPayoff
		}
		sumInterest += d.TotalInterest
	}

	if av.TotalMonths != maxMonths {
		t.Errorf("TotalMonths = %d, want max of per-debt months %d", av.TotalMonths, maxMonths)
	}
	if !approx(av.TotalInterest, sumInterest) {
		t.Errorf("TotalInterest = %v, want sum of per-debt interest %v", av.TotalInterest, sumInterest)
	}
}

func TestOptimizeDebts_PaymentBelowInterestCapped(t *testing.T) {
	debts := []model.Debt{
		{
			ID:             "d1",
			Name:           "underwater",
			Balance:        10000,
			AnnualRate:     24,
			MonthlyPayment: 100, // monthly interest is 200
		},
	}

	result := OptimizeDebts(debts, 0)

	if got := result.Avalanche.Debts[0].MonthsToPayoff; got != maxScheduleMonths {
		t.Errorf("MonthsToPayoff = %d, want cap %d", got, maxScheduleMonths)
	}
}

func TestOptimizeDebts_ExtraShortensPayoff(t *testing.T) {
	base := OptimizeDebts(testDebts(), 0)
	boosted := OptimizeDebts(testDebts(), 200)

	if boosted.Avalanche.TotalMonths >= base.Avalanche.TotalMonths {
		t.Errorf("TotalMonths with extra = %d, want < %d",
			boosted.Avalanche.TotalMonths, base.Avalanche.TotalMonths)
	}
	if boosted.Avalanche.TotalInterest >= base.Avalanche.TotalInterest {
		t.Errorf("TotalInterest with extra = %v, want < %v",
			boosted.Avalanche.TotalInterest, base.Avalanche.TotalInterest)
	}
}
