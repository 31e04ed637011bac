package engine

import (
	"testing"

	"fincast/internal/model"
)

func savingsSnapshot(monthly, ratePct float64) model.SavingsAnalysis {
	return model.SavingsAnalysis{
		LookbackDays:   90,
		MonthlySavings: monthly,
		SavingsRatePct: ratePct,
	}
}

func TestAdaptiveMilestones_Checkpoints(t *testing.T) {
	goal := model.Goal{
		ID:            "g1",
		Name:          "vacation",
		TargetAmount:  1000,
		CurrentAmount: 300,
		TargetDate:    day(2026, 7, 1),
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(200, 15), day(2026, 1, 1))

	if len(plan.Milestones) != 4 {
		t.Fatalf("len(Milestones) = %d, want 4", len(plan.Milestones))
	}

	wantPercents := []int{25, 50, 75, 100}
	wantAmounts := []float64{250, 500, 750, 1000}
	for i, m := range plan.Milestones {
		if m.Percent != wantPercents[i] {
			t.Errorf("Milestones[%d].Percent = %d, want %d", i, m.Percent, wantPercents[i])
		}
		if m.Amount != wantAmounts[i] {
			t.Errorf("Milestones[%d].Amount = %v, want %v", i, m.Amount, wantAmounts[i])
		}
	}

	if !plan.Milestones[0].Achieved {
		t.Error("25% milestone should be achieved at 300 of 1000")
	}
	if plan.Milestones[1].Achieved {
		t.Error("50% milestone should not be achieved yet")
	}
	if plan.ProgressPct != 30 {
		t.Errorf("ProgressPct = %v, want 30", plan.ProgressPct)
	}
}

func TestAdaptiveMilestones_OnTrack(t *testing.T) {
	goal := model.Goal{
		TargetAmount:  1000,
		CurrentAmount: 300,
		TargetDate:    day(2026, 5, 1), // 120 days, 4 months
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(200, 15), day(2026, 1, 1))

	if !approx(plan.RequiredMonthly, 175) {
		t.Errorf("RequiredMonthly = %v, want 175", plan.RequiredMonthly)
	}
	if !plan.OnTrack {
		t.Error("OnTrack = false, want true at 200/month vs 175 required")
	}
	if len(plan.Advice) != 1 {
		t.Fatalf("len(Advice) = %d, want 1", len(plan.Advice))
	}
	if plan.Advice[0].Kind != model.AdviceSteady {
		t.Errorf("Advice kind = %v, want %v", plan.Advice[0].Kind, model.AdviceSteady)
	}
}

func TestAdaptiveMilestones_ShortfallAndLowRate(t *testing.T) {
	goal := model.Goal{
		TargetAmount:  1000,
		CurrentAmount: 300,
		TargetDate:    day(2026, 5, 1),
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(50, 5), day(2026, 1, 1))

	if plan.OnTrack {
		t.Error("OnTrack = true, want false at 50/month vs 175 required")
	}
	if len(plan.Advice) != 2 {
		t.Fatalf("len(Advice) = %d, want 2", len(plan.Advice))
	}
	if plan.Advice[0].Kind != model.AdviceShortfall {
		t.Errorf("Advice[0] kind = %v, want %v", plan.Advice[0].Kind, model.AdviceShortfall)
	}
	if !approx(plan.Advice[0].MonthlyAmount, 125) {
		t.Errorf("shortfall = %v, want 125", plan.Advice[0].MonthlyAmount)
	}
	if plan.Advice[1].Kind != model.AdviceLowRate {
		t.Errorf("Advice[1] kind = %v, want %v", plan.Advice[1].Kind, model.AdviceLowRate)
	}
	if plan.Advice[1].SavingsRatePct != 5 {
		t.Errorf("rate = %v, want 5", plan.Advice[1].SavingsRatePct)
	}
}

func TestAdaptiveMilestones_SurplusAndHighRate(t *testing.T) {
	goal := model.Goal{
		TargetAmount:  1000,
		CurrentAmount: 300,
		TargetDate:    day(2026, 5, 1),
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(500, 25), day(2026, 1, 1))

	if len(plan.Advice) != 2 {
		t.Fatalf("len(Advice) = %d, want 2", len(plan.Advice))
	}
	if plan.Advice[0].Kind != model.AdviceSurplus {
		t.Errorf("Advice[0] kind = %v, want %v", plan.Advice[0].Kind, model.AdviceSurplus)
	}
	if !approx(plan.Advice[0].MonthlyAmount, 325) {
		t.Errorf("surplus = %v, want 325", plan.Advice[0].MonthlyAmount)
	}
	if plan.Advice[1].Kind != model.AdviceHighRate {
		t.Errorf("Advice[1] kind = %v, want %v", plan.Advice[1].Kind, model.AdviceHighRate)
	}
}

func TestAdaptiveMilestones_EstimatesFromSavingsPace(t *testing.T) {
	asOf := day(2026, 1, 1)
	goal := model.Goal{
		TargetAmount:  1000,
		CurrentAmount: 0,
		TargetDate:    day(2027, 1, 1),
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(250, 20), asOf)

	// At 250/month the 50% mark (500) is 2 months out.
	half := plan.Milestones[1]
	if half.EstimatedDate != asOf.AddDate(0, 2, 0) {
		t.Errorf("50%% EstimatedDate = %v, want %v", half.EstimatedDate, asOf.AddDate(0, 2, 0))
	}
	if half.Status != model.MilestoneOnTrack {
		t.Errorf("50%% Status = %v, want %v", half.Status, model.MilestoneOnTrack)
	}
}

func TestAdaptiveMilestones_InterpolatesWithoutSavings(t *testing.T) {
	asOf := day(2026, 1, 1)
	goal := model.Goal{
		TargetAmount:  1000,
		CurrentAmount: 0,
		TargetDate:    asOf.AddDate(0, 0, 200),
	}

	plan := AdaptiveMilestones(goal, savingsSnapshot(0, 0), asOf)

	// No savings signal: checkpoints spread linearly over the time left.
	full := plan.Milestones[3]
	if full.EstimatedDate != asOf.AddDate(0, 0, 200) {
		t.Errorf("100%% EstimatedDate = %v, want %v", full.EstimatedDate, asOf.AddDate(0, 0, 200))
	}
	quarter := plan.Milestones[0]
	if quarter.EstimatedDate != asOf.AddDate(0, 0, 50) {
		t.Errorf("25%% EstimatedDate = %v, want %v", quarter.EstimatedDate, asOf.AddDate(0, 0, 50))
	}
}

func TestAdaptiveMilestones_BehindClassification(t *testing.T) {
	asOf := day(2026, 1, 1)
	goal := model.Goal{
		TargetAmount:  12000,
		CurrentAmount: 0,
		TargetDate:    asOf.AddDate(0, 0, 120),
	}

	// 100/month against a 12000 target pushes every checkpoint far past
	// the straight-line plan.
	plan := AdaptiveMilestones(goal, savingsSnapshot(100, 15), asOf)

	for i, m := range plan.Milestones {
		if m.Status != model.MilestoneBehind {
			t.Errorf("Milestones[%d].Status = %v, want %v", i, m.Status, model.MilestoneBehind)
		}
	}
}
