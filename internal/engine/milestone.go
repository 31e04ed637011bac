package engine

import (
	"time"

	"fincast/internal/model"
)

// milestoneCheckpoints are the progress percentages a goal is split into.
var milestoneCheckpoints = []int{25, 50, 75, 100}

const (
	milestoneGraceDays = 30
	lowSavingsRatePct  = 10.0
	highSavingsRatePct = 20.0
)

// AdaptiveMilestones splits a goal into percentage checkpoints and estimates
// when each will be hit at the current savings pace. Checkpoints are judged
// against the dates a straight-line plan toward the target date would put
// them at.
func AdaptiveMilestones(goal model.Goal, savings model.SavingsAnalysis, asOf time.Time) model.MilestonePlan {
	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	daysRemaining := int(goal.TargetDate.Sub(asOf).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	monthsRemaining := float64(daysRemaining) / 30
	if monthsRemaining < 1 {
		monthsRemaining = 1
	}

	required := remaining / monthsRemaining
	monthlySavings := savings.MonthlySavings
	onTrack := monthlySavings >= required

	progress := goal.ProgressFraction()

	var milestones []model.Milestone
	for _, pct := range milestoneCheckpoints {
		milestones = append(milestones, milestone(goal, pct, progress, monthlySavings, daysRemaining, asOf))
	}

	return model.MilestonePlan{
		GoalID:          goal.ID,
		GoalName:        goal.Name,
		TargetAmount:    goal.TargetAmount,
		CurrentAmount:   goal.CurrentAmount,
		ProgressPct:     round2(progress * 100),
		RemainingAmount: round2(remaining),
		DaysRemaining:   daysRemaining,
		MonthsRemaining: round2(monthsRemaining),
		RequiredMonthly: round2(required),
		MonthlySavings:  monthlySavings,
		OnTrack:         onTrack,
		Milestones:      milestones,
		Advice:          milestoneAdvice(onTrack, required, savings),
		Savings:         savings,
	}
}

func milestone(goal model.Goal, pct int, progress, monthlySavings float64, daysRemaining int, asOf time.Time) model.Milestone {
	fraction := float64(pct) / 100
	amount := goal.TargetAmount * fraction

	if goal.CurrentAmount >= amount {
		return model.Milestone{
			Percent:       pct,
			Amount:        round2(amount),
			EstimatedDate: asOf,
			Status:        model.MilestoneAchieved,
			Achieved:      true,
		}
	}

	var estimated time.Time
	if monthlySavings > 0 {
		months := (amount - goal.CurrentAmount) / monthlySavings
		estimated = asOf.AddDate(0, int(months), 0)
	} else {
		// No savings signal; interpolate over the time still left.
		ratio := 0.0
		if progress < 1 {
			ratio = (fraction - progress) / (1 - progress)
		}
		estimated = asOf.AddDate(0, 0, int(float64(daysRemaining)*ratio))
	}

	// The straight-line plan puts this checkpoint proportionally before
	// the target date.
	original := goal.TargetDate.AddDate(0, 0, -int(float64(daysRemaining)*(1-fraction)))

	status := model.MilestoneOnTrack
	switch {
	case !estimated.After(original):
		status = model.MilestoneOnTrack
	case !estimated.After(original.AddDate(0, 0, milestoneGraceDays)):
		status = model.MilestoneAtRisk
	default:
		status = model.MilestoneBehind
	}

	return model.Milestone{
		Percent:       pct,
		Amount:        round2(amount),
		EstimatedDate: estimated,
		Status:        status,
	}
}

func milestoneAdvice(onTrack bool, required float64, savings model.SavingsAnalysis) []model.Advice {
	var advice []model.Advice

	shortfall := required - savings.MonthlySavings
	switch {
	case !onTrack && shortfall > 0:
		advice = append(advice, model.Advice{Kind: model.AdviceShortfall, MonthlyAmount: round2(shortfall)})
	case onTrack && savings.MonthlySavings > required*statusRiskFactor:
		advice = append(advice, model.Advice{Kind: model.AdviceSurplus, MonthlyAmount: round2(savings.MonthlySavings - required)})
	default:
		advice = append(advice, model.Advice{Kind: model.AdviceSteady})
	}

	switch {
	case savings.SavingsRatePct < lowSavingsRatePct:
		advice = append(advice, model.Advice{Kind: model.AdviceLowRate, SavingsRatePct: savings.SavingsRatePct})
	case savings.SavingsRatePct >= highSavingsRatePct:
		advice = append(advice, model.Advice{Kind: model.AdviceHighRate, SavingsRatePct: savings.SavingsRatePct})
	}

	return advice
}
