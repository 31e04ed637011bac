package engine

import (
	"math"
	"time"

	"fincast/internal/model"
)

// statusRiskFactor marks a goal at risk once the required contribution
// exceeds the available margin, and behind once it exceeds the margin with
// 20% headroom.
const statusRiskFactor = 1.2

// ProjectGoal judges whether a savings goal is reachable by its target date
// given the monthly margin (income minus expenses) available for it.
func ProjectGoal(goal model.Goal, monthlyIncome, monthlyExpenses float64, asOf time.Time) model.GoalProjection {
	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	months := monthsBetween(asOf, goal.TargetDate)

	required := remaining
	if months > 0 {
		required = remaining / float64(months)
	}

	available := monthlyIncome - monthlyExpenses

	status := goalStatus(goal, required, available)

	estimatedMonths := model.EstimatedMonthsCap
	if available > 0 {
		estimatedMonths = int(math.Ceil(remaining / available))
	}

	return model.GoalProjection{
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		RemainingAmount:     round2(remaining),
		TargetDate:          goal.TargetDate,
		MonthsRemaining:     months,
		RequiredMonthly:     round2(required),
		AvailableMonthly:    round2(available),
		EstimatedMonths:     estimatedMonths,
		EstimatedCompletion: asOf.AddDate(0, estimatedMonths, 0),
		Status:              status,
		Probability:         goalProbability(status, required, available),
		OnTrack:             status == model.GoalOnTrack || status == model.GoalAchieved,
	}
}

// monthsBetween counts calendar months from a to b, floored at zero.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return 0
	}
	return months
}

func goalStatus(goal model.Goal, required, available float64) model.GoalStatus {
	switch {
	case goal.CurrentAmount >= goal.TargetAmount:
		return model.GoalAchieved
	case required > available*statusRiskFactor:
		return model.GoalBehind
	case required > available:
		return model.GoalAtRisk
	default:
		return model.GoalOnTrack
	}
}

// goalProbability maps the available-to-required ratio onto a coarse
// likelihood band. An achieved goal is certain by convention.
func goalProbability(status model.GoalStatus, required, available float64) float64 {
	if status == model.GoalAchieved {
		return 1.0
	}
	if available <= 0 {
		return 0.10
	}

	ratio := 10.0
	if required > 0 {
		ratio = available / required
	}

	switch {
	case ratio >= 1.2:
		return 0.95
	case ratio >= 1.0:
		return 0.85
	case ratio >= 0.8:
		return 0.70
	case ratio >= 0.6:
		return 0.50
	case ratio >= 0.4:
		return 0.30
	default:
		return 0.15
	}
}
