package engine

import (
	"math"
	"sort"

	"fincast/internal/model"
)

// OptimizeDebts runs the avalanche and snowball payoff strategies against
// the same debt set and extra monthly budget, then recommends whichever pays
// less aggregate interest. Avalanche wins ties.
func OptimizeDebts(debts []model.Debt, extraBudget float64) model.DebtOptimizationResult {
	if len(debts) == 0 {
		return model.DebtOptimizationResult{Recommended: model.StrategyNone}
	}

	avalanche := runStrategy(model.StrategyAvalanche, debts, extraBudget)
	snowball := runStrategy(model.StrategySnowball, debts, extraBudget)

	recommended := model.StrategyAvalanche
	if snowball.TotalInterest < avalanche.TotalInterest {
		recommended = model.StrategySnowball
	}

	return model.DebtOptimizationResult{
		Recommended:     recommended,
		Avalanche:       &avalanche,
		Snowball:        &snowball,
		InterestSavings: round2(math.Abs(avalanche.TotalInterest - snowball.TotalInterest)),
	}
}

// runStrategy simulates each debt independently with the extra budget on top
// of its own minimum payment. The ordering decides which debts the extra
// budget reaches first in the reported payoff sequence.
func runStrategy(strategy model.Strategy, debts []model.Debt, extraBudget float64) model.StrategyResult {
	ordered := make([]model.Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case model.StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate > ordered[j].AnnualRate
		})
	}

	result := model.StrategyResult{Strategy: strategy}

	for _, debt := range ordered {
		payment := debt.MonthlyPayment + extraBudget
		monthlyRate := debt.AnnualRate / 100 / 12

		remaining := debt.Balance
		interestPaid := 0.0
		months := 0

		for remaining > 0 && months < maxScheduleMonths {
			interest := remaining * monthlyRate
			principal := payment - interest
			if principal <= 0 {
				months = maxScheduleMonths
				break
			}
			if principal > remaining {
				principal = remaining
			}
			remaining -= principal
			interestPaid += interest
			months++
		}

		result.Debts = append(result.Debts, model.DebtPayoff{
			ID:             debt.ID,
			Name:           debt.Name,
			MonthsToPayoff: months,
			TotalInterest:  round2(interestPaid),
		})

		if months > result.TotalMonths {
			result.TotalMonths = months
		}
		result.TotalInterest += interestPaid
	}

	result.TotalInterest = round2(result.TotalInterest)

	return result
}
