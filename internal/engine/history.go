// Package engine implements the projection and optimization kernels.
// Everything here is pure: snapshots in, freshly built value objects out,
// no I/O and no shared state between runs.
package engine

import (
	"math"
	"time"

	"fincast/internal/model"
)

// HistoryLookbackDays is the trailing window used for historical averages
// and savings-rate analysis.
const HistoryLookbackDays = 90

// HistoricalAverages computes trailing daily and monthly averages for one
// direction over [from, to). Empty history yields zeros.
func HistoricalAverages(history []model.Transaction, dir model.Direction, from, to time.Time) model.Averages {
	var total float64
	var count int
	for _, tx := range history {
		if tx.Direction != dir {
			continue
		}
		if tx.Date.Before(from) || !tx.Date.Before(to) {
			continue
		}
		total += tx.Amount
		count++
	}

	if total == 0 {
		return model.Averages{}
	}

	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		days = 1
	}
	daily := total / float64(days)

	return model.Averages{
		Daily:   round2(daily),
		Monthly: round2(daily * 30),
		Total:   round2(total),
		Count:   count,
	}
}

// AnalyzeSavings summarizes the trailing savings rate over lookbackDays
// ending at asOf.
func AnalyzeSavings(history []model.Transaction, asOf time.Time, lookbackDays int) model.SavingsAnalysis {
	if lookbackDays <= 0 {
		lookbackDays = HistoryLookbackDays
	}
	from := asOf.AddDate(0, 0, -lookbackDays)

	var income, expenses float64
	for _, tx := range history {
		if tx.Date.Before(from) || !tx.Date.Before(asOf) {
			continue
		}
		switch tx.Direction {
		case model.Income:
			income += tx.Amount
		case model.Expense:
			expenses += tx.Amount
		}
	}

	savings := income - expenses
	months := float64(lookbackDays) / 30

	var ratePct float64
	if income > 0 {
		ratePct = savings / income * 100
	}

	return model.SavingsAnalysis{
		LookbackDays:    lookbackDays,
		TotalIncome:     round2(income),
		TotalExpenses:   round2(expenses),
		TotalSavings:    round2(savings),
		MonthlyIncome:   round2(income / months),
		MonthlyExpenses: round2(expenses / months),
		MonthlySavings:  round2(savings / months),
		SavingsRatePct:  round2(ratePct),
	}
}

// round2 rounds to two-decimal monetary precision. All balances and amounts
// the engine materializes pass through here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
