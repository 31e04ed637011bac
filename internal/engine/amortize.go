package engine

import (
	"math"
	"time"

	"fincast/internal/model"
)

// maxScheduleMonths caps amortization loops so a payment below the monthly
// interest cannot run forever.
const maxScheduleMonths = 360

// AmortizationSchedule builds the month-by-month payoff table for a balance
// at a fixed monthly payment. The schedule stops when the balance reaches
// zero or after maxScheduleMonths entries.
func AmortizationSchedule(balance, annualRate, payment float64, start time.Time) []model.ScheduleEntry {
	monthlyRate := annualRate / 100 / 12

	var schedule []model.ScheduleEntry

	for month := 1; month <= maxScheduleMonths; month++ {
		if balance <= 0 {
			break
		}

		interest := balance * monthlyRate
		principal := payment - interest
		if principal < 0 {
			principal = 0
		}
		if principal > balance {
			principal = balance
		}
		balance -= principal

		schedule = append(schedule, model.ScheduleEntry{
			Month:     month,
			Date:      start.AddDate(0, month, 0),
			Payment:   round2(interest + principal),
			Principal: round2(principal),
			Interest:  round2(interest),
			Balance:   round2(math.Max(0, balance)),
		})

		if principal == 0 {
			// Payment does not cover interest; the balance will
			// never fall.
			break
		}
	}

	return schedule
}

// MinimumPayment is the fixed monthly payment that retires the balance in
// exactly the given number of months at the annual rate.
func MinimumPayment(balance, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}

	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return round2(balance / float64(months))
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	return round2(balance * monthlyRate * factor / (factor - 1))
}
