package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"fincast/internal/model"
)

const (
	detectLookbackDays = 180
	amountTolerance    = 0.10
	descOverlapMin     = 0.7
	intervalTolerance  = 0.20
	minOccurrences     = 2
)

// DetectRecurring mines the transaction history for repeating patterns:
// same-direction transactions with similar amounts and descriptions whose
// spacing matches a known frequency. Candidates carry a confidence score
// from the consistency of the intervals.
func DetectRecurring(history []model.Transaction, asOf time.Time) []model.RecurringCandidate {
	cutoff := asOf.AddDate(0, 0, -detectLookbackDays)

	var recent []model.Transaction
	for _, txn := range history {
		if !txn.Date.Before(cutoff) {
			recent = append(recent, txn)
		}
	}
	if len(recent) < minOccurrences {
		return nil
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.Before(recent[j].Date)
	})

	var candidates []model.RecurringCandidate
	for _, group := range groupSimilar(recent) {
		if candidate, ok := analyzeGroup(group); ok {
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// groupSimilar greedily buckets transactions: each unclaimed transaction
// seeds a group and claims every later similar one.
func groupSimilar(transactions []model.Transaction) [][]model.Transaction {
	var groups [][]model.Transaction
	used := make([]bool, len(transactions))

	for i, seed := range transactions {
		if used[i] {
			continue
		}
		group := []model.Transaction{seed}
		used[i] = true

		for j := i + 1; j < len(transactions); j++ {
			other := transactions[j]
			if used[j] {
				continue
			}
			if seed.Direction == other.Direction &&
				amountSimilar(seed.Amount, other.Amount) &&
				descriptionSimilar(seed.Description, other.Description) {
				group = append(group, other)
				used[j] = true
			}
		}

		if len(group) >= minOccurrences {
			groups = append(groups, group)
		}
	}

	return groups
}

func amountSimilar(a, b float64) bool {
	if a == 0 || b == 0 {
		return a == b
	}
	diff := math.Abs(a - b)
	avg := (a + b) / 2
	return diff/avg <= amountTolerance
}

func descriptionSimilar(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return true
	}
	// "Netflix" matches "Netflix subscription".
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}
	setB := make(map[string]bool, len(wordsB))
	overlap := 0
	for _, w := range wordsB {
		if setB[w] {
			continue
		}
		setB[w] = true
		if setA[w] {
			overlap++
		}
	}

	minWords := len(setA)
	if len(setB) < minWords {
		minWords = len(setB)
	}

	return float64(overlap)/float64(minWords) >= descOverlapMin
}

// analyzeGroup turns a similarity group into a candidate, or reports false
// when the spacing matches no known frequency.
func analyzeGroup(group []model.Transaction) (model.RecurringCandidate, bool) {
	if len(group) < minOccurrences {
		return model.RecurringCandidate{}, false
	}

	intervals := make([]float64, 0, len(group)-1)
	for i := 0; i < len(group)-1; i++ {
		days := group[i+1].Date.Sub(group[i].Date).Hours() / 24
		intervals = append(intervals, days)
	}

	avgInterval := 0.0
	for _, d := range intervals {
		avgInterval += d
	}
	avgInterval /= float64(len(intervals))

	frequency, ok := matchFrequency(avgInterval)
	if !ok {
		return model.RecurringCandidate{}, false
	}

	total := 0.0
	for _, txn := range group {
		total += txn.Amount
	}

	last := group[len(group)-1]

	sample := group
	if len(sample) > 3 {
		sample = sample[len(sample)-3:]
	}
	dates := make([]time.Time, len(sample))
	for i, txn := range sample {
		dates[i] = txn.Date
	}

	return model.RecurringCandidate{
		Direction:   last.Direction,
		Amount:      round2(total / float64(len(group))),
		Description: modal(group, func(t model.Transaction) string { return t.Description }),
		Category:    modal(group, func(t model.Transaction) string { return t.Category }),
		Frequency:   frequency,
		NextDate:    last.Date.AddDate(0, 0, frequency.Interval()),
		Occurrences: len(group),
		Confidence:  intervalConfidence(intervals, avgInterval),
		SampleDates: dates,
	}, true
}

func matchFrequency(avgDays float64) (model.Frequency, bool) {
	for _, freq := range []model.Frequency{
		model.Daily, model.Weekly, model.Biweekly,
		model.Monthly, model.Quarterly, model.Yearly,
	} {
		expected := float64(freq.Interval())
		if avgDays >= expected*(1-intervalTolerance) && avgDays <= expected*(1+intervalTolerance) {
			return freq, true
		}
	}
	return "", false
}

// modal picks the most frequent value, earliest occurrence winning ties.
func modal(group []model.Transaction, key func(model.Transaction) string) string {
	counts := make(map[string]int, len(group))
	for _, txn := range group {
		counts[key(txn)]++
	}

	best := ""
	bestCount := 0
	for _, txn := range group {
		k := key(txn)
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}

// intervalConfidence scores spacing consistency: 1 for perfectly regular
// intervals, falling toward 0 as the coefficient of variation grows.
func intervalConfidence(intervals []float64, avgInterval float64) float64 {
	if len(intervals) == 0 || avgInterval == 0 {
		return 0
	}

	variance := 0.0
	for _, d := range intervals {
		variance += (d - avgInterval) * (d - avgInterval)
	}
	variance /= float64(len(intervals))

	cv := math.Sqrt(variance) / avgInterval
	return round2(math.Max(0, 1-cv))
}
