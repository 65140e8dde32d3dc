package scoring

import (
	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
)

// TotalsByCategory sums entry portions per category ID. Sums are accumulated
// in whole increments, so every permutation of entries yields identical totals.
func TotalsByCategory(entries []domain.LogEntry) map[string]float64 {
	sums := make(map[string]*domain.PortionSum)
	for _, e := range entries {
		addTo(sums, e)
	}
	return sumsToTotals(sums)
}

// TotalsByDay groups entries by their DayKey, keeping days within
// [startKey, endKey] inclusive, then sums per category. Day keys are trusted
// as given; nothing is re-derived from LoggedAt.
func TotalsByDay(entries []domain.LogEntry, startKey, endKey string) map[string]map[string]float64 {
	days := make(map[string]map[string]*domain.PortionSum)
	for _, e := range entries {
		if !daybound.InRange(e.DayKey, startKey, endKey) {
			continue
		}
		day, ok := days[e.DayKey]
		if !ok {
			day = make(map[string]*domain.PortionSum)
			days[e.DayKey] = day
		}
		addTo(day, e)
	}

	out := make(map[string]map[string]float64, len(days))
	for key, day := range days {
		out[key] = sumsToTotals(day)
	}
	return out
}

func addTo(sums map[string]*domain.PortionSum, e domain.LogEntry) {
	sum, ok := sums[e.CategoryID]
	if !ok {
		sum = &domain.PortionSum{}
		sums[e.CategoryID] = sum
	}
	sum.Add(e.Portion)
}

func sumsToTotals(sums map[string]*domain.PortionSum) map[string]float64 {
	totals := make(map[string]float64, len(sums))
	for id, sum := range sums {
		totals[id] = sum.Portion().Value()
	}
	return totals
}

func copyTotals(totals map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(totals))
	for k, v := range totals {
		cp[k] = v
	}
	return cp
}
