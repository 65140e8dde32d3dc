package scoring

import (
	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
)

type HistoryInput struct {
	Categories []domain.Category
	Entries    []domain.LogEntry
	Profiles   map[string]domain.ScoreProfile
	Rules      domain.CompensationRules
	StartKey   string
	EndKey     string
}

type DaySummary struct {
	DayKey    string
	Totals    map[string]float64
	Adherence AdherenceSummary
	Score     DailyScore
}

type History struct {
	Days []DaySummary
	// Streak counts consecutive all-met days ending at the last day.
	Streak     int
	BestStreak int
}

// EvaluateHistory evaluates every day in [StartKey, EndKey], in chronological
// order. Days without entries are evaluated against zero totals.
func (e *Evaluator) EvaluateHistory(input HistoryInput) (History, error) {
	keys, err := daybound.DayKeysBetween(input.StartKey, input.EndKey)
	if err != nil {
		return History{}, err
	}

	byDay := TotalsByDay(input.Entries, input.StartKey, input.EndKey)
	// Default rules depend only on the category list; derive them once.
	rules := input.Rules
	if !rules.Explicit() {
		rules = domain.ExplicitRules(DefaultCompensationRules(domain.EnabledCategories(input.Categories))...)
	}

	h := History{Days: make([]DaySummary, 0, len(keys))}
	run := 0
	for _, key := range keys {
		totals := byDay[key]
		if totals == nil {
			totals = map[string]float64{}
		}
		day := DaySummary{
			DayKey:    key,
			Totals:    totals,
			Adherence: EvaluateAdherence(input.Categories, totals),
			Score: e.Evaluate(ScoreInput{
				Categories: input.Categories,
				Totals:     totals,
				Profiles:   input.Profiles,
				Rules:      rules,
			}),
		}
		h.Days = append(h.Days, day)

		if day.Adherence.AllTargetsMet {
			run++
		} else {
			run = 0
		}
		h.BestStreak = max(h.BestStreak, run)
	}
	h.Streak = run
	return h, nil
}

// RollingAverage returns, for each day, the mean overall score of the window
// of days ending there. Early days average over what is available.
func (h History) RollingAverage(window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(h.Days))
	for i := range h.Days {
		lo := max(0, i-window+1)
		var sum float64
		for _, d := range h.Days[lo : i+1] {
			sum += d.Score.Overall
		}
		out[i] = sum / float64(i+1-lo)
	}
	return out
}

// AverageScore is the mean overall score across all days, 0 when empty.
func (h History) AverageScore() float64 {
	if len(h.Days) == 0 {
		return 0
	}
	var sum float64
	for _, d := range h.Days {
		sum += d.Score.Overall
	}
	return sum / float64(len(h.Days))
}

// MetDays counts days on which every target was met.
func (h History) MetDays() int {
	n := 0
	for _, d := range h.Days {
		if d.Adherence.AllTargetsMet {
			n++
		}
	}
	return n
}
