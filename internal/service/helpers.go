package service

import (
	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/domain"
	"github.com/alexanderramin/portions/internal/importer"
	"github.com/alexanderramin/portions/internal/scoring"
)

// buildDayReport joins adherence and score results by category ID.
func buildDayReport(
	ds *importer.Dataset,
	evaluator *scoring.Evaluator,
	key string,
	adherence scoring.AdherenceSummary,
	score scoring.DailyScore,
) *app.DayReport {
	met := make(map[string]bool, len(adherence.Categories))
	for _, a := range adherence.Categories {
		met[a.CategoryID] = a.TargetMet
	}

	report := &app.DayReport{
		DayKey:        key,
		Overall:       score.Overall,
		AllTargetsMet: adherence.AllTargetsMet,
		MetCount:      adherence.MetCount(),
		Categories:    make([]app.CategoryView, 0, len(score.Categories)),
	}
	for _, cs := range score.Categories {
		c, _ := ds.CategoryByID(cs.CategoryID)
		report.Categories = append(report.Categories, app.CategoryView{
			CategoryID:    c.ID,
			Name:          c.Name,
			Unit:          c.Unit,
			Kind:          targetKind(c),
			Target:        describeTarget(c),
			Total:         cs.RawTotal,
			AdjustedTotal: cs.AdjustedTotal,
			TargetMet:     met[c.ID],
			Score:         cs.Score,
			Reason:        cs.Reason,
			Deviation:     cs.Deviation,
			Weight:        evaluator.Profile(c, ds.Profiles).Weight,
		})
	}
	for _, o := range score.Offsets {
		report.Offsets = append(report.Offsets, app.OffsetView{
			From:   categoryName(ds, o.FromCategoryID),
			To:     categoryName(ds, o.ToCategoryID),
			Amount: o.Amount,
		})
	}
	return report
}

func buildHistoryReport(h scoring.History, startKey, endKey string, window int) *app.HistoryReport {
	rolling := h.RollingAverage(window)
	report := &app.HistoryReport{
		StartKey:     startKey,
		EndKey:       endKey,
		Window:       window,
		Days:         make([]app.HistoryDayView, 0, len(h.Days)),
		Streak:       h.Streak,
		BestStreak:   h.BestStreak,
		MetDays:      h.MetDays(),
		AverageScore: h.AverageScore(),
	}
	for i, d := range h.Days {
		report.Days = append(report.Days, app.HistoryDayView{
			DayKey:        d.DayKey,
			Overall:       d.Score.Overall,
			RollingAvg:    rolling[i],
			AllTargetsMet: d.Adherence.AllTargetsMet,
			MetCount:      d.Adherence.MetCount(),
			CategoryCount: len(d.Adherence.Categories),
		})
	}
	return report
}

func describeTarget(c domain.Category) string {
	if c.Target == nil {
		return "any"
	}
	return c.Target.String()
}

func targetKind(c domain.Category) domain.TargetKind {
	if c.Target == nil {
		return domain.TargetRange
	}
	return c.Target.Kind()
}

func categoryName(ds *importer.Dataset, id string) string {
	if c, ok := ds.CategoryByID(id); ok {
		return c.Name
	}
	return id
}

// entryDayRange returns the earliest and latest entry day keys.
func entryDayRange(ds *importer.Dataset) (first, last string) {
	for _, e := range ds.Entries {
		if first == "" || e.DayKey < first {
			first = e.DayKey
		}
		if e.DayKey > last {
			last = e.DayKey
		}
	}
	return first, last
}
