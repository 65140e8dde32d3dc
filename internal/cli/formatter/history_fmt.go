package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/portions/internal/app"
)

// FormatHistory renders per-day scores with a rolling average and streaks.
func FormatHistory(r *app.HistoryReport) string {
	var b strings.Builder

	scores := make([]float64, len(r.Days))
	rows := make([][]string, 0, len(r.Days))
	for i, d := range r.Days {
		scores[i] = d.Overall
		rows = append(rows, []string{
			d.DayKey,
			ScoreText(d.Overall),
			ScoreText(d.RollingAvg),
			fmt.Sprintf("%d/%d", d.MetCount, d.CategoryCount),
			MetIndicator(d.AllTargetsMet),
		})
	}

	summary := strings.Join([]string{
		fmt.Sprintf("%s → %s  %s", r.StartKey, r.EndKey, RenderSparkline(scores)),
		fmt.Sprintf("Average  %s", ScoreText(r.AverageScore)),
		fmt.Sprintf("Streak   %s", Bold(fmt.Sprintf("%d days", r.Streak))) + Dim(fmt.Sprintf("  (best %d)", r.BestStreak)),
		Dim(fmt.Sprintf("%d of %d days met every target", r.MetDays, len(r.Days))),
	}, "\n")
	b.WriteString(RenderBox("History", summary))
	b.WriteString("\n\n")

	b.WriteString(Header("Days"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"DAY", "SCORE", fmt.Sprintf("AVG %dd", r.Window), "MET", "STATUS"},
		rows,
		AlignLeft, AlignRight, AlignRight, AlignRight,
	))
	return b.String()
}
