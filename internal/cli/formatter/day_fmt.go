package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/scoring"
)

// FormatDay renders a day report: overall score, per-category table and any
// compensation offsets.
func FormatDay(r *app.DayReport) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s  %s\n%s",
		Bold(r.DayKey),
		RenderScoreBar(r.Overall, 20),
		Dim(fmt.Sprintf("%d of %d targets met", r.MetCount, len(r.Categories))),
	)
	b.WriteString(RenderBox("Daily Score", summary))
	b.WriteString("\n\n")

	if len(r.Categories) == 0 {
		b.WriteString(Dim("No enabled categories."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		total := FormatAmount(c.Total, c.Unit)
		if c.AdjustedTotal != c.Total {
			total += Dim(" → " + FormatAmount(c.AdjustedTotal, ""))
		}
		rows = append(rows, []string{
			c.Name,
			c.Target,
			total,
			MetIndicator(c.TargetMet),
			ScoreText(c.Score),
			reasonLabel(c.Reason),
		})
	}
	b.WriteString(Header("Categories"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"CATEGORY", "TARGET", "TOTAL", "STATUS", "SCORE", "NOTE"},
		rows,
		AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight,
	))

	if len(r.Offsets) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Compensation"))
		b.WriteString("\n")
		for _, o := range r.Offsets {
			fmt.Fprintf(&b, "%s %s offset by %s\n",
				StyleBlue.Render("↺"),
				Bold(FormatAmount(o.Amount, "")+" "+o.From),
				o.To,
			)
		}
	}
	return b.String()
}

func reasonLabel(code scoring.ScoreReasonCode) string {
	switch code {
	case scoring.ReasonWithinRange:
		return Dim("in range")
	case scoring.ReasonOverCapped:
		return StyleGreen.Render("over, capped")
	case scoring.ReasonUnder:
		return StyleYellow.Render("under")
	case scoring.ReasonOver:
		return StyleRed.Render("over")
	default:
		return Dim(string(code))
	}
}
