package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/portions/internal/app"
)

// FormatCheck renders a dataset validation summary.
func FormatCheck(r *app.CheckReport) string {
	rules := fmt.Sprintf("%d", r.RuleCount)
	if !r.ExplicitRules {
		rules = "defaults"
	}
	span := Dim("no entries")
	if r.EntryCount > 0 {
		span = fmt.Sprintf("%s → %s", r.FirstDayKey, r.LastDayKey)
	}

	lines := []string{
		StyleGreen.Render("✔ ") + Bold(r.DataFile),
		fmt.Sprintf("Categories    %d (%d enabled)", r.CategoryCount, r.EnabledCount),
		fmt.Sprintf("Profiles      %d from dataset", r.OverriddenCount),
		fmt.Sprintf("Compensation  %s", rules),
		fmt.Sprintf("Entries       %d", r.EntryCount),
		fmt.Sprintf("Days          %s", span),
	}
	return RenderBox("Dataset OK", strings.Join(lines, "\n")) + "\n"
}
