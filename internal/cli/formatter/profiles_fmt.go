package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/domain"
)

// FormatProfiles renders the effective score profile of every category.
func FormatProfiles(profiles []app.ResolvedProfile) string {
	if len(profiles) == 0 {
		return Dim("No categories defined.") + "\n"
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		name := p.Name
		if !p.Enabled {
			name = Dim(name + " (off)")
		}
		source := Dim("template")
		if p.Overridden {
			source = StyleBlue.Render("dataset")
		}
		rows = append(rows, []string{
			name,
			p.Target,
			num(p.Profile.Weight),
			fmt.Sprintf("%s / %s", num(p.Profile.UnderPenaltyPerUnit), num(p.Profile.OverPenaltyPerUnit)),
			fmt.Sprintf("%s / %s", num(p.Profile.UnderSoftLimit), num(p.Profile.OverSoftLimit)),
			curveLabel(p.Profile),
			source,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Score Profiles"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"CATEGORY", "TARGET", "WEIGHT", "PENALTY U/O", "SOFT U/O", "CURVE", "SOURCE"},
		rows,
		AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight,
	))
	return b.String()
}

func curveLabel(p domain.ScoreProfile) string {
	label := string(p.Curve)
	if label == "" {
		label = string(domain.CurveLinear)
	}
	if p.CapOverAtTarget {
		label += ", capped"
	}
	return label
}

func num(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
