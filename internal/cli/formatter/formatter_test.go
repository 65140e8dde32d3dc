package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/domain"
	"github.com/alexanderramin/portions/internal/scoring"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsVisibleWidth(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{
			{"Vegetables", StyleRed.Render("40.0")},
			{"Fruit", "100.0"},
		},
		AlignLeft, AlignRight,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "NAME        SCORE", lines[0])
	assert.Equal(t, "Vegetables   40.0", lines[2])
	assert.Equal(t, "Fruit       100.0", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderScoreBar(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		filled int
	}{
		{"zero", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"over clamps", 150, 10},
		{"negative clamps", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderScoreBar(tt.score, 10))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
		})
	}
}

func TestRenderSparkline(t *testing.T) {
	got := stripANSI(RenderSparkline([]float64{0, 100, 50}))
	assert.Equal(t, "▁█▅", got)
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, StyleGreen.GetForeground(), ScoreColor(95).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), ScoreColor(60).GetForeground())
	assert.Equal(t, StyleRed.GetForeground(), ScoreColor(10).GetForeground())
}

func TestConfigureColor_NeverDisablesColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	ConfigureColor("never", true)
	assert.Equal(t, "x", StyleRed.Render("x"))
}

func TestFormatDay(t *testing.T) {
	r := &app.DayReport{
		DayKey:   "2026-03-10",
		Overall:  66.7,
		MetCount: 1,
		Categories: []app.CategoryView{
			{Name: "Vegetables", Unit: "portion", Target: "at least 3", Total: 1.5, AdjustedTotal: 1.5, Score: 40, Reason: scoring.ReasonUnder},
			{Name: "Treats", Unit: "portion", Target: "at most 1", Total: 2, AdjustedTotal: 1, TargetMet: false, Score: 100, Reason: scoring.ReasonWithinRange},
			{Name: "Sports", Unit: "min", Target: "at least 30", Total: 60, AdjustedTotal: 60, TargetMet: true, Score: 100, Reason: scoring.ReasonOverCapped},
		},
		Offsets: []app.OffsetView{{From: "Treats", To: "Sports", Amount: 1}},
	}

	out := stripANSI(FormatDay(r))
	assert.Contains(t, out, "DAILY SCORE")
	assert.Contains(t, out, "2026-03-10")
	assert.Contains(t, out, "66.7")
	assert.Contains(t, out, "1 of 3 targets met")
	assert.Contains(t, out, "1.5 portion")
	assert.Contains(t, out, "2 portion → 1")
	assert.Contains(t, out, "60 min")
	assert.Contains(t, out, "over, capped")
	assert.Contains(t, out, "COMPENSATION")
	assert.Contains(t, out, "1 Treats offset by Sports")
}

func TestFormatDay_NoCategories(t *testing.T) {
	out := stripANSI(FormatDay(&app.DayReport{DayKey: "2026-03-10"}))
	assert.Contains(t, out, "No enabled categories.")
	assert.NotContains(t, out, "CATEGORIES")
}

func TestFormatHistory(t *testing.T) {
	r := &app.HistoryReport{
		StartKey: "2026-03-08",
		EndKey:   "2026-03-09",
		Window:   7,
		Days: []app.HistoryDayView{
			{DayKey: "2026-03-08", Overall: 100, RollingAvg: 100, AllTargetsMet: true, MetCount: 2, CategoryCount: 2},
			{DayKey: "2026-03-09", Overall: 50, RollingAvg: 75, MetCount: 1, CategoryCount: 2},
		},
		BestStreak:   1,
		MetDays:      1,
		AverageScore: 75,
	}

	out := stripANSI(FormatHistory(r))
	assert.Contains(t, out, "2026-03-08 → 2026-03-09")
	assert.Contains(t, out, "AVG 7d")
	assert.Contains(t, out, "0 days")
	assert.Contains(t, out, "(best 1)")
	assert.Contains(t, out, "1 of 2 days met every target")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, " 75.0")
}

func TestFormatProfiles(t *testing.T) {
	out := stripANSI(FormatProfiles([]app.ResolvedProfile{
		{
			Name: "Vegetables", Target: "at least 3", Enabled: true,
			Profile: domain.ScoreProfile{Weight: 1.5, UnderPenaltyPerUnit: 1.2, OverPenaltyPerUnit: 0.2, UnderSoftLimit: 1.5, OverSoftLimit: 3, Curve: domain.CurveLinear, CapOverAtTarget: true},
		},
		{
			Name: "Treats", Target: "at most 1", Overridden: true,
			Profile: domain.ScoreProfile{Weight: 1.2, Curve: domain.CurveQuadratic},
		},
	}))

	assert.Contains(t, out, "SCORE PROFILES")
	assert.Contains(t, out, "1.2 / 0.2")
	assert.Contains(t, out, "linear, capped")
	assert.Contains(t, out, "Treats (off)")
	assert.Contains(t, out, "quadratic")
	assert.Contains(t, out, "dataset")
	assert.Contains(t, out, "template")
}

func TestFormatProfiles_Empty(t *testing.T) {
	assert.Equal(t, "No categories defined.\n", stripANSI(FormatProfiles(nil)))
}

func TestFormatCheck(t *testing.T) {
	out := stripANSI(FormatCheck(&app.CheckReport{
		DataFile:      "dataset.yaml",
		CategoryCount: 9,
		EnabledCount:  8,
		EntryCount:    0,
	}))
	assert.Contains(t, out, "DATASET OK")
	assert.Contains(t, out, "9 (8 enabled)")
	assert.Contains(t, out, "defaults")
	assert.Contains(t, out, "no entries")
}
