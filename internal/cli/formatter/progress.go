package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score as a bar like [████░░░░]  45.0,
// colored with ScoreColor.
func RenderScoreBar(score float64, width int) string {
	if !(score > 0) {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	width = max(width, 2)

	filled := min(int(score/100*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %s", ScoreColor(score).Render(bar), ScoreText(score))
}

// RenderSparkline renders scores as one block character per day.
func RenderSparkline(scores []float64) string {
	levels := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, s := range scores {
		if !(s > 0) {
			s = 0
		}
		idx := min(int(s/100*float64(len(levels)-1)+0.5), len(levels)-1)
		b.WriteString(ScoreColor(s).Render(string(levels[idx])))
	}
	return b.String()
}
