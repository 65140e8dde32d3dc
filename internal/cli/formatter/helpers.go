package formatter

import (
	"strings"

	"github.com/alexanderramin/portions/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatAmount renders a total with its unit, e.g. "1.5 portion".
func FormatAmount(v float64, unit string) string {
	s := domain.FormatAmount(v)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
