package components

import (
	"fmt"
	"strings"

	"fincast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalBar renders a goal progress bar with percentage. Higher is better:
// the bar warms from cyan through accent to green as progress climbs.
func GoalBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.Green
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForRemaining returns green/yellow/orange/red based on how much of a
// debt is still outstanding. A nearly-paid debt renders green.
func ColorForRemaining(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.4:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// PayoffBar renders a labeled debt bar: the filled portion is the remaining
// balance share, with a months-to-payoff countdown on the right.
func PayoffBar(label string, remainingPct float64, monthsLeft, labelW, barWidth int) string {
	t := theme.Active

	if remainingPct < 0 {
		remainingPct = 0
	}
	if remainingPct > 1 {
		remainingPct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForRemaining(remainingPct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForRemaining(remainingPct))).Background(t.Surface).Bold(true)
	countdownStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	countdown := formatMonthsLeft(monthsLeft)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(remainingPct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", remainingPct*100)) +
		spaceStyle.Render("  ") +
		countdownStyle.Render(countdown)
}

func formatMonthsLeft(months int) string {
	switch {
	case months <= 0:
		return "paid"
	case months >= 12:
		return fmt.Sprintf("%dy %dm", months/12, months%12)
	default:
		return fmt.Sprintf("%dm", months)
	}
}
