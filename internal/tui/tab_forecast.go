package tui

import (
	"fmt"
	"strings"

	"fincast/internal/cli"
	"fincast/internal/tui/components"
	"fincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	f := a.forecast
	var b strings.Builder

	// Row 1: Daily balance chart
	balances := make([]float64, len(f.DailyBalances))
	for i, pt := range f.DailyBalances {
		balances[i] = pt.Balance
	}
	labels := chartDateLabels(f.DailyBalances)

	chartH := 12
	if a.isCompactLayout() {
		chartH = 8
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Projected Balance (%dd)", a.days),
		components.BalanceChart(balances, labels, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 2: Extremes
	minColor := t.Green
	if f.MinBalance < 0 {
		minColor = t.Red
	} else if f.MinBalance < 200 {
		minColor = t.Orange
	}
	metrics := []components.Metric{
		{Label: "Minimum", Value: cli.FormatMoney(f.MinBalance),
			Hint: "on " + cli.FormatDate(f.MinBalanceDate), Color: minColor},
		{Label: "Daily income avg", Value: cli.FormatMoney(f.IncomeAvg.Daily),
			Hint: fmt.Sprintf("from %d transactions", f.IncomeAvg.Count)},
		{Label: "Daily expense avg", Value: cli.FormatMoney(f.ExpenseAvg.Daily),
			Hint: fmt.Sprintf("from %d transactions", f.ExpenseAvg.Count)},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 3: Period summaries
	if len(f.Summaries) > 0 {
		headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
		rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		negStyle := lipgloss.NewStyle().Foreground(t.Red)
		posStyle := lipgloss.NewStyle().Foreground(t.Green)

		var tb strings.Builder
		fmt.Fprintf(&tb, "%s\n", headStyle.Render(fmt.Sprintf(
			"%-10s %14s %14s %14s %14s", "Period", "Income", "Expenses", "Net", "Ending")))
		for _, s := range f.Summaries {
			netStyle := posStyle
			if s.NetChange < 0 {
				netStyle = negStyle
			}
			fmt.Fprintf(&tb, "%s %s %s\n",
				rowStyle.Render(fmt.Sprintf("%-10s %14s %14s",
					fmt.Sprintf("%d days", s.Days),
					cli.FormatMoney(s.TotalIncome),
					cli.FormatMoney(s.TotalExpenses))),
				netStyle.Render(fmt.Sprintf("%14s", cli.FormatSignedMoney(s.NetChange))),
				rowStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(s.EndingBalance))))
		}
		b.WriteString(components.ContentCard("Checkpoints", strings.TrimRight(tb.String(), "\n"), cw))
	}

	return b.String()
}
