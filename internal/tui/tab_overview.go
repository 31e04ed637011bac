package tui

import (
	"fmt"
	"strings"

	"fincast/internal/cli"
	"fincast/internal/model"
	"fincast/internal/tui/components"
	"fincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	f := a.forecast
	sv := a.savings
	var b strings.Builder

	// Row 1: Metric cards
	endColor := t.Green
	if f.EndingBalance() < f.StartingBalance {
		endColor = t.Orange
	}
	if f.EndingBalance() < 0 {
		endColor = t.Red
	}

	runwayVal := "clear"
	runwayHint := fmt.Sprintf("no shortfall in %dd", a.days)
	runwayColor := t.Green
	if f.RunwayDays <= f.ForecastDays {
		runwayVal = fmt.Sprintf("%d days", f.RunwayDays)
		runwayHint = "until funds run out"
		runwayColor = t.Red
	}

	rateColor := t.Green
	if sv.SavingsRatePct < 10 {
		rateColor = t.Orange
	}
	if sv.MonthlySavings < 0 {
		rateColor = t.Red
	}

	metrics := []components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(f.StartingBalance),
			Hint: "starting today"},
		{Label: fmt.Sprintf("In %d days", a.days), Value: cli.FormatMoney(f.EndingBalance()),
			Hint: cli.FormatSignedMoney(f.EndingBalance() - f.StartingBalance), Color: endColor},
		{Label: "Runway", Value: runwayVal, Hint: runwayHint, Color: runwayColor},
		{Label: "Savings rate", Value: cli.FormatPercent(sv.SavingsRatePct),
			Hint: cli.FormatSignedMoney(sv.MonthlySavings) + "/mo", Color: rateColor},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Warnings (only when present)
	if len(f.Warnings) > 0 {
		var wb strings.Builder
		for _, w := range f.Warnings {
			switch w.Kind {
			case model.WarnCritical:
				wb.WriteString(lipgloss.NewStyle().Foreground(t.Red).Bold(true).
					Render(fmt.Sprintf("▲ CRITICAL: funds run out in %d days", w.RunwayDays)))
			case model.WarnLow:
				wb.WriteString(lipgloss.NewStyle().Foreground(t.Orange).
					Render(fmt.Sprintf("▲ LOW: balance dips to %s on %s",
						cli.FormatMoney(w.MinBalance), cli.FormatDate(w.MinDate))))
			}
			wb.WriteString("\n")
		}
		b.WriteString(components.ContentCard("Warnings", strings.TrimRight(wb.String(), "\n"), cw))
		b.WriteString("\n")
	}

	// Row 3: Balance trajectory sparkline
	balances := make([]float64, len(f.DailyBalances))
	for i, pt := range f.DailyBalances {
		balances[i] = pt.Balance
	}
	sparkW := components.CardInnerWidth(cw)
	if len(balances) > sparkW {
		sampled := make([]float64, sparkW)
		for i := range sampled {
			sampled[i] = balances[i*(len(balances)-1)/(sparkW-1)]
		}
		balances = sampled
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Balance (%dd)", a.days),
		components.Sparkline(balances, t.Blue),
		cw,
	))
	b.WriteString("\n")

	// Row 4: Cash flow + Debts and goals summary
	halves := components.LayoutRow(cw, 2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var flowBody strings.Builder
	fmt.Fprintf(&flowBody, "%s %s\n",
		labelStyle.Render("Income  "), valStyle.Render(cli.FormatMoney(sv.MonthlyIncome)+"/mo"))
	fmt.Fprintf(&flowBody, "%s %s\n",
		labelStyle.Render("Expenses"), valStyle.Render(cli.FormatMoney(sv.MonthlyExpenses)+"/mo"))
	fmt.Fprintf(&flowBody, "%s %s\n",
		labelStyle.Render("Net     "), valStyle.Render(cli.FormatSignedMoney(sv.MonthlySavings)+"/mo"))
	fmt.Fprintf(&flowBody, "%s %s",
		labelStyle.Render("Lookback"), valStyle.Render(fmt.Sprintf("%d days", sv.LookbackDays)))

	var trackBody strings.Builder
	totalDebt := 0.0
	for _, d := range a.snap.Debts {
		totalDebt += d.Balance
	}
	fmt.Fprintf(&trackBody, "%s %s\n",
		labelStyle.Render("Debts    "), valStyle.Render(fmt.Sprintf("%d · %s", len(a.snap.Debts), cli.FormatMoney(totalDebt))))
	fmt.Fprintf(&trackBody, "%s %s\n",
		labelStyle.Render("Goals    "), valStyle.Render(fmt.Sprintf("%d tracked", len(a.snap.Goals))))
	fmt.Fprintf(&trackBody, "%s %s\n",
		labelStyle.Render("Recurring"), valStyle.Render(fmt.Sprintf("%d active", len(a.snap.ActiveRecurring()))))
	fmt.Fprintf(&trackBody, "%s %s",
		labelStyle.Render("History  "), valStyle.Render(fmt.Sprintf("%d transactions", len(a.snap.Transactions))))

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Cash Flow", flowBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Tracked", trackBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Cash Flow", flowBody.String(), halves[0]),
			components.ContentCard("Tracked", trackBody.String(), halves[1]),
		}))
	}

	return b.String()
}
