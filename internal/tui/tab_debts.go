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

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	opt := a.optimization
	var b strings.Builder

	if len(a.snap.Debts) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return emptyStyle.Render("\n  No debts tracked. Add one with `fincast add debt`.")
	}

	// Row 1: Totals
	totalBalance := 0.0
	totalPayment := 0.0
	for _, d := range a.snap.Debts {
		totalBalance += d.Balance
		totalPayment += d.MonthlyPayment
	}

	var recommended *model.StrategyResult
	switch opt.Recommended {
	case model.StrategyAvalanche:
		recommended = opt.Avalanche
	case model.StrategySnowball:
		recommended = opt.Snowball
	}

	metrics := []components.Metric{
		{Label: "Total balance", Value: cli.FormatMoney(totalBalance),
			Hint: fmt.Sprintf("%d debts", len(a.snap.Debts)), Color: t.Orange},
		{Label: "Monthly payments", Value: cli.FormatMoney(totalPayment),
			Hint: cli.FormatMoney(a.cfg.Debts.ExtraMonthly) + " extra budget"},
	}
	if recommended != nil {
		metrics = append(metrics,
			components.Metric{Label: "Debt free in", Value: cli.FormatMonths(recommended.TotalMonths),
				Hint: string(opt.Recommended) + " order", Color: t.Green},
			components.Metric{Label: "Total interest", Value: cli.FormatMoney(recommended.TotalInterest),
				Hint: cli.FormatMoney(opt.InterestSavings) + " saved vs other"})
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Per-debt payoff bars in recommended order
	if recommended != nil {
		innerW := components.CardInnerWidth(cw)
		labelW := 0
		for _, d := range a.snap.Debts {
			if w := len(d.Name); w > labelW {
				labelW = w
			}
		}
		if labelW > 24 {
			labelW = 24
		}
		barW := innerW - labelW - 14
		if barW < 10 {
			barW = 10
		}

		byID := make(map[string]model.Debt, len(a.snap.Debts))
		for _, d := range a.snap.Debts {
			byID[d.ID] = d
		}

		var pb strings.Builder
		for _, payoff := range recommended.Debts {
			d, ok := byID[payoff.ID]
			if !ok {
				continue
			}
			remaining := 0.0
			if d.Principal > 0 {
				remaining = d.Balance / d.Principal
			}
			pb.WriteString(components.PayoffBar(truncStr(d.Name, labelW), remaining,
				payoff.MonthsToPayoff, labelW, barW))
			pb.WriteString("\n")
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Payoff Order (%s)", opt.Recommended),
			strings.TrimRight(pb.String(), "\n"), cw))
		b.WriteString("\n")
	}

	// Row 3: Strategy comparison side by side
	halves := components.LayoutRow(cw, 2)
	avalancheCard := renderStrategyCard(opt.Avalanche, opt.Recommended, halves[0])
	snowballCard := renderStrategyCard(opt.Snowball, opt.Recommended, halves[1])
	if a.isCompactLayout() {
		b.WriteString(renderStrategyCard(opt.Avalanche, opt.Recommended, cw))
		b.WriteString("\n")
		b.WriteString(renderStrategyCard(opt.Snowball, opt.Recommended, cw))
	} else {
		b.WriteString(components.CardRow([]string{avalancheCard, snowballCard}))
	}

	return b.String()
}

func renderStrategyCard(sr *model.StrategyResult, recommended model.Strategy, outerW int) string {
	if sr == nil {
		return ""
	}
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	numStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(outerW)
	nameW := innerW - 22
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headStyle.Render(fmt.Sprintf(
		"%-*s %8s %12s", nameW, "Debt", "Months", "Interest")))
	for _, d := range sr.Debts {
		fmt.Fprintf(&b, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(d.Name, nameW))),
			numStyle.Render(fmt.Sprintf("%8d %12s", d.MonthsToPayoff, cli.FormatMoney(d.TotalInterest))))
	}
	fmt.Fprintf(&b, "%s",
		headStyle.Render(fmt.Sprintf("%-*s %8d %12s", nameW, "Total",
			sr.TotalMonths, cli.FormatMoney(sr.TotalInterest))))

	title := capitalize(string(sr.Strategy))
	if sr.Strategy == recommended {
		title += " ★"
	}
	return components.ContentCard(title, b.String(), outerW)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
