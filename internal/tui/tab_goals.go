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

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.goalRows) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return emptyStyle.Render("\n  No goals tracked. Add one with `fincast add goal`.")
	}

	// Left: goal list with progress bars. Right: milestones for the selection.
	listW := cw
	detailW := 0
	split := !a.isCompactLayout()
	if split {
		halves := components.LayoutRow(cw, 2)
		listW = halves[0]
		detailW = halves[1]
	}

	innerW := components.CardInnerWidth(listW)
	barW := innerW - 28
	if barW < 10 {
		barW = 10
	}

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lb strings.Builder
	for i, row := range a.goalRows {
		marker := "  "
		style := nameStyle
		if i == a.goalCursor {
			marker = "▸ "
			style = selStyle
		}
		lb.WriteString(style.Render(marker + truncStr(row.goal.Name, innerW-2)))
		lb.WriteString("\n  ")
		lb.WriteString(components.GoalBar(row.goal.ProgressFraction(), barW))
		lb.WriteString("\n  ")
		lb.WriteString(mutedStyle.Render(fmt.Sprintf("%s of %s · %s · by %s",
			cli.FormatMoney(row.goal.CurrentAmount),
			cli.FormatMoney(row.goal.TargetAmount),
			statusLabel(row.projection.Status),
			cli.FormatDate(row.goal.TargetDate))))
		lb.WriteString("\n")
		if i < len(a.goalRows)-1 {
			lb.WriteString("\n")
		}
	}
	listCard := components.ContentCard("Goals", strings.TrimRight(lb.String(), "\n"), listW)

	detailCard := ""
	if len(a.goalRows) > 0 {
		row := a.goalRows[a.goalCursor]
		w := detailW
		if !split {
			w = cw
		}
		detailCard = a.renderGoalDetail(row, w)
	}

	if split {
		b.WriteString(components.CardRow([]string{listCard, detailCard}))
	} else {
		b.WriteString(listCard)
		b.WriteString("\n")
		b.WriteString(detailCard)
	}

	return b.String()
}

func (a App) renderGoalDetail(row goalRow, outerW int) string {
	t := theme.Active
	p := row.projection
	plan := row.plan

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Required "), valStyle.Render(cli.FormatMoney(p.RequiredMonthly)+"/mo"))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Available"), valStyle.Render(cli.FormatMoney(p.AvailableMonthly)+"/mo"))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Odds     "), valStyle.Render(fmt.Sprintf("%.0f%%", p.Probability*100)))
	if p.EstimatedMonths < model.EstimatedMonthsCap {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("Est. done"), valStyle.Render(cli.FormatDate(p.EstimatedCompletion)))
	} else {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("Est. done"), labelStyle.Render("not on current surplus"))
	}
	b.WriteString("\n")

	// Milestone checkpoints
	for _, m := range plan.Milestones {
		var marker string
		var style lipgloss.Style
		switch {
		case m.Achieved:
			marker = "●"
			style = lipgloss.NewStyle().Foreground(t.Green)
		case m.Status == model.MilestoneOnTrack:
			marker = "◐"
			style = lipgloss.NewStyle().Foreground(t.Accent)
		case m.Status == model.MilestoneAtRisk:
			marker = "◑"
			style = lipgloss.NewStyle().Foreground(t.Orange)
		default:
			marker = "○"
			style = lipgloss.NewStyle().Foreground(t.Red)
		}
		fmt.Fprintf(&b, "%s %s\n",
			style.Render(fmt.Sprintf("%s %3d%%", marker, m.Percent)),
			labelStyle.Render(fmt.Sprintf("%s  est %s",
				cli.FormatMoney(m.Amount), cli.FormatDate(m.EstimatedDate))))
	}
	b.WriteString("\n")

	for _, adv := range plan.Advice {
		b.WriteString(renderAdvice(adv))
		b.WriteString("\n")
	}

	return components.ContentCard("Milestones · "+truncStr(row.goal.Name, 24),
		strings.TrimRight(b.String(), "\n"), outerW)
}

func renderAdvice(adv model.Advice) string {
	t := theme.Active
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	switch adv.Kind {
	case model.AdviceShortfall:
		return warnStyle.Render(fmt.Sprintf("Save %s/mo more to stay on schedule",
			cli.FormatMoney(adv.MonthlyAmount)))
	case model.AdviceSurplus:
		return goodStyle.Render(fmt.Sprintf("Ahead by %s/mo",
			cli.FormatMoney(adv.MonthlyAmount)))
	case model.AdviceSteady:
		return mutedStyle.Render("On pace, keep going")
	case model.AdviceLowRate:
		return warnStyle.Render(fmt.Sprintf("Savings rate is %.1f%%, consider trimming expenses",
			adv.SavingsRatePct))
	case model.AdviceHighRate:
		return goodStyle.Render(fmt.Sprintf("Strong savings rate at %.1f%%",
			adv.SavingsRatePct))
	}
	return ""
}

func statusLabel(s model.GoalStatus) string {
	switch s {
	case model.GoalAchieved:
		return "achieved"
	case model.GoalOnTrack:
		return "on track"
	case model.GoalAtRisk:
		return "at risk"
	default:
		return "behind"
	}
}
