// Package tui provides the interactive Bubble Tea dashboard for fincast.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fincast/internal/config"
	"fincast/internal/engine"
	"fincast/internal/model"
	"fincast/internal/store"
	"fincast/internal/tui/components"
	"fincast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the store snapshot finishes loading.
type DataLoadedMsg struct {
	Snapshot store.Snapshot
	Err      error
	LoadTime time.Duration
}

// goalRow pairs a goal with its derived projection and milestone plan.
type goalRow struct {
	goal       model.Goal
	projection model.GoalProjection
	plan       model.MilestonePlan
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	snap     store.Snapshot
	cfg      config.Config
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Derived by recompute
	forecast     model.ForecastResult
	savings      model.SavingsAnalysis
	optimization model.DebtOptimizationResult
	goalRows     []goalRow

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	goalCursor int
	refreshing bool

	// Filter state
	asOf time.Time
	days int

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config, days int, asOf time.Time) App {
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	if days <= 0 {
		days = cfg.Forecast.DefaultDays
	}

	return App{
		cfg:     cfg,
		days:    days,
		asOf:    asOf,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.cfg),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	in := engine.NewForecastInput(a.cfg.General.StartingBalance, a.days, a.asOf,
		a.snap.ActiveRecurring(), a.snap.Transactions)
	a.forecast = engine.Forecast(in)
	a.savings = engine.AnalyzeSavings(a.snap.Transactions, a.asOf, a.cfg.Forecast.LookbackDays)
	a.optimization = engine.OptimizeDebts(a.snap.Debts, a.cfg.Debts.ExtraMonthly)

	a.goalRows = a.goalRows[:0]
	for _, g := range a.snap.Goals {
		a.goalRows = append(a.goalRows, goalRow{
			goal:       g,
			projection: engine.ProjectGoal(g, a.savings.MonthlyIncome, a.savings.MonthlyExpenses, a.asOf),
			plan:       engine.AdaptiveMilestones(g, a.savings, a.asOf),
		})
	}

	if a.goalCursor >= len(a.goalRows) {
		a.goalCursor = len(a.goalRows) - 1
	}
	if a.goalCursor < 0 {
		a.goalCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 3 && a.goalCursor > 0 {
				a.goalCursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 3 && a.goalCursor < len(a.goalRows)-1 {
				a.goalCursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "r":
			if !a.refreshing {
				a.refreshing = true
				return a, loadDataCmd(a.cfg)
			}
			return a, nil

		case "+", "=":
			a.days = nextHorizon(a.days, 1)
			a.recompute()
			return a, nil
		case "-":
			a.days = nextHorizon(a.days, -1)
			a.recompute()
			return a, nil

		case "j", "down":
			if a.activeTab == 3 && a.goalCursor < len(a.goalRows)-1 {
				a.goalCursor++
			}
			return a, nil
		case "k", "up":
			if a.activeTab == 3 && a.goalCursor > 0 {
				a.goalCursor--
			}
			return a, nil

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.snap = msg.Snapshot
		a.loadErr = msg.Err
		a.loaded = true
		a.refreshing = false
		a.loadTime = msg.LoadTime
		if msg.Err == nil {
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

// horizonSteps are the forecast horizons +/- cycles through.
var horizonSteps = []int{14, 30, 60, 90, 180, 365}

func nextHorizon(days, dir int) int {
	// Find the nearest step at or above days, then move.
	idx := len(horizonSteps) - 1
	for i, s := range horizonSteps {
		if days <= s {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(horizonSteps) {
		idx = len(horizonSteps) - 1
	}
	return horizonSteps[idx]
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fincast needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ fincast"))
	b.WriteString(subtitleStyle.Render(" · Financial Projections"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Loading data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o f d g", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select goal"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"+ -", "Widen / narrow horizon"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + horizon pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(fmt.Sprintf("%dd", a.days)) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(a.asOf.Format("2006-01-02")) +
		pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	dataAge := fmt.Sprintf("%.0fms", float64(a.loadTime.Microseconds())/1000)
	statusBar := components.RenderStatusBar(w, dataAge, a.refreshing)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	if a.loadErr != nil {
		content = fmt.Sprintf("\n  Could not load data: %v\n\n  Press r to retry.", a.loadErr)
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderForecastTab(cw)
		case 2:
			content = a.renderDebtsTab(cw)
		case 3:
			content = a.renderGoalsTab(cw)
		}
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd loads the store snapshot in a background command.
func loadDataCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		s, err := store.Open(config.DBPath(cfg))
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		defer func() { _ = s.Close() }()

		snap, err := s.LoadSnapshot()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		return DataLoadedMsg{Snapshot: snap, LoadTime: time.Since(start)}
	}
}

// chartDateLabels builds compact X-axis labels for a chronological balance
// series. First point and month boundaries: month abbreviation. Everything
// else: the day number.
func chartDateLabels(points []model.DailyBalancePoint) []string {
	labels := make([]string, len(points))
	prevMonth := time.Month(0)
	for i, pt := range points {
		switch {
		case i == 0 || pt.Date.Month() != prevMonth:
			labels[i] = pt.Date.Format("Jan")
		default:
			labels[i] = strconv.Itoa(pt.Date.Day())
		}
		prevMonth = pt.Date.Month()
	}
	return labels
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator " │ " is three columns between tabs.
		if i < len(components.Tabs)-1 {
			pos += 3
		}
	}
	return -1
}
