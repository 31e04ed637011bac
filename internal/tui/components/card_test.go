package components

import (
	"strings"
	"testing"

	"fincast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 3},
		{80, 2},
		{7, 3},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) len = %d, want %d", tt.total, tt.n, len(widths), tt.n)
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sum = %d, want %d", tt.total, tt.n, sum, tt.total)
		}
	}
}

func TestLayoutRowZero(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestSparklineRange(t *testing.T) {
	theme.SetActive("flexoki-dark")

	if got := Sparkline(nil, theme.Active.Blue); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}

	// Negative-to-positive series still renders one block per value,
	// lowest value gets the smallest block, highest the tallest.
	s := Sparkline([]float64{-100, 0, 100}, theme.Active.Blue)
	if !strings.Contains(s, "▁") || !strings.Contains(s, "█") {
		t.Errorf("Sparkline(-100..100) = %q, want lowest and tallest blocks", s)
	}
}

func TestGoalBarClamps(t *testing.T) {
	theme.SetActive("flexoki-dark")

	over := GoalBar(1.5, 10)
	if !strings.Contains(over, "150%") {
		t.Errorf("GoalBar(1.5) should render 150%% label, got %q", over)
	}
	if strings.Contains(over, "░") {
		t.Errorf("GoalBar(1.5) bar should be fully filled, got %q", over)
	}

	under := GoalBar(-0.2, 10)
	if strings.Contains(under, "█") {
		t.Errorf("GoalBar(-0.2) bar should be empty, got %q", under)
	}
}

func TestFormatMonthsLeft(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "paid"},
		{-1, "paid"},
		{5, "5m"},
		{12, "1y 0m"},
		{26, "2y 2m"},
	}
	for _, tt := range tests {
		if got := formatMonthsLeft(tt.months); got != tt.want {
			t.Errorf("formatMonthsLeft(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
