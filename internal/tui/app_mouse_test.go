package tui

import (
	"testing"

	"fincast/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space in the tab bar

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos += 3 // separator
			}
		}
	}
}

func TestTabAtXOutsideBar(t *testing.T) {
	a := App{}
	if got := a.tabAtX(0); got != -1 {
		t.Errorf("tabAtX(0) = %d, want -1", got)
	}
	if got := a.tabAtX(500); got != -1 {
		t.Errorf("tabAtX(500) = %d, want -1", got)
	}
}

func TestNextHorizon(t *testing.T) {
	tests := []struct {
		days, dir, want int
	}{
		{90, 1, 180},
		{90, -1, 60},
		{14, -1, 14},
		{365, 1, 365},
		{45, 1, 90},
		{45, -1, 30},
	}
	for _, tt := range tests {
		if got := nextHorizon(tt.days, tt.dir); got != tt.want {
			t.Errorf("nextHorizon(%d, %d) = %d, want %d", tt.days, tt.dir, got, tt.want)
		}
	}
}
