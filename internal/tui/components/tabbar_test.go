package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabVisualWidth(t *testing.T) {
	for i, tab := range Tabs {
		want := len(tab.Name) + 2
		if got := TabVisualWidth(tab, true); got != want {
			t.Errorf("active %s width = %d, want %d", tab.Name, got, want)
		}
		if tab.KeyPos < 0 {
			want += 3
		}
		if got := TabVisualWidth(tab, false); got != want {
			t.Errorf("inactive %s (tab %d) width = %d, want %d", tab.Name, i, got, want)
		}
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(TabSummary, 100)
	if got := lipgloss.Width(bar); got != 100 {
		t.Errorf("tab bar width = %d, want 100", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey("x"); got != TabSettings {
		t.Errorf("TabIdxByKey(x) = %d", got)
	}
	if got := TabIdxByKey("z"); got != -1 {
		t.Errorf("TabIdxByKey(z) = %d", got)
	}
}

func TestShareBarClampsPct(t *testing.T) {
	over := ShareBar("Tim", 1.7, "Rp 1", "#ffffff", 10, 20)
	full := ShareBar("Tim", 1, "Rp 1", "#ffffff", 10, 20)
	if over != full {
		t.Error("pct above 1 should render as 100%")
	}
}

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(80, "[?] help  [q] quit", Flash{Text: "Saved"})
	if got := lipgloss.Width(bar); got != 80 {
		t.Errorf("status bar width = %d, want 80", got)
	}
}
