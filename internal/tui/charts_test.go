package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/daogrowth/internal/core"
)

func TestRenderSparkline(t *testing.T) {
	got := ansi.Strip(RenderSparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 20, colorText))
	if got != "▁▂▃▄▅▆▇█" {
		t.Errorf("sparkline = %q", got)
	}

	sampled := ansi.Strip(RenderSparkline(make([]float64, 100), 10, colorText))
	if n := len([]rune(sampled)); n != 10 {
		t.Errorf("sampled width = %d, want 10", n)
	}

	if RenderSparkline(nil, 10, colorText) != "" {
		t.Error("empty values should render nothing")
	}
}

func TestRenderSummary(t *testing.T) {
	series := testTabs()[0].Spec.Series
	out := renderSummary(series, 60)
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Aragon") || !strings.Contains(plain, "4") {
		t.Errorf("summary = %q", plain)
	}
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 60 {
			t.Errorf("summary line too wide: %q", ansi.Strip(line))
		}
	}
}

func TestRenderSparklineKeepsLastValuePerColumn(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		w      int
		want   string
	}{
		{"fits", []float64{0, 7}, 5, "▁█"},
		{"flat", []float64{3, 3, 3}, 5, "▁▁▁"},
		{"running total ends high", []float64{0, 0, 0, 1, 1, 7}, 3, "▁▂█"},
		{"zero width", []float64{1, 2}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(RenderSparkline(tt.values, tt.w, colorText)); got != tt.want {
				t.Errorf("RenderSparkline(%v, %d) = %q, want %q", tt.values, tt.w, got, tt.want)
			}
		})
	}
}

func TestRenderSummaryGroupsByPlatform(t *testing.T) {
	pts := []core.Point{{Value: 1}, {Value: 2}}
	series := []core.Series{
		{Name: "DAOhaus (only mainnet)", Platform: "DAOhaus", Points: pts},
		{Name: "Aragon (only mainnet)", Platform: "Aragon", Points: pts},
		{Name: "DAOhaus", Platform: "DAOhaus", Points: pts},
	}
	lines := strings.Split(ansi.Strip(renderSummary(series, 80)), "\n")

	want := []string{"DAOhaus", "DAOhaus (only mainnet)", "DAOhaus", "Aragon", "Aragon (only mainnet)"}
	if len(lines) != len(want) {
		t.Fatalf("summary has %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i, w := range want {
		if !strings.Contains(lines[i], w) {
			t.Errorf("line %d = %q, want it to mention %q", i, lines[i], w)
		}
	}
	if strings.TrimSpace(lines[0]) != "DAOhaus" || strings.TrimSpace(lines[3]) != "Aragon" {
		t.Errorf("platform headers = %q, %q", lines[0], lines[3])
	}
}
