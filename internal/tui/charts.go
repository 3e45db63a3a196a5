package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/daogrowth/internal/chart"
	"github.com/janekbaraniewski/daogrowth/internal/core"
	"github.com/samber/lo"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline draws values as one block glyph per column, scaled between the series
// minimum and maximum. Series longer than w keep the last value of each column so a
// running total still ends on its final figure.
func RenderSparkline(values []float64, w int, color lipgloss.Color) string {
	if len(values) == 0 || w < 1 {
		return ""
	}
	values = lastPerColumn(values, w)

	minV, maxV := lo.Min(values), lo.Max(values)
	span := maxV - minV
	top := len(sparkBlocks) - 1

	glyphs := lo.Map(values, func(v float64, _ int) rune {
		if span == 0 {
			return sparkBlocks[0]
		}
		return sparkBlocks[int((v-minV)/span*float64(top))]
	})
	return lipgloss.NewStyle().Foreground(color).Render(string(glyphs))
}

func lastPerColumn(values []float64, w int) []float64 {
	n := len(values)
	if n <= w {
		return values
	}
	return lo.Times(w, func(i int) float64 {
		return values[(i+1)*n/w-1]
	})
}

// renderSummary lists each series with its latest value and a sparkline of its history,
// grouped under a header per platform in first-seen order.
func renderSummary(series []core.Series, w int) string {
	if len(series) == 0 {
		return dimStyle.Render("  No data available")
	}

	labelW := lo.Max(lo.Map(series, func(s core.Series, _ int) int { return lipgloss.Width(s.Name) }))
	labelW = min(labelW, max(w/3, 8))
	sparkW := max(w-labelW-18, 4)

	byPlatform := lo.GroupBy(series, func(s core.Series) string { return s.Platform })
	platforms := lo.Uniq(lo.Map(series, func(s core.Series, _ int) string { return s.Platform }))

	var lines []string
	for _, platform := range platforms {
		if platform != "" {
			lines = append(lines, truncateLine(helpKeyStyle.Render(" "+platform), w))
		}
		for _, s := range byPlatform[platform] {
			lines = append(lines, truncateLine(summaryLine(s, labelW, sparkW), w))
		}
	}
	return strings.Join(lines, "\n")
}

func summaryLine(s core.Series, labelW, sparkW int) string {
	color := lipgloss.Color(s.Color)
	glyph := lipgloss.NewStyle().Foreground(color).Render(chart.MarkerGlyph(s.Marker))
	label := valueStyle.Width(labelW).Render(truncateLine(s.Name, labelW))

	latest := "-"
	if n := len(s.Points); n > 0 {
		latest = fmt.Sprintf("%.0f", s.Points[n-1].Value)
	}
	return fmt.Sprintf("   %s %s %8s  %s", glyph, label, latest, RenderSparkline(s.Values(), sparkW, color))
}
