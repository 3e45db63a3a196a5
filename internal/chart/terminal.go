package chart

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/daogrowth/internal/core"
	"github.com/samber/lo"
)

var markerGlyphs = map[string]string{
	"circle":            "●",
	"circle-open":       "○",
	"diamond-tall":      "◆",
	"diamond-tall-open": "◇",
	"x":                 "✖",
	"x-open":            "×",
}

// MarkerGlyph maps a marker symbol name to the glyph drawn in the terminal legend.
func MarkerGlyph(marker string) string {
	if g, ok := markerGlyphs[marker]; ok {
		return g
	}
	return "■"
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
)

const (
	minWidth  = 20
	minHeight = 6
)

// RenderTerminal draws spec as a braille line chart with the title and legend above the
// plot. Width and height are clamped to a usable minimum.
func RenderTerminal(spec Spec, width, height int) string {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}

	var sections []string
	if spec.Title != "" {
		sections = append(sections, titleStyle.Render(ansi.Truncate(spec.Title, width, "…")))
	}
	legend := RenderLegend(spec.Series, spec.Layout.Legend, width)
	if legend != "" {
		sections = append(sections, legend)
	}

	plotH := height - lipgloss.Height(strings.Join(sections, "\n"))
	if plotH < minHeight {
		plotH = minHeight
	}
	sections = append(sections, renderPlot(spec, width, plotH))
	return strings.Join(sections, "\n")
}

func renderPlot(spec Spec, width, height int) string {
	minT, maxT, maxY, ok := bounds(spec.Series)
	if !ok {
		return labelStyle.Render("  No data available")
	}
	if !maxT.After(minT) {
		maxT = minT.AddDate(0, 1, 0)
	}

	ticks := yTicks(spec.Layout.YAxis, maxY)
	xSteps := xStepCount(spec.Layout.XAxis, width)

	lc := timeserieslinechart.New(width, height,
		timeserieslinechart.WithTimeRange(minT, maxT),
		timeserieslinechart.WithYRange(ticks[0], ticks[len(ticks)-1]),
		timeserieslinechart.WithXYSteps(xSteps, 2),
		timeserieslinechart.WithXLabelFormatter(monthLabelFormatter(spec.Layout.XAxis.TickFormat)),
		timeserieslinechart.WithAxesStyles(axisStyle, labelStyle),
	)
	for _, s := range spec.Series {
		lc.SetDataSetStyle(s.Name, lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)))
		for _, p := range s.Points {
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{Time: p.Time, Value: p.Value})
		}
	}
	lc.DrawBrailleAll()
	return lc.View()
}

// xStepCount spreads x labels so that each label has room for the date format.
func xStepCount(axis AxisLayout, width int) int {
	format := axis.TickFormat
	if format == "" {
		format = DateFormat
	}
	labelW := len(format) + 2
	steps := width / labelW
	if n := len(axis.TickValues); n > 0 && n < steps {
		steps = n
	}
	return max(steps, 1)
}

func monthLabelFormatter(format string) linechart.LabelFormatter {
	if format == "" {
		format = DateFormat
	}
	return func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format(format)
	}
}

// RenderLegend lays the series labels out horizontally, wrapping at width. A vertical
// orientation puts one entry per line.
func RenderLegend(series []core.Series, layout LegendLayout, width int) string {
	if len(series) == 0 {
		return ""
	}
	items := lo.Map(series, func(s core.Series, _ int) string {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(MarkerGlyph(s.Marker))
		return glyph + " " + labelStyle.Render(ansi.Truncate(s.Name, max(width-2, 1), "…"))
	})
	if layout.Orientation == "v" {
		return strings.Join(items, "\n")
	}

	var lines []string
	var line string
	for _, item := range items {
		switch {
		case line == "":
			line = item
		case lipgloss.Width(line)+3+lipgloss.Width(item) <= width:
			line += "   " + item
		default:
			lines = append(lines, line)
			line = item
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
