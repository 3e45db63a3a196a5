// Package chart turns finished series into terminal or PNG line charts.
//
// Styling lives in Layout values. ApplyLayout merges options into a Spec and returns a
// new Spec; nothing in this package keeps figure state between calls.
package chart

import (
	"math"
	"time"

	"github.com/janekbaraniewski/daogrowth/internal/core"
)

// DateFormat renders month ticks as "Jan, 2021".
const DateFormat = "Jan, 2006"

type AxisLayout struct {
	TickFormat   string
	TickAngle    float64
	TickValues   []time.Time
	TickLen      int
	TickWidth    float64
	TickFontSize float64
	LineWidth    float64
	LineColor    string
	GridColor    string // empty hides the grid
	GridWidth    float64
	Tick0        float64
	DTick        float64
}

type LegendLayout struct {
	Orientation string // "h" or "v"
	X, Y        float64
}

type Layout struct {
	XAxis      AxisLayout
	YAxis      AxisLayout
	Background string
	Legend     LegendLayout
}

type Spec struct {
	Title  string
	Series []core.Series
	Layout Layout
}

// DefaultLayout is the shared axis styling of both DAO charts. yStep sets the spacing of
// the horizontal grid lines and tickDates the labelled x positions.
func DefaultLayout(tickDates []time.Time, yStep float64, yFontSize float64) Layout {
	return Layout{
		XAxis: AxisLayout{
			TickFormat:   DateFormat,
			TickAngle:    45,
			TickValues:   tickDates,
			TickLen:      5,
			TickWidth:    2,
			TickFontSize: 14,
			LineWidth:    2,
			LineColor:    "#000000",
		},
		YAxis: AxisLayout{
			TickLen:      5,
			TickWidth:    2,
			TickFontSize: yFontSize,
			LineWidth:    2,
			LineColor:    "#000000",
			GridColor:    "#B0BEC5",
			GridWidth:    0.5,
			Tick0:        0,
			DTick:        yStep,
		},
		Background: "#FFFFFF",
		Legend:     LegendLayout{Orientation: "h", X: 0, Y: 1.2},
	}
}

// ApplyLayout returns a copy of spec with every non-zero field of opts merged over its
// layout. The input spec is left untouched.
func ApplyLayout(spec Spec, opts Layout) Spec {
	out := spec
	out.Series = append([]core.Series(nil), spec.Series...)
	out.Layout = Layout{
		XAxis:      mergeAxis(spec.Layout.XAxis, opts.XAxis),
		YAxis:      mergeAxis(spec.Layout.YAxis, opts.YAxis),
		Background: pick(spec.Layout.Background, opts.Background),
		Legend:     spec.Layout.Legend,
	}
	if opts.Legend.Orientation != "" {
		out.Layout.Legend = opts.Legend
	}
	return out
}

func mergeAxis(base, over AxisLayout) AxisLayout {
	out := base
	out.TickFormat = pick(base.TickFormat, over.TickFormat)
	out.LineColor = pick(base.LineColor, over.LineColor)
	out.GridColor = pick(base.GridColor, over.GridColor)
	out.TickAngle = pickNum(base.TickAngle, over.TickAngle)
	out.TickWidth = pickNum(base.TickWidth, over.TickWidth)
	out.TickFontSize = pickNum(base.TickFontSize, over.TickFontSize)
	out.LineWidth = pickNum(base.LineWidth, over.LineWidth)
	out.GridWidth = pickNum(base.GridWidth, over.GridWidth)
	out.Tick0 = pickNum(base.Tick0, over.Tick0)
	out.DTick = pickNum(base.DTick, over.DTick)
	if over.TickLen != 0 {
		out.TickLen = over.TickLen
	}
	if len(over.TickValues) > 0 {
		out.TickValues = append([]time.Time(nil), over.TickValues...)
	} else if len(base.TickValues) > 0 {
		out.TickValues = append([]time.Time(nil), base.TickValues...)
	}
	return out
}

func pick(base, over string) string {
	if over != "" {
		return over
	}
	return base
}

func pickNum(base, over float64) float64 {
	if over != 0 {
		return over
	}
	return base
}

// bounds returns the time span and the largest value over all series.
func bounds(series []core.Series) (minT, maxT time.Time, maxY float64, ok bool) {
	for _, s := range series {
		for _, p := range s.Points {
			if !ok || p.Time.Before(minT) {
				minT = p.Time
			}
			if !ok || p.Time.After(maxT) {
				maxT = p.Time
			}
			if !ok || p.Value > maxY {
				maxY = p.Value
			}
			ok = true
		}
	}
	return minT, maxT, maxY, ok
}

const maxYTicks = 20

// yTicks lays out the horizontal grid from tick0 in steps of dtick, widening the step
// until at most maxYTicks lines are needed to cover maxY.
func yTicks(axis AxisLayout, maxY float64) []float64 {
	step := axis.DTick
	if step <= 0 {
		step = niceStep(maxY - axis.Tick0)
	}
	for (maxY-axis.Tick0)/step > maxYTicks {
		step *= 2
	}
	top := axis.Tick0 + math.Ceil((maxY-axis.Tick0)/step)*step
	if top <= axis.Tick0 {
		top = axis.Tick0 + step
	}
	var ticks []float64
	for v := axis.Tick0; v <= top+step/2; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 10
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}
