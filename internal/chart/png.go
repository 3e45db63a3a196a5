package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderPNG writes spec as a PNG image. It is only used for explicit exports; the
// interactive path renders to the terminal.
func RenderPNG(spec Spec, w io.Writer, width, height int) error {
	minT, maxT, maxY, ok := bounds(spec.Series)
	if !ok {
		return fmt.Errorf("rendering %q: no data points", spec.Title)
	}
	if !maxT.After(minT) {
		maxT = minT.AddDate(0, 1, 0)
	}

	series := make([]gochart.Series, 0, len(spec.Series))
	for _, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		col := hexColor(s.Color, drawing.ColorBlack)
		series = append(series, gochart.TimeSeries{
			Name:    s.Name,
			XValues: s.Times(),
			YValues: s.Values(),
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    3.5,
			},
		})
	}

	x := spec.Layout.XAxis
	y := spec.Layout.YAxis
	format := x.TickFormat
	if format == "" {
		format = DateFormat
	}

	xTicks := make([]gochart.Tick, 0, len(x.TickValues))
	for _, t := range x.TickValues {
		xTicks = append(xTicks, gochart.Tick{Value: gochart.TimeToFloat64(t), Label: t.UTC().Format(format)})
	}

	values := yTicks(y, maxY)
	yTickMarks := make([]gochart.Tick, 0, len(values))
	for _, v := range values {
		yTickMarks = append(yTickMarks, gochart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}

	ch := gochart.Chart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			FillColor: hexColor(spec.Layout.Background, drawing.ColorWhite),
			Padding:   gochart.Box{Top: 80, Left: 20, Right: 20, Bottom: 40},
		},
		Canvas: gochart.Style{FillColor: hexColor(spec.Layout.Background, drawing.ColorWhite)},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat(format),
			Ticks:          xTicks,
			Range:          &gochart.ContinuousRange{Min: gochart.TimeToFloat64(minT), Max: gochart.TimeToFloat64(maxT)},
			TickStyle: gochart.Style{
				TextRotationDegrees: x.TickAngle,
				FontSize:            x.TickFontSize,
			},
			Style: gochart.Style{
				StrokeColor: hexColor(x.LineColor, drawing.ColorBlack),
				StrokeWidth: x.LineWidth,
			},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: values[0], Max: values[len(values)-1]},
			Ticks: yTickMarks,
			Style: gochart.Style{
				StrokeColor: hexColor(y.LineColor, drawing.ColorBlack),
				StrokeWidth: y.LineWidth,
				FontSize:    y.TickFontSize,
			},
			GridMajorStyle: gochart.Style{
				Hidden:      y.GridColor == "",
				StrokeColor: hexColor(y.GridColor, drawing.ColorBlack),
				StrokeWidth: y.GridWidth,
			},
		},
		Series: series,
	}
	if spec.Layout.Legend.Orientation == "v" {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	} else {
		ch.Elements = []gochart.Renderable{gochart.LegendThin(&ch)}
	}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering %q: %w", spec.Title, err)
	}
	return nil
}

func hexColor(hex string, fallback drawing.Color) drawing.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return fallback
	}
	return drawing.ColorFromHex(hex)
}
