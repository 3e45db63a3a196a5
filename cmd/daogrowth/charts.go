package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/janekbaraniewski/daogrowth/internal/chart"
	"github.com/janekbaraniewski/daogrowth/internal/config"
	"github.com/janekbaraniewski/daogrowth/internal/core"
	"github.com/janekbaraniewski/daogrowth/internal/dataset"
	"github.com/janekbaraniewski/daogrowth/internal/tui"
	"github.com/jonboulle/clockwork"
)

type chartKind string

const (
	chartActive chartKind = "active"
	chartNew    chartKind = "new"
)

type runOptions struct {
	cfg     config.Config
	clock   clockwork.Clock
	out     io.Writer
	dataDir string
	pngPath string
	plain   bool
}

func (o *runOptions) run(kinds ...chartKind) error {
	tabs, err := o.buildTabs(kinds)
	if err != nil {
		return err
	}

	switch {
	case o.pngPath != "":
		return o.exportPNG(tabs)
	case o.plain:
		for _, tab := range tabs {
			fmt.Fprintln(o.out, chart.RenderTerminal(tab.Spec, o.cfg.Chart.Width, o.cfg.Chart.Height))
			fmt.Fprintln(o.out)
		}
		return nil
	default:
		return tui.Run(tabs)
	}
}

// buildTabs computes every requested chart before anything is shown, so a bad input
// file aborts the run without partial output.
func (o *runOptions) buildTabs(kinds []chartKind) ([]tui.Tab, error) {
	dataDir := o.cfg.DataDir
	if o.dataDir != "" {
		dataDir = o.dataDir
	}
	// the only place the wall clock is read
	end := core.MonthStart(o.clock.Now())
	log.Printf("[daogrowth] data dir %s, end month %s", dataDir, end.Format("2006-01"))

	tabs := make([]tui.Tab, 0, len(kinds))
	for _, kind := range kinds {
		var (
			res    dataset.Result
			err    error
			title  string
			desc   string
			series config.SeriesConfig
		)
		switch kind {
		case chartActive:
			res, err = dataset.BuildActive(dataDir, dataset.ActiveSources())
			title, desc, series = "Active DAOs", "cumulative active DAOs per platform", o.cfg.Active
		case chartNew:
			res, err = dataset.BuildNew(dataDir, dataset.NewSources(), end)
			title, desc, series = "New DAOs", "running total of DAOs created per month", o.cfg.New
		default:
			return nil, fmt.Errorf("unknown chart %q", kind)
		}
		if err != nil {
			return nil, fmt.Errorf("building %s chart: %w", kind, err)
		}

		spec := chart.Spec{Title: title, Series: res.Series}
		spec = chart.ApplyLayout(spec, chart.DefaultLayout(res.TickDates, series.YStep, series.TickFontSize))
		spec = chart.ApplyLayout(spec, chart.Layout{XAxis: chart.AxisLayout{TickFormat: o.cfg.Chart.DateFormat}})
		tabs = append(tabs, tui.Tab{Name: title, Description: desc, Spec: spec})
	}
	return tabs, nil
}

func (o *runOptions) exportPNG(tabs []tui.Tab) error {
	for _, tab := range tabs {
		path := o.pngPath
		if len(tabs) > 1 {
			path = suffixedPath(o.pngPath, tab.Name)
		}
		if err := writePNG(path, tab.Spec, o.cfg.Export); err != nil {
			return err
		}
		fmt.Fprintf(o.out, "wrote %s\n", path)
	}
	return nil
}

func writePNG(path string, spec chart.Spec, size config.ExportConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := chart.RenderPNG(spec, f, size.Width, size.Height); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// suffixedPath turns "out/daos.png" + "New DAOs" into "out/daos-new-daos.png".
func suffixedPath(path, name string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".png"
	}
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return strings.TrimSuffix(path, filepath.Ext(path)) + "-" + slug + ext
}
