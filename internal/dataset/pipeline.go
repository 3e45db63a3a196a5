package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/janekbaraniewski/daogrowth/internal/cohort"
	"github.com/janekbaraniewski/daogrowth/internal/core"
)

// Result is the output of one pipeline run: rendered series in legend order plus the
// dates that should label the x axis.
type Result struct {
	Series    []core.Series
	TickDates []time.Time
}

// BuildActive loads every active-DAO export under dataDir. Any unreadable file aborts
// the run before a series is returned.
func BuildActive(dataDir string, sources []core.SourceSpec) (Result, error) {
	var res Result
	for _, src := range sources {
		if src.Kind != core.SourceKindCounts {
			return Result{}, fmt.Errorf("source %s: expected %s export, got %s", src.ID, core.SourceKindCounts, src.Kind)
		}
		points, err := ReadCounts(filepath.Join(dataDir, src.File), src.TimeColumn, src.ValueColumn)
		if err != nil {
			return Result{}, fmt.Errorf("source %s: %w", src.ID, err)
		}
		s := seriesFor(src, points)
		res.Series = append(res.Series, s)
		if src.ID == ActiveTickSource {
			res.TickDates = s.Times()
		}
	}
	return res, nil
}

// BuildNew loads the event exports under dataDir, buckets them per month up to end and
// turns each monthly series into a running total. Files shared by several sources are
// read once; every source filters its own view of the rows.
func BuildNew(dataDir string, sources []core.SourceSpec, end time.Time) (Result, error) {
	loaded := make(map[string][]core.Event)
	var res Result
	for _, src := range sources {
		if src.Kind != core.SourceKindEvents {
			return Result{}, fmt.Errorf("source %s: expected %s export, got %s", src.ID, core.SourceKindEvents, src.Kind)
		}
		path := filepath.Join(dataDir, src.File)
		key := path + "|" + src.TimeColumn
		events, ok := loaded[key]
		if !ok {
			var err error
			events, err = ReadEvents(path, src.TimeColumn)
			if err != nil {
				return Result{}, fmt.Errorf("source %s: %w", src.ID, err)
			}
			loaded[key] = events
		}

		dense, err := cohort.NewDAOs(events, src.Network, end)
		if err != nil {
			return Result{}, fmt.Errorf("source %s: %w", src.ID, err)
		}
		s := seriesFor(src, cohort.CumulativePoints(dense))
		res.Series = append(res.Series, s)
		if src.ID == NewTickSource {
			res.TickDates = s.Times()
		}
	}
	return res, nil
}

func seriesFor(src core.SourceSpec, points []core.Point) core.Series {
	return core.Series{
		Name:     src.Style.Label,
		Platform: src.Platform,
		Color:    src.Style.Color,
		Marker:   src.Style.Marker,
		Points:   points,
	}
}
