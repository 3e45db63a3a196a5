package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/janekbaraniewski/daogrowth/internal/core"
	"github.com/janekbaraniewski/daogrowth/internal/parsers"
)

var ErrMissingColumn = errors.New("missing column")

const networkColumn = "network"

// eventRow is the raw shape of an event export before normalisation.
type eventRow struct {
	Timestamp string
	Network   string
}

// countRow is the raw shape of a pre-aggregated export.
type countRow struct {
	Date  string
	Count string
}

type table struct {
	path   string
	header map[string]int
	rows   [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := parseTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t.path = path
	return t, nil
}

func parseTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file, expected a header row")
		}
		return nil, err
	}

	header := make(map[string]int, len(first))
	for i, name := range first {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return &table{header: header, rows: rows}, nil
}

func (t *table) column(name string) (int, error) {
	idx, ok := t.header[name]
	if !ok {
		return 0, fmt.Errorf("%w %q in %s", ErrMissingColumn, name, t.path)
	}
	return idx, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ReadEvents loads an event export. timeColumn names the creation timestamp column;
// the network column is optional and left empty when absent.
func ReadEvents(path, timeColumn string) ([]core.Event, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return t.events(timeColumn)
}

func (t *table) events(timeColumn string) ([]core.Event, error) {
	timeIdx, err := t.column(timeColumn)
	if err != nil {
		return nil, err
	}
	netIdx := -1
	if idx, ok := t.header[networkColumn]; ok {
		netIdx = idx
	}

	events := make([]core.Event, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		raw := eventRow{Timestamp: cell(row, timeIdx), Network: cell(row, netIdx)}
		ev, err := raw.normalize()
		if err != nil {
			// header is line 1
			return nil, fmt.Errorf("%s line %d column %q: %w", t.path, i+2, timeColumn, err)
		}
		events = append(events, ev)
	}
	log.Printf("[dataset] %s: %d events", t.path, len(events))
	return events, nil
}

func (r eventRow) normalize() (core.Event, error) {
	ts, err := parsers.ParseInstant(r.Timestamp)
	if err != nil {
		return core.Event{}, err
	}
	return core.Event{Time: ts, Network: r.Network}, nil
}

// ReadCounts loads a pre-aggregated export as chart points sorted by time.
func ReadCounts(path, timeColumn, valueColumn string) ([]core.Point, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return t.points(timeColumn, valueColumn)
}

func (t *table) points(timeColumn, valueColumn string) ([]core.Point, error) {
	timeIdx, err := t.column(timeColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := t.column(valueColumn)
	if err != nil {
		return nil, err
	}

	points := make([]core.Point, 0, len(t.rows))
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		raw := countRow{Date: cell(row, timeIdx), Count: cell(row, valueIdx)}
		p, err := raw.normalize()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", t.path, i+2, err)
		}
		points = append(points, p)
	}
	sortPoints(points)
	first, last := span(points)
	log.Printf("[dataset] %s: %d points (%s..%s)", t.path, len(points),
		first.Format("2006-01-02"), last.Format("2006-01-02"))
	return points, nil
}

func (r countRow) normalize() (core.Point, error) {
	ts, err := parsers.ParseInstant(r.Date)
	if err != nil {
		return core.Point{}, err
	}
	v := parsers.ParseFloat(r.Count)
	if v == nil {
		return core.Point{}, fmt.Errorf("invalid count %q", r.Count)
	}
	if *v < 0 {
		return core.Point{}, fmt.Errorf("negative count %q", r.Count)
	}
	return core.Point{Time: ts, Value: *v}, nil
}

func sortPoints(points []core.Point) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
}

// span returns the earliest and latest instant of a sorted point slice.
func span(points []core.Point) (time.Time, time.Time) {
	if len(points) == 0 {
		return time.Time{}, time.Time{}
	}
	return points[0].Time, points[len(points)-1].Time
}
