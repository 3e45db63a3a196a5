// Package cohort turns DAO creation events into dense monthly series.
//
// The pipeline is Bucket → Densify → Total. Every step is a pure function of its
// arguments; the month that closes a series is always passed in by the caller.
package cohort

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/janekbaraniewski/daogrowth/internal/core"
	"github.com/samber/lo"
)

var (
	// ErrNoEvents is returned when there is nothing to anchor a month range on.
	ErrNoEvents = errors.New("no events to build a monthly series from")
	// ErrEndBeforeStart is returned when the end month precedes every observed month.
	ErrEndBeforeStart = errors.New("end month is before the first observed month")
)

// Bucket counts events per calendar month. An empty network keeps every event.
// The result is sorted by month and holds only months with at least one event.
func Bucket(events []core.Event, network string) []core.Bucket {
	filtered := events
	if network != "" {
		filtered = lo.Filter(events, func(e core.Event, _ int) bool {
			return e.Network == network
		})
	}
	if len(filtered) == 0 {
		return nil
	}

	counts := lo.CountValuesBy(filtered, func(e core.Event) int64 {
		return core.MonthStart(e.Time).Unix()
	})
	months := lo.Keys(counts)
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	return lo.Map(months, func(m int64, _ int) core.Bucket {
		return core.Bucket{Month: time.Unix(m, 0).UTC(), Count: counts[m]}
	})
}

// Densify expands a sparse bucket sequence into one bucket per month, from the
// earliest bucket through end inclusive. Missing months get a zero count.
func Densify(buckets []core.Bucket, end time.Time) ([]core.Bucket, error) {
	if len(buckets) == 0 {
		return nil, ErrNoEvents
	}
	end = core.MonthStart(end)

	start := lo.MinBy(buckets, func(a, b core.Bucket) bool { return a.Month.Before(b.Month) }).Month
	start = core.MonthStart(start)
	if start.After(end) {
		return nil, fmt.Errorf("%w: first month %s, end %s", ErrEndBeforeStart,
			start.Format("2006-01"), end.Format("2006-01"))
	}

	synthetic := lo.Map(core.MonthRange(start, end), func(m time.Time, _ int) core.Bucket {
		return core.Bucket{Month: m}
	})

	// real rows first so they survive deduplication
	merged := make([]core.Bucket, 0, len(buckets)+len(synthetic))
	for _, b := range buckets {
		b.Month = core.MonthStart(b.Month)
		if b.Month.After(end) {
			continue
		}
		merged = append(merged, b)
	}
	merged = append(merged, synthetic...)
	merged = lo.UniqBy(merged, func(b core.Bucket) int64 { return b.Month.Unix() })

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Month.Before(merged[j].Month) })
	return merged, nil
}

// NewDAOs buckets events for one network and densifies them up to end.
func NewDAOs(events []core.Event, network string, end time.Time) ([]core.Bucket, error) {
	buckets := Bucket(events, network)
	dense, err := Densify(buckets, end)
	if err != nil {
		if network == "" {
			return nil, fmt.Errorf("densifying all networks: %w", err)
		}
		return nil, fmt.Errorf("densifying network %q: %w", network, err)
	}
	log.Printf("[cohort] network=%q events=%d months=%d (%s..%s)", network,
		lo.SumBy(buckets, func(b core.Bucket) int { return b.Count }), len(dense),
		dense[0].Month.Format("2006-01"), dense[len(dense)-1].Month.Format("2006-01"))
	return dense, nil
}

// Total returns the running sum of counts.
func Total(counts []int) []int {
	if len(counts) == 0 {
		return []int{}
	}
	total := make([]int, len(counts))
	total[0] = counts[0]
	for i := 1; i < len(counts); i++ {
		total[i] = total[i-1] + counts[i]
	}
	return total
}

func Counts(buckets []core.Bucket) []int {
	return lo.Map(buckets, func(b core.Bucket, _ int) int { return b.Count })
}

// CumulativePoints converts dense buckets into chart points holding the running total.
func CumulativePoints(buckets []core.Bucket) []core.Point {
	totals := Total(Counts(buckets))
	return lo.Map(buckets, func(b core.Bucket, i int) core.Point {
		return core.Point{Time: b.Month, Value: float64(totals[i])}
	})
}
