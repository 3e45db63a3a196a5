package parsers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrUnparseableTime = errors.New("unparseable timestamp")

// epoch values above this are treated as milliseconds (year 33658 in seconds)
const epochMillisThreshold = 1_000_000_000_000

// last second of 9999-12-31 UTC; exports never carry later or pre-1970 creation times
const maxEpochSeconds = 253_402_300_799

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

func ParseFloat(val string) *float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseInstant converts an exported timestamp cell into an absolute UTC instant.
// Integer and float epoch seconds, epoch milliseconds and ISO 8601 dates are accepted;
// timezone-less ISO values are read as UTC.
func ParseInstant(val string) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseableTime)
	}

	if f, err := strconv.ParseFloat(val, 64); err == nil {
		t, ok := fromEpoch(f)
		if !ok {
			return time.Time{}, fmt.Errorf("%w: epoch %q out of range", ErrUnparseableTime, val)
		}
		return t, nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, val, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, val)
}

// fromEpoch reports false for NaN, infinities and instants outside 1970..9999.
func fromEpoch(v float64) (time.Time, bool) {
	if math.IsNaN(v) || v < 0 || v > maxEpochSeconds*1000+999 {
		return time.Time{}, false
	}
	if v >= epochMillisThreshold {
		return time.UnixMilli(int64(v)).UTC(), true
	}
	if v > maxEpochSeconds {
		return time.Time{}, false
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
}
