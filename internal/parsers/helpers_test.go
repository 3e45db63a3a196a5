package parsers

import (
	"errors"
	"testing"
	"time"
)

func TestParseFloat(t *testing.T) {
	if got := ParseFloat(" 42 "); got == nil || *got != 42 {
		t.Errorf("ParseFloat(\" 42 \") = %v, want 42", got)
	}
	if got := ParseFloat(""); got != nil {
		t.Errorf("ParseFloat(\"\") = %v, want nil", *got)
	}
	if got := ParseFloat("abc"); got != nil {
		t.Errorf("ParseFloat(\"abc\") = %v, want nil", *got)
	}
}

func TestParseInstant(t *testing.T) {
	want := time.Date(2021, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"epoch seconds", "1610712000", want},
		{"epoch seconds float", "1610712000.0", want},
		{"epoch millis", "1610712000000", want},
		{"rfc3339", "2021-01-15T12:00:00Z", want},
		{"rfc3339 offset", "2021-01-15T13:00:00+01:00", want},
		{"iso no zone", "2021-01-15T12:00:00", want},
		{"space separated", "2021-01-15 12:00:00", want},
		{"date only", "2021-01-15", time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"padded", "  1610712000 ", want},
		{"unix zero", "0", time.Unix(0, 0).UTC()},
		{"last second of 9999", "253402300799", time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.in)
			if err != nil {
				t.Fatalf("ParseInstant(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseInstant(%q) location = %v, want UTC", tt.in, got.Location())
			}
		})
	}
}

func TestParseInstantRejects(t *testing.T) {
	for _, in := range []string{
		"", "   ", "yesterday", "15/01/2021", "NaN", "Inf", "-Inf",
		"1e300", "-9000000000000000000", "9223372036854775807", "-1",
		"253402300800",    // first second of year 10000
		"999999999999",    // seconds beyond year 9999, below the millis threshold
		"253402300800000", // millis beyond year 9999
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseInstant(in)
			if !errors.Is(err, ErrUnparseableTime) {
				t.Errorf("ParseInstant(%q) err = %v, want ErrUnparseableTime", in, err)
			}
		})
	}
}
