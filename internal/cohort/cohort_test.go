package cohort

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/janekbaraniewski/daogrowth/internal/core"
)

const networkXDai = "xdai"

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func scenarioEvents() []core.Event {
	return []core.Event{
		{Time: day(2021, time.January, 15), Network: core.NetworkMainnet},
		{Time: day(2021, time.January, 20), Network: core.NetworkMainnet},
		{Time: day(2021, time.March, 3), Network: core.NetworkMainnet},
	}
}

func TestBucket_Scenario(t *testing.T) {
	got := Bucket(scenarioEvents(), core.NetworkMainnet)
	want := []core.Bucket{
		{Month: month(2021, time.January), Count: 2},
		{Month: month(2021, time.March), Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bucket() = %+v, want %+v", got, want)
	}
}

func TestBucket_FilterByNetwork(t *testing.T) {
	events := []core.Event{
		{Time: day(2020, time.May, 1), Network: core.NetworkMainnet},
		{Time: day(2020, time.May, 2), Network: networkXDai},
		{Time: day(2020, time.June, 9), Network: networkXDai},
		{Time: day(2020, time.April, 30), Network: ""},
	}

	tests := []struct {
		network string
		want    []core.Bucket
	}{
		{core.NetworkMainnet, []core.Bucket{{Month: month(2020, time.May), Count: 1}}},
		{networkXDai, []core.Bucket{
			{Month: month(2020, time.May), Count: 1},
			{Month: month(2020, time.June), Count: 1},
		}},
		{"", []core.Bucket{
			{Month: month(2020, time.April), Count: 1},
			{Month: month(2020, time.May), Count: 2},
			{Month: month(2020, time.June), Count: 1},
		}},
		{"ropsten", nil},
	}
	for _, tt := range tests {
		t.Run("network="+tt.network, func(t *testing.T) {
			got := Bucket(events, tt.network)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bucket(%q) = %+v, want %+v", tt.network, got, tt.want)
			}
		})
	}
}

func TestBucket_DoesNotMutateInput(t *testing.T) {
	events := []core.Event{
		{Time: day(2020, time.May, 1), Network: networkXDai},
		{Time: day(2020, time.May, 2), Network: core.NetworkMainnet},
	}
	before := append([]core.Event(nil), events...)
	_ = Bucket(events, core.NetworkMainnet)
	if !reflect.DeepEqual(events, before) {
		t.Errorf("input mutated: %+v, want %+v", events, before)
	}
}

func TestBucket_OrderAndSum(t *testing.T) {
	var events []core.Event
	base := time.Date(2019, time.February, 3, 0, 0, 0, 0, time.UTC)
	// unordered input spread over several years
	for i := 0; i < 200; i++ {
		offset := time.Duration((i*7919)%900) * 24 * time.Hour
		events = append(events, core.Event{Time: base.Add(offset), Network: core.NetworkMainnet})
	}

	buckets := Bucket(events, "")
	sum := 0
	for i, b := range buckets {
		sum += b.Count
		if b.Count <= 0 {
			t.Errorf("bucket %v has count %d", b.Month, b.Count)
		}
		if b.Month.Day() != 1 {
			t.Errorf("bucket month %v is not a month start", b.Month)
		}
		if i > 0 && !buckets[i-1].Month.Before(b.Month) {
			t.Errorf("months not strictly increasing at %d: %v then %v", i, buckets[i-1].Month, b.Month)
		}
	}
	if sum != len(events) {
		t.Errorf("sum of counts = %d, want %d", sum, len(events))
	}
}

func TestDensify_Scenario(t *testing.T) {
	buckets := Bucket(scenarioEvents(), core.NetworkMainnet)
	got, err := Densify(buckets, month(2021, time.March))
	if err != nil {
		t.Fatalf("Densify() error: %v", err)
	}
	want := []core.Bucket{
		{Month: month(2021, time.January), Count: 2},
		{Month: month(2021, time.February), Count: 0},
		{Month: month(2021, time.March), Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Densify() = %+v, want %+v", got, want)
	}
	if totals := Total(Counts(got)); !reflect.DeepEqual(totals, []int{2, 2, 3}) {
		t.Errorf("Total() = %v, want [2 2 3]", totals)
	}
}

func TestDensify_Properties(t *testing.T) {
	sparse := []core.Bucket{
		{Month: month(2020, time.March), Count: 4},
		{Month: month(2020, time.July), Count: 1},
		{Month: month(2020, time.December), Count: 7},
	}
	end := time.Date(2021, time.February, 17, 8, 0, 0, 0, time.UTC)

	got, err := Densify(sparse, end)
	if err != nil {
		t.Fatalf("Densify() error: %v", err)
	}

	wantLen := core.MonthsBetween(month(2020, time.March), end) + 1
	if len(got) != wantLen {
		t.Fatalf("len = %d, want %d", len(got), wantLen)
	}

	actual := map[int64]int{}
	for _, b := range sparse {
		actual[b.Month.Unix()] = b.Count
	}
	seen := map[int64]bool{}
	for i, b := range got {
		key := b.Month.Unix()
		if seen[key] {
			t.Errorf("duplicate month %v", b.Month)
		}
		seen[key] = true
		if i > 0 && core.MonthsBetween(got[i-1].Month, b.Month) != 1 {
			t.Errorf("gap between %v and %v", got[i-1].Month, b.Month)
		}
		want, ok := actual[key]
		if !ok {
			want = 0
		}
		if b.Count != want {
			t.Errorf("month %v count = %d, want %d", b.Month.Format("2006-01"), b.Count, want)
		}
	}
	if last := got[len(got)-1].Month; !last.Equal(month(2021, time.February)) {
		t.Errorf("last month = %v, want 2021-02", last)
	}
}

func TestDensify_UnsortedInput(t *testing.T) {
	sparse := []core.Bucket{
		{Month: month(2020, time.May), Count: 3},
		{Month: month(2020, time.March), Count: 2},
	}
	got, err := Densify(sparse, month(2020, time.May))
	if err != nil {
		t.Fatalf("Densify() error: %v", err)
	}
	want := []core.Bucket{
		{Month: month(2020, time.March), Count: 2},
		{Month: month(2020, time.April), Count: 0},
		{Month: month(2020, time.May), Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Densify() = %+v, want %+v", got, want)
	}
}

func TestDensify_SingleMonth(t *testing.T) {
	got, err := Densify([]core.Bucket{{Month: month(2022, time.June), Count: 5}}, month(2022, time.June))
	if err != nil {
		t.Fatalf("Densify() error: %v", err)
	}
	if len(got) != 1 || got[0].Count != 5 {
		t.Errorf("Densify() = %+v, want one bucket with count 5", got)
	}
}

func TestDensify_DropsMonthsAfterEnd(t *testing.T) {
	sparse := []core.Bucket{
		{Month: month(2020, time.January), Count: 1},
		{Month: month(2020, time.June), Count: 9},
	}
	got, err := Densify(sparse, month(2020, time.March))
	if err != nil {
		t.Fatalf("Densify() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[2].Month != month(2020, time.March) || got[2].Count != 0 {
		t.Errorf("last = %+v, want 2020-03 with 0", got[2])
	}
}

func TestDensify_Errors(t *testing.T) {
	if _, err := Densify(nil, month(2021, time.March)); !errors.Is(err, ErrNoEvents) {
		t.Errorf("empty input err = %v, want ErrNoEvents", err)
	}

	future := []core.Bucket{{Month: month(2022, time.January), Count: 1}}
	if _, err := Densify(future, month(2021, time.March)); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("future-only input err = %v, want ErrEndBeforeStart", err)
	}
}

func TestNewDAOs_NoMatchingNetwork(t *testing.T) {
	_, err := NewDAOs(scenarioEvents(), networkXDai, month(2021, time.March))
	if !errors.Is(err, ErrNoEvents) {
		t.Fatalf("err = %v, want ErrNoEvents", err)
	}
}

func TestNewDAOs_Idempotent(t *testing.T) {
	events := scenarioEvents()
	end := month(2021, time.June)

	first, err := NewDAOs(events, "", end)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := NewDAOs(events, "", end)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{4}, []int{4}},
		{"zeros", []int{0, 0, 0}, []int{0, 0, 0}},
		{"mixed", []int{2, 0, 1, 5}, []int{2, 2, 3, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Total(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTotal_Properties(t *testing.T) {
	in := []int{3, 0, 0, 12, 1, 0, 7, 2}
	got := Total(in)

	sum := 0
	for _, v := range in {
		sum += v
	}
	if got[0] != in[0] {
		t.Errorf("first = %d, want %d", got[0], in[0])
	}
	if got[len(got)-1] != sum {
		t.Errorf("last = %d, want %d", got[len(got)-1], sum)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("decreasing at %d: %d < %d", i, got[i], got[i-1])
		}
	}
}

func TestCumulativePoints(t *testing.T) {
	dense := []core.Bucket{
		{Month: month(2021, time.January), Count: 2},
		{Month: month(2021, time.February), Count: 0},
		{Month: month(2021, time.March), Count: 1},
	}
	got := CumulativePoints(dense)
	want := []core.Point{
		{Time: month(2021, time.January), Value: 2},
		{Time: month(2021, time.February), Value: 2},
		{Time: month(2021, time.March), Value: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CumulativePoints() = %+v, want %+v", got, want)
	}
}
