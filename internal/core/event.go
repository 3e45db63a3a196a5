package core

import "time"

// NetworkMainnet is the indexers' label for Ethereum mainnet. Every other label is an
// auxiliary chain and only shows up in the unfiltered series.
const NetworkMainnet = "mainnet"

// Event is a single DAO creation event, normalised at the load boundary.
type Event struct {
	Time    time.Time
	Network string
}

// Bucket is the number of events observed in one calendar month.
type Bucket struct {
	Month time.Time
	Count int
}

type Point struct {
	Time  time.Time
	Value float64
}

// Series is one rendered line: a platform/network combination plus its styling hints.
type Series struct {
	Name     string
	Platform string // DAOstack, DAOhaus or Aragon
	Color  string // "#RRGGBB"
	Marker string // marker symbol name, e.g. "circle-open"
	Points []Point
}

func (s Series) Times() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Time
	}
	return out
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// MaxValue returns the largest value in the series, or 0 when it is empty.
func (s Series) MaxValue() float64 {
	var maxV float64
	for _, p := range s.Points {
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	return maxV
}
