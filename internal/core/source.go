package core

// SourceKind tells the loader which schema variant a CSV export follows.
type SourceKind string

const (
	// SourceKindEvents files hold one row per DAO creation event.
	SourceKindEvents SourceKind = "events"
	// SourceKindCounts files hold a pre-aggregated running count per date.
	SourceKindCounts SourceKind = "counts"
)

// SourceStyle carries the per-series rendering hints.
type SourceStyle struct {
	Label  string
	Color  string
	Marker string
}

// SourceSpec is the canonical definition of one indexer export under the data directory.
type SourceSpec struct {
	ID          string
	Platform    string
	Network     string // network filter applied to event files; empty keeps all rows
	File        string
	Kind        SourceKind
	TimeColumn  string
	ValueColumn string // only used by SourceKindCounts
	Style       SourceStyle
}
