// Package version holds build metadata stamped in by the release build:
//
//	go build -ldflags "-X github.com/janekbaraniewski/daogrowth/internal/version.Version=v0.3.0 \
//	  -X github.com/janekbaraniewski/daogrowth/internal/version.CommitHash=$(git rev-parse --short HEAD) \
//	  -X github.com/janekbaraniewski/daogrowth/internal/version.BuildDate=$(date -u +%Y-%m-%d)"
package version

import "strings"

const unknown = "unknown"

var (
	Version    = "dev"
	CommitHash = unknown
	BuildDate  = unknown
)

// String renders the version followed by whichever of commit and build date were stamped.
// A plain `go build` yields just "dev".
func String() string {
	return format(Version, CommitHash, BuildDate)
}

func format(ver, commit, date string) string {
	var sb strings.Builder
	sb.WriteString(ver)
	if commit != "" && commit != unknown {
		sb.WriteString(" (" + commit + ")")
	}
	if date != "" && date != unknown {
		sb.WriteString(" built " + date)
	}
	return sb.String()
}
