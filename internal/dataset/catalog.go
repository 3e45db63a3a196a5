package dataset

import "github.com/janekbaraniewski/daogrowth/internal/core"

// DefaultDataDir is where the indexer exports live, relative to the working directory.
const DefaultDataDir = "data/metrics"

const (
	PlatformDAOstack = "DAOstack"
	PlatformDAOhaus  = "DAOhaus"
	PlatformAragon   = "Aragon"
)

// Reference series whose dates become the x-axis tick values.
const (
	ActiveTickSource = "aragon-active-mainnet"
	NewTickSource    = "aragon-new-mainnet"
)

var (
	styleDAOstackMainnet = core.SourceStyle{Label: "DAOstack (only mainnet)", Color: "#A5D6A7", Marker: "circle-open"}
	styleDAOstack        = core.SourceStyle{Label: "DAOstack", Color: "#388E3C", Marker: "circle"}
	styleDAOhausMainnet  = core.SourceStyle{Label: "DAOhaus (only mainnet)", Color: "#FFCC80", Marker: "diamond-tall-open"}
	styleDAOhaus         = core.SourceStyle{Label: "DAOhaus", Color: "#F57C00", Marker: "diamond-tall"}
	styleAragonMainnet   = core.SourceStyle{Label: "Aragon (only mainnet)", Color: "#90CAF9", Marker: "x-open"}
	styleAragon          = core.SourceStyle{Label: "Aragon", Color: "#1976D2", Marker: "x"}
)

// ActiveSources lists the pre-aggregated active-DAO exports in legend order.
func ActiveSources() []core.SourceSpec {
	return []core.SourceSpec{
		countSource("daostack-active-mainnet", PlatformDAOstack, core.NetworkMainnet, "daostack_active_daos_mainnet.csv", "createdAt", styleDAOstackMainnet),
		countSource("daostack-active", PlatformDAOstack, "", "daostack_active_daos.csv", "createdAt", styleDAOstack),
		countSource("daohaus-active-mainnet", PlatformDAOhaus, core.NetworkMainnet, "daohaus_active_daos_mainnet.csv", "createdAt", styleDAOhausMainnet),
		countSource("daohaus-active", PlatformDAOhaus, "", "daohaus_active_daos.csv", "createdAt", styleDAOhaus),
		countSource(ActiveTickSource, PlatformAragon, core.NetworkMainnet, "aragon_active_daos_mainnet.csv", "date", styleAragonMainnet),
		countSource("aragon-active", PlatformAragon, "", "aragon_active_daos.csv", "date", styleAragon),
	}
}

// NewSources lists the event exports; each file backs a mainnet-only and an all-networks series.
func NewSources() []core.SourceSpec {
	return []core.SourceSpec{
		eventSource("daohaus-new-mainnet", PlatformDAOhaus, core.NetworkMainnet, "daohaus_daos.csv", "timestamp", styleDAOhausMainnet),
		eventSource("daohaus-new", PlatformDAOhaus, "", "daohaus_daos.csv", "timestamp", styleDAOhaus),
		eventSource(NewTickSource, PlatformAragon, core.NetworkMainnet, "aragon_daos.csv", "createdAt", styleAragonMainnet),
		eventSource("aragon-new", PlatformAragon, "", "aragon_daos.csv", "createdAt", styleAragon),
	}
}

func countSource(id, platform, network, file, timeColumn string, style core.SourceStyle) core.SourceSpec {
	return core.SourceSpec{
		ID:          id,
		Platform:    platform,
		Network:     network,
		File:        file,
		Kind:        core.SourceKindCounts,
		TimeColumn:  timeColumn,
		ValueColumn: "count",
		Style:       style,
	}
}

func eventSource(id, platform, network, file, timeColumn string, style core.SourceStyle) core.SourceSpec {
	return core.SourceSpec{
		ID:         id,
		Platform:   platform,
		Network:    network,
		File:       file,
		Kind:       core.SourceKindEvents,
		TimeColumn: timeColumn,
		Style:      style,
	}
}
