// Package chart reshapes flat result collections into the column-oriented
// series a line chart renderer consumes. All transformations are pure and
// single-pass over already-fetched data.
package chart

// Entity is one line on a points progression chart, either a driver
// (keyed by driver code) or a constructor (keyed by team name).
type Entity struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Color         string  `json:"color,omitempty"` // hex, no leading '#'
	FinalPosition int     `json:"final_position"`
	Points        []Point `json:"points"`
}

// Point is one round of an entity's progression. Round identifiers are
// plain integers as strings, sprint rounds carry a "-sprint" suffix.
type Point struct {
	Round     string  `json:"round"`
	Points    float64 `json:"points"`
	EventName string  `json:"event_name,omitempty"`
}

// SeriesRow is one round of the unified progression series: one value per
// selected entity plus the prior round's value for "gained this round"
// tooltips.
type SeriesRow struct {
	Round     string             `json:"round"`
	EventName string             `json:"event_name,omitempty"`
	Values    map[string]float64 `json:"values"`
	Prior     map[string]float64 `json:"prior"`
}

// DriverLaps is the per-driver input of the lap series builders.
type DriverLaps struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Color         string `json:"color,omitempty"`
	FinalPosition *int   `json:"final_position"`
	Laps          []Lap  `json:"laps"`
}

// Lap carries the subset of a lap record the charts care about. Time is
// nil for untimed laps (pit in/out, retirement).
type Lap struct {
	Number      int      `json:"number"`
	Time        *float64 `json:"time"`
	Compound    *string  `json:"compound"`
	TyreAge     *int     `json:"tyre_age"`
	TrackStatus *string  `json:"track_status"`
}

// LapRow is one lap of a lap series. A driver missing from Values had no
// usable value at that lap; the chart must leave a gap, not interpolate.
// Records carries the originating lap record per present cell so tooltips
// can show compound, tyre age and track status.
type LapRow struct {
	Lap     int                `json:"lap"`
	Values  map[string]float64 `json:"values"`
	Records map[string]Lap     `json:"records"`
}

// LapSeriesMode selects between raw lap times and gap to the cumulative
// leader.
type LapSeriesMode int

const (
	LapSeriesDirect LapSeriesMode = iota
	LapSeriesGapToLeader
)
