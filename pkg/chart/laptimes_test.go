package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func sampleDriverLaps() []DriverLaps {
	soft := "SOFT"
	medium := "MEDIUM"
	return []DriverLaps{
		{
			Key:  "VER",
			Name: "Max Verstappen",
			Laps: []Lap{
				{Number: 1, Time: ptr(92.5), Compound: &soft},
				{Number: 2, Time: ptr(90.0), Compound: &soft},
				{Number: 3, Time: ptr(90.5), Compound: &soft},
			},
		},
		{
			Key:  "PER",
			Name: "Sergio Perez",
			Laps: []Lap{
				{Number: 1, Time: ptr(93.0), Compound: &medium},
				{Number: 2, Time: nil, Compound: &medium}, // pit in lap
				{Number: 3, Time: ptr(91.0), Compound: &medium},
			},
		},
		{
			Key:  "OCO",
			Name: "Esteban Ocon",
			Laps: []Lap{
				// retired after one lap
				{Number: 1, Time: ptr(95.0), Compound: &soft},
			},
		},
	}
}

func TestBuildLapSeriesDirect(t *testing.T) {
	rows := BuildLapSeries(sampleDriverLaps(), []string{"VER", "PER"}, LapSeriesDirect)

	assert.Len(t, rows, 3)
	assert.Equal(t, 92.5, rows[0].Values["VER"])
	assert.Equal(t, 93.0, rows[0].Values["PER"])

	// the untimed pit lap must be absent, not zero
	_, ok := rows[1].Values["PER"]
	assert.False(t, ok, "untimed lap must not appear in the series")
	assert.Equal(t, 90.0, rows[1].Values["VER"])

	assert.Equal(t, 91.0, rows[2].Values["PER"])
}

func TestBuildLapSeriesDirectMetadata(t *testing.T) {
	rows := BuildLapSeries(sampleDriverLaps(), []string{"VER"}, LapSeriesDirect)
	if assert.Len(t, rows, 3) {
		rec, ok := rows[0].Records["VER"]
		if assert.True(t, ok) {
			assert.Equal(t, "SOFT", *rec.Compound)
			assert.Equal(t, 1, rec.Number)
		}
	}
}

func TestBuildLapSeriesGapToLeader(t *testing.T) {
	rows := BuildLapSeries(
		sampleDriverLaps(), []string{"VER", "PER", "OCO"}, LapSeriesGapToLeader)

	assert.Len(t, rows, 3)

	// lap 1: VER 92.5, PER 93.0, OCO 95.0 -> VER leads
	assert.Equal(t, 0.0, rows[0].Values["VER"])
	assert.InDelta(t, 0.5, rows[0].Values["PER"], 1e-9)
	assert.InDelta(t, 2.5, rows[0].Values["OCO"], 1e-9)

	// lap 2: PER lost its cumulative to the missing time, OCO retired
	assert.Equal(t, 0.0, rows[1].Values["VER"])
	_, perOK := rows[1].Values["PER"]
	_, ocoOK := rows[1].Values["OCO"]
	assert.False(t, perOK)
	assert.False(t, ocoOK)

	// lap 3: PER stays invalid although the lap itself was timed
	_, perOK = rows[2].Values["PER"]
	assert.False(t, perOK)
}

func TestBuildLapSeriesGapLeaderAlwaysZero(t *testing.T) {
	rows := BuildLapSeries(
		sampleDriverLaps(), []string{"VER", "PER", "OCO"}, LapSeriesGapToLeader)
	for _, row := range rows {
		minimum := -1.0
		for _, v := range row.Values {
			if minimum < 0 || v < minimum {
				minimum = v
			}
		}
		assert.Equal(t, 0.0, minimum, "lap %d", row.Lap)
	}
}

func TestBuildLapSeriesGapSkipsLapsWithoutLeader(t *testing.T) {
	drivers := []DriverLaps{
		{Key: "A", Laps: []Lap{
			{Number: 1, Time: ptr(90)},
			{Number: 2, Time: nil},
			{Number: 3, Time: ptr(91)},
		}},
	}
	rows := BuildLapSeries(drivers, []string{"A"}, LapSeriesGapToLeader)
	// only lap 1 has a usable cumulative value
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Lap)
}

func TestBuildLapSeriesEmptySelection(t *testing.T) {
	for _, mode := range []LapSeriesMode{LapSeriesDirect, LapSeriesGapToLeader} {
		rows := BuildLapSeries(sampleDriverLaps(), nil, mode)
		assert.Empty(t, rows)
	}
}

func TestBuildLapSeriesIdempotent(t *testing.T) {
	selected := []string{"VER", "PER", "OCO"}
	first := BuildLapSeries(sampleDriverLaps(), selected, LapSeriesGapToLeader)
	second := BuildLapSeries(sampleDriverLaps(), selected, LapSeriesGapToLeader)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("builder is not idempotent (-first +second):\n%s", diff)
	}
}

func TestBuildLapSeriesLapNumberGaps(t *testing.T) {
	// lap numbers with holes must be matched by value, not position
	drivers := []DriverLaps{
		{Key: "A", Laps: []Lap{
			{Number: 1, Time: ptr(90)},
			{Number: 5, Time: ptr(92)},
		}},
	}
	rows := BuildLapSeries(drivers, []string{"A"}, LapSeriesDirect)
	assert.Len(t, rows, 5)
	assert.Equal(t, 90.0, rows[0].Values["A"])
	for lap := 2; lap <= 4; lap++ {
		_, ok := rows[lap-1].Values["A"]
		assert.False(t, ok, "lap %d", lap)
	}
	assert.Equal(t, 92.0, rows[4].Values["A"])
}
