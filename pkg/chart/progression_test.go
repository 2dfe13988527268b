package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleEntities() []Entity {
	return []Entity{
		{
			Key:           "VER",
			Name:          "Max Verstappen",
			Color:         "3671c6",
			FinalPosition: 1,
			Points: []Point{
				{Round: "1", Points: 25, EventName: "Bahrain Grand Prix"},
				{Round: "2", Points: 43, EventName: "Saudi Arabian Grand Prix"},
				{Round: "2-sprint", Points: 51, EventName: "Saudi Arabian Grand Prix"},
				{Round: "3", Points: 76, EventName: "Australian Grand Prix"},
			},
		},
		{
			Key:           "LEC",
			Name:          "Charles Leclerc",
			Color:         "e8002d",
			FinalPosition: 2,
			Points: []Point{
				{Round: "1", Points: 18, EventName: "Bahrain Grand Prix"},
				{Round: "2", Points: 33, EventName: "Saudi Arabian Grand Prix"},
				// missed the sprint
				{Round: "3", Points: 45, EventName: "Australian Grand Prix"},
			},
		},
		{
			Key:           "HAM",
			Name:          "Lewis Hamilton",
			Color:         "27f4d2",
			FinalPosition: 3,
			Points: []Point{
				{Round: "1", Points: 15, EventName: "Bahrain Grand Prix"},
				{Round: "2", Points: 27, EventName: "Saudi Arabian Grand Prix"},
				{Round: "2-sprint", Points: 33, EventName: "Saudi Arabian Grand Prix"},
				{Round: "3", Points: 43, EventName: "Australian Grand Prix"},
			},
		},
	}
}

func TestBuildProgressionSeries(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []SeriesRow
	}{
		{
			name:     "empty selection",
			selected: []string{},
			want:     []SeriesRow{},
		},
		{
			name:     "single entity",
			selected: []string{"VER"},
			want: []SeriesRow{
				{
					Round: "1", EventName: "Bahrain Grand Prix",
					Values: map[string]float64{"VER": 25},
					Prior:  map[string]float64{"VER": 0},
				},
				{
					Round: "2", EventName: "Saudi Arabian Grand Prix",
					Values: map[string]float64{"VER": 43},
					Prior:  map[string]float64{"VER": 25},
				},
				{
					Round: "2-sprint", EventName: "Saudi Arabian Grand Prix",
					Values: map[string]float64{"VER": 51},
					Prior:  map[string]float64{"VER": 43},
				},
				{
					Round: "3", EventName: "Australian Grand Prix",
					Values: map[string]float64{"VER": 76},
					Prior:  map[string]float64{"VER": 51},
				},
			},
		},
		{
			name:     "missing sprint point substitutes zero",
			selected: []string{"VER", "LEC"},
			want: []SeriesRow{
				{
					Round: "1", EventName: "Bahrain Grand Prix",
					Values: map[string]float64{"VER": 25, "LEC": 18},
					Prior:  map[string]float64{"VER": 0, "LEC": 0},
				},
				{
					Round: "2", EventName: "Saudi Arabian Grand Prix",
					Values: map[string]float64{"VER": 43, "LEC": 33},
					Prior:  map[string]float64{"VER": 25, "LEC": 18},
				},
				{
					Round: "2-sprint", EventName: "Saudi Arabian Grand Prix",
					Values: map[string]float64{"VER": 51, "LEC": 0},
					Prior:  map[string]float64{"VER": 43, "LEC": 33},
				},
				{
					Round: "3", EventName: "Australian Grand Prix",
					Values: map[string]float64{"VER": 76, "LEC": 45},
					Prior:  map[string]float64{"VER": 51, "LEC": 0},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProgressionSeries(sampleEntities(), tt.selected)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildProgressionSeries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildProgressionSeriesShape(t *testing.T) {
	// every row carries exactly one value per selected entity
	selected := []string{"VER", "LEC", "HAM"}
	rows := BuildProgressionSeries(sampleEntities(), selected)

	assert.Len(t, rows, 4)
	for _, row := range rows {
		assert.Len(t, row.Values, len(selected), "round %s", row.Round)
		assert.Len(t, row.Prior, len(selected), "round %s", row.Round)
		for _, key := range selected {
			assert.Contains(t, row.Values, key)
		}
	}
}

func TestBuildProgressionSeriesEventNameFallback(t *testing.T) {
	// the entity missing a point cannot contribute the event name, the
	// other one does
	rows := BuildProgressionSeries(sampleEntities(), []string{"LEC", "VER"})
	var sprint *SeriesRow
	for i := range rows {
		if rows[i].Round == "2-sprint" {
			sprint = &rows[i]
		}
	}
	if assert.NotNil(t, sprint) {
		assert.Equal(t, "Saudi Arabian Grand Prix", sprint.EventName)
		assert.Equal(t, 0.0, sprint.Values["LEC"])
		assert.Equal(t, 51.0, sprint.Values["VER"])
	}
}

func TestBuildProgressionSeriesUnionAxis(t *testing.T) {
	// an entity with a shorter round history must not truncate the axis
	entities := []Entity{
		{Key: "A", Points: []Point{{Round: "1", Points: 10}}},
		{Key: "B", Points: []Point{
			{Round: "1", Points: 5},
			{Round: "2", Points: 11},
		}},
	}
	rows := BuildProgressionSeries(entities, []string{"A", "B"})
	assert.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[1].Values["A"])
	assert.Equal(t, 11.0, rows[1].Values["B"])
}

func TestBuildProgressionSeriesIdempotent(t *testing.T) {
	selected := []string{"VER", "HAM"}
	first := BuildProgressionSeries(sampleEntities(), selected)
	second := BuildProgressionSeries(sampleEntities(), selected)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("builder is not idempotent (-first +second):\n%s", diff)
	}
}
