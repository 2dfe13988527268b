//nolint:funlen //ok for this test code
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/testsupport/basedata"
	"github.com/lapwise/lapwise-go/testsupport/testdb"
)

func TestProgressionChartTeammateColors(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewChartService(NewSeasonService(pool))

	resp, err := svc.ProgressionChart(
		context.Background(), basedata.Year, "drivers", nil)
	assert.NoError(t, err)
	assert.Len(t, resp.Entities, 4)
	// round "0" plus two point-awarding sessions
	assert.Len(t, resp.Series, 3)

	colors := map[string]string{}
	for _, e := range resp.Entities {
		colors[e.Key] = e.Color
	}
	// higher-scoring teammate keeps the team color
	assert.Equal(t, "3671c6", colors["VER"])
	assert.Equal(t, "285494", colors["PER"])
	assert.Equal(t, "e8002d", colors["LEC"])
	assert.Equal(t, "ae0021", colors["SAI"])

	last := resp.Series[2]
	assert.Equal(t, "2-sprint", last.Round)
	assert.Equal(t, float64(32), last.Values["VER"])
	assert.Equal(t, float64(25), last.Prior["VER"])
}

func TestProgressionChartConstructorsKeepColors(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewChartService(NewSeasonService(pool))

	resp, err := svc.ProgressionChart(
		context.Background(), basedata.Year, "constructors", nil)
	assert.NoError(t, err)
	assert.Len(t, resp.Entities, 2)
	for _, e := range resp.Entities {
		if e.Key == "Red Bull Racing" {
			assert.Equal(t, "3671c6", e.Color)
		}
	}
}

func TestLapChartGapView(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewChartService(NewSeasonService(pool))

	resp, err := svc.LapChart(
		context.Background(), basedata.Year, 1, model.SessionRace, nil, "gap")
	assert.NoError(t, err)
	assert.Equal(t, "gap", resp.View)
	assert.Len(t, resp.Series, 3)

	first := resp.Series[0]
	assert.Equal(t, float64(0), first.Values["VER"])
	assert.InDelta(t, 0.3, first.Values["LEC"], 1e-9)

	// LEC has no time on lap 2, the cumulative gap stays invalid
	for _, row := range resp.Series[1:] {
		_, ok := row.Values["LEC"]
		assert.False(t, ok)
		assert.Equal(t, float64(0), row.Values["VER"])
	}

	assert.Len(t, resp.Labels, 3)
	assert.Equal(t, "1:35.200", resp.Labels[0]["VER"])
	assert.Equal(t, "+0.300", resp.Labels[0]["LEC"])
	assert.Equal(t, "-", resp.Labels[1]["LEC"])
}

func TestLapChartSelection(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewChartService(NewSeasonService(pool))

	resp, err := svc.LapChart(
		context.Background(), basedata.Year, 1, model.SessionRace,
		[]string{"VER"}, "direct")
	assert.NoError(t, err)
	assert.Len(t, resp.Drivers, 1)
	assert.Equal(t, "VER", resp.Drivers[0].Key)
	for _, row := range resp.Series {
		_, ok := row.Values["LEC"]
		assert.False(t, ok)
	}
}
