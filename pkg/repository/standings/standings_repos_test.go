//nolint:funlen //ok for this test code
package standings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/testsupport/basedata"
	"github.com/lapwise/lapwise-go/testsupport/testdb"
)

// the sample season awards race points (25,18,15,12) in round 1 and
// sprint points (8,7,6,5) in round 2

func TestLoadDriverStandings(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)

	rows, err := LoadDriverStandings(context.Background(), pool, basedata.Year)
	assert.NoError(t, err)
	assert.Len(t, rows, 4)

	codes := []string{}
	points := []float64{}
	for _, row := range rows {
		codes = append(codes, row.DriverCode)
		points = append(points, row.TotalPoints)
	}
	assert.Equal(t, []string{"VER", "LEC", "PER", "SAI"}, codes)
	assert.Equal(t, []float64{32, 26, 20, 18}, points)
}

func TestLoadConstructorStandings(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)

	rows, err := LoadConstructorStandings(context.Background(), pool, basedata.Year)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Red Bull Racing", rows[0].TeamName)
	assert.Equal(t, float64(52), rows[0].TotalPoints)
	assert.Equal(t, "Ferrari", rows[1].TeamName)
	assert.Equal(t, float64(44), rows[1].TotalPoints)
}

func TestLoadDriverProgression(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)

	rows, err := LoadDriverProgression(context.Background(), pool, basedata.Year)
	assert.NoError(t, err)
	// 4 drivers x 2 point-awarding sessions
	assert.Len(t, rows, 8)

	verRows := []ProgressionRow{}
	for _, row := range rows {
		if row.Key == "VER" {
			verRows = append(verRows, row)
		}
	}
	assert.Len(t, verRows, 2)
	assert.Equal(t, 1, verRows[0].Round)
	assert.Equal(t, model.SessionRace, verRows[0].SessionType)
	assert.Equal(t, float64(25), verRows[0].CumulativePoints)
	assert.Equal(t, 2, verRows[1].Round)
	assert.Equal(t, model.SessionSprintRace, verRows[1].SessionType)
	assert.Equal(t, float64(32), verRows[1].CumulativePoints)
}

func TestLoadSeasonSessions(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)

	sessions, err := LoadSeasonSessions(context.Background(), pool, basedata.Year)
	assert.NoError(t, err)
	assert.Len(t, sessions, 2)
	assert.Equal(t, 1, sessions[0].Round)
	assert.Equal(t, model.SessionRace, sessions[0].SessionType)
	assert.Equal(t, 2, sessions[1].Round)
	assert.Equal(t, model.SessionSprintRace, sessions[1].SessionType)
}
