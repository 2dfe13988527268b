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

func TestAvailableSeasonsEmpty(t *testing.T) {
	pool := testdb.InitTestDB()
	svc := NewSeasonService(pool)

	_, err := svc.AvailableSeasons(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestStandings(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	resp, err := svc.Standings(context.Background(), basedata.Year)
	assert.NoError(t, err)
	assert.Len(t, resp.Drivers, 4)
	assert.Len(t, resp.Constructors, 2)
	assert.Equal(t, 1, resp.Drivers[0].Position)
	assert.Equal(t, "VER", resp.Drivers[0].DriverCode)
	assert.Equal(t, 4, resp.Drivers[3].Position)
	assert.Equal(t, "Red Bull Racing", resp.Constructors[0].TeamName)
}

func TestSeasonRounds(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	resp, err := svc.SeasonRounds(context.Background(), basedata.Year)
	assert.NoError(t, err)
	assert.Len(t, resp.Rounds, 2)

	race := resp.Rounds[0]
	assert.Equal(t, 1, race.Round)
	assert.Equal(t, model.SessionRace, race.SessionType)
	assert.Len(t, race.Podium, 3)
	assert.Equal(t, "VER", race.Podium[0].DriverCode)
	assert.Equal(t, "LEC", race.Podium[1].DriverCode)
	assert.Equal(t, "PER", race.Podium[2].DriverCode)

	sprint := resp.Rounds[1]
	assert.Equal(t, 2, sprint.Round)
	assert.Equal(t, model.SessionSprintRace, sprint.SessionType)
	assert.Equal(t, "LEC", sprint.Podium[0].DriverCode)
}

func TestPointsProgressionDrivers(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	resp, err := svc.PointsProgression(context.Background(), basedata.Year, "drivers")
	assert.NoError(t, err)
	assert.Equal(t, "drivers", resp.Type)
	assert.Len(t, resp.Drivers, 4)

	var ver, per *model.DriverProgression
	for i := range resp.Drivers {
		switch resp.Drivers[i].DriverCode {
		case "VER":
			ver = &resp.Drivers[i]
		case "PER":
			per = &resp.Drivers[i]
		}
	}
	assert.NotNil(t, ver)
	assert.NotNil(t, per)

	// leading round "0", then race round 1 and sprint round 2
	assert.Len(t, ver.Progression, 3)
	assert.Equal(t, "0", ver.Progression[0].Round)
	assert.Equal(t, float64(0), ver.Progression[0].CumulativePoints)
	assert.Equal(t, "1", ver.Progression[1].Round)
	assert.Equal(t, float64(25), ver.Progression[1].CumulativePoints)
	assert.Equal(t, "2-sprint", ver.Progression[2].Round)
	assert.Equal(t, float64(32), ver.Progression[2].CumulativePoints)
	assert.Equal(t, 1, ver.FinalPosition)

	assert.Equal(t, float64(20), per.Progression[2].CumulativePoints)
	assert.Equal(t, 3, per.FinalPosition)

	assert.NotNil(t, ver.Progression[1].EventName)
	assert.Equal(t, "Bahrain Grand Prix", *ver.Progression[1].EventName)
}

func TestPointsProgressionConstructors(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	resp, err := svc.PointsProgression(
		context.Background(), basedata.Year, "constructors")
	assert.NoError(t, err)
	assert.Equal(t, "constructors", resp.Type)
	assert.Len(t, resp.Constructors, 2)

	for i := range resp.Constructors {
		c := &resp.Constructors[i]
		if c.TeamName != "Red Bull Racing" {
			continue
		}
		assert.Equal(t, 1, c.FinalPosition)
		assert.Equal(t, float64(52),
			c.Progression[len(c.Progression)-1].CumulativePoints)
	}
}

func TestLapTimes(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	resp, err := svc.LapTimes(
		context.Background(), basedata.Year, 1, model.SessionRace)
	assert.NoError(t, err)
	assert.Equal(t, "Bahrain Grand Prix", resp.EventName)
	assert.Len(t, resp.Drivers, 2)
	assert.Equal(t, "VER", resp.Drivers[0].DriverCode)
	assert.Len(t, resp.Drivers[0].Laps, 3)
	assert.Nil(t, resp.Drivers[1].Laps[1].LapTimeSeconds)
}

func TestSessionResultsUnknownRound(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewSeasonService(pool)

	_, err := svc.SessionResults(
		context.Background(), basedata.Year, 99, model.SessionRace)
	assert.Error(t, err)
}
