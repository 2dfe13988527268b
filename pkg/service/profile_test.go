//nolint:funlen //ok for this test code
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lapwise/lapwise-go/testsupport/basedata"
	"github.com/lapwise/lapwise-go/testsupport/testdb"
)

func TestDriverProfile(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	resp, err := svc.DriverProfile(context.Background(), "VER")
	assert.NoError(t, err)
	assert.Equal(t, "Max Verstappen", resp.FullName)
	assert.Equal(t, 1, resp.TotalSeasons)
	// only main races count as races, sprint points still count
	assert.Equal(t, 1, resp.TotalRaces)
	assert.Equal(t, 1, resp.TotalWins)
	assert.Equal(t, 1, resp.TotalPodiums)
	assert.Equal(t, float64(32), resp.TotalPoints)
	assert.Equal(t, 1, resp.TotalChampionships)
	assert.NotNil(t, resp.BestFinish)
	assert.Equal(t, 1, *resp.BestFinish)
	assert.NotNil(t, resp.CurrentTeam)
	assert.Equal(t, "Red Bull Racing", *resp.CurrentTeam)

	lec, err := svc.DriverProfile(context.Background(), "LEC")
	assert.NoError(t, err)
	assert.Equal(t, 0, lec.TotalChampionships)
	assert.Equal(t, float64(26), lec.TotalPoints)
}

func TestDriverProfileUnknown(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	_, err := svc.DriverProfile(context.Background(), "XXX")
	assert.Error(t, err)
}

func TestDriverSeasonHistory(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	resp, err := svc.DriverSeasonHistory(context.Background(), "VER")
	assert.NoError(t, err)
	assert.Len(t, resp.Seasons, 1)
	season := resp.Seasons[0]
	assert.Equal(t, basedata.Year, season.Year)
	assert.Equal(t, "Red Bull Racing", season.TeamName)
	assert.Equal(t, 1, season.Position)
	assert.Equal(t, float64(32), season.TotalPoints)
	assert.Equal(t, 1, season.Wins)
	assert.Equal(t, 1, season.Races)
}

func TestDriverRaceHistory(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	resp, err := svc.DriverRaceHistory(context.Background(), "VER")
	assert.NoError(t, err)
	// race round 1 and sprint round 2, most recent first
	assert.Len(t, resp.Races, 2)
	assert.Equal(t, 2, resp.Races[0].Round)
	assert.Equal(t, 1, resp.Races[1].Round)
	assert.True(t, resp.Races[1].FastestLap)
}

func TestConstructorProfile(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	resp, err := svc.ConstructorProfile(context.Background(), "Red Bull Racing")
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.TotalSeasons)
	assert.Equal(t, 1, resp.TotalRaces)
	assert.Equal(t, 1, resp.TotalWins)
	// both cars on the round 1 podium
	assert.Equal(t, 2, resp.TotalPodiums)
	assert.Equal(t, float64(52), resp.TotalPoints)
	assert.Equal(t, 1, resp.TotalChampionships)

	ferrari, err := svc.ConstructorProfile(context.Background(), "Ferrari")
	assert.NoError(t, err)
	assert.Equal(t, 0, ferrari.TotalChampionships)
	assert.Equal(t, float64(44), ferrari.TotalPoints)
}

func TestConstructorRaceHistory(t *testing.T) {
	pool := testdb.InitTestDB()
	basedata.CreateSampleSeason(pool)
	svc := NewProfileService(pool)

	resp, err := svc.ConstructorRaceHistory(context.Background(), "Ferrari")
	assert.NoError(t, err)
	// two drivers in race and sprint
	assert.Len(t, resp.Races, 4)
}
