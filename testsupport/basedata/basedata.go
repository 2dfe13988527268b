package basedata

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lapwise/lapwise-go/pkg/model"
	circuitrepos "github.com/lapwise/lapwise-go/pkg/repository/circuit"
	driverrepos "github.com/lapwise/lapwise-go/pkg/repository/driver"
	laprepos "github.com/lapwise/lapwise-go/pkg/repository/lap"
	resultrepos "github.com/lapwise/lapwise-go/pkg/repository/result"
	sessionrepos "github.com/lapwise/lapwise-go/pkg/repository/session"
	teamrepos "github.com/lapwise/lapwise-go/pkg/repository/team"
)

const Year = 2024

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-03-02T15:00:00Z")
	return t
}

func SampleCircuit() *model.Circuit {
	return &model.Circuit{
		Name:     "Bahrain International Circuit",
		Location: "Sakhir",
		Country:  "Bahrain",
	}
}

func SampleTeams() []*model.Team {
	redBull := "3671c6"
	ferrari := "e8002d"
	return []*model.Team{
		{Name: "Red Bull Racing", TeamColor: &redBull},
		{Name: "Ferrari", TeamColor: &ferrari},
	}
}

func SampleDrivers() []*model.Driver {
	return []*model.Driver{
		{FullName: "Max Verstappen", DriverCode: "VER", DriverNumber: intPtr(1)},
		{FullName: "Sergio Perez", DriverCode: "PER", DriverNumber: intPtr(11)},
		{FullName: "Charles Leclerc", DriverCode: "LEC", DriverNumber: intPtr(16)},
		{FullName: "Carlos Sainz", DriverCode: "SAI", DriverNumber: intPtr(55)},
	}
}

// SampleSeason groups the created rows so tests can reference ids.
type SampleSeason struct {
	Circuit *model.Circuit
	Teams   []*model.Team
	Drivers []*model.Driver
	Race    *model.Session
	Sprint  *model.Session
}

// CreateSampleSeason writes a small season into the database: one race
// (round 1) and one sprint race (round 2) with four drivers in two teams,
// including laps for the round 1 race.
//
//nolint:funlen // test fixture
func CreateSampleSeason(db *pgxpool.Pool) *SampleSeason {
	ctx := context.Background()
	ret := &SampleSeason{
		Circuit: SampleCircuit(),
		Teams:   SampleTeams(),
		Drivers: SampleDrivers(),
	}
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := circuitrepos.Create(ctx, tx, ret.Circuit); err != nil {
			return err
		}
		for _, t := range ret.Teams {
			if err := teamrepos.Create(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, d := range ret.Drivers {
			if err := driverrepos.Create(ctx, tx, d); err != nil {
				return err
			}
		}

		ret.Race = &model.Session{
			Year:        Year,
			Round:       1,
			SessionType: model.SessionRace,
			EventName:   "Bahrain Grand Prix",
			Date:        TestTime(),
			CircuitID:   ret.Circuit.ID,
		}
		if err := sessionrepos.Create(ctx, tx, ret.Race); err != nil {
			return err
		}
		ret.Sprint = &model.Session{
			Year:        Year,
			Round:       2,
			SessionType: model.SessionSprintRace,
			EventName:   "Chinese Grand Prix",
			Date:        TestTime().AddDate(0, 0, 14),
			CircuitID:   ret.Circuit.ID,
		}
		if err := sessionrepos.Create(ctx, tx, ret.Sprint); err != nil {
			return err
		}

		// round 1 race: VER, LEC, PER, SAI
		racePoints := []float64{25, 18, 15, 12}
		raceOrder := []int{0, 2, 1, 3}
		for pos, idx := range raceOrder {
			res := &model.SessionResult{
				SessionID:     ret.Race.ID,
				DriverID:      ret.Drivers[idx].ID,
				TeamID:        teamOf(ret, idx).ID,
				Position:      intPtr(pos + 1),
				Status:        "Finished",
				GridPosition:  intPtr(pos + 1),
				Points:        floatPtr(racePoints[pos]),
				LapsCompleted: intPtr(57),
				FastestLap:    pos == 0,
			}
			if err := resultrepos.Create(ctx, tx, res); err != nil {
				return err
			}
		}
		// round 2 sprint: LEC, VER, SAI, PER
		sprintPoints := []float64{8, 7, 6, 5}
		sprintOrder := []int{2, 0, 3, 1}
		for pos, idx := range sprintOrder {
			res := &model.SessionResult{
				SessionID:     ret.Sprint.ID,
				DriverID:      ret.Drivers[idx].ID,
				TeamID:        teamOf(ret, idx).ID,
				Position:      intPtr(pos + 1),
				Status:        "Finished",
				GridPosition:  intPtr(pos + 1),
				Points:        floatPtr(sprintPoints[pos]),
				LapsCompleted: intPtr(19),
			}
			if err := resultrepos.Create(ctx, tx, res); err != nil {
				return err
			}
		}

		// laps for the round 1 race, LEC misses a time on lap 2
		lapTimes := map[string][]*float64{
			"VER": {floatPtr(95.2), floatPtr(94.8), floatPtr(94.9)},
			"LEC": {floatPtr(95.5), nil, floatPtr(95.1)},
		}
		soft := "SOFT"
		for code, times := range lapTimes {
			d := driverByCode(ret, code)
			for i, lt := range times {
				l := &model.Lap{
					SessionID:      ret.Race.ID,
					DriverID:       d.ID,
					LapNumber:      i + 1,
					LapTimeSeconds: lt,
					Compound:       &soft,
					TyreLife:       intPtr(i + 1),
				}
				if err := laprepos.Create(ctx, tx, l); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("createSampleSeason: %v\n", err)
	}
	return ret
}

// teamOf maps driver index to team: VER/PER drive for the first team,
// LEC/SAI for the second.
func teamOf(s *SampleSeason, driverIdx int) *model.Team {
	if driverIdx < 2 {
		return s.Teams[0]
	}
	return s.Teams[1]
}

func driverByCode(s *SampleSeason, code string) *model.Driver {
	for _, d := range s.Drivers {
		if d.DriverCode == code {
			return d
		}
	}
	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
