package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository/circuit"
	"github.com/lapwise/lapwise-go/pkg/repository/lap"
	"github.com/lapwise/lapwise-go/pkg/repository/racecontrol"
	"github.com/lapwise/lapwise-go/pkg/repository/result"
	"github.com/lapwise/lapwise-go/pkg/repository/session"
	"github.com/lapwise/lapwise-go/pkg/repository/standings"
	"github.com/lapwise/lapwise-go/pkg/repository/weather"
)

type SeasonService struct {
	pool *pgxpool.Pool
}

func NewSeasonService(pool *pgxpool.Pool) *SeasonService {
	return &SeasonService{pool: pool}
}

func (s *SeasonService) AvailableSeasons(ctx context.Context) ([]int, error) {
	seasons, err := session.AvailableSeasons(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	if len(seasons) == 0 {
		return nil, ErrNoData
	}
	return seasons, nil
}

func (s *SeasonService) Standings(ctx context.Context, year int) (
	*model.StandingsResponse, error,
) {
	driverRows, err := standings.LoadDriverStandings(ctx, s.pool, year)
	if err != nil {
		return nil, err
	}
	if len(driverRows) == 0 {
		return nil, ErrNoData
	}
	constructorRows, err := standings.LoadConstructorStandings(ctx, s.pool, year)
	if err != nil {
		return nil, err
	}

	resp := &model.StandingsResponse{
		Year:         year,
		Drivers:      make([]model.DriverStanding, 0, len(driverRows)),
		Constructors: make([]model.ConstructorStanding, 0, len(constructorRows)),
	}
	for i, row := range driverRows {
		resp.Drivers = append(resp.Drivers, model.DriverStanding{
			Position:    i + 1,
			DriverCode:  row.DriverCode,
			FullName:    row.FullName,
			TeamName:    row.TeamName,
			TeamColor:   row.TeamColor,
			TotalPoints: row.TotalPoints,
			HeadshotURL: row.HeadshotURL,
		})
	}
	for i, row := range constructorRows {
		resp.Constructors = append(resp.Constructors, model.ConstructorStanding{
			Position:    i + 1,
			TeamName:    row.TeamName,
			TeamColor:   row.TeamColor,
			TotalPoints: row.TotalPoints,
		})
	}
	return resp, nil
}

// SeasonRounds returns every race and sprint race of a season with its
// podium, grouped per (round, session type).
func (s *SeasonService) SeasonRounds(ctx context.Context, year int) (
	*model.SeasonRoundsResponse, error,
) {
	rows, err := result.LoadSeasonPodiums(ctx, s.pool, year)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	resp := &model.SeasonRoundsResponse{Year: year, Rounds: make([]model.RoundSummary, 0)}
	type key struct {
		round       int
		sessionType string
	}
	index := make(map[key]int)
	for _, row := range rows {
		k := key{round: row.Round, sessionType: row.SessionType}
		i, ok := index[k]
		if !ok {
			resp.Rounds = append(resp.Rounds, model.RoundSummary{
				Round:       row.Round,
				EventName:   row.EventName,
				Date:        row.Date,
				CircuitName: row.CircuitName,
				SessionType: row.SessionType,
				Podium:      make([]model.RoundPodiumDriver, 0, 3),
			})
			i = len(resp.Rounds) - 1
			index[k] = i
		}
		resp.Rounds[i].Podium = append(resp.Rounds[i].Podium, model.RoundPodiumDriver{
			FullName:    row.FullName,
			DriverCode:  row.DriverCode,
			TeamName:    row.TeamName,
			TeamColor:   row.TeamColor,
			HeadshotURL: row.HeadshotURL,
			FastestLap:  row.FastestLap,
		})
	}
	return resp, nil
}

// SessionResults returns the full classification of one session of a
// round (the main race or the sprint race).
func (s *SeasonService) SessionResults(
	ctx context.Context,
	year, round int,
	sessionType string,
) (*model.SessionResultsResponse, error) {
	sess, err := session.LoadByKey(ctx, s.pool, year, round, sessionType)
	if err != nil {
		return nil, err
	}
	circ, err := circuit.LoadByID(ctx, s.pool, sess.CircuitID)
	if err != nil {
		return nil, err
	}
	rows, err := result.LoadBySessionID(ctx, s.pool, sess.ID)
	if err != nil {
		return nil, err
	}

	resp := &model.SessionResultsResponse{
		Session: model.SessionInfo{
			ID:          sess.ID,
			Year:        sess.Year,
			Round:       sess.Round,
			SessionType: sess.SessionType,
			EventName:   sess.EventName,
			Date:        sess.Date,
			Circuit: model.CircuitInfo{
				Name:          circ.Name,
				Location:      circ.Location,
				Country:       circ.Country,
				TrackLengthKm: circ.TrackLengthKm,
			},
		},
		Results: make([]model.SessionResultDetail, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Results = append(resp.Results, model.SessionResultDetail{
			Position:    row.Result.Position,
			Status:      row.Result.Status,
			HeadshotURL: row.Result.HeadshotURL,
			Driver: model.DriverInfo{
				DriverNumber: row.Driver.DriverNumber,
				DriverCode:   row.Driver.DriverCode,
				FullName:     row.Driver.FullName,
			},
			Team: model.TeamInfo{
				Name:      row.Team.Name,
				TeamColor: row.Team.TeamColor,
			},
			GridPosition:  row.Result.GridPosition,
			Points:        row.Result.Points,
			LapsCompleted: row.Result.LapsCompleted,
			TimeSeconds:   row.Result.TimeSeconds,
			FastestLap:    row.Result.FastestLap,
			Q1TimeSeconds: row.Result.Q1TimeSeconds,
			Q2TimeSeconds: row.Result.Q2TimeSeconds,
			Q3TimeSeconds: row.Result.Q3TimeSeconds,
		})
	}
	return resp, nil
}

// LapTimes returns the lap-by-lap data of one session grouped per driver
// in final classification order.
func (s *SeasonService) LapTimes(
	ctx context.Context,
	year, round int,
	sessionType string,
) (*model.LapTimesResponse, error) {
	sess, err := session.LoadByKey(ctx, s.pool, year, round, sessionType)
	if err != nil {
		return nil, err
	}
	rows, err := lap.LoadSessionLaps(ctx, s.pool, sess.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	resp := &model.LapTimesResponse{
		Year:      year,
		Round:     round,
		EventName: sess.EventName,
		Drivers:   make([]model.DriverLapTimes, 0),
	}
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.DriverCode]
		if !ok {
			resp.Drivers = append(resp.Drivers, model.DriverLapTimes{
				DriverCode:    row.DriverCode,
				FullName:      row.FullName,
				TeamColor:     row.TeamColor,
				FinalPosition: row.FinalPosition,
				Laps:          make([]model.LapData, 0),
			})
			i = len(resp.Drivers) - 1
			index[row.DriverCode] = i
		}
		resp.Drivers[i].Laps = append(resp.Drivers[i].Laps, model.LapData{
			LapNumber:      row.LapNumber,
			LapTimeSeconds: row.LapTimeSeconds,
			Compound:       row.Compound,
			TyreLife:       row.TyreLife,
			TrackStatus:    row.TrackStatus,
		})
	}
	return resp, nil
}

// Weather returns all weather samples recorded during a round's session.
func (s *SeasonService) Weather(
	ctx context.Context,
	year, round int,
	sessionType string,
) ([]model.WeatherSample, error) {
	sess, err := session.LoadByKey(ctx, s.pool, year, round, sessionType)
	if err != nil {
		return nil, err
	}
	return weather.LoadBySessionID(ctx, s.pool, sess.ID)
}

// RaceControl returns the race control message feed of a round's session.
func (s *SeasonService) RaceControl(
	ctx context.Context,
	year, round int,
	sessionType string,
) ([]model.RaceControlMessage, error) {
	sess, err := session.LoadByKey(ctx, s.pool, year, round, sessionType)
	if err != nil {
		return nil, err
	}
	return racecontrol.LoadBySessionID(ctx, s.pool, sess.ID)
}

// PointsProgression builds the round-by-round cumulative points of all
// drivers or constructors of a season. Every progression starts with a
// synthetic round "0" at 0 points; an entity missing a session carries
// its previous total forward. Sprint rounds are separate data points
// identified by a "-sprint" suffix.
func (s *SeasonService) PointsProgression(
	ctx context.Context,
	year int,
	mode string,
) (*model.ProgressionResponse, error) {
	var rows []standings.ProgressionRow
	var err error
	switch mode {
	case "constructors":
		rows, err = standings.LoadConstructorProgression(ctx, s.pool, year)
	default:
		rows, err = standings.LoadDriverProgression(ctx, s.pool, year)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	sessions, err := standings.LoadSeasonSessions(ctx, s.pool, year)
	if err != nil {
		return nil, err
	}

	entities := buildProgressions(rows, sessions)
	resp := &model.ProgressionResponse{Year: year, Type: mode}
	if mode == "constructors" {
		resp.Constructors = make([]model.ConstructorProgression, 0, len(entities))
		for _, e := range entities {
			resp.Constructors = append(resp.Constructors, model.ConstructorProgression{
				TeamName:      e.key,
				TeamColor:     e.teamColor,
				FinalPosition: e.finalPosition,
				Progression:   e.progression,
			})
		}
	} else {
		resp.Type = "drivers"
		resp.Drivers = make([]model.DriverProgression, 0, len(entities))
		for _, e := range entities {
			resp.Drivers = append(resp.Drivers, model.DriverProgression{
				DriverCode:    e.key,
				FullName:      e.name,
				TeamColor:     e.teamColor,
				FinalPosition: e.finalPosition,
				Progression:   e.progression,
			})
		}
	}
	return resp, nil
}

type progressionEntity struct {
	key           string
	name          string
	teamColor     *string
	finalPosition int
	progression   []model.ProgressionPoint
	// cumulative points per round and session type
	sessions map[int]map[string]float64
}

//nolint:whitespace // can't make both editor and linter happy
func buildProgressions(
	rows []standings.ProgressionRow,
	sessions []standings.SeasonSession,
) []*progressionEntity {
	entities := make([]*progressionEntity, 0)
	index := make(map[string]*progressionEntity)
	for _, row := range rows {
		e, ok := index[row.Key]
		if !ok {
			e = &progressionEntity{
				key:       row.Key,
				name:      row.Name,
				teamColor: row.TeamColor,
				sessions:  make(map[int]map[string]float64),
			}
			index[row.Key] = e
			entities = append(entities, e)
		}
		if _, ok := e.sessions[row.Round]; !ok {
			e.sessions[row.Round] = make(map[string]float64)
		}
		e.sessions[row.Round][row.SessionType] = row.CumulativePoints
	}

	for _, e := range entities {
		e.progression = make([]model.ProgressionPoint, 0, len(sessions)+1)
		e.progression = append(e.progression,
			model.ProgressionPoint{Round: "0", CumulativePoints: 0})
		last := 0.0
		for _, sess := range sessions {
			if cum, ok := e.sessions[sess.Round][sess.SessionType]; ok {
				last = cum
			}
			roundID := fmt.Sprintf("%d", sess.Round)
			if sess.SessionType == model.SessionSprintRace {
				roundID = fmt.Sprintf("%d-sprint", sess.Round)
			}
			eventName := sess.EventName
			e.progression = append(e.progression, model.ProgressionPoint{
				Round:            roundID,
				CumulativePoints: last,
				EventName:        &eventName,
			})
		}
	}

	// final position by final cumulative points
	ranked := make([]*progressionEntity, len(entities))
	copy(ranked, entities)
	sort.SliceStable(ranked, func(i, j int) bool {
		return finalCumulative(ranked[i]) > finalCumulative(ranked[j])
	})
	for i, e := range ranked {
		e.finalPosition = i + 1
	}
	return entities
}

func finalCumulative(e *progressionEntity) float64 {
	if len(e.progression) == 0 {
		return 0
	}
	return e.progression[len(e.progression)-1].CumulativePoints
}
