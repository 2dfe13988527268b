//nolint:whitespace // can't make both editor and linter happy
package result

import (
	"context"
	"time"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, r *model.SessionResult) error {
	row := conn.QueryRow(ctx, `
	insert into session_results (
		session_id, driver_id, team_id, position, status, headshot_url,
		grid_position, points, laps_completed, time_seconds, fastest_lap,
		q1_time_seconds, q2_time_seconds, q3_time_seconds
	) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) returning id
	`,
		r.SessionID, r.DriverID, r.TeamID, r.Position, r.Status, r.HeadshotURL,
		r.GridPosition, r.Points, r.LapsCompleted, r.TimeSeconds, r.FastestLap,
		r.Q1TimeSeconds, r.Q2TimeSeconds, r.Q3TimeSeconds)
	return row.Scan(&r.ID)
}

// ResultRow is one classified entry of a session joined with its driver
// and team.
type ResultRow struct {
	Result model.SessionResult
	Driver model.Driver
	Team   model.Team
}

// LoadBySessionID returns the full classification of a session in
// finishing order, unclassified entries last.
func LoadBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	[]ResultRow, error,
) {
	rows, err := conn.Query(ctx, `
	select sr.id, sr.session_id, sr.driver_id, sr.team_id, sr.position, sr.status,
		sr.headshot_url, sr.grid_position, sr.points, sr.laps_completed,
		sr.time_seconds, sr.fastest_lap,
		sr.q1_time_seconds, sr.q2_time_seconds, sr.q3_time_seconds,
		d.id, d.full_name, d.driver_code, d.driver_number, d.country_code,
		d.default_headshot_url,
		t.id, t.name, t.team_color, t.country
	from session_results sr
	join drivers d on sr.driver_id = d.id
	join teams t on sr.team_id = t.id
	where sr.session_id = $1
	order by sr.position nulls last
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ResultRow, 0)
	for rows.Next() {
		var item ResultRow
		if err := rows.Scan(
			&item.Result.ID, &item.Result.SessionID, &item.Result.DriverID,
			&item.Result.TeamID, &item.Result.Position, &item.Result.Status,
			&item.Result.HeadshotURL, &item.Result.GridPosition, &item.Result.Points,
			&item.Result.LapsCompleted, &item.Result.TimeSeconds,
			&item.Result.FastestLap, &item.Result.Q1TimeSeconds,
			&item.Result.Q2TimeSeconds, &item.Result.Q3TimeSeconds,
			&item.Driver.ID, &item.Driver.FullName, &item.Driver.DriverCode,
			&item.Driver.DriverNumber, &item.Driver.CountryCode,
			&item.Driver.DefaultHeadshotURL,
			&item.Team.ID, &item.Team.Name, &item.Team.TeamColor, &item.Team.Country,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PodiumRow is one top-3 classification of a race or sprint race session.
type PodiumRow struct {
	Round       int
	EventName   string
	Date        time.Time
	CircuitName string
	SessionType string
	Position    int
	FullName    string
	DriverCode  string
	HeadshotURL *string
	TeamName    string
	TeamColor   *string
	FastestLap  bool
}

// LoadSeasonPodiums returns the top three of every race and sprint race
// of a season, ordered by round, session date and position.
func LoadSeasonPodiums(ctx context.Context, conn repository.Querier, year int) (
	[]PodiumRow, error,
) {
	rows, err := conn.Query(ctx, `
	select s.round, s.event_name, s.date, c.name, s.session_type,
		sr.position, d.full_name, d.driver_code, sr.headshot_url,
		t.name, t.team_color, sr.fastest_lap
	from sessions s
	join session_results sr on s.id = sr.session_id
	join drivers d on sr.driver_id = d.id
	join teams t on sr.team_id = t.id
	join circuits c on s.circuit_id = c.id
	where s.year = $1
		and s.session_type in ($2, $3)
		and sr.position between 1 and 3
	order by s.round, s.date, sr.position
	`, year, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]PodiumRow, 0)
	for rows.Next() {
		var item PodiumRow
		if err := rows.Scan(
			&item.Round, &item.EventName, &item.Date, &item.CircuitName,
			&item.SessionType, &item.Position, &item.FullName, &item.DriverCode,
			&item.HeadshotURL, &item.TeamName, &item.TeamColor, &item.FastestLap,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RaceHistoryRow is one race/sprint entry of a driver's career, newest
// first when loaded via LoadDriverRaceHistory.
type RaceHistoryRow struct {
	Year         int
	Round        int
	EventName    string
	SessionType  string
	Date         time.Time
	TeamName     string
	TeamColor    *string
	Position     *int
	GridPosition *int
	Points       *float64
	Status       string
	FastestLap   bool
	HeadshotURL  *string
}

func LoadDriverRaceHistory(ctx context.Context, conn repository.Querier, driverID int) (
	[]RaceHistoryRow, error,
) {
	rows, err := conn.Query(ctx, `
	select s.year, s.round, s.event_name, s.session_type, s.date,
		t.name, t.team_color, sr.position, sr.grid_position, sr.points,
		sr.status, sr.fastest_lap, sr.headshot_url
	from session_results sr
	join sessions s on sr.session_id = s.id
	join teams t on sr.team_id = t.id
	where sr.driver_id = $1 and s.session_type in ($2, $3)
	order by s.date desc
	`, driverID, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]RaceHistoryRow, 0)
	for rows.Next() {
		var item RaceHistoryRow
		if err := rows.Scan(
			&item.Year, &item.Round, &item.EventName, &item.SessionType,
			&item.Date, &item.TeamName, &item.TeamColor, &item.Position,
			&item.GridPosition, &item.Points, &item.Status, &item.FastestLap,
			&item.HeadshotURL,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// TeamRaceHistoryRow is one race/sprint entry of a constructor's history.
type TeamRaceHistoryRow struct {
	Year        int
	Round       int
	EventName   string
	SessionType string
	Date        time.Time
	DriverCode  string
	FullName    string
	Position    *int
	Points      *float64
	Status      string
}

func LoadTeamRaceHistory(ctx context.Context, conn repository.Querier, teamID int) (
	[]TeamRaceHistoryRow, error,
) {
	rows, err := conn.Query(ctx, `
	select s.year, s.round, s.event_name, s.session_type, s.date,
		d.driver_code, d.full_name, sr.position, sr.points, sr.status
	from session_results sr
	join sessions s on sr.session_id = s.id
	join drivers d on sr.driver_id = d.id
	where sr.team_id = $1 and s.session_type in ($2, $3)
	order by s.date desc, sr.position nulls last
	`, teamID, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]TeamRaceHistoryRow, 0)
	for rows.Next() {
		var item TeamRaceHistoryRow
		if err := rows.Scan(
			&item.Year, &item.Round, &item.EventName, &item.SessionType,
			&item.Date, &item.DriverCode, &item.FullName, &item.Position,
			&item.Points, &item.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteBySessionID removes all results of one session, returns number of
// rows deleted.
func DeleteBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx,
		"delete from session_results where session_id=$1", sessionID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
