//nolint:whitespace // can't make both editor and linter happy
package standings

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

// DriverStandingRow is one driver's points total for a season. A driver
// switching teams mid-season yields one row per team, matching the
// grouping of the standings queries since the team is part of the key.
type DriverStandingRow struct {
	DriverCode  string
	FullName    string
	TeamName    string
	TeamColor   *string
	HeadshotURL *string
	TotalPoints float64
}

// LoadDriverStandings sums points over all point-awarding sessions of a
// season, best total first.
func LoadDriverStandings(ctx context.Context, conn repository.Querier, year int) (
	[]DriverStandingRow, error,
) {
	rows, err := conn.Query(ctx, `
	select d.driver_code, d.full_name, t.name, t.team_color,
		max(sr.headshot_url), sum(sr.points)
	from session_results sr
	join drivers d on sr.driver_id = d.id
	join teams t on sr.team_id = t.id
	join sessions s on sr.session_id = s.id
	where s.year = $1 and sr.points is not null
	group by d.id, d.driver_code, d.full_name, t.name, t.team_color
	order by sum(sr.points) desc
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DriverStandingRow, 0)
	for rows.Next() {
		var item DriverStandingRow
		if err := rows.Scan(
			&item.DriverCode, &item.FullName, &item.TeamName, &item.TeamColor,
			&item.HeadshotURL, &item.TotalPoints,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type ConstructorStandingRow struct {
	TeamName    string
	TeamColor   *string
	TotalPoints float64
}

func LoadConstructorStandings(ctx context.Context, conn repository.Querier, year int) (
	[]ConstructorStandingRow, error,
) {
	rows, err := conn.Query(ctx, `
	select t.name, t.team_color, sum(sr.points)
	from session_results sr
	join teams t on sr.team_id = t.id
	join sessions s on sr.session_id = s.id
	where s.year = $1 and sr.points is not null
	group by t.id, t.name, t.team_color
	order by sum(sr.points) desc
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ConstructorStandingRow, 0)
	for rows.Next() {
		var item ConstructorStandingRow
		if err := rows.Scan(&item.TeamName, &item.TeamColor, &item.TotalPoints); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ProgressionRow is one entity/session cell of the cumulative points
// progression. Key is the driver code in drivers mode and the team name
// in constructors mode. The cumulative sum is computed by the database
// window function, ordered round ascending with sprint races before the
// main race of the same round.
type ProgressionRow struct {
	Key              string
	Name             string
	TeamColor        *string
	Round            int
	SessionType      string
	CumulativePoints float64
}

func LoadDriverProgression(ctx context.Context, conn repository.Querier, year int) (
	[]ProgressionRow, error,
) {
	rows, err := conn.Query(ctx, `
	select d.driver_code, d.full_name, t.team_color, s.round, s.session_type,
		sum(coalesce(sr.points, 0)) over (
			partition by d.id
			order by s.round, s.session_type desc
		)
	from session_results sr
	join drivers d on sr.driver_id = d.id
	join sessions s on sr.session_id = s.id
	join teams t on sr.team_id = t.id
	where s.year = $1 and s.session_type in ($2, $3)
	order by d.id, s.round, s.session_type desc
	`, year, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProgressionRows(rows)
}

func LoadConstructorProgression(ctx context.Context, conn repository.Querier, year int) (
	[]ProgressionRow, error,
) {
	rows, err := conn.Query(ctx, `
	select t.name, t.name, t.team_color, s.round, s.session_type,
		sum(coalesce(sr.points, 0)) over (
			partition by t.id
			order by s.round, s.session_type desc
		)
	from session_results sr
	join sessions s on sr.session_id = s.id
	join teams t on sr.team_id = t.id
	where s.year = $1 and s.session_type in ($2, $3)
	order by t.id, s.round, s.session_type desc
	`, year, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProgressionRows(rows)
}

// SeasonSession is one point-awarding session of a season, in
// chronological order (sprint race before the main race of a round).
type SeasonSession struct {
	Round       int
	EventName   string
	SessionType string
}

func LoadSeasonSessions(ctx context.Context, conn repository.Querier, year int) (
	[]SeasonSession, error,
) {
	rows, err := conn.Query(ctx, `
	select round, event_name, session_type
	from sessions
	where year = $1 and session_type in ($2, $3)
	order by round, session_type desc
	`, year, model.SessionRace, model.SessionSprintRace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SeasonSession, 0)
	for rows.Next() {
		var item SeasonSession
		if err := rows.Scan(&item.Round, &item.EventName, &item.SessionType); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanProgressionRows(rows pgx.Rows) ([]ProgressionRow, error) {
	items := make([]ProgressionRow, 0)
	for rows.Next() {
		var item ProgressionRow
		if err := rows.Scan(
			&item.Key, &item.Name, &item.TeamColor, &item.Round,
			&item.SessionType, &item.CumulativePoints,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
