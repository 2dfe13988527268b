//nolint:whitespace // can't make both editor and linter happy
package session

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, s *model.Session) error {
	row := conn.QueryRow(ctx, `
	insert into sessions (year, round, session_type, event_name, date, circuit_id)
	values ($1,$2,$3,$4,$5,$6) returning id
	`,
		s.Year, s.Round, s.SessionType, s.EventName, s.Date, s.CircuitID)
	return row.Scan(&s.ID)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Session, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.Session
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

// LoadByKey resolves a session by its natural key (year, round, type).
func LoadByKey(
	ctx context.Context,
	conn repository.Querier,
	year, round int,
	sessionType string,
) (*model.Session, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where year=$1 and round=$2 and session_type=$3", selector),
		year, round, sessionType)
	var item model.Session
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

// AvailableSeasons returns all years with session data, newest first.
func AvailableSeasons(ctx context.Context, conn repository.Querier) ([]int, error) {
	rows, err := conn.Query(ctx,
		"select distinct year from sessions order by year desc")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		seasons = append(seasons, year)
	}
	return seasons, rows.Err()
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from sessions where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`
select id, year, round, session_type, event_name, date, circuit_id
from sessions`)

func scan(e *model.Session, row pgx.Row) error {
	return row.Scan(&e.ID, &e.Year, &e.Round, &e.SessionType,
		&e.EventName, &e.Date, &e.CircuitID)
}
