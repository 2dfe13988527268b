//nolint:whitespace // can't make both editor and linter happy
package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, t *model.Team) error {
	row := conn.QueryRow(ctx, `
	insert into teams (name, team_color, country) values ($1,$2,$3) returning id
	`,
		t.Name, t.TeamColor, t.Country)
	return row.Scan(&t.ID)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Team, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.Team
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadByName(ctx context.Context, conn repository.Querier, name string) (
	*model.Team, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where name=$1", selector), name)
	var item model.Team
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func EnsureTeam(ctx context.Context, conn repository.Querier, t *model.Team) error {
	existing, err := LoadByName(ctx, conn, t.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Create(ctx, conn, t)
	}
	if err != nil {
		return err
	}
	t.ID = existing.ID
	return nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from teams where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`select id, name, team_color, country from teams`)

func scan(e *model.Team, row pgx.Row) error {
	return row.Scan(&e.ID, &e.Name, &e.TeamColor, &e.Country)
}
