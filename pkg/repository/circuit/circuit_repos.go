//nolint:whitespace // can't make both editor and linter happy
package circuit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, c *model.Circuit) error {
	row := conn.QueryRow(ctx, `
	insert into circuits (name, location, country, latitude, longitude, track_length_km)
	values ($1,$2,$3,$4,$5,$6) returning id
	`,
		c.Name, c.Location, c.Country, c.Latitude, c.Longitude, c.TrackLengthKm)
	return row.Scan(&c.ID)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Circuit, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.Circuit
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadByName(ctx context.Context, conn repository.Querier, name string) (
	*model.Circuit, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where name=$1", selector), name)
	var item model.Circuit
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

// EnsureCircuit loads a circuit by name, creating it first if unknown.
func EnsureCircuit(ctx context.Context, conn repository.Querier, c *model.Circuit) error {
	existing, err := LoadByName(ctx, conn, c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Create(ctx, conn, c)
	}
	if err != nil {
		return err
	}
	c.ID = existing.ID
	return nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from circuits where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`
select id, name, location, country, latitude, longitude, track_length_km
from circuits`)

func scan(e *model.Circuit, row pgx.Row) error {
	return row.Scan(&e.ID, &e.Name, &e.Location, &e.Country,
		&e.Latitude, &e.Longitude, &e.TrackLengthKm)
}
