//nolint:whitespace // can't make both editor and linter happy
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, d *model.Driver) error {
	row := conn.QueryRow(ctx, `
	insert into drivers (
		full_name, driver_code, driver_number, country_code, default_headshot_url
	) values ($1,$2,$3,$4,$5) returning id
	`,
		d.FullName, d.DriverCode, d.DriverNumber, d.CountryCode, d.DefaultHeadshotURL)
	return row.Scan(&d.ID)
}

func LoadByID(ctx context.Context, conn repository.Querier, id int) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.Driver
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadByCode(ctx context.Context, conn repository.Querier, code string) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where driver_code=$1", selector), code)
	var item model.Driver
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func EnsureDriver(ctx context.Context, conn repository.Querier, d *model.Driver) error {
	existing, err := LoadByCode(ctx, conn, d.DriverCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return Create(ctx, conn, d)
	}
	if err != nil {
		return err
	}
	d.ID = existing.ID
	return nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from drivers where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`
select id, full_name, driver_code, driver_number, country_code, default_headshot_url
from drivers`)

func scan(e *model.Driver, row pgx.Row) error {
	return row.Scan(&e.ID, &e.FullName, &e.DriverCode, &e.DriverNumber,
		&e.CountryCode, &e.DefaultHeadshotURL)
}
