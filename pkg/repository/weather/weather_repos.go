//nolint:whitespace // can't make both editor and linter happy
package weather

import (
	"context"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, w *model.WeatherSample) error {
	row := conn.QueryRow(ctx, `
	insert into weather (
		session_id, time_seconds, air_temp, track_temp, humidity,
		pressure, rainfall, wind_speed, wind_direction
	) values ($1,$2,$3,$4,$5,$6,$7,$8,$9) returning id
	`,
		w.SessionID, w.TimeSeconds, w.AirTemp, w.TrackTemp, w.Humidity,
		w.Pressure, w.Rainfall, w.WindSpeed, w.WindDirection)
	return row.Scan(&w.ID)
}

func LoadBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	[]model.WeatherSample, error,
) {
	rows, err := conn.Query(ctx, `
	select id, session_id, time_seconds, air_temp, track_temp, humidity,
		pressure, rainfall, wind_speed, wind_direction
	from weather where session_id=$1 order by time_seconds
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.WeatherSample, 0)
	for rows.Next() {
		var item model.WeatherSample
		if err := rows.Scan(
			&item.ID, &item.SessionID, &item.TimeSeconds, &item.AirTemp,
			&item.TrackTemp, &item.Humidity, &item.Pressure, &item.Rainfall,
			&item.WindSpeed, &item.WindDirection,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteBySessionID removes all samples of one session, returns number of
// rows deleted.
func DeleteBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from weather where session_id=$1", sessionID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
