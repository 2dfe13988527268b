//nolint:whitespace // can't make both editor and linter happy
package lap

import (
	"context"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

func Create(ctx context.Context, conn repository.Querier, l *model.Lap) error {
	row := conn.QueryRow(ctx, `
	insert into laps (
		session_id, driver_id, lap_number, lap_time_seconds,
		sector1_time_seconds, sector2_time_seconds, sector3_time_seconds,
		lap_start_time_seconds, sector1_session_time_seconds,
		sector2_session_time_seconds, sector3_session_time_seconds,
		pit_in_time_seconds, pit_out_time_seconds, stint,
		speed_i1, speed_i2, speed_fl, speed_st,
		compound, tyre_life, fresh_tyre, position, track_status,
		is_personal_best, is_accurate, deleted, deleted_reason
	) values (
		$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,
		$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27
	) returning id
	`,
		l.SessionID, l.DriverID, l.LapNumber, l.LapTimeSeconds,
		l.Sector1TimeSeconds, l.Sector2TimeSeconds, l.Sector3TimeSeconds,
		l.LapStartTimeSeconds, l.Sector1SessionTimeSeconds,
		l.Sector2SessionTimeSeconds, l.Sector3SessionTimeSeconds,
		l.PitInTimeSeconds, l.PitOutTimeSeconds, l.Stint,
		l.SpeedI1, l.SpeedI2, l.SpeedFL, l.SpeedST,
		l.Compound, l.TyreLife, l.FreshTyre, l.Position, l.TrackStatus,
		l.IsPersonalBest, l.IsAccurate, l.Deleted, l.DeletedReason)
	return row.Scan(&l.ID)
}

// SessionLapRow is one lap of a session joined with the lapping driver
// and their final classification.
type SessionLapRow struct {
	LapNumber      int
	LapTimeSeconds *float64
	Compound       *string
	TyreLife       *int
	TrackStatus    *string
	DriverCode     string
	FullName       string
	TeamColor      *string
	FinalPosition  *int
}

// LoadSessionLaps returns all laps of a session with driver and team
// info, ordered by final classification and lap number so consumers can
// group by driver in one pass.
func LoadSessionLaps(ctx context.Context, conn repository.Querier, sessionID int) (
	[]SessionLapRow, error,
) {
	rows, err := conn.Query(ctx, `
	select l.lap_number, l.lap_time_seconds, l.compound, l.tyre_life,
		l.track_status, d.driver_code, d.full_name, t.team_color, sr.position
	from laps l
	join drivers d on l.driver_id = d.id
	join session_results sr
		on sr.session_id = l.session_id and sr.driver_id = l.driver_id
	join teams t on sr.team_id = t.id
	where l.session_id = $1
	order by sr.position nulls last, l.lap_number
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SessionLapRow, 0)
	for rows.Next() {
		var item SessionLapRow
		if err := rows.Scan(
			&item.LapNumber, &item.LapTimeSeconds, &item.Compound,
			&item.TyreLife, &item.TrackStatus, &item.DriverCode,
			&item.FullName, &item.TeamColor, &item.FinalPosition,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteBySessionID removes all laps of one session, returns number of
// rows deleted.
func DeleteBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from laps where session_id=$1", sessionID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
