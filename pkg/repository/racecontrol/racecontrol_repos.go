//nolint:whitespace // can't make both editor and linter happy
package racecontrol

import (
	"context"

	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
)

//nolint:lll // sql
func Create(ctx context.Context, conn repository.Querier, m *model.RaceControlMessage) error {
	row := conn.QueryRow(ctx, `
	insert into race_control_messages (
		session_id, time_seconds, lap, category, flag, scope, racing_number, message
	) values ($1,$2,$3,$4,$5,$6,$7,$8) returning id
	`,
		m.SessionID, m.TimeSeconds, m.Lap, m.Category, m.Flag, m.Scope,
		m.RacingNumber, m.Message)
	return row.Scan(&m.ID)
}

func LoadBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	[]model.RaceControlMessage, error,
) {
	rows, err := conn.Query(ctx, `
	select id, session_id, time_seconds, lap, category, flag, scope,
		racing_number, message
	from race_control_messages
	where session_id=$1 order by time_seconds nulls first, id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RaceControlMessage, 0)
	for rows.Next() {
		var item model.RaceControlMessage
		if err := rows.Scan(
			&item.ID, &item.SessionID, &item.TimeSeconds, &item.Lap,
			&item.Category, &item.Flag, &item.Scope, &item.RacingNumber,
			&item.Message,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteBySessionID removes all messages of one session, returns number
// of rows deleted.
func DeleteBySessionID(ctx context.Context, conn repository.Querier, sessionID int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx,
		"delete from race_control_messages where session_id=$1", sessionID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
