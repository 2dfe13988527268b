//nolint:funlen,errcheck //ok for this test code
package session

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/lapwise/lapwise-go/pkg/model"
	circuitrepos "github.com/lapwise/lapwise-go/pkg/repository/circuit"
	"github.com/lapwise/lapwise-go/testsupport/testdb"
)

func testTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-03-02T15:00:00Z")
	return t
}

func createSampleEntry(db *pgxpool.Pool) *model.Session {
	ctx := context.Background()
	circ := &model.Circuit{Name: "testtrack", Location: "here", Country: "XX"}
	ret := &model.Session{
		Year:        2024,
		Round:       1,
		SessionType: model.SessionRace,
		EventName:   "Test Grand Prix",
		Date:        testTime(),
	}
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		if err := circuitrepos.Create(ctx, tx, circ); err != nil {
			return err
		}
		ret.CircuitID = circ.ID
		return Create(ctx, tx, ret)
	})
	if err != nil {
		log.Fatalf("createSampleEntry: %v\n", err)
	}
	return ret
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDB()
	sample := createSampleEntry(pool)

	tests := []struct {
		name    string
		arg     *model.Session
		wantErr bool
	}{
		{
			name: "new entry",
			arg: &model.Session{
				Year: 2024, Round: 1, SessionType: model.SessionSprintRace,
				EventName: "Test Grand Prix", Date: testTime(),
				CircuitID: sample.CircuitID,
			},
		},
		{
			name: "duplicate key",
			arg: &model.Session{
				Year: 2024, Round: 1, SessionType: model.SessionRace,
				EventName: "Test Grand Prix", Date: testTime(),
				CircuitID: sample.CircuitID,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		ctx := context.Background()
		t.Run(tt.name, func(t *testing.T) {
			err := Create(ctx, pool, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadByKey(t *testing.T) {
	pool := testdb.InitTestDB()
	sample := createSampleEntry(pool)

	got, err := LoadByKey(context.Background(), pool, 2024, 1, model.SessionRace)
	assert.NoError(t, err)
	assert.Equal(t, sample.ID, got.ID)
	assert.Equal(t, sample.EventName, got.EventName)

	_, err = LoadByKey(context.Background(), pool, 2024, 2, model.SessionRace)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestAvailableSeasons(t *testing.T) {
	pool := testdb.InitTestDB()
	sample := createSampleEntry(pool)

	ctx := context.Background()
	err := Create(ctx, pool, &model.Session{
		Year: 2023, Round: 1, SessionType: model.SessionRace,
		EventName: "Old Grand Prix", Date: testTime().AddDate(-1, 0, 0),
		CircuitID: sample.CircuitID,
	})
	assert.NoError(t, err)

	seasons, err := AvailableSeasons(ctx, pool)
	assert.NoError(t, err)
	// newest first
	assert.Equal(t, []int{2024, 2023}, seasons)
}
