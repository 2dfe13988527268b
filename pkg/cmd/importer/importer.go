package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/lapwise/lapwise-go/log"
	"github.com/lapwise/lapwise-go/pkg/config"
	"github.com/lapwise/lapwise-go/pkg/db/postgres"
	"github.com/lapwise/lapwise-go/pkg/model"
	"github.com/lapwise/lapwise-go/pkg/repository"
	"github.com/lapwise/lapwise-go/pkg/repository/circuit"
	"github.com/lapwise/lapwise-go/pkg/repository/driver"
	lapRepos "github.com/lapwise/lapwise-go/pkg/repository/lap"
	"github.com/lapwise/lapwise-go/pkg/repository/racecontrol"
	"github.com/lapwise/lapwise-go/pkg/repository/result"
	sessionRepos "github.com/lapwise/lapwise-go/pkg/repository/session"
	"github.com/lapwise/lapwise-go/pkg/repository/team"
	"github.com/lapwise/lapwise-go/pkg/repository/weather"
)

var (
	dumpFile string
	replace  bool
)

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "loads a season dump file into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&dumpFile,
		"file",
		"f",
		"",
		"season dump file (json)")
	cmd.Flags().BoolVar(&replace,
		"replace",
		false,
		"replace sessions that are already present")
	//nolint:errcheck // flag is declared above
	cmd.MarkFlagRequired("file")
	return cmd
}

// SeasonDump is the on-disk format produced by the ingest scripts. One
// file holds one season with all sessions and their dependent data.
type SeasonDump struct {
	Year     int           `json:"year"`
	Sessions []SessionDump `json:"sessions"`
}

type SessionDump struct {
	Round       int                        `json:"round"`
	SessionType string                     `json:"session_type"`
	EventName   string                     `json:"event_name"`
	Date        time.Time                  `json:"date"`
	Circuit     model.Circuit              `json:"circuit"`
	Results     []ResultDump               `json:"results"`
	Laps        []LapDump                  `json:"laps"`
	Weather     []model.WeatherSample      `json:"weather"`
	RaceControl []model.RaceControlMessage `json:"race_control"`
}

type ResultDump struct {
	Driver model.Driver        `json:"driver"`
	Team   model.Team          `json:"team"`
	Result model.SessionResult `json:"result"`
}

type LapDump struct {
	DriverCode string    `json:"driver_code"`
	Lap        model.Lap `json:"lap"`
}

func runImport(ctx context.Context) error {
	data, err := os.ReadFile(dumpFile)
	if err != nil {
		return err
	}
	var dump SeasonDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return fmt.Errorf("could not parse %s: %w", dumpFile, err)
	}

	pool, err := postgres.InitWithURL(config.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	log.Info("Importing season",
		log.Int("year", dump.Year),
		log.Int("sessions", len(dump.Sessions)))

	for i := range dump.Sessions {
		if err := importSession(ctx, pool, dump.Year, &dump.Sessions[i]); err != nil {
			return fmt.Errorf("round %d %s: %w",
				dump.Sessions[i].Round, dump.Sessions[i].SessionType, err)
		}
	}
	log.Info("Import done")
	return nil
}

//nolint:funlen,cyclop // sequential import steps
func importSession(
	ctx context.Context,
	pool *pgxpool.Pool,
	year int,
	dump *SessionDump,
) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	//nolint:errcheck // rollback is a no-op after commit
	defer tx.Rollback(ctx)

	existing, err := sessionRepos.LoadByKey(ctx, tx, year, dump.Round, dump.SessionType)
	switch {
	case err == nil:
		if !replace {
			log.Info("Session already present, skipping",
				log.Int("round", dump.Round),
				log.String("sessionType", dump.SessionType))
			return nil
		}
		if err := deleteSessionData(ctx, tx, existing.ID); err != nil {
			return err
		}
	case errors.Is(err, pgx.ErrNoRows):
		// fresh import
	default:
		return err
	}

	if err := circuit.EnsureCircuit(ctx, tx, &dump.Circuit); err != nil {
		return err
	}
	sess := &model.Session{
		Year:        year,
		Round:       dump.Round,
		SessionType: dump.SessionType,
		EventName:   dump.EventName,
		Date:        dump.Date,
		CircuitID:   dump.Circuit.ID,
	}
	if existing != nil && replace {
		sess.ID = existing.ID
	} else if err := sessionRepos.Create(ctx, tx, sess); err != nil {
		return err
	}

	driverIDs := make(map[string]int)
	for i := range dump.Results {
		r := &dump.Results[i]
		if err := team.EnsureTeam(ctx, tx, &r.Team); err != nil {
			return err
		}
		if err := driver.EnsureDriver(ctx, tx, &r.Driver); err != nil {
			return err
		}
		driverIDs[r.Driver.DriverCode] = r.Driver.ID
		r.Result.SessionID = sess.ID
		r.Result.DriverID = r.Driver.ID
		r.Result.TeamID = r.Team.ID
		if err := result.Create(ctx, tx, &r.Result); err != nil {
			return err
		}
	}
	for i := range dump.Laps {
		l := &dump.Laps[i]
		driverID, ok := driverIDs[l.DriverCode]
		if !ok {
			log.Warn("lap for unknown driver, skipping",
				log.String("driverCode", l.DriverCode),
				log.Int("lap", l.Lap.LapNumber))
			continue
		}
		l.Lap.SessionID = sess.ID
		l.Lap.DriverID = driverID
		if err := lapRepos.Create(ctx, tx, &l.Lap); err != nil {
			return err
		}
	}
	for i := range dump.Weather {
		dump.Weather[i].SessionID = sess.ID
		if err := weather.Create(ctx, tx, &dump.Weather[i]); err != nil {
			return err
		}
	}
	for i := range dump.RaceControl {
		dump.RaceControl[i].SessionID = sess.ID
		if err := racecontrol.Create(ctx, tx, &dump.RaceControl[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Info("Imported session",
		log.Int("round", dump.Round),
		log.String("sessionType", dump.SessionType),
		log.Int("results", len(dump.Results)),
		log.Int("laps", len(dump.Laps)))
	return nil
}

func deleteSessionData(ctx context.Context, conn repository.Querier, sessionID int) error {
	if _, err := lapRepos.DeleteBySessionID(ctx, conn, sessionID); err != nil {
		return err
	}
	if _, err := result.DeleteBySessionID(ctx, conn, sessionID); err != nil {
		return err
	}
	if _, err := weather.DeleteBySessionID(ctx, conn, sessionID); err != nil {
		return err
	}
	if _, err := racecontrol.DeleteBySessionID(ctx, conn, sessionID); err != nil {
		return err
	}
	return nil
}
