//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lapwise/lapwise-go/pkg/db/migrate"
	database "github.com/lapwise/lapwise-go/pkg/db/postgres"
)

// create a pg connection pool for the lapwise testdatabase
func SetupTestDB() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		log.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("lapwise-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())

	if err = migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}

	pool, err := database.InitWithURL(dbURL)
	if err != nil {
		log.Fatal(err)
	}
	return pool
}

// SetupExternalTestDB connects to a database provided via TESTDB_URL
// instead of spinning up a container.
func SetupExternalTestDB() *pgxpool.Pool {
	dbURL := os.Getenv("TESTDB_URL")
	if err := migrate.MigrateDB(dbURL); err != nil {
		log.Fatal(err)
	}
	pool, err := database.InitWithURL(dbURL)
	if err != nil {
		log.Fatal(err)
	}
	return pool
}

func ClearLapsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from laps")
}

func ClearWeatherTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from weather")
}

func ClearRaceControlTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from race_control_messages")
}

func ClearSessionResultsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from session_results")
}

func ClearSessionsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from sessions")
}

func ClearDriversTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from drivers")
}

func ClearTeamsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from teams")
}

func ClearCircuitsTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from circuits")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearLapsTable(pool)
	ClearWeatherTable(pool)
	ClearRaceControlTable(pool)
	ClearSessionResultsTable(pool)
	ClearSessionsTable(pool)
	ClearDriversTable(pool)
	ClearTeamsTable(pool)
	ClearCircuitsTable(pool)
}
