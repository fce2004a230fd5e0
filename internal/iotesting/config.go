// Package iotesting provides shared test utilities for database tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gnames/pantry/pkg/config"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// TestDatabaseName is the database name used for PostgreSQL tests.
	TestDatabaseName = "pantry_test"

	postgresImage = "postgres:16-alpine"
)

// SQLiteConfig returns a configuration for a private in-memory SQLite
// database. The database lives as long as the operator keeps its
// connection open.
func SQLiteConfig(t testing.TB) *config.DatabaseConfig {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(fmt.Sprintf(
			"file:%s_%s?mode=memory&cache=shared",
			name, uuid.NewString()[:8],
		)),
	})
	return &cfg.Database
}

// PostgresConfig starts a disposable PostgreSQL container and returns
// a configuration pointing to it. The test is skipped in short mode and
// when Docker is not available.
func PostgresConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "pantry",
			"POSTGRES_PASSWORD": "pantry",
			"POSTGRES_DB":       TestDatabaseName,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(90 * time.Second),
	}

	container, err := startContainer(ctx, req)
	if err != nil {
		t.Skipf("cannot start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("cannot terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost(host),
		config.OptDatabasePort(port.Int()),
		config.OptDatabaseUser("pantry"),
		config.OptDatabasePassword("pantry"),
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptDatabaseConnectTimeout(10),
	})
	return &cfg.Database
}

// startContainer turns a panic from a missing Docker daemon into an error.
func startContainer(
	ctx context.Context,
	req testcontainers.ContainerRequest,
) (c testcontainers.Container, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker is not available: %v", r)
		}
	}()
	return testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
}
