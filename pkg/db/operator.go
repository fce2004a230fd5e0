package db

import (
	"context"
	"database/sql"

	"github.com/gnames/pantry/pkg/config"
)

// Operator defines the persistence handle used by schema management,
// repositories and seeding. It owns a single database connection and
// executes parameterized statements with positional placeholders
// ($1, $2, ...).
//
// A dropped connection is detected, reopened once, and the statement is
// retried once. If the retry fails as well, the operation returns an
// empty result together with a DBTransientError.
type Operator interface {
	// Connect opens the connection described by cfg and verifies it.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the connection.
	Close() error

	// Driver returns the configured engine: "postgres" or "sqlite".
	Driver() string

	// DB returns the underlying *sql.DB, or nil before Connect.
	// Schema management uses it to run GORM migrations.
	DB() *sql.DB

	// Query runs a statement that returns rows. The scan function
	// iterates the rows; it is called again from scratch if the statement
	// is retried after a reconnect, so it must reset what it collects.
	Query(
		ctx context.Context,
		scan func(*sql.Rows) error,
		query string,
		args ...any,
	) error

	// Exec runs a statement that does not return rows and reports
	// the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
