package iodb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/internal/iotesting"
	"github.com/gnames/pantry/pkg/config"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyConn fails the next statements with a dropped-connection error
// and then delegates to a real connection. Close is a no-op so an
// in-memory database survives reconnects.
type flakyConn struct {
	db       *sql.DB
	failures *int
}

func (f *flakyConn) fail() error {
	if *f.failures > 0 {
		*f.failures--
		return driver.ErrBadConn
	}
	return nil
}

func (f *flakyConn) QueryContext(
	ctx context.Context, query string, args ...any,
) (*sql.Rows, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.db.QueryContext(ctx, query, args...)
}

func (f *flakyConn) ExecContext(
	ctx context.Context, query string, args ...any,
) (sql.Result, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.db.ExecContext(ctx, query, args...)
}

func (f *flakyConn) PingContext(ctx context.Context) error {
	return f.db.PingContext(ctx)
}

func (f *flakyConn) Close() error { return nil }

func (f *flakyConn) Unwrap() *sql.DB { return f.db }

// flakyOperator returns an operator over in-memory SQLite whose
// connection drops the given number of times. It also reports how many
// times a connection was opened.
func flakyOperator(t *testing.T, failures int) (*sqlOperator, *int, *int) {
	ctx := context.Background()
	cfg := iotesting.SQLiteConfig(t)
	real, err := openDB(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { real.Close() })

	fails := failures
	opens := 0
	op := &sqlOperator{
		cfg: cfg,
		open: func(context.Context, *config.DatabaseConfig) (conn, error) {
			opens++
			return &flakyConn{db: sqlDB(real), failures: &fails}, nil
		},
	}
	return op, &fails, &opens
}

func setupCountries(t *testing.T, op *sqlOperator, names ...string) {
	ctx := context.Background()
	_, err := op.Exec(ctx, `CREATE TABLE countries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`)
	require.NoError(t, err)
	for _, v := range names {
		n, err := op.Exec(ctx, "INSERT INTO countries (name) VALUES ($1)", v)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	}
}

func countryNames(
	ctx context.Context, op *sqlOperator,
) ([]string, error) {
	var res []string
	err := op.Query(ctx, func(rows *sql.Rows) error {
		res = nil
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			res = append(res, name)
		}
		return nil
	}, "SELECT name FROM countries ORDER BY name")
	return res, err
}

func TestSQLiteOperator(t *testing.T) {
	ctx := context.Background()
	op := NewOperator(iotesting.SQLiteConfig(t)).(*sqlOperator)
	defer op.Close()

	assert.Equal(t, "sqlite", op.Driver())
	assert.Nil(t, op.DB())

	// the first statement connects lazily
	setupCountries(t, op, "Italy", "Ghana", "Mexico")
	require.NotNil(t, op.DB())
	assert.Equal(t, 1, op.DB().Stats().MaxOpenConnections)

	names, err := countryNames(ctx, op)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ghana", "Italy", "Mexico"}, names)

	exists, err := op.TableExists(ctx, "countries")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOperatorErrors(t *testing.T) {
	ctx := context.Background()
	op, _, _ := flakyOperator(t, 0)
	setupCountries(t, op, "Ghana")

	tests := []struct {
		msg   string
		query string
		args  []any
		code  gn.ErrorCode
	}{
		{
			msg:   "duplicate name",
			query: "INSERT INTO countries (name) VALUES ($1)",
			args:  []any{"Ghana"},
			code:  errcode.ConstraintViolationError,
		},
		{
			msg:   "unknown table",
			query: "INSERT INTO planets (name) VALUES ($1)",
			args:  []any{"Mars"},
			code:  errcode.DBQueryError,
		},
	}

	for _, v := range tests {
		n, err := op.Exec(ctx, v.query, v.args...)
		assert.Equal(t, int64(0), n, v.msg)
		assert.Equal(t, v.code, errcode.Code(err), v.msg)
	}

	names, err := countryNames(ctx, op)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ghana"}, names)
}

func TestNotConnected(t *testing.T) {
	op := NewOperator(nil)
	_, err := op.Exec(context.Background(), "SELECT 1")
	assert.True(t, errcode.Is(err, errcode.DBNotConnectedError))
}

func TestConnectFailure(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath("/nonexistent-pantry-dir/sub/pantry.db"),
	})
	op := NewOperator(&cfg.Database)
	err := op.Connect(context.Background(), nil)
	assert.True(t, errcode.Is(err, errcode.DBConnectionError))
}

func TestReconnectOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("query recovers after one drop", func(t *testing.T) {
		op, fails, opens := flakyOperator(t, 0)
		setupCountries(t, op, "Ghana", "Italy")
		expected, err := countryNames(ctx, op)
		require.NoError(t, err)

		*fails = 1
		res, err := countryNames(ctx, op)
		require.NoError(t, err)
		assert.Equal(t, expected, res)
		assert.Equal(t, 2, *opens)
	})

	t.Run("query gives empty result after two drops", func(t *testing.T) {
		op, fails, opens := flakyOperator(t, 0)
		setupCountries(t, op, "Ghana")

		*fails = 2
		res, err := countryNames(ctx, op)
		assert.Empty(t, res)
		assert.True(t, errcode.Is(err, errcode.DBTransientError))
		assert.Equal(t, 2, *opens)

		// the next call connects again and works
		res, err = countryNames(ctx, op)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ghana"}, res)
	})

	t.Run("exec recovers after one drop", func(t *testing.T) {
		op, fails, _ := flakyOperator(t, 0)
		setupCountries(t, op)

		*fails = 1
		n, err := op.Exec(ctx, "INSERT INTO countries (name) VALUES ($1)", "Peru")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		res, err := countryNames(ctx, op)
		require.NoError(t, err)
		assert.Equal(t, []string{"Peru"}, res)
	})

	t.Run("exec gives zero after two drops", func(t *testing.T) {
		op, fails, _ := flakyOperator(t, 0)
		setupCountries(t, op)

		*fails = 2
		n, err := op.Exec(ctx, "INSERT INTO countries (name) VALUES ($1)", "Peru")
		assert.Equal(t, int64(0), n)
		assert.True(t, errcode.Is(err, errcode.DBTransientError))
	})

	t.Run("failed reconnect", func(t *testing.T) {
		op, fails, _ := flakyOperator(t, 0)
		setupCountries(t, op, "Ghana")

		*fails = 1
		open := op.open
		op.open = func(context.Context, *config.DatabaseConfig) (conn, error) {
			return nil, errors.New("connection refused")
		}
		res, err := countryNames(ctx, op)
		assert.Empty(t, res)
		assert.True(t, errcode.Is(err, errcode.DBTransientError))
		assert.True(t, errcode.Is(err, errcode.DBConnectionError))
		op.open = open
	})
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		msg string
		err error
		res bool
	}{
		{"nil", nil, false},
		{"bad conn", driver.ErrBadConn, true},
		{"conn done", fmt.Errorf("exec: %w", sql.ErrConnDone), true},
		{"eof", io.ErrUnexpectedEOF, true},
		{"canceled", context.Canceled, false},
		{"pg admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"pg connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"pg syntax", &pgconn.PgError{Code: "42601"}, false},
		{"message", errors.New("read: connection reset by peer"), true},
		{"ssl message", errors.New("SSL SYSCALL error: EOF detected"), true},
		{"ssl closed", errors.New("SSL connection has been closed unexpectedly"), true},
		{"ssl setup", errors.New("server does not support SSL, but SSL was required"), false},
		{"sslmode", errors.New(`invalid sslmode "maybe"`), false},
		{"no rows", sql.ErrNoRows, false},
		{"plain", errors.New("no such table: planets"), false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, IsTransient(v.err), v.msg)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(
		errors.New("constraint failed: UNIQUE constraint failed: users.user_name"),
	))
	assert.False(t, IsUniqueViolation(nil))
}

func TestCompact(t *testing.T) {
	assert.Equal(t,
		"SELECT name FROM countries WHERE id = $1",
		compact("SELECT name\n\t\tFROM countries\n\t\tWHERE id = $1"),
	)
}

func TestPostgresOperator(t *testing.T) {
	cfg := iotesting.PostgresConfig(t)
	ctx := context.Background()

	op := NewOperator(cfg)
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	_, err := op.Exec(ctx, `CREATE TABLE countries (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`)
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "countries")
	require.NoError(t, err)
	assert.True(t, exists)

	var id int64
	err = op.Query(ctx, func(rows *sql.Rows) error {
		if rows.Next() {
			return rows.Scan(&id)
		}
		return nil
	}, "INSERT INTO countries (name) VALUES ($1) RETURNING id", "Ghana")
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = op.Exec(ctx, "INSERT INTO countries (name) VALUES ($1)", "Ghana")
	assert.True(t, errcode.Is(err, errcode.ConstraintViolationError))
}
