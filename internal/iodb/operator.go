// Package iodb implements the persistence handle on top of database/sql.
// PostgreSQL is reached through pgx's database/sql adapter, SQLite through
// modernc.org/sqlite. This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/pantry/pkg/config"
	"github.com/gnames/pantry/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// conn is the part of *sql.DB the handle relies on.
type conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
	Close() error
}

// connector opens a new connection for the given configuration.
type connector func(context.Context, *config.DatabaseConfig) (conn, error)

// sqlOperator implements db.Operator with exactly one open connection.
type sqlOperator struct {
	cfg  *config.DatabaseConfig
	open connector
	conn conn
}

// NewOperator creates a new database operator (without connecting).
// The configuration is used when a statement runs before Connect.
func NewOperator(cfg *config.DatabaseConfig) db.Operator {
	return &sqlOperator{cfg: cfg, open: openDB}
}

// Connect opens the connection and verifies it with a ping.
func (o *sqlOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	if cfg != nil {
		o.cfg = cfg
	}
	if o.cfg == nil {
		return NotConnectedError()
	}
	o.reset()

	c, err := o.open(ctx, o.cfg)
	if err != nil {
		return ConnectionError(o.cfg, err)
	}
	o.conn = c
	slog.Debug("connected to database", "driver", o.Driver())
	return nil
}

// Close releases the connection.
func (o *sqlOperator) Close() error {
	if o.conn == nil {
		return nil
	}
	err := o.conn.Close()
	o.conn = nil
	return err
}

// Driver returns the configured database engine.
func (o *sqlOperator) Driver() string {
	if o.cfg == nil || o.cfg.Driver == "" {
		return "postgres"
	}
	return o.cfg.Driver
}

// DB returns the underlying *sql.DB.
func (o *sqlOperator) DB() *sql.DB {
	return sqlDB(o.conn)
}

// Query runs a row-returning statement and hands the rows to scan.
func (o *sqlOperator) Query(
	ctx context.Context,
	scan func(*sql.Rows) error,
	query string,
	args ...any,
) error {
	return o.run(ctx, query, func(c conn) error {
		rows, err := c.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		if err = scan(rows); err != nil {
			return err
		}
		return rows.Err()
	})
}

// Exec runs a statement and returns the number of affected rows.
func (o *sqlOperator) Exec(
	ctx context.Context,
	query string,
	args ...any,
) (int64, error) {
	var res int64
	err := o.run(ctx, query, func(c conn) error {
		r, err := c.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		res, err = r.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return res, nil
}

// TableExists checks if a table exists in the current database.
func (o *sqlOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = current_schema()
			AND table_name = $1
		)
	`
	if o.Driver() == "sqlite" {
		query = `
			SELECT EXISTS (
				SELECT 1 FROM sqlite_master
				WHERE type = 'table' AND name = $1
			)
		`
	}

	var exists bool
	err := o.Query(ctx, func(rows *sql.Rows) error {
		exists = false
		if rows.Next() {
			return rows.Scan(&exists)
		}
		return nil
	}, query, tableName)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// run executes fn on the open connection, connecting lazily. A transient
// failure closes the connection, reconnects once and runs fn once more.
func (o *sqlOperator) run(
	ctx context.Context,
	query string,
	fn func(conn) error,
) error {
	if o.conn == nil {
		if err := o.Connect(ctx, nil); err != nil {
			return err
		}
	}

	err := fn(o.conn)
	if err == nil {
		return nil
	}
	if !IsTransient(err) {
		return classify(query, err)
	}

	slog.Warn("lost database connection, reconnecting",
		"query", compact(query), "error", err)
	if cerr := o.Connect(ctx, nil); cerr != nil {
		slog.Error("reconnect failed", "error", cerr)
		return TransientError(query, cerr)
	}

	err = fn(o.conn)
	if err == nil {
		slog.Info("statement succeeded after reconnect",
			"query", compact(query))
		return nil
	}
	if IsTransient(err) {
		slog.Error("statement failed after reconnect",
			"query", compact(query), "error", err)
		o.reset()
		return TransientError(query, err)
	}
	return classify(query, err)
}

func (o *sqlOperator) reset() {
	if o.conn == nil {
		return
	}
	if err := o.conn.Close(); err != nil {
		slog.Debug("closing stale connection", "error", err)
	}
	o.conn = nil
}

func classify(query string, err error) error {
	if IsUniqueViolation(err) {
		slog.Debug("unique constraint violation",
			"query", compact(query), "error", err)
		return ConstraintError(query, err)
	}
	slog.Error("query failed", "query", compact(query), "error", err)
	return QueryError(query, err)
}

// openDB opens a *sql.DB limited to a single connection and pings it.
func openDB(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) (conn, error) {
	var res *sql.DB
	var err error

	switch cfg.Driver {
	case "sqlite":
		res, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, err
		}
	default:
		pgCfg, err := pgx.ParseConfig(postgresURL(cfg))
		if err != nil {
			return nil, err
		}
		res = stdlib.OpenDB(*pgCfg)
	}

	res.SetMaxOpenConns(1)
	res.SetMaxIdleConns(1)

	timeout := time.Duration(cfg.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err = res.PingContext(pingCtx); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func postgresURL(cfg *config.DatabaseConfig) string {
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	if cfg.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(cfg.ConnectTimeout))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// sqlDB digs the *sql.DB out of a connection.
func sqlDB(c conn) *sql.DB {
	switch v := c.(type) {
	case *sql.DB:
		return v
	case interface{ Unwrap() *sql.DB }:
		return v.Unwrap()
	default:
		return nil
	}
}

// compact squeezes whitespace out of a statement for log lines.
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

