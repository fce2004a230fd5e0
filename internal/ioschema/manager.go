// Package ioschema implements schema.Manager for database schema
// management. This is an impure I/O package that wraps GORM
// AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// migrateConns is the connection limit while GORM migrates. GORM may
// hold a result set open while it asks for more metadata, which would
// block forever on a single connection.
const migrateConns = 4

// manager implements the schema.Manager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new schema.Manager.
func NewManager(op db.Operator) schema.Manager {
	return &manager{operator: op}
}

// Create creates the pantry tables with GORM AutoMigrate.
// Running it on an existing database only adds what is missing.
func (m *manager) Create(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	gormDB, err := m.open()
	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(migrateConns)
	defer sqlDB.SetMaxOpenConns(1)

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("schema is up to date",
		"driver", m.operator.Driver(),
		"tables", len(schema.TableNames()),
	)

	return nil
}

// Missing returns pantry tables that do not exist yet.
func (m *manager) Missing(ctx context.Context) ([]string, error) {
	var res []string
	for _, v := range schema.TableNames() {
		exists, err := m.operator.TableExists(ctx, v)
		if err != nil {
			return nil, err
		}
		if !exists {
			res = append(res, v)
		}
	}
	return res, nil
}

func (m *manager) open() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch m.operator.Driver() {
	case "sqlite":
		dialector = &sqlite.Dialector{
			DriverName: "sqlite",
			Conn:       m.operator.DB(),
		}
	default:
		dialector = postgres.New(postgres.Config{Conn: m.operator.DB()})
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, GORMConnectionError(m.operator.Driver(), err)
	}
	return gormDB, nil
}
