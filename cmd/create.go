/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/internal/iodb"
	"github.com/gnames/pantry/internal/ioschema"
	"github.com/gnames/pantry/pkg/db"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var check bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the pantry database schema.

This command:
  1. Connects to PostgreSQL or SQLite using configuration settings
  2. Creates missing tables using GORM AutoMigrate

Existing tables and data are kept, so it is safe to run it again.
Use --check to only report tables that are missing.

Examples:
  pantry create
  pantry create --check
  pantry create -d sqlite --db-path ./pantry.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, check)
		},
	}

	createCmd.Flags().BoolVarP(&check, "check", "c",
		false, "report missing tables without creating them")

	return createCmd
}

func runCreate(_ *cobra.Command, _ []string, check bool) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if !check {
		return createSchema(ctx, op)
	}

	missing, err := ioschema.NewManager(op).Missing(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(missing) == 0 {
		gn.Info("All tables are in place")
		return nil
	}
	gn.Warn("Missing tables: <em>%s</em>", strings.Join(missing, ", "))
	gn.Info("Run 'pantry create' to add them")
	return nil
}

// connect checks the database settings and opens the connection.
func connect(ctx context.Context) (db.Operator, error) {
	if err := cfg.Validate(); err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}

	op := iodb.NewOperator(&cfg.Database)
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}

	d := cfg.Database
	if d.Driver == "sqlite" {
		gn.Info("Connected to database: <em>%s</em>", d.Path)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			d.User, d.Host, d.Port, d.Database)
	}
	return op, nil
}

func createSchema(ctx context.Context, op db.Operator) error {
	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
