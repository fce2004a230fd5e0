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
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/internal/iocli"
	"github.com/gnames/pantry/internal/iofs"
	"github.com/gnames/pantry/internal/iologger"
	"github.com/gnames/pantry/internal/iorepo"
	app "github.com/gnames/pantry/pkg"
	"github.com/gnames/pantry/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pantry",
		Short:   "Pantry keeps foods, recipes and ingredients by country",
		Long: `Pantry is an interactive console application for exploring foods
of different countries and keeping family recipes.

Without a subcommand it connects to the database, creates missing
tables and starts the menu loop. Accounts are local to the database.

Database:
  PostgreSQL (default) or a single SQLite file. Settings come from
  ~/.config/pantry/config.yaml and PANTRY_* environment variables.

Examples:
  pantry
  PANTRY_DATABASE_DRIVER=sqlite pantry
  pantry create --check
  pantry seed`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "pantry version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for pantry")
	databaseFlags(rootCmd)

	rootCmd.AddCommand(getCreateCmd(), getSeedCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Log with defaults until the configuration is read.
	defaultLog := config.New().Log
	if err = initLogging(homeDir, defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	if err = initLogging(cfg.HomeDir, cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)
	return nil
}

// initLogging replaces the current log destination.
func initLogging(home string, logCfg config.LogConfig) error {
	closeLog()
	var err error
	logCloser, err = iologger.Init(config.LogDir(home), logCfg)
	return err
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func runRoot(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = createSchema(ctx, op); err != nil {
		return err
	}

	cli := iocli.New(iorepo.New(op), os.Stdin, os.Stdout)
	return cli.Run(ctx)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are listed explicitly, so it is clear which ones are
	// allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("PANTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "PANTRY_DATABASE_DRIVER")
	v.BindEnv("database.host", "PANTRY_DATABASE_HOST")
	v.BindEnv("database.port", "PANTRY_DATABASE_PORT")
	v.BindEnv("database.user", "PANTRY_DATABASE_USER")
	v.BindEnv("database.password", "PANTRY_DATABASE_PASSWORD")
	v.BindEnv("database.database", "PANTRY_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "PANTRY_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "PANTRY_DATABASE_PATH")
	v.BindEnv("database.connect_timeout", "PANTRY_DATABASE_CONNECT_TIMEOUT")

	// Log configuration
	v.BindEnv("log.level", "PANTRY_LOG_LEVEL")
	v.BindEnv("log.format", "PANTRY_LOG_FORMAT")
	v.BindEnv("log.destination", "PANTRY_LOG_DESTINATION")

	v.AutomaticEnv()
}
