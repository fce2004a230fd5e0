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
	"github.com/gnames/pantry/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

// databaseFlags adds flags that override the database settings of the
// configuration file and the environment.
func databaseFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("driver", "d", "", "database driver: postgres or sqlite")
	pf.String("db-path", "", "SQLite database file")
	pf.String("db-host", "", "PostgreSQL host")
	pf.Int("db-port", 0, "PostgreSQL port")
	pf.String("db-name", "", "PostgreSQL database name")
}

func driverFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("driver") {
		return nil
	}
	s, _ := cmd.Flags().GetString("driver")
	return []config.Option{config.OptDatabaseDriver(s)}
}

func pathFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("db-path") {
		return nil
	}
	s, _ := cmd.Flags().GetString("db-path")
	return []config.Option{config.OptDatabasePath(s)}
}

func hostFlag(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("db-host") {
		s, _ := cmd.Flags().GetString("db-host")
		res = append(res, config.OptDatabaseHost(s))
	}
	if cmd.Flags().Changed("db-port") {
		i, _ := cmd.Flags().GetInt("db-port")
		res = append(res, config.OptDatabasePort(i))
	}
	if cmd.Flags().Changed("db-name") {
		s, _ := cmd.Flags().GetString("db-name")
		res = append(res, config.OptDatabaseDatabase(s))
	}
	return res
}

// flagOptions collects options from the flags the user set. Flags win
// over the environment and the configuration file.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, f := range []funcFlag{driverFlag, pathFlag, hostFlag} {
		res = append(res, f(cmd)...)
	}
	return res
}
