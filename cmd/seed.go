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
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/internal/iofs"
	"github.com/gnames/pantry/internal/iorepo"
	"github.com/gnames/pantry/internal/ioseed"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	var quiet bool

	seedCmd := &cobra.Command{
		Use:   "seed [catalog.yaml]",
		Short: "Import countries, foods and ingredients from a catalog",
		Long: `Import countries, foods and their ingredients from a YAML catalog.

Countries that already exist are reused, foods already present in
their country are skipped, and ingredients are matched by exact name.
Without an argument the sample catalog ~/.config/pantry/catalog.yaml
is created if needed and imported.

Examples:
  pantry seed
  pantry seed ./my-catalog.yaml
  pantry seed -q ./my-catalog.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args, quiet)
		},
	}

	seedCmd.Flags().BoolVarP(&quiet, "quiet", "q",
		false, "do not show the progress bar")

	return seedCmd
}

func runSeed(_ *cobra.Command, args []string, quiet bool) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	var path string
	var err error
	if len(args) > 0 {
		path = args[0]
	} else if path, err = iofs.EnsureCatalogFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cat, err := ioseed.Load(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	if err = createSchema(ctx, op); err != nil {
		return err
	}

	gn.Info("Importing catalog <em>%s</em>...", path)
	s := ioseed.New(iorepo.New(op), !quiet)
	res, err := s.Import(ctx, cat)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("%s", res.String())
	return nil
}
