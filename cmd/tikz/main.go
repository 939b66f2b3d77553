// seehuhn.de/go/tikz - create TikZ graphics from Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command tikz compiles TikZ pictures into PDF, PNG and SVG files.
//
// The input file contains the body of a tikzpicture environment.  For
// example:
//
//	echo '\draw (0,0) circle[radius=1];' | tikz render - -o circle.png
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz/config"
	"seehuhn.de/go/tikz/internal/logger"
)

// cfg is the configuration loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tikz",
	Short: "Compile TikZ pictures into images",
	Long: `tikz - compile TikZ pictures into PDF, PNG and SVG files.

Pictures are compiled with LaTeX (xelatex by default).  PNG files are
rendered with Ghostscript, SVG files with pdftocairo.

Configuration sources (in order of precedence):
1. Environment variables (TIKZ_* prefix, e.g. TIKZ_LATEX_COMMAND)
2. The file given by --config
3. Project config (./tikz.toml)
4. User config ($XDG_CONFIG_HOME/tikz/tikz.toml)
5. Default values

Examples:
  tikz render pic.tikz -o pic.pdf     # compile a picture
  tikz watch pic.tikz -o pic.png      # re-render on every change
  tikz ticks -- -1 1 --length 8       # show the ticks for an axis
  tikz config init                    # write a config file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}

		configFile, _ := cmd.Flags().GetString("config")
		c, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = c
		return cfg.Apply()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Write log messages as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: search for "+config.FileName+")")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(ticksCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	pterm.Error.Println(err.Error())
	if hint := errors.FlattenHints(err); hint != "" {
		pterm.Info.Println(hint)
	}
}
