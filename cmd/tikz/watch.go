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

package main

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz/internal/watch"
	"seehuhn.de/go/tikz/latex"
)

var (
	watchFlags  pictureFlags
	watchOutput string
	watchDPI    float64
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Render a picture again whenever the file changes",
	Long: `Render a picture, and render it again whenever FILE changes.

LaTeX errors are shown, and the previous output file is left in place.
Press Ctrl-C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output file (.pdf, .png or .svg)")
	watchCmd.Flags().Float64Var(&watchDPI, "dpi", 0, "Resolution of PNG output (default from config)")
	_ = watchCmd.MarkFlagRequired("output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	// One compiler for all runs, so that unchanged pictures are not
	// compiled again.
	compiler, err := latex.New("")
	if err != nil {
		return err
	}
	defer compiler.Close()

	var mu sync.Mutex
	update := func() {
		mu.Lock()
		defer mu.Unlock()
		reportRender(renderWith(ctx, compiler, name))
	}

	update()
	pterm.Info.Printfln("watching %s, press Ctrl-C to stop", name)
	w := &watch.Watcher{
		Path:     name,
		OnChange: update,
	}
	return w.Run(ctx)
}

func renderWith(ctx context.Context, compiler *latex.Compiler, name string) error {
	pic, err := watchFlags.loadPicture(name)
	if err != nil {
		return err
	}
	pic.Compiler = compiler
	return pic.WriteImage(ctx, watchOutput, watchDPI)
}

func reportRender(err error) {
	var latexErr *latex.Error
	switch {
	case errors.As(err, &latexErr):
		pterm.Error.Println("LaTeX has failed")
		pterm.FgRed.Println(latexErr.Message())
	case err != nil:
		printError(err)
	default:
		pterm.Success.Printfln("updated %s", watchOutput)
	}
}
