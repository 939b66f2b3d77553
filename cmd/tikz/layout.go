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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz/figure"
)

var (
	layoutWidth  float64
	layoutAspect float64
	layoutViews  []string
	layoutOutput string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Draw the views of a figure layout",
	Long: `Draw the outer and inner boxes of the views of a figure layout.

Without --view, a single view with the given aspect ratio is used.
Otherwise each --view adds a view to a grid layout.  A view is given as
ROWS:COLS or ROWS:COLS:ASPECT, where ROWS and COLS are a grid index like
"0" or a range like "0-2".  Views with aspect 0 fill the space left by the
other views.

Example:
  tikz layout --view 0:0:1 --view 0:1:1 --view 1:0-1:3 -o layout.pdf`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().Float64Var(&layoutWidth, "width", 0, "Width of the figure in cm (default from config)")
	layoutCmd.Flags().Float64Var(&layoutAspect, "aspect", 4.0/3.0, "Aspect ratio of the single view")
	layoutCmd.Flags().StringArrayVar(&layoutViews, "view", nil, "Add a grid view ROWS:COLS[:ASPECT] (repeatable)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "Output file (.pdf, .png or .svg)")
	_ = layoutCmd.MarkFlagRequired("output")
}

func runLayout(cmd *cobra.Command, args []string) error {
	layout, err := buildLayout(layoutWidth, layoutAspect, layoutViews)
	if err != nil {
		return err
	}

	pic, err := figure.LayoutPicture(layout)
	if err != nil {
		return err
	}
	defer pic.Close()

	if err := pic.WriteImage(cmd.Context(), layoutOutput, 0); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", layoutOutput)
	return nil
}

func buildLayout(width, aspect float64, views []string) (figure.Layout, error) {
	if len(views) == 0 {
		l := figure.NewSimpleLayout()
		if width > 0 {
			l.Width = width
		}
		l.AspectRatio = aspect
		return l, nil
	}

	l := figure.NewGridLayout()
	if width > 0 {
		l.Width = width
	}
	for _, spec := range views {
		rows, cols, aspect, err := parseView(spec)
		if err != nil {
			return nil, err
		}
		if err := l.AddView(rows, cols, aspect); err != nil {
			return nil, errors.Wrapf(err, "view %q", spec)
		}
	}
	return l, nil
}

// parseView parses a view given as ROWS:COLS or ROWS:COLS:ASPECT.
func parseView(spec string) ([]int, []int, float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, nil, 0, errors.Newf("malformed view %q, expected ROWS:COLS[:ASPECT]", spec)
	}
	rows, err := parseRange(parts[0])
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "view %q", spec)
	}
	cols, err := parseRange(parts[1])
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "view %q", spec)
	}
	var aspect float64
	if len(parts) == 3 {
		aspect, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, nil, 0, errors.Wrapf(err, "view %q", spec)
		}
	}
	return rows, cols, aspect, nil
}

// parseRange parses "3" or "1-3".
func parseRange(s string) ([]int, error) {
	from, to, isRange := strings.Cut(s, "-")
	a, err := strconv.Atoi(from)
	if err != nil {
		return nil, errors.Newf("invalid grid index %q", s)
	}
	if !isRange {
		return []int{a}, nil
	}
	b, err := strconv.Atoi(to)
	if err != nil || b < a {
		return nil, errors.Newf("invalid grid range %q", s)
	}
	return []int{a, b}, nil
}
