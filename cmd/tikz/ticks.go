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

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz/figure"
	"seehuhn.de/go/tikz/internal/float"
	"seehuhn.de/go/tikz/ticks"
)

var (
	ticksLength    float64
	ticksVertical  bool
	ticksFontSizes []float64
	ticksDensity   float64
	ticksFira      bool
)

var ticksCmd = &cobra.Command{
	Use:   "ticks MIN MAX",
	Short: "Show the ticks chosen for an axis",
	Long: `Show the tick positions and labels chosen for an axis which covers the
data range from MIN to MAX.

Use "--" before negative numbers, for example: tikz ticks -- -1 1`,
	Args: cobra.ExactArgs(2),
	RunE: runTicks,
}

func init() {
	ticksCmd.Flags().Float64Var(&ticksLength, "length", 8, "Length of the axis in cm")
	ticksCmd.Flags().BoolVar(&ticksVertical, "vertical", false, "Lay out the labels for a vertical axis")
	ticksCmd.Flags().Float64SliceVar(&ticksFontSizes, "fontsize", nil, "Allowed label font sizes in pt (default from config)")
	ticksCmd.Flags().Float64Var(&ticksDensity, "density", 0, "Target number of ticks per cm (default from config)")
	ticksCmd.Flags().BoolVar(&ticksFira, "fira", false, "Use the metrics of the Fira Math font")
}

func runTicks(cmd *cobra.Command, args []string) error {
	dmin, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrap(err, "MIN")
	}
	dmax, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.Wrap(err, "MAX")
	}

	fontSizes := ticksFontSizes
	if len(fontSizes) == 0 {
		fontSizes = figure.Defaults.TicksFontSizes
	}
	density := ticksDensity
	if density == 0 {
		density = figure.Defaults.TickDensity
	}
	gen := ticks.NewGenerator(fontSizes, density)
	if ticksFira {
		gen.Metrics = ticks.FiraMath
	}

	t, err := gen.Ticks(dmin, dmax, ticksLength, !ticksVertical)
	if err != nil {
		return err
	}

	data := pterm.TableData{{"value", "label", "position"}}
	for i, x := range t.Values {
		data = append(data, []string{
			float.Format(x, 6),
			t.Labels[i],
			float.Format(t.Position(x)*ticksLength, 3) + "cm",
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("axis range %s to %s, font size %gpt, score %.3f",
		float.Format(t.AxisMin, 6), float.Format(t.AxisMax, 6), t.FontSize, t.Score)
	if t.Scientific {
		pterm.Info.Printfln("labels are multiplied by %s", t.PowerLabel())
	}
	return nil
}
