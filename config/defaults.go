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

package config

import (
	"github.com/spf13/viper"

	"seehuhn.de/go/tikz/figure"
)

// SetDefaults configures the default values of all settings.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("latex.command", "xelatex")
	v.SetDefault("latex.cache", true)

	v.SetDefault("render.display_dpi", 96.0)
	v.SetDefault("render.file_dpi", 300.0)
	v.SetDefault("render.ghostscript", "gs")
	v.SetDefault("render.svg_command", "pdftocairo -svg")
	v.SetDefault("render.preview_width", 0)

	d := figure.Defaults
	v.SetDefault("figure.width", d.Width)
	v.SetDefault("figure.margin_horizontal", d.MarginHorizontal)
	v.SetDefault("figure.margin_vertical", d.MarginVertical)
	v.SetDefault("figure.gap_horizontal", d.GapHorizontal)
	v.SetDefault("figure.gap_vertical", d.GapVertical)
	v.SetDefault("figure.padding_left", d.PaddingLeft)
	v.SetDefault("figure.padding_right", d.PaddingRight)
	v.SetDefault("figure.padding_bottom", d.PaddingBottom)
	v.SetDefault("figure.padding_top", d.PaddingTop)
	v.SetDefault("figure.figure_fontsize", d.FigureFontSize)
	v.SetDefault("figure.decorations_fontsize", d.DecorationsFontSize)
	v.SetDefault("figure.ticks_fontsizes", append([]float64(nil), d.TicksFontSizes...))
	v.SetDefault("figure.tick_density", d.TickDensity)
	v.SetDefault("figure.clip_margin", d.ClipMargin)
	v.SetDefault("figure.axis_offset", d.AxisOffset)
	v.SetDefault("figure.tick_length", d.TickLength)
}

// Default returns the configuration which is used when no config file
// is found.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	c, err := LoadWithViper(v)
	if err != nil {
		// the defaults always decode
		panic(err)
	}
	return c
}
