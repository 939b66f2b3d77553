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

// Package config reads the settings of the tikz command and library from
// TOML files and environment variables.
//
// Settings are looked up in the file given on the command line, or else in
// tikz.toml in the current directory or in $XDG_CONFIG_HOME/tikz/.
// Environment variables like TIKZ_LATEX_COMMAND override the file.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/figure"
	"seehuhn.de/go/tikz/latex"
	"seehuhn.de/go/tikz/render"
)

// ErrInvalid indicates a configuration value which cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	LaTeX  LaTeX             `mapstructure:"latex" toml:"latex"`
	Render Render            `mapstructure:"render" toml:"render"`
	Figure figure.Parameters `mapstructure:"figure" toml:"figure"`
}

// LaTeX configures the compiler.
type LaTeX struct {
	// Command is the LaTeX command line, using shell quoting rules.
	Command string `mapstructure:"command" toml:"command"`

	// Cache enables the reuse of PDF files from earlier runs.
	Cache bool `mapstructure:"cache" toml:"cache"`
}

// Render configures the conversion of PDF files into images.
type Render struct {
	DisplayDPI   float64 `mapstructure:"display_dpi" toml:"display_dpi"`
	FileDPI      float64 `mapstructure:"file_dpi" toml:"file_dpi"`
	Ghostscript  string  `mapstructure:"ghostscript" toml:"ghostscript"`
	SVGCommand   string  `mapstructure:"svg_command" toml:"svg_command"`
	PreviewWidth int     `mapstructure:"preview_width" toml:"preview_width"`
}

// Apply makes c the configuration used by the library packages.
// The configuration is validated first, nothing is changed if this fails.
func (c *Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}

	command, _ := shellquote.Split(c.LaTeX.Command)
	svgCommand, _ := shellquote.Split(c.Render.SVGCommand)

	latex.DefaultCommand = command
	latex.DefaultCache = c.LaTeX.Cache
	render.Default = &render.Renderer{
		Ghostscript: c.Render.Ghostscript,
		SVGCommand:  svgCommand,
	}
	tikz.DisplayDPI = c.Render.DisplayDPI
	tikz.FileDPI = c.Render.FileDPI
	tikz.PreviewWidth = c.Render.PreviewWidth
	figure.Defaults = c.Figure.Clone()
	return nil
}

// Marshal returns c in TOML format.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode configuration")
	}
	return data, nil
}
