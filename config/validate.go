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
	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
)

// Validate checks that the configuration is usable.  All errors wrap
// [ErrInvalid].
func (c *Config) Validate() error {
	if err := checkCommand("latex.command", c.LaTeX.Command); err != nil {
		return err
	}
	if err := checkCommand("render.svg_command", c.Render.SVGCommand); err != nil {
		return err
	}
	if c.Render.Ghostscript == "" {
		return errors.Wrap(ErrInvalid, "render.ghostscript cannot be empty")
	}

	if c.Render.DisplayDPI <= 0 {
		return errors.Wrapf(ErrInvalid, "render.display_dpi must be > 0, got %g", c.Render.DisplayDPI)
	}
	if c.Render.FileDPI <= 0 {
		return errors.Wrapf(ErrInvalid, "render.file_dpi must be > 0, got %g", c.Render.FileDPI)
	}
	// 0 = previews at full size
	if c.Render.PreviewWidth < 0 {
		return errors.Wrapf(ErrInvalid, "render.preview_width must be >= 0, got %d", c.Render.PreviewWidth)
	}

	f := &c.Figure
	if f.Width <= 0 {
		return errors.Wrapf(ErrInvalid, "figure.width must be > 0, got %g", f.Width)
	}
	nonNegative := []struct {
		key string
		val float64
	}{
		{"figure.margin_horizontal", f.MarginHorizontal},
		{"figure.margin_vertical", f.MarginVertical},
		{"figure.gap_horizontal", f.GapHorizontal},
		{"figure.gap_vertical", f.GapVertical},
		{"figure.padding_left", f.PaddingLeft},
		{"figure.padding_right", f.PaddingRight},
		{"figure.padding_bottom", f.PaddingBottom},
		{"figure.padding_top", f.PaddingTop},
		{"figure.clip_margin", f.ClipMargin},
		{"figure.axis_offset", f.AxisOffset},
		{"figure.tick_length", f.TickLength},
	}
	for _, x := range nonNegative {
		if x.val < 0 {
			return errors.Wrapf(ErrInvalid, "%s must be >= 0, got %g", x.key, x.val)
		}
	}
	if f.FigureFontSize <= 0 {
		return errors.Wrapf(ErrInvalid, "figure.figure_fontsize must be > 0, got %g", f.FigureFontSize)
	}
	if f.DecorationsFontSize <= 0 {
		return errors.Wrapf(ErrInvalid, "figure.decorations_fontsize must be > 0, got %g", f.DecorationsFontSize)
	}
	if len(f.TicksFontSizes) == 0 {
		return errors.Wrap(ErrInvalid, "figure.ticks_fontsizes cannot be empty")
	}
	for _, size := range f.TicksFontSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalid, "figure.ticks_fontsizes must be > 0, got %g", size)
		}
	}
	if f.TickDensity <= 0 {
		return errors.Wrapf(ErrInvalid, "figure.tick_density must be > 0, got %g", f.TickDensity)
	}
	return nil
}

func checkCommand(key, command string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.Wrapf(ErrInvalid, "%s: %v", key, err)
	}
	if len(args) == 0 {
		return errors.Wrapf(ErrInvalid, "%s cannot be empty", key)
	}
	return nil
}
