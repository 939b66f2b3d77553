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

// Package figure arranges coordinate systems on a page and draws their
// axes.
//
// A [Layout] divides the figure into views.  Each view consists of an
// outer box, which includes room for axis ticks and labels, and an inner
// box, which holds the plotted data.  [Figure.Axes] creates a coordinate
// system inside the inner box of a view.
//
// All lengths are in centimeters, font sizes are in TeX points.
package figure

import (
	"github.com/cockroachdb/errors"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/ticks"
)

var (
	// ErrLayout indicates that the views do not fit into the figure.
	ErrLayout = errors.New("impossible layout")

	// ErrNoView is returned when a view index is out of range.
	ErrNoView = errors.New("no such view")
)

// TeXMaxDimen is the largest length TeX can process, in centimeters.
const TeXMaxDimen = (1<<30 - 1) / 65536.0 / 72.27 * 2.54

// tolerance for layout constraints: one TeX scaled point
const tolerance = tikz.Pt / 65536

// Parameters control the geometry and the fonts of figures.
type Parameters struct {
	Width float64 `mapstructure:"width" toml:"width"`

	MarginHorizontal float64 `mapstructure:"margin_horizontal" toml:"margin_horizontal"`
	MarginVertical   float64 `mapstructure:"margin_vertical" toml:"margin_vertical"`
	GapHorizontal    float64 `mapstructure:"gap_horizontal" toml:"gap_horizontal"`
	GapVertical      float64 `mapstructure:"gap_vertical" toml:"gap_vertical"`

	PaddingLeft   float64 `mapstructure:"padding_left" toml:"padding_left"`
	PaddingRight  float64 `mapstructure:"padding_right" toml:"padding_right"`
	PaddingBottom float64 `mapstructure:"padding_bottom" toml:"padding_bottom"`
	PaddingTop    float64 `mapstructure:"padding_top" toml:"padding_top"`

	FigureFontSize      float64   `mapstructure:"figure_fontsize" toml:"figure_fontsize"`
	DecorationsFontSize float64   `mapstructure:"decorations_fontsize" toml:"decorations_fontsize"`
	TicksFontSizes      []float64 `mapstructure:"ticks_fontsizes" toml:"ticks_fontsizes"`
	TickDensity         float64   `mapstructure:"tick_density" toml:"tick_density"`

	ClipMargin float64 `mapstructure:"clip_margin" toml:"clip_margin"`
	AxisOffset float64 `mapstructure:"axis_offset" toml:"axis_offset"`
	TickLength float64 `mapstructure:"tick_length" toml:"tick_length"`
}

// Defaults holds the parameters used for new layouts and figures.
var Defaults = Parameters{
	Width:               16,
	MarginHorizontal:    0.5,
	MarginVertical:      0.5,
	GapHorizontal:       0.5,
	GapVertical:         0.5,
	PaddingLeft:         1,
	PaddingRight:        0.5,
	PaddingBottom:       1,
	PaddingTop:          0.5,
	FigureFontSize:      10,
	DecorationsFontSize: 9,
	TicksFontSizes:      []float64{8, 9},
	TickDensity:         0.75,
	ClipMargin:          0.8 * tikz.Pt,
	AxisOffset:          0.1,
	TickLength:          0.1,
}

// Clone returns a copy of p which shares no memory with p.
func (p Parameters) Clone() Parameters {
	p.TicksFontSizes = append([]float64(nil), p.TicksFontSizes...)
	return p
}

// Figure is a picture with a fixed size, which is divided into views by a
// layout.  Each view can hold a coordinate system, see [Figure.Axes].
type Figure struct {
	*tikz.Picture

	// Params holds the font sizes and axis dimensions used by the figure.
	Params Parameters

	Layout        Layout
	Width, Height float64
	Views         []View

	// Ticks chooses the axis ticks.
	Ticks *ticks.Generator
}

// New returns a figure with the given layout.  If layout is nil, a
// [SimpleLayout] is used.  The optional font is LaTeX code which selects
// the font of the figure, in addition to the figure font size.
//
// The figure uses the Fira fonts and therefore requires xelatex or
// lualatex.
func New(layout Layout, font string) (*Figure, error) {
	if layout == nil {
		layout = NewSimpleLayout()
	}
	w, h, err := layout.Size()
	if err != nil {
		return nil, err
	}
	views, err := layout.Views()
	if err != nil {
		return nil, err
	}

	params := Defaults.Clone()
	pic := tikz.NewPicture(tikz.Opt("font", tikz.FontSize(params.FigureFontSize)+font))

	// ensure the bounding box of the figure
	pic.Clip(tikz.XY(0, 0), tikz.Rectangle{To: tikz.XY(w, h)})
	pic.Fira()

	gen := ticks.NewGenerator(params.TicksFontSizes, params.TickDensity)
	gen.Metrics = ticks.FiraMath

	return &Figure{
		Picture: pic,
		Params:  params,
		Layout:  layout,
		Width:   w,
		Height:  h,
		Views:   views,
		Ticks:   gen,
	}, nil
}

// DrawLayout draws the outlines of the layout in red.
func (f *Figure) DrawLayout() error {
	return DrawLayout(f.AddScope(tikz.Opt("color", "red")), f.Layout)
}

// Title adds a title above the views.  The descenders of the title touch
// the top of the layout, and the bounding box is extended to leave a
// vertical margin above the title.
func (f *Figure) Title(label string) {
	s := f.AddScope(tikz.Options{})
	s.Node(label, "title", tikz.XY(f.Width/2, f.Height)).
		With(tikz.Opt("anchor", "base").
			Set("yshift", `depth("gjpqy")`).
			Set("outer_sep", 0).
			Set("inner_sep", 0))
	s.Path(tikz.At("title.base"),
		tikz.Opt("yshift", `height("HAbdfhk")`),
		tikz.Relative(tikz.XY(0, f.Params.MarginVertical)))
}

// Axes adds a coordinate system in the given view.  The data ranges are
// given by xlim and ylim.  If xaxis or yaxis is set, the corresponding
// axis is drawn with ticks and tick labels.
func (f *Figure) Axes(xlim, ylim [2]float64, view int, xaxis, yaxis bool) (*Axes, error) {
	if view < 0 || view >= len(f.Views) {
		return nil, errors.Wrapf(ErrNoView, "view %d of %d", view, len(f.Views))
	}
	a, err := NewAxes(f.Views[view], xlim, ylim, f.Ticks, f.Params)
	if err != nil {
		return nil, err
	}
	if xaxis {
		a.XAxis()
	}
	if yaxis {
		a.YAxis()
	}
	f.Append(a)
	return a, nil
}
