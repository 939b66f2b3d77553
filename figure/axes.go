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

package figure

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/internal/float"
	"seehuhn.de/go/tikz/internal/logger"
	"seehuhn.de/go/tikz/ticks"
)

// Axes is a scope with a data coordinate system inside the inner box of a
// view.
//
// Coordinates given as numbers are data coordinates: they are mapped to
// the inner box according to the axis ranges.  Radii and grid steps are
// scaled accordingly.  Drawing is clipped to the inner box, plus a small
// margin.
//
// Axis lines, ticks and labels are kept in the separate scope
// Decorations, which uses the page coordinate system of the figure and
// is not clipped.
type Axes struct {
	*tikz.Scope

	View   View
	XTicks *ticks.Ticks
	YTicks *ticks.Ticks

	Decorations *tikz.Scope

	params Parameters
	tr     *dataTransform
}

// NewAxes creates the coordinate system for a view.  Normally, axes are
// created using [Figure.Axes].
func NewAxes(v View, xlim, ylim [2]float64, gen *ticks.Generator, params Parameters) (*Axes, error) {
	in := v.Inner
	x, y, w, h := in.LLx, in.LLy, in.Dx(), in.Dy()

	xt, err := gen.Ticks(xlim[0], xlim[1], w, true)
	if err != nil {
		return nil, err
	}
	yt, err := gen.Ticks(ylim[0], ylim[1], h, false)
	if err != nil {
		return nil, err
	}

	a := &Axes{
		Scope:       tikz.NewScope(tikz.Options{}),
		View:        v,
		XTicks:      xt,
		YTicks:      yt,
		Decorations: tikz.NewScope(tikz.Opt("font", tikz.FontSize(params.DecorationsFontSize))),
		params:      params,
		tr:          newDataTransform(xt, yt, v.Inner),
	}

	pad := params.ClipMargin
	a.Clip(tikz.C(cm(x-pad), cm(y-pad)),
		tikz.Rectangle{To: tikz.C(cm(x+w+pad), cm(y+h+pad))})

	// [0,1] covers the inner box in both directions
	a.TikzSet(tikz.Opt("xshift", cm(x)).
		Set("yshift", cm(y)).
		Set("x", cm(w)).
		Set("y", cm(h)))

	return a, nil
}

// Code implements the [tikz.Element] interface.  The decorations come
// first, followed by the data scope.
func (a *Axes) Code(tikz.Transform) string {
	return a.Decorations.Code(nil) + "\n" + a.Scope.Code(a.tr)
}

// Err returns the first error in the data scope or in the decorations.
func (a *Axes) Err() error {
	if err := a.Decorations.Err(); err != nil {
		return err
	}
	return a.Scope.Err()
}

// Transform returns the affine map from data coordinates to figure
// coordinates, in centimeters.
func (a *Axes) Transform() matrix.Matrix {
	in := a.View.Inner
	return a.tr.unit.Mul(matrix.Scale(in.Dx(), in.Dy())).Mul(matrix.Translate(in.LLx, in.LLy))
}

// XAxis draws the x axis below the inner box, with ticks and labels.
func (a *Axes) XAxis() {
	d := a.Decorations
	in := a.View.Inner
	t := a.XTicks
	yPos := in.LLy - a.params.AxisOffset
	M := a.Transform()

	d.Draw(tikz.XY(in.LLx, yPos), tikz.LinesTo(tikz.XY(in.URx, yPos))).
		Set("line_cap", "round")
	anchor := "north"
	if !t.Horizontal {
		anchor = "east"
	}
	for i, v := range t.Values {
		x := M[0]*v + M[4]
		d.Draw(tikz.XY(x, yPos), tikz.LinesTo(tikz.XY(x, yPos-a.params.TickLength)),
			a.tickLabel(t, t.Labels[i], anchor))
	}
	if p := t.PowerLabel(); p != "" {
		d.Draw(tikz.XY(in.URx, in.LLy), tikz.Node{
			Contents: "$10^{" + p + "}$",
			Options:  tikz.Opt("anchor", "west"),
		})
	}
}

// YAxis draws the y axis left of the inner box, with ticks and labels.
func (a *Axes) YAxis() {
	d := a.Decorations
	in := a.View.Inner
	t := a.YTicks
	xPos := in.LLx - a.params.AxisOffset
	M := a.Transform()

	d.Draw(tikz.XY(xPos, in.LLy), tikz.LinesTo(tikz.XY(xPos, in.URy))).
		Set("line_cap", "round")
	anchor := "east"
	if !t.Horizontal {
		anchor = "south"
	}
	for i, v := range t.Values {
		y := M[3]*v + M[5]
		d.Draw(tikz.XY(xPos, y), tikz.LinesTo(tikz.XY(xPos-a.params.TickLength, y)),
			a.tickLabel(t, t.Labels[i], anchor))
	}
	if p := t.PowerLabel(); p != "" {
		d.Draw(tikz.XY(in.LLx, in.URy), tikz.Node{
			Contents: "$10^{" + p + "}$",
			Options:  tikz.Opt("anchor", "south"),
		})
	}
}

func (a *Axes) tickLabel(t *ticks.Ticks, label, anchor string) tikz.Node {
	var opt tikz.Options
	if t.FontSize != a.params.DecorationsFontSize {
		opt = opt.Set("font", tikz.FontSize(t.FontSize))
	}
	if !t.Horizontal {
		opt = opt.Set("rotate", 90)
	}
	return tikz.Node{
		Contents: "$" + label + "$",
		Options:  opt.Set("anchor", anchor),
	}
}

// dataTransform maps data coordinates to the unit square.  Coordinates
// which would exceed the largest TeX dimension are clamped.
type dataTransform struct {
	unit matrix.Matrix

	xMin, xMax float64
	yMin, yMax float64
}

func newDataTransform(xt, yt *ticks.Ticks, in rect.Rect) *dataTransform {
	xRange := xt.AxisMax - xt.AxisMin
	yRange := yt.AxisMax - yt.AxisMin
	x, y, w, h := in.LLx, in.LLy, in.Dx(), in.Dy()
	return &dataTransform{
		unit: matrix.Translate(-xt.AxisMin, -yt.AxisMin).Mul(matrix.Scale(1/xRange, 1/yRange)),
		xMin: (-TeXMaxDimen-x)/w*xRange + xt.AxisMin,
		xMax: (TeXMaxDimen-x)/w*xRange + xt.AxisMin,
		yMin: (-TeXMaxDimen-y)/h*yRange + yt.AxisMin,
		yMax: (TeXMaxDimen-y)/h*yRange + yt.AxisMin,
	}
}

func (t *dataTransform) X(x float64) float64 {
	x = clamp(x, t.xMin, t.xMax, "x")
	return t.unit[0]*x + t.unit[4]
}

func (t *dataTransform) Y(y float64) float64 {
	y = clamp(y, t.yMin, t.yMax, "y")
	return t.unit[3]*y + t.unit[5]
}

func (t *dataTransform) DX(dx float64) float64 {
	return t.unit[0] * dx
}

func (t *dataTransform) DY(dy float64) float64 {
	return t.unit[3] * dy
}

func clamp(v, lo, hi float64, axis string) float64 {
	switch {
	case v < lo:
		logger.Warnw("coordinate clipped", "axis", axis, "value", v, "limit", lo)
		return lo
	case v > hi:
		logger.Warnw("coordinate clipped", "axis", axis, "value", v, "limit", hi)
		return hi
	}
	return v
}

func cm(x float64) string {
	return float.Format(x, 5) + "cm"
}
