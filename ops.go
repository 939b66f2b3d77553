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

package tikz

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Operation is an element of a path specification.
//
// The path operations of TikZ are represented by the types [MoveTo],
// [LineTo], [Line], [CurveTo], [Rectangle], [Circle], [Arc], [Grid],
// [Parabola], [Sin], [Cos], [ToPath], [Node], [Coordinate] and [Plot].
// In addition, [Raw] inserts arbitrary TikZ code and [Options] change the
// options for the rest of the path.
type Operation interface {
	Code(tr Transform) string
}

type checker interface {
	check() error
}

// Raw is TikZ code which is copied into the output without modification.
// Raw can be used both as a path operation and as a scope element.
type Raw string

// Code implements the [Operation] and [Element] interfaces.
func (r Raw) Code(Transform) string {
	return string(r)
}

// MoveTo starts a new sub-path at each of the given coordinates.
type MoveTo []Coord

// Code implements the [Operation] interface.
func (m MoveTo) Code(tr Transform) string {
	return joinCoords(m, " ", tr)
}

func (m MoveTo) check() error {
	return checkSequence(m)
}

// LineTo draws straight lines through the given coordinates.
//
// Op selects the kind of line: "--" (the default) for straight lines, "-|"
// for first horizontal then vertical, or "|-" for first vertical then
// horizontal.
type LineTo struct {
	Op string
	To []Coord
}

// LinesTo returns a [LineTo] operation with straight lines.
func LinesTo(cs ...Coord) LineTo {
	return LineTo{To: cs}
}

// Code implements the [Operation] interface.
func (l LineTo) Code(tr Transform) string {
	op := lineOp(l.Op)
	return op + " " + joinCoords(l.To, " "+op+" ", tr)
}

func (l LineTo) check() error {
	if err := checkLineOp(l.Op); err != nil {
		return err
	}
	return checkSequence(l.To)
}

// Line connects the given coordinates by lines.  In contrast to [LineTo],
// the path moves to the first coordinate before drawing.
type Line struct {
	Op      string
	Through []Coord
}

// Lines returns a [Line] operation with straight lines.
func Lines(cs ...Coord) Line {
	return Line{Through: cs}
}

// Code implements the [Operation] interface.
func (l Line) Code(tr Transform) string {
	return joinCoords(l.Through, " "+lineOp(l.Op)+" ", tr)
}

func (l Line) check() error {
	if err := checkLineOp(l.Op); err != nil {
		return err
	}
	return checkSequence(l.Through)
}

func lineOp(op string) string {
	if op == "" {
		return "--"
	}
	return op
}

func checkLineOp(op string) error {
	switch op {
	case "", "--", "-|", "|-":
		return nil
	default:
		return errors.Wrapf(ErrInvalidOperation, "unknown line operation %q", op)
	}
}

// CurveTo is a Bézier curve from the current point to To.  Control2 is
// optional; if it is missing, Control1 is used for both control points.
type CurveTo struct {
	To       Coord
	Control1 Coord
	Control2 Coord
}

// Code implements the [Operation] interface.
func (c CurveTo) Code(tr Transform) string {
	code := ".. controls " + c.Control1.coordCode(tr)
	if c.Control2 != nil {
		code += " and " + c.Control2.coordCode(tr)
	}
	return code + " .. " + c.To.coordCode(tr)
}

func (c CurveTo) check() error {
	if err := checkCoord(c.To, "curve-to target"); err != nil {
		return err
	}
	if err := checkCoord(c.Control1, "curve-to control point"); err != nil {
		return err
	}
	if c.Control2 != nil {
		return c.Control2.check()
	}
	return nil
}

// Rectangle draws a rectangle with corners at the current point and To.
type Rectangle struct {
	To Coord
}

// Code implements the [Operation] interface.
func (r Rectangle) Code(tr Transform) string {
	return "rectangle " + r.To.coordCode(tr)
}

func (r Rectangle) check() error {
	return checkCoord(r.To, "rectangle corner")
}

// Circle draws a circle or an ellipse around the current point, or around
// At if this is set.
//
// Either Radius, or XRadius and YRadius must be given.  Radius overrides
// the other two fields.  Radii can be numbers or strings containing a TeX
// dimension like "3pt".
type Circle struct {
	Radius  any
	XRadius any
	YRadius any
	At      Coord
	Options Options
}

// Code implements the [Operation] interface.
func (c Circle) Code(tr Transform) string {
	opt := radiusOptions(c.Options, "radius", c.Radius, c.XRadius, c.YRadius, tr)
	if c.At != nil {
		opt = opt.Set("at", c.At.coordCode(tr))
	}
	return "circle" + opt.String()
}

func (c Circle) check() error {
	if c.At != nil {
		return c.At.check()
	}
	return nil
}

// Arc draws an arc of a circle or an ellipse, starting at the current
// point.  The angles are set using the options "start_angle",
// "end_angle" and "delta_angle".
//
// The radius fields have the same meaning as for [Circle].
type Arc struct {
	Radius  any
	XRadius any
	YRadius any
	Options Options
}

// Code implements the [Operation] interface.
func (a Arc) Code(tr Transform) string {
	opt := radiusOptions(a.Options, "radius", a.Radius, a.XRadius, a.YRadius, tr)
	return "arc" + opt.String()
}

// Grid draws a grid filling the rectangle between the current point and To.
//
// Either Step, or XStep and YStep must be given.  Step overrides the other
// two fields.  Steps can be numbers or strings containing a TeX dimension.
type Grid struct {
	To      Coord
	Step    any
	XStep   any
	YStep   any
	Options Options
}

// Code implements the [Operation] interface.
func (g Grid) Code(tr Transform) string {
	opt := radiusOptions(g.Options, "step", g.Step, g.XStep, g.YStep, tr)
	return "grid" + opt.String() + " " + g.To.coordCode(tr)
}

func (g Grid) check() error {
	return checkCoord(g.To, "grid corner")
}

// radiusOptions adds the options for a radius-like quantity to opt.  If
// both values agree, a single option is used, otherwise separate x and y
// options are emitted.
func radiusOptions(opt Options, name string, r, rx, ry any, tr Transform) Options {
	if r != nil {
		rx, ry = r, r
	}
	if tr != nil {
		if x, isNum := toFloat(rx); isNum {
			rx = tr.DX(x)
		}
		if y, isNum := toFloat(ry); isNum {
			ry = tr.DY(y)
		}
	}
	if rx == nil && ry == nil {
		return opt
	}

	xName, yName := "x "+name, "y "+name
	if name == "step" {
		xName, yName = "xstep", "ystep"
	}
	if rx != nil && ry != nil && formatValue(rx) == formatValue(ry) {
		return opt.Set(name, rx)
	}
	return opt.Set(xName, rx).Set(yName, ry)
}

// Parabola draws a parabola from the current point to To.  If Bend is
// given, the parabola has its apex there.
type Parabola struct {
	To      Coord
	Bend    Coord
	Options Options
}

// Code implements the [Operation] interface.
func (p Parabola) Code(tr Transform) string {
	code := "parabola" + p.Options.String()
	if p.Bend != nil {
		code += " bend " + p.Bend.coordCode(tr)
	}
	return code + " " + p.To.coordCode(tr)
}

func (p Parabola) check() error {
	if err := checkCoord(p.To, "parabola target"); err != nil {
		return err
	}
	if p.Bend != nil {
		return p.Bend.check()
	}
	return nil
}

// Sin draws a quarter period of a sine curve from the current point to To.
type Sin struct {
	To      Coord
	Options Options
}

// Code implements the [Operation] interface.
func (s Sin) Code(tr Transform) string {
	return "sin" + s.Options.String() + " " + s.To.coordCode(tr)
}

func (s Sin) check() error {
	return checkCoord(s.To, "sine target")
}

// Cos draws a quarter period of a cosine curve from the current point to
// To.
type Cos struct {
	To      Coord
	Options Options
}

// Code implements the [Operation] interface.
func (c Cos) Code(tr Transform) string {
	return "cos" + c.Options.String() + " " + c.To.coordCode(tr)
}

func (c Cos) check() error {
	return checkCoord(c.To, "cosine target")
}

// ToPath is TikZ's "to" operation, which connects the current point to To
// using the "to path" set in the options.
type ToPath struct {
	To      Coord
	Options Options
}

// Code implements the [Operation] interface.
func (t ToPath) Code(tr Transform) string {
	return "to" + t.Options.String() + " " + t.To.coordCode(tr)
}

func (t ToPath) check() error {
	return checkCoord(t.To, "to-path target")
}

// Node places text on the path.  Contents can contain LaTeX code.
//
// If Name is set, the node can be referred to later using [At].  The node
// is positioned at the current point, unless At is given.
type Node struct {
	Contents string
	Name     string
	At       Coord
	Options  Options

	headless bool
}

// Code implements the [Operation] interface.
func (n Node) Code(tr Transform) string {
	code := ""
	if !n.headless {
		code = "node"
	}
	code += n.Options.String()
	if n.Name != "" {
		code += " (" + n.Name + ")"
	}
	if n.At != nil {
		code += " at " + n.At.coordCode(tr)
	}
	code += " {" + n.Contents + "}"
	if n.headless {
		code = strings.TrimLeft(code, " ")
	}
	return code
}

func (n Node) check() error {
	if n.At != nil {
		return n.At.check()
	}
	return nil
}

// Coordinate defines a named point, at the current point or at At.
type Coordinate struct {
	Name    string
	At      Coord
	Options Options

	headless bool
}

// Code implements the [Operation] interface.
func (c Coordinate) Code(tr Transform) string {
	code := ""
	if !c.headless {
		code = "coordinate"
	}
	code += c.Options.String()
	code += " (" + c.Name + ")"
	if c.At != nil {
		code += " at " + c.At.coordCode(tr)
	}
	if c.headless {
		code = strings.TrimLeft(code, " ")
	}
	return code
}

func (c Coordinate) check() error {
	if c.Name == "" {
		return errors.Wrap(ErrInvalidOperation, "coordinate without a name")
	}
	if c.At != nil {
		return c.At.check()
	}
	return nil
}

// Plot draws a smooth or piecewise linear curve through the given
// coordinates, depending on the options.  If LineTo is set, the plot is
// connected to the current point by a straight line.
type Plot struct {
	Coords  []Coord
	LineTo  bool
	Options Options
}

// PlotOf returns a [Plot] operation through the given coordinates.
func PlotOf(cs ...Coord) Plot {
	return Plot{Coords: cs}
}

// Code implements the [Operation] interface.
func (p Plot) Code(tr Transform) string {
	code := "plot"
	if p.LineTo {
		code = "--plot"
	}
	code += p.Options.String()
	return code + " coordinates {" + joinCoords(p.Coords, " ", tr) + "}"
}

func (p Plot) check() error {
	return checkSequence(p.Coords)
}

func joinCoords(cs []Coord, sep string, tr Transform) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.coordCode(tr)
	}
	return strings.Join(parts, sep)
}

func checkCoord(c Coord, what string) error {
	if c == nil {
		return errors.Wrapf(ErrInvalidOperation, "missing %s", what)
	}
	return c.check()
}

func checkSequence(cs []Coord) error {
	if len(cs) == 0 {
		return errors.Wrap(ErrInvalidSequence, "no coordinates")
	}
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(ErrInvalidSequence, "nil coordinate")
		}
		if err := c.check(); err != nil {
			return err
		}
	}
	return nil
}
