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
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Coord is a coordinate in a path specification.
//
// The following types implement Coord: [Point] for Cartesian coordinates
// given by numbers, [Literal] for coordinates given as TikZ code, and
// [Tuple] for Cartesian coordinates which mix numbers and TikZ dimensions.
// Use [C] to construct the appropriate type from a list of components.
type Coord interface {
	coordCode(tr Transform) string
	check() error
}

// Transform maps user coordinates to TikZ coordinates.
//
// X and Y are applied to positions, DX and DY to extents like radii and
// grid steps.  Only numeric values are transformed; TikZ code given as a
// string is passed through unchanged.
type Transform interface {
	X(x float64) float64
	Y(y float64) float64
	DX(dx float64) float64
	DY(dy float64) float64
}

// Point is a Cartesian coordinate with two or three components.
type Point []float64

// XY returns the two-dimensional point (x,y).
func XY(x, y float64) Point {
	return Point{x, y}
}

// XYZ returns the three-dimensional point (x,y,z).
func XYZ(x, y, z float64) Point {
	return Point{x, y, z}
}

func (p Point) check() error {
	if len(p) != 2 && len(p) != 3 {
		return errors.Wrapf(ErrInvalidCoordinate, "%v", []float64(p))
	}
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Wrapf(ErrInvalidCoordinate, "%v", []float64(p))
		}
	}
	return nil
}

func (p Point) coordCode(tr Transform) string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = formatNumber(transformComponent(tr, i, x))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func transformComponent(tr Transform, i int, x float64) float64 {
	if tr == nil {
		return x
	}
	switch i {
	case 0:
		return tr.X(x)
	case 1:
		return tr.Y(x)
	default:
		return x
	}
}

// Literal is a coordinate given as TikZ code.
//
// A valid literal is enclosed in parentheses, optionally prefixed by "+"
// or "++" for relative coordinates, or is the string "cycle".
type Literal string

// Cycle closes the current sub-path.
const Cycle Literal = "cycle"

func (l Literal) check() error {
	s := string(l)
	if s == "cycle" {
		return nil
	}
	if (strings.HasPrefix(s, "(") || strings.HasPrefix(s, "+(") || strings.HasPrefix(s, "++(")) &&
		strings.HasSuffix(s, ")") {
		return nil
	}
	return errors.Wrapf(ErrInvalidCoordinate, "%q", s)
}

func (l Literal) coordCode(Transform) string {
	return string(l)
}

// Tuple is a Cartesian coordinate with two or three components, each of
// which is either a number or a string containing a TikZ dimension like
// "1cm" or "2pt".
//
// Normally, tuples are constructed using [C].
type Tuple []any

func (t Tuple) check() error {
	if len(t) != 2 && len(t) != 3 {
		return errors.Wrapf(ErrInvalidCoordinate, "%v", []any(t))
	}
	for _, c := range t {
		if _, isString := c.(string); isString {
			continue
		}
		if x, isNum := toFloat(c); !isNum || math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Wrapf(ErrInvalidCoordinate, "%v", []any(t))
		}
	}
	return nil
}

func (t Tuple) coordCode(tr Transform) string {
	parts := make([]string, len(t))
	for i, c := range t {
		if s, isString := c.(string); isString {
			parts[i] = s
			continue
		}
		x, _ := toFloat(c)
		parts[i] = formatNumber(transformComponent(tr, i, x))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// C returns a coordinate with the given components.
//
// Two or three components must be given, each of which is either a number
// or a string.  If all components are strings, the result is the [Literal]
// "(a,b)".  If all components are numbers, the result is a [Point].
// Otherwise a [Tuple] is returned.  Invalid components are reported when
// the coordinate is added to a picture.
func C(components ...any) Coord {
	t := Tuple(components)
	if err := t.check(); err != nil {
		return invalidCoord{err}
	}

	allStrings, allNumbers := true, true
	for _, c := range components {
		if _, isString := c.(string); isString {
			allNumbers = false
		} else {
			allStrings = false
		}
	}
	switch {
	case allStrings:
		parts := make([]string, len(components))
		for i, c := range components {
			parts[i] = c.(string)
		}
		return Literal("(" + strings.Join(parts, ",") + ")")
	case allNumbers:
		p := make(Point, len(components))
		for i, c := range components {
			p[i], _ = toFloat(c)
		}
		return p
	default:
		return t
	}
}

// invalidCoord carries a construction error until the coordinate is added
// to a picture.
type invalidCoord struct {
	err error
}

func (c invalidCoord) check() error              { return c.err }
func (c invalidCoord) coordCode(Transform) string { return "" }

func toFloat(c any) (float64, bool) {
	switch x := c.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Number is the set of types accepted by [Points].
type Number interface {
	constraints.Integer | constraints.Float
}

// Points combines the x and y values of a data set into a sequence of
// points.  Both slices must have the same length.
func Points[T Number](xs, ys []T) []Coord {
	if len(xs) != len(ys) {
		err := errors.Wrapf(ErrInvalidSequence, "%d x values but %d y values", len(xs), len(ys))
		return []Coord{invalidCoord{err}}
	}
	res := make([]Coord, len(xs))
	for i := range xs {
		res[i] = Point{float64(xs[i]), float64(ys[i])}
	}
	return res
}

// Table converts a numeric table with two or three columns into a
// sequence of points.  Each row gives one point.
func Table(rows [][]float64) []Coord {
	res := make([]Coord, len(rows))
	for i, row := range rows {
		if len(row) != 2 && len(row) != 3 {
			err := errors.Wrapf(ErrInvalidSequence, "row %d has %d columns", i, len(row))
			res[i] = invalidCoord{err}
			continue
		}
		res[i] = Point(row)
	}
	return res
}

// Polar returns a polar coordinate.  The angle is given in degrees.
// Both arguments can be numbers or strings containing TikZ expressions.
func Polar(angle, radius any) Literal {
	return Literal("(" + formatValue(angle) + ":" + formatValue(radius) + ")")
}

// PolarEllipse returns an elliptical polar coordinate, with separate radii
// in x and y direction.
func PolarEllipse(angle, xRadius, yRadius any) Literal {
	return Literal("(" + formatValue(angle) + ":" + formatValue(xRadius) +
		" and " + formatValue(yRadius) + ")")
}

// Vertical returns the point which lies vertically below or above p and
// horizontally level with q.  This is TikZ's "|-" coordinate system.
func Vertical(p, q Coord) Literal {
	return perpendicular(p, "|-", q)
}

// Horizontal returns the point which lies horizontally level with p and
// vertically below or above q.  This is TikZ's "-|" coordinate system.
func Horizontal(p, q Coord) Literal {
	return perpendicular(p, "-|", q)
}

func perpendicular(p Coord, op string, q Coord) Literal {
	return Literal("(" + stripParens(p.coordCode(nil)) + " " + op + " " +
		stripParens(q.coordCode(nil)) + ")")
}

func stripParens(s string) string {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return s[1 : len(s)-1]
	}
	return s
}

// Relative returns c as a coordinate relative to the current point.  The
// current point is not updated.
func Relative(c Coord) Literal {
	return Literal("+" + strings.TrimLeft(c.coordCode(nil), "+"))
}

// RelativeMove returns c as a coordinate relative to the current point,
// and makes the result the new current point.
func RelativeMove(c Coord) Literal {
	return Literal("++" + strings.TrimLeft(c.coordCode(nil), "+"))
}

// At refers to a named node or coordinate.
func At(name string) Literal {
	return Literal("(" + name + ")")
}
