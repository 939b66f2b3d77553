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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

func TestOperationCode(t *testing.T) {
	cases := []struct {
		op   Operation
		tr   Transform
		want string
	}{
		{Raw(`circle (1)`), nil, `circle (1)`},
		{MoveTo{XY(0, 0), XY(1, 1)}, nil, "(0,0) (1,1)"},
		{LinesTo(XY(1, 1), XY(2, 0)), nil, "-- (1,1) -- (2,0)"},
		{LineTo{Op: "-|", To: []Coord{XY(1, 1)}}, nil, "-| (1,1)"},
		{Lines(XY(0, 0), XY(1, 1), Cycle), nil, "(0,0) -- (1,1) -- cycle"},
		{Line{Op: "|-", Through: []Coord{XY(0, 0), XY(1, 1)}}, nil, "(0,0) |- (1,1)"},
		{Lines(XY(0, 0), XY(1, 1)), shiftScale{}, "(1,0) -- (3,3)"},
		{CurveTo{To: XY(2, 0), Control1: XY(1, 1)}, nil, ".. controls (1,1) .. (2,0)"},
		{CurveTo{To: XY(2, 0), Control1: XY(1, 1), Control2: XY(1, 2)}, nil,
			".. controls (1,1) and (1,2) .. (2,0)"},
		{Rectangle{XY(1, 1)}, nil, "rectangle (1,1)"},
		{Circle{Radius: 1}, nil, "circle[radius=1]"},
		{Circle{Radius: 1}, shiftScale{}, "circle[x radius=2,y radius=3]"},
		{Circle{XRadius: 1, YRadius: 2, At: XY(1, 1)}, nil,
			"circle[x radius=1,y radius=2,at=(1,1)]"},
		{Circle{XRadius: 2, YRadius: 2}, nil, "circle[radius=2]"},
		{Circle{Radius: "3pt", Options: Opt("radius", 5)}, nil, "circle[radius=3pt]"},
		{Circle{Radius: "3pt"}, shiftScale{}, "circle[radius=3pt]"},
		{Circle{Options: Opt("radius", "1mm")}, nil, "circle[radius=1mm]"},
		{Arc{Radius: 1, Options: Opt("start_angle", 0).Set("end_angle", 90)}, nil,
			"arc[start angle=0,end angle=90,radius=1]"},
		{Grid{To: XY(2, 2), Step: 0.5}, nil, "grid[step=0.5] (2,2)"},
		{Grid{To: XY(2, 2), XStep: 1, YStep: 2}, nil, "grid[xstep=1,ystep=2] (2,2)"},
		{Grid{To: XY(2, 2), Step: 1}, shiftScale{}, "grid[xstep=2,ystep=3] (5,6)"},
		{Parabola{To: XY(2, 0)}, nil, "parabola (2,0)"},
		{Parabola{To: XY(2, 0), Bend: XY(1, 1), Options: Opt("bend_pos", 0.5)}, nil,
			"parabola[bend pos=0.5] bend (1,1) (2,0)"},
		{Sin{To: XY(1, 1)}, nil, "sin (1,1)"},
		{Cos{To: XY(1, 1), Options: Flag("red")}, nil, "cos[red] (1,1)"},
		{ToPath{To: At("b"), Options: Flag("bend_left")}, nil, "to[bend left] (b)"},
		{Node{Contents: "x"}, nil, "node {x}"},
		{Node{Contents: "$x^2$", Name: "n", At: XY(1, 0), Options: Opt("anchor", "north")}, nil,
			"node[anchor=north] (n) at (1,0) {$x^2$}"},
		{Node{Contents: "x", headless: true}, nil, "{x}"},
		{Node{Contents: "x", Name: "n", headless: true}, nil, "(n) {x}"},
		{Coordinate{Name: "c"}, nil, "coordinate (c)"},
		{Coordinate{Name: "c", At: XY(1, 2), headless: true}, shiftScale{}, "(c) at (3,6)"},
		{PlotOf(XY(0, 1), XY(1, 2)), nil, "plot coordinates {(0,1) (1,2)}"},
		{Plot{Coords: Points([]int{0, 1}, []int{1, 2}), LineTo: true, Options: Flag("smooth")}, nil,
			"--plot[smooth] coordinates {(0,1) (1,2)}"},
		{Flag("red").Set("line_width", "1pt"), nil, "[red,line width=1pt]"},
	}
	for i, c := range cases {
		if ch, ok := c.op.(checker); ok {
			if err := ch.check(); err != nil {
				t.Errorf("%d: unexpected error: %v", i, err)
				continue
			}
		}
		if d := cmp.Diff(c.want, c.op.Code(c.tr)); d != "" {
			t.Errorf("%d: code mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestInvalidOperation(t *testing.T) {
	cases := []struct {
		op   checker
		want error
	}{
		{MoveTo{}, ErrInvalidSequence},
		{LinesTo(), ErrInvalidSequence},
		{Lines(XY(0, 0), nil), ErrInvalidSequence},
		{LineTo{Op: "<>", To: []Coord{XY(1, 1)}}, ErrInvalidOperation},
		{Line{Op: "->", Through: []Coord{XY(1, 1)}}, ErrInvalidOperation},
		{CurveTo{To: XY(1, 1)}, ErrInvalidOperation},
		{CurveTo{Control1: XY(1, 1)}, ErrInvalidOperation},
		{CurveTo{To: XY(1, 1), Control1: XY(1, 1), Control2: Literal("x")}, ErrInvalidCoordinate},
		{Rectangle{}, ErrInvalidOperation},
		{Rectangle{C(1)}, ErrInvalidCoordinate},
		{Circle{Radius: 1, At: Literal("x")}, ErrInvalidCoordinate},
		{Grid{Step: 1}, ErrInvalidOperation},
		{Parabola{To: XY(1, 1), Bend: Point{1}}, ErrInvalidCoordinate},
		{Sin{}, ErrInvalidOperation},
		{Cos{}, ErrInvalidOperation},
		{ToPath{}, ErrInvalidOperation},
		{Node{At: Literal("a")}, ErrInvalidCoordinate},
		{Coordinate{At: XY(1, 1)}, ErrInvalidOperation},
		{Plot{}, ErrInvalidSequence},
		{PlotOf(XY(0, 0), Literal("x")), ErrInvalidCoordinate},
	}
	for i, c := range cases {
		err := c.op.check()
		if !errors.Is(err, c.want) {
			t.Errorf("%d: expected %v, got %v", i, c.want, err)
		}
	}
}
