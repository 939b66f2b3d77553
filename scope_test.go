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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

func TestActionCode(t *testing.T) {
	s := NewScope(Options{})
	s.Draw(XY(0, 0), LinesTo(XY(1, 1), XY(2, 0))).Flag("thick")
	s.Fill([][]float64{{0, 0}, {1, 0}, {1, 1}}).Set("fill", "blue!20")
	s.Path("(0,0) circle (1)")
	s.Draw(XY(0, 0), Flag("red"), LinesTo(XY(1, 0)))
	s.FillDraw([]float64{0, 0}, Circle{Radius: 0.5})
	s.Clip([]Point{XY(0, 0), XY(1, 1)}, Rectangle{XY(2, 2)})
	s.UseAsBoundingBox(XY(-1, -1), Rectangle{XY(1, 1)})
	s.Shade(XY(0, 0), Rectangle{XY(1, 1)}).Set("left_color", "red")
	s.ShadeDraw(XY(0, 0), Rectangle{XY(1, 1)})
	s.Pattern(XY(0, 0), Rectangle{XY(1, 1)}).Set("pattern", "dots")
	s.Node("x", "", nil)
	s.Node("label", "n1", XY(1, 2)).With(Opt("anchor", "west").Flag("draw"))
	s.Coordinate("c", XY(1, 2))

	want := []string{
		`\draw[thick] (0,0) -- (1,1) -- (2,0);`,
		`\fill[fill=blue!20] (0,0) (1,0) (1,1);`,
		`\path (0,0) circle (1);`,
		`\draw (0,0) [red] -- (1,0);`,
		`\filldraw (0,0) circle[radius=0.5];`,
		`\clip (0,0) (1,1) rectangle (2,2);`,
		`\useasboundingbox (-1,-1) rectangle (1,1);`,
		`\shade[left color=red] (0,0) rectangle (1,1);`,
		`\shadedraw (0,0) rectangle (1,1);`,
		`\pattern[pattern=dots] (0,0) rectangle (1,1);`,
		`\node {x};`,
		`\node[anchor=west,draw] (n1) at (1,2) {label};`,
		`\coordinate (c) at (1,2);`,
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, strings.Split(s.body(nil), "\n")); d != "" {
		t.Errorf("code mismatch (-want +got):\n%s", d)
	}
}

func TestScopeCode(t *testing.T) {
	s := NewScope(Opt("xshift", "1cm"))
	s.Draw(XY(0, 0), LinesTo(XY(1, 0)))
	inner := s.AddScope(Options{})
	inner.Fill(XY(0, 0), Rectangle{XY(1, 1)})
	s.DefineColor("mine", "rgb", "1", "0.5", "0")
	s.ColorLet("light", "mine!20")
	s.TikzSet(Opt("every_node/.style", "{draw}"))
	s.Style("axis", Flag("thick").Set("color", "gray"))
	s.Append(Raw(`\pgfmathsetmacro{\r}{2}`))

	want := strings.Join([]string{
		`\begin{scope}[xshift=1cm]`,
		`\draw (0,0) -- (1,0);`,
		`\begin{scope}`,
		`\fill (0,0) rectangle (1,1);`,
		`\end{scope}`,
		`\definecolor{mine}{rgb}{1,0.5,0}`,
		`\colorlet{light}{mine!20}`,
		`\tikzset{every node/.style={draw}}`,
		`\tikzset{axis/.style={thick,color=gray}}`,
		`\pgfmathsetmacro{\r}{2}`,
		`\end{scope}`,
	}, "\n")
	if d := cmp.Diff(want, s.Code(nil)); d != "" {
		t.Errorf("code mismatch (-want +got):\n%s", d)
	}
}

func TestScopeTransform(t *testing.T) {
	s := NewScope(Options{})
	s.Draw(XY(0, 0), LinesTo(XY(1, 1)), Circle{Radius: 1})
	want := "\\begin{scope}\n\\draw (1,0) -- (3,3) circle[x radius=2,y radius=3];\n\\end{scope}"
	if d := cmp.Diff(want, s.Code(shiftScale{})); d != "" {
		t.Errorf("code mismatch (-want +got):\n%s", d)
	}
}

func TestScopeErrors(t *testing.T) {
	cases := []struct {
		build func(s *Scope)
		want  error
	}{
		{func(s *Scope) { s.Draw(42) }, ErrInvalidPath},
		{func(s *Scope) { s.Draw(LinesTo()) }, ErrInvalidSequence},
		{func(s *Scope) { s.Draw(XY(0, 0), LineTo{Op: "<>", To: []Coord{XY(1, 1)}}) }, ErrInvalidOperation},
		{func(s *Scope) { s.Draw(C(1)) }, ErrInvalidCoordinate},
		{func(s *Scope) { s.Draw(Literal("x")) }, ErrInvalidCoordinate},
		{func(s *Scope) { s.Draw([]float64{1, 2, 3, 4}) }, ErrInvalidCoordinate},
		{func(s *Scope) { s.Coordinate("", nil) }, ErrInvalidOperation},
		{func(s *Scope) { s.AddScope(Options{}).Fill(true) }, ErrInvalidPath},
		{func(s *Scope) { s.Draw(42); s.Draw(LinesTo()) }, ErrInvalidPath},
	}
	for i, c := range cases {
		s := NewScope(Options{})
		c.build(s)
		if err := s.Err(); !errors.Is(err, c.want) {
			t.Errorf("%d: expected %v, got %v", i, c.want, err)
		}
	}
}

func TestDetachedAction(t *testing.T) {
	s := NewScope(Options{})
	a := s.Draw(42).Flag("thick")
	if a == nil {
		t.Fatal("nil action")
	}
	if len(s.Elements) != 0 {
		t.Errorf("invalid action was added: %v", s.Elements)
	}
}
