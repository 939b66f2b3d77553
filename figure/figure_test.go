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
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/internal/float"
)

func TestFigureDocument(t *testing.T) {
	f, err := New(nil, `\sffamily`)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if d := cmp.Diff([]float64{16, 12.625}, []float64{f.Width, f.Height}, approx); d != "" {
		t.Errorf("size mismatch (-want +got):\n%s", d)
	}
	f.Title("Hello")

	doc, err := f.DocumentCode()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`\begin{tikzpicture}[font=\fontsize{10}{12}\selectfont\sffamily]`,
		`\clip (0,0) rectangle (16,12.625);`,
		`\usepackage[sfdefault]{FiraSans}`,
		`\node[anchor=base,yshift=depth("gjpqy"),outer sep=0,inner sep=0] (title) at (8,12.625) {Hello};`,
		`\path (title.base) [yshift=height("HAbdfhk")] +(0,0.5);`,
	}
	for _, line := range want {
		if !strings.Contains(doc, line) {
			t.Errorf("missing %q in\n%s", line, doc)
		}
	}
}

func TestFigureDrawLayout(t *testing.T) {
	f, err := New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := f.DrawLayout(); err != nil {
		t.Fatal(err)
	}
	code, err := f.Code()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "\\begin{scope}[color=red]\n\\draw (0,0) rectangle (16,12.625);") {
		t.Errorf("layout not drawn:\n%s", code)
	}
}

func TestAxes(t *testing.T) {
	f, err := New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	a, err := f.Axes([2]float64{0, 10}, [2]float64{-1, 1}, 0, true, true)
	if err != nil {
		t.Fatal(err)
	}
	xt, yt := a.XTicks, a.YTicks
	xRange, yRange := xt.AxisMax-xt.AxisMin, yt.AxisMax-yt.AxisMin

	a.Draw(tikz.XY(xt.AxisMin, yt.AxisMax), tikz.LinesTo(tikz.XY(xt.AxisMax, yt.AxisMin)))
	a.Draw(tikz.XY(xt.AxisMin, yt.AxisMin), tikz.Circle{Radius: xRange})

	code, err := f.Code()
	if err != nil {
		t.Fatal(err)
	}

	in := f.Views[0].Inner
	pad := Defaults.ClipMargin
	want := []string{
		`\begin{scope}[font=\fontsize{9}{10.8}\selectfont]`,
		`\draw[line cap=round] (1.5,1.4) -- (15,1.4);`,
		`\draw[line cap=round] (1.4,1.5) -- (1.4,11.625);`,
		`\clip (` + cm(in.LLx-pad) + `,` + cm(in.LLy-pad) + `) rectangle (` +
			cm(in.URx+pad) + `,` + cm(in.URy+pad) + `);`,
		`\tikzset{xshift=1.5cm,yshift=1.5cm,x=13.5cm,y=10.125cm}`,
		`\draw (0,1) -- (1,0);`,
		`\draw (0,0) circle[x radius=1,y radius=` + float.Format(xRange/yRange, 5) + `];`,
	}
	for _, line := range want {
		if !strings.Contains(code, line) {
			t.Errorf("missing %q in\n%s", line, code)
		}
	}
	for _, l := range append(append([]string(nil), xt.Labels...), yt.Labels...) {
		if !strings.Contains(code, "{$"+l+"$}") {
			t.Errorf("missing tick label %q", l)
		}
	}

	// decorations come before the clipped data scope
	if strings.Index(code, "line cap=round") > strings.Index(code, `\tikzset{xshift`) {
		t.Error("decorations must precede the axes scope")
	}
}

func TestAxesTransform(t *testing.T) {
	f, err := New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	a, err := f.Axes([2]float64{0, 10}, [2]float64{0, 100}, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	xt, yt := a.XTicks, a.YTicks
	in := a.View.Inner

	got := []float64{a.tr.X(xt.AxisMin), a.tr.X(xt.AxisMax), a.tr.Y(yt.AxisMin), a.tr.Y(yt.AxisMax)}
	if d := cmp.Diff([]float64{0, 1, 0, 1}, got, approx); d != "" {
		t.Errorf("unit square mismatch (-want +got):\n%s", d)
	}

	M := a.Transform()
	page := []float64{
		M[0]*xt.AxisMin + M[4], M[0]*xt.AxisMax + M[4],
		M[3]*yt.AxisMin + M[5], M[3]*yt.AxisMax + M[5],
	}
	if d := cmp.Diff([]float64{in.LLx, in.URx, in.LLy, in.URy}, page, approx); d != "" {
		t.Errorf("page coordinates mismatch (-want +got):\n%s", d)
	}

	// huge coordinates are clamped to TeX's largest dimension
	x := a.tr.X(1e30)
	if d := cmp.Diff(TeXMaxDimen, in.LLx+x*in.Dx(), approx); d != "" {
		t.Errorf("clamped x mismatch (-want +got):\n%s", d)
	}
	y := a.tr.Y(math.Inf(-1))
	if d := cmp.Diff(-TeXMaxDimen, in.LLy+y*in.Dy(), approx); d != "" {
		t.Errorf("clamped y mismatch (-want +got):\n%s", d)
	}

	if a.Decorations.Code(nil) != "\\begin{scope}[font=\\fontsize{9}{10.8}\\selectfont]\n\n\\end{scope}" {
		t.Error("decorations without axes should be empty")
	}
}

func TestAxesErrors(t *testing.T) {
	f, err := New(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Axes([2]float64{0, 1}, [2]float64{0, 1}, 1, true, true)
	if !errors.Is(err, ErrNoView) {
		t.Errorf("expected ErrNoView, got %v", err)
	}
	_, err = f.Axes([2]float64{1, 1}, [2]float64{0, 1}, 0, true, true)
	if err == nil {
		t.Error("empty range accepted")
	}

	a, err := f.Axes([2]float64{0, 1}, [2]float64{0, 1}, 0, true, true)
	if err != nil {
		t.Fatal(err)
	}
	a.Draw(42)
	if _, err := f.Code(); !errors.Is(err, tikz.ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
}

func TestNewFigureBadLayout(t *testing.T) {
	l := NewSimpleLayout()
	l.Width = 1
	if _, err := New(l, ""); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
}
