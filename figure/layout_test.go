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
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tikz/internal/logger"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSimpleLayout(t *testing.T) {
	l := NewSimpleLayout()
	w, h, err := l.Size()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{16, 12.625}, []float64{w, h}, approx); d != "" {
		t.Errorf("size mismatch (-want +got):\n%s", d)
	}

	views, err := l.Views()
	if err != nil {
		t.Fatal(err)
	}
	want := []View{{
		Outer: rect.Rect{LLx: 0.5, LLy: 0.5, URx: 15.5, URy: 12.125},
		Inner: rect.Rect{LLx: 1.5, LLy: 1.5, URx: 15, URy: 11.625},
	}}
	if d := cmp.Diff(want, views, approx); d != "" {
		t.Errorf("views mismatch (-want +got):\n%s", d)
	}

	l.AspectRatio = 1
	views, err = l.Views()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(views[0].Inner.Dx(), views[0].Inner.Dy(), approx); d != "" {
		t.Errorf("aspect ratio not respected:\n%s", d)
	}
}

func TestSimpleLayoutTooNarrow(t *testing.T) {
	l := NewSimpleLayout()
	l.Width = 3
	_, _, err := l.Size()
	if !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
	_, err = l.Views()
	if !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
}

func TestGridLayoutRow(t *testing.T) {
	l := NewGridLayout()
	if err := l.AddView([]int{0}, []int{0}, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.AddView([]int{0}, []int{1}, 1); err != nil {
		t.Fatal(err)
	}

	_, h, err := l.Size()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(8.25, h, approx); d != "" {
		t.Errorf("height mismatch (-want +got):\n%s", d)
	}

	views, err := l.Views()
	if err != nil {
		t.Fatal(err)
	}
	want := []View{
		{
			Outer: rect.Rect{LLx: 0.5, LLy: 0.5, URx: 7.75, URy: 7.75},
			Inner: rect.Rect{LLx: 1.5, LLy: 1.5, URx: 7.25, URy: 7.25},
		},
		{
			Outer: rect.Rect{LLx: 8.25, LLy: 0.5, URx: 15.5, URy: 7.75},
			Inner: rect.Rect{LLx: 9.25, LLy: 1.5, URx: 15, URy: 7.25},
		},
	}
	if d := cmp.Diff(want, views, approx); d != "" {
		t.Errorf("views mismatch (-want +got):\n%s", d)
	}
}

func TestGridLayoutSpanning(t *testing.T) {
	l := NewGridLayout()
	for _, v := range []struct {
		rows, cols []int
		aspect     float64
	}{
		{[]int{0}, []int{1, 0}, 2},
		{[]int{1}, []int{0}, 1},
		{[]int{1}, []int{1}, 1},
	} {
		if err := l.AddView(v.rows, v.cols, v.aspect); err != nil {
			t.Fatal(err)
		}
	}

	_, h, err := l.Size()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(17.0, h, approx); d != "" {
		t.Errorf("height mismatch (-want +got):\n%s", d)
	}

	views, err := l.Views()
	if err != nil {
		t.Fatal(err)
	}
	want := []View{
		{
			Outer: rect.Rect{LLx: 0.5, LLy: 8.25, URx: 15.5, URy: 16.5},
			Inner: rect.Rect{LLx: 1.5, LLy: 9.25, URx: 15, URy: 16},
		},
		{
			Outer: rect.Rect{LLx: 0.5, LLy: 0.5, URx: 7.75, URy: 7.75},
			Inner: rect.Rect{LLx: 1.5, LLy: 1.5, URx: 7.25, URy: 7.25},
		},
		{
			Outer: rect.Rect{LLx: 8.25, LLy: 0.5, URx: 15.5, URy: 7.75},
			Inner: rect.Rect{LLx: 9.25, LLy: 1.5, URx: 15, URy: 7.25},
		},
	}
	if d := cmp.Diff(want, views, approx); d != "" {
		t.Errorf("views mismatch (-want +got):\n%s", d)
	}
}

func TestGridLayoutUnderdetermined(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	saved := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	defer func() { logger.Logger = saved }()

	l := NewGridLayout()
	if err := l.AddView([]int{0, 1}, []int{0}, 1); err != nil {
		t.Fatal(err)
	}
	views, err := l.Views()
	if err != nil {
		t.Fatal(err)
	}
	want := []View{{
		Outer: rect.Rect{LLx: 0.5, LLy: 0.5, URx: 15.5, URy: 15.5},
		Inner: rect.Rect{LLx: 1.5, LLy: 1.5, URx: 15, URy: 15},
	}}
	if d := cmp.Diff(want, views, approx); d != "" {
		t.Errorf("views mismatch (-want +got):\n%s", d)
	}

	if logs.FilterMessage("layout is underdetermined").Len() == 0 {
		t.Error("missing warning about underdetermined layout")
	}
}

func TestGridLayoutErrors(t *testing.T) {
	l := NewGridLayout()
	if _, err := l.Views(); !errors.Is(err, ErrNoView) {
		t.Errorf("expected ErrNoView, got %v", err)
	}
	if err := l.AddView(nil, []int{0}, 1); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
	if err := l.AddView([]int{-1}, []int{0}, 1); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
	if err := l.AddView([]int{0}, []int{0}, -1); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}

	l.Width = 5
	if err := l.AddView([]int{0}, []int{5}, 1); !errors.Is(err, ErrLayout) {
		t.Errorf("expected ErrLayout, got %v", err)
	}
}

func TestLayoutPicture(t *testing.T) {
	pic, err := LayoutPicture(NewSimpleLayout())
	if err != nil {
		t.Fatal(err)
	}
	code, err := pic.Code()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		`\draw (0,0) rectangle (16,12.625);`,
		`\node[anchor=north west,font=\tiny] at (0,12.625) {Layout};`,
		`\draw[opacity=0.5] (0.5,0.5) rectangle (15.5,12.125);`,
		`\node[anchor=north west,font=\tiny] at (0.5,12.125) {View 0};`,
		`\draw (1.5,1.5) rectangle (15,11.625);`,
	}
	for _, line := range want {
		if !strings.Contains(code, line) {
			t.Errorf("missing %q in\n%s", line, code)
		}
	}
}
