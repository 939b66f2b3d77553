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
	"fmt"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tikz"
	"seehuhn.de/go/tikz/internal/logger"
)

// View is a region of a figure.  The inner box holds the plotted data,
// the outer box additionally contains the padding for axes decorations.
type View struct {
	Outer rect.Rect
	Inner rect.Rect
}

// Layout describes the arrangement of views in a figure.
type Layout interface {
	// Views returns the positions of all views.
	Views() ([]View, error)

	// Size returns the dimensions of the figure.
	Size() (width, height float64, err error)
}

// SimpleLayout is a layout with a single view.
type SimpleLayout struct {
	Parameters

	// AspectRatio is the ratio of width to height of the inner box.
	AspectRatio float64
}

// NewSimpleLayout returns a single-view layout with the default parameters
// and an aspect ratio of 4/3.
func NewSimpleLayout() *SimpleLayout {
	return &SimpleLayout{
		Parameters:  Defaults.Clone(),
		AspectRatio: 4.0 / 3,
	}
}

func (l *SimpleLayout) compute() (View, float64, error) {
	mh, mv := l.MarginHorizontal, l.MarginVertical
	pl, pr := l.PaddingLeft, l.PaddingRight
	pb, pt := l.PaddingBottom, l.PaddingTop
	if l.Width <= 2*mh+pl+pr {
		return View{}, 0, errors.Wrapf(ErrLayout, "width %g is too small", l.Width)
	}
	if !(l.AspectRatio > 0) {
		return View{}, 0, errors.Wrapf(ErrLayout, "invalid aspect ratio %g", l.AspectRatio)
	}

	iw := l.Width - 2*mh - pl - pr
	ih := iw / l.AspectRatio
	ow := iw + pl + pr
	oh := ih + pb + pt
	ox, oy := mh, mv
	ix, iy := ox+pl, oy+pb

	v := View{
		Outer: rect.Rect{LLx: ox, LLy: oy, URx: ox + ow, URy: oy + oh},
		Inner: rect.Rect{LLx: ix, LLy: iy, URx: ix + iw, URy: iy + ih},
	}
	return v, oh + 2*mv, nil
}

// Views implements the [Layout] interface.
func (l *SimpleLayout) Views() ([]View, error) {
	v, _, err := l.compute()
	if err != nil {
		return nil, err
	}
	return []View{v}, nil
}

// Size implements the [Layout] interface.
func (l *SimpleLayout) Size() (float64, float64, error) {
	_, h, err := l.compute()
	if err != nil {
		return 0, 0, err
	}
	return l.Width, h, nil
}

// GridLayout arranges views on a grid with flexible row heights and
// column widths.  Each view covers a rectangular range of grid cells.
//
// The row heights and column widths are chosen such that the figure has
// the requested width, and such that the inner boxes of the views have
// the requested aspect ratios.  If these conditions cannot all be met, a
// least-squares solution is used and a warning is logged.
type GridLayout struct {
	Parameters

	cells []gridCell
}

type gridCell struct {
	rowFrom, rowTo int
	colFrom, colTo int
	aspect         float64 // 0 if unconstrained
}

// NewGridLayout returns an empty grid layout with the default parameters.
func NewGridLayout() *GridLayout {
	return &GridLayout{Parameters: Defaults.Clone()}
}

// AddView adds a view which covers the given grid rows and columns.
// Rows are numbered from the top, columns from the left, starting at 0.
// The view spans the range from the smallest to the largest index given.
//
// If aspect is positive, the inner box of the view is constrained to this
// ratio of width to height.  Views with aspect 0 adapt to the other views.
func (l *GridLayout) AddView(rows, cols []int, aspect float64) error {
	if len(rows) == 0 || len(cols) == 0 {
		return errors.Wrap(ErrLayout, "view without rows or columns")
	}
	c := gridCell{
		rowFrom: slices.Min(rows),
		rowTo:   slices.Max(rows),
		colFrom: slices.Min(cols),
		colTo:   slices.Max(cols),
		aspect:  aspect,
	}
	if c.rowFrom < 0 || c.colFrom < 0 {
		return errors.Wrap(ErrLayout, "negative grid index")
	}
	if aspect < 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return errors.Wrapf(ErrLayout, "invalid aspect ratio %g", aspect)
	}

	maxCol := c.colTo
	for _, other := range l.cells {
		maxCol = max(maxCol, other.colTo)
	}
	if l.Width <= 2*l.MarginHorizontal+l.PaddingLeft+l.PaddingRight+l.GapHorizontal*float64(maxCol) {
		return errors.Wrapf(ErrLayout, "width %g too small", l.Width)
	}

	l.cells = append(l.cells, c)
	return nil
}

// Views implements the [Layout] interface.
func (l *GridLayout) Views() ([]View, error) {
	views, _, err := l.compute()
	return views, err
}

// Size implements the [Layout] interface.
func (l *GridLayout) Size() (float64, float64, error) {
	_, h, err := l.compute()
	if err != nil {
		return 0, 0, err
	}
	return l.Width, h, nil
}

// compute finds the row heights and column widths, and from these the
// positions of the views.
//
// The constraints are linear in the unknowns u = (row heights, column
// widths), so they can be written as A u = b.  The first row of A
// constrains the total width, every further row the aspect ratio of one
// view.
func (l *GridLayout) compute() ([]View, float64, error) {
	if len(l.cells) == 0 {
		return nil, 0, errors.Wrap(ErrNoView, "grid layout without views")
	}

	nr, nc := 0, 0
	for _, c := range l.cells {
		nr = max(nr, c.rowTo+1)
		nc = max(nc, c.colTo+1)
	}
	mh, mv := l.MarginHorizontal, l.MarginVertical
	gh, gv := l.GapHorizontal, l.GapVertical
	pl, pr := l.PaddingLeft, l.PaddingRight
	pb, pt := l.PaddingBottom, l.PaddingTop

	var rows [][]float64
	var rhs []float64

	global := make([]float64, nr+nc)
	for j := range nc {
		global[nr+j] = 1
	}
	rows = append(rows, global)
	rhs = append(rhs, l.Width-2*mh-float64(nc-1)*gh)

	for _, c := range l.cells {
		if c.aspect == 0 {
			continue
		}
		row := make([]float64, nr+nc)
		for i := c.rowFrom; i <= c.rowTo; i++ {
			row[i] = -c.aspect
		}
		for j := c.colFrom; j <= c.colTo; j++ {
			row[nr+j] = 1
		}
		nvr := float64(c.rowTo - c.rowFrom + 1)
		nvc := float64(c.colTo - c.colFrom + 1)
		rows = append(rows, row)
		rhs = append(rhs, (pl+pr-(nvc-1)*gh)-c.aspect*(pt+pb-(nvr-1)*gv))
	}

	u, rank, err := solveMinNorm(rows, rhs)
	if err != nil {
		return nil, 0, err
	}
	if rank < nr+nc {
		logger.Warnw("layout is underdetermined", "rank", rank, "unknowns", nr+nc)
	}
	rh, cw := u[:nr], u[nr:]

	height := sum(rh) + 2*mv + float64(nr-1)*gv
	actualWidth := sum(cw) + 2*mh + float64(nc-1)*gh
	if math.Abs(actualWidth-l.Width) > tolerance {
		logger.Warnw("layout width differs from the requested width",
			"width", actualWidth, "requested", l.Width)
	}

	views := make([]View, len(l.cells))
	for i, c := range l.cells {
		ox := mh + sum(cw[:c.colFrom]) + float64(c.colFrom)*gh
		oy := mv + sum(rh[:c.rowFrom]) + float64(c.rowFrom)*gv
		ow := sum(cw[c.colFrom:c.colTo+1]) + float64(c.colTo-c.colFrom)*gh
		oh := sum(rh[c.rowFrom:c.rowTo+1]) + float64(c.rowTo-c.rowFrom)*gv
		oy = height - oy - oh

		iw := ow - pl - pr
		ih := oh - pt - pb
		if iw <= 0 || ih <= 0 {
			return nil, 0, errors.Wrapf(ErrLayout, "view %d has no room for data", i)
		}
		views[i] = View{
			Outer: rect.Rect{LLx: ox, LLy: oy, URx: ox + ow, URy: oy + oh},
			Inner: rect.Rect{LLx: ox + pl, LLy: oy + pb, URx: ox + pl + iw, URy: oy + pb + ih},
		}

		if c.aspect != 0 && math.Abs(iw-c.aspect*ih) > tolerance {
			logger.Warnw("view aspect ratio differs from the requested ratio",
				"view", i, "aspect", iw/ih, "requested", c.aspect)
		}
	}
	return views, height, nil
}

// solveMinNorm returns the minimum-norm least-squares solution of A x = b,
// together with the numerical rank of A.  This is the solution obtained
// from the Moore-Penrose pseudo-inverse of A.
func solveMinNorm(rows [][]float64, b []float64) ([]float64, int, error) {
	m, n := len(rows), len(rows[0])
	A := mat.NewDense(m, n, nil)
	for i, row := range rows {
		A.SetRow(i, row)
	}

	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return nil, 0, errors.Wrap(ErrLayout, "singular value decomposition failed")
	}
	rank := svd.Rank(float64(max(m, n)) * eps)
	if rank == 0 {
		return nil, 0, errors.Wrap(ErrLayout, "no constraints")
	}

	x := mat.NewVecDense(n, nil)
	svd.SolveVecTo(x, mat.NewVecDense(m, b), rank)
	return x.RawVector().Data, rank, nil
}

// eps is the machine epsilon for float64.
var eps = math.Nextafter(1, 2) - 1

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// DrawLayout draws the outline of a layout and its views into s, with
// labels for identification.  This is meant to aid the design of layouts.
func DrawLayout(s *tikz.Scope, l Layout) error {
	w, h, err := l.Size()
	if err != nil {
		return err
	}
	views, err := l.Views()
	if err != nil {
		return err
	}

	label := tikz.Opt("anchor", "north west").Set("font", `\tiny`)
	s.Draw(tikz.XY(0, 0), tikz.Rectangle{To: tikz.XY(w, h)})
	s.Node("Layout", "", tikz.XY(0, h)).With(label)
	for i, v := range views {
		drawBox(s, v.Outer).Set("opacity", 0.5)
		s.Node(fmt.Sprintf("View %d", i), "", tikz.XY(v.Outer.LLx, v.Outer.URy)).With(label)
		drawBox(s, v.Inner)
	}
	return s.Err()
}

func drawBox(s *tikz.Scope, b rect.Rect) *tikz.Action {
	return s.Draw(tikz.XY(b.LLx, b.LLy), tikz.Rectangle{To: tikz.XY(b.URx, b.URy)})
}

// LayoutPicture returns a picture which shows the given layout.
func LayoutPicture(l Layout) (*tikz.Picture, error) {
	pic := tikz.NewPicture(tikz.Options{})
	err := DrawLayout(&pic.Scope, l)
	if err != nil {
		return nil, err
	}
	return pic, nil
}
