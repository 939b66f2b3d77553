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

// Package tikz creates graphics using the LaTeX package TikZ.
//
// A [Picture] collects path actions, like lines and filled shapes, in a
// tree of scopes.  The tree is converted into TikZ code, which is wrapped
// in a LaTeX document and compiled using an external LaTeX compiler
// (xelatex by default).  The resulting PDF file can be saved, or can be
// converted to PNG or SVG:
//
//	pic := tikz.NewPicture(tikz.Options{})
//	defer pic.Close()
//	pic.Draw(tikz.Lines(tikz.XY(0, 0), tikz.XY(2, 1), tikz.XY(2, 0), tikz.Cycle)).
//		Set("thick", true).Set("fill", "blue!20")
//	pic.Node("hello", "label", tikz.XY(1, -0.5))
//	err := pic.WriteImage(context.Background(), "out.png", 0)
//
// Coordinates can be given as numbers (see [XY] and [Points]) or as TikZ
// code (see [Literal] and [C]).  Invalid input is not reported by the
// drawing methods.  Instead, the first error is recorded and returned by
// [Scope.Err] and by all methods which generate code.
//
// The subpackage figure arranges several coordinate systems on a page, and
// the subpackage ticks chooses axis ticks.
package tikz
