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

// Length units, expressed in centimeters, the default unit of TikZ.  For
// example, a line width of 3pt can be given as 3*Pt.
const (
	Cm   = 1.0
	Mm   = 0.1
	Inch = 2.54
	Pt   = Inch / 72.27 // TeX point
	Bp   = Inch / 72    // PostScript point
)
