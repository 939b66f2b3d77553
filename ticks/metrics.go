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

package ticks

// Metrics gives the dimensions of the glyphs which occur in tick labels.
// All values are in units of the font size.
type Metrics struct {
	// Widths maps characters to glyph widths.  Characters which are not
	// listed are assumed to have the width of the digit zero.
	Widths map[rune]float64

	// Offset is added to the total width of a label.
	Offset float64

	// Height is the height of a label.
	Height float64
}

// Width returns the width of a label.
func (m *Metrics) Width(label string) float64 {
	w := m.Offset
	for _, r := range label {
		gw, ok := m.Widths[r]
		if !ok {
			gw = m.Widths['0']
		}
		w += gw
	}
	return w
}

func digitWidths(digit, minus, dot float64) map[rune]float64 {
	res := map[rune]float64{'-': minus, '.': dot}
	for r := '0'; r <= '9'; r++ {
		res[r] = digit
	}
	return res
}

var (
	// ComputerModern describes TeX's Computer Modern Roman font in math
	// mode.
	ComputerModern = &Metrics{
		Widths: digitWidths(0.5, 0.678, 0.278),
		Offset: 0.1,
		Height: 0.728,
	}

	// FiraMath describes the Fira Math font.
	FiraMath = &Metrics{
		Widths: digitWidths(0.56, 0.4, 0.24),
		Offset: 0.1,
		Height: 0.723,
	}
)
