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

import (
	"math"
	"strconv"
	"strings"
)

// Ticks describes the tick marks and labels of an axis.
type Ticks struct {
	// Values are the positions of the ticks, in data coordinates.
	Values []float64

	// Labels are the tick labels.  They contain only digits, a minus
	// sign and a decimal point, and are meant to be typeset in math mode.
	Labels []string

	// Scientific indicates that the labels must be multiplied by
	// 10^Power to give the tick values.
	Scientific bool
	Power      int

	// AxisMin and AxisMax give the range covered by the axis.  This is
	// the union of the data range and the range of the ticks.
	AxisMin, AxisMax float64

	// FontSize is the font size for the labels, in TeX points.
	FontSize float64

	// Horizontal indicates whether the labels are written horizontally.
	// Otherwise they are rotated by 90 degrees.
	Horizontal bool

	// Score is the total score of the ticks, and Legibility is the
	// contribution of label legibility to this score.
	Score      float64
	Legibility float64

	// The tick values are q*(start + j*i)*10^z for i = 0, ..., k-1.
	q        nice
	start, j int
	z, k     int
}

// PowerLabel returns the exponent for scientific labels, or the empty
// string if the labels are decimal.
func (t *Ticks) PowerLabel() string {
	if !t.Scientific {
		return ""
	}
	return strconv.Itoa(t.Power)
}

// Step returns the distance between adjacent ticks.
func (t *Ticks) Step() float64 {
	return t.q.float() * float64(t.j) * math.Pow10(t.z)
}

// Position returns the relative position of the data value x on the axis,
// where 0 corresponds to AxisMin and 1 corresponds to AxisMax.
func (t *Ticks) Position(x float64) float64 {
	return (x - t.AxisMin) / (t.AxisMax - t.AxisMin)
}

// values returns the tick values as floating point numbers.
func (t *Ticks) values() []float64 {
	res := make([]float64, t.k)
	for i := range res {
		res[i] = t.q.float() * float64(t.start+t.j*i) * math.Pow10(t.z)
	}
	return res
}

// coefficients returns the tick values as n*10^e, with a common
// exponent e.
func (t *Ticks) coefficients() ([]int64, int) {
	res := make([]int64, t.k)
	for i := range res {
		res[i] = t.q.n * int64(t.start+t.j*i)
	}
	return res, t.q.e + t.z
}

// decimalLabels returns the labels in decimal format.
func (t *Ticks) decimalLabels(normalize bool) []string {
	ns, e := t.coefficients()
	labels := make([]string, len(ns))
	for i, n := range ns {
		labels[i] = formatDecimal(n, e, normalize)
	}
	return labels
}

// scientificLabels returns the labels relative to the largest power of
// ten which can be factored out, together with this power.
func (t *Ticks) scientificLabels(normalize bool) ([]string, int) {
	ns, e := t.coefficients()
	power := math.MaxInt
	for _, n := range ns {
		if n == 0 {
			continue
		}
		if n < 0 {
			n = -n
		}
		p := len(strconv.FormatInt(n, 10)) - 1 + e
		power = min(power, p)
	}
	if power == math.MaxInt {
		power = 0
	}

	labels := make([]string, len(ns))
	for i, n := range ns {
		labels[i] = formatDecimal(n, e-power, normalize)
	}
	return labels, power
}

// optimize chooses the label format, the font size and the label
// orientation with the best legibility.  The best legibility score is
// returned.
func (t *Ticks) optimize(g *Generator, metrics *Metrics, length float64, horizontal bool) float64 {
	values := t.values()
	fsMin := g.FontSizes[0]
	fsTarget := g.FontSizes[len(g.FontSizes)-1]

	t.Legibility = math.Inf(-1)
	for _, scientific := range []bool{false, true} {
		var legFormat float64
		var labels []string
		if !scientific {
			good := 0
			for _, v := range values {
				if a := math.Abs(v); a > 1e-4 && a < 1e6 {
					good++
				}
			}
			legFormat = float64(good) / float64(len(values))
			labels = t.decimalLabels(g.Normalize)
		} else {
			legFormat = 0.3
			labels, _ = t.scientificLabels(g.Normalize)
		}

		// label extents, in units of the font size
		widths := make([]float64, len(labels))
		for i, l := range labels {
			widths[i] = metrics.Width(l)
		}

		for _, fs := range g.FontSizes {
			legSize := 1.0
			if fs != fsTarget {
				legSize = 0.2 * (fs - fsMin + 1) / (fsTarget - fsMin)
			}

			// distance between ticks, in units of the font size
			step := t.Step() / (t.AxisMax - t.AxisMin) * length / (fs / 72.27 * 2.54)

			for _, labelHorizontal := range []bool{true, false} {
				legOrient := -0.5
				if labelHorizontal {
					legOrient = 1
				}

				dist := math.Inf(1)
				for i := 0; i+1 < len(labels); i++ {
					var extent float64
					if labelHorizontal == horizontal {
						extent = (widths[i] + widths[i+1]) / 2
					} else {
						extent = metrics.Height
					}
					dist = min(dist, step-extent)
				}
				var legOverlap float64
				switch {
				case dist >= 1.5:
					legOverlap = 1
				case dist > 0:
					legOverlap = 2 - 1.5/dist
				default:
					legOverlap = math.Inf(-1)
				}

				leg := (legFormat + legSize + legOrient + legOverlap) / 4
				if leg > t.Legibility {
					t.Legibility = leg
					t.Scientific = scientific
					t.FontSize = fs
					t.Horizontal = labelHorizontal
				}
			}
		}
	}
	return t.Legibility
}

// finish fills in the tick values and labels.
func (t *Ticks) finish(normalize bool) {
	t.Values = t.values()
	if t.Scientific {
		t.Labels, t.Power = t.scientificLabels(normalize)
	} else {
		t.Labels = t.decimalLabels(normalize)
		t.Power = 0
	}
}

// formatDecimal writes n*10^e as a decimal number, without exponent.  If
// normalize is false, the number of decimal places is -e.  Otherwise,
// trailing zeros after the decimal point are omitted.
func formatDecimal(n int64, e int, normalize bool) string {
	if n == 0 {
		if normalize || e >= 0 {
			return "0"
		}
		return "0." + strings.Repeat("0", -e)
	}
	if normalize {
		for n%10 == 0 && e < 0 {
			n /= 10
			e++
		}
	}

	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if e >= 0 {
		digits += strings.Repeat("0", e)
	} else {
		places := -e
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}
