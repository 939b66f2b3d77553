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

// Package ticks chooses tick marks and tick labels for plot axes.
//
// The tick values are found using the Extended-Wilkinson algorithm
// described in
//
//	Talbot, J., Lin, S., & Hanrahan, P. (2010). An extension of
//	Wilkinson's algorithm for positioning tick labels on axes.
//	IEEE Trans. Vis. Comput. Graph., 16(6), 1036-1043.
//
// The algorithm balances the simplicity of the tick values, the coverage
// of the data range, the density of the ticks and the legibility of the
// labels.  Legibility is optimized over the label format, the font size
// and the label orientation, using the glyph widths of the label font.
package ticks

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/tikz/internal/logger"
)

var (
	// ErrEmptyRange is returned if the data range or the axis length is
	// empty.
	ErrEmptyRange = errors.New("empty range")

	// ErrNoTicks is returned if no legible set of ticks exists.
	ErrNoTicks = errors.New("no ticks found")
)

// nice is one of the preferred step sizes, given as n*10^e.
type nice struct {
	n int64
	e int
}

func (q nice) float() float64 {
	return float64(q.n) * math.Pow10(q.e)
}

// niceSteps lists the nice step sizes in order of preference.
var niceSteps = []nice{{1, 0}, {5, 0}, {2, 0}, {25, -1}, {4, 0}, {3, 0}}

// weights of simplicity, coverage, density and legibility
var weights = [4]float64{0.25, 0.2, 0.5, 0.05}

// Generator chooses ticks for axes.
type Generator struct {
	// FontSizes lists the admissible font sizes for tick labels, in TeX
	// points, in increasing order.  The largest size is preferred.
	FontSizes []float64

	// Density is the target number of ticks per centimeter.
	Density float64

	// Metrics describes the font used for tick labels.
	Metrics *Metrics

	// OnlyLoose forces the ticks to cover the complete data range.
	OnlyLoose bool

	// Normalize removes trailing zeros from the tick labels.
	Normalize bool
}

// NewGenerator returns a generator for the given font sizes and target
// density.  The generator uses the [ComputerModern] metrics.
func NewGenerator(fontSizes []float64, density float64) *Generator {
	fs := append([]float64(nil), fontSizes...)
	sort.Float64s(fs)
	return &Generator{
		FontSizes: fs,
		Density:   density,
		Metrics:   ComputerModern,
		OnlyLoose: true,
		Normalize: true,
	}
}

// Ticks chooses the ticks for an axis which shows the data range from dmin
// to dmax.  The physical length of the axis is given in centimeters.
// Horizontal indicates whether the axis is horizontal.
func (g *Generator) Ticks(dmin, dmax, length float64, horizontal bool) (*Ticks, error) {
	if dmin > dmax {
		dmin, dmax = dmax, dmin
	}
	if !(dmax > dmin) || math.IsInf(dmax-dmin, 0) {
		return nil, errors.Wrapf(ErrEmptyRange, "data range [%g,%g]", dmin, dmax)
	}
	if !(length > 0) {
		return nil, errors.Wrapf(ErrEmptyRange, "axis length %g", length)
	}
	if !(g.Density > 0) || len(g.FontSizes) == 0 {
		return nil, errors.New("invalid tick generator settings")
	}
	metrics := g.Metrics
	if metrics == nil {
		metrics = ComputerModern
	}

	// Target number of ticks.  With this choice, the density score
	// compares the tick density per centimeter to g.Density.
	m := g.Density*length + 1

	bestScore := -2.0
	var best *Ticks

jLoop:
	for j := 1; ; j++ {
		for qi, q := range niceSteps {
			i := qi + 1
			qf := q.float()
			sm := simplicityMax(i, j)
			if score(sm, 1, 1, 1) < bestScore {
				break jLoop
			}

			for k := 2; ; k++ {
				dm := densityMax(k, m)
				if score(sm, 1, dm, 1) < bestScore {
					break
				}

				delta := (dmax - dmin) / float64(k+1) / (float64(j) * qf)
				for z := int(math.Ceil(math.Log10(delta))); ; z++ {
					step := qf * float64(j) * math.Pow10(z)

					cm := coverageMax(dmin, dmax, step*float64(k-1))
					if score(sm, cm, dm, 1) < bestScore {
						break
					}

					if math.Max(math.Abs(dmin), math.Abs(dmax))/step > 1<<50 {
						// tick indices would not be exact
						continue
					}
					minStart := int(math.Floor(dmax/step))*j - (k-1)*j
					maxStart := int(math.Ceil(dmin/step)) * j
					for start := minStart; start <= maxStart; start++ {
						lmin := float64(start) * step / float64(j)
						lmax := lmin + step*float64(k-1)
						if g.OnlyLoose && (lmin > dmin || lmax < dmax) {
							continue
						}

						s := simplicity(i, start, j, k)
						c := coverage(dmin, dmax, lmin, lmax)
						d := density(k, m, dmin, dmax, lmin, lmax)
						if score(s, c, d, 1) < bestScore {
							continue
						}

						t := &Ticks{
							q:       q,
							start:   start,
							j:       j,
							z:       z,
							k:       k,
							AxisMin: math.Min(lmin, dmin),
							AxisMax: math.Max(lmax, dmax),
						}
						l := t.optimize(g, metrics, length, horizontal)
						total := score(s, c, d, l)
						if total > bestScore {
							bestScore = total
							t.Score = total
							best = t
						}
					}
				}
			}
		}
	}

	if best == nil {
		return nil, errors.Wrapf(ErrNoTicks, "data range [%g,%g], length %gcm", dmin, dmax, length)
	}
	best.finish(g.Normalize)
	logger.Debugw("ticks chosen",
		"min", dmin, "max", dmax, "labels", best.Labels, "score", best.Score)
	return best, nil
}

func simplicity(i, start, j, k int) float64 {
	// is zero one of the tick values?
	v := 0.0
	if start%j == 0 && start <= 0 && start+j*(k-1) >= 0 {
		v = 1
	}
	return 1 - float64(i-1)/float64(len(niceSteps)-1) - float64(j) + v
}

func simplicityMax(i, j int) float64 {
	return 1 - float64(i-1)/float64(len(niceSteps)-1) - float64(j) + 1
}

func coverage(dmin, dmax, lmin, lmax float64) float64 {
	r := 0.1 * (dmax - dmin)
	return 1 - 0.5*((dmax-lmax)*(dmax-lmax)+(dmin-lmin)*(dmin-lmin))/(r*r)
}

func coverageMax(dmin, dmax, span float64) float64 {
	rng := dmax - dmin
	half := (span - rng) / 2
	r := 0.1 * rng
	return 1 - 0.5*(2*half*half)/(r*r)
}

func density(k int, m, dmin, dmax, lmin, lmax float64) float64 {
	r := float64(k-1) / (lmax - lmin)
	rt := (m - 1) / (math.Max(lmax, dmax) - math.Min(dmin, lmin))
	return 2 - math.Max(r/rt, rt/r)
}

func densityMax(k int, m float64) float64 {
	if float64(k) >= m {
		return 2 - float64(k-1)/(m-1)
	}
	return 1
}

func score(s, c, d, l float64) float64 {
	return weights[0]*s + weights[1]*c + weights[2]*d + weights[3]*l
}
