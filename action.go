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

	"github.com/cockroachdb/errors"
)

// Action is a path action like \draw or \fill, together with its path
// specification.
//
// Normally, actions are created by the methods of [Scope], like
// [Scope.Draw].  The returned action can be used to set options:
//
//	pic.Draw(tikz.XY(0, 0), tikz.LinesTo(tikz.XY(1, 1))).Set("thick", true)
type Action struct {
	Name    string
	Spec    []Operation
	Options Options
}

// NewAction returns a new path action.  The elements of spec are
// converted as follows:
//   - an [Operation] is used as is,
//   - a string is converted to [Raw],
//   - a [Coord], a []Coord, a []Point, a []float64 or a [][]float64 table is
//     converted to [MoveTo].
//
// Any other value results in an error wrapping [ErrInvalidPath].
func NewAction(name string, spec ...any) (*Action, error) {
	a := &Action{Name: name}
	for i, el := range spec {
		op, err := pathElement(el)
		if err != nil {
			return nil, errors.Wrapf(err, "\\%s, element %d", name, i)
		}
		a.Spec = append(a.Spec, op)
	}
	return a, nil
}

func pathElement(el any) (Operation, error) {
	var op Operation
	switch v := el.(type) {
	case Operation:
		op = v
	case string:
		op = Raw(v)
	case Coord:
		op = MoveTo{v}
	case []Coord:
		op = MoveTo(v)
	case []Point:
		m := make(MoveTo, len(v))
		for i, p := range v {
			m[i] = p
		}
		op = m
	case []float64:
		op = MoveTo{Point(v)}
	case [][]float64:
		op = MoveTo(Table(v))
	default:
		return nil, errors.Wrapf(ErrInvalidPath, "%T", el)
	}
	if c, ok := op.(checker); ok {
		if err := c.check(); err != nil {
			return nil, err
		}
	}
	return op, nil
}

// Set sets the option key to value and returns the action.
func (a *Action) Set(key string, value any) *Action {
	a.Options = a.Options.Set(key, value)
	return a
}

// Flag adds the value-less option key and returns the action.
func (a *Action) Flag(key string) *Action {
	a.Options = a.Options.Flag(key)
	return a
}

// With adds all the given options and returns the action.
func (a *Action) With(opt Options) *Action {
	a.Options = a.Options.Merge(opt)
	return a
}

// Code implements the [Element] interface.
func (a *Action) Code(tr Transform) string {
	parts := make([]string, len(a.Spec))
	for i, op := range a.Spec {
		parts[i] = op.Code(tr)
	}
	return `\` + a.Name + a.Options.String() + " " + strings.Join(parts, " ") + ";"
}
