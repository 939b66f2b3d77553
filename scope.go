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
)

// Element is a part of a TikZ environment: a path action, a command given
// as [Raw] code, or a nested environment.
type Element interface {
	Code(tr Transform) string
}

// Scope is a TikZ scope environment.  A scope groups path actions and
// other commands, so that options can be applied to all of them.
//
// Invalid input to the methods of a scope is not reported immediately.
// Instead, the first error is recorded and returned by [Scope.Err], and by
// [Picture.Code] and all methods which build the picture.
type Scope struct {
	Options  Options
	Elements []Element

	err error
}

// NewScope returns a new, empty scope.  Normally, scopes are created using
// [Scope.AddScope].
func NewScope(opt Options) *Scope {
	return &Scope{Options: opt}
}

// Append adds an element at the end of the scope.
func (s *Scope) Append(el Element) {
	s.Elements = append(s.Elements, el)
}

// Err returns the first error recorded in the scope or in any element
// contained in the scope.
func (s *Scope) Err() error {
	if s.err != nil {
		return s.err
	}
	for _, el := range s.Elements {
		if e, ok := el.(interface{ Err() error }); ok {
			if err := e.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scope) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Code implements the [Element] interface.
func (s *Scope) Code(tr Transform) string {
	return `\begin{scope}` + s.Options.String() + "\n" +
		s.body(tr) + "\n" +
		`\end{scope}`
}

func (s *Scope) body(tr Transform) string {
	parts := make([]string, len(s.Elements))
	for i, el := range s.Elements {
		parts[i] = el.Code(tr)
	}
	return strings.Join(parts, "\n")
}

// AddScope creates a nested scope, adds it to s and returns it.
func (s *Scope) AddScope(opt Options) *Scope {
	child := NewScope(opt)
	s.Append(child)
	return child
}

// AddAction appends a path action with the given name.  See [NewAction]
// for the allowed elements of spec.
func (s *Scope) AddAction(name string, spec ...any) *Action {
	a, err := NewAction(name, spec...)
	if err != nil {
		s.fail(err)
		// Return a detached action, so that calls to Set etc. still work.
		return &Action{Name: name}
	}
	s.Append(a)
	return a
}

// Path adds a \path action.  Without options, the path is not drawn.
func (s *Scope) Path(spec ...any) *Action {
	return s.AddAction("path", spec...)
}

// Draw adds a \draw action.
func (s *Scope) Draw(spec ...any) *Action {
	return s.AddAction("draw", spec...)
}

// Fill adds a \fill action.
func (s *Scope) Fill(spec ...any) *Action {
	return s.AddAction("fill", spec...)
}

// FillDraw adds a \filldraw action.
func (s *Scope) FillDraw(spec ...any) *Action {
	return s.AddAction("filldraw", spec...)
}

// Pattern adds a \pattern action.
func (s *Scope) Pattern(spec ...any) *Action {
	return s.AddAction("pattern", spec...)
}

// Shade adds a \shade action.
func (s *Scope) Shade(spec ...any) *Action {
	return s.AddAction("shade", spec...)
}

// ShadeDraw adds a \shadedraw action.
func (s *Scope) ShadeDraw(spec ...any) *Action {
	return s.AddAction("shadedraw", spec...)
}

// Clip adds a \clip action.  The clipping applies to the rest of the
// scope.
func (s *Scope) Clip(spec ...any) *Action {
	return s.AddAction("clip", spec...)
}

// UseAsBoundingBox adds a \useasboundingbox action.
func (s *Scope) UseAsBoundingBox(spec ...any) *Action {
	return s.AddAction("useasboundingbox", spec...)
}

// Node adds a \node action.  If name is not empty, the node can later be
// referred to using [At].  If at is nil, the node is placed at the origin.
func (s *Scope) Node(contents, name string, at Coord) *Action {
	return s.AddAction("node", Node{Contents: contents, Name: name, At: at, headless: true})
}

// Coordinate adds a \coordinate action, which defines a named point.
func (s *Scope) Coordinate(name string, at Coord) *Action {
	return s.AddAction("coordinate", Coordinate{Name: name, At: at, headless: true})
}

// DefineColor defines a new color from a color model like "rgb" or "HTML"
// and a color specification.  Multiple spec parts are joined by commas.
func (s *Scope) DefineColor(name, model string, spec ...string) {
	s.Append(Raw(`\definecolor{` + name + `}{` + model + `}{` + strings.Join(spec, ",") + `}`))
}

// ColorLet defines a new color from an xcolor color expression like
// "red!50!blue".
func (s *Scope) ColorLet(name, expr string) {
	s.Append(Raw(`\colorlet{` + name + `}{` + expr + `}`))
}

// TikzSet sets options for the rest of the scope.
func (s *Scope) TikzSet(opt Options) {
	s.Append(Raw(`\tikzset{` + opt.Inner() + `}`))
}

// Style defines a style, which can afterwards be used like an option.
// Existing styles, like "every node", can be redefined this way.
func (s *Scope) Style(name string, opt Options) {
	s.Append(Raw(`\tikzset{` + name + `/.style={` + opt.Inner() + `}}`))
}
