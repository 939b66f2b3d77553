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
	"fmt"
	"strings"

	"seehuhn.de/go/tikz/internal/float"
)

// Options is an ordered list of TikZ settings, optionally preceded by a raw
// option string.
//
// Options values are immutable: all methods return a modified copy.  The
// zero value is an empty option list.
type Options struct {
	raw  string
	keys []string
	vals []any
}

// Opt returns an option list with the single setting key=value.
func Opt(key string, value any) Options {
	return Options{}.Set(key, value)
}

// Flag returns an option list which contains key without a value.
func Flag(key string) Options {
	return Options{}.Set(key, true)
}

// RawOptions returns an option list which starts with the given string.
// The string is copied into the TikZ code without modification.
func RawOptions(s string) Options {
	return Options{raw: s}
}

// Set returns a copy of o with key set to value.  If key is already present,
// its value is replaced in place.
//
// Underscores in the key are written as spaces, so that "line_width" and
// "line width" refer to the same setting.  A nil value suppresses the
// setting, the value true emits only the key.
func (o Options) Set(key string, value any) Options {
	key = strings.ReplaceAll(key, "_", " ")
	keys := make([]string, len(o.keys), len(o.keys)+1)
	vals := make([]any, len(o.vals), len(o.vals)+1)
	copy(keys, o.keys)
	copy(vals, o.vals)
	for i, k := range keys {
		if k == key {
			vals[i] = value
			return Options{raw: o.raw, keys: keys, vals: vals}
		}
	}
	return Options{raw: o.raw, keys: append(keys, key), vals: append(vals, value)}
}

// Flag returns a copy of o with the value-less setting key added.
func (o Options) Flag(key string) Options {
	return o.Set(key, true)
}

// Raw returns a copy of o with the raw option string replaced.
func (o Options) Raw(s string) Options {
	o.raw = s
	return o
}

// Merge returns a copy of o with all settings of other added.  If other has
// a raw option string, it is appended to the raw string of o.
func (o Options) Merge(other Options) Options {
	res := o
	switch {
	case res.raw == "":
		res.raw = other.raw
	case other.raw != "":
		res.raw += "," + other.raw
	}
	for i, key := range other.keys {
		res = res.Set(key, other.vals[i])
	}
	return res
}

// Get returns the value stored for key, and whether the key is present.
func (o Options) Get(key string) (any, bool) {
	key = strings.ReplaceAll(key, "_", " ")
	for i, k := range o.keys {
		if k == key {
			return o.vals[i], true
		}
	}
	return nil, false
}

// IsEmpty reports whether o would produce no TikZ code.
func (o Options) IsEmpty() bool {
	return o.Inner() == ""
}

// Inner returns the TikZ code for the options without the enclosing square
// brackets.
func (o Options) Inner() string {
	var parts []string
	if o.raw != "" {
		parts = append(parts, o.raw)
	}
	for i, key := range o.keys {
		val := o.vals[i]
		if val == nil {
			continue
		}
		if b, ok := val.(bool); ok && b {
			parts = append(parts, key)
			continue
		}
		parts = append(parts, key+"="+formatValue(val))
	}
	return strings.Join(parts, ",")
}

// String returns the TikZ code for the options, enclosed in square
// brackets.  If there are no options, the empty string is returned.
func (o Options) String() string {
	inner := o.Inner()
	if inner == "" {
		return ""
	}
	return "[" + inner + "]"
}

// Code implements the [Operation] interface.  This allows to use an option
// list within a path specification, where it applies to the rest of the
// path.
func (o Options) Code(Transform) string {
	return o.String()
}

func formatValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case Coord:
		return v.coordCode(nil)
	case fmt.Stringer:
		return v.String()
	}
	if x, isNum := toFloat(val); isNum {
		return formatNumber(x)
	}
	return fmt.Sprint(val)
}

// formatNumber writes x in fixed-point notation with five decimals (the
// precision of TeX dimensions), without trailing zeros.
func formatNumber(x float64) string {
	return float.Format(x, 5)
}

// FontSize returns the LaTeX code to select the given font size (in TeX
// points), with a line spacing of 1.2 times the font size.  The result can
// for example be used as the value of a "font" option.
func FontSize(size float64) string {
	return FontSizeSkip(size, float.Round(1.2*size, 2))
}

// FontSizeSkip returns the LaTeX code to select the given font size and
// baseline skip, both in TeX points.
func FontSizeSkip(size, skip float64) string {
	return `\fontsize{` + formatNumber(size) + `}{` + formatNumber(skip) + `}\selectfont`
}
