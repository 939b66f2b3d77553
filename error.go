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

import "github.com/cockroachdb/errors"

// Errors reported for invalid input.  Use [errors.Is] to test for them.
var (
	ErrInvalidCoordinate = errors.New("not a coordinate")
	ErrInvalidSequence   = errors.New("not a sequence of coordinates")
	ErrInvalidPath       = errors.New("not a path specification element")
	ErrInvalidOperation  = errors.New("invalid path operation")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

func unsupportedFormat(ext string) error {
	err := errors.Newf("format %s is not supported", ext)
	err = errors.WithHint(err, "use one of .pdf, .png or .svg")
	return errors.Mark(err, ErrUnsupportedFormat)
}
