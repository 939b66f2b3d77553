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

package latex

import "strings"

// Error indicates that the LaTeX compiler exited with an error.
type Error struct {
	// Output is everything the compiler wrote to stdout.
	Output string

	// Err is the error returned by the process.
	Err error
}

func (err *Error) Error() string {
	return "LaTeX has failed\n" + err.Output
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Message returns the part of the compiler output which starts with the
// first TeX error message.  If no TeX error message is found, the complete
// output is returned.
func (err *Error) Message() string {
	if idx := strings.Index(err.Output, "! "); idx >= 0 {
		return err.Output[idx:]
	}
	return err.Output
}
