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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tikz"
)

// pictureFlags are the command line options which control how the
// picture is wrapped into a LaTeX document.
type pictureFlags struct {
	options   string
	libraries []string
	packages  []string
	preamble  []string
	fira      bool
}

func (f *pictureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.options, "options", "", "Options for the tikzpicture environment")
	cmd.Flags().StringArrayVarP(&f.libraries, "library", "l", nil, "Load a TikZ library (repeatable)")
	cmd.Flags().StringArrayVarP(&f.packages, "package", "p", nil, "Load a LaTeX package, as NAME or NAME[OPTIONS] (repeatable)")
	cmd.Flags().StringArrayVar(&f.preamble, "preamble", nil, "Add LaTeX code to the preamble (repeatable)")
	cmd.Flags().BoolVar(&f.fira, "fira", false, "Use the Fira Sans and Fira Math fonts (needs xelatex or lualatex)")
}

// picture wraps the given tikzpicture body into a picture.
func (f *pictureFlags) picture(body string) (*tikz.Picture, error) {
	pic := tikz.NewPicture(tikz.RawOptions(f.options))
	if f.fira {
		pic.Fira()
	}
	for _, pkg := range f.packages {
		name, options, err := splitPackage(pkg)
		if err != nil {
			return nil, err
		}
		pic.UsePackage(name, options)
	}
	for _, lib := range f.libraries {
		pic.UseTikzLibrary(lib)
	}
	for _, code := range f.preamble {
		pic.AddPreamble(code)
	}
	pic.Append(tikz.Raw(strings.TrimSpace(body)))
	return pic, nil
}

// splitPackage splits "name[options]" into its parts.
func splitPackage(arg string) (string, string, error) {
	name, options, hasOptions := strings.Cut(arg, "[")
	if !hasOptions {
		return arg, "", nil
	}
	if !strings.HasSuffix(options, "]") || name == "" {
		return "", "", errors.Newf("malformed package %q", arg)
	}
	return name, strings.TrimSuffix(options, "]"), nil
}

// readSource reads the picture body from a file, or from stdin if the name
// is "-".
func readSource(name string) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s", name)
	}
	return string(data), nil
}

// loadPicture reads a picture body and wraps it into a picture.
func (f *pictureFlags) loadPicture(name string) (*tikz.Picture, error) {
	body, err := readSource(name)
	if err != nil {
		return nil, err
	}
	return f.picture(body)
}
