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
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/tikz/latex"
	"seehuhn.de/go/tikz/render"
)

var (
	// DisplayDPI is the resolution used for images which are shown on
	// screen, for example by [Picture.Demo].
	DisplayDPI = 96.0

	// FileDPI is the resolution used by [Picture.WriteImage] for PNG
	// files.
	FileDPI = 300.0

	// PreviewWidth, if positive, limits the width in pixels of the images
	// shown by [Picture.Demo].
	PreviewWidth = 0
)

// Picture is a tikzpicture environment, together with the LaTeX document
// which contains it.
//
// Use the methods of the embedded [Scope] to draw the picture.  The
// methods of Picture compile the document and convert the result into
// image files.  Call [Picture.Close] when the picture is no longer needed,
// to remove temporary files.
type Picture struct {
	Scope

	// TempDir is the directory for the LaTeX run.  If this is empty, a
	// private temporary directory is used.
	TempDir string

	// Cache enables the reuse of the PDF file if the LaTeX code has not
	// changed since the last build.
	Cache bool

	// Compiler, if set, is used instead of a compiler created from TempDir
	// and Cache.
	Compiler *latex.Compiler

	// Renderer converts the PDF file into other formats.  If this is nil,
	// [render.Default] is used.
	Renderer *render.Renderer

	preamble      []string
	documentCodes []string
	ownCompiler   *latex.Compiler
}

// NewPicture returns a new, empty picture with the given options for the
// tikzpicture environment.
func NewPicture(opt Options) *Picture {
	return &Picture{
		Scope: Scope{Options: opt},
		Cache: latex.DefaultCache,
	}
}

// AddPreamble adds LaTeX code to the document preamble.  Code which is
// already present is not added a second time.
func (p *Picture) AddPreamble(code string) {
	for _, have := range p.preamble {
		if have == code {
			return
		}
	}
	p.preamble = append(p.preamble, code)
}

// UseTikzLibrary loads the given TikZ library.
func (p *Picture) UseTikzLibrary(name string) {
	p.AddPreamble(`\usetikzlibrary{` + name + `}`)
}

// UsePackage loads a LaTeX package.  If options is not empty, it is used
// as the package option list.
func (p *Picture) UsePackage(name, options string) {
	code := `\usepackage`
	if options != "" {
		code += "[" + options + "]"
	}
	p.AddPreamble(code + "{" + name + "}")
}

// AddDocumentCode adds LaTeX code to the document body, before the
// tikzpicture environment.
func (p *Picture) AddDocumentCode(code string) {
	p.documentCodes = append(p.documentCodes, code)
}

// Fira selects the Fira Sans font for text and Fira Math for mathematics.
// This requires xelatex or lualatex.
func (p *Picture) Fira() {
	p.UsePackage("FiraSans", "sfdefault")
	p.UsePackage("unicode-math", "mathrm=sym")
	p.AddPreamble(`\setmathfont{Fira Math}[math-style=ISO,bold-style=ISO,nabla=upright,partial=upright]`)
}

// Code returns the TikZ code of the tikzpicture environment.
func (p *Picture) Code() (string, error) {
	if err := p.Err(); err != nil {
		return "", err
	}
	return `\begin{tikzpicture}` + p.Options.String() + "\n" +
		p.body(nil) + "\n" +
		`\end{tikzpicture}`, nil
}

// DocumentCode returns a complete LaTeX document containing the picture.
func (p *Picture) DocumentCode() (string, error) {
	code, err := p.Code()
	if err != nil {
		return "", err
	}
	lines := []string{
		`\documentclass{article}`,
		`\usepackage{tikz}`,
		`\usetikzlibrary{external}`,
		`\tikzexternalize`,
	}
	lines = append(lines, p.preamble...)
	lines = append(lines,
		`\begin{document}`,
		strings.Join(p.documentCodes, "\n"),
		code,
		`\end{document}`)
	return strings.Join(lines, "\n"), nil
}

// Build compiles the picture and returns the name of the resulting PDF
// file.  The file is owned by the picture and must not be modified.
func (p *Picture) Build(ctx context.Context) (string, error) {
	doc, err := p.DocumentCode()
	if err != nil {
		return "", err
	}
	c, err := p.compiler()
	if err != nil {
		return "", err
	}
	return c.Compile(ctx, doc)
}

func (p *Picture) compiler() (*latex.Compiler, error) {
	if p.Compiler != nil {
		return p.Compiler, nil
	}
	if p.ownCompiler == nil || p.ownCompiler.Dir != p.TempDir && p.TempDir != "" {
		if err := p.Close(); err != nil {
			return nil, err
		}
		c, err := latex.New(p.TempDir)
		if err != nil {
			return nil, err
		}
		p.ownCompiler = c
	}
	p.ownCompiler.Cache = p.Cache
	return p.ownCompiler, nil
}

func (p *Picture) renderer() *render.Renderer {
	if p.Renderer != nil {
		return p.Renderer
	}
	return render.Default
}

// WriteImage compiles the picture and writes it to an image file.  The
// file format is determined by the file name extension:
//   - .pdf copies the PDF file produced by LaTeX,
//   - .png renders the picture with a transparent background at the given
//     resolution, or at [FileDPI] if dpi is zero,
//   - .svg converts the picture to SVG.
//
// Other extensions result in an error wrapping [ErrUnsupportedFormat].
func (p *Picture) WriteImage(ctx context.Context, filename string, dpi float64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".png", ".svg":
		// pass
	default:
		return unsupportedFormat(strings.TrimPrefix(ext, "."))
	}
	if dpi == 0 {
		dpi = FileDPI
	}

	pdfName, err := p.Build(ctx)
	if err != nil {
		return err
	}
	switch ext {
	case ".pdf":
		return copyFile(filename, pdfName)
	case ".png":
		return p.renderer().WritePNG(ctx, pdfName, filename, dpi, true)
	default:
		return p.renderer().WriteSVG(ctx, pdfName, filename)
	}
}

// PNG compiles the picture and returns a PNG rendering with a white
// background.  If dpi is zero, [DisplayDPI] is used.
func (p *Picture) PNG(ctx context.Context, dpi float64) ([]byte, error) {
	if dpi == 0 {
		dpi = DisplayDPI
	}
	pdfName, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}
	return p.renderer().PNG(ctx, pdfName, dpi, false)
}

// SVG compiles the picture and returns an SVG version.
func (p *Picture) SVG(ctx context.Context) ([]byte, error) {
	pdfName, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}
	return p.renderer().SVG(ctx, pdfName)
}

// Close removes the temporary directory used to compile the picture, if
// it was created by the picture.
func (p *Picture) Close() error {
	if p.ownCompiler == nil {
		return nil
	}
	err := p.ownCompiler.Close()
	p.ownCompiler = nil
	return err
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return errors.Wrapf(err, "cannot write %s", dst)
	}
	return out.Close()
}
