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
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/tikz/latex"
	"seehuhn.de/go/tikz/render"
)

func testPicture() *Picture {
	pic := NewPicture(Opt("scale", 2))
	pic.Draw(XY(0, 0), LinesTo(XY(1, 1)))
	return pic
}

func TestPictureCode(t *testing.T) {
	pic := testPicture()
	code, err := pic.Code()
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tikzpicture}[scale=2]\n\\draw (0,0) -- (1,1);\n\\end{tikzpicture}", code)

	empty, err := NewPicture(Options{}).Code()
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tikzpicture}\n\n\\end{tikzpicture}", empty)
}

func TestDocumentCode(t *testing.T) {
	pic := testPicture()
	pic.UseTikzLibrary("arrows.meta")
	pic.UseTikzLibrary("arrows.meta")
	pic.UsePackage("xcolor", "dvipsnames")
	pic.UsePackage("amsmath", "")
	pic.AddDocumentCode(`\sffamily`)
	pic.AddDocumentCode(`\large`)

	doc, err := pic.DocumentCode()
	require.NoError(t, err)
	want := strings.Join([]string{
		`\documentclass{article}`,
		`\usepackage{tikz}`,
		`\usetikzlibrary{external}`,
		`\tikzexternalize`,
		`\usetikzlibrary{arrows.meta}`,
		`\usepackage[dvipsnames]{xcolor}`,
		`\usepackage{amsmath}`,
		`\begin{document}`,
		`\sffamily`,
		`\large`,
		`\begin{tikzpicture}[scale=2]`,
		`\draw (0,0) -- (1,1);`,
		`\end{tikzpicture}`,
		`\end{document}`,
	}, "\n")
	assert.Equal(t, want, doc)
}

func TestFira(t *testing.T) {
	pic := NewPicture(Options{})
	pic.Fira()
	pic.Fira()
	doc, err := pic.DocumentCode()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, `\usepackage[sfdefault]{FiraSans}`))
	assert.Contains(t, doc, `\usepackage[mathrm=sym]{unicode-math}`)
	assert.Contains(t, doc, `\setmathfont{Fira Math}[math-style=ISO,bold-style=ISO,nabla=upright,partial=upright]`)
}

func TestPictureError(t *testing.T) {
	pic := NewPicture(Options{})
	pic.Draw("(0,0)", 3.5)

	_, err := pic.Code()
	assert.True(t, errors.Is(err, ErrInvalidPath))
	_, err = pic.DocumentCode()
	assert.True(t, errors.Is(err, ErrInvalidPath))
	_, err = pic.Build(context.Background())
	assert.True(t, errors.Is(err, ErrInvalidPath))
}

func TestUnsupportedFormat(t *testing.T) {
	pic := testPicture()
	defer pic.Close()

	err := pic.WriteImage(context.Background(), filepath.Join(t.TempDir(), "out.gif"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "format gif is not supported")
}

// fakeCompiler returns a compiler which runs the given shell code instead
// of LaTeX.
func fakeCompiler(t *testing.T, body string) *latex.Compiler {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
	script := filepath.Join(t.TempDir(), "fake-latex.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return &latex.Compiler{
		Command: []string{"sh", script},
		Dir:     t.TempDir(),
		Cache:   true,
	}
}

func TestWritePDF(t *testing.T) {
	pic := testPicture()
	pic.Compiler = fakeCompiler(t, "printf '%%PDF-1.4 fake\\n' > tikz-figure0.pdf")

	pdfName, err := pic.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pic.Compiler.Dir, filepath.Dir(pdfName))

	out := filepath.Join(t.TempDir(), "out.PDF")
	require.NoError(t, pic.WriteImage(context.Background(), out, 0))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake\n", string(data))
}

func TestDemoLaTeXFailure(t *testing.T) {
	pic := testPicture()
	pic.Compiler = fakeCompiler(t,
		"printf 'This is XeTeX\\n! Undefined control sequence.\\nl.7 foo\\n'\nexit 1")

	buf := &bytes.Buffer{}
	err := pic.Demo(context.Background(), buf, 0)
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "! Undefined control sequence.")
	assert.NotContains(t, html, "This is XeTeX")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, `\draw (0,0) -- (1,1);`)

	_, err = pic.PNG(context.Background(), 0)
	var latexErr *latex.Error
	require.True(t, errors.As(err, &latexErr))
	assert.True(t, strings.HasPrefix(err.Error(), "LaTeX has failed\n"))
}

func TestPrivateTempDir(t *testing.T) {
	pic := testPicture()
	c, err := pic.compiler()
	require.NoError(t, err)
	dir := c.Dir
	assert.DirExists(t, dir)
	assert.True(t, c.Cache)

	require.NoError(t, pic.Close())
	assert.NoDirExists(t, dir)
	require.NoError(t, pic.Close())
}

func TestRealLaTeX(t *testing.T) {
	if _, err := exec.LookPath(latex.DefaultCommand[0]); err != nil {
		t.Skip("LaTeX not found")
	}
	if !render.Default.Available() {
		t.Skip("Ghostscript not found")
	}

	pic := testPicture()
	defer pic.Close()

	buf := &bytes.Buffer{}
	require.NoError(t, pic.Demo(context.Background(), buf, 0))
	assert.Contains(t, buf.String(), `<img src="data:image/png;base64,`)

	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, pic.WriteImage(context.Background(), out, 72))
	assert.FileExists(t, out)
}
