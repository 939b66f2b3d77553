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

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/tikz/internal/logger"
)

// DefaultCommand is the command line used by new compilers.  The arguments
// which select the picture are appended to this.
var DefaultCommand = []string{"xelatex"}

// DefaultCache is the initial value of [Compiler.Cache] for new compilers.
var DefaultCache = true

// ErrNoLaTeX is returned if the LaTeX executable cannot be found.
var ErrNoLaTeX = errors.New("LaTeX executable not found")

const (
	texName  = "tikz.tex"
	jobName  = "tikz-figure0"
	jobInput = `\def\tikzexternalrealjob{tikz}\input{tikz}`
)

// Compiler turns LaTeX documents into PDF files.
//
// All files are kept in the directory Dir.  The output file name contains a
// hash of the document, so that unchanged documents need not be compiled
// again if Cache is set.
type Compiler struct {
	// Command is the LaTeX command line, for example
	// []string{"xelatex", "-halt-on-error"}.
	Command []string

	// Dir is the working directory for the compiler.
	Dir string

	// Cache enables the reuse of PDF files from earlier runs.
	Cache bool

	ownDir bool
}

// New returns a compiler which works in the directory dir.  If dir is
// empty, a new temporary directory is created, which is removed again by
// [Compiler.Close].
func New(dir string) (*Compiler, error) {
	c := &Compiler{
		Command: append([]string(nil), DefaultCommand...),
		Dir:     dir,
		Cache:   DefaultCache,
	}
	if dir == "" {
		tmp, err := os.MkdirTemp("", "tikz-")
		if err != nil {
			return nil, errors.Wrap(err, "cannot create temporary directory")
		}
		c.Dir = tmp
		c.ownDir = true
	}
	return c, nil
}

// Close removes the working directory, if it was created by [New].
func (c *Compiler) Close() error {
	if !c.ownDir {
		return nil
	}
	c.ownDir = false
	return os.RemoveAll(c.Dir)
}

// PDFName returns the file name used for the PDF version of the document.
func (c *Compiler) PDFName(document string) string {
	sum := sha1.Sum([]byte(norm.NFC.String(document)))
	return filepath.Join(c.Dir, "tikz-"+hex.EncodeToString(sum[:])+".pdf")
}

// Compile converts the LaTeX document into a PDF file and returns the name
// of the PDF file.
//
// If the compiler fails, the returned error is an [*Error] which contains
// the compiler output.
func (c *Compiler) Compile(ctx context.Context, document string) (string, error) {
	if len(c.Command) == 0 {
		return "", errors.Wrap(ErrNoLaTeX, "empty command")
	}

	document = norm.NFC.String(document)
	pdfName := c.PDFName(document)
	if c.Cache {
		if _, err := os.Stat(pdfName); err == nil {
			logger.Debugw("using cached PDF", "file", pdfName)
			return pdfName, nil
		}
	}

	err := os.WriteFile(filepath.Join(c.Dir, texName), []byte(document+"\n"), 0o644)
	if err != nil {
		return "", errors.Wrap(err, "cannot write LaTeX file")
	}

	args := append(append([]string(nil), c.Command[1:]...), "-jobname", jobName, jobInput)
	cmd := exec.CommandContext(ctx, c.Command[0], args...)
	cmd.Dir = c.Dir
	cmd.Stdin = nil

	logger.Infow("running LaTeX", "command", c.Command[0], "dir", c.Dir)
	start := time.Now()
	out, err := cmd.Output()
	logger.Debugw("LaTeX finished", "duration", time.Since(start))
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			err = errors.Wrapf(ErrNoLaTeX, "%s", c.Command[0])
			return "", errors.WithHint(err, "install a TeX distribution or set latex.command in tikz.toml")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &Error{Output: string(out), Err: err}
		}
		return "", errors.Wrapf(err, "cannot run %s", c.Command[0])
	}

	err = os.Rename(filepath.Join(c.Dir, jobName+".pdf"), pdfName)
	if err != nil {
		return "", errors.Wrap(err, "LaTeX did not produce a PDF file")
	}
	return pdfName, nil
}
