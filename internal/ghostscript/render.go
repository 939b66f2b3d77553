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

// Package ghostscript runs the Ghostscript command-line tool to rasterize
// PDF files.
package ghostscript

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"sync"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/tikz/internal/float"
	"seehuhn.de/go/tikz/internal/logger"
)

// ErrNoGhostscript is returned if the ghostscript command-line tool is not
// available.
var ErrNoGhostscript = errors.New("cannot run ghostscript")

// IsAvailable returns true if the ghostscript executable gs can be run and
// supports PNG output.  The result is cached for each executable name.
func IsAvailable(gs string) bool {
	gsMutex.Lock()
	defer gsMutex.Unlock()

	found, seen := gsFound[gs]
	if seen {
		return found
	}
	out, err := exec.Command(gs, "-h").Output()
	found = err == nil && gsPNGRe.Match(out) && gsAlphaRe.Match(out)
	gsFound[gs] = found
	return found
}

// RenderPNG rasterizes the first page of pdfName and writes the result to
// the PNG file pngName.  The resolution is given in dots per inch.  If
// alpha is set, the background is transparent, otherwise it is white.
func RenderPNG(ctx context.Context, gs, pdfName, pngName string, dpi float64, alpha bool) error {
	if !IsAvailable(gs) {
		return errors.WithHint(errors.Wrapf(ErrNoGhostscript, "%s", gs),
			"install Ghostscript or set render.ghostscript in tikz.toml")
	}

	device := "png16m"
	if alpha {
		device = "pngalpha"
	}
	cmd := exec.CommandContext(ctx,
		gs, "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE="+device, "-r"+float.Format(dpi, 3),
		"-dTextAlphaBits=4", "-dGraphicsAlphaBits=4",
		"-dFirstPage=1", "-dLastPage=1",
		"-o", pngName,
		pdfName)
	cmd.Stdin = nil
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return errors.WithDetail(errors.Wrap(err, "ghostscript failed"), stderr.String())
	}
	if len(out) > 0 {
		logger.Warnw("unexpected ghostscript output", "output", string(out))
	}
	return nil
}

var (
	gsMutex   sync.Mutex
	gsFound   = make(map[string]bool)
	gsPNGRe   = regexp.MustCompile(`\bpng16m\b`)
	gsAlphaRe = regexp.MustCompile(`\bpngalpha\b`)
)
