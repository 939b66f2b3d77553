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

package render

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/draw"

	"seehuhn.de/go/tikz/internal/ghostscript"
	"seehuhn.de/go/tikz/internal/logger"
)

var (
	// ErrNoGhostscript is returned if the Ghostscript executable cannot be
	// run.
	ErrNoGhostscript = ghostscript.ErrNoGhostscript

	// ErrNoConverter is returned if the PDF to SVG converter cannot be
	// found.
	ErrNoConverter = errors.New("SVG converter not found")
)

// Renderer holds the command names of the external conversion tools.
type Renderer struct {
	// Ghostscript is the name of the Ghostscript executable.
	Ghostscript string

	// SVGCommand is the command line of the SVG converter.  The names of
	// the input and output files are appended.
	SVGCommand []string
}

// Default is the renderer used by the tikz package.
var Default = &Renderer{
	Ghostscript: "gs",
	SVGCommand:  []string{"pdftocairo", "-svg"},
}

// Available reports whether Ghostscript can be used to render PNG images.
func (r *Renderer) Available() bool {
	return ghostscript.IsAvailable(r.Ghostscript)
}

// WritePNG rasterizes the first page of the PDF file and writes the result
// to pngName.
func (r *Renderer) WritePNG(ctx context.Context, pdfName, pngName string, dpi float64, alpha bool) error {
	if dpi <= 0 {
		return errors.Newf("invalid resolution %g", dpi)
	}
	logger.Debugw("rendering PNG", "pdf", pdfName, "dpi", dpi, "alpha", alpha)
	return ghostscript.RenderPNG(ctx, r.Ghostscript, pdfName, pngName, dpi, alpha)
}

// PNG rasterizes the first page of the PDF file and returns the PNG data.
func (r *Renderer) PNG(ctx context.Context, pdfName string, dpi float64, alpha bool) ([]byte, error) {
	var data []byte
	err := withTempFile(pdfName, ".png", func(out string) error {
		err := r.WritePNG(ctx, pdfName, out, dpi, alpha)
		if err != nil {
			return err
		}
		data, err = os.ReadFile(out)
		return err
	})
	return data, err
}

// Image rasterizes the first page of the PDF file and returns the decoded
// image.
func (r *Renderer) Image(ctx context.Context, pdfName string, dpi float64, alpha bool) (image.Image, error) {
	data, err := r.PNG(ctx, pdfName, dpi, alpha)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode Ghostscript output")
	}
	return img, nil
}

// WriteSVG converts the PDF file into an SVG file.
func (r *Renderer) WriteSVG(ctx context.Context, pdfName, svgName string) error {
	if len(r.SVGCommand) == 0 {
		return errors.Wrap(ErrNoConverter, "empty command")
	}

	args := append(append([]string(nil), r.SVGCommand[1:]...), pdfName, svgName)
	cmd := exec.CommandContext(ctx, r.SVGCommand[0], args...)
	cmd.Stdin = nil
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debugw("converting to SVG", "command", r.SVGCommand[0], "pdf", pdfName)
	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		err = errors.Wrapf(ErrNoConverter, "%s", r.SVGCommand[0])
		return errors.WithHint(err, "install poppler-utils or set render.svg_command in tikz.toml")
	} else if err != nil {
		return errors.WithDetail(errors.Wrapf(err, "%s failed", r.SVGCommand[0]), stderr.String())
	}
	return nil
}

// SVG converts the PDF file into SVG and returns the SVG data.
func (r *Renderer) SVG(ctx context.Context, pdfName string) ([]byte, error) {
	var data []byte
	err := withTempFile(pdfName, ".svg", func(out string) error {
		err := r.WriteSVG(ctx, pdfName, out)
		if err != nil {
			return err
		}
		data, err = os.ReadFile(out)
		return err
	})
	return data, err
}

// withTempFile calls fn with a file name next to pdfName, which has the
// given extension.  The file is removed after fn returns.
func withTempFile(pdfName, ext string, fn func(string) error) error {
	f, err := os.CreateTemp(filepath.Dir(pdfName), "render-*"+ext)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)
	return fn(name)
}

// Thumbnail scales img down so that its width is at most maxWidth pixels,
// keeping the aspect ratio.  Images which are small enough, and all images
// if maxWidth is not positive, are returned unchanged.
func Thumbnail(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	height := (b.Dy()*maxWidth + b.Dx()/2) / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// EncodePNG returns the PNG encoding of img.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode PNG")
	}
	return buf.Bytes(), nil
}
