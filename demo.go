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
	"encoding/base64"
	"html/template"
	"image/png"
	"io"

	"github.com/cockroachdb/errors"

	"seehuhn.de/go/tikz/internal/logger"
	"seehuhn.de/go/tikz/latex"
	"seehuhn.de/go/tikz/render"
)

// DemoTemplate is the HTML template used by [Picture.Demo].  The template
// is executed with a [DemoData] value.
var DemoTemplate = template.Must(template.New("demo").Parse(`<div style="background-color:#e0e0e0;margin:0">
  <div>
    <div style="padding:10px;float:left">
      {{- if .Image}}
      <img src="{{.Image}}">
      {{- else}}
      <pre style="color:#a00000;white-space:pre-wrap">{{.Message}}</pre>
      {{- end}}
    </div>
    <pre
        style="width:47%;margin:0;padding:10px;float:right;white-space:pre-wrap;font-size:smaller"
        >{{.Code}}</pre>
  </div>
  <div style="clear:both"></div>
</div>
`))

// DemoData is the data passed to [DemoTemplate].
type DemoData struct {
	// Image is a data URL containing the PNG rendering of the picture, or
	// empty if LaTeX has failed.
	Image template.URL

	// Message is the LaTeX error message, if any.
	Message string

	// Code is the TikZ code of the picture.
	Code string
}

// Demo writes an HTML fragment to w, which shows the rendered picture next
// to its TikZ code.  This is meant to aid the development of pictures.
//
// If LaTeX fails, the error is logged and the LaTeX error message is shown
// in place of the image.  Other errors are returned.  If dpi is zero,
// [DisplayDPI] is used.
func (p *Picture) Demo(ctx context.Context, w io.Writer, dpi float64) error {
	code, err := p.Code()
	if err != nil {
		return err
	}
	data := &DemoData{Code: code}

	pngData, err := p.PNG(ctx, dpi)
	var latexErr *latex.Error
	switch {
	case errors.As(err, &latexErr):
		data.Message = latexErr.Message()
		logger.Errorw("LaTeX has failed", "message", data.Message)
	case err != nil:
		return err
	default:
		pngData, err = shrink(pngData, PreviewWidth)
		if err != nil {
			return err
		}
		data.Image = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData))
	}

	return DemoTemplate.Execute(w, data)
}

func shrink(pngData []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return pngData, nil
	}
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode preview")
	}
	if img.Bounds().Dx() <= maxWidth {
		return pngData, nil
	}
	return render.EncodePNG(render.Thumbnail(img, maxWidth))
}
