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
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/tikz"
)

var (
	renderFlags  pictureFlags
	renderOutput string
	renderDPI    float64
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Compile a picture into a PDF, PNG or SVG file",
	Long: `Compile a picture into an image file.

FILE contains the body of a tikzpicture environment, "-" reads from stdin.
The output format is chosen by the extension of the output file.  With
"-o -", a PNG image is written to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var codeCmd = &cobra.Command{
	Use:   "code FILE",
	Short: "Print the LaTeX document for a picture",
	Args:  cobra.ExactArgs(1),
	RunE:  runCode,
}

var (
	demoFlags  pictureFlags
	demoOutput string
	demoDPI    float64
)

var demoCmd = &cobra.Command{
	Use:   "demo FILE",
	Short: "Write an HTML page showing a picture next to its code",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemo,
}

var codeFlags pictureFlags

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (.pdf, .png or .svg), - for PNG on stdout")
	renderCmd.Flags().Float64Var(&renderDPI, "dpi", 0, "Resolution of PNG output (default from config)")
	_ = renderCmd.MarkFlagRequired("output")

	codeFlags.register(codeCmd)

	demoFlags.register(demoCmd)
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output HTML file, - for stdout")
	demoCmd.Flags().Float64Var(&demoDPI, "dpi", 0, "Resolution of the preview image (default from config)")
	_ = demoCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	pic, err := renderFlags.loadPicture(args[0])
	if err != nil {
		return err
	}
	defer pic.Close()

	ctx := cmd.Context()
	if renderOutput == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			err := errors.New("refusing to write binary PNG data to a terminal")
			return errors.WithHint(err, "redirect stdout to a file or use -o FILE.png")
		}
		dpi := renderDPI
		if dpi == 0 {
			dpi = tikz.FileDPI
		}
		data, err := pic.PNG(ctx, dpi)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := pic.WriteImage(ctx, renderOutput, renderDPI); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", renderOutput)
	return nil
}

func runCode(cmd *cobra.Command, args []string) error {
	pic, err := codeFlags.loadPicture(args[0])
	if err != nil {
		return err
	}
	doc, err := pic.DocumentCode()
	if err != nil {
		return err
	}
	fmt.Println(doc)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	pic, err := demoFlags.loadPicture(args[0])
	if err != nil {
		return err
	}
	defer pic.Close()

	if demoOutput == "-" {
		return pic.Demo(cmd.Context(), os.Stdout, demoDPI)
	}

	out, err := os.Create(demoOutput)
	if err != nil {
		return err
	}
	err = pic.Demo(cmd.Context(), out, demoDPI)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", demoOutput)
	return nil
}
