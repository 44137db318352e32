// seehuhn.de/go/perspective - printable perspective guides
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command perspective writes a printable perspective guide as a PDF file.
//
// Usage:
//
//	perspective [flags]
//
// For example, a two-point guide on landscape A3 paper:
//
//	perspective -size A3 -orientation landscape -vp1 60 -vp2 60 -angle 5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/paper"
	"seehuhn.de/go/perspective/pdfguide"
	"seehuhn.de/go/perspective/preview"
)

const version = "1.0.0"

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "perspective:", err)
		os.Exit(1)
	}
}

// options holds the values of the command line flags.
type options struct {
	out         string
	size        string
	orientation string
	horizon     float64
	vp1, vp2    *float64
	angle       float64
	colour      string
	lineWidth   float64
	pngOut      string
	dpi         float64
	verbose     bool
	version     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("perspective", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.out, "o", "", "output PDF file (default derived from the settings)")
	fs.StringVar(&o.size, "size", "A4", "page size: a paper name ("+strings.Join(paper.Names(), ", ")+") or <W>x<H>{in|mm}")
	fs.StringVar(&o.orientation, "orientation", "portrait", "page orientation: portrait or landscape")
	fs.Float64Var(&o.horizon, "horizon", 50, "height of the horizon, in percent of the page height")
	fs.Func("vp1", "position of the left vanishing point, in percent of the half page width", percentFlag(&o.vp1))
	fs.Func("vp2", "position of the right vanishing point, in percent of the half page width", percentFlag(&o.vp2))
	fs.Float64Var(&o.angle, "angle", 10, "angle between rays, in degrees")
	fs.StringVar(&o.colour, "colour", "#a0a0ff", "stroke colour, as #rrggbb or a colour name")
	fs.Float64Var(&o.lineWidth, "width", 0.5, "stroke width, in points")
	fs.StringVar(&o.pngOut, "png", "", "also write a PNG preview to this file")
	fs.Float64Var(&o.dpi, "dpi", 150, "resolution of the PNG preview")
	fs.BoolVar(&o.verbose, "v", false, "print details about the computed rays")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	return o, nil
}

func percentFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.version {
		fmt.Fprintln(stderr, "perspective", version)
		return nil
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, orient, err := o.config(logger)
	if err != nil {
		return err
	}
	g, err := perspective.Layout(cfg)
	if err != nil {
		return err
	}

	out := o.out
	if out == "" {
		out = defaultFileName(cfg, orient) + ".pdf"
	}
	err = pdfguide.Write(out, g, &pdfguide.Options{LineWidth: o.lineWidth})
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	logger.Info("wrote guide", "file", out, "rays", g.NumSegments())

	if o.pngOut != "" {
		err = preview.WritePNG(o.pngOut, g, &preview.Options{DPI: o.dpi, LineWidth: o.lineWidth})
		if err != nil {
			return fmt.Errorf("%s: %w", o.pngOut, err)
		}
		logger.Info("wrote preview", "file", o.pngOut)
	}
	return nil
}

// config resolves the paper size and colour and assembles the guide
// configuration.
func (o *options) config(logger *slog.Logger) (*perspective.Config, paper.Orientation, error) {
	size, err := paper.Lookup(o.size)
	if err != nil {
		return nil, 0, err
	}
	orient, err := paper.ParseOrientation(o.orientation)
	if err != nil {
		return nil, 0, err
	}
	size = size.Orient(orient)

	col, err := perspective.ParseColour(o.colour)
	if err != nil {
		return nil, 0, err
	}
	if o.vp1 == nil && o.vp2 == nil {
		return nil, 0, fmt.Errorf("%w: use -vp1 and/or -vp2", perspective.ErrNoVanishingPoint)
	}

	return &perspective.Config{
		PaperName:      size.Name,
		Width:          size.Width,
		Height:         size.Height,
		HorizonPercent: o.horizon,
		VP1:            o.vp1,
		VP2:            o.vp2,
		AngleStep:      o.angle,
		Colour:         col,
		Logger:         logger,
	}, orient, nil
}

// defaultFileName derives an output file name, without extension, from
// the configuration.
func defaultFileName(cfg *perspective.Config, orient paper.Orientation) string {
	parts := []string{"perspective", cfg.PaperName, orient.String()}
	parts = append(parts, "h"+strconv.FormatFloat(cfg.HorizonPercent, 'g', -1, 64))
	for _, p := range []*float64{cfg.VP1, cfg.VP2} {
		if p != nil {
			parts = append(parts, "v"+strconv.FormatFloat(*p, 'g', -1, 64))
		}
	}
	parts = append(parts, "a"+strconv.FormatFloat(cfg.AngleStep, 'g', -1, 64))
	return strings.Join(parts, "-")
}
