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

// Package pdfguide writes perspective guides as single-page PDF files.
package pdfguide

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/label"
)

// Options control the appearance of the PDF output.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// LineWidth is the stroke width of rays and horizon, in points.
	// The default is 0.5.
	LineWidth float64

	// Cap is the line cap style.  The default is butt caps.
	Cap graphics.LineCapStyle

	// NoBorder disables the white margin along the page edges.
	NoBorder bool

	// NoLabel disables the label in the bottom margin.
	NoLabel bool

	// LabelScale is the size of one label font pixel, in points.
	// The default is 0.5.
	LabelScale float64
}

const (
	defaultLineWidth  = 0.5
	defaultLabelScale = 0.5
)

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.LineWidth <= 0 {
		res.LineWidth = defaultLineWidth
	}
	if res.LabelScale <= 0 {
		res.LabelScale = defaultLabelScale
	}
	return res
}

// Write stores the guide g as a PDF file with the name fileName.
// The page size of the file is the page size of the guide, in points.
func Write(fileName string, g *perspective.Guide, opt *Options) error {
	paper := &pdf.Rectangle{
		URx: g.Page.URx,
		URy: g.Page.URy,
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	Draw(page, g, opt)
	return page.Close()
}

// Canvas is the subset of the PDF content stream operations used to
// draw a guide.
type Canvas interface {
	SetLineWidth(width float64)
	SetLineCap(style graphics.LineCapStyle)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rectangle(x, y, width, height float64)
	Stroke()
	Fill()
	FillEvenOdd()
}

// Draw paints the guide onto the canvas.  The canvas is assumed to use
// the default PDF coordinate system, with the origin in the lower left
// corner of the page.
func Draw(c Canvas, g *perspective.Guide, opt *Options) {
	o := opt.withDefaults()

	c.SetLineWidth(o.LineWidth)
	c.SetLineCap(o.Cap)
	c.SetStrokeColor(color.DeviceRGB{g.Colour.R, g.Colour.G, g.Colour.B})

	for _, f := range g.Families {
		if len(f.Segments) == 0 {
			continue
		}
		for _, s := range f.Segments {
			c.MoveTo(s.A.X, s.A.Y)
			c.LineTo(s.B.X, s.B.Y)
		}
		c.Stroke()
	}

	c.MoveTo(g.Horizon.A.X, g.Horizon.A.Y)
	c.LineTo(g.Horizon.B.X, g.Horizon.B.Y)
	c.Stroke()

	if !o.NoBorder {
		w := g.Page.URx
		h := g.Page.URy
		b := float64(perspective.BorderInset)
		c.SetFillColor(color.DeviceGray(1))
		c.Rectangle(0, 0, w, h)
		c.Rectangle(b, b, w-2*b, h-2*b)
		c.FillEvenOdd()
	}

	if !o.NoLabel && g.Label != "" {
		origin := label.Origin(perspective.BorderInset, o.LabelScale)
		c.SetFillColor(color.DeviceGray(0))
		if addPath(c, label.Path(g.Label, origin, o.LabelScale)) {
			c.Fill()
		}
	}
}

// addPath appends the polygonal path p to the current path.
// It reports whether any segments were added.
func addPath(c Canvas, p *path.Data) bool {
	drawn := false
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			c.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.LineTo(pts[0].X, pts[0].Y)
			drawn = true
		case path.CmdClose:
			c.ClosePath()
		}
	}
	return drawn
}
