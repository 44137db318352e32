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

// Package preview renders perspective guides to raster images.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/label"
	"seehuhn.de/go/perspective/raster"
)

// Options control the rendering.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// DPI is the resolution of the image.  The default is 72, which maps
	// one point to one pixel.
	DPI float64

	// LineWidth is the stroke width in points.  The default is 0.5.
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

func (o *Options) withDefaults() Options {
	var res Options
	if o != nil {
		res = *o
	}
	if res.DPI <= 0 {
		res.DPI = 72
	}
	if res.LineWidth <= 0 {
		res.LineWidth = 0.5
	}
	if res.LabelScale <= 0 {
		res.LabelScale = 0.5
	}
	return res
}

// Render draws the guide g into a new image with a white background.
func Render(g *perspective.Guide, opt *Options) *image.RGBA {
	o := opt.withDefaults()
	scale := o.DPI / 72
	w := int(math.Ceil(g.Page.URx * scale))
	h := int(math.Ceil(g.Page.URy * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	// page coordinates have y pointing up, image rows go down
	r.CTM = matrix.Matrix{scale, 0, 0, -scale, 0, g.Page.URy * scale}
	r.Width = o.LineWidth
	r.Cap = o.Cap

	lines := make([]raster.Line, 0, g.NumSegments()+1)
	for _, f := range g.Families {
		for _, s := range f.Segments {
			lines = append(lines, raster.Line(s))
		}
	}
	lines = append(lines, raster.Line(g.Horizon))
	r.StrokeLines(lines, painter(img, g.Colour))

	if !o.NoBorder {
		r.FillEvenOdd(borderPath(g.Page), painter(img, color.White))
	}

	if !o.NoLabel && g.Label != "" {
		origin := label.Origin(perspective.BorderInset, o.LabelScale)
		r.FillNonZero(label.Path(g.Label, origin, o.LabelScale), painter(img, color.Black))
	}
	return img
}

// WritePNG renders the guide and stores the image as a PNG file.
func WritePNG(fileName string, g *perspective.Guide, opt *Options) error {
	img := Render(g, opt)

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// borderPath returns the frame between the page edge and the border
// inset, to be filled with the even-odd rule.
func borderPath(page rect.Rect) *path.Data {
	b := float64(perspective.BorderInset)
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: page.LLx, Y: page.LLy}).
		LineTo(vec.Vec2{X: page.URx, Y: page.LLy}).
		LineTo(vec.Vec2{X: page.URx, Y: page.URy}).
		LineTo(vec.Vec2{X: page.LLx, Y: page.URy}).
		Close().
		MoveTo(vec.Vec2{X: page.LLx + b, Y: page.LLy + b}).
		LineTo(vec.Vec2{X: page.URx - b, Y: page.LLy + b}).
		LineTo(vec.Vec2{X: page.URx - b, Y: page.URy - b}).
		LineTo(vec.Vec2{X: page.LLx + b, Y: page.URy - b}).
		Close()
}

// painter returns an emit function which blends col into img, using the
// coverage values as opacity.
func painter(img *image.RGBA, col color.Color) raster.EmitFunc {
	c := color.RGBAModel.Convert(col).(color.RGBA)
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride:]
		for i, a := range coverage {
			k := 4 * (xMin + i)
			row[k+0] = blend(row[k+0], c.R, a)
			row[k+1] = blend(row[k+1], c.G, a)
			row[k+2] = blend(row[k+2], c.B, a)
			row[k+3] = 0xff
		}
	}
}

func blend(dst, src uint8, a float32) uint8 {
	v := float32(dst)*(1-a) + float32(src)*a
	return uint8(max(0, min(255, v+0.5)))
}
