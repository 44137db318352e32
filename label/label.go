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

// Package label renders short text strings with a fixed bitmap font.
//
// The result is a list of horizontal pixel runs, which the backends turn
// into filled rectangles.  This keeps the label identical in the PDF and
// in the preview image, without needing to embed a font.
package label

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the bitmap face used for all labels.
var Face font.Face = basicfont.Face7x13

// Ascent and Descent give the vertical extent of the face in pixels,
// relative to the baseline.
var (
	Ascent  = Face.Metrics().Ascent.Ceil()
	Descent = Face.Metrics().Descent.Ceil()
)

// Runs rasterises text.  Each returned rectangle is one pixel high and
// covers a horizontal run of set pixels.  Coordinates are in pixels
// relative to the start of the baseline, with y pointing down.
// The second return value is the advance width of the whole string.
func Runs(text string) ([]image.Rectangle, int) {
	var runs []image.Rectangle
	dot := fixed.P(0, 0)
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += Face.Kern(prev, r)
		}
		prev = r

		dr, mask, maskp, advance, ok := Face.Glyph(dot, r)
		dot.X += advance
		if !ok {
			continue
		}
		runs = appendRuns(runs, dr, mask, maskp)
	}
	return runs, dot.X.Ceil()
}

// appendRuns scans the glyph mask row by row and appends the runs of
// pixels with non-zero alpha.
func appendRuns(runs []image.Rectangle, dr image.Rectangle, mask image.Image, maskp image.Point) []image.Rectangle {
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		start := -1
		for x := dr.Min.X; x <= dr.Max.X; x++ {
			set := false
			if x < dr.Max.X {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				set = a > 0x7fff
			}
			switch {
			case set && start < 0:
				start = x
			case !set && start >= 0:
				runs = append(runs, image.Rect(start, y, x, y+1))
				start = -1
			}
		}
	}
	return runs
}
