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

package label

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path returns the outline of text as a set of rectangles in page
// coordinates (y pointing up).  The baseline starts at origin and each
// font pixel becomes a square of side length scale.
func Path(text string, origin vec.Vec2, scale float64) *path.Data {
	runs, _ := Runs(text)
	p := &path.Data{}
	for _, r := range runs {
		x0 := origin.X + float64(r.Min.X)*scale
		x1 := origin.X + float64(r.Max.X)*scale
		y0 := origin.Y - float64(r.Max.Y)*scale
		y1 := origin.Y - float64(r.Min.Y)*scale
		p = p.MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	}
	return p
}

// Origin returns the baseline start for a label which is vertically
// centred in a bottom margin of height inset, and indented by inset.
func Origin(inset, scale float64) vec.Vec2 {
	h := float64(Ascent+Descent) * scale
	return vec.Vec2{X: inset, Y: (inset-h)/2 + float64(Descent)*scale}
}
