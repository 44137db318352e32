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

package perspective

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DegToRad converts an angle from degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Segment is a straight line from A to B in page coordinates.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Page returns the page rectangle of the given size, with the lower left
// corner at the origin.
func Page(width, height float64) rect.Rect {
	return rect.Rect{URx: width, URy: height}
}

// Distances describes the page edges as seen from a vanishing point.
// Top and Bottom are always positive for a point strictly inside the
// vertical extent of the page. Left and Right are signed: a negative value
// means that the point lies beyond that edge.
type Distances struct {
	Top, Bottom float64
	Left, Right float64
}

// DistancesFrom computes the distances from vp to the four edges of page.
// The page is assumed to have its lower left corner at the origin.
func DistancesFrom(page rect.Rect, vp vec.Vec2) Distances {
	return Distances{
		Top:    page.URy - vp.Y,
		Bottom: vp.Y,
		Left:   vp.X,
		Right:  page.URx - vp.X,
	}
}

// atanRatio returns atan(num/den) for non-negative arguments, with the
// limit π/2 when den is zero.
func atanRatio(num, den float64) float64 {
	if den == 0 {
		return math.Pi / 2
	}
	return math.Atan(num / den)
}
