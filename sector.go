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
	"sort"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sector identifies the page edge through which a ray leaves the page.
// Sectors are listed in counter-clockwise order, starting at the horizon
// direction pointing right.
type Sector int

// These are the eight sectors around a vanishing point.
const (
	RightUpper Sector = iota
	TopRight
	TopLeft
	LeftUpper
	LeftLower
	BottomLeft
	BottomRight
	RightLower

	numSectors = 8
)

func (s Sector) String() string {
	switch s {
	case RightUpper:
		return "right-upper"
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case LeftUpper:
		return "left-upper"
	case LeftLower:
		return "left-lower"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case RightLower:
		return "right-lower"
	default:
		return "invalid"
	}
}

// facesLeft reports whether rays in the sector leave the page on the left
// half, as seen from the vanishing point.
func (s Sector) facesLeft() bool {
	return s >= TopLeft && s <= BottomLeft
}

// SectorTable partitions the full turn around a vanishing point into the
// eight angular sectors of a page.
//
// Angles are measured counter-clockwise from the horizon direction pointing
// right. Sector k covers the half-open interval [Bounds[k-1], Bounds[k]),
// where the lower bound of the first sector is zero.
type SectorTable struct {
	Page rect.Rect
	VP   vec.Vec2
	Dist Distances

	// Widths holds the angular width of each sector in radians.
	Widths [numSectors]float64

	// Bounds holds the cumulative sums of Widths.
	Bounds [numSectors]float64

	// OffLeft is set if the vanishing point lies on or beyond the left
	// edge of the page. Rays through the left half are not drawn.
	OffLeft bool

	// OffRight is set if the vanishing point lies on or beyond the right
	// edge of the page. Rays through the right half are not drawn.
	OffRight bool
}

// NewSectorTable computes the sector table for the vanishing point vp.
// The page must have its lower left corner at the origin, and vp.Y must
// lie strictly between the bottom and top edge.
func NewSectorTable(page rect.Rect, vp vec.Vec2) *SectorTable {
	d := DistancesFrom(page, vp)
	left := math.Abs(d.Left)
	right := math.Abs(d.Right)

	t := &SectorTable{
		Page:     page,
		VP:       vp,
		Dist:     d,
		OffLeft:  d.Left <= 0,
		OffRight: d.Right <= 0,
	}
	t.Widths = [numSectors]float64{
		atanRatio(d.Top, right),
		atanRatio(right, d.Top),
		atanRatio(left, d.Top),
		atanRatio(d.Top, left),
		atanRatio(d.Bottom, left),
		atanRatio(left, d.Bottom),
		atanRatio(right, d.Bottom),
		atanRatio(d.Bottom, right),
	}

	var sum float64
	for k, w := range t.Widths {
		sum += w
		t.Bounds[k] = sum
	}
	return t
}

// Start returns the lower bound of the sector s.
func (t *SectorTable) Start(s Sector) float64 {
	if s == 0 {
		return 0
	}
	return t.Bounds[s-1]
}

// FullTurn returns the sum of all sector widths. This is 2π up to
// rounding errors.
func (t *SectorTable) FullTurn() float64 {
	return t.Bounds[numSectors-1]
}

// Classify returns the sector containing the ray angle theta.
// Angles at or beyond FullTurn, which can only arise through rounding,
// are assigned to the last sector.
func (t *SectorTable) Classify(theta float64) Sector {
	k := sort.Search(numSectors, func(i int) bool {
		return theta < t.Bounds[i]
	})
	if k == numSectors {
		k = numSectors - 1
	}
	return Sector(k)
}

// Suppressed reports whether rays in sector s are omitted because the
// vanishing point lies off the corresponding side of the page.
func (t *SectorTable) Suppressed(s Sector) bool {
	if s.facesLeft() {
		return t.OffLeft
	}
	return t.OffRight
}

// edgeTolerance, relative to the page width, decides when an endpoint
// counts as lying on a vertical page edge.
const edgeTolerance = 1e-9

// Clip computes the segment from the vanishing point to the point where
// the ray at angle theta leaves the page.  The second return value is
// false if the ray is suppressed, in which case the segment is not
// meaningful.
//
// Rays of an off-canvas point are suppressed by sector, and also when
// their endpoint lands on or beyond the vertical page edge on the
// off-canvas side.  This catches rays along a zero-width sector and rays
// through a page corner.
func (t *SectorTable) Clip(theta float64) (Segment, bool) {
	s := t.Classify(theta)
	if t.Suppressed(s) {
		return Segment{}, false
	}

	w := t.Page.URx
	h := t.Page.URy
	vx := t.VP.X
	top := t.Dist.Top
	bottom := t.Dist.Bottom
	left := t.Dist.Left
	right := t.Dist.Right
	b := t.Bounds

	var end vec.Vec2
	switch s {
	case RightUpper:
		end = vec.Vec2{X: w, Y: bottom + right*math.Tan(theta)}
	case TopRight:
		end = vec.Vec2{X: vx + top*math.Tan(b[TopRight]-theta), Y: h}
	case TopLeft:
		end = vec.Vec2{X: vx - top*math.Tan(theta-b[TopRight]), Y: h}
	case LeftUpper:
		end = vec.Vec2{X: 0, Y: bottom + left*math.Tan(b[LeftUpper]-theta)}
	case LeftLower:
		end = vec.Vec2{X: 0, Y: bottom - left*math.Tan(theta-b[LeftUpper])}
	case BottomLeft:
		end = vec.Vec2{X: vx - bottom*math.Tan(b[BottomLeft]-theta), Y: 0}
	case BottomRight:
		end = vec.Vec2{X: vx + bottom*math.Tan(theta-b[BottomLeft]), Y: 0}
	case RightLower:
		end = vec.Vec2{X: w, Y: bottom - right*math.Tan(b[RightLower]-theta)}
	}
	eps := edgeTolerance * w
	if t.OffLeft && end.X <= eps || t.OffRight && end.X >= w-eps {
		return Segment{}, false
	}
	return Segment{A: t.VP, B: end}, true
}
