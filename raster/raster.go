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

// Package raster converts the straight-line geometry of a perspective
// guide into anti-aliased pixel coverage.
//
// Coverage is computed exactly for polygons: for every pixel the
// rasteriser determines the fraction of the pixel area covered by the
// shape.  Strokes are converted to polygons first, one outline per line.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Line is a straight line from A to B in user space.
type Line struct {
	A, B vec.Vec2
}

// EmitFunc receives the coverage of one row of pixels, starting at
// column xMin.  Coverage values range from 0 to 1.  The slice is only
// valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser computes pixel coverage for filled paths and stroked lines.
// Internal buffers are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip is the device space rectangle which receives output.
	// Coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style used for line ends.
	Cap graphics.LineCapStyle

	cover   []float32
	area    []float32
	edges   []edge
	active  []int
	outline []vec.Vec2

	haveBBox         bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, the
// identity transformation and a stroke width of 1.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings, keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
}

// FillNonZero fills a polygonal path using the nonzero winding rule.
// Curve segments are replaced by their chords.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.addPath(p)
	r.scan(nonZero, emit)
}

// FillEvenOdd fills a polygonal path using the even-odd rule.
// Curve segments are replaced by their chords.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.addPath(p)
	r.scan(evenOdd, emit)
}

// StrokeLines strokes all lines with the current Width and Cap.
// Where lines overlap, the pixels are covered only once.
func (r *Rasteriser) StrokeLines(lines []Line, emit EmitFunc) {
	r.startEdges()
	for _, l := range lines {
		r.outlineLine(l)
		r.addPolygon(r.outline)
	}
	r.scan(nonZero, emit)
}

// addPath adds the edges of all subpaths of p.  Open subpaths are closed
// implicitly.
func (r *Rasteriser) addPath(p *path.Data) {
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}
}

// outlineLine stores the outline polygon of a stroked line in r.outline.
// All outlines have the same orientation, so that overlaps are merged
// by the nonzero rule.
func (r *Rasteriser) outlineLine(l Line) {
	r.outline = r.outline[:0]

	d := l.B.Sub(l.A)
	length := d.Length()
	hw := r.Width / 2
	if length < zeroLengthThreshold || hw <= 0 {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)

	a, b := l.A, l.B
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(hw))
		b = b.Add(t.Mul(hw))
	}

	r.outline = append(r.outline, a.Add(n), b.Add(n))
	if r.Cap == graphics.LineCapRound {
		r.addHalfCircle(b, n)
	}
	r.outline = append(r.outline, b.Sub(n), a.Sub(n))
	if r.Cap == graphics.LineCapRound {
		r.addHalfCircle(a, n.Mul(-1))
	}
}

// addHalfCircle appends the interior points of a half circle around c,
// turning clockwise from c+from to c-from.
func (r *Rasteriser) addHalfCircle(c, from vec.Vec2) {
	for i := 1; i < roundCapSteps; i++ {
		phi := -math.Pi * float64(i) / roundCapSteps
		sin, cos := math.Sincos(phi)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + cos*from.X - sin*from.Y,
			Y: c.Y + sin*from.X + cos*from.Y,
		})
	}
}

// addPolygon adds the edges of a closed polygon.
func (r *Rasteriser) addPolygon(poly []vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge transforms an edge to device space and adds it to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.haveBBox {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.haveBBox = true
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// bounds returns the pixel range touched by the current edges, clamped
// to the clip rectangle.
func (r *Rasteriser) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// scan walks the scanlines from top to bottom, maintaining a list of
// active edges, and emits the coverage of every row touched by an edge.
func (r *Rasteriser) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}
		kept := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].yMax() > yTop {
				kept = append(kept, i)
			}
		}
		r.active = kept
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}

		if rule == nonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Each edge crossing scanline y contributes to two per-pixel buffers:
//
//	cover: the signed height of the edge within the pixel column
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// The coverage of pixel i is then area[i] plus the sum of cover[j] for
// all j < i.

// accumulate adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x-xMin.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	switch {
	case pixLeft >= xMax:
		return
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return
	case pixLeft == pixRight:
		r.addPiece(e, yTop, yBot, sign, pixLeft, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.addPiece(e, lo, hi, sign, pix, xMin, xMax)
	}
}

// addPiece adds the part of e between lo and hi, which lies within the
// pixel column pix.
func (r *Rasteriser) addPiece(e *edge, lo, hi float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated buffers into coverage values,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns the accumulated buffers into coverage values,
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a row.
// It returns nil if the row is empty.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, for an edge to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest line, in user space, which is
	// stroked.
	zeroLengthThreshold = 1e-10

	// roundCapSteps is the number of chords used for a round line cap.
	roundCapSteps = 8
)
