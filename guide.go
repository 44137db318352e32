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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BorderInset is the width of the margin, in page units, which is kept
// clear along the page edges.  Vanishing points at ±100% are placed on the
// inner edge of this margin.
const BorderInset = 10

// MaxRays is the largest number of rays per vanishing point which
// [Config.Check] accepts.
const MaxRays = 1_000_000

// stepEpsilon absorbs rounding errors when counting the rays in a full turn,
// so that for example a step of 0.1° gives exactly 3600 rays.
const stepEpsilon = 1e-9

var (
	// ErrInvalidGeometry is returned for page sizes, horizon positions or
	// angle steps which do not describe a drawable guide.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNoVanishingPoint is returned if neither vanishing point is set.
	ErrNoVanishingPoint = errors.New("no vanishing point")
)

// Config describes one perspective guide.
type Config struct {
	// PaperName is used for the label only.
	PaperName string

	// Width and Height give the page size.  Any unit can be used, as long
	// as it is used consistently; the backends in this module use PDF
	// points.
	Width, Height float64

	// HorizonPercent is the height of the horizon, in percent of the page
	// height.  It must lie strictly between 0 and 100.
	HorizonPercent float64

	// VP1 and VP2 give the horizontal positions of the vanishing points,
	// as a percentage of the distance from the page centre to the border.
	// VP1 is placed left of the centre and VP2 right of the centre.
	// Values above 100 move the point off the page.  At least one of the
	// two must be non-nil.
	VP1, VP2 *float64

	// AngleStep is the angle between adjacent rays, in degrees.
	AngleStep float64

	// Colour is the stroke colour.  It is passed through to the backends.
	Colour Colour

	// Logger receives debug output.  If this is nil, nothing is logged.
	Logger *slog.Logger
}

// Percent returns a pointer to v, for use in [Config.VP1] and [Config.VP2].
func Percent(v float64) *float64 {
	return &v
}

// Check verifies that the configuration describes a drawable guide.
func (c *Config) Check() error {
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("%w: page size %gx%g", ErrInvalidGeometry, c.Width, c.Height)
	}
	if !(c.HorizonPercent > 0 && c.HorizonPercent < 100) {
		return fmt.Errorf("%w: horizon at %g%%", ErrInvalidGeometry, c.HorizonPercent)
	}
	if !(c.AngleStep > 0) || math.IsInf(c.AngleStep, 0) {
		return fmt.Errorf("%w: angle step %g", ErrInvalidGeometry, c.AngleStep)
	}
	if 360/c.AngleStep > MaxRays {
		return fmt.Errorf("%w: angle step %g gives more than %d rays",
			ErrInvalidGeometry, c.AngleStep, MaxRays)
	}
	if c.VP1 == nil && c.VP2 == nil {
		return ErrNoVanishingPoint
	}
	for _, p := range []*float64{c.VP1, c.VP2} {
		if p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
			return fmt.Errorf("%w: vanishing point at %g%%", ErrInvalidGeometry, *p)
		}
	}
	return nil
}

// Horizon returns the height of the horizon line.
func (c *Config) Horizon() float64 {
	return c.Height * c.HorizonPercent / 100
}

// VanishingPoints returns the positions of the configured vanishing points.
// If only VP2 is set, it takes the role of VP1.
func (c *Config) VanishingPoints() []vec.Vec2 {
	half := c.Width / 2
	reach := half - BorderInset
	y := c.Horizon()

	pct1, pct2 := c.VP1, c.VP2
	if pct1 == nil {
		pct1, pct2 = pct2, nil
	}

	res := []vec.Vec2{{X: half - reach*(*pct1)/100, Y: y}}
	if pct2 != nil {
		res = append(res, vec.Vec2{X: half + reach*(*pct2)/100, Y: y})
	}
	return res
}

// Label returns the text stamped onto the guide.
func (c *Config) Label() string {
	parts := make([]string, 0, 5)
	if c.PaperName != "" {
		parts = append(parts, c.PaperName)
	}
	parts = append(parts, fmt.Sprintf("horizon %g%%", c.HorizonPercent))
	pct1, pct2 := c.VP1, c.VP2
	if pct1 == nil {
		pct1, pct2 = pct2, nil
	}
	if pct1 != nil {
		parts = append(parts, fmt.Sprintf("VP1 %g%%", *pct1))
	}
	if pct2 != nil {
		parts = append(parts, fmt.Sprintf("VP2 %g%%", *pct2))
	}
	parts = append(parts, fmt.Sprintf("%g deg", c.AngleStep))
	return strings.Join(parts, "  ")
}

// Family is the set of rays belonging to one vanishing point.
type Family struct {
	VP       vec.Vec2
	Table    *SectorTable
	Segments []Segment
}

// Guide is a fully laid out perspective guide.
type Guide struct {
	Page     rect.Rect
	Horizon  Segment
	Families []Family
	Colour   Colour
	Label    string
}

// NumSegments returns the total number of rays over all families.
func (g *Guide) NumSegments() int {
	n := 0
	for _, f := range g.Families {
		n += len(f.Segments)
	}
	return n
}

// Layout computes the horizon line and all rays for the configuration c.
func Layout(c *Config) (*Guide, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	logger := orDiscard(c.Logger)

	page := Page(c.Width, c.Height)
	y := c.Horizon()
	g := &Guide{
		Page:    page,
		Horizon: Segment{A: vec.Vec2{X: 0, Y: y}, B: vec.Vec2{X: c.Width, Y: y}},
		Colour:  c.Colour,
		Label:   c.Label(),
	}

	for i, vp := range c.VanishingPoints() {
		l := logger.With("vp", i+1)
		table := NewSectorTable(page, vp)
		segs := raysFromTable(table, c.AngleStep, l)
		g.Families = append(g.Families, Family{VP: vp, Table: table, Segments: segs})
		l.Info("family done", "x", vp.X, "y", vp.Y, "rays", len(segs))
	}
	return g, nil
}

// Rays returns the rays from vp to the border of page, spaced stepDeg
// degrees apart.  The ray along the horizon to the right (angle zero) is
// never included.  Rays which would leave the page on a side beyond which
// vp lies are omitted.
//
// The page must have its lower left corner at the origin, vp.Y must lie
// strictly between the bottom and top edge, and stepDeg must be positive.
func Rays(page rect.Rect, vp vec.Vec2, stepDeg float64, logger *slog.Logger) []Segment {
	return raysFromTable(NewSectorTable(page, vp), stepDeg, orDiscard(logger))
}

func raysFromTable(t *SectorTable, stepDeg float64, logger *slog.Logger) []Segment {
	logger.Debug("sector table",
		"top", t.Dist.Top, "bottom", t.Dist.Bottom,
		"left", t.Dist.Left, "right", t.Dist.Right,
		"offLeft", t.OffLeft, "offRight", t.OffRight,
		"bounds", t.Bounds[:])

	n := int(math.Floor(360/stepDeg + stepEpsilon))
	var res []Segment
	for i := 1; i < n; i++ {
		deg := float64(i) * stepDeg
		theta := DegToRad(deg)
		seg, ok := t.Clip(theta)
		if !ok {
			logger.Debug("ray suppressed", "deg", deg, "sector", t.Classify(theta))
			continue
		}
		logger.Debug("ray", "deg", deg, "sector", t.Classify(theta), "x", seg.B.X, "y", seg.B.Y)
		res = append(res, seg)
	}
	return res
}
