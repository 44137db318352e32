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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLayoutQuarterTurns(t *testing.T) {
	cfg := &Config{
		Width:          800,
		Height:         600,
		HorizonPercent: 50,
		VP1:            Percent(0),
		AngleStep:      90,
	}
	g, err := Layout(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Families) != 1 {
		t.Fatalf("got %d families", len(g.Families))
	}
	f := g.Families[0]
	if f.VP != (vec.Vec2{X: 400, Y: 300}) {
		t.Errorf("vanishing point at %v", f.VP)
	}

	want := []vec.Vec2{{X: 400, Y: 600}, {X: 0, Y: 300}, {X: 400, Y: 0}}
	if len(f.Segments) != len(want) {
		t.Fatalf("got %d rays, want %d", len(f.Segments), len(want))
	}
	for i, s := range f.Segments {
		if s.A != f.VP {
			t.Errorf("ray %d starts at %v", i, s.A)
		}
		if s.B.Sub(want[i]).Length() > 1e-9 {
			t.Errorf("ray %d ends at %v, want %v", i, s.B, want[i])
		}
		if !onBoundary(s.B, 800, 600) {
			t.Errorf("ray %d: endpoint %v not on the page boundary", i, s.B)
		}
	}

	if g.Horizon != (Segment{A: vec.Vec2{X: 0, Y: 300}, B: vec.Vec2{X: 800, Y: 300}}) {
		t.Errorf("horizon %v", g.Horizon)
	}
}

func onBoundary(p vec.Vec2, w, h float64) bool {
	return p.X == 0 || p.X == w || p.Y == 0 || p.Y == h
}

func TestOffCanvasLeft(t *testing.T) {
	page := Page(800, 600)
	vp := vec.Vec2{X: -50, Y: 300}

	// 360/7 is not an integer, so no ray lies exactly on a sector boundary
	// at 90° or 270°.  Of the 24 rays in right-facing sectors, the ones at
	// 84° and 273° meet the top and bottom edge lines left of the page.
	segs := Rays(page, vp, 7, nil)
	if len(segs) != 22 {
		t.Errorf("got %d rays, want 22", len(segs))
	}

	table := NewSectorTable(page, vp)
	for _, s := range segs {
		if s.B.X <= 0 {
			t.Errorf("ray ends on or beyond the left edge: %v", s.B)
		}
		theta := math.Atan2(s.B.Y-vp.Y, s.B.X-vp.X)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		if sec := table.Classify(theta); sec.facesLeft() {
			t.Errorf("ray in left-facing sector %s", sec)
		}
	}

	for _, deg := range []float64{84, 273} {
		if seg, ok := table.Clip(DegToRad(deg)); ok {
			t.Errorf("%g°: not suppressed, ends at %v", deg, seg.B)
		}
	}

	// rays which reach the page are unaffected by the position of the point
	for _, deg := range []float64{7, 42, 77, 280, 350} {
		seg, ok := table.Clip(DegToRad(deg))
		if !ok {
			t.Errorf("%g°: suppressed", deg)
			continue
		}
		if !onBoundary(seg.B, 800, 600) {
			t.Errorf("%g°: endpoint %v not on the boundary", deg, seg.B)
		}
	}
}

func TestOffCanvasRight(t *testing.T) {
	page := Page(800, 600)
	vp := vec.Vec2{X: 1000, Y: 200}
	segs := Rays(page, vp, 5, nil)
	if len(segs) == 0 {
		t.Fatal("no rays")
	}
	for _, s := range segs {
		if s.B.X >= 800 {
			t.Errorf("ray ends on or beyond the right edge: %v", s.B)
		}
	}

	// The 225° ray passes exactly through the lower right corner.
	table := NewSectorTable(page, vp)
	if seg, ok := table.Clip(DegToRad(225)); ok {
		t.Errorf("corner ray not suppressed, ends at %v", seg.B)
	}
}

// TestEdgePoint checks points which lie exactly on a vertical page edge.
// One of the sectors next to each vertical ray has zero width there, and
// both vertical rays must be suppressed alike.
func TestEdgePoint(t *testing.T) {
	page := Page(800, 600)
	tests := []struct {
		name string
		vx   float64
		step float64
		want []vec.Vec2
	}{
		{"left/90", 0, 90, nil},
		{"left/45", 0, 45, []vec.Vec2{{X: 300, Y: 600}, {X: 300, Y: 0}}},
		{"right/90", 800, 90, []vec.Vec2{{X: 0, Y: 300}}},
		{"right/45", 800, 45, []vec.Vec2{{X: 500, Y: 600}, {X: 0, Y: 300}, {X: 500, Y: 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp := vec.Vec2{X: tc.vx, Y: 300}
			segs := Rays(page, vp, tc.step, nil)
			if len(segs) != len(tc.want) {
				t.Fatalf("got %d rays %v, want %d", len(segs), segs, len(tc.want))
			}
			for i, s := range segs {
				if s.A != vp {
					t.Errorf("ray %d starts at %v", i, s.A)
				}
				if math.Abs(s.B.X-tc.want[i].X) > 1e-9 || math.Abs(s.B.Y-tc.want[i].Y) > 1e-9 {
					t.Errorf("ray %d ends at %v, want %v", i, s.B, tc.want[i])
				}
			}

			table := NewSectorTable(page, vp)
			_, up := table.Clip(DegToRad(90))
			_, down := table.Clip(DegToRad(270))
			if up || down {
				t.Errorf("vertical rays: 90° emitted=%t, 270° emitted=%t", up, down)
			}
		})
	}
}

func TestRayCount(t *testing.T) {
	page := Page(800, 600)
	vp := vec.Vec2{X: 400, Y: 300}
	tests := []struct {
		step float64
		want int
	}{
		{90, 3},
		{45, 7},
		{10, 35},
		{7, 50},
		{0.1, 3599},
		{180, 1},
		{200, 0},
		{360, 0},
	}
	for _, tc := range tests {
		if got := len(Rays(page, vp, tc.step, nil)); got != tc.want {
			t.Errorf("step %g°: %d rays, want %d", tc.step, got, tc.want)
		}
	}
}

func TestVanishingPoints(t *testing.T) {
	cfg := &Config{Width: 800, Height: 600, HorizonPercent: 25}

	cfg.VP1, cfg.VP2 = Percent(50), Percent(50)
	vps := cfg.VanishingPoints()
	want := []vec.Vec2{{X: 205, Y: 150}, {X: 595, Y: 150}}
	if len(vps) != 2 || vps[0] != want[0] || vps[1] != want[1] {
		t.Errorf("two points: got %v, want %v", vps, want)
	}

	cfg.VP1, cfg.VP2 = nil, Percent(50)
	vps = cfg.VanishingPoints()
	if len(vps) != 1 || vps[0] != want[0] {
		t.Errorf("VP2 only: got %v, want %v", vps, want[:1])
	}

	cfg.VP1, cfg.VP2 = Percent(100), nil
	vps = cfg.VanishingPoints()
	if len(vps) != 1 || vps[0].X != BorderInset {
		t.Errorf("VP1 at 100%%: got %v", vps)
	}
}

func TestTwoFamiliesIndependent(t *testing.T) {
	cfg := &Config{
		Width:          800,
		Height:         600,
		HorizonPercent: 40,
		VP1:            Percent(60),
		VP2:            Percent(20),
		AngleStep:      6,
	}
	g, err := Layout(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Families) != 2 {
		t.Fatalf("got %d families", len(g.Families))
	}
	for _, f := range g.Families {
		alone := Rays(g.Page, f.VP, cfg.AngleStep, nil)
		if len(alone) != len(f.Segments) {
			t.Errorf("vp %v: %d rays, alone %d", f.VP, len(f.Segments), len(alone))
			continue
		}
		for i := range alone {
			if alone[i] != f.Segments[i] {
				t.Errorf("vp %v: ray %d differs", f.VP, i)
			}
		}
	}
	if n := g.NumSegments(); n != len(g.Families[0].Segments)+len(g.Families[1].Segments) {
		t.Errorf("NumSegments = %d", n)
	}
}

func TestCheck(t *testing.T) {
	valid := Config{Width: 100, Height: 100, HorizonPercent: 50, VP1: Percent(0), AngleStep: 10}
	if err := valid.Check(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	fine := valid
	fine.AngleStep = 0.001
	if err := fine.Check(); err != nil {
		t.Errorf("step 0.001°: %v", err)
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"zero_width", func(c *Config) { c.Width = 0 }, ErrInvalidGeometry},
		{"negative_height", func(c *Config) { c.Height = -1 }, ErrInvalidGeometry},
		{"nan_width", func(c *Config) { c.Width = math.NaN() }, ErrInvalidGeometry},
		{"horizon_zero", func(c *Config) { c.HorizonPercent = 0 }, ErrInvalidGeometry},
		{"step_too_small", func(c *Config) { c.AngleStep = 1e-7 }, ErrInvalidGeometry},
		{"step_underflow", func(c *Config) { c.AngleStep = 1e-300 }, ErrInvalidGeometry},
		{"horizon_top", func(c *Config) { c.HorizonPercent = 100 }, ErrInvalidGeometry},
		{"zero_step", func(c *Config) { c.AngleStep = 0 }, ErrInvalidGeometry},
		{"infinite_step", func(c *Config) { c.AngleStep = math.Inf(1) }, ErrInvalidGeometry},
		{"nan_vp", func(c *Config) { c.VP1 = Percent(math.NaN()) }, ErrInvalidGeometry},
		{"no_vp", func(c *Config) { c.VP1 = nil }, ErrNoVanishingPoint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.modify(&c)
			err := c.Check()
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if _, err := Layout(&c); !errors.Is(err, tc.want) {
				t.Errorf("Layout: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	cfg := &Config{
		PaperName:      "A4",
		HorizonPercent: 50,
		VP1:            Percent(30),
		VP2:            Percent(40),
		AngleStep:      7.5,
	}
	if got, want := cfg.Label(), "A4  horizon 50%  VP1 30%  VP2 40%  7.5 deg"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cfg.PaperName = ""
	cfg.VP1 = nil
	if got, want := cfg.Label(), "horizon 50%  VP1 40%  7.5 deg"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLayoutLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &Config{
		Width:          800,
		Height:         600,
		HorizonPercent: 50,
		VP1:            Percent(115),
		AngleStep:      30,
		Logger:         slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	if _, err := Layout(cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, msg := range []string{"sector table", "ray suppressed", "family done"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output does not contain %q", msg)
		}
	}
}
