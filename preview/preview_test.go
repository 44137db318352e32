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

package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/perspective"
)

func testGuide(t *testing.T, vp1, vp2 *float64) *perspective.Guide {
	t.Helper()
	g, err := perspective.Layout(&perspective.Config{
		PaperName:      "test",
		Width:          200,
		Height:         100,
		HorizonPercent: 50,
		VP1:            vp1,
		VP2:            vp2,
		AngleStep:      45,
		Colour:         perspective.Colour{R: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

func TestRenderSize(t *testing.T) {
	g := testGuide(t, perspective.Percent(0), nil)
	for _, tc := range []struct {
		dpi  float64
		w, h int
	}{
		{0, 200, 100},
		{72, 200, 100},
		{144, 400, 200},
		{100, 278, 139},
	} {
		img := Render(g, &Options{DPI: tc.dpi})
		if b := img.Bounds(); b.Dx() != tc.w || b.Dy() != tc.h {
			t.Errorf("dpi %g: size %dx%d, want %dx%d", tc.dpi, b.Dx(), b.Dy(), tc.w, tc.h)
		}
	}
}

func TestRenderHorizon(t *testing.T) {
	g := testGuide(t, perspective.Percent(0), nil)
	img := Render(g, &Options{LineWidth: 2, NoLabel: true})

	// the horizon covers rows 49 and 50 completely
	for _, x := range []int{20, 60, 150, 180} {
		for _, y := range []int{49, 50} {
			c := img.RGBAAt(x, y)
			if c.R != 255 || c.G != 0 || c.B != 0 {
				t.Errorf("pixel (%d,%d) = %v, want red", x, y, c)
			}
		}
	}
	// away from all rays
	if c := img.RGBAAt(60, 20); !isWhite(c) {
		t.Errorf("background pixel = %v", c)
	}
}

func TestRenderBorder(t *testing.T) {
	g := testGuide(t, perspective.Percent(0), nil)

	img := Render(g, &Options{NoLabel: true})
	for _, p := range []image.Point{{0, 50}, {5, 50}, {199, 50}, {100, 0}, {100, 99}} {
		if c := img.RGBAAt(p.X, p.Y); !isWhite(c) {
			t.Errorf("border pixel %v = %v", p, c)
		}
	}

	img = Render(g, &Options{NoLabel: true, NoBorder: true})
	if c := img.RGBAAt(1, 50); isWhite(c) {
		t.Errorf("horizon missing at the page edge without border")
	}
}

func TestRenderLabel(t *testing.T) {
	g := testGuide(t, perspective.Percent(0), nil)
	img := Render(g, &Options{DPI: 144})

	dark := 0
	b := img.Bounds()
	for y := b.Max.Y - 20; y < b.Max.Y; y++ {
		for x := range b.Max.X {
			c := img.RGBAAt(x, y)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no label pixels in the bottom margin")
	}
}

func TestRenderOffCanvas(t *testing.T) {
	// The point lies left of the page, so nothing reaches the left edge.
	g := testGuide(t, perspective.Percent(200), nil)
	img := Render(g, &Options{NoBorder: true, NoLabel: true})
	for y := range 100 {
		if y >= 48 && y <= 51 {
			continue // horizon
		}
		if c := img.RGBAAt(0, y); !isWhite(c) {
			t.Errorf("pixel (0,%d) = %v", y, c)
		}
	}
}

func TestWritePNG(t *testing.T) {
	g := testGuide(t, perspective.Percent(30), perspective.Percent(30))
	fname := filepath.Join(t.TempDir(), "guide.png")
	if err := WritePNG(fname, g, nil); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("image size %v", b)
	}
}
