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

package testcases

import "seehuhn.de/go/perspective"

var onePointCases = []TestCase{
	{
		Name: "centre_90",
		Config: perspective.Config{
			PaperName:      "800x600",
			Width:          800,
			Height:         600,
			HorizonPercent: 50,
			VP1:            pct(0),
			AngleStep:      90,
			Colour:         grey,
		},
	},
	{
		Name: "a4_centre_10",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Width,
			Height:         a4Height,
			HorizonPercent: 50,
			VP1:            pct(0),
			AngleStep:      10,
			Colour:         grey,
		},
	},
	{
		Name: "a4_low_horizon",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Width,
			Height:         a4Height,
			HorizonPercent: 20,
			VP1:            pct(40),
			AngleStep:      7.5,
			Colour:         grey,
		},
	},
	{
		Name: "vp2_only",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Width,
			Height:         a4Height,
			HorizonPercent: 65,
			VP2:            pct(50),
			AngleStep:      15,
			Colour:         grey,
		},
	},
}

var twoPointCases = []TestCase{
	{
		Name: "a4_symmetric",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Width,
			Height:         a4Height,
			HorizonPercent: 50,
			VP1:            pct(80),
			VP2:            pct(80),
			AngleStep:      5,
			Colour:         grey,
		},
	},
	{
		Name: "landscape_asymmetric",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Height,
			Height:         a4Width,
			HorizonPercent: 35,
			VP1:            pct(30),
			VP2:            pct(90),
			AngleStep:      3,
			Colour:         grey,
		},
	},
}

var offCanvasCases = []TestCase{
	{
		Name: "left_minus_50",
		Config: perspective.Config{
			PaperName:      "800x600",
			Width:          800,
			Height:         600,
			HorizonPercent: 50,
			// 400 - 390*1.15 = -48.5
			VP1:       pct(115),
			AngleStep: 10,
			Colour:    grey,
		},
	},
	{
		Name: "both_outside",
		Config: perspective.Config{
			PaperName:      "A4",
			Width:          a4Width,
			Height:         a4Height,
			HorizonPercent: 40,
			VP1:            pct(250),
			VP2:            pct(250),
			AngleStep:      2,
			Colour:         grey,
		},
	},
	{
		Name: "on_border",
		Config: perspective.Config{
			PaperName:      "800x600",
			Width:          800,
			Height:         600,
			HorizonPercent: 50,
			// 400 - 390*400/390 = 0
			VP1:       pct(400.0 / 390.0 * 100),
			AngleStep: 15,
			Colour:    grey,
		},
	},
}
