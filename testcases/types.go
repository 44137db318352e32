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

// Package testcases lists perspective guide configurations used for
// tests and for generating reference output.
package testcases

import "seehuhn.de/go/perspective"

// TestCase is a named guide configuration.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Config perspective.Config
}

// a4 is the size of an A4 page in points.
const (
	a4Width  = 595.2755905511812
	a4Height = 841.8897637795276
)

// pct is a helper to set an optional vanishing point percentage.
func pct(v float64) *float64 {
	return perspective.Percent(v)
}

// grey is the stroke colour used for all cases.
var grey = perspective.Colour{R: 0.5, G: 0.5, B: 0.5}
