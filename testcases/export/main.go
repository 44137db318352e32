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

// Command export writes the rays of all test cases to JSON, for
// inspection and for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/testcases"
)

func main() {
	var out struct {
		Guides []jsonGuide `json:"guides"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := perspective.Layout(&tc.Config)
			if err != nil {
				panic(err)
			}
			out.Guides = append(out.Guides, toJSON(category+"_"+tc.Name, &tc.Config, g))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/guides.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonGuide struct {
	Name      string       `json:"name"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Horizon   float64      `json:"horizon"`
	AngleStep float64      `json:"angle_step"`
	Families  []jsonFamily `json:"families"`
}

type jsonFamily struct {
	VP       []float64   `json:"vp"`
	OffLeft  bool        `json:"off_left,omitempty"`
	OffRight bool        `json:"off_right,omitempty"`
	Bounds   []float64   `json:"bounds"`
	Rays     [][]float64 `json:"rays"`
}

func toJSON(name string, cfg *perspective.Config, g *perspective.Guide) jsonGuide {
	jg := jsonGuide{
		Name:      name,
		Width:     g.Page.URx,
		Height:    g.Page.URy,
		Horizon:   g.Horizon.A.Y,
		AngleStep: cfg.AngleStep,
	}
	for _, f := range g.Families {
		jf := jsonFamily{
			VP:       []float64{f.VP.X, f.VP.Y},
			OffLeft:  f.Table.OffLeft,
			OffRight: f.Table.OffRight,
			Bounds:   f.Table.Bounds[:],
		}
		for _, s := range f.Segments {
			jf.Rays = append(jf.Rays, []float64{s.B.X, s.B.Y})
		}
		jg.Families = append(jg.Families, jf)
	}
	return jg
}
