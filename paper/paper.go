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

// Package paper resolves page size names to dimensions in PDF points.
package paper

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnknownSize is returned by [Lookup] for unrecognised sizes.
	ErrUnknownSize = errors.New("unknown paper size")

	// ErrOrientation is returned by [ParseOrientation] for invalid input.
	ErrOrientation = errors.New("invalid orientation")
)

// Size is a page size in PDF points (1/72 inch).
type Size struct {
	Name          string
	Width, Height float64
}

func mm(x float64) float64 { return x / 25.4 * 72 }
func in(x float64) float64 { return x * 72 }

// sizes lists the named paper sizes, in portrait orientation.
// Keys are lower case.
var sizes = map[string]Size{
	"a0":      {"A0", mm(841), mm(1189)},
	"a1":      {"A1", mm(594), mm(841)},
	"a2":      {"A2", mm(420), mm(594)},
	"a3":      {"A3", mm(297), mm(420)},
	"a4":      {"A4", mm(210), mm(297)},
	"a5":      {"A5", mm(148), mm(210)},
	"a6":      {"A6", mm(105), mm(148)},
	"b4":      {"B4", mm(250), mm(353)},
	"b5":      {"B5", mm(176), mm(250)},
	"letter":  {"Letter", in(8.5), in(11)},
	"legal":   {"Legal", in(8.5), in(14)},
	"tabloid": {"Tabloid", in(11), in(17)},
	"ledger":  {"Ledger", in(11), in(17)},
}

// Names returns the names of all known paper sizes, in sorted order.
func Names() []string {
	res := make([]string, 0, len(sizes))
	for _, s := range sizes {
		res = append(res, s.Name)
	}
	slices.Sort(res)
	return res
}

var customSize = regexp.MustCompile(`^(\d*\.?\d+)x(\d*\.?\d+)(in|mm)$`)

// Lookup returns the page size for a paper name like "A4" or "letter",
// or for a custom size of the form "<W>x<H>in" or "<W>x<H>mm".
// Named sizes are returned in portrait orientation, custom sizes as given.
func Lookup(spec string) (Size, error) {
	key := strings.ToLower(strings.TrimSpace(spec))
	if s, ok := sizes[key]; ok {
		return s, nil
	}

	m := customSize.FindStringSubmatch(key)
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q", ErrUnknownSize, spec)
	}
	w, err1 := strconv.ParseFloat(m[1], 64)
	h, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrUnknownSize, spec)
	}
	conv := in
	if m[3] == "mm" {
		conv = mm
	}
	return Size{Name: key, Width: conv(w), Height: conv(h)}, nil
}

// Orientation selects between portrait and landscape pages.
type Orientation int

// These are the supported orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts "portrait" or "landscape" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "p":
		return Portrait, nil
	case "landscape", "l":
		return Landscape, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrOrientation, s)
	}
}

// Orient returns the page size rotated to the given orientation.
// A portrait page is never wider than it is high.
func (s Size) Orient(o Orientation) Size {
	long := s.Width > s.Height
	if long != (o == Landscape) {
		s.Width, s.Height = s.Height, s.Width
	}
	return s
}
