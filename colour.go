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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColour is returned by [ParseColour] for unrecognised input.
var ErrUnknownColour = errors.New("unknown colour")

// Colour is an opaque RGB colour with components in the range [0, 1].
type Colour struct {
	R, G, B float64
}

// Black is the zero Colour.
var Black = Colour{}

// ParseColour converts a colour specification to a Colour.
// Accepted forms are "#rgb", "#rrggbb" and the SVG colour names
// like "lightblue".  Case is ignored.
func ParseColour(s string) (Colour, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColour(hex)
	}
	c, ok := colornames.Map[s]
	if !ok {
		return Colour{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
	}
	return FromRGBA(c), nil
}

func parseHexColour(hex string) (Colour, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Colour{}, fmt.Errorf("%w: #%s", ErrUnknownColour, hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: #%s", ErrUnknownColour, hex)
	}
	return Colour{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// FromRGBA converts an 8-bit colour.  The alpha channel is ignored.
func FromRGBA(c color.RGBA) Colour {
	return Colour{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RGBA implements the [color.Color] interface.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

func to16(x float64) uint32 {
	return uint32(max(0, min(1, x))*0xffff + 0.5)
}
