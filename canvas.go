// seehuhn.de/go/slideshow - draw basic 2D vector primitives
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

package slideshow

import "fmt"

// Canvas identifies a drawing surface and gives its size in pixels.
type Canvas struct {
	ID     string `json:"id" toml:"id"`
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
}

func (c Canvas) String() string {
	return fmt.Sprintf("%s[%dx%d]", c.ID, c.Width, c.Height)
}

// Context is the immediate-mode 2D drawing interface a Renderer draws onto.
// Coordinates are in surface space: the origin is the top-left corner of
// the canvas and y grows downwards.
type Context interface {
	// ClearRect erases the given rectangle, making it transparent.
	ClearRect(x, y, w, h float64)

	// SetStrokeColor sets the color for subsequent calls to Stroke.
	// The alpha value a is in the range 0.0 to 1.0.
	SetStrokeColor(r, g, b uint8, a float64)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo appends a straight line from the current point to (x, y).
	LineTo(x, y float64)

	// Stroke draws the outline of the current path.
	Stroke()
}

// Host provides drawing contexts for canvases.
//
// Calling Context resets the surface to the size given in c.  All prior
// content is discarded.
type Host interface {
	Context(c Canvas) (Context, error)
}

// Color is a color with 8-bit red, green, blue and alpha channels.
// The color channels are not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Colors used by the slides.
var (
	Black        = Color{0, 0, 0, 255}
	Red          = Color{255, 0, 0, 255}
	Blue         = Color{0, 0, 255, 255}
	OutlineGreen = Color{0, 255, 0, 255}
)

// Alpha returns the alpha channel as a fraction between 0.0 and 1.0.
func (c Color) Alpha() float64 {
	return float64(c.A) / 255.0
}

// RGBA implements the [image/color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.Alpha())
}
