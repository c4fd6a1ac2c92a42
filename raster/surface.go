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

package raster

import (
	"image"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/slideshow"
)

// Options configures a [Surface].
type Options struct {
	// LineWidth is the stroke width in pixels.  Default: 1.
	LineWidth float64

	// Cap is the line cap style.  Default: butt caps.
	Cap graphics.LineCapStyle
}

// Surface is a drawing surface backed by an [image.RGBA].  It acts both as
// a [slideshow.Host] and as the [slideshow.Context] it hands out.
type Surface struct {
	img  *image.RGBA
	rast *Rasteriser
	opt  Options

	path       *path.Data
	hasCurrent bool

	r, g, b uint8
	alpha   float64
}

// New returns a new Surface.  No image is allocated until the surface is
// bound to a canvas.  If opt is nil, default options are used.
func New(opt *Options) *Surface {
	s := &Surface{
		path:  &path.Data{},
		alpha: 1,
	}
	if opt != nil {
		s.opt = *opt
	}
	if s.opt.LineWidth <= 0 {
		s.opt.LineWidth = 1
	}
	return s
}

// Context implements the [slideshow.Host] interface.  It allocates a new,
// fully transparent image of the size of c.
func (s *Surface) Context(c slideshow.Canvas) (slideshow.Context, error) {
	s.img = image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))

	clip := rect.Rect{URx: float64(c.Width), URy: float64(c.Height)}
	if s.rast == nil {
		s.rast = NewRasteriser(clip)
	} else {
		s.rast.Reset(clip)
	}
	s.rast.Width = s.opt.LineWidth
	s.rast.Cap = s.opt.Cap

	s.BeginPath()
	s.r, s.g, s.b, s.alpha = 0, 0, 0, 1
	return s, nil
}

// Image returns the image the surface draws into.  The result is nil
// before the surface is bound to a canvas.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// ClearRect implements the [slideshow.Context] interface.
// Pixels partially covered by the rectangle are cleared completely.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

// SetStrokeColor implements the [slideshow.Context] interface.
func (s *Surface) SetStrokeColor(r, g, b uint8, a float64) {
	s.r, s.g, s.b = r, g, b
	s.alpha = max(0, min(a, 1))
}

// BeginPath implements the [slideshow.Context] interface.
func (s *Surface) BeginPath() {
	s.path.Cmds = s.path.Cmds[:0]
	s.path.Coords = s.path.Coords[:0]
	s.hasCurrent = false
}

// MoveTo implements the [slideshow.Context] interface.
func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(vec.Vec2{X: x, Y: y})
	s.hasCurrent = true
}

// LineTo implements the [slideshow.Context] interface.
// Without a current point, LineTo behaves like MoveTo.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasCurrent {
		s.MoveTo(x, y)
		return
	}
	s.path.LineTo(vec.Vec2{X: x, Y: y})
}

// Stroke implements the [slideshow.Context] interface.
func (s *Surface) Stroke() {
	if s.alpha == 0 || len(s.path.Cmds) == 0 {
		return
	}
	s.rast.Stroke(s.path, s.composite)
}

// composite paints the current stroke color onto one row of the image,
// using source-over compositing with the given coverage.
func (s *Surface) composite(y, xMin int, coverage []float32) {
	row := s.img.Pix[s.img.PixOffset(xMin, y):]
	for i, c := range coverage {
		a := float64(c) * s.alpha
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = blend(s.r, px[0], a)
		px[1] = blend(s.g, px[1], a)
		px[2] = blend(s.b, px[2], a)
		px[3] = blend(255, px[3], a)
	}
}

// blend returns src·a + dst·(1-a) for premultiplied channel values.
func blend(src, dst uint8, a float64) uint8 {
	v := float64(src)*a + float64(dst)*(1-a)
	return uint8(max(0, min(255, math.Round(v))))
}
