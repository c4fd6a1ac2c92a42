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

// Package ximage implements a drawing surface on top of the rasteriser
// from golang.org/x/image/vector.
//
// Strokes are converted to one quadrilateral per line segment, without
// caps or joins.  This matches the canvas defaults (butt caps) for paths
// with a single segment, which is all a slideshow ever strokes.
package ximage

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slideshow"
)

// Surface is a drawing surface backed by an [image.RGBA].  It acts both as
// a [slideshow.Host] and as the [slideshow.Context] it hands out.
type Surface struct {
	// LineWidth is the stroke width in pixels.
	LineWidth float64

	img  *image.RGBA
	rast *vector.Rasterizer

	segs       [][2]vec.Vec2
	current    vec.Vec2
	hasCurrent bool

	src *image.Uniform
}

// New returns a new Surface with the given line width.  Non-positive
// widths select the default width 1.
func New(lineWidth float64) *Surface {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &Surface{
		LineWidth: lineWidth,
		src:       image.NewUniform(color.NRGBA{A: 255}),
	}
}

// Context implements the [slideshow.Host] interface.  It allocates a new,
// fully transparent image of the size of c.
func (s *Surface) Context(c slideshow.Canvas) (slideshow.Context, error) {
	s.img = image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	if s.rast == nil {
		s.rast = vector.NewRasterizer(c.Width, c.Height)
	} else {
		s.rast.Reset(c.Width, c.Height)
	}
	s.rast.DrawOp = draw.Over
	s.BeginPath()
	s.src.C = color.NRGBA{A: 255}
	return s, nil
}

// Image returns the image the surface draws into.
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
	a = max(0, min(a, 1))
	s.src.C = color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}

// BeginPath implements the [slideshow.Context] interface.
func (s *Surface) BeginPath() {
	s.segs = s.segs[:0]
	s.hasCurrent = false
}

// MoveTo implements the [slideshow.Context] interface.
func (s *Surface) MoveTo(x, y float64) {
	s.current = vec.Vec2{X: x, Y: y}
	s.hasCurrent = true
}

// LineTo implements the [slideshow.Context] interface.
func (s *Surface) LineTo(x, y float64) {
	p := vec.Vec2{X: x, Y: y}
	if s.hasCurrent {
		s.segs = append(s.segs, [2]vec.Vec2{s.current, p})
	}
	s.current = p
	s.hasCurrent = true
}

// Stroke implements the [slideshow.Context] interface.
func (s *Surface) Stroke() {
	if len(s.segs) == 0 {
		return
	}

	b := s.img.Bounds()
	s.rast.Reset(b.Dx(), b.Dy())
	s.rast.DrawOp = draw.Over

	d := s.LineWidth / 2
	for _, seg := range s.segs {
		v := seg[1].Sub(seg[0])
		length := v.Length()
		if length == 0 {
			continue
		}
		n := vec.Vec2{X: -v.Y, Y: v.X}.Mul(d / length)
		s.moveTo(seg[0].Add(n))
		s.lineTo(seg[1].Add(n))
		s.lineTo(seg[1].Sub(n))
		s.lineTo(seg[0].Sub(n))
		s.rast.ClosePath()
	}
	s.rast.Draw(s.img, b, s.src, image.Point{})
}

func (s *Surface) moveTo(p vec.Vec2) {
	s.rast.MoveTo(float32(p.X), float32(p.Y))
}

func (s *Surface) lineTo(p vec.Vec2) {
	s.rast.LineTo(float32(p.X), float32(p.Y))
}
