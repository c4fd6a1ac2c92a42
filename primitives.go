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

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slideshow/tessellate"
)

// highlightRadius is half the side length of the box drawn by highlightPoint.
const highlightRadius = 5

// drawLine strokes a single line segment from p0 to p1.
func (r *Renderer) drawLine(p0, p1 vec.Vec2, c Color) {
	r.ctx.SetStrokeColor(c.R, c.G, c.B, c.Alpha())
	r.ctx.BeginPath()
	r.ctx.MoveTo(p0.X, p0.Y)
	r.ctx.LineTo(p1.X, p1.Y)
	r.ctx.Stroke()
	r.lines++
}

// drawPolyline joins consecutive points by line segments.
func (r *Renderer) drawPolyline(pts []vec.Vec2, c Color) {
	for i := 1; i < len(pts); i++ {
		r.drawLine(pts[i-1], pts[i], c)
	}
}

// drawRectangle draws the outline of the axis-aligned rectangle with the
// given corners.  The outline is always drawn in OutlineGreen; the color
// argument is accepted for symmetry with the other shapes but not used.
// If points are shown, the four corners are highlighted in blue.
func (r *Renderer) drawRectangle(bottomLeft, topRight vec.Vec2, _ Color) {
	topLeft := vec.Vec2{X: bottomLeft.X, Y: topRight.Y}
	bottomRight := vec.Vec2{X: topRight.X, Y: bottomLeft.Y}

	r.drawLine(bottomLeft, topLeft, OutlineGreen)     // left
	r.drawLine(topLeft, topRight, OutlineGreen)       // top
	r.drawLine(bottomRight, topRight, OutlineGreen)   // right
	r.drawLine(bottomLeft, bottomRight, OutlineGreen) // bottom

	if r.showPoints {
		r.highlightPoint(bottomLeft, Blue)
		r.highlightPoint(topLeft, Blue)
		r.highlightPoint(topRight, Blue)
		r.highlightPoint(bottomRight, Blue)
	}
}

// highlightPoint draws a small square box around center.
func (r *Renderer) highlightPoint(center vec.Vec2, c Color) {
	const d = highlightRadius
	ll := vec.Vec2{X: center.X - d, Y: center.Y - d}
	ul := vec.Vec2{X: center.X - d, Y: center.Y + d}
	ur := vec.Vec2{X: center.X + d, Y: center.Y + d}
	lr := vec.Vec2{X: center.X + d, Y: center.Y - d}

	r.drawLine(ll, ul, c) // left
	r.drawLine(ul, ur, c) // top
	r.drawLine(ur, lr, c) // right
	r.drawLine(ll, lr, c) // bottom
}

// drawCircle draws a regular polygon approximating the given circle, using
// the configured number of sections.  If points are shown, each distinct
// vertex is highlighted in black.
func (r *Renderer) drawCircle(center vec.Vec2, radius float64, c Color) {
	pts := tessellate.Circle(center, radius, r.sections)
	r.drawPolyline(pts, c)

	if r.showPoints {
		// the last vertex duplicates the first
		for _, p := range pts[:len(pts)-1] {
			r.highlightPoint(p, Black)
		}
	}
}

// drawBezierCurve draws the cubic Bézier curve with endpoints p0, p3 and
// control points p1, p2 as a polyline with the configured number of
// sections.  If points are shown, the sampled points are highlighted in
// black and the two control points in blue.
func (r *Renderer) drawBezierCurve(p0, p1, p2, p3 vec.Vec2, c Color) {
	pts := tessellate.Bezier(p0, p1, p2, p3, r.sections)
	r.drawPolyline(pts, c)

	if r.showPoints {
		for _, p := range pts {
			r.highlightPoint(p, Black)
		}
		r.highlightPoint(p1, Blue)
		r.highlightPoint(p2, Blue)
	}
}
