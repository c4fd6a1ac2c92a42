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

// Package tessellate generates the vertex sequences used to approximate
// smooth curves by straight line segments.
//
// Both generators take the number of segments n and return n+1 points.
// Consecutive points are meant to be joined by line segments.
package tessellate

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Circle returns the n+1 vertices of a regular n-gon inscribed in the
// circle with the given center and radius.  Vertex i lies at angle
// i·2π/n, measured from the positive x-axis towards the positive y-axis.
// The last vertex repeats the first one, so that the polygon is closed.
//
// Circle panics if n < 1.
func Circle(center vec.Vec2, radius float64, n int) []vec.Vec2 {
	if n < 1 {
		panic("tessellate: need at least one segment")
	}

	step := 2 * math.Pi / float64(n)
	pts := make([]vec.Vec2, n+1)
	for i := range n {
		angle := float64(i) * step
		pts[i] = vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	// Close the loop exactly, without rounding error in cos(2π).
	pts[n] = pts[0]
	return pts
}

// Bezier samples the cubic Bézier curve with endpoints p0 and p3 and
// control points p1 and p2 at the n+1 parameter values t = i/n,
// i = 0, ..., n.
//
// The first and last sample are exactly p0 and p3.
//
// Bezier panics if n < 1.
func Bezier(p0, p1, p2, p3 vec.Vec2, n int) []vec.Vec2 {
	if n < 1 {
		panic("tessellate: need at least one segment")
	}

	pts := make([]vec.Vec2, n+1)
	pts[0] = p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		pts[i] = CubicAt(p0, p1, p2, p3, t)
	}
	pts[n] = p3
	return pts
}

// CubicAt evaluates the cubic Bézier curve at parameter t.
//
//	B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
func CubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
}
