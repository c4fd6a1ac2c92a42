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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width and Cap.  Line joins are
// always round.  The emit callback receives coverage row by row; its slice
// argument is only valid during the call.
//
// The stroke is built from one quadrilateral per segment plus discs for
// joins and round caps.  All pieces have the same orientation, so that
// filling them together with the nonzero winding rule paints overlapping
// parts only once.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.outlineStarts = r.outlineStarts[:0]
	d := r.Width / 2
	for i := range r.starts {
		r.strokeSubpath(r.subpath(i), r.isClosed[i], d)
	}

	r.resetEdges()
	for i, start := range r.outlineStarts {
		end := len(r.outline)
		if i+1 < len(r.outlineStarts) {
			end = r.outlineStarts[i+1]
		}
		r.addPolygon(r.outline[start:end])
	}
	r.scan(emit)
}

func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	if closed && len(pts) > 1 && pts[len(pts)-1] != pts[0] {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	// indices of the first and last non-degenerate segment
	first, last := -1, -1
	for j := 1; j < len(pts); j++ {
		if pts[j].Sub(pts[j-1]).Length() >= zeroLengthThreshold {
			if first < 0 {
				first = j
			}
			last = j
		}
	}
	if first < 0 {
		// A subpath without direction only shows up with round caps.
		if r.Cap == graphics.LineCapRound && !closed {
			r.addDisc(pts[0], d)
		}
		return
	}

	for j := first; j <= last; j++ {
		a, b := pts[j-1], pts[j]
		v := b.Sub(a)
		length := v.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := v.Mul(1 / length)
		if !closed && r.Cap == graphics.LineCapSquare {
			if j == first {
				a = a.Sub(t.Mul(d))
			}
			if j == last {
				b = b.Add(t.Mul(d))
			}
		}
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addQuad(a, b, n)

		if j < last || closed {
			r.addDisc(pts[j], d)
		}
	}

	if !closed && r.Cap == graphics.LineCapRound {
		r.addDisc(pts[first-1], d)
		r.addDisc(pts[last], d)
	}
}

// addQuad adds the rectangle of half-width |n| around the segment from a
// to b, where n is normal to the segment.
func (r *Rasteriser) addQuad(a, b, n vec.Vec2) {
	r.outlineStarts = append(r.outlineStarts, len(r.outline))
	r.outline = append(r.outline, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addDisc adds a polygonal disc of the given radius.  The vertices run
// clockwise, matching the orientation of the quadrilaterals from addQuad.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 4
	if devRadius > flatness {
		// a chord spanning the angle θ deviates by radius·(1 - cos(θ/2))
		step := 2 * math.Acos(1-flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.outlineStarts = append(r.outlineStarts, len(r.outline))
	for i := range n {
		angle := -2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
}
