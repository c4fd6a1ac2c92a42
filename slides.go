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

import "seehuhn.de/go/geom/vec"

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// drawSlide0 shows a rectangle.
func (r *Renderer) drawSlide0() {
	r.drawRectangle(pt(100, 100), pt(700, 500), Blue)
}

// drawSlide1 shows a circle.
func (r *Renderer) drawSlide1() {
	r.drawCircle(pt(250, 250), 200, Blue)
}

// drawSlide2 shows a cubic Bézier curve.
func (r *Renderer) drawSlide2() {
	r.drawBezierCurve(pt(100, 100), pt(200, 300), pt(400, 100), pt(500, 500), Red)
}

// drawSlide3 spells "CLIO".
func (r *Renderer) drawSlide3() {
	// C
	r.drawBezierCurve(pt(200, 220), pt(60, 180), pt(60, 420), pt(200, 380), Red)

	// L
	lTop, lCorner, lEnd := pt(250, 220), pt(250, 380), pt(340, 380)
	r.drawLine(lTop, lCorner, Blue)
	r.drawLine(lCorner, lEnd, Blue)
	if r.showPoints {
		r.highlightPoint(lTop, Black)
		r.highlightPoint(lCorner, Black)
		r.highlightPoint(lEnd, Black)
	}

	// I
	r.drawRectangle(pt(390, 380), pt(410, 220), Blue)

	// O
	r.drawCircle(pt(540, 300), 80, Blue)
}
