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

package tessellate

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-9

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestCircleClosed(t *testing.T) {
	center := vec.Vec2{X: 250, Y: 250}
	for n := 1; n <= 64; n++ {
		pts := Circle(center, 200, n)
		if len(pts) != n+1 {
			t.Fatalf("n=%d: got %d points, want %d", n, len(pts), n+1)
		}
		if !near(pts[0], pts[n]) {
			t.Errorf("n=%d: loop not closed, %v != %v", n, pts[0], pts[n])
		}
		for i, p := range pts {
			if r := p.Sub(center).Length(); math.Abs(r-200) > epsilon {
				t.Errorf("n=%d: vertex %d at distance %g from center", n, i, r)
			}
		}
	}
}

func TestCircleSquare(t *testing.T) {
	pts := Circle(vec.Vec2{}, 10, 4)
	want := []vec.Vec2{
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: -10, Y: 0},
		{X: 0, Y: -10},
		{X: 10, Y: 0},
	}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if !near(pts[i], want[i]) {
			t.Errorf("vertex %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestBezierEndpoints(t *testing.T) {
	p0 := vec.Vec2{X: 100, Y: 100}
	p1 := vec.Vec2{X: 200, Y: 300}
	p2 := vec.Vec2{X: 400, Y: 100}
	p3 := vec.Vec2{X: 500, Y: 500}
	for _, n := range []int{1, 2, 3, 7, 10, 100} {
		pts := Bezier(p0, p1, p2, p3, n)
		if len(pts) != n+1 {
			t.Fatalf("n=%d: got %d points, want %d", n, len(pts), n+1)
		}
		if pts[0] != p0 {
			t.Errorf("n=%d: first point %v, want %v", n, pts[0], p0)
		}
		if pts[n] != p3 {
			t.Errorf("n=%d: last point %v, want %v", n, pts[n], p3)
		}
	}
}

func TestBezierSamples(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 0, Y: 4}
	p2 := vec.Vec2{X: 4, Y: 4}
	p3 := vec.Vec2{X: 4, Y: 0}
	pts := Bezier(p0, p1, p2, p3, 2)

	// The curve is symmetric, so the midpoint sits on x=2 at height 3/4·4.
	want := vec.Vec2{X: 2, Y: 3}
	if !near(pts[1], want) {
		t.Errorf("midpoint: got %v, want %v", pts[1], want)
	}
}

func TestCubicAtDegenerate(t *testing.T) {
	var zero vec.Vec2
	got := CubicAt(zero, zero, zero, zero, 0.5)
	if got != zero {
		t.Errorf("got %v, want (0,0)", got)
	}
}

func TestCubicAtStraightLine(t *testing.T) {
	// Evenly spaced control points on a line give a linear parametrisation.
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 1, Y: 2}
	p2 := vec.Vec2{X: 2, Y: 4}
	p3 := vec.Vec2{X: 3, Y: 6}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		got := CubicAt(p0, p1, p2, p3, tt)
		want := vec.Vec2{X: 3 * tt, Y: 6 * tt}
		if !near(got, want) {
			t.Errorf("t=%g: got %v, want %v", tt, got, want)
		}
	}
}

func TestInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Circle(n=%d) did not panic", n)
				}
			}()
			Circle(vec.Vec2{}, 1, n)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Bezier(n=%d) did not panic", n)
				}
			}()
			Bezier(vec.Vec2{}, vec.Vec2{}, vec.Vec2{}, vec.Vec2{}, n)
		}()
	}
}
