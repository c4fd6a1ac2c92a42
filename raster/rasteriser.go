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

// Package raster draws slides into images.
//
// The [Rasteriser] converts paths made of straight lines and Bézier curves
// to anti-aliased pixel coverage.  [Surface] uses a Rasteriser to implement
// the drawing interface of a [slideshow.Renderer] on top of an
// [image.RGBA].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/slideshow/tessellate"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage values: the fraction of
// each pixel's area covered by the filled or stroked path, from 0 (outside)
// to 1 (inside).  Internal buffers grow as needed and are reused between
// calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used for the ends of open subpaths.
	Cap graphics.LineCapStyle

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent of edge crossings per pixel
	area   []float32 // cover weighted by the horizontal crossing position

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64

	// flattened subpaths
	pts      []vec.Vec2
	starts   []int
	isClosed []bool

	// stroke outline polygons
	outline       []vec.Vec2
	outlineStarts []int
}

// NewRasteriser returns a Rasteriser with the given clip rectangle,
// an identity CTM, unit line width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
}

// Fill fills the path using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives coverage row by row; its
// slice argument is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)

	r.resetEdges()
	for i := range r.starts {
		r.addPolygon(r.subpath(i))
	}
	r.scan(emit)
}

// flatten converts p into polygons stored in r.pts, replacing curves by
// line segments.
func (r *Rasteriser) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.starts = r.starts[:0]
	r.isClosed = r.isClosed[:0]

	var current vec.Vec2
	open := false
	begin := func(at vec.Vec2) {
		r.starts = append(r.starts, len(r.pts))
		r.isClosed = append(r.isClosed, false)
		r.pts = append(r.pts, at)
		open = true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			begin(current)
			k++

		case path.CmdLineTo:
			if !open {
				begin(current)
			}
			current = p.Coords[k]
			r.pts = append(r.pts, current)
			k++

		case path.CmdQuadTo:
			if !open {
				begin(current)
			}
			// degree elevation
			q1, q2 := p.Coords[k], p.Coords[k+1]
			c1 := current.Add(q1.Sub(current).Mul(2.0 / 3))
			c2 := q2.Add(q1.Sub(q2).Mul(2.0 / 3))
			r.addCubic(current, c1, c2, q2)
			current = q2
			k += 2

		case path.CmdCubeTo:
			if !open {
				begin(current)
			}
			c1, c2, c3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			r.addCubic(current, c1, c2, c3)
			current = c3
			k += 3

		case path.CmdClose:
			if open {
				r.isClosed[len(r.isClosed)-1] = true
				current = r.pts[r.starts[len(r.starts)-1]]
				open = false
			}
		}
	}
}

// addCubic appends the flattened cubic Bézier from p0 (already in r.pts)
// to p3.  The number of segments is given by Wang's formula, so that
// the polygon deviates from the curve by at most flatness device pixels.
func (r *Rasteriser) addCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(n, int(math.Ceil(math.Sqrt(3*m/(4*flatness)))))
	}
	r.pts = append(r.pts, tessellate.Bezier(p0, p1, p2, p3, n)[1:]...)
}

// subpath returns the vertices of flattened subpath i.
func (r *Rasteriser) subpath(i int) []vec.Vec2 {
	end := len(r.pts)
	if i+1 < len(r.starts) {
		end = r.starts[i+1]
	}
	return r.pts[r.starts[i]:end]
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon through pts.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge transforms the segment from p0 to p1 into device space and adds
// it to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// scan rasterises the current edge list with the nonzero winding rule,
// one scanline at a time, using an active edge list.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	if r.bboxEmpty {
		return
	}
	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed by x - xMin.  Contributions left of xMin
// are folded into the first pixel, contributions right of xMax are
// dropped.  The return value reports whether anything was added.
//
// A crossing with vertical extent dy at horizontal position x within the
// pixel contributes cover = ±dy and area = cover·(1 - frac(x)).  Summing
// cover from the left and adding area gives the signed covered area of
// each pixel.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left, right := min(xTop, xBottom), max(xTop, xBottom)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	add := func(pix int, dy, xMid float64) {
		c := sign * float32(dy)
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			i := pix - xMin
			cover[i] += c
			area[i] += c * float32(1-(xMid-float64(pix)))
		}
	}

	if pixLeft == pixRight {
		add(pixLeft, bottom-top, (left+right)/2)
		return true
	}

	// split the crossing at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bottom)
		if hi <= lo {
			continue
		}
		add(pix, hi-lo, e.x0+e.dxdy*((lo+hi)/2-e.y0))
	}
	return true
}

// integrate turns the accumulated cover and area values into coverage,
// in place in cover.
func integrate(cover, area []float32) {
	var sum float32
	for i := range cover {
		c := sum + area[i]
		sum += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.  If all values are zero,
// nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := slices.IndexFunc(coverage, func(c float32) bool { return c != 0 })
	if lo < 0 {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// flatness is the maximal distance in device pixels between a curve
	// and its polygonal approximation.
	flatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not contribute to coverage and are skipped.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
