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

// Package slideshow draws a small, fixed sequence of slides showing basic
// 2D vector primitives: a rectangle, a circle approximated by a polygon,
// a cubic Bézier curve, and a word built from these primitives.
//
// All shapes are drawn as sequences of straight line segments onto a
// [Context] supplied by a [Host].  The number of segments used for curves
// and whether the underlying vertices and control points are highlighted
// can be changed at any time; every change redraws the current slide from
// scratch.
package slideshow

import (
	"errors"
	"fmt"
	"log/slog"
)

// NumSlides is the number of available slides.  Valid slide indices are
// 0, ..., NumSlides-1.
const NumSlides = 4

// DefaultSections is the number of line segments used for each curve
// unless configured otherwise.
const DefaultSections = 16

var (
	// ErrInvalidSections is returned when the number of curve sections
	// is less than one.
	ErrInvalidSections = errors.New("number of curve sections must be at least 1")

	// ErrCanvasSize is returned when a canvas has a non-positive width or height.
	ErrCanvasSize = errors.New("canvas width and height must be positive")
)

// Options configures a [Renderer].
type Options struct {
	// Sections is the number of line segments used to approximate a
	// circle or a Bézier curve.  Must be at least 1.
	// Default: DefaultSections.
	Sections int

	// ShowPoints enables highlighting of vertices and control points.
	ShowPoints bool

	// Slide is the initially selected slide.
	Slide int

	// Logger overrides the package logger set by [SetLogger].
	Logger *slog.Logger
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() *Options {
	return &Options{
		Sections: DefaultSections,
	}
}

// Renderer draws slides onto a canvas.
//
// Every public method runs to completion before returning.  A Renderer is
// not safe for concurrent use.
type Renderer struct {
	canvas Canvas
	ctx    Context

	slide      int
	sections   int
	showPoints bool

	log *slog.Logger

	// number of line segments issued by the current redraw
	lines int
}

// New binds a renderer to the canvas c provided by host.  Nothing is drawn
// until [Renderer.DrawSlide] or one of the setters is called.
// If opts is nil, [DefaultOptions] are used.
func New(host Host, c Canvas, opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Sections < 1 {
		return nil, fmt.Errorf("slideshow: %d sections: %w", opts.Sections, ErrInvalidSections)
	}

	r := &Renderer{
		slide:      opts.Slide,
		sections:   opts.Sections,
		showPoints: opts.ShowPoints,
		log:        opts.Logger,
	}
	if err := r.ConfigureSurface(host, c); err != nil {
		return nil, err
	}
	return r, nil
}

// ConfigureSurface binds the renderer to the canvas c provided by host.
// The host resets the surface to the requested size, so all prior content
// is discarded.
func (r *Renderer) ConfigureSurface(host Host, c Canvas) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("slideshow: canvas %s: %w", c, ErrCanvasSize)
	}
	ctx, err := host.Context(c)
	if err != nil {
		return fmt.Errorf("slideshow: canvas %s: %w", c, err)
	}
	r.canvas = c
	r.ctx = ctx
	r.logger().Debug("surface configured", "canvas", c.ID, "width", c.Width, "height", c.Height)
	return nil
}

// SetNumCurveSections sets the number of line segments used to approximate
// curves and redraws the current slide.  If n is less than 1, the
// renderer is left unchanged and ErrInvalidSections is returned.
func (r *Renderer) SetNumCurveSections(n int) error {
	if n < 1 {
		r.logger().Warn("rejected curve sections", "sections", n)
		return fmt.Errorf("slideshow: %d sections: %w", n, ErrInvalidSections)
	}
	r.sections = n
	r.Redraw()
	return nil
}

// ShowPoints enables or disables highlighting of vertices and control
// points, and redraws the current slide.
func (r *Renderer) ShowPoints(flag bool) {
	r.showPoints = flag
	r.Redraw()
}

// DrawSlide selects slide idx, clears the canvas and draws the slide.
// Indices outside the range 0, ..., NumSlides-1 select a blank slide:
// the canvas is cleared and nothing else is drawn.
func (r *Renderer) DrawSlide(idx int) {
	r.slide = idx
	r.ctx.ClearRect(0, 0, float64(r.canvas.Width), float64(r.canvas.Height))
	r.lines = 0

	switch idx {
	case 0:
		r.drawSlide0()
	case 1:
		r.drawSlide1()
	case 2:
		r.drawSlide2()
	case 3:
		r.drawSlide3()
	default:
		r.logger().Debug("blank slide", "slide", idx)
		return
	}

	r.logger().Debug("slide drawn",
		"slide", idx,
		"sections", r.sections,
		"show_points", r.showPoints,
		"lines", r.lines)
}

// Redraw clears the canvas and draws the current slide again.
func (r *Renderer) Redraw() {
	r.DrawSlide(r.slide)
}

// Slide returns the index of the current slide.
func (r *Renderer) Slide() int {
	return r.slide
}

// NumCurveSections returns the number of line segments used for curves.
func (r *Renderer) NumCurveSections() int {
	return r.sections
}

// PointsShown reports whether vertices and control points are highlighted.
func (r *Renderer) PointsShown() bool {
	return r.showPoints
}

// Canvas returns the canvas the renderer is bound to.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

func (r *Renderer) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return Logger()
}
