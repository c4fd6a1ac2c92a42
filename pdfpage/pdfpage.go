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

// Package pdfpage writes slides to single-page PDF files.
//
// A PDF page cannot be erased, so the [Surface] records all drawing calls
// and writes the visible frame, i.e. everything drawn after the canvas was
// last cleared completely, when it is closed.
package pdfpage

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/slideshow"
	"seehuhn.de/go/slideshow/record"
)

var errNotBound = errors.New("pdfpage: surface is not bound to a canvas")

// Surface collects drawing calls for a PDF page.  Surface implements
// [slideshow.Host]; the drawing calls are recorded by the returned context.
type Surface struct {
	// FileName is the name of the PDF file written by Close.
	FileName string

	// LineWidth is the stroke width in PDF points.  One canvas pixel
	// corresponds to one point.
	LineWidth float64

	// Cap is the line cap style.
	Cap graphics.LineCapStyle

	// Background, if non-nil, is painted over the whole page before
	// drawing.  Partially cleared rectangles are painted in this color, too.
	// Without a background, partial clears are painted white.
	Background *slideshow.Color

	rec   *record.Surface
	bound bool
}

// New returns a Surface which writes to the given file.
func New(fileName string) *Surface {
	return &Surface{
		FileName:  fileName,
		LineWidth: 1,
		Cap:       graphics.LineCapButt,
		rec:       record.New(),
	}
}

// Context implements the [slideshow.Host] interface.  Binding to a new
// canvas discards everything drawn so far.
func (s *Surface) Context(c slideshow.Canvas) (slideshow.Context, error) {
	s.bound = true
	return s.rec.Context(c)
}

// Close writes the visible frame to the PDF file.
func (s *Surface) Close() error {
	if !s.bound {
		return errNotBound
	}
	c := s.rec.Canvas
	w, h := float64(c.Width), float64(c.Height)

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(s.FileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	clearColor := color.DeviceRGB{1, 1, 1}
	if bg := s.Background; bg != nil {
		clearColor = deviceColor(*bg)
		page.SetFillColor(clearColor)
		page.Rectangle(0, 0, w, h)
		page.Fill()
	}

	// PDF user space has the origin in the bottom-left corner; canvas
	// coordinates start at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.SetLineWidth(s.LineWidth)
	page.SetLineCap(s.Cap)

	var current []record.Call
	visible := true
	for _, call := range s.rec.Frame() {
		a := call.Args
		switch call.Op {
		case record.OpClearRect:
			page.SetFillColor(clearColor)
			page.Rectangle(a[0], a[1], a[2], a[3])
			page.Fill()
		case record.OpSetStrokeColor:
			// PDF strokes are opaque; only fully transparent strokes are
			// dropped.
			visible = a[3] > 0
			page.SetStrokeColor(deviceColor(slideshow.Color{
				R: uint8(a[0]), G: uint8(a[1]), B: uint8(a[2]), A: 255,
			}))
		case record.OpBeginPath:
			current = current[:0]
		case record.OpMoveTo, record.OpLineTo:
			current = append(current, call)
		case record.OpStroke:
			if visible && len(current) > 0 {
				tracePath(page, current)
				page.Stroke()
			}
		}
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods needed to construct a path.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// tracePath replays the recorded path construction calls.  A LineTo
// without current point starts a new subpath.
func tracePath(page pathBuilder, calls []record.Call) {
	hasCurrent := false
	for _, call := range calls {
		x, y := call.Args[0], call.Args[1]
		if call.Op == record.OpMoveTo || !hasCurrent {
			page.MoveTo(x, y)
		} else {
			page.LineTo(x, y)
		}
		hasCurrent = true
	}
}

func deviceColor(c slideshow.Color) color.DeviceRGB {
	return color.DeviceRGB{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}
