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

// Package record implements a drawing surface which records all drawing
// calls instead of producing pixels.
//
// This is useful for testing code which draws onto a [slideshow.Context],
// and for exporting the drawing calls of a slide as JSON.
package record

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/slideshow"
)

// Op identifies a drawing operation.
type Op int

// These are the operations of [slideshow.Context].
const (
	OpClearRect Op = iota
	OpSetStrokeColor
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
)

var opNames = [...]string{
	OpClearRect:      "clearRect",
	OpSetStrokeColor: "setStrokeColor",
	OpBeginPath:      "beginPath",
	OpMoveTo:         "moveTo",
	OpLineTo:         "lineTo",
	OpStroke:         "stroke",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (op Op) MarshalText() ([]byte, error) {
	if op < 0 || int(op) >= len(opNames) {
		return nil, fmt.Errorf("record: invalid operation %d", int(op))
	}
	return []byte(opNames[op]), nil
}

// Call is a single recorded drawing call.
//
// The arguments are stored in the order of the corresponding method of
// [slideshow.Context].  For OpSetStrokeColor the color channels are stored
// as float64 values in the range 0 to 255, followed by the alpha fraction.
type Call struct {
	Op   Op        `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

// Segment is a stroked line segment together with its stroke color.
type Segment struct {
	From, To vec.Vec2
	Color    slideshow.Color
}

// Surface records drawing calls.  A Surface acts both as a
// [slideshow.Host] and as the [slideshow.Context] it hands out.
type Surface struct {
	Canvas slideshow.Canvas
	Calls  []Call
}

// New returns an empty Surface.
func New() *Surface {
	return &Surface{}
}

// Context implements the [slideshow.Host] interface.
// All previously recorded calls are discarded.
func (s *Surface) Context(c slideshow.Canvas) (slideshow.Context, error) {
	s.Canvas = c
	s.Calls = s.Calls[:0]
	return s, nil
}

// Reset discards all recorded calls.
func (s *Surface) Reset() {
	s.Calls = s.Calls[:0]
}

// ClearRect implements the [slideshow.Context] interface.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.add(OpClearRect, x, y, w, h)
}

// SetStrokeColor implements the [slideshow.Context] interface.
func (s *Surface) SetStrokeColor(r, g, b uint8, a float64) {
	s.add(OpSetStrokeColor, float64(r), float64(g), float64(b), a)
}

// BeginPath implements the [slideshow.Context] interface.
func (s *Surface) BeginPath() {
	s.add(OpBeginPath)
}

// MoveTo implements the [slideshow.Context] interface.
func (s *Surface) MoveTo(x, y float64) {
	s.add(OpMoveTo, x, y)
}

// LineTo implements the [slideshow.Context] interface.
func (s *Surface) LineTo(x, y float64) {
	s.add(OpLineTo, x, y)
}

// Stroke implements the [slideshow.Context] interface.
func (s *Surface) Stroke() {
	s.add(OpStroke)
}

func (s *Surface) add(op Op, args ...float64) {
	s.Calls = append(s.Calls, Call{Op: op, Args: args})
}

// Frame returns the calls issued since the canvas was last cleared
// completely.  If the canvas has never been cleared, all calls are
// returned.  These are the calls which determine the visible image.
func (s *Surface) Frame() []Call {
	start := 0
	for i, call := range s.Calls {
		if call.Op == OpClearRect && s.coversCanvas(call.Args) {
			start = i + 1
		}
	}
	return s.Calls[start:]
}

// DrawCalls returns the number of calls in the current frame.
func (s *Surface) DrawCalls() int {
	return len(s.Frame())
}

func (s *Surface) coversCanvas(args []float64) bool {
	x, y, w, h := args[0], args[1], args[2], args[3]
	return x <= 0 && y <= 0 &&
		x+w >= float64(s.Canvas.Width) && y+h >= float64(s.Canvas.Height)
}

// Segments returns the line segments stroked in the current frame, in the
// order they were drawn.  A path which is stroked more than once
// contributes its segments once for every call to Stroke.
func (s *Surface) Segments() []Segment {
	var segs []Segment
	var pending []Segment

	var color slideshow.Color
	var current vec.Vec2
	hasCurrent := false

	for _, call := range s.Frame() {
		switch call.Op {
		case OpSetStrokeColor:
			color = slideshow.Color{
				R: uint8(call.Args[0]),
				G: uint8(call.Args[1]),
				B: uint8(call.Args[2]),
				A: uint8(call.Args[3]*255 + 0.5),
			}
		case OpBeginPath:
			pending = pending[:0]
			hasCurrent = false
		case OpMoveTo:
			current = vec.Vec2{X: call.Args[0], Y: call.Args[1]}
			hasCurrent = true
		case OpLineTo:
			p := vec.Vec2{X: call.Args[0], Y: call.Args[1]}
			if hasCurrent {
				pending = append(pending, Segment{From: current, To: p})
			}
			current = p
			hasCurrent = true
		case OpStroke:
			for _, seg := range pending {
				seg.Color = color
				segs = append(segs, seg)
			}
		}
	}
	return segs
}

// WriteJSON writes the canvas and all recorded calls to w.
func (s *Surface) WriteJSON(w io.Writer) error {
	out := struct {
		Canvas slideshow.Canvas `json:"canvas"`
		Calls  []Call           `json:"calls"`
	}{
		Canvas: s.Canvas,
		Calls:  s.Calls,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
