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

package pdfpage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/slideshow"
	"seehuhn.de/go/slideshow/record"
)

type tracer struct {
	ops []string
}

func (t *tracer) MoveTo(x, y float64) { t.ops = append(t.ops, fmt.Sprintf("M %g %g", x, y)) }
func (t *tracer) LineTo(x, y float64) { t.ops = append(t.ops, fmt.Sprintf("L %g %g", x, y)) }

func TestTracePath(t *testing.T) {
	calls := []record.Call{
		{Op: record.OpLineTo, Args: []float64{1, 2}},
		{Op: record.OpLineTo, Args: []float64{3, 4}},
		{Op: record.OpMoveTo, Args: []float64{5, 6}},
		{Op: record.OpLineTo, Args: []float64{7, 8}},
	}
	tr := &tracer{}
	tracePath(tr, calls)

	want := []string{"M 1 2", "L 3 4", "M 5 6", "L 7 8"}
	if len(tr.ops) != len(want) {
		t.Fatalf("got %v, want %v", tr.ops, want)
	}
	for i := range want {
		if tr.ops[i] != want[i] {
			t.Errorf("op %d: got %q, want %q", i, tr.ops[i], want[i])
		}
	}
}

func TestDeviceColor(t *testing.T) {
	c := deviceColor(slideshow.Color{R: 255, G: 51, B: 0, A: 10})
	if c[0] != 1 || c[1] != 0.2 || c[2] != 0 {
		t.Errorf("got %v", c)
	}
}

func TestCloseUnbound(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "unbound.pdf"))
	if err := s.Close(); err != errNotBound {
		t.Errorf("got %v, want %v", err, errNotBound)
	}
}

func TestWriteSlides(t *testing.T) {
	dir := t.TempDir()
	canvas := slideshow.Canvas{ID: "pdf", Width: 800, Height: 600}

	for slide := range slideshow.NumSlides {
		fileName := filepath.Join(dir, fmt.Sprintf("slide%d.pdf", slide))
		s := New(fileName)
		s.Background = &slideshow.Color{R: 255, G: 255, B: 255, A: 255}

		r, err := slideshow.New(s, canvas, &slideshow.Options{Sections: 8, ShowPoints: true})
		if err != nil {
			t.Fatal(err)
		}
		r.DrawSlide(slide)
		if err := s.Close(); err != nil {
			t.Fatalf("slide %d: %v", slide, err)
		}

		data, err := os.ReadFile(fileName)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("slide %d: not a PDF file", slide)
		}
	}
}
