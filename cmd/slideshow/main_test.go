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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/slideshow"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want slideshow.Color
		ok   bool
	}{
		{"#ffffff", slideshow.Color{R: 255, G: 255, B: 255, A: 255}, true},
		{"#00ff0080", slideshow.Color{G: 255, A: 128}, true},
		{"#123", slideshow.Color{}, false},
		{"ffffff", slideshow.Color{}, false},
		{"#gggggg", slideshow.Color{}, false},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error state %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCap(t *testing.T) {
	for in, want := range map[string]graphics.LineCapStyle{
		"butt":   graphics.LineCapButt,
		"Round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	} {
		got, err := parseCap(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := parseCap("pointy"); err == nil {
		t.Error("unknown cap accepted")
	}
}

func TestOutputName(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.outputName(2); got != "slide2.png" {
		t.Errorf("default name %q", got)
	}

	cfg.Output = "out/s%d.png"
	if got := cfg.outputName(3); got != "out/s3.png" {
		t.Errorf("pattern name %q", got)
	}

	cfg.Output = "name.png"
	if got := cfg.outputName(1); got != "name1.png" {
		t.Errorf("all slides: %q", got)
	}
	cfg.Slide = 1
	if got := cfg.outputName(1); got != "name.png" {
		t.Errorf("single slide: %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := defaultConfig().validate(); err != nil {
		t.Errorf("default config: %v", err)
	}

	cfg := defaultConfig()
	cfg.Sections = 0
	cfg.Format = "gif"
	err := cfg.validate()
	if !errors.Is(err, slideshow.ErrInvalidSections) {
		t.Errorf("got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), `"gif"`) {
		t.Errorf("format error missing from %v", err)
	}

	cfg = defaultConfig()
	cfg.Backend = "ximage"
	cfg.Cap = "round"
	if err := cfg.validate(); err == nil {
		t.Error("round caps accepted for the ximage backend")
	}
	cfg.Format = "pdf"
	if err := cfg.validate(); err != nil {
		t.Errorf("pdf output with round caps: %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "slides.toml")
	content := `
sections = 5
show_points = true
format = "json"

[canvas]
id = "main"
width = 640
height = 480
`
	if err := os.WriteFile(fileName, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := parseArgs([]string{"-config", fileName, "-sections", "9"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sections != 9 {
		t.Errorf("flag did not override the file: sections=%d", cfg.Sections)
	}
	if !cfg.ShowPoints || cfg.Format != "json" || cfg.Canvas.Width != 640 || cfg.Canvas.ID != "main" {
		t.Errorf("file settings lost: %+v", cfg)
	}
	if cfg.Backend != "raster" {
		t.Errorf("default backend lost: %q", cfg.Backend)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("colour = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"raster", "ximage"} {
		pattern := filepath.Join(dir, backend+"%d.png")
		args := []string{"-backend", backend, "-o", pattern, "-points", "-label", "-width", "320", "-height", "240"}
		if err := run(args, &bytes.Buffer{}); err != nil {
			t.Fatalf("%s: %v", backend, err)
		}

		for slide := range slideshow.NumSlides {
			f, err := os.Open(filepath.Join(dir, backend+string(rune('0'+slide))+".png"))
			if err != nil {
				t.Fatal(err)
			}
			img, err := png.Decode(f)
			f.Close()
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
				t.Errorf("%s slide %d: size %v", backend, slide, b)
			}
		}
	}
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "slide2.json")
	stderr := &bytes.Buffer{}
	if err := run([]string{"-format", "json", "-slide", "2", "-sections", "4", "-o", name, "-v"}, stderr); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Calls []struct {
			Op string `json:"op"`
		} `json:"calls"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}

	// one clear, then four segments of five calls each
	if len(out.Calls) != 1+4*5 {
		t.Errorf("got %d calls", len(out.Calls))
	}
	if !strings.Contains(stderr.String(), "slide drawn") {
		t.Errorf("verbose run did not log the redraw:\n%s", stderr)
	}
}

func TestRunPDF(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "slide.pdf")
	if err := run([]string{"-format", "pdf", "-slide", "3", "-o", name, "-cap", "round"}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("not a PDF file")
	}
}

func TestRunErrors(t *testing.T) {
	cases := [][]string{
		{"-slide", "4"},
		{"-sections", "0"},
		{"-background", "white"},
		{"stray"},
	}
	for _, args := range cases {
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}
