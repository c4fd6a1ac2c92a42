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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/slideshow"
	"seehuhn.de/go/slideshow/pdfpage"
	"seehuhn.de/go/slideshow/raster"
	"seehuhn.de/go/slideshow/record"
	"seehuhn.de/go/slideshow/ximage"
)

// render writes the selected slides and returns the names of the files
// written.
func render(cfg *Config) ([]string, error) {
	switch cfg.Format {
	case "pdf":
		return renderPDF(cfg)
	case "json":
		return renderJSON(cfg)
	default:
		return renderPNG(cfg)
	}
}

func rendererOptions(cfg *Config) *slideshow.Options {
	return &slideshow.Options{
		Sections:   cfg.Sections,
		ShowPoints: cfg.ShowPoints,
	}
}

// imageHost is a host which draws into an image.
type imageHost interface {
	slideshow.Host
	Image() *image.RGBA
}

func renderPNG(cfg *Config) ([]string, error) {
	lineCap, err := parseCap(cfg.Cap)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	var host imageHost
	switch cfg.Backend {
	case "ximage":
		host = ximage.New(cfg.LineWidth)
	default:
		host = raster.New(&raster.Options{LineWidth: cfg.LineWidth, Cap: lineCap})
	}

	r, err := slideshow.New(host, cfg.Canvas, rendererOptions(cfg))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, slide := range cfg.slides() {
		r.DrawSlide(slide)

		img := flatten(host.Image(), bg)
		if cfg.Label {
			drawLabel(img, fmt.Sprintf("slide %d  sections=%d  points=%t",
				slide, r.NumCurveSections(), r.PointsShown()))
		}

		name := cfg.outputName(slide)
		if err := writePNG(name, img); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

// flatten returns a copy of img composited over an opaque background.
func flatten(img *image.RGBA, background color.Color) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// drawLabel writes a line of text into the top-left corner of img.
func drawLabel(img draw.Image, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 64}),
		Face: face,
		Dot:  fixed.P(8, 8+face.Ascent),
	}
	d.DrawString(text)
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func renderPDF(cfg *Config) ([]string, error) {
	lineCap, err := parseCap(cfg.Cap)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, slide := range cfg.slides() {
		name := cfg.outputName(slide)
		page := pdfpage.New(name)
		page.LineWidth = cfg.LineWidth
		page.Cap = lineCap
		page.Background = &bg

		r, err := slideshow.New(page, cfg.Canvas, rendererOptions(cfg))
		if err != nil {
			return files, err
		}
		r.DrawSlide(slide)
		if err := page.Close(); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

func renderJSON(cfg *Config) ([]string, error) {
	rec := record.New()
	r, err := slideshow.New(rec, cfg.Canvas, rendererOptions(cfg))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, slide := range cfg.slides() {
		rec.Reset()
		r.DrawSlide(slide)

		name := cfg.outputName(slide)
		if err := writeJSON(name, rec); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

func writeJSON(name string, rec *record.Surface) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return rec.WriteJSON(f)
}
