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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/slideshow"
)

// Config holds the settings of a rendering run.  It can be read from a
// TOML file; command line flags take precedence.
type Config struct {
	Canvas     slideshow.Canvas `toml:"canvas"`
	Sections   int              `toml:"sections"`
	ShowPoints bool             `toml:"show_points"`

	// Slide selects a single slide.  Negative values select all slides.
	Slide int `toml:"slide"`

	// Format is one of "png", "pdf" or "json".
	Format string `toml:"format"`

	// Backend selects the rasteriser for PNG output: "raster" or "ximage".
	Backend string `toml:"backend"`

	// Output is the output file name.  A "%d" is replaced by the slide
	// number.
	Output string `toml:"output"`

	LineWidth  float64 `toml:"line_width"`
	Cap        string  `toml:"cap"`
	Background string  `toml:"background"`

	// Label adds a caption with the slide settings to PNG output.
	Label bool `toml:"label"`
}

func defaultConfig() *Config {
	return &Config{
		Canvas:     slideshow.Canvas{ID: "canvas", Width: 800, Height: 600},
		Sections:   slideshow.DefaultSections,
		Slide:      -1,
		Format:     "png",
		Backend:    "raster",
		LineWidth:  1,
		Cap:        "butt",
		Background: "#ffffff",
	}
}

// loadConfig reads a TOML file on top of the defaults.
func loadConfig(fileName string) (*Config, error) {
	cfg := defaultConfig()

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

// validate checks the configuration for errors which would otherwise only
// show up after some files have been written.
func (cfg *Config) validate() error {
	var errs []error
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		errs = append(errs, slideshow.ErrCanvasSize)
	}
	if cfg.Sections < 1 {
		errs = append(errs, slideshow.ErrInvalidSections)
	}
	if cfg.Slide >= slideshow.NumSlides {
		errs = append(errs, fmt.Errorf("slide %d does not exist", cfg.Slide))
	}
	switch cfg.Format {
	case "png", "pdf", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown format %q", cfg.Format))
	}
	switch cfg.Backend {
	case "raster", "ximage":
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", cfg.Backend))
	}
	if cfg.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("invalid line width %g", cfg.LineWidth))
	}
	if lineCap, err := parseCap(cfg.Cap); err != nil {
		errs = append(errs, err)
	} else if cfg.Backend == "ximage" && cfg.Format == "png" && lineCap != graphics.LineCapButt {
		errs = append(errs, fmt.Errorf("backend %q only supports butt caps, got %q", cfg.Backend, cfg.Cap))
	}
	if _, err := parseColor(cfg.Background); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// slides returns the slide numbers to render.
func (cfg *Config) slides() []int {
	if cfg.Slide >= 0 {
		return []int{cfg.Slide}
	}
	res := make([]int, slideshow.NumSlides)
	for i := range res {
		res[i] = i
	}
	return res
}

// outputName returns the file name for the given slide.
func (cfg *Config) outputName(slide int) string {
	name := cfg.Output
	if name == "" {
		name = "slide%d." + cfg.Format
	}
	if strings.Contains(name, "%d") {
		return fmt.Sprintf(name, slide)
	}
	if cfg.Slide < 0 {
		// several slides need distinct names
		ext := "." + cfg.Format
		return strings.TrimSuffix(name, ext) + strconv.Itoa(slide) + ext
	}
	return name
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt", "":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap %q", s)
}

// parseColor parses colors of the form "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (slideshow.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return slideshow.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return slideshow.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return slideshow.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
