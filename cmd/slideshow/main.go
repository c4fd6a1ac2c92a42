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

// Command slideshow renders the slides to PNG images, PDF files or JSON
// logs of the drawing calls.
//
// Usage:
//
//	slideshow [flags]
//
// Settings can also be read from a TOML file given with -config; flags
// given on the command line override the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/slideshow"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "slideshow: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg, verbose, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slideshow.SetLogger(logger)

	if err := cfg.validate(); err != nil {
		return err
	}

	files, err := render(cfg)
	for _, name := range files {
		logger.Info("wrote", "file", name)
	}
	return err
}

// parseArgs combines the defaults, the optional config file and the
// command line flags.
func parseArgs(args []string, stderr io.Writer) (*Config, bool, error) {
	def := defaultConfig()
	flags := flag.NewFlagSet("slideshow", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configFile := flags.String("config", "", "read settings from this TOML `file`")
	verbose := flags.Bool("v", false, "log every redraw")

	var fromFlags Config
	flags.IntVar(&fromFlags.Canvas.Width, "width", def.Canvas.Width, "canvas width in pixels")
	flags.IntVar(&fromFlags.Canvas.Height, "height", def.Canvas.Height, "canvas height in pixels")
	flags.IntVar(&fromFlags.Sections, "sections", def.Sections, "number of line segments per curve")
	flags.BoolVar(&fromFlags.ShowPoints, "points", def.ShowPoints, "highlight vertices and control points")
	flags.IntVar(&fromFlags.Slide, "slide", def.Slide, "slide to render, -1 for all")
	flags.StringVar(&fromFlags.Format, "format", def.Format, "output format: png, pdf or json")
	flags.StringVar(&fromFlags.Backend, "backend", def.Backend, "PNG rasteriser: raster or ximage")
	flags.StringVar(&fromFlags.Output, "o", def.Output, "output file `name`, %d is replaced by the slide number")
	flags.Float64Var(&fromFlags.LineWidth, "linewidth", def.LineWidth, "stroke width in pixels")
	flags.StringVar(&fromFlags.Cap, "cap", def.Cap, "line cap: butt, round or square (raster and pdf only)")
	flags.StringVar(&fromFlags.Background, "background", def.Background, "background `color` as #rrggbb")
	flags.BoolVar(&fromFlags.Label, "label", def.Label, "add a caption to PNG output")

	if err := flags.Parse(args); err != nil {
		return nil, false, err
	}
	if flags.NArg() > 0 {
		return nil, false, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	cfg := def
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			return nil, false, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Canvas.Width = fromFlags.Canvas.Width
		case "height":
			cfg.Canvas.Height = fromFlags.Canvas.Height
		case "sections":
			cfg.Sections = fromFlags.Sections
		case "points":
			cfg.ShowPoints = fromFlags.ShowPoints
		case "slide":
			cfg.Slide = fromFlags.Slide
		case "format":
			cfg.Format = fromFlags.Format
		case "backend":
			cfg.Backend = fromFlags.Backend
		case "o":
			cfg.Output = fromFlags.Output
		case "linewidth":
			cfg.LineWidth = fromFlags.LineWidth
		case "cap":
			cfg.Cap = fromFlags.Cap
		case "background":
			cfg.Background = fromFlags.Background
		case "label":
			cfg.Label = fromFlags.Label
		}
	})
	return cfg, *verbose, nil
}
