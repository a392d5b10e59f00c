// seehuhn.de/go/neon - vector design core for neon signs
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

// Command neon loads a saved design session, optionally generates a base
// plate, and exports the design as SVG, PDF print template or PNG preview.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"seehuhn.de/go/neon"
	"seehuhn.de/go/neon/config"
	"seehuhn.de/go/neon/preview"
	"seehuhn.de/go/neon/projection"
)

// session reads the design from one file and writes changes to another.
// Changes are discarded if no output file is given.
type session struct {
	in, out string
}

func (s session) Load() (*neon.Snapshot, error) {
	return (&neon.FileStore{Path: s.in}).Load()
}

func (s session) Save(snap *neon.Snapshot) error {
	if s.out == "" {
		return nil
	}
	return (&neon.FileStore{Path: s.out}).Save(snap)
}

func main() {
	cfgFile := flag.String("config", "", "settings file (TOML)")
	in := flag.String("in", "", "design session to load (JSON)")
	out := flag.String("o", "", "write the modified session to this file")
	shape := flag.String("generate", "", "generate a base plate: rectangle, circle, ellipse, auto or contour")
	margin := flag.Float64("margin", 2, "plate margin around the tubes in cm")
	radius := flag.Float64("radius", 0, "corner radius of a rectangular plate in cm")
	offset := flag.Float64("offset", 0, "move the centre of a circular plate down by this many cm")
	svgOut := flag.String("svg", "", "write an SVG drawing to this file")
	pdfOut := flag.String("pdf", "", "write a PDF print template to this file")
	pngOut := flag.String("png", "", "write a PNG preview to this file")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: neon -in design.json [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *verbose {
		neon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*cfgFile, session{in: *in, out: *out}, *shape, *margin, *radius, *offset,
		*svgOut, *pdfOut, *pngOut); err != nil {
		fmt.Fprintln(os.Stderr, "neon:", err)
		os.Exit(1)
	}
}

func run(cfgFile string, s session, shape string, margin, radius, offset float64,
	svgOut, pdfOut, pngOut string) error {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.LoadFile(cfgFile)
		if err != nil {
			return err
		}
	}

	store, err := neon.NewStore(cfg, s)
	if err != nil {
		return err
	}

	switch shape {
	case "":
	case "rectangle":
		err = store.GenerateRectangle(margin, radius)
	case "circle":
		err = store.GenerateCircle(margin, offset)
	case "ellipse":
		err = store.GenerateEllipse(margin)
	case "auto":
		err = store.GenerateAutoShape(margin)
	case "contour":
		err = store.GenerateContour(margin)
	default:
		err = fmt.Errorf("unknown shape %q", shape)
	}
	if err != nil {
		return err
	}

	doc := store.Document()
	if svgOut != "" {
		f, err := os.Create(svgOut)
		if err != nil {
			return err
		}
		err = projection.SVGDocument(f, doc, cfg.SVGOptions())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	if pdfOut != "" {
		if err := projection.WritePDF(pdfOut, doc, cfg.PDFOptions()); err != nil {
			return err
		}
	}
	if pngOut != "" {
		img, err := preview.Render(doc, cfg.PreviewOptions())
		if err != nil {
			return err
		}
		f, err := os.Create(pngOut)
		if err != nil {
			return err
		}
		err = png.Encode(f, img)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
