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

// Command genpdf writes the print template of every sample design and
// renders it to PNG using Ghostscript, for visual checks of the PDF
// output.  Run from the module root directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/neon/config"
	"seehuhn.de/go/neon/projection"
	"seehuhn.de/go/neon/testcases"
)

const refDir = "testdata/templates"

func main() {
	noPNG := flag.Bool("no-png", false, "skip the Ghostscript step")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0o755); err != nil {
		panic(err)
	}

	opt := config.Default().PDFOptions()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, d := range testcases.All[category] {
			name := category + "_" + d.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			err := projection.WritePDF(pdfPath, d.Document(), opt)
			if errors.Is(err, projection.ErrEmpty) {
				continue
			} else if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r36: half of the PDF resolution, templates can be large
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r36",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
