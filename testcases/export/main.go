// Command export writes the sample designs as session files and SVG
// drawings, for inspection and for loading into other tools.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/neon"
	"seehuhn.de/go/neon/config"
	"seehuhn.de/go/neon/history"
	"seehuhn.de/go/neon/projection"
	"seehuhn.de/go/neon/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/designs", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	opt := config.Default().SVGOptions()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, d := range testcases.All[category] {
			name := category + "_" + d.Name
			base := filepath.Join(*outDir, name)
			if err := writeSession(base+".json", d); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeSVG(base+".svg", d, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeSession(fname string, d testcases.Design) error {
	doc := d.Document()
	v := d.CanvasView()
	snap := &neon.Snapshot{
		Paths:        doc.Paths,
		Current:      doc.Current,
		DrawMode:     doc.Mode,
		DrawingType:  doc.Type,
		History:      history.Entries{history.Snapshot{Doc: doc.Clone()}},
		HistoryIndex: 0,
		Scale:        v.Scale,
		OffsetX:      v.OffsetX,
		OffsetY:      v.OffsetY,
	}
	return (&neon.FileStore{Path: fname}).Save(snap)
}

func writeSVG(fname string, d testcases.Design, opt projection.SVGOptions) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = projection.SVGDocument(f, d.Document(), opt)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
