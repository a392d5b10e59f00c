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

// Package config reads the settings of the design core from TOML files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/neon/autoshape"
	"seehuhn.de/go/neon/history"
	"seehuhn.de/go/neon/preview"
	"seehuhn.de/go/neon/projection"
)

// Config holds all settings.  The zero value is not useful; start from
// [Default].
type Config struct {
	HistoryDepth  int     `toml:"history_depth"`
	UnitsPerCM    float64 `toml:"units_per_cm"`
	EdgeSpacing   float64 `toml:"edge_spacing"`
	CircleStepDeg float64 `toml:"circle_step_deg"`
	SplineSamples int     `toml:"spline_samples"`
	EnvelopeCell  float64 `toml:"envelope_cell"`

	Preview Preview `toml:"preview"`
	PDF     PDF     `toml:"pdf"`
}

// Preview holds the settings of the raster preview.
type Preview struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	TubeWidthCM float64 `toml:"tube_width_cm"`
	Glow        float64 `toml:"glow"`
	Background  string  `toml:"background"`
	Plate       string  `toml:"plate"`
	Tube        string  `toml:"tube"`
}

// PDF holds the settings of the print template.
type PDF struct {
	MarginMM    float64 `toml:"margin_mm"`
	TubeWidthCM float64 `toml:"tube_width_cm"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		HistoryDepth:  history.DefaultDepth,
		UnitsPerCM:    25,
		EdgeSpacing:   5,
		CircleStepDeg: 5,
		SplineSamples: 10,
		EnvelopeCell:  0,
		Preview: Preview{
			Width:       800,
			Height:      600,
			TubeWidthCM: 0.8,
			Glow:        3,
			Background:  "#101014",
			Plate:       "#303038",
			Tube:        "#ff2a6d",
		},
		PDF: PDF{
			MarginMM:    10,
			TubeWidthCM: 0.8,
		},
	}
}

// Load reads settings from r on top of the defaults.  Unknown keys are
// an error.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("config: %s", strict.String())
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads settings from the named file.
func LoadFile(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Write stores cfg in TOML format.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks that all values are usable.
func (cfg *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	positive("history_depth", float64(cfg.HistoryDepth))
	positive("units_per_cm", cfg.UnitsPerCM)
	positive("edge_spacing", cfg.EdgeSpacing)
	positive("circle_step_deg", cfg.CircleStepDeg)
	positive("spline_samples", float64(cfg.SplineSamples))
	if cfg.EnvelopeCell < 0 {
		errs = append(errs, fmt.Errorf("envelope_cell must not be negative, got %g", cfg.EnvelopeCell))
	}
	positive("preview.width", float64(cfg.Preview.Width))
	positive("preview.height", float64(cfg.Preview.Height))
	positive("preview.tube_width_cm", cfg.Preview.TubeWidthCM)
	if cfg.Preview.Glow < 0 {
		errs = append(errs, fmt.Errorf("preview.glow must not be negative, got %g", cfg.Preview.Glow))
	}
	for name, s := range map[string]string{
		"preview.background": cfg.Preview.Background,
		"preview.plate":      cfg.Preview.Plate,
		"preview.tube":       cfg.Preview.Tube,
	} {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if cfg.PDF.MarginMM < 0 {
		errs = append(errs, fmt.Errorf("pdf.margin_mm must not be negative, got %g", cfg.PDF.MarginMM))
	}
	positive("pdf.tube_width_cm", cfg.PDF.TubeWidthCM)

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseColor parses a colour in the form "#rrggbb" or "#rgb".
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Generator returns the auto-shape parameters.
func (cfg *Config) Generator() autoshape.Params {
	return autoshape.Params{
		UnitsPerCM:    cfg.UnitsPerCM,
		EdgeSpacing:   cfg.EdgeSpacing,
		CircleStepDeg: cfg.CircleStepDeg,
		SplineSamples: cfg.SplineSamples,
		EnvelopeCell:  cfg.EnvelopeCell,
	}
}

// PreviewOptions returns the preview settings.  Colours are assumed to have
// passed [Config.Validate].
func (cfg *Config) PreviewOptions() preview.Options {
	opt := preview.DefaultOptions()
	opt.Width = cfg.Preview.Width
	opt.Height = cfg.Preview.Height
	opt.UnitsPerCM = cfg.UnitsPerCM
	opt.TubeWidthCM = cfg.Preview.TubeWidthCM
	opt.Glow = cfg.Preview.Glow
	if c, err := ParseColor(cfg.Preview.Background); err == nil {
		opt.Background = c
	}
	if c, err := ParseColor(cfg.Preview.Plate); err == nil {
		opt.Plate = c
	}
	if c, err := ParseColor(cfg.Preview.Tube); err == nil {
		opt.Tube = c
	}
	return opt
}

// PDFOptions returns the print template settings.
func (cfg *Config) PDFOptions() projection.PDFOptions {
	return projection.PDFOptions{
		UnitsPerCM:  cfg.UnitsPerCM,
		MarginMM:    cfg.PDF.MarginMM,
		TubeWidthCM: cfg.PDF.TubeWidthCM,
	}
}

// SVGOptions returns the SVG export settings, using the preview colours
// and the print tube width.
func (cfg *Config) SVGOptions() projection.SVGOptions {
	return projection.SVGOptions{
		TubeColor:  cfg.Preview.Tube,
		PlateColor: cfg.Preview.Plate,
		TubeWidth:  cfg.PDF.TubeWidthCM * cfg.UnitsPerCM,
		Margin:     cfg.PDF.MarginMM / 10 * cfg.UnitsPerCM,
	}
}
