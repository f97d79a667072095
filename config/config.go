// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the orrery app,
// which is set from defaults, config files, and command-line flags
// by [cogentcore.org/core/cli].
package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/sim"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration for the orrery app.
type Config struct {

	// Catalog is an optional TOML file with the planets to show,
	// instead of the eight planets of the solar system.
	Catalog string

	// Textures is the directory containing the planet texture images.
	// Planets whose texture can not be found are shown in their tint color.
	Textures string `default:"img"`

	// DistanceScale divides catalog distances (millions of km) to get scene units.
	DistanceScale float32 `default:"10"`

	// Segments is the number of line segments in each orbit path.
	Segments int `default:"128"`

	// OrbitRate is the orbit angle of the innermost planet in radians per
	// millisecond; each following planet is that much faster again.
	OrbitRate float32 `default:"0.00005"`

	// SpinStep is the rotation of each planet about its own axis per frame.
	SpinStep float32 `default:"0.01"`

	// DriftSpeed is the drift distance per frame, times the number of frames,
	// after the sun is removed.
	DriftSpeed float32 `default:"0.0001"`

	// SunRadius is the radius of the sun.
	SunRadius float32 `default:"4"`

	// FPS is the frame rate of the terminal view.
	FPS int `default:"60"`

	// Sound is whether the terminal view plays a tone when the sun is removed.
	Sound bool `default:"true"`
}

// Params returns the simulation parameters.
func (c *Config) Params() sim.Params {
	return sim.Params{
		DistanceScale: c.DistanceScale,
		Segments:      c.Segments,
		OrbitRate:     c.OrbitRate,
		SpinStep:      c.SpinStep,
		DriftSpeed:    c.DriftSpeed,
		SunRadius:     c.SunRadius,
	}
}

// LoadCatalog returns the planet catalog: the [Config.Catalog] file
// if set, and otherwise [planets.Default]. A leading ~ in the
// file name is the home directory.
func (c *Config) LoadCatalog() ([]planets.Descriptor, error) {
	if c.Catalog == "" {
		return planets.Default(), nil
	}
	fn, err := homedir.Expand(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("config: catalog %q: %w", c.Catalog, err)
	}
	ds, err := planets.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("config: catalog %q: %w", c.Catalog, err)
	}
	slog.Info("orrery: loaded catalog", "file", c.Catalog, "planets", len(ds))
	return ds, nil
}

// TexturesFS returns the filesystem of the [Config.Textures] directory,
// with a leading ~ expanded to the home directory.
func (c *Config) TexturesFS() (fs.FS, error) {
	dir, err := homedir.Expand(c.Textures)
	if err != nil {
		return nil, fmt.Errorf("config: textures %q: %w", c.Textures, err)
	}
	return os.DirFS(dir), nil
}

// NewSystem returns a new [sim.System] for the configured catalog and parameters.
func (c *Config) NewSystem() (*sim.System, error) {
	ds, err := c.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return sim.New(ds, c.Params())
}
