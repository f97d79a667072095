// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the TOML representation of a catalog:
//
//	[[planets]]
//	name = "Earth"
//	distance = 149.6
//	size = 1
//	color = "#0000ff"
//	texture = "earth.jpeg"
type catalogFile struct {
	Planets []descriptorFile `toml:"planets"`
}

type descriptorFile struct {
	Name     string  `toml:"name"`
	Distance float32 `toml:"distance"`
	Size     float32 `toml:"size"`
	Color    string  `toml:"color"`
	Texture  string  `toml:"texture"`
}

// Read reads a TOML catalog from the given reader, validating it.
func Read(r io.Reader) ([]Descriptor, error) {
	var cf catalogFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cf); err != nil {
		return nil, fmt.Errorf("planets: decoding catalog: %w", err)
	}
	ds := make([]Descriptor, len(cf.Planets))
	for i, pf := range cf.Planets {
		d := Descriptor{Name: pf.Name, Distance: pf.Distance, Size: pf.Size, Texture: pf.Texture}
		if pf.Color != "" {
			c, err := parseColor(pf.Color)
			if err != nil {
				return nil, fmt.Errorf("planets: %q color: %w", pf.Name, err)
			}
			d.Color = c
		} else {
			d.Color = colors.FromRGB(0x80, 0x80, 0x80)
		}
		ds[i] = d
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// OpenFS reads a TOML catalog from the given file in the given filesystem.
func OpenFS(fsys fs.FS, filename string) ([]Descriptor, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Open reads a TOML catalog from the given file.
func Open(filename string) ([]Descriptor, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// parseColor parses a "#rgb", "#rrggbb", or "#rrggbbaa" color.
// [colors.FromHex] does not report digits that are not hex.
func parseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return colors.FromHex(s)
}
