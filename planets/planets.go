// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planets provides the catalog of planet descriptors
// rendered by the orrery.
package planets

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
)

// Descriptor is the immutable description of a planet.
type Descriptor struct {

	// Name is the name of the planet.
	Name string

	// Distance is the distance from the sun in millions of km.
	// It is divided by the distance scale to get scene units.
	Distance float32

	// Size is the radius relative to the Earth.
	Size float32

	// Color is the tint color, used when there is no texture.
	Color color.RGBA

	// Texture is the image file name for the surface texture.
	Texture string
}

// Validate returns an error if the descriptor can not be placed in a scene.
func (d *Descriptor) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if d.Distance <= 0 {
		errs = append(errs, fmt.Errorf("distance %g must be positive", d.Distance))
	}
	if d.Size <= 0 {
		errs = append(errs, fmt.Errorf("size %g must be positive", d.Size))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("planets: descriptor %q: %w", d.Name, err)
	}
	return nil
}

// Default returns the default catalog of the eight planets, in order
// from the sun. A new slice is returned on each call.
func Default() []Descriptor {
	return []Descriptor{
		{"Mercury", 57.9, 0.383, colors.FromRGB(0x88, 0x88, 0x88), "mercury.jpeg"},
		{"Venus", 108.2, 0.949, colors.FromRGB(0xff, 0xa5, 0x00), "venus.jpeg"},
		{"Earth", 149.6, 1, colors.FromRGB(0x00, 0x00, 0xff), "earth.jpeg"},
		{"Mars", 227.9, 0.532, colors.FromRGB(0xff, 0x57, 0x33), "mars.jpeg"},
		{"Jupiter", 778.5, 11.209, colors.FromRGB(0xdd, 0xba, 0x6a), "jupiter.jpeg"},
		{"Saturn", 1433.4, 9.449, colors.FromRGB(0xe0, 0xcd, 0x9f), "saturn.jpeg"},
		{"Uranus", 2872.5, 4.007, colors.FromRGB(0xa4, 0xdd, 0xed), "uranus.jpeg"},
		{"Neptune", 4495.1, 3.883, colors.FromRGB(0x3f, 0x5e, 0xfb), "neptune.jpeg"},
	}
}

// Validate validates all of the given descriptors, returning
// the joined errors. An empty catalog is an error.
func Validate(ds []Descriptor) error {
	if len(ds) == 0 {
		return errors.New("planets: catalog is empty")
	}
	var errs []error
	for i := range ds {
		errs = append(errs, ds[i].Validate())
	}
	return errors.Join(errs...)
}
