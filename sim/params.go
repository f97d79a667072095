// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"

	"cogentcore.org/orrery/orbit"
)

// Params are the cosmetic constants of the simulation.
// None of them are physical: distances and speeds are chosen to look right.
type Params struct {

	// DistanceScale divides catalog distances to get scene units.
	DistanceScale float32

	// Segments is the number of line segments in each orbit path.
	Segments int

	// OrbitRate is the orbit angle in radians per elapsed millisecond
	// for the first planet; planet i moves at (i+1) times this rate.
	OrbitRate float32

	// SpinStep is the rotation of each planet about its own axis,
	// in radians per frame. It depends on the frame rate.
	SpinStep float32

	// DriftSpeed is the drift distance per frame after the sun is removed,
	// multiplied by the number of drift frames. It depends on the frame rate.
	DriftSpeed float32

	// SunRadius is the radius of the sun.
	SunRadius float32
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.DistanceScale = 10
	p.Segments = orbit.DefaultSegments
	p.OrbitRate = 0.00005
	p.SpinStep = 0.01
	p.DriftSpeed = 0.0001
	p.SunRadius = 4
}

// DefaultParams returns the default parameters.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}

// Validate returns an error for parameters that would not produce a scene.
func (p *Params) Validate() error {
	var errs []error
	if p.DistanceScale <= 0 {
		errs = append(errs, fmt.Errorf("distance scale %g must be positive", p.DistanceScale))
	}
	if p.Segments < 1 {
		errs = append(errs, fmt.Errorf("segments %d must be at least 1", p.Segments))
	}
	if p.SunRadius < 0 {
		errs = append(errs, fmt.Errorf("sun radius %g must not be negative", p.SunRadius))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sim: invalid params: %w", err)
	}
	return nil
}
