// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim provides the state of the orrery: the sun and the planets,
// their circular orbits, and the one-way transition that removes the sun
// and sends every planet drifting sideways off of its orbit.
//
// A [System] is created once at startup and is then only changed by
// [System.Frame] (or its parts [System.Step] and [System.Drift]),
// called once per rendered frame, and [System.Break].
package sim

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/orbit"
	"cogentcore.org/orrery/planets"
)

// Body is one planet in the [System].
type Body struct {

	// Planet is the descriptor that this body was created from.
	Planet planets.Descriptor

	// Index is the position of the planet in the catalog,
	// which determines its orbit speed.
	Index int

	// Radius is the radius of the circular orbit in scene units.
	Radius float32

	// Orbit is the closed orbit path, for display.
	Orbit []math32.Vector3

	// Pos is the current position.
	Pos math32.Vector3

	// Spin is the current rotation about the vertical axis, in radians.
	Spin float32
}

// Sun is the star at the origin.
type Sun struct {

	// Radius is the display radius.
	Radius float32

	// InScene is whether the sun is still part of the rendered scene.
	// It is cleared by [System.Break] and never set again.
	InScene bool
}

// Drift is the straight-line motion of one planet after [System.Break].
// Drifts never end: there is no way to cancel one once it is started.
type Drift struct {

	// Body is the index of the drifting body.
	Body int

	// Origin is the position of the body when the sun was removed.
	Origin math32.Vector3

	// Dir is the unit side direction, fixed at the time of the break.
	Dir math32.Vector3

	// Frames is the number of drift frames so far.
	Frames int

	// Trail is the start and end of the trailing path.
	// It starts out as the single point Origin.
	Trail [2]math32.Vector3
}

// System is the coordinator for all of the mutable simulation state.
// It is safe to call its methods from multiple goroutines;
// they are serialized by an internal mutex.
type System struct {

	// Params are the simulation parameters, which must not be
	// changed after [New].
	Params Params

	// Bodies are the planets, in catalog order.
	Bodies []*Body

	// Sun is the sun.
	Sun Sun

	// animating is the global animation flag: true until the break.
	animating bool

	// drifts are the active drifts, empty until the break.
	drifts []Drift

	mu sync.Mutex
}

// New returns a new [System] with one body per descriptor, in order,
// each placed at (distance, 0, 0) with its orbit path computed.
func New(catalog []planets.Descriptor, params Params) (*System, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := planets.Validate(catalog); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	sys := &System{Params: params, animating: true}
	sys.Sun = Sun{Radius: params.SunRadius, InScene: true}
	sys.Bodies = make([]*Body, len(catalog))
	for i, pd := range catalog {
		r := pd.Distance / params.DistanceScale
		sys.Bodies[i] = &Body{
			Planet: pd,
			Index:  i,
			Radius: r,
			Orbit:  orbit.Circle(r, params.Segments),
			Pos:    math32.Vec3(r, 0, 0),
		}
	}
	return sys, nil
}

// Animating returns whether the planets are still on their circular orbits.
func (sys *System) Animating() bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return sys.animating
}

// Frame does everything for one rendered frame at given elapsed time
// since startup: [System.Step] followed by [System.Drift].
func (sys *System) Frame(elapsed time.Duration) {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	sys.step(elapsed)
	sys.drift()
}

// Step places every planet on its circular orbit for the given elapsed
// time, and advances its spin by one step. Positions are a pure function
// of the elapsed time and planet index. It does nothing after the break.
func (sys *System) Step(elapsed time.Duration) {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	sys.step(elapsed)
}

func (sys *System) step(elapsed time.Duration) {
	if !sys.animating {
		return
	}
	for _, bd := range sys.Bodies {
		bd.Spin += sys.Params.SpinStep
		bd.Pos = orbit.Position(bd.Radius, orbit.Angle(elapsed, bd.Index, sys.Params.OrbitRate))
	}
}

// Break removes the sun from the scene, stops the circular orbits, and
// starts every planet drifting from where it is now along its side
// direction. It returns false, doing nothing, if the break already happened.
func (sys *System) Break() bool {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	if !sys.animating {
		return false
	}
	sys.Sun.InScene = false
	sys.animating = false
	sys.drifts = make([]Drift, len(sys.Bodies))
	for i, bd := range sys.Bodies {
		sys.drifts[i] = Drift{
			Body:   i,
			Origin: bd.Pos,
			Dir:    orbit.SideDirection(bd.Pos),
			Trail:  [2]math32.Vector3{bd.Pos, bd.Pos},
		}
	}
	slog.Info("orrery: sun removed, planets drifting", "planets", len(sys.drifts))
	return true
}

// Drift advances every active drift by one frame, moving its body
// to Origin + Dir * DriftSpeed * Frames and extending its trail to match.
// It does nothing before the break.
func (sys *System) Drift() {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	sys.drift()
}

func (sys *System) drift() {
	for i := range sys.drifts {
		dr := &sys.drifts[i]
		dr.Frames++
		pos := orbit.Drift(dr.Origin, dr.Dir, sys.Params.DriftSpeed, dr.Frames)
		sys.Bodies[dr.Body].Pos = pos
		dr.Trail[1] = pos
	}
}

// Drifts returns a copy of the active drifts.
func (sys *System) Drifts() []Drift {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	return append([]Drift(nil), sys.drifts...)
}

// BodyState is the changing state of a [Body].
type BodyState struct {
	Pos  math32.Vector3
	Spin float32
}

// Snapshot is a consistent copy of the changing state of a [System],
// for rendering.
type Snapshot struct {
	Animating  bool
	SunInScene bool
	Bodies     []BodyState
	Drifts     []Drift
}

// Snapshot returns a consistent copy of the current state.
func (sys *System) Snapshot() Snapshot {
	sys.mu.Lock()
	defer sys.mu.Unlock()
	ss := Snapshot{
		Animating:  sys.animating,
		SunInScene: sys.Sun.InScene,
		Bodies:     make([]BodyState, len(sys.Bodies)),
		Drifts:     append([]Drift(nil), sys.drifts...),
	}
	for i, bd := range sys.Bodies {
		ss.Bodies[i] = BodyState{Pos: bd.Pos, Spin: bd.Spin}
	}
	return ss
}

// MaxRadius returns the largest orbit radius, for framing views.
func (sys *System) MaxRadius() float32 {
	var mx float32
	for _, bd := range sys.Bodies {
		mx = max(mx, bd.Radius)
	}
	return mx
}
