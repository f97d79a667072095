// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides the geometry of circular orbits in the
// horizontal (X-Z) plane, and of the sideways drift off of them.
package orbit

import (
	"math"
	"time"

	"cogentcore.org/core/math32"
)

// DefaultSegments is the default number of line segments in an orbit [Circle].
const DefaultSegments = 128

// Circle returns the closed polyline of a circle of given radius in the
// X-Z plane, centered at the origin. It has segments+1 points, with
// the last point equal to the first so that the path visually closes.
// segments < 1 is treated as 1.
func Circle(radius float32, segments int) []math32.Vector3 {
	segments = max(segments, 1)
	pts := make([]math32.Vector3, segments+1)
	for i := range pts {
		theta := float32(i) / float32(segments) * 2 * math32.Pi
		pts[i] = Position(radius, theta)
	}
	pts[segments] = pts[0] // exact closure regardless of rounding
	return pts
}

// Position returns the position at given angle (radians, from the +X axis
// toward +Z) on a circle of given radius in the X-Z plane.
func Position(radius, angle float32) math32.Vector3 {
	return math32.Vec3(radius*math32.Cos(angle), 0, radius*math32.Sin(angle))
}

// Angle returns the orbit angle of the planet at given index after the
// given elapsed time, as elapsed milliseconds * rate * (index+1).
// It is computed fresh from the absolute time, so there is no accumulated
// phase, and it is reduced modulo 2π in double precision so that long
// elapsed times keep full float32 precision.
func Angle(elapsed time.Duration, index int, rate float32) float32 {
	ms := float64(elapsed) / float64(time.Millisecond)
	a := ms * float64(rate) * float64(index+1)
	return float32(math.Mod(a, 2*math.Pi))
}

// SideDirection returns the unit vector in the X-Z plane that is
// perpendicular to the radial direction of the given position, rotated
// 90 degrees from +X toward +Z: for radial unit u it is (-u.Z, 0, u.X).
// The zero vector is returned for a position at the origin, where
// the radial direction is undefined.
func SideDirection(pos math32.Vector3) math32.Vector3 {
	if pos.Length() == 0 {
		return math32.Vector3{}
	}
	u := pos.Normal()
	side := math32.Vec3(-u.Z, 0, u.X)
	if side.Length() == 0 { // straight above or below the origin
		return math32.Vector3{}
	}
	return side.Normal()
}

// Drift returns the position after the given number of frames of drift
// from origin along unit direction dir at speed units per frame.
func Drift(origin, dir math32.Vector3, speed float32, frames int) math32.Vector3 {
	return origin.Add(dir.MulScalar(speed * float32(frames)))
}
