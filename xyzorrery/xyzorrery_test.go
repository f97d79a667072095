// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzorrery

import (
	"os"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, opts Options) *View {
	t.Helper()
	ds := planets.Default()
	ds[2].Texture = "earth.png"
	ds[3].Texture = "mars.png"
	sys, err := sim.New(ds, sim.DefaultParams())
	require.NoError(t, err)
	return Build(xyz.NewScene(), sys, opts)
}

func TestBuild(t *testing.T) {
	v := newView(t, Options{Textures: os.DirFS("testdata")})
	sc := v.Scene
	require.NotNil(t, v.Sun)
	assert.NotNil(t, sc.ChildByName("sun", 0))
	assert.Len(t, v.Planets, 8)
	assert.Len(t, v.Orbits, 8)
	assert.Len(t, v.Trails, 8)
	assert.Nil(t, v.TrailSolids)

	for i, pl := range v.Planets {
		bd := v.System.Bodies[i]
		assert.Equal(t, bd.Planet.Name, pl.Name)
		assert.Equal(t, math32.Vec3(bd.Radius, 0, 0), pl.Pose.Pos)
	}
	assert.NotNil(t, v.Planets[2].Material.Texture, "earth texture is in testdata")
	assert.Nil(t, v.Planets[0].Material.Texture, "mercury texture falls back to tint")
	assert.Nil(t, v.Planets[3].Material.Texture, "mars texture is not an image")
	assert.Equal(t, v.System.Bodies[0].Planet.Color, v.Planets[0].Material.Color)

	_, err := sc.MeshByName("Earth-orbit")
	assert.NoError(t, err)
	_, err = sc.MeshByName("Earth-trail")
	assert.NoError(t, err)
}

func TestSync(t *testing.T) {
	v := newView(t, Options{})
	v.System.Frame(5 * time.Second)
	v.Sync()
	ss := v.System.Snapshot()
	for i, pl := range v.Planets {
		assert.Equal(t, ss.Bodies[i].Pos, pl.Pose.Pos)
	}
	require.NotNil(t, v.Sun)

	require.True(t, v.System.Break())
	v.Sync()
	assert.Nil(t, v.Sun)
	assert.Nil(t, v.Scene.ChildByName("sun", 0))
	assert.NotNil(t, v.Light, "the light stays when the sun goes")
	require.Len(t, v.TrailSolids, 8)

	for range 5 {
		v.System.Frame(time.Hour)
	}
	v.Sync()
	ss = v.System.Snapshot()
	for i, pl := range v.Planets {
		assert.Equal(t, ss.Bodies[i].Pos, pl.Pose.Pos)
		assert.Equal(t, ss.Drifts[i].Origin, v.Trails[i].Points[0])
		assert.Equal(t, ss.Bodies[i].Pos, v.Trails[i].Points[1])
	}
	solids := v.TrailSolids
	v.Sync()
	assert.Equal(t, solids, v.TrailSolids, "trails are only added once")
}

func TestCheckImage(t *testing.T) {
	fsys := os.DirFS("testdata")
	assert.NoError(t, checkImage(fsys, "earth.png"))
	assert.Error(t, checkImage(fsys, "mars.png"))
	assert.Error(t, checkImage(fsys, "missing.png"))
}

func TestLight(t *testing.T) {
	v := newView(t, Options{})
	assert.Equal(t, math32.Vector3{}, v.Light.Pos)
	r := v.System.MaxRadius()
	att := 1 / (1 + v.Light.LinDecay*r + v.Light.QuadDecay*r*r)
	assert.Greater(t, att, float32(0.2), "the outermost planet is lit")
}
