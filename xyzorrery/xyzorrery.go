// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzorrery provides the 3D view of a [sim.System] as an [xyz.Scene]:
// the sun and its light, a textured sphere for each planet, the orbit paths,
// and the trails of the drifting planets after the sun is removed.
package xyzorrery

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/orrery/sim"
	"github.com/h2non/filetype"
)

// Options are the options for [Build].
type Options struct {

	// Textures is the filesystem to load planet textures from.
	// If nil, or if a texture is not found, the planet is shown
	// in its tint color.
	Textures fs.FS

	// LineWidth is the width of the orbit and trail lines.
	LineWidth float32
}

// View is the 3D view of a [sim.System] in an [xyz.Scene].
// [View.Sync] must be called after every change to the system.
type View struct {

	// Scene is the 3D scene.
	Scene *xyz.Scene

	// System is the simulation being viewed.
	System *sim.System

	// Sun is the sun solid, nil once it has been removed from the scene.
	Sun *xyz.Solid

	// Light is the point light at the position of the sun.
	// It stays in the scene after the sun is removed.
	Light *xyz.Point

	// Planets are the planet solids, in the order of [sim.System.Bodies].
	Planets []*xyz.Solid

	// Orbits are the orbit path solids, in the same order.
	Orbits []*xyz.Solid

	// Trails are the drift trail meshes, in the same order. They are
	// made up front so that no meshes are added to a live scene, and
	// only shown once the planets start drifting.
	Trails []*xyz.Lines

	// TrailSolids are the solids showing [View.Trails], added to
	// the scene when the sun is removed.
	TrailSolids []*xyz.Solid

	opts   Options
	trails *xyz.Group
}

// Build configures the given scene to view the given system.
func Build(sc *xyz.Scene, sys *sim.System, opts Options) *View {
	if opts.LineWidth == 0 {
		opts.LineWidth = 0.1
	}
	v := &View{Scene: sc, System: sys, opts: opts}

	sc.Background = colors.Uniform(colors.Black)
	xyz.NewAmbient(sc, "ambient", 0.1, xyz.DirectSun)
	v.Light = xyz.NewPoint(sc, "sun-light", 1, xyz.DirectSun)
	v.Light.Pos.Set(0, 0, 0)
	// reaches the outermost planet at about a quarter of its strength
	v.Light.LinDecay = 0.002
	v.Light.QuadDecay = 0.00001

	// looking straight down on the orbital plane
	sc.Camera.FOV = 45
	sc.Camera.Near = 0.1
	sc.Camera.Far = 1000
	sc.Camera.Pose.Pos.Set(0, 100, 0)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 0, -1))
	sc.SaveCamera("default")

	sunm := xyz.NewSphere(sc, "sun", sys.Sun.Radius, 32)
	v.Sun = xyz.NewSolid(sc).SetMesh(sunm).SetColor(colors.Yellow).SetEmissive(colors.Yellow)
	v.Sun.SetName("sun")

	orbits := xyz.NewGroup(sc)
	orbits.SetName("orbits")
	v.trails = xyz.NewGroup(sc)
	v.trails.SetName("trails")

	width := math32.Vec2(opts.LineWidth, opts.LineWidth)
	for _, bd := range sys.Bodies {
		nm := bd.Planet.Name
		pm := xyz.NewSphere(sc, nm, bd.Planet.Size, 32)
		pl := xyz.NewSolid(sc).SetMesh(pm).SetColor(bd.Planet.Color)
		pl.SetName(nm)
		if tx := v.texture(bd.Planet.Name, bd.Planet.Texture); tx != nil {
			pl.SetTexture(tx)
		}
		pl.Pose.Pos = bd.Pos
		v.Planets = append(v.Planets, pl)

		om := xyz.NewLines(sc, nm+"-orbit", bd.Orbit, width, xyz.OpenLines)
		ol := xyz.NewSolid(orbits).SetMesh(om).SetColor(colors.White)
		ol.SetName(nm + "-orbit")
		v.Orbits = append(v.Orbits, ol)

		tm := xyz.NewLines(sc, nm+"-trail", []math32.Vector3{bd.Pos, bd.Pos}, width, xyz.OpenLines)
		v.Trails = append(v.Trails, tm)
	}
	return v
}

// texture returns the texture for the given planet, or nil if
// it is not available.
func (v *View) texture(name, file string) xyz.Texture {
	if v.opts.Textures == nil || file == "" {
		return nil
	}
	if err := checkImage(v.opts.Textures, file); err != nil {
		slog.Warn("orrery: planet texture not available, using tint color", "planet", name, "error", err)
		return nil
	}
	return xyz.NewTextureFileFS(v.opts.Textures, v.Scene, name, file)
}

// checkImage returns an error if the given file can not be opened
// or does not start with the header of a known image format.
func checkImage(fsys fs.FS, file string) error {
	f, err := fsys.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 262) // what filetype needs to match any type
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	if !filetype.IsImage(head[:n]) {
		return fmt.Errorf("%s is not an image", file)
	}
	return nil
}

// Sync updates the scene from the current state of the system:
// planet positions and spins, sun membership, and drift trails.
func (v *View) Sync() {
	ss := v.System.Snapshot()
	for i, bs := range ss.Bodies {
		pl := v.Planets[i]
		pl.Pose.Pos = bs.Pos
		pl.Pose.SetAxisRotation(0, 1, 0, math32.RadToDeg(bs.Spin))
	}
	if !ss.SunInScene && v.Sun != nil {
		v.Sun.Delete()
		v.Sun = nil
	}
	if len(ss.Drifts) > 0 && v.TrailSolids == nil {
		v.showTrails()
	}
	for _, dr := range ss.Drifts {
		ln := v.Trails[dr.Body]
		ln.Points[0] = dr.Trail[0]
		ln.Points[1] = dr.Trail[1]
		v.Scene.SetMesh(ln)
	}
	v.Scene.SetNeedsUpdate()
}

// showTrails adds a solid for each trail mesh.
func (v *View) showTrails() {
	v.TrailSolids = make([]*xyz.Solid, len(v.Trails))
	for i, ln := range v.Trails {
		sd := xyz.NewSolid(v.trails).SetMesh(ln).SetColor(colors.White)
		sd.SetName(ln.Name)
		v.TrailSolids[i] = sd
	}
}
