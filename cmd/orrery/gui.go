// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/xyzorrery"
)

// GUI shows the solar system in a 3D window.
func GUI(c *config.Config) error {
	sys, err := c.NewSystem()
	if err != nil {
		return err
	}
	textures, err := c.TexturesFS()
	if err != nil {
		return err
	}
	b := core.NewBody("Orrery")

	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sw := se.SceneWidget()
	v := xyzorrery.Build(se.SceneXYZ(), sys, xyzorrery.Options{Textures: textures})

	core.NewButton(b).SetText("Remove Sun").SetIcon(icons.FlashlightOff).
		SetTooltip("Remove the sun, so that the planets drift off their orbits").
		OnClick(func(e events.Event) {
			sys.Break()
			v.Sync()
			sw.NeedsRender()
		})

	start := time.Now()
	sw.Animate(func(a *core.Animation) {
		sys.Frame(time.Since(start))
		v.Sync()
		sw.NeedsRender()
	})

	slog.Info("orrery: starting", "planets", len(sys.Bodies))
	b.RunMainWindow()
	return nil
}
