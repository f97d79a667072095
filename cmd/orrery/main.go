// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery shows an animated solar system: a sun with eight planets
// on circular orbits, and a button that removes the sun so that the planets
// drift off sideways. It runs as a 3D GUI app by default, or in the terminal
// with the term command.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/orrery/config"
)

func main() {
	opts := cli.DefaultOptions("orrery", "Orrery shows an animated solar system.")
	cli.Run(opts, &config.Config{},
		&cli.Cmd[*config.Config]{Func: GUI, Name: "gui", Doc: "GUI shows the solar system in a 3D window.", Root: true},
		&cli.Cmd[*config.Config]{Func: Term, Name: "term", Doc: "Term shows the solar system from above in the terminal."},
	)
}
