// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/orrery/config"
	"cogentcore.org/orrery/termview"
	"github.com/gdamore/tcell/v2"
)

// Term shows the solar system from above in the terminal.
func Term(c *config.Config) error {
	sys, err := c.NewSystem()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("orrery: terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("orrery: terminal: %w", err)
	}

	// the screen owns stderr until it is finalized
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer func() {
		slog.SetDefault(prev)
		os.Stderr.Write(logs.Bytes())
	}()
	defer screen.Fini()

	v := termview.New(screen, sys)
	v.FPS = c.FPS
	if c.Sound {
		if ch := termview.NewChime(); ch != nil {
			v.Chime = ch
			defer ch.Close()
		}
	}
	v.Run()
	return nil
}
