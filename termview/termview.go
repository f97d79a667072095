// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview provides a top-down view of a [sim.System] in a
// terminal, for systems without a GPU.
package termview

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/sim"
	"github.com/gdamore/tcell/v2"
)

const (
	sunGlyph   = '☼'
	orbitGlyph = '·'
	trailGlyph = '-'
)

// View draws a [sim.System] onto a [tcell.Screen], looking down onto
// the orbital plane with +X to the right and +Z down, as in the 3D view.
type View struct {

	// Screen is the screen to draw on.
	Screen tcell.Screen

	// System is the simulation being viewed.
	System *sim.System

	// FPS is the number of frames per second in [View.Run].
	FPS int

	// Chime is played when the sun is removed, if non-nil.
	Chime *Chime
}

// New returns a new [View] of the given system on the given
// screen, which must already be initialized.
func New(screen tcell.Screen, sys *sim.System) *View {
	return &View{Screen: screen, System: sys, FPS: 60}
}

// Project returns the screen cell for the given scene position.
// The radius is compressed by a square root so that the inner planets
// are not lost in the sun while the outermost orbit still fits;
// the direction is kept. The last screen row is kept for the status line.
// ok is false if the position is off screen.
func (v *View) Project(p math32.Vector3) (x, y int, ok bool) {
	w, h := v.Screen.Size()
	h-- // status line
	if w < 3 || h < 3 {
		return 0, 0, false
	}
	cx, cy := w/2, h/2
	rmax := v.System.MaxRadius()
	r := math32.Sqrt(p.X*p.X + p.Z*p.Z)
	if r > 0 && rmax > 0 {
		k := math32.Sqrt(r/rmax) / r
		p.X *= k
		p.Z *= k
	}
	// cells are about twice as tall as they are wide
	cols := min(float32(cx-1), float32(cy-1)*2)
	x = cx + int(math32.Round(p.X*cols))
	y = cy + int(math32.Round(p.Z*cols/2))
	ok = x >= 0 && x < w && y >= 0 && y < h
	return
}

func (v *View) put(p math32.Vector3, r rune, style tcell.Style) {
	if x, y, ok := v.Project(p); ok {
		v.Screen.SetContent(x, y, r, nil, style)
	}
}

// line draws a straight line of the given rune between two positions.
func (v *View) line(a, b math32.Vector3, r rune, style tcell.Style) {
	ax, ay, _ := v.Project(a)
	bx, by, _ := v.Project(b)
	n := max(abs(bx-ax), abs(by-ay))
	for i := 0; i <= n; i++ {
		t := float32(1)
		if n > 0 {
			t = float32(i) / float32(n)
		}
		v.put(a.Lerp(b, t), r, style)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Draw draws the current state of the system and shows it.
func (v *View) Draw() {
	s := v.Screen
	s.Clear()
	ss := v.System.Snapshot()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, bd := range v.System.Bodies {
		for _, p := range bd.Orbit {
			v.put(p, orbitGlyph, dim)
		}
	}
	for _, dr := range ss.Drifts {
		v.line(dr.Trail[0], dr.Trail[1], trailGlyph, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	if ss.SunInScene {
		v.put(math32.Vector3{}, sunGlyph, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
	for i, bd := range v.System.Bodies {
		c := bd.Planet.Color
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Bold(true)
		glyph, _ := utf8.DecodeRuneInString(bd.Planet.Name)
		v.put(ss.Bodies[i].Pos, glyph, style)
	}
	v.status(ss)
	s.Show()
}

// status draws the status line on the last row.
func (v *View) status(ss sim.Snapshot) {
	w, h := v.Screen.Size()
	msg := " [b] Remove Sun   [q] Quit"
	if !ss.SunInScene {
		frames := 0
		if len(ss.Drifts) > 0 {
			frames = ss.Drifts[0].Frames
		}
		msg = fmt.Sprintf(" Sun removed: drifting for %d frames   [q] Quit", frames)
	}
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range msg {
		if x >= w {
			break
		}
		v.Screen.SetContent(x, h-1, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.Screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// RemoveSun does the orbit break on the system, playing the chime
// the first time.
func (v *View) RemoveSun() {
	if v.System.Break() && v.Chime != nil {
		v.Chime.Play()
	}
}

// HandleEvent handles the given screen event, returning false
// if the view should quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			v.RemoveSun()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'b', 'B':
				v.RemoveSun()
			}
		}
	case *tcell.EventResize:
		v.Screen.Sync()
	}
	return true
}

// pollEvents forwards screen events on the returned channel, which has
// the given buffer size, until the screen is finalized or done is closed.
// The channel is closed when forwarding stops.
func (v *View) pollEvents(done <-chan struct{}, size int) <-chan tcell.Event {
	events := make(chan tcell.Event, size)
	go func() {
		defer close(events)
		for {
			ev := v.Screen.PollEvent()
			if ev == nil { // screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Run runs the view until the user quits: every frame it advances
// the system by the elapsed time since Run was called and draws it.
func (v *View) Run() {
	fps := max(v.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := v.pollEvents(done, 100)

	start := time.Now()
	slog.Info("orrery: terminal view running", "fps", fps)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.System.Frame(time.Since(start))
			v.Draw()
		}
	}
}
