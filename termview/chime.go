// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Chime plays a short falling tone on the speaker.
type Chime struct {
	rate beep.SampleRate
}

// NewChime initializes the speaker and returns a new [Chime].
// Audio is optional: if the speaker can not be initialized, the
// error is logged and nil is returned.
func NewChime() *Chime {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		slog.Warn("orrery: audio not available", "error", err)
		return nil
	}
	return &Chime{rate: rate}
}

// Play plays the chime without waiting for it to finish.
func (c *Chime) Play() {
	s, err := c.streamer()
	if errors.Log(err) != nil {
		return
	}
	speaker.Play(s)
}

// streamer returns the chime: three falling tones.
func (c *Chime) streamer() (beep.Streamer, error) {
	var tones []beep.Streamer
	for _, freq := range []float64{660, 440, 220} {
		sine, err := generators.SineTone(c.rate, freq)
		if err != nil {
			return nil, err
		}
		tones = append(tones, beep.Take(c.rate.N(120*time.Millisecond), sine))
	}
	return beep.Seq(tones...), nil
}

// Close closes the speaker.
func (c *Chime) Close() {
	speaker.Close()
}
