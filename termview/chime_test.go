// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeStreamer(t *testing.T) {
	c := &Chime{rate: beep.SampleRate(44100)}
	s, err := c.streamer()
	require.NoError(t, err)

	buf := make([][2]float64, 1024)
	total := 0
	loud := false
	for range 1000 {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] != 0 {
				loud = true
			}
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, 3*c.rate.N(120*time.Millisecond), total)
	assert.True(t, loud)
}

func TestChimeStreamerBadRate(t *testing.T) {
	// a tone at or above half the sample rate can not be made
	c := &Chime{rate: beep.SampleRate(1000)}
	_, err := c.streamer()
	assert.Error(t, err)
}
