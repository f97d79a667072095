// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"os"
	"strings"
	"testing"

	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds := Default()
	require.Len(t, ds, 8)
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}, names)
	assert.Equal(t, float32(149.6), ds[2].Distance)
	assert.Equal(t, colors.FromRGB(0, 0, 0xff), ds[2].Color)
	assert.NoError(t, Validate(ds))

	for i := 1; i < len(ds); i++ {
		assert.Greater(t, ds[i].Distance, ds[i-1].Distance)
	}

	// callers get their own copy
	ds[0].Name = "Vulcan"
	assert.Equal(t, "Mercury", Default()[0].Name)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(nil))

	d := Descriptor{Name: "", Distance: 0, Size: -1}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is empty")
	assert.Contains(t, err.Error(), "distance")
	assert.Contains(t, err.Error(), "size")
}

func TestOpenFS(t *testing.T) {
	ds, err := OpenFS(os.DirFS("testdata"), "inner.toml")
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Earth", ds[1].Name)
	assert.Equal(t, float32(149.6), ds[1].Distance)
	assert.Equal(t, colors.FromRGB(0x88, 0x88, 0x88), ds[0].Color)
	assert.Equal(t, "mercury.jpeg", ds[0].Texture)
	assert.Empty(t, ds[1].Texture)

	_, err = OpenFS(os.DirFS("testdata"), "bad.toml")
	assert.Error(t, err)

	_, err = OpenFS(os.DirFS("testdata"), "missing.toml")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	_, err := Read(strings.NewReader("[[planets]]\nname = \"X\"\ndistance = 1\nsize = 1\nmoons = 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	for _, bad := range []string{"#zzzzzz", "#12zzzz", "#1234", "blue"} {
		_, err = Read(strings.NewReader("[[planets]]\nname = \"X\"\ndistance = 1\nsize = 1\ncolor = \"" + bad + "\"\n"))
		assert.Error(t, err, bad)
	}

	ds, err := Read(strings.NewReader("[[planets]]\nname = \"X\"\ndistance = 1\nsize = 1\ncolor = \"#ff5733\"\n"))
	require.NoError(t, err)
	assert.Equal(t, colors.FromRGB(0xff, 0x57, 0x33), ds[0].Color)

	ds, err = Read(strings.NewReader("[[planets]]\nname = \"X\"\ndistance = 1\nsize = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, float32(2), ds[0].Size)
}
