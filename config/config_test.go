// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/cli"
	"cogentcore.org/orrery/sim"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, sim.DefaultParams(), c.Params())
	assert.Equal(t, "img", c.Textures)
	assert.Equal(t, 60, c.FPS)
	assert.True(t, c.Sound)
	assert.Empty(t, c.Catalog)

	sys, err := c.NewSystem()
	require.NoError(t, err)
	assert.Len(t, sys.Bodies, 8)
}

func TestCatalog(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "twins.toml")
	err := os.WriteFile(fn, []byte(`
[[planets]]
name = "Castor"
distance = 40
size = 2
color = "#ff0000"

[[planets]]
name = "Pollux"
distance = 80
size = 2
color = "#00ff00"
`), 0666)
	require.NoError(t, err)

	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Catalog = fn
	sys, err := c.NewSystem()
	require.NoError(t, err)
	require.Len(t, sys.Bodies, 2)
	assert.Equal(t, "Pollux", sys.Bodies[1].Planet.Name)
	assert.Equal(t, float32(8), sys.Bodies[1].Radius)

	c.Catalog = filepath.Join(t.TempDir(), "missing.toml")
	_, err = c.NewSystem()
	assert.Error(t, err)
}

func TestHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	err := os.WriteFile(filepath.Join(home, "solo.toml"), []byte("[[planets]]\nname = \"Solo\"\ndistance = 30\nsize = 1\n"), 0666)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(home, "img"), 0777))
	require.NoError(t, os.WriteFile(filepath.Join(home, "img", "solo.png"), []byte("x"), 0666))

	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Catalog = "~/solo.toml"
	ds, err := c.LoadCatalog()
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, "Solo", ds[0].Name)

	c.Textures = "~/img"
	fsys, err := c.TexturesFS()
	require.NoError(t, err)
	_, err = fs.Stat(fsys, "solo.png")
	assert.NoError(t, err)
}
