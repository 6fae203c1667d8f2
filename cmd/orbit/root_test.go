package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/orbit"
)

// parse builds a fresh command tree and parses args into it.
func parse(t *testing.T, args ...string) (*cobra.Command, *flags) {
	t.Helper()
	f := &flags{}
	cmd := newRootCmd(f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cmd, f := parse(t,
		"--variant", "window",
		"--width", "640",
		"--orbit-period", "16m40s",
		"--watch",
	)

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, orbit.VariantWindow, cfg.Variant)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "16m40s", cfg.Camera.OrbitPeriod)
	assert.True(t, cfg.Shaders.Watch)
}

func TestLoadConfigWithoutFlagsIsDefault(t *testing.T) {
	cmd, f := parse(t)

	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, orbit.DefaultConfig(), cfg)
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	cmd, f := parse(t, "--variant", "cube")

	_, err := loadConfig(cmd, f)
	assert.ErrorContains(t, err, "cube")
}

func TestCheckConfig(t *testing.T) {
	t.Run("window variant uses the triangle shaders", func(t *testing.T) {
		cfg := orbit.DefaultConfig()
		cfg.Variant = orbit.VariantWindow

		got, err := checkConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, orbit.VariantTriangle, got.Variant)
		assert.True(t, got.Window.Hidden)
		assert.Equal(t, "shaders/triangle.vert", got.VertexShader())
	})

	t.Run("orbit variant keeps its shaders", func(t *testing.T) {
		got, err := checkConfig(orbit.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "shaders/orbit.vert", got.VertexShader())
	})

	t.Run("missing fragment", func(t *testing.T) {
		cfg := orbit.DefaultConfig()
		cfg.Variant = orbit.VariantWindow
		cfg.Shaders.Fragment = ""
		require.NoError(t, cfg.Validate(), "window variant alone needs no shaders")

		_, err := checkConfig(cfg)
		assert.ErrorContains(t, err, "fragment")
	})
}
