package config

import (
	"testing"

	"github.com/meghashyamc/debugview/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvFile(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 480, cfg.GetWindowHeight())
	assert.Equal(t, "DebugView test", cfg.GetWindowTitle())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 16, cfg.GetLogCapacity())
	assert.Equal(t, geometry.Vector{X: 0, Y: 0}, cfg.GetLineStart())
	assert.Equal(t, geometry.Vector{X: 4, Y: 4}, cfg.GetLineEnd())
	assert.Equal(t, geometry.Vector{X: 0, Y: 4}, cfg.GetQueryPoint())
	assert.Equal(t, 2.0, cfg.GetDragStep())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("missing")
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.GetWindowWidth())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Equal(t, ".", cfg.GetDataDir())
	assert.Equal(t, "scene.yaml", cfg.GetSceneFilename())
	assert.Equal(t, geometry.Vector{X: 500, Y: 500}, cfg.GetLineStart())
	assert.Equal(t, 10.0, cfg.GetHandleRadius())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("SCENE_FILENAME", "other.yaml")
	t.Setenv("LINE_END_X", "0")
	t.Setenv("LINE_END_Y", "-3.5")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.GetWindowWidth())
	assert.Equal(t, "other.yaml", cfg.GetSceneFilename())
	assert.Equal(t, geometry.Vector{X: 0, Y: -3.5}, cfg.GetLineEnd())
}

func TestLoadUsesEnvVariableForEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.GetWindowWidth())
}
