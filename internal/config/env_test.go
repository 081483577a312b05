package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv("TEST_CG_VIEWPORT", "INLINE")
	t.Setenv("TEST_CG_INLINE_HEIGHT", " 6 ")
	t.Setenv("TEST_CG_FPS", "12")
	t.Setenv("TEST_CG_SHOW_STATS", "false")
	t.Setenv("TEST_CG_THEME_ACCENT", "#00FF00")
	t.Setenv("TEST_CG_LOG_LEVEL", "warn")
	t.Setenv("TEST_CG_LOG_FILE", "")

	cfg := Default()
	cfg.Logging.File = "old.log"
	require.NoError(t, cfg.ApplyEnv("TEST_CG_"))

	assert.Equal(t, ViewportInline, cfg.Renderer.Viewport)
	assert.Equal(t, 6, cfg.Renderer.InlineHeight)
	assert.Equal(t, 12, cfg.Renderer.FPS)
	assert.False(t, cfg.Renderer.ShowStats)
	assert.Equal(t, "#00FF00", cfg.Theme.Accent)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File, "set but empty variables apply")
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnvConversionErrors(t *testing.T) {
	t.Setenv("TEST_CG_FPS", "fast")
	t.Setenv("TEST_CG_SHOW_STATS", "maybe")

	cfg := Default()
	err := cfg.ApplyEnv("TEST_CG_")
	require.ErrorIs(t, err, ErrInvalidConfig)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "TEST_CG_FPS", verr.Field)
	assert.Equal(t, 30, cfg.Renderer.FPS, "failed conversions leave the setting unchanged")
	assert.True(t, cfg.Renderer.ShowStats)
}

func TestApplyEnvNoVariables(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv("TEST_CG_UNUSED_"))
	assert.Equal(t, Default(), cfg)
}

func TestEnvNames(t *testing.T) {
	names := EnvNames(EnvPrefix)
	assert.Contains(t, names, "CELLGRID_FPS")
	assert.Contains(t, names, "CELLGRID_LOG_LEVEL")
	assert.IsIncreasing(t, names)
}
