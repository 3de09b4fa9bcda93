package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rps.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, game.VsComputer, cfg.Mode())
	assert.Equal(t, time.Second, cfg.RevealDelay())
	assert.True(t, cfg.ColorEnabled())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
game {
  mode = "friend"
  seed = 42
}

ui {
  reveal_delay_ms = -1
  log_level       = "debug"
  color           = false
}

stats {
  file = "scores.json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.VsFriend, cfg.Mode())
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, time.Duration(0), cfg.RevealDelay())
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "rps.log", cfg.UI.LogFile)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "scores.json", cfg.Stats.File)
}

func TestLoadFillsOmittedFields(t *testing.T) {
	path := writeConfig(t, `
game {}
ui {}
stats {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "computer", cfg.Game.Mode)
	assert.Equal(t, 1000, cfg.UI.RevealDelayMS)
	assert.Equal(t, "info", cfg.UI.LogLevel)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadOmittedBlocks(t *testing.T) {
	t.Run("only stats block", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `stats { file = "scores.json" }`))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		assert.Equal(t, "scores.json", cfg.Stats.File)
		assert.Equal(t, Default().Game, cfg.Game)
		assert.Equal(t, Default().UI, cfg.UI)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, Default(), cfg)
	})
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Game.Mode = "network"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}
