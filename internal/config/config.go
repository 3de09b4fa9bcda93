package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/rockpaperscissors/internal/game"
)

// Config represents the complete game configuration.
// Every block is optional; Load fills omitted ones from Default.
type Config struct {
	Game  *GameSettings  `hcl:"game,block"`
	UI    *UISettings    `hcl:"ui,block"`
	Stats *StatsSettings `hcl:"stats,block"`
}

// GameSettings contains rules-related settings
type GameSettings struct {
	Mode string `hcl:"mode,optional"`
	// Seed fixes the computer's move sequence; 0 seeds from the clock.
	Seed int64 `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	// RevealDelayMS delays the result dialog. Negative means no delay.
	RevealDelayMS int    `hcl:"reveal_delay_ms,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
	Color         *bool  `hcl:"color,optional"`
}

// StatsSettings controls the persisted scoreboard
type StatsSettings struct {
	File string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		Game: &GameSettings{
			Mode: "computer",
		},
		UI: &UISettings{
			RevealDelayMS: 1000,
			LogLevel:      "info",
			LogFile:       "rps.log",
			Color:         &color,
		},
		Stats: &StatsSettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Game == nil {
		cfg.Game = defaults.Game
	}
	if cfg.UI == nil {
		cfg.UI = defaults.UI
	}
	if cfg.Stats == nil {
		cfg.Stats = defaults.Stats
	}
	if cfg.Game.Mode == "" {
		cfg.Game.Mode = defaults.Game.Mode
	}
	if cfg.UI.RevealDelayMS == 0 {
		cfg.UI.RevealDelayMS = defaults.UI.RevealDelayMS
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}
	if cfg.UI.Color == nil {
		cfg.UI.Color = defaults.UI.Color
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// Mode returns the configured starting mode
func (c *Config) Mode() game.Mode {
	mode, _ := game.ParseMode(c.Game.Mode)
	return mode
}

// RevealDelay returns the cosmetic delay before the result dialog
func (c *Config) RevealDelay() time.Duration {
	if c.UI.RevealDelayMS < 0 {
		return 0
	}
	return time.Duration(c.UI.RevealDelayMS) * time.Millisecond
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}
