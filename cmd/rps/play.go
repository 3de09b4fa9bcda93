package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rockpaperscissors/cmd/rps/shared"
	"github.com/lox/rockpaperscissors/internal/config"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/scoreboard"
	"github.com/lox/rockpaperscissors/internal/tui"
	"github.com/muesli/termenv"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config        string `kong:"default='rps.hcl',help='Path to HCL config file (optional)'"`
	Mode          string `kong:"help='Opponent: computer or friend'"`
	Seed          *int64 `kong:"help='Deterministic seed for the computer (optional)'"`
	RevealDelayMs *int   `kong:"help='Milliseconds before the result dialog appears'"`
	StatsFile     string `kong:"help='Load and save the scoreboard here'"`
	LogFile       string `kong:"help='Write logs to this file'"`
	NoColor       bool   `kong:"help='Disable colored output'"`
	Debug         bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !cfg.ColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logFile, err := shared.OpenLogFile(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := shared.SetupLogger(logFile, cfg.UI.LogLevel, "rps")
	if err != nil {
		return err
	}

	chooser := game.NewSeededChooser()
	if cfg.Game.Seed != 0 {
		logger.Info("Using deterministic seed", "seed", cfg.Game.Seed)
		chooser = game.NewRandomChooser(cfg.Game.Seed)
	}

	board := scoreboard.New()
	if cfg.Stats.File != "" {
		if board, err = scoreboard.Load(cfg.Stats.File); err != nil {
			return err
		}
	}

	engine := game.NewEngine(
		game.WithMode(cfg.Mode()),
		game.WithChooser(chooser),
		game.WithLogger(logger),
	)
	model := tui.New(engine, board, tui.Options{
		RevealDelay: cfg.RevealDelay(),
		Clock:       quartz.NewReal(),
		Logger:      logger,
	})

	logger.Info("Starting game",
		"mode", cfg.Mode(),
		"reveal_delay", cfg.RevealDelay(),
		"stats_file", cfg.Stats.File)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	runErr := tui.Run(ctx, model)
	return saveBoard(board, cfg.Stats.File, runErr, logger)
}

// saveBoard persists the scoreboard whether or not the session ended
// cleanly, then reports the session error first.
func saveBoard(board *scoreboard.Board, path string, runErr error, logger *log.Logger) error {
	if path == "" {
		return runErr
	}
	if err := board.Save(path); err != nil {
		logger.Error("Failed to save scoreboard", "path", path, "error", err)
		return errors.Join(runErr, fmt.Errorf("failed to save scoreboard: %w", err))
	}
	logger.Info("Saved scoreboard", "path", path, "rounds", board.Totals().Rounds())
	return runErr
}

// applyOverrides lets command line flags win over the config file
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.RevealDelayMs != nil {
		cfg.UI.RevealDelayMS = *c.RevealDelayMs
		if cfg.UI.RevealDelayMS == 0 {
			cfg.UI.RevealDelayMS = -1
		}
	}
	if c.StatsFile != "" {
		cfg.Stats.File = c.StatsFile
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		off := false
		cfg.UI.Color = &off
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
