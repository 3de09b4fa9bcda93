package main

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/rockpaperscissors/internal/config"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayApplyOverrides(t *testing.T) {
	seed := int64(7)
	delay := 0
	cmd := &PlayCmd{
		Mode:          "friend",
		Seed:          &seed,
		RevealDelayMs: &delay,
		StatsFile:     "scores.json",
		NoColor:       true,
		Debug:         true,
	}

	cfg := config.Default()
	cmd.applyOverrides(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.VsFriend, cfg.Mode())
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Zero(t, cfg.RevealDelay())
	assert.Equal(t, "scores.json", cfg.Stats.File)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "debug", cfg.UI.LogLevel)
}

func TestPlayNoOverridesKeepsConfig(t *testing.T) {
	cfg := config.Default()
	(&PlayCmd{}).applyOverrides(cfg)
	assert.Equal(t, config.Default(), cfg)
}

func TestStatsReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	b := scoreboard.New()
	b.Record(game.VsComputer, game.Win)
	require.NoError(t, b.Save(path))

	require.NoError(t, (&StatsCmd{StatsFile: path, Reset: true}).Run())

	loaded, err := scoreboard.Load(path)
	require.NoError(t, err)
	assert.Zero(t, loaded.Totals().Rounds())
}

func TestStatsRequiresFile(t *testing.T) {
	err := (&StatsCmd{Config: filepath.Join(t.TempDir(), "missing.hcl")}).Run()
	assert.ErrorContains(t, err, "no scoreboard file")
}

func TestTallyRow(t *testing.T) {
	row := tallyRow("computer", scoreboard.Tally{Wins: 1, Losses: 1, Draws: 2, Streak: -1, BestStreak: 1})
	assert.Equal(t, []string{"computer", "4", "1", "1", "2", "25.0%", "-1", "1"}, row)
}

func TestSaveBoardAfterFailedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	logger := log.NewWithOptions(io.Discard, log.Options{})
	board := scoreboard.New()
	board.Record(game.VsFriend, game.Lose)
	board.Record(game.VsFriend, game.Win)

	runErr := errors.New("terminal went away")
	err := saveBoard(board, path, runErr, logger)
	assert.ErrorIs(t, err, runErr)

	loaded, err := scoreboard.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Friend.Rounds())
}

func TestSaveBoardWithoutFile(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	assert.NoError(t, saveBoard(scoreboard.New(), "", nil, logger))
}

func TestSimulateRun(t *testing.T) {
	seed := int64(11)
	err := (&SimulateCmd{Rounds: 10, Workers: 2, Seed: &seed, NoColor: true}).Run()
	assert.NoError(t, err)
}

func TestSimulateRejectsNegativeRounds(t *testing.T) {
	seed := int64(11)
	err := (&SimulateCmd{Rounds: -1, Workers: 1, Seed: &seed, NoColor: true}).Run()
	assert.ErrorContains(t, err, "simulation failed")
}

func TestRenderTally(t *testing.T) {
	out := renderTally(scoreboard.Tally{Wins: 3, Losses: 1, Draws: 0, Streak: 2, BestStreak: 2})
	for _, want := range []string{"Rounds", "Win rate", "4", "3", "75.0%"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "+2")
}
