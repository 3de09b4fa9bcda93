package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/rockpaperscissors/cmd/rps/shared"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/simulator"
	"github.com/muesli/termenv"
)

// SimulateCmd plays headless rounds against the computer
type SimulateCmd struct {
	Rounds  int    `kong:"default='10000',help='Number of rounds to play'"`
	Workers int    `kong:"default='4',help='Parallel workers'"`
	Seed    *int64 `kong:"help='Deterministic seed (optional)'"`
	NoColor bool   `kong:"help='Disable colored output'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

func (c *SimulateCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := "info"
	if c.Debug {
		level = "debug"
	}
	logger, err := shared.SetupLogger(os.Stderr, level, "simulate")
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting simulation", "rounds", c.Rounds, "workers", c.Workers, "seed", seed)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	report, err := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Workers: c.Workers,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%d rounds vs computer (seed %d)", report.Rounds, seed)))
	fmt.Println(renderTally(report.Board.Summary(game.VsComputer)))

	moves := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Move", "Player", "Computer", "Computer share")
	for _, m := range game.Moves() {
		moves.Row(m.String(),
			fmt.Sprint(report.PlayerMoves[m]),
			fmt.Sprint(report.OpponentMoves[m]),
			fmt.Sprintf("%.2f%%", 100*report.OpponentShare(m)))
	}
	fmt.Println(moves.Render())
	fmt.Printf("Elapsed: %s\n", report.Elapsed.Round(time.Millisecond))
	return nil
}
