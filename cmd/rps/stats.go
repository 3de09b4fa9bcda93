package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/rockpaperscissors/internal/scoreboard"
)

// StatsCmd shows the saved scoreboard
type StatsCmd struct {
	Config    string `kong:"default='rps.hcl',help='Path to HCL config file (optional)'"`
	StatsFile string `kong:"help='Scoreboard file (defaults to stats.file from the config)'"`
	Reset     bool   `kong:"help='Clear the scoreboard'"`
}

func (c *StatsCmd) Run() error {
	path := c.StatsFile
	if path == "" {
		cfg, err := loadConfig(c.Config)
		if err != nil {
			return err
		}
		path = cfg.Stats.File
	}
	if path == "" {
		return fmt.Errorf("no scoreboard file: pass --stats-file or set stats.file in the config")
	}

	if c.Reset {
		if err := scoreboard.New().Save(path); err != nil {
			return err
		}
		fmt.Printf("Scoreboard %s cleared\n", path)
		return nil
	}

	board, err := scoreboard.Load(path)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Scoreboard " + path))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Opponent", "Rounds", "Wins", "Losses", "Draws", "Win rate", "Streak", "Best")
	t.Row(tallyRow("computer", board.Computer)...)
	t.Row(tallyRow("friend", board.Friend)...)
	fmt.Println(t.Render())
	return nil
}

func tallyRow(label string, t scoreboard.Tally) []string {
	return []string{
		label,
		fmt.Sprint(t.Rounds()),
		fmt.Sprint(t.Wins),
		fmt.Sprint(t.Losses),
		fmt.Sprint(t.Draws),
		fmt.Sprintf("%.1f%%", 100*t.WinRate()),
		fmt.Sprintf("%+d", t.Streak),
		fmt.Sprint(t.BestStreak),
	}
}

// renderTally formats a single tally as a one-row table
func renderTally(t scoreboard.Tally) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rounds", "Wins", "Losses", "Draws", "Win rate").
		Row(tallyRow("", t)[1:6]...).
		Render()
}
