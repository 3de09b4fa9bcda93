package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the model full screen until the player quits or ctx is done.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(m, opts...)

	m.logger.Info("Starting TUI")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			m.logger.Info("TUI stopped", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("run TUI: %w", err)
	}
	m.logger.Info("TUI exited")
	return nil
}
