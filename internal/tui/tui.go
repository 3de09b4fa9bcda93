package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/scoreboard"
)

const promptMessage = "Choose your move!"

// Options configures the TUI model
type Options struct {
	// RevealDelay is how long the result dialog waits after a round
	// resolves. The outcome itself is available immediately.
	RevealDelay time.Duration
	Clock       quartz.Clock
	Logger      *log.Logger
}

// revealMsg asks the model to show the result dialog for a round
type revealMsg struct {
	round int
}

// Model is the Bubble Tea model for the game screen. It drives a
// game.Engine and owns every presentation decision: glyphs, when moves are
// revealed and when the result dialog is shown.
type Model struct {
	engine *game.Engine
	board  *scoreboard.Board
	clock  quartz.Clock
	logger *log.Logger

	keys keyMap
	help help.Model

	revealDelay time.Duration
	message     string
	showResult  bool
	round       int // bumped on reset so stale reveal timers are ignored
	quitting    bool
}

// New creates a model playing on engine and recording results into board
func New(engine *game.Engine, board *scoreboard.Board, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if board == nil {
		board = scoreboard.New()
	}

	return &Model{
		engine:      engine,
		board:       board,
		clock:       opts.Clock,
		logger:      opts.Logger.WithPrefix("tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		revealDelay: opts.RevealDelay,
		message:     promptMessage,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case revealMsg:
		if msg.round == m.round && m.engine.CurrentState().BothReady {
			m.showResult = true
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rock):
			return m, m.submit(game.Rock)
		case key.Matches(msg, m.keys.Paper):
			return m, m.submit(game.Paper)
		case key.Matches(msg, m.keys.Scissors):
			return m, m.submit(game.Scissors)
		case key.Matches(msg, m.keys.Mode):
			m.toggleMode()
		case key.Matches(msg, m.keys.PlayAgain):
			m.playAgain()
		}
	}

	return m, nil
}

func (m *Model) submit(move game.Move) tea.Cmd {
	res, err := m.engine.SubmitMove(move)
	if errors.Is(err, game.ErrInvalidState) {
		m.message = "Round over, press enter to play again"
		return nil
	}
	if err != nil {
		m.logger.Error("Failed to submit move", "move", move, "error", err)
		m.message = err.Error()
		return nil
	}

	state := m.engine.CurrentState()
	m.logger.Debug("Move submitted", "mode", state.Mode, "status", res.Status)

	if res.Status == game.WaitingForOpponent {
		m.message = "Waiting for friend to choose..."
		return nil
	}

	m.board.Record(state.Mode, res.Outcome)
	m.message = outcomeMessage(res.Outcome)
	return m.scheduleReveal()
}

// scheduleReveal arms the cosmetic delay before the result dialog. The timer
// is created here rather than inside the command so that it exists as soon
// as Update returns.
func (m *Model) scheduleReveal() tea.Cmd {
	if m.revealDelay <= 0 {
		m.showResult = true
		return nil
	}

	round := m.round
	timer := m.clock.NewTimer(m.revealDelay, "tui", "reveal")
	return func() tea.Msg {
		<-timer.C
		return revealMsg{round: round}
	}
}

func (m *Model) toggleMode() {
	next, _ := m.engine.PendingMode()
	next = next.Toggle()
	m.engine.SetMode(next)
	m.logger.Debug("Mode toggled", "mode", next)
}

func (m *Model) playAgain() {
	// Only a resolved round can be reset, a hidden first move is never dropped
	if !m.engine.CurrentState().BothReady {
		return
	}
	m.engine.Reset()
	m.round++
	m.showResult = false
	m.message = promptMessage
}

// Board returns the scoreboard results are recorded into
func (m *Model) Board() *scoreboard.Board {
	return m.board
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.engine.CurrentState()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Rock Paper Scissors"))
	b.WriteString("\n\n")
	b.WriteString(m.renderMode(state))
	b.WriteString("\n\n")
	b.WriteString(m.renderPlayers(state))
	b.WriteString("\n\n")
	b.WriteString(m.renderMessage(state))
	b.WriteString("\n\n")

	if m.showResult {
		b.WriteString(m.renderDialog(state))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderScore(state.Mode))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) renderMode(state game.RoundState) string {
	label := "Computer"
	if state.Mode == game.VsFriend {
		label = "Friend"
	}
	out := "Playing against: " + ModeStyle.Render(label)
	if pending, ok := m.engine.PendingMode(); ok {
		out += PendingStyle.Render(fmt.Sprintf("  (switching to %s after this round)", pending))
	}
	return out
}

func (m *Model) renderPlayers(state game.RoundState) string {
	opponentLabel := "Computer"
	if state.Mode == game.VsFriend {
		opponentLabel = "Friend"
	}

	// The first player's move stays hidden from the friend until both are in
	player := Placeholder
	if state.BothReady || (state.Mode == game.VsComputer && state.PlayerMove != game.NoMove) {
		player = Glyph(state.PlayerMove)
	}
	opponent := Placeholder
	if state.BothReady {
		opponent = Glyph(state.OpponentMove)
	}

	column := func(label, glyph string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			LabelStyle.Render(label),
			GlyphStyle.Render(glyph))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column("You", player),
		"      ",
		column(opponentLabel, opponent))
}

func (m *Model) renderMessage(state game.RoundState) string {
	if !state.BothReady {
		return MessageStyle.Render(m.message)
	}
	switch state.Outcome {
	case game.Win:
		return WinStyle.Render(m.message)
	case game.Lose:
		return LoseStyle.Render(m.message)
	default:
		return DrawStyle.Render(m.message)
	}
}

func (m *Model) renderDialog(state game.RoundState) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		LabelStyle.Render("Game Over"),
		"",
		outcomeMessage(state.Outcome),
		"",
		InfoStyle.Render("enter: Play Again"))
	return DialogStyle.Render(body)
}

func (m *Model) renderScore(mode game.Mode) string {
	t := m.board.Summary(mode)
	return InfoStyle.Render(fmt.Sprintf("W %d  L %d  D %d  streak %+d  best %d",
		t.Wins, t.Losses, t.Draws, t.Streak, t.BestStreak))
}
