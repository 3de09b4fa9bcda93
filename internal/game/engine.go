package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrInvalidState is returned by SubmitMove once the round has resolved and
// before Reset has been called.
var ErrInvalidState = errors.New("round already resolved; call reset first")

// Status describes where a round stands after a submission.
type Status int

const (
	WaitingForOpponent Status = iota + 1
	Resolved
)

func (s Status) String() string {
	switch s {
	case WaitingForOpponent:
		return "waiting_for_opponent"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// SubmissionResult is returned by SubmitMove. Outcome is only set when
// Status is Resolved.
type SubmissionResult struct {
	Status  Status
	Outcome Outcome
}

// RoundState is a snapshot of the current round.
type RoundState struct {
	Mode         Mode
	PlayerMove   Move
	OpponentMove Move
	BothReady    bool
	Outcome      Outcome
}

// InProgress reports whether a move has been recorded but the round has not
// resolved yet.
func (s RoundState) InProgress() bool {
	return s.PlayerMove != NoMove && !s.BothReady
}

// Engine holds the game mode and the state of the current round.
type Engine struct {
	state       RoundState
	pendingMode *Mode
	chooser     Chooser
	logger      *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithChooser sets the source of the computer's moves.
func WithChooser(c Chooser) Option {
	return func(e *Engine) {
		e.chooser = c
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.WithPrefix("engine")
	}
}

// WithMode sets the starting mode. Unknown modes are ignored.
func WithMode(mode Mode) Option {
	return func(e *Engine) {
		if mode.Valid() {
			e.state.Mode = mode
		}
	}
}

// NewEngine creates an engine with an empty round. Without options it plays
// against a clock-seeded computer and discards logs.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.chooser == nil {
		e.chooser = NewSeededChooser()
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return e
}

// SetMode changes the mode. Once a move has been recorded the change is held
// back until Reset, so neither an in-flight move nor a resolved round is
// reinterpreted under a different mode. Unknown modes are ignored.
func (e *Engine) SetMode(mode Mode) {
	if !mode.Valid() {
		e.logger.Warn("Ignoring unknown mode", "mode", mode)
		return
	}
	if e.state.PlayerMove != NoMove {
		if mode == e.state.Mode {
			e.pendingMode = nil
			return
		}
		e.logger.Debug("Deferring mode change", "from", e.state.Mode, "to", mode)
		e.pendingMode = &mode
		return
	}
	e.pendingMode = nil
	e.state.Mode = mode
}

// PendingMode returns a mode change waiting for the next Reset.
func (e *Engine) PendingMode() (Mode, bool) {
	if e.pendingMode == nil {
		return e.state.Mode, false
	}
	return *e.pendingMode, true
}

// SubmitMove records a move and advances the round.
func (e *Engine) SubmitMove(move Move) (SubmissionResult, error) {
	if !move.Valid() {
		return SubmissionResult{}, fmt.Errorf("submit %s: %w", move, ErrUnknownMove)
	}
	if e.state.BothReady {
		return SubmissionResult{}, fmt.Errorf("submit %s: %w", move, ErrInvalidState)
	}

	switch {
	case e.state.Mode == VsComputer:
		e.state.PlayerMove = move
		e.state.OpponentMove = e.chooser.Choose()
	case e.state.PlayerMove == NoMove:
		e.state.PlayerMove = move
		e.logger.Debug("Waiting for opponent", "mode", e.state.Mode)
		return SubmissionResult{Status: WaitingForOpponent}, nil
	default:
		e.state.OpponentMove = move
	}

	return SubmissionResult{Status: Resolved, Outcome: e.resolve()}, nil
}

func (e *Engine) resolve() Outcome {
	e.state.BothReady = true
	e.state.Outcome = DetermineOutcome(e.state.PlayerMove, e.state.OpponentMove)
	e.logger.Debug("Round resolved",
		"mode", e.state.Mode,
		"player", e.state.PlayerMove,
		"opponent", e.state.OpponentMove,
		"outcome", e.state.Outcome)
	return e.state.Outcome
}

// Reset clears the round. The mode is kept, or replaced by a pending change.
func (e *Engine) Reset() {
	mode := e.state.Mode
	if e.pendingMode != nil {
		mode = *e.pendingMode
		e.pendingMode = nil
	}
	e.state = RoundState{Mode: mode}
}

// CurrentState returns a copy of the round state.
func (e *Engine) CurrentState() RoundState {
	return e.state
}
