package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMove is returned when input does not name a playable move.
var ErrUnknownMove = errors.New("unknown move")

// Move is one of Rock, Paper or Scissors. The zero value NoMove means no
// move has been recorded.
type Move int

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
)

var moves = []Move{Rock, Paper, Scissors}

// Moves returns the playable moves in a stable order.
func Moves() []Move {
	out := make([]Move, len(moves))
	copy(out, moves)
	return out
}

// Valid reports whether m is a playable move.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

func (m Move) String() string {
	switch m {
	case NoMove:
		return "none"
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// ParseMove maps user input onto a Move. It accepts full names and single
// letter shorthands, ignoring case and surrounding space.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	}
	return NoMove, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Beats reports whether a defeats b: rock smashes scissors, scissors cut
// paper and paper covers rock.
func Beats(a, b Move) bool {
	switch a {
	case Rock:
		return b == Scissors
	case Scissors:
		return b == Paper
	case Paper:
		return b == Rock
	}
	return false
}

// Outcome is the result of a round from the player's perspective. The zero
// value NoOutcome means the round is unresolved.
type Outcome int

const (
	NoOutcome Outcome = iota
	Win
	Lose
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// DetermineOutcome scores player against opponent.
func DetermineOutcome(player, opponent Move) Outcome {
	switch {
	case player == opponent:
		return Draw
	case Beats(player, opponent):
		return Win
	default:
		return Lose
	}
}

// Mode selects who the player is up against.
type Mode int

const (
	VsComputer Mode = iota
	VsFriend
)

func (m Mode) String() string {
	switch m {
	case VsComputer:
		return "computer"
	case VsFriend:
		return "friend"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == VsComputer || m == VsFriend
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == VsFriend {
		return VsComputer
	}
	return VsFriend
}

// ParseMode maps "computer" or "friend" onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "computer", "cpu", "":
		return VsComputer, nil
	case "friend":
		return VsFriend, nil
	}
	return VsComputer, fmt.Errorf("unknown mode %q (want computer or friend)", s)
}
