// Package scoreboard keeps a running tally of resolved rounds and persists it
// between sessions.
package scoreboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lox/rockpaperscissors/internal/fileutil"
	"github.com/lox/rockpaperscissors/internal/game"
)

// Tally counts outcomes for one mode. Streak is positive for consecutive
// wins and negative for consecutive losses; a draw resets it.
type Tally struct {
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Draws      int `json:"draws"`
	Streak     int `json:"streak"`
	BestStreak int `json:"best_streak"`
}

// Rounds returns the number of recorded rounds.
func (t Tally) Rounds() int {
	return t.Wins + t.Losses + t.Draws
}

// WinRate returns wins as a fraction of all rounds.
func (t Tally) WinRate() float64 {
	if t.Rounds() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds())
}

func (t *Tally) record(o game.Outcome) {
	switch o {
	case game.Win:
		t.Wins++
		if t.Streak < 0 {
			t.Streak = 0
		}
		t.Streak++
		if t.Streak > t.BestStreak {
			t.BestStreak = t.Streak
		}
	case game.Lose:
		t.Losses++
		if t.Streak > 0 {
			t.Streak = 0
		}
		t.Streak--
	case game.Draw:
		t.Draws++
		t.Streak = 0
	}
}

func (t *Tally) add(o Tally) {
	t.Wins += o.Wins
	t.Losses += o.Losses
	t.Draws += o.Draws
	if o.BestStreak > t.BestStreak {
		t.BestStreak = o.BestStreak
	}
}

// Board holds a tally per mode. It is not safe for concurrent use.
type Board struct {
	Computer Tally `json:"computer"`
	Friend   Tally `json:"friend"`
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Record adds a resolved outcome for mode. Unresolved outcomes are ignored.
func (b *Board) Record(mode game.Mode, o game.Outcome) {
	if o == game.NoOutcome {
		return
	}
	b.tally(mode).record(o)
}

// Summary returns the tally for mode.
func (b *Board) Summary(mode game.Mode) Tally {
	return *b.tally(mode)
}

// Totals sums both modes. Streak is not meaningful across modes and is left
// at zero.
func (b *Board) Totals() Tally {
	var t Tally
	t.add(b.Computer)
	t.add(b.Friend)
	return t
}

// Merge folds other into b. Streaks from other are not carried over.
func (b *Board) Merge(other *Board) {
	b.Computer.add(other.Computer)
	b.Friend.add(other.Friend)
}

func (b *Board) tally(mode game.Mode) *Tally {
	if mode == game.VsFriend {
		return &b.Friend
	}
	return &b.Computer
}

// Load reads a board from path. A missing file yields an empty board.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scoreboard: %w", err)
	}

	b := New()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("decode scoreboard %s: %w", path, err)
	}
	return b, nil
}

// Save writes the board to path atomically.
func (b *Board) Save(path string) error {
	if err := fileutil.WriteJSONAtomic(path, b, 0644); err != nil {
		return fmt.Errorf("save scoreboard: %w", err)
	}
	return nil
}
