package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeats(t *testing.T) {
	wins := map[[2]Move]bool{
		{Rock, Scissors}:  true,
		{Scissors, Paper}: true,
		{Paper, Rock}:     true,
	}

	for _, a := range Moves() {
		for _, b := range Moves() {
			assert.Equal(t, wins[[2]Move{a, b}], Beats(a, b), "Beats(%s, %s)", a, b)
		}
	}
}

func TestDetermineOutcome(t *testing.T) {
	t.Run("equal moves draw", func(t *testing.T) {
		for _, m := range Moves() {
			assert.Equal(t, Draw, DetermineOutcome(m, m))
		}
	})

	t.Run("distinct moves are antisymmetric", func(t *testing.T) {
		for _, a := range Moves() {
			for _, b := range Moves() {
				if a == b {
					continue
				}
				ab := DetermineOutcome(a, b)
				ba := DetermineOutcome(b, a)
				assert.ElementsMatch(t, []Outcome{Win, Lose}, []Outcome{ab, ba}, "%s vs %s", a, b)
			}
		}
	})

	tests := []struct {
		player, opponent Move
		want             Outcome
	}{
		{Rock, Scissors, Win},
		{Rock, Paper, Lose},
		{Paper, Rock, Win},
		{Paper, Scissors, Lose},
		{Scissors, Paper, Win},
		{Scissors, Rock, Lose},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineOutcome(tt.player, tt.opponent), "%s vs %s", tt.player, tt.opponent)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"rock", Rock},
		{"R", Rock},
		{" Paper ", Paper},
		{"p", Paper},
		{"SCISSORS", Scissors},
		{"s", Scissors},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMove("lizard")
	assert.ErrorIs(t, err, ErrUnknownMove)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("friend")
	require.NoError(t, err)
	assert.Equal(t, VsFriend, m)

	m, err = ParseMode("Computer")
	require.NoError(t, err)
	assert.Equal(t, VsComputer, m)

	_, err = ParseMode("network")
	assert.Error(t, err)

	assert.Equal(t, VsFriend, VsComputer.Toggle())
	assert.Equal(t, VsComputer, VsFriend.Toggle())
}

func TestMoveValid(t *testing.T) {
	assert.False(t, NoMove.Valid())
	assert.False(t, Move(7).Valid())
	for _, m := range Moves() {
		assert.True(t, m.Valid())
	}
}

func TestModeValid(t *testing.T) {
	assert.True(t, VsComputer.Valid())
	assert.True(t, VsFriend.Valid())
	assert.False(t, Mode(7).Valid())
	assert.False(t, Mode(-1).Valid())
}
