package scoreboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	b := New()
	for _, o := range []game.Outcome{game.Win, game.Win, game.Lose, game.Draw, game.Win} {
		b.Record(game.VsComputer, o)
	}
	b.Record(game.VsFriend, game.Lose)
	b.Record(game.VsFriend, game.NoOutcome)

	c := b.Summary(game.VsComputer)
	assert.Equal(t, 3, c.Wins)
	assert.Equal(t, 1, c.Losses)
	assert.Equal(t, 1, c.Draws)
	assert.Equal(t, 5, c.Rounds())
	assert.Equal(t, 1, c.Streak)
	assert.Equal(t, 2, c.BestStreak)
	assert.InDelta(t, 0.6, c.WinRate(), 1e-9)

	f := b.Summary(game.VsFriend)
	assert.Equal(t, 1, f.Rounds())
	assert.Equal(t, -1, f.Streak)

	total := b.Totals()
	assert.Equal(t, 6, total.Rounds())
	assert.Equal(t, 2, total.BestStreak)
}

func TestStreakFlips(t *testing.T) {
	b := New()
	b.Record(game.VsComputer, game.Lose)
	b.Record(game.VsComputer, game.Lose)
	assert.Equal(t, -2, b.Summary(game.VsComputer).Streak)

	b.Record(game.VsComputer, game.Win)
	assert.Equal(t, 1, b.Summary(game.VsComputer).Streak)

	b.Record(game.VsComputer, game.Draw)
	assert.Equal(t, 0, b.Summary(game.VsComputer).Streak)
}

func TestWinRateEmpty(t *testing.T) {
	assert.Zero(t, New().Totals().WinRate())
}

func TestMerge(t *testing.T) {
	a := New()
	a.Record(game.VsComputer, game.Win)
	other := New()
	other.Record(game.VsComputer, game.Lose)
	other.Record(game.VsFriend, game.Draw)

	a.Merge(other)
	assert.Equal(t, 2, a.Summary(game.VsComputer).Rounds())
	assert.Equal(t, 1, a.Summary(game.VsFriend).Draws)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	t.Run("missing file is empty", func(t *testing.T) {
		b, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, New(), b)
	})

	t.Run("round trip", func(t *testing.T) {
		b := New()
		b.Record(game.VsFriend, game.Win)
		b.Record(game.VsComputer, game.Draw)
		require.NoError(t, b.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, b, loaded)
	})

	t.Run("corrupt file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
		_, err := Load(bad)
		assert.Error(t, err)
	})
}
