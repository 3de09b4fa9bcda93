package tui

import "github.com/lox/rockpaperscissors/internal/game"

// Placeholder is shown for a move that is unknown or not yet revealed.
const Placeholder = "❔"

// Glyph maps a move to its display glyph.
func Glyph(m game.Move) string {
	switch m {
	case game.Rock:
		return "✊"
	case game.Paper:
		return "✋"
	case game.Scissors:
		return "✌️"
	default:
		return Placeholder
	}
}

// outcomeMessage is the result line for a resolved round.
func outcomeMessage(o game.Outcome) string {
	switch o {
	case game.Win:
		return "You Win!"
	case game.Lose:
		return "You Lose!"
	case game.Draw:
		return "It's a draw!"
	default:
		return ""
	}
}
