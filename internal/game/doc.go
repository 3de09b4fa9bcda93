// Package game implements the core rules for a single-screen game of
// rock-paper-scissors.
//
// The main type is Engine, which owns the state of the current round and
// exposes the whole call surface used by a presentation layer: SetMode,
// SubmitMove, Reset and CurrentState.
//
// # Basic Usage
//
// Play a round against the computer:
//
//	e := game.NewEngine()
//	res, err := e.SubmitMove(game.Rock)
//	if err != nil {
//	    // ErrInvalidState: the previous round has not been reset
//	}
//	fmt.Println(res.Outcome)
//	e.Reset()
//
// Two humans sharing a device take turns calling SubmitMove. The first
// call records the player's move and returns WaitingForOpponent, the second
// records the friend's move and resolves the round:
//
//	e := game.NewEngine(game.WithMode(game.VsFriend))
//	e.SubmitMove(game.Rock)     // WaitingForOpponent
//	e.SubmitMove(game.Scissors) // Resolved(Win)
//
// # Deterministic Testing
//
// The computer's move comes from a Chooser. Inject a seeded or scripted one
// to make rounds reproducible:
//
//	e := game.NewEngine(game.WithChooser(game.NewRandomChooser(42)))
//	e := game.NewEngine(game.WithChooser(game.NewSequenceChooser(game.Paper)))
//
// The engine is synchronous and not safe for concurrent use.
package game
