package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/scoreboard"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	Seed    int64
	Logger  *log.Logger
}

// Report summarises a simulation run
type Report struct {
	Rounds        int
	Workers       int
	Board         *scoreboard.Board
	PlayerMoves   map[game.Move]int
	OpponentMoves map[game.Move]int
	Elapsed       time.Duration
}

// OpponentShare returns the fraction of rounds in which the computer played m.
func (r *Report) OpponentShare(m game.Move) float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.OpponentMoves[m]) / float64(r.Rounds)
}

// Simulator plays rounds against the computer with a random player
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

type workerResult struct {
	board    *scoreboard.Board
	player   map[game.Move]int
	opponent map[game.Move]int
}

// Run plays the configured number of rounds. Workers each own an engine and
// are seeded from Config.Seed, so a given seed and worker count always
// produce the same report.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Rounds < 0 {
		return nil, fmt.Errorf("rounds must not be negative: %d", s.config.Rounds)
	}

	start := time.Now()
	workers := min(s.config.Workers, max(s.config.Rounds, 1))
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	seeds := rand.New(rand.NewPCG(uint64(s.config.Seed), uint64(s.config.Seed)^0x5deece66d))
	results := make([]workerResult, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		engineSeed, playerSeed := seeds.Int64(), seeds.Int64()

		g.Go(func() error {
			res, err := s.runWorker(ctx, w, rounds, engineSeed, playerSeed)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Rounds:        s.config.Rounds,
		Workers:       workers,
		Board:         scoreboard.New(),
		PlayerMoves:   make(map[game.Move]int),
		OpponentMoves: make(map[game.Move]int),
	}
	for _, res := range results {
		report.Board.Merge(res.board)
		for m, n := range res.player {
			report.PlayerMoves[m] += n
		}
		for m, n := range res.opponent {
			report.OpponentMoves[m] += n
		}
	}
	report.Elapsed = time.Since(start)

	s.config.Logger.Info("Simulation complete",
		"rounds", report.Rounds,
		"workers", workers,
		"elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) runWorker(ctx context.Context, id, rounds int, engineSeed, playerSeed int64) (workerResult, error) {
	engine := game.NewEngine(
		game.WithChooser(game.NewRandomChooser(engineSeed)),
		game.WithLogger(s.config.Logger.With("worker", id)),
	)
	player := game.NewRandomChooser(playerSeed)
	res := workerResult{
		board:    scoreboard.New(),
		player:   make(map[game.Move]int),
		opponent: make(map[game.Move]int),
	}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("worker %d stopped after %d rounds: %w", id, i, err)
		}

		move := player.Choose()
		outcome, err := engine.SubmitMove(move)
		if err != nil {
			return res, fmt.Errorf("worker %d round %d: %w", id, i, err)
		}
		state := engine.CurrentState()
		res.board.Record(state.Mode, outcome.Outcome)
		res.player[move]++
		res.opponent[state.OpponentMove]++
		engine.Reset()
	}
	return res, nil
}
