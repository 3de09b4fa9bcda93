package game

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Chooser picks the computer's move. Implementations must not depend on the
// player's move.
type Chooser interface {
	Choose() Move
}

// RandomChooser draws uniformly from the three moves.
type RandomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a chooser whose sequence is fully determined by seed.
func NewRandomChooser(seed int64) *RandomChooser {
	return &RandomChooser{rng: newRand(seed)}
}

// NewSeededChooser returns a chooser seeded from the wall clock.
func NewSeededChooser() *RandomChooser {
	return NewRandomChooser(time.Now().UnixNano())
}

// Choose implements Chooser.
func (c *RandomChooser) Choose() Move {
	return moves[c.rng.IntN(len(moves))]
}

// SequenceChooser replays a fixed list of moves, wrapping around at the end.
type SequenceChooser struct {
	seq  []Move
	next int
}

// NewSequenceChooser returns a chooser that cycles through seq. It panics if
// seq is empty or holds an unplayable move.
func NewSequenceChooser(seq ...Move) *SequenceChooser {
	if len(seq) == 0 {
		panic("game: empty move sequence")
	}
	for _, m := range seq {
		if !m.Valid() {
			panic("game: invalid move in sequence: " + m.String())
		}
	}
	return &SequenceChooser{seq: append([]Move(nil), seq...)}
}

// Choose implements Chooser.
func (c *SequenceChooser) Choose() Move {
	m := c.seq[c.next%len(c.seq)]
	c.next++
	return m
}

// newRand derives the two PCG seeds from a single int64 so every caller gets
// the same sequence for the same seed.
func newRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
