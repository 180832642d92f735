package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rollout estimates a position by playing it out at random several times and
// summing the terminal scores.
type Rollout[M any, S Playout[M]] struct {
	score func(S) int
	options
}

// NewRollout builds a rollout evaluator. score is called on terminal states only.
func NewRollout[M any, S Playout[M]](score func(S) int, opts ...Option) *Rollout[M, S] {
	if score == nil {
		panic("rollout needs a terminal score function")
	}
	o := newOptions(opts)
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Rollout[M, S]{
		score:   score,
		options: o,
	}
}

func (r *Rollout[M, S]) Rollouts() int {
	return r.rollouts
}

func (r *Rollout[M, S]) Evaluate(state S) int {
	total := 0
	for range r.rollouts {
		total += r.playout(state)
	}
	return total
}

func (r *Rollout[M, S]) playout(state S) int {
	cp := NewCheckpoint[M](state)
	defer cp.Close()

	// Random rollout policy till the game is over
	for {
		move, ok := state.RandomMove(r.rng)
		if !ok {
			break
		}
		cp.Apply(move)
	}
	r.metrics.AddPlayout()
	return r.score(state)
}
