package searcher

import (
	"slices"

	"dotsboxes/meta"

	"golang.org/x/exp/rand"
)

type Option func(o *options)

type options struct {
	metrics  MetricsCollector
	rollouts int
	rng      *rand.Rand
}

func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func WithRollouts(rollouts int) Option {
	return func(o *options) {
		if rollouts > 0 {
			o.rollouts = rollouts
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		metrics:  NewNoMetricsCollector(),
		rollouts: meta.ROLLOUTS,
	}
	for _, option := range opts {
		option(&o)
	}
	return o
}

// Engine searches one ply deep: every legal move is played for real, the
// evaluator estimates the position behind it, and the move is taken back.
type Engine[M any, S State[M]] struct {
	evaluator Evaluator[S]
	metrics   MetricsCollector
}

// NewEngine builds an engine around evaluator. Only WithMetrics applies to the
// engine; rollout count and random source belong to the evaluator.
func NewEngine[M any, S State[M]](evaluator Evaluator[S], opts ...Option) *Engine[M, S] {
	if evaluator == nil {
		panic("engine needs an evaluator")
	}
	o := newOptions(opts)
	return &Engine[M, S]{
		evaluator: evaluator,
		metrics:   o.metrics,
	}
}

// Scores evaluates every legal move of root in enumeration order. Root is
// unchanged when Scores returns.
func (e *Engine[M, S]) Scores(root S) []Candidate[M] {
	e.metrics.Start()

	// Collect first: the move sequence reads the state we are about to mutate.
	moves := slices.Collect(root.LegalMoves())
	candidates := make([]Candidate[M], 0, len(moves))
	for _, move := range moves {
		candidates = append(candidates, Candidate[M]{Move: move, Score: e.evaluate(root, move)})
		e.metrics.AddCandidate()
	}
	return candidates
}

func (e *Engine[M, S]) evaluate(root S, move M) int {
	cp := NewCheckpoint[M](root)
	defer cp.Close()

	cp.Apply(move)
	return e.evaluator.Evaluate(root)
}

// BestMove returns the move with the highest score. On equal scores the move
// enumerated last wins. It returns false only when root has no legal move.
func (e *Engine[M, S]) BestMove(root S) (M, bool) {
	candidates := e.Scores(root)
	if len(candidates) == 0 {
		var none M
		return none, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score >= best.Score {
			best = c
		}
	}
	return best.Move, true
}
