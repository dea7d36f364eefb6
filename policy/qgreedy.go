package policy

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// QGreedy selects maximal-valued actions straight from a tabular
// Q-function, breaking ties uniformly at random.
type QGreedy struct {
	q *mat.Dense

	states, actions int
	rng             *rand.Rand
	best            []int // scratch for maximal-action collection
}

// NewQGreedy returns a greedy policy over q. q is retained by
// reference.
func NewQGreedy(q *mat.Dense, opts ...Option) (*QGreedy, error) {
	if q == nil {
		return nil, ErrBadQTable
	}
	states, actions := q.Dims()
	if states == 0 || actions == 0 {
		return nil, ErrBadQTable
	}

	cfg := newConfig(opts)

	return &QGreedy{
		q:       q,
		states:  states,
		actions: actions,
		rng:     rand.New(rand.NewPCG(cfg.seed, cfg.seed)),
		best:    make([]int, 0, actions),
	}, nil
}

// SampleAction returns a uniformly drawn element of the maximal-value
// action set of state s. Ties use exact float64 equality.
func (g *QGreedy) SampleAction(s int) (int, error) {
	if s < 0 || s >= g.states {
		return 0, ErrIndexOutOfRange
	}
	g.best = g.best[:0]
	bestQ := g.q.At(s, 0)
	g.best = append(g.best, 0)
	for a := 1; a < g.actions; a++ {
		switch v := g.q.At(s, a); {
		case v > bestQ:
			bestQ = v
			g.best = g.best[:0]
			g.best = append(g.best, a)
		case v == bestQ:
			g.best = append(g.best, a)
		}
	}
	if len(g.best) == 1 {
		return g.best[0], nil
	}

	return g.best[g.rng.IntN(len(g.best))], nil
}

// ActionProbability returns 1/|argmax| for maximal actions of state s
// and 0 otherwise.
func (g *QGreedy) ActionProbability(s, a int) (float64, error) {
	if s < 0 || s >= g.states || a < 0 || a >= g.actions {
		return 0, ErrIndexOutOfRange
	}
	bestQ := g.q.At(s, 0)
	count := 1
	for aa := 1; aa < g.actions; aa++ {
		switch v := g.q.At(s, aa); {
		case v > bestQ:
			bestQ = v
			count = 1
		case v == bestQ:
			count++
		}
	}
	if g.q.At(s, a) != bestQ {
		return 0, nil
	}

	return 1 / float64(count), nil
}
