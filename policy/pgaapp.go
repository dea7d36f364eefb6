package policy

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/favorart/polytope/simplex"
)

// PGAAPP is a Policy Gradient Ascent with Approximate Policy Prediction
// policy over a tabular Q-function. It maintains an explicit S×A
// probability table, initialized uniform, refined state by state with
// Update. See the package documentation for the update rule.
type PGAAPP struct {
	q     *mat.Dense // caller-owned, read on every update
	table *mat.Dense // rows are distributions over actions

	states, actions int
	lRate, pLength  float64
	rng             *rand.Rand
}

// NewPGAAPP returns a PGA-APP policy over q with the given learning
// rate and prediction length (both must be non-negative). The policy
// table starts uniform. q is retained by reference, so Q-learning may
// continue into it between updates.
func NewPGAAPP(q *mat.Dense, learningRate, predictionLength float64, opts ...Option) (*PGAAPP, error) {
	if q == nil {
		return nil, ErrBadQTable
	}
	states, actions := q.Dims()
	if states == 0 || actions == 0 {
		return nil, ErrBadQTable
	}
	if learningRate < 0 || predictionLength < 0 {
		return nil, ErrNegativeParameter
	}

	cfg := newConfig(opts)
	table := mat.NewDense(states, actions, nil)
	uniform := simplex.Uniform(actions)
	for s := 0; s < states; s++ {
		table.SetRow(s, uniform)
	}

	return &PGAAPP{
		q:       q,
		table:   table,
		states:  states,
		actions: actions,
		lRate:   learningRate,
		pLength: predictionLength,
		rng:     rand.New(rand.NewPCG(cfg.seed, cfg.seed)),
	}, nil
}

// Update ascends the policy gradient of state s against the current
// Q-table row and re-projects the policy row onto the simplex.
//
// Complexity: O(A).
func (p *PGAAPP) Update(s int) error {
	if s < 0 || s >= p.states {
		return ErrIndexOutOfRange
	}
	pi := mat.Row(nil, s, p.table)
	qs := mat.Row(nil, s, p.q)
	avg := floats.Dot(pi, qs)

	for a := range pi {
		var delta float64
		if math.Abs(pi[a]-1) <= probEqualTol {
			// The 1/(1−π) scaling degenerates at a deterministic entry.
			delta = qs[a] - avg
		} else {
			delta = (qs[a] - avg) / (1 - pi[a])
		}
		delta -= p.pLength * pi[a] * math.Abs(delta)
		pi[a] += p.lRate * delta
	}
	p.table.SetRow(s, simplex.Project(pi))

	return nil
}

// SampleAction draws an action for state s from the current policy row.
func (p *PGAAPP) SampleAction(s int) (int, error) {
	if s < 0 || s >= p.states {
		return 0, ErrIndexOutOfRange
	}
	target := p.rng.Float64()
	cum := 0.0
	for a := 0; a < p.actions; a++ {
		cum += p.table.At(s, a)
		if target < cum {
			return a, nil
		}
	}

	// Rounding left target above the cumulative total.
	return p.actions - 1, nil
}

// ActionProbability returns the policy probability of action a in
// state s.
func (p *PGAAPP) ActionProbability(s, a int) (float64, error) {
	if s < 0 || s >= p.states || a < 0 || a >= p.actions {
		return 0, ErrIndexOutOfRange
	}

	return p.table.At(s, a), nil
}

// Policy returns a copy of the current probability table.
func (p *PGAAPP) Policy() *mat.Dense {
	return mat.DenseCopyOf(p.table)
}

// SetLearningRate replaces the learning rate; it must be non-negative.
func (p *PGAAPP) SetLearningRate(learningRate float64) error {
	if learningRate < 0 {
		return ErrNegativeParameter
	}
	p.lRate = learningRate

	return nil
}

// LearningRate returns the current learning rate.
func (p *PGAAPP) LearningRate() float64 {
	return p.lRate
}

// SetPredictionLength replaces the prediction length; it must be
// non-negative.
func (p *PGAAPP) SetPredictionLength(predictionLength float64) error {
	if predictionLength < 0 {
		return ErrNegativeParameter
	}
	p.pLength = predictionLength

	return nil
}

// PredictionLength returns the current prediction length.
func (p *PGAAPP) PredictionLength() float64 {
	return p.pLength
}
