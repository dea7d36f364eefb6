// Package policy provides action-selection policies over tabular
// Q-functions: a PGA-APP gradient policy that keeps an explicit
// probability table, and a greedy policy that reads the Q-table
// directly.
//
// Both operate on an S×A gonum Dense matrix q where q(s, a) estimates
// the value of action a in state s. The Q-table is caller-owned and
// read on demand, so callers may keep learning into it between calls.
//
// # PGAAPP
//
// Policy Gradient Ascent with Approximate Policy Prediction. The policy
// table starts uniform; each Update(s) ascends the policy gradient of
// state s:
//
//	avg  = π(s)·Q(s)
//	δ(a) = Q(s,a) − avg            if π(s,a) ≈ 1
//	     = (Q(s,a) − avg)/(1−π(s,a)) otherwise
//	δ(a) −= predictionLength · π(s,a) · |δ(a)|   // prediction damping
//	π(s,a) += learningRate · δ(a)
//
// and re-projects the row onto the probability simplex. Both learning
// parameters must be non-negative.
//
// # QGreedy
//
// Picks a maximal-valued action for the queried state, breaking ties
// uniformly at random; ActionProbability spreads 1 over the maximal
// set. Ties use exact float64 equality, matching tabular Q-learning
// conventions.
//
// # Determinism
//
// Sampling uses a PCG generator with a fixed default seed; pass
// WithSeed to vary it. No time-based randomness, ever: identical seeds
// and inputs reproduce identical action sequences.
//
// # Errors
//
//	ErrBadQTable         - nil or empty Q-table.
//	ErrNegativeParameter - negative learning rate or prediction length.
//	ErrIndexOutOfRange   - state or action index outside the table.
//
// Policies are not safe for concurrent use; wrap with external
// synchronization or construct one per goroutine.
package policy
