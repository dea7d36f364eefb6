package policy

import "errors"

var (
	// ErrBadQTable is returned when the Q-table is nil or has no
	// states or actions.
	ErrBadQTable = errors.New("policy: nil or empty Q-table")

	// ErrNegativeParameter is returned for a negative learning rate or
	// prediction length.
	ErrNegativeParameter = errors.New("policy: learning parameters must be >= 0")

	// ErrIndexOutOfRange is returned for a state or action index
	// outside the Q-table.
	ErrIndexOutOfRange = errors.New("policy: state or action index out of range")
)

// defaultSeed feeds the PCG generator when WithSeed is not supplied.
const defaultSeed uint64 = 1

// probEqualTol is the tolerance under which a policy entry counts as 1
// in the PGA-APP gradient, where the usual 1/(1−π) scaling degenerates.
const probEqualTol = 1e-6

// Option configures policy construction.
type Option func(*config)

type config struct {
	seed uint64
}

// WithSeed sets the seed of the sampling generator. Identical seeds
// reproduce identical action sequences.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func newConfig(opts []Option) config {
	c := config{seed: defaultSeed}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
