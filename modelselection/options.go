// SPDX-License-Identifier: MIT
// Package: nearest/modelselection
//
// options.go: functional options for K-fold splitting.
//
// Contract:
//   • Options are functional (type Option func(*kfoldConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     the splitting and scoring functions themselves never panic.
//   • Determinism is explicit: shuffling is seeded via WithShuffle or WithRand.

package modelselection

import "math/rand"

// defaultShuffleSeed is the fixed seed used when callers pass seed==0.
const defaultShuffleSeed int64 = 1

// Option customizes KFold and CrossValScore.
type Option func(*kfoldConfig)

type kfoldConfig struct {
	shuffle bool
	rng     *rand.Rand
}

// WithShuffle permutes sample indices before splitting, using a seeded RNG.
// seed==0 selects defaultShuffleSeed. The RNG is created each time the option
// is applied, so reusing the option reproduces the same folds.
func WithShuffle(seed int64) Option {
	if seed == 0 {
		seed = defaultShuffleSeed
	}
	return func(c *kfoldConfig) {
		c.shuffle = true
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shuffles with an explicit RNG. Panics on nil.
// The RNG is consumed; it is not safe to share across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("modelselection: WithRand(nil)")
	}
	return func(c *kfoldConfig) {
		c.shuffle = true
		c.rng = r
	}
}

func gatherOptions(opts ...Option) kfoldConfig {
	var c kfoldConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
