package modelselection

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFolds indicates k < 2 or k greater than the number of samples.
	ErrBadFolds = errors.New("modelselection: folds must satisfy 2 <= k <= n")

	// ErrNilFactory indicates CrossValScore received a nil constructor.
	ErrNilFactory = errors.New("modelselection: nil classifier factory")

	// ErrNoScores indicates Summarize received an empty slice.
	ErrNoScores = errors.New("modelselection: no scores")
)

// Fold is one train/test partition of sample indices.
type Fold struct {
	Train []int
	Test  []int
}

// KFold splits n sample indices into k folds.
//
// The first n%k folds hold n/k+1 test samples and the rest n/k, so sizes
// differ by at most one. Every index appears in exactly one Test set and in
// the Train set of every other fold. Train and Test keep the (possibly
// shuffled) index order.
//
// Complexity: O(n·k).
func KFold(n, k int, opts ...Option) ([]Fold, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("KFold(n=%d, k=%d): %w", n, k, ErrBadFolds)
	}
	cfg := gatherOptions(opts...)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if cfg.shuffle {
		cfg.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	folds := make([]Fold, k)
	start := 0
	for f := 0; f < k; f++ {
		size := n / k
		if f < n%k {
			size++
		}
		stop := start + size

		test := make([]int, size)
		copy(test, order[start:stop])
		train := make([]int, 0, n-size)
		train = append(train, order[:start]...)
		train = append(train, order[stop:]...)

		folds[f] = Fold{Train: train, Test: test}
		start = stop
	}

	return folds, nil
}
