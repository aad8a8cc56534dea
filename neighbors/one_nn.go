package neighbors

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/nearest/estimator"
	"github.com/katalvlaran/nearest/matrix"
	"github.com/katalvlaran/nearest/metrics"
)

// OneNearestNeighbor is a 1-nearest-neighbor classifier
//
// Description:
//
//	Fit stores a labeled training set. Predict assigns every query row the
//	label of the closest stored row by Euclidean distance. Score reports
//	classification accuracy against known labels.
//
// Algorithm Outline (Predict):
//  1. Validate the query (finite, non-empty, Cols == NFeaturesIn).
//  2. D = PairwiseEuclidean(X, trainX), an m×n matrix.
//  3. For each row i: k = argmin_j D[i][j] (lowest j on exact ties).
//  4. pred[i] = trainY[k].
//
// A query identical to a training row is at distance 0 and is its own
// nearest neighbor; there is no leave-one-out exclusion.
//
// Complexity:
//
//	Fit     = O(n·d) time and memory (deep copy)
//	Predict = O(m·n·d) time, O(m·n) transient memory
//
// Concurrency:
//
//	Predict, Score and Kneighbors only read the fitted state and may run
//	concurrently. Fit must not run concurrently with any other method on
//	the same instance.
type OneNearestNeighbor[L cmp.Ordered] struct {
	state   estimator.State
	x       *matrix.Dense // n×d training features, owned
	y       []L           // n training labels, index aligned with x
	classes []L           // sorted unique y
}

var _ estimator.Classifier[int] = (*OneNearestNeighbor[int])(nil)

const (
	opFit        = "OneNearestNeighbor.Fit"
	opPredict    = "OneNearestNeighbor.Predict"
	opScore      = "OneNearestNeighbor.Score"
	opKneighbors = "OneNearestNeighbor.Kneighbors"
)

// New returns an unfitted classifier. There are no hyper-parameters:
// k is fixed at 1 and the metric at Euclidean.
func New[L cmp.Ordered]() *OneNearestNeighbor[L] {
	return &OneNearestNeighbor[L]{}
}

// Fit constructs a classifier, fits it on (X, y) and returns it, so calls
// can be chained: neighbors.Fit(X, y) followed by .Predict(Q).
func Fit[L cmp.Ordered](X matrix.Matrix, y []L) (*OneNearestNeighbor[L], error) {
	c := New[L]()
	if err := c.Fit(X, y); err != nil {
		return nil, err
	}

	return c, nil
}

// Fit validates and stores the training set.
//
// Validation order:
//   - ErrInvalidInput: X nil, empty, ragged or non-finite.
//   - ErrShapeMismatch: len(y) != X.Rows().
//   - ErrInvalidTargetType: y is continuous.
//
// On error the previous state (fitted or not) is left untouched. On success
// the training set is replaced wholesale; X and y are copied so later caller
// mutations cannot leak into predictions.
func (c *OneNearestNeighbor[L]) Fit(X matrix.Matrix, y []L) error {
	if err := estimator.CheckXY(X, y); err != nil {
		return fmt.Errorf("%s: %w", opFit, err)
	}
	if err := estimator.CheckClassificationTargets(y); err != nil {
		return fmt.Errorf("%s: %w", opFit, err)
	}
	x, err := matrix.ToDense(X)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", opFit, estimator.ErrInvalidInput, err)
	}

	c.x = x
	c.y = slices.Clone(y)
	c.classes = estimator.UniqueLabels(y)
	c.state = estimator.Fitted

	return nil
}

// Predict returns the label of the nearest training row for every row of X.
// The result has X.Rows() entries.
func (c *OneNearestNeighbor[L]) Predict(X matrix.Matrix) ([]L, error) {
	idx, _, err := c.nearest(opPredict, X)
	if err != nil {
		return nil, err
	}

	pred := make([]L, len(idx))
	for i, k := range idx {
		pred[i] = c.y[k]
	}

	return pred, nil
}

// Score returns the accuracy of Predict(X) against y, in [0,1].
func (c *OneNearestNeighbor[L]) Score(X matrix.Matrix, y []L) (float64, error) {
	if err := c.state.Check(opScore); err != nil {
		return 0, err
	}
	if err := estimator.CheckXY(X, y); err != nil {
		return 0, fmt.Errorf("%s: %w", opScore, err)
	}
	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	acc, err := metrics.Accuracy(y, pred)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", opScore, estimator.ErrShapeMismatch, err)
	}

	return acc, nil
}

// Kneighbors returns, for every row of X, the Euclidean distance to its
// nearest training row and that row's index in the training set.
func (c *OneNearestNeighbor[L]) Kneighbors(X matrix.Matrix) (dist []float64, idx []int, err error) {
	idx, dist, err = c.nearest(opKneighbors, X)
	if err != nil {
		return nil, nil, err
	}

	return dist, idx, nil
}

// nearest runs the shared validation and the brute-force search.
func (c *OneNearestNeighbor[L]) nearest(op string, X matrix.Matrix) ([]int, []float64, error) {
	if err := c.state.Check(op); err != nil {
		return nil, nil, err
	}
	if err := estimator.CheckFeatures(X, c.x.Cols()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	d, err := matrix.PairwiseEuclidean(X, c.x)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	idx, minima, err := matrix.ArgMinRows(d)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return idx, minima, nil
}

// IsFitted reports whether Fit has succeeded at least once.
func (c *OneNearestNeighbor[L]) IsFitted() bool { return c.state == estimator.Fitted }

// Classes returns a copy of the sorted distinct training labels, or nil when
// unfitted.
func (c *OneNearestNeighbor[L]) Classes() []L {
	if !c.IsFitted() {
		return nil
	}

	return slices.Clone(c.classes)
}

// NFeaturesIn returns the feature count recorded at Fit, or 0 when unfitted.
func (c *OneNearestNeighbor[L]) NFeaturesIn() int {
	if !c.IsFitted() {
		return 0
	}

	return c.x.Cols()
}

// Params reports the fixed configuration for callers that introspect
// estimators generically.
func (c *OneNearestNeighbor[L]) Params() map[string]any {
	return map[string]any{
		"n_neighbors": 1,
		"metric":      "euclidean",
	}
}
