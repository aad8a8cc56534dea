package modelselection

import (
	"fmt"

	"github.com/katalvlaran/nearest/estimator"
	"github.com/katalvlaran/nearest/matrix"
	"gonum.org/v1/gonum/stat"
)

// CrossValScore fits a fresh classifier on the training part of each fold and
// returns its Score on the held-out part, one value per fold.
//
// Validation:
//   - ErrNilFactory for a nil factory.
//   - estimator.CheckXY on (X, y) (ErrInvalidInput / ErrShapeMismatch).
//   - ErrBadFolds for k outside [2, X.Rows()].
//
// Any Fit or Score error aborts the run and is returned with the fold number.
func CrossValScore[L comparable](newClf func() estimator.Classifier[L], X matrix.Matrix, y []L, k int, opts ...Option) ([]float64, error) {
	if newClf == nil {
		return nil, ErrNilFactory
	}
	if err := estimator.CheckXY(X, y); err != nil {
		return nil, fmt.Errorf("CrossValScore: %w", err)
	}
	folds, err := KFold(X.Rows(), k, opts...)
	if err != nil {
		return nil, fmt.Errorf("CrossValScore: %w", err)
	}
	data, err := matrix.ToDense(X)
	if err != nil {
		return nil, fmt.Errorf("CrossValScore: %w", err)
	}

	scores := make([]float64, len(folds))
	for f, fold := range folds {
		xTrain, err := data.SelectRows(fold.Train)
		if err != nil {
			return nil, fmt.Errorf("CrossValScore: fold %d: %w", f, err)
		}
		xTest, err := data.SelectRows(fold.Test)
		if err != nil {
			return nil, fmt.Errorf("CrossValScore: fold %d: %w", f, err)
		}

		clf := newClf()
		if err = clf.Fit(xTrain, pick(y, fold.Train)); err != nil {
			return nil, fmt.Errorf("CrossValScore: fold %d: %w", f, err)
		}
		if scores[f], err = clf.Score(xTest, pick(y, fold.Test)); err != nil {
			return nil, fmt.Errorf("CrossValScore: fold %d: %w", f, err)
		}
	}

	return scores, nil
}

// Summarize returns the mean and the sample standard deviation of scores.
// A single score has std 0.
func Summarize(scores []float64) (mean, std float64, err error) {
	switch len(scores) {
	case 0:
		return 0, 0, ErrNoScores
	case 1:
		return scores[0], 0, nil
	}
	mean, std = stat.MeanStdDev(scores, nil)

	return mean, std, nil
}

func pick[L any](y []L, idx []int) []L {
	out := make([]L, len(idx))
	for i, k := range idx {
		out[i] = y[k]
	}

	return out
}
