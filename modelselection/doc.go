// Package modelselection evaluates any estimator.Classifier with K-fold
// cross-validation.
//
// ⚙️ Usage:
//
//	scores, err := modelselection.CrossValScore(
//	  func() estimator.Classifier[int] { return neighbors.New[int]() },
//	  X, y, 5, modelselection.WithShuffle(42),
//	)
//	mean, std, _ := modelselection.Summarize(scores)
//
// Folds are deterministic: without shuffling they are contiguous blocks; with
// WithShuffle(seed) the same seed always yields the same folds.
package modelselection
