// Package neighbors implements a brute-force 1-nearest-neighbor classifier.
//
// 🚀 What is 1-NN?
//
//	The simplest lazy learner: remember every labeled training point, and
//	label a new point with the label of the single closest training point
//	under Euclidean distance.
//
// ✨ Key features:
//   - generic labels: any cmp.Ordered type (ints, strings, integral floats)
//   - exact search: full m×n distance matrix, no index structures
//   - reproducible ties: equal distances resolve to the lowest training index
//   - cancellation-free distances (difference form, scaled accumulation)
//   - implements estimator.Classifier, so it plugs into modelselection
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/nearest/matrix"
//	  "github.com/katalvlaran/nearest/neighbors"
//	)
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {10, 10}})
//	clf, err := neighbors.Fit(X, []int{0, 1})
//	if err != nil {
//	  // handle ErrInvalidInput / ErrShapeMismatch / ErrInvalidTargetType
//	}
//	Q, _ := matrix.NewDenseFromRows([][]float64{{1, 1}, {9, 9}})
//	pred, _ := clf.Predict(Q) // [0 1]
//
// Performance:
//
//   - Time:   O(m·n·d) per Predict
//   - Memory: O(n·d) stored, O(m·n) transient
//
// See example_test.go for runnable examples.
package neighbors
