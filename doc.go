// Package nearest is a small, dependency-light nearest-neighbor classifier
// library with an explicit estimator contract.
//
// 🚀 What is nearest?
//
//	A teaching-sized implementation of the Fit / Predict / Score estimator
//	convention, built around an exact 1-nearest-neighbor classifier:
//		• Dense matrices with checked accessors and a finite-only policy
//		• Pairwise Euclidean distances and lowest-index argmin
//		• A generic Classifier[L] interface with typed sentinel errors
//		• Accuracy scoring and K-fold cross-validation
//
// ✨ Why choose nearest?
//
//   - Deterministic – fixed loop orders, reproducible ties, seeded shuffles
//   - Explicit – local precondition checks, errors.Is-friendly failures
//   - Interoperable – gonum mat in and out
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/         Dense storage, validators, distance kernels, gonum interop
//	estimator/      Classifier interface, lifecycle State, error taxonomy, checks
//	metrics/        Accuracy
//	neighbors/      OneNearestNeighbor
//	modelselection/ KFold, CrossValScore, Summarize
//
//	go get github.com/katalvlaran/nearest
package nearest
