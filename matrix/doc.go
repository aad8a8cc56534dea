// Package matrix provides the dense numeric storage consumed by estimators.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - Validators (ValidateNotNil, ValidateNonEmpty, ValidateCols,
//     ValidateFinite, ValidateArray) returning tagged sentinel errors.
//   - PairwiseEuclidean and ArgMinRows, the two kernels behind brute-force
//     nearest-neighbor search.
//   - FromMat / ToMat for interop with gonum.org/v1/gonum/mat.
//
// Every exported function returns errors instead of panicking on user input;
// match them with errors.Is against the sentinels in errors.go.
//
// See the examples in this package for usage patterns.
package matrix
