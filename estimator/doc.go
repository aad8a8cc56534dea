// Package estimator defines the contract shared by classifiers in this module.
//
// It provides:
//   - Classifier[L], the Fit / Predict / Score interface that cross-validation
//     and other callers program against;
//   - State, the Unfitted → Fitted lifecycle flag;
//   - the error taxonomy (ErrNotFitted, ErrShapeMismatch,
//     ErrInvalidTargetType, ErrInvalidInput);
//   - explicit precondition checks (CheckArray, CheckXY, CheckFeatures,
//     CheckClassificationTargets) and UniqueLabels.
//
// Estimators implement Classifier directly; there is no base type to embed.
package estimator
