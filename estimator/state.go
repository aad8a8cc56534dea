// SPDX-License-Identifier: MIT

package estimator

import "fmt"

// State is the estimator lifecycle: Unfitted → Fitted. A repeated Fit
// re-enters Fitted; there is no partial state.
type State int

const (
	// Unfitted is the zero value: no training data has been accepted.
	Unfitted State = iota
	// Fitted means a training set has been validated and stored.
	Fitted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unfitted:
		return "unfitted"
	case Fitted:
		return "fitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Check returns ErrNotFitted (tagged with op) unless s is Fitted.
func (s State) Check(op string) error {
	if s != Fitted {
		return fmt.Errorf("%s: %w", op, ErrNotFitted)
	}

	return nil
}
