// Package game holds the static catalog of lottery game variants.
// Specs are leaf configuration data: no behavior beyond invariant checks.
package game

import (
	"fmt"
)

// Spec describes one lottery game variant.
//
// OrderSignificant games (the digit games) treat positions as meaningful and
// allow repeated values; combination games require pairwise-distinct values
// and store draws canonicalized ascending.
type Spec struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DigitCount       int    `json:"digitCount"`
	MinValue         int    `json:"minValue"`
	MaxValue         int    `json:"maxValue"`
	OrderSignificant bool   `json:"orderSignificant"`
}

// Validate checks the spec invariants
func (s Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("game spec has no id")
	}
	if s.DigitCount < 1 {
		return fmt.Errorf("game %s: digit count must be at least 1, got %d", s.ID, s.DigitCount)
	}
	if s.MinValue > s.MaxValue {
		return fmt.Errorf("game %s: min value %d exceeds max value %d", s.ID, s.MinValue, s.MaxValue)
	}
	if !s.OrderSignificant && s.RangeSize() < s.DigitCount {
		return fmt.Errorf("game %s: range %d-%d cannot supply %d distinct values", s.ID, s.MinValue, s.MaxValue, s.DigitCount)
	}
	return nil
}

// RangeSize returns the number of possible values per position
func (s Spec) RangeSize() int {
	return s.MaxValue - s.MinValue + 1
}

// Contains reports whether v is a legal value for this game
func (s Spec) Contains(v int) bool {
	return v >= s.MinValue && v <= s.MaxValue
}
