// Package stepper implements a bounded integer input: a value is stepped by
// one in either direction and never leaves its [Min, Max] range.
package stepper

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/intervals/internal/util"
)

var ErrInvalidBounds = errors.New("min exceeds max")

// Bounds holds the inclusive range of a stepped value. It owns no value;
// callers pass the current value in and store what comes back.
type Bounds struct {
	Min int
	Max int
}

func New(min, max int) (Bounds, error) {
	if min > max {
		return Bounds{}, fmt.Errorf("stepper [%d, %d]: %w", min, max, ErrInvalidBounds)
	}
	return Bounds{Min: min, Max: max}, nil
}

// Increment returns the value one step up, held at Max.
func (b Bounds) Increment(value int) int {
	if value >= b.Max {
		return b.Max
	}
	return util.Clamp(value+1, b.Min, b.Max)
}

// Decrement returns the value one step down, held at Min.
func (b Bounds) Decrement(value int) int {
	if value <= b.Min {
		return b.Min
	}
	return util.Clamp(value-1, b.Min, b.Max)
}

func (b Bounds) Contains(value int) bool {
	return value >= b.Min && value <= b.Max
}

// AtMin and AtMax report whether a step in that direction would be a no-op.
func (b Bounds) AtMin(value int) bool { return value <= b.Min }
func (b Bounds) AtMax(value int) bool { return value >= b.Max }
