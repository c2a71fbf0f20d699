// Package deadlock defines result types and sentinel errors for the
// deadlock subpackage of github.com/katalvlaran/banker.
package deadlock

import (
	"errors"
	"fmt"
)

// Sentinel errors for snapshot validation.
var (
	// ErrShapeMismatch indicates a matrix or vector does not match the
	// declared n×m dimensions. Concrete values are ShapeError, which names
	// the offending field.
	ErrShapeMismatch = errors.New("deadlock: input does not match declared dimensions")
	// ErrNegativeValue indicates an allocation, request or available entry
	// is below zero.
	ErrNegativeValue = errors.New("deadlock: entries must be non-negative")
)

// ShapeError reports which input field ("allocation", "request" or
// "available") failed the dimension check. errors.Is(err, ErrShapeMismatch)
// holds for every ShapeError.
type ShapeError struct {
	Field string
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("deadlock: %s does not match declared dimensions", e.Field)
}

func (e ShapeError) Unwrap() error { return ErrShapeMismatch }

// Outcome is the result of one safety scan. Exactly one of the two branches
// is populated: Safe=true with SafeSequence, or Safe=false with Stalled.
// SafeSequence lists process indices in the order they finished; Stalled
// lists unfinished indices in ascending order. The two always partition
// 0..n-1.
type Outcome struct {
	// Safe reports whether every process can run to completion.
	Safe bool
	// SafeSequence is a completion order over all processes; nil when the
	// snapshot is deadlocked.
	SafeSequence []int
	// Stalled holds the deadlocked process indices, sorted ascending; nil
	// when the snapshot is safe.
	Stalled []int
}

// Advice is an ordered list of human-readable mitigation strategies plus an
// optional recommended victim process.
type Advice struct {
	// Strategies are ranked, most generic first.
	Strategies []string
	// Victim is the recommended process to terminate; meaningful only when
	// HasVictim is true.
	Victim int
	// HasVictim reports whether a victim was selected (false when the
	// stalled set is empty).
	HasVictim bool
}
