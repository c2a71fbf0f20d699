// Package deadlock classifies a static resource-allocation snapshot as
// safe or deadlocked and, when deadlocked, suggests how to break it.
//
// What:
//
//   - Validate checks the allocation matrix, request matrix and available
//     vector against declared n×m dimensions and non-negativity.
//   - Detect runs the Banker's-style safety scan: processes whose remaining
//     request fits in the work vector finish and release their holdings,
//     until either everyone finishes (safe) or a pass makes no progress
//     (deadlock).
//   - Suggest ranks textual mitigation strategies for a deadlocked set and
//     names a victim: the stalled process holding the fewest resource units.
//
// Why:
//
//   - OS coursework & schedulers: decide whether granting outstanding
//     requests can ever complete.
//   - Resource brokers: refuse state transitions that admit no completion
//     order.
//   - Post-mortems: name the cheapest process to terminate or preempt.
//
// Determinism:
//
//   - Candidates are scanned in ascending process index, and a process that
//     finishes releases its holdings within the same pass, so later indices
//     in that pass may benefit. Identical input always yields the identical
//     safe sequence and stalled set.
//
// Complexity:
//
//   - Validate: O(n·m), Memory: O(1).
//   - Detect:   O(n²·m) worst case (≤ n passes over n processes × m
//     resources), Memory: O(n + m) for the work vector and finish flags.
//   - Suggest:  O(k·m) for k stalled processes, Memory: O(k).
//
// Errors:
//
//   - ErrShapeMismatch: a matrix/vector does not match the declared n/m;
//     the concrete value is a ShapeError naming the offending field.
//   - ErrNegativeValue: some entry is below zero.
//
// Detect assumes its input already passed Validate and does not re-check;
// callers must validate first.
package deadlock
