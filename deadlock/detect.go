package deadlock

// Detect — Banker's-style safety scan
//
// Description:
//
//	Detect decides whether a static allocation snapshot admits an order in
//	which every process can obtain its remaining request and complete. If
//	so, the snapshot is safe and one such order is returned; otherwise the
//	processes that can never proceed form the deadlocked set.
//
// Algorithm Outline:
//  1. work := copy(available); finish[i] := false for all i; sequence := [].
//  2. Scan all unfinished processes i in ascending index order: if
//     request[i][j] ≤ work[j] for every resource j, mark finish[i],
//     append i to sequence, and add allocation[i] into work immediately —
//     later indices in the same pass see the released resources.
//  3. Repeat step 2 until a full pass marks nothing new.
//  4. All finished → Safe with sequence; otherwise Deadlocked with the
//     unfinished indices in ascending order.
//
// The scan never backtracks and finishing is monotone: work only grows,
// and a finished process never becomes unfinished. Termination is therefore
// bounded by n passes.
//
// Determinism:
//
//	The ascending-index tie-break is a fixed policy, not an optimization;
//	identical input always produces the identical SafeSequence and Stalled.
//
// Edge cases:
//
//	n == 0 is trivially safe with an empty sequence. A process whose
//	request row is dominated by work finishes on the first pass regardless
//	of its allocation.
//
// Complexity:
//
//	Time   = O(n²·m) worst case (≤ n passes, each O(n·m)).
//	Memory = O(n + m).
//
// Detect assumes input already validated by Validate; calling it on
// malformed matrices is a contract violation.
func Detect(n, m int, allocation, request [][]int, available []int) Outcome {
	// Engine-local state: the work vector starts as a copy of available so
	// the caller's slice is never mutated.
	work := make([]int, m)
	copy(work, available)
	finish := make([]bool, n)
	sequence := make([]int, 0, n)

	// Fixed-point: repeat full passes until one marks no new process.
	for progress := true; progress; {
		progress = false
		for i := 0; i < n; i++ {
			if finish[i] || !fits(request[i], work) {
				continue
			}
			// i can complete: release its holdings into work within this
			// same pass.
			finish[i] = true
			sequence = append(sequence, i)
			for j := 0; j < m; j++ {
				work[j] += allocation[i][j]
			}
			progress = true
		}
	}

	if len(sequence) == n {
		return Outcome{Safe: true, SafeSequence: sequence}
	}

	// Collect unfinished indices; ascending scan keeps Stalled sorted.
	stalled := make([]int, 0, n-len(sequence))
	for i := 0; i < n; i++ {
		if !finish[i] {
			stalled = append(stalled, i)
		}
	}

	return Outcome{Stalled: stalled}
}

// fits reports whether need is pointwise ≤ work.
func fits(need, work []int) bool {
	for j, v := range need {
		if v > work[j] {
			return false
		}
	}

	return true
}
