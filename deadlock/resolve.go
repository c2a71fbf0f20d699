package deadlock

import "fmt"

// Canonical strategy texts, in rank order.
const (
	adviceNoAction  = "No action required: the snapshot is not deadlocked."
	adviceTerminate = "Terminate one or more deadlocked processes to break the cycle."
	advicePreempt   = "Preempt resources from a deadlocked process and roll it back."
)

// Suggest produces ranked mitigation strategies for a deadlocked set and
// recommends a victim process.
//
// Behavior:
//   - Empty stalled set → a single "no action required" advisory, no victim.
//   - Otherwise the two generic strategies (terminate, preempt) in fixed
//     order, followed by a recommendation naming the victim.
//   - The victim is the stalled process with the minimal total allocation
//     held(i) = Σⱼ allocation[i][j]; ties break toward the smallest index.
//
// Suggest never mutates allocation or request.
//
// Time:   O(k·m) for k stalled processes.
// Memory: O(k) for the strategy list.
func Suggest(stalled []int, allocation, request [][]int) Advice {
	if len(stalled) == 0 {
		return Advice{Strategies: []string{adviceNoAction}}
	}

	// Pick the stalled process holding the fewest total resource units.
	victim, victimHeld := stalled[0], held(allocation[stalled[0]])
	for _, i := range stalled[1:] {
		h := held(allocation[i])
		// Strictly fewer units wins; equal units go to the lower index.
		if h < victimHeld || (h == victimHeld && i < victim) {
			victim, victimHeld = i, h
		}
	}

	return Advice{
		Strategies: []string{
			adviceTerminate,
			advicePreempt,
			fmt.Sprintf("Terminate process P%d (holds fewest resources).", victim),
		},
		Victim:    victim,
		HasVictim: true,
	}
}

// held sums one allocation row.
func held(row []int) int {
	total := 0
	for _, v := range row {
		total += v
	}

	return total
}
