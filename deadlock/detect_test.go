package deadlock_test

import (
	"testing"

	"github.com/katalvlaran/banker/deadlock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookSnapshot returns the classic five-process, three-resource safe
// snapshot used throughout these tests.
func textbookSnapshot() (n, m int, allocation, request [][]int, available []int) {
	allocation = [][]int{
		{0, 1, 0},
		{2, 0, 0},
		{3, 0, 2},
		{2, 1, 1},
		{0, 0, 2},
	}
	request = [][]int{
		{7, 4, 3},
		{1, 2, 2},
		{6, 0, 0},
		{0, 1, 1},
		{4, 3, 1},
	}
	available = []int{3, 3, 2}

	return 5, 3, allocation, request, available
}

// TestDetect_TextbookSafe verifies the classic Banker's example is safe and
// that the ascending-index, same-pass-chaining policy yields exactly
// P1, P3, P4, P0, P2.
func TestDetect_TextbookSafe(t *testing.T) {
	n, m, allocation, request, available := textbookSnapshot()

	out := deadlock.Detect(n, m, allocation, request, available)
	require.True(t, out.Safe, "textbook snapshot must be safe")
	assert.Equal(t, []int{1, 3, 4, 0, 2}, out.SafeSequence, "sequence fixed by scan policy")
	assert.Nil(t, out.Stalled, "safe outcome carries no stalled set")
}

// TestDetect_TotalDeadlock verifies that two processes each waiting on an
// unavailable unit stall together: stalled = [0, 1].
func TestDetect_TotalDeadlock(t *testing.T) {
	allocation := [][]int{{0}, {0}}
	request := [][]int{{1}, {1}}
	available := []int{0}

	out := deadlock.Detect(2, 1, allocation, request, available)
	require.False(t, out.Safe, "no process can obtain its request")
	assert.Equal(t, []int{0, 1}, out.Stalled, "both processes stall, sorted ascending")
	assert.Nil(t, out.SafeSequence)
}

// TestDetect_PartialDeadlock verifies that finishable processes finish and
// the remainder is reported sorted.
func TestDetect_PartialDeadlock(t *testing.T) {
	allocation := [][]int{{1}, {1}, {0}}
	request := [][]int{{0}, {2}, {5}}
	available := []int{0}

	out := deadlock.Detect(3, 1, allocation, request, available)
	require.False(t, out.Safe)
	assert.Equal(t, []int{1, 2}, out.Stalled, "only P0 can complete")
}

// TestDetect_EmptySnapshot verifies n=0 is trivially safe with an empty
// sequence.
func TestDetect_EmptySnapshot(t *testing.T) {
	out := deadlock.Detect(0, 0, [][]int{}, [][]int{}, []int{})
	require.True(t, out.Safe, "no processes means nothing can deadlock")
	assert.Empty(t, out.SafeSequence)
	assert.Nil(t, out.Stalled)
}

// TestDetect_SamePassChaining verifies that resources released earlier in a
// pass are visible to later indices of the same pass: P1 only fits after P0
// releases its unit, yet both finish in pass one.
func TestDetect_SamePassChaining(t *testing.T) {
	allocation := [][]int{{1}, {0}}
	request := [][]int{{0}, {1}}
	available := []int{0}

	out := deadlock.Detect(2, 1, allocation, request, available)
	require.True(t, out.Safe)
	assert.Equal(t, []int{0, 1}, out.SafeSequence, "P1 benefits from P0's release in the same pass")
}

// TestDetect_AvailableDominatesAll verifies that when available already
// covers every request, all processes finish in the first pass in index
// order, regardless of allocations.
func TestDetect_AvailableDominatesAll(t *testing.T) {
	allocation := [][]int{{0, 9}, {4, 0}, {1, 1}}
	request := [][]int{{2, 2}, {3, 1}, {0, 3}}
	available := []int{3, 3}

	out := deadlock.Detect(3, 2, allocation, request, available)
	require.True(t, out.Safe)
	assert.Equal(t, []int{0, 1, 2}, out.SafeSequence, "first-pass finish keeps index order")
}

// TestDetect_Determinism verifies that two runs over identical input yield
// identical outcomes, for a safe and a deadlocked snapshot alike.
func TestDetect_Determinism(t *testing.T) {
	n, m, allocation, request, available := textbookSnapshot()
	first := deadlock.Detect(n, m, allocation, request, available)
	second := deadlock.Detect(n, m, allocation, request, available)
	assert.Equal(t, first, second, "identical input must reproduce the outcome")

	stalledAlloc := [][]int{{0}, {0}}
	stalledReq := [][]int{{1}, {1}}
	first = deadlock.Detect(2, 1, stalledAlloc, stalledReq, []int{0})
	second = deadlock.Detect(2, 1, stalledAlloc, stalledReq, []int{0})
	assert.Equal(t, first, second)
}

// TestDetect_PartitionProperty verifies SafeSequence/Stalled are disjoint
// and together cover 0..n-1, for several snapshots.
func TestDetect_PartitionProperty(t *testing.T) {
	cases := []struct {
		name       string
		n, m       int
		allocation [][]int
		request    [][]int
		available  []int
	}{
		{name: "safe_textbook"},
		{
			name: "partial_deadlock",
			n:    3, m: 1,
			allocation: [][]int{{1}, {1}, {0}},
			request:    [][]int{{0}, {2}, {5}},
			available:  []int{0},
		},
		{
			name: "total_deadlock",
			n:    2, m: 1,
			allocation: [][]int{{0}, {0}},
			request:    [][]int{{1}, {1}},
			available:  []int{0},
		},
	}
	cases[0].n, cases[0].m, cases[0].allocation, cases[0].request, cases[0].available = textbookSnapshot()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := deadlock.Detect(tc.n, tc.m, tc.allocation, tc.request, tc.available)

			seen := make([]bool, tc.n)
			for _, i := range out.SafeSequence {
				require.False(t, seen[i], "process %d finished twice", i)
				seen[i] = true
			}
			for _, i := range out.Stalled {
				require.False(t, seen[i], "process %d both finished and stalled", i)
				seen[i] = true
			}
			assert.Equal(t, tc.n, len(out.SafeSequence)+len(out.Stalled), "partition covers 0..n-1")
			for i, ok := range seen {
				assert.True(t, ok, "process %d missing from partition", i)
			}
		})
	}
}

// TestDetect_SequenceReplay verifies the returned safe sequence is actually
// executable: replaying it, every request fits the work vector at its turn
// and work never drops below the initial available vector.
func TestDetect_SequenceReplay(t *testing.T) {
	n, m, allocation, request, available := textbookSnapshot()

	out := deadlock.Detect(n, m, allocation, request, available)
	require.True(t, out.Safe)

	work := make([]int, m)
	copy(work, available)
	for _, i := range out.SafeSequence {
		for j := 0; j < m; j++ {
			require.LessOrEqual(t, request[i][j], work[j],
				"process %d scheduled before resource %d was available", i, j)
			work[j] += allocation[i][j]
			assert.GreaterOrEqual(t, work[j], available[j], "work vector only grows")
		}
	}
}

// TestDetect_InputNotMutated verifies Detect leaves the caller's matrices
// and available vector untouched.
func TestDetect_InputNotMutated(t *testing.T) {
	n, m, allocation, request, available := textbookSnapshot()
	_, _, wantAlloc, wantReq, wantAvail := textbookSnapshot()

	deadlock.Detect(n, m, allocation, request, available)

	assert.Equal(t, wantAlloc, allocation, "allocation must not change")
	assert.Equal(t, wantReq, request, "request must not change")
	assert.Equal(t, wantAvail, available, "available must not change")
}
