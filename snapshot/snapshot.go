package snapshot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/banker/deadlock"
)

// ErrDecode indicates the input document could not be parsed into a
// snapshot (malformed YAML/JSON or non-integer entries).
var ErrDecode = errors.New("snapshot: cannot decode document")

// Snapshot is the on-disk form of one allocation state. Processes and
// Resources may be omitted; Parse infers them from the matrix shapes.
//
// Example document:
//
//	processes: 2
//	resources: 1
//	allocation: [[0], [0]]
//	request: [[1], [1]]
//	available: [0]
type Snapshot struct {
	Processes  int     `yaml:"processes"`
	Resources  int     `yaml:"resources"`
	Allocation [][]int `yaml:"allocation"`
	Request    [][]int `yaml:"request"`
	Available  []int   `yaml:"available"`
}

// Load reads a whole document from r and parses it.
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read: %w", err)
	}

	return Parse(data)
}

// Parse decodes one YAML (or JSON) document into a Snapshot.
//
// Omitted dimensions are inferred: Processes from the allocation row count,
// Resources from the available vector length. Inference fills in only
// zero-valued fields; explicit counts are kept as declared so that
// deadlock.Validate can still catch a declared/actual mismatch.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		// yaml.v3 rejects non-integer scalars for []int targets here, so
		// non-numeric input never reaches the core.
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if s.Processes == 0 {
		s.Processes = len(s.Allocation)
	}
	if s.Resources == 0 {
		s.Resources = len(s.Available)
	}

	return &s, nil
}

// Validate applies the core validation contract to the decoded snapshot.
func (s *Snapshot) Validate() error {
	return deadlock.Validate(s.Processes, s.Resources, s.Allocation, s.Request, s.Available)
}

// Detect runs the safety scan on the decoded snapshot. The snapshot must
// have passed Validate first.
func (s *Snapshot) Detect() deadlock.Outcome {
	return deadlock.Detect(s.Processes, s.Resources, s.Allocation, s.Request, s.Available)
}
