package snapshot

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/banker/deadlock"
)

// Report is the encodable record of one detection run: the outcome plus any
// resolution advice. Victim is a pointer so that process 0 survives
// omitempty.
type Report struct {
	Safe         bool     `yaml:"safe"`
	SafeSequence []int    `yaml:"safe_sequence,omitempty"`
	Stalled      []int    `yaml:"stalled,omitempty"`
	Strategies   []string `yaml:"strategies,omitempty"`
	Victim       *int     `yaml:"victim,omitempty"`
}

// BuildReport assembles a Report from an outcome and its advice.
func BuildReport(out deadlock.Outcome, adv deadlock.Advice) Report {
	r := Report{
		Safe:         out.Safe,
		SafeSequence: out.SafeSequence,
		Stalled:      out.Stalled,
		Strategies:   adv.Strategies,
	}
	if adv.HasVictim {
		v := adv.Victim
		r.Victim = &v
	}

	return r
}

// Encode writes the report as a YAML document to w.
func (r Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("snapshot: encode report: %w", err)
	}

	return enc.Close()
}
