// Command banker reads an allocation snapshot from a YAML/JSON file (or
// stdin), classifies it as safe or deadlocked, and prints a report.
//
// Usage:
//
//	banker -f snapshot.yaml        # human-readable report
//	banker -f snapshot.yaml -yaml  # machine-readable YAML report
//	cat snapshot.yaml | banker     # read from stdin
//
// Exit codes: 0 safe, 1 deadlocked, 2 invalid input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/banker/deadlock"
	"github.com/katalvlaran/banker/snapshot"
)

const (
	exitSafe       = 0
	exitDeadlocked = 1
	exitBadInput   = 2
)

func main() {
	file := flag.String("f", "-", "snapshot file (YAML or JSON), '-' for stdin")
	asYAML := flag.Bool("yaml", false, "emit a YAML report instead of plain text")
	flag.Parse()

	os.Exit(run(*file, *asYAML, os.Stdout, os.Stderr))
}

// run is the whole program minus flag parsing and os.Exit, so tests can
// drive it with buffers.
func run(file string, asYAML bool, stdout, stderr io.Writer) int {
	snap, err := loadSnapshot(file)
	if err != nil {
		fmt.Fprintln(stderr, "banker:", err)

		return exitBadInput
	}

	if err = snap.Validate(); err != nil {
		fmt.Fprintln(stderr, "banker: invalid snapshot:", err)

		return exitBadInput
	}

	out := snap.Detect()
	var adv deadlock.Advice
	if !out.Safe {
		adv = deadlock.Suggest(out.Stalled, snap.Allocation, snap.Request)
	}

	if asYAML {
		if err = snapshot.BuildReport(out, adv).Encode(stdout); err != nil {
			fmt.Fprintln(stderr, "banker:", err)

			return exitBadInput
		}
	} else {
		printReport(stdout, out, adv)
	}

	if out.Safe {
		return exitSafe
	}

	return exitDeadlocked
}

// loadSnapshot opens and decodes the snapshot source.
func loadSnapshot(file string) (*snapshot.Snapshot, error) {
	if file == "-" {
		return snapshot.Load(os.Stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return snapshot.Load(f)
}

// printReport writes the human-readable form.
func printReport(w io.Writer, out deadlock.Outcome, adv deadlock.Advice) {
	if out.Safe {
		fmt.Fprintln(w, "state: SAFE")
		fmt.Fprint(w, "safe sequence:")
		for _, i := range out.SafeSequence {
			fmt.Fprintf(w, " P%d", i)
		}
		fmt.Fprintln(w)

		return
	}

	fmt.Fprintln(w, "state: DEADLOCKED")
	fmt.Fprint(w, "stalled:")
	for _, i := range out.Stalled {
		fmt.Fprintf(w, " P%d", i)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "suggestions:")
	for _, s := range adv.Strategies {
		fmt.Fprintln(w, "  -", s)
	}
}
