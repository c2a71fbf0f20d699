// Package banker is a small toolkit for classifying resource-allocation
// snapshots as safe or deadlocked, in the spirit of the classic Banker's
// safety check.
//
// 🚀 What is banker?
//
//	A pure-Go library (plus a tiny CLI) that brings together:
//		• Validation of allocation/request matrices and the available vector
//		• The finish/safe-sequence safety scan with a deterministic ordering
//		• Ranked resolution advice with a minimal-holdings victim pick
//		• A YAML/JSON snapshot codec for feeding the checker from files
//
// ✨ Why choose banker?
//
//   - Deterministic – identical input always yields the identical sequence
//   - Total – the core never panics on validated input, never does I/O
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three packages:
//
//	deadlock/  — validation, safety scan, resolution advice (the core)
//	snapshot/  — YAML/JSON snapshot decoding and report encoding
//	cmd/banker — command-line front-end over the two packages above
//
// Quick sketch:
//
//	    allocation ┐
//	    request    ├─→ Validate ─→ Detect ─→ Safe{sequence}
//	    available  ┘                  └────→ Deadlocked{stalled} ─→ Suggest
//
// Dive into deadlock/doc.go for the algorithm walkthrough.
//
//	go get github.com/katalvlaran/banker/deadlock
package banker
