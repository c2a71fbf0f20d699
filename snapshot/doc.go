// Package snapshot decodes allocation snapshots from YAML (or JSON, a YAML
// subset) and encodes detection reports back out.
//
// What:
//
//   - Snapshot mirrors the core's inputs: process/resource counts, the
//     allocation and request matrices, and the available vector.
//   - Load / Parse decode a document and infer omitted dimensions from the
//     matrix shapes.
//   - Report captures one detection run (outcome, sequence or stalled set,
//     strategies, victim) in an encodable form.
//
// Why:
//
//	The core operates on already-parsed integer matrices; this package is
//	the caller-side transport that turns files and pipes into those
//	matrices. Non-numeric text fails here, at decode time, and never
//	reaches the core.
//
// Errors:
//
//   - ErrDecode: the document is not valid YAML/JSON or holds non-integer
//     entries.
//
// Shape and value validation is deliberately NOT done here — that is the
// core's deadlock.Validate contract.
package snapshot
