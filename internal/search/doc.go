// Package search locates a byte pattern inside a stream without loading
// the stream into memory.
//
// The searcher keeps a rolling buffer of two blocks so that an occurrence
// split across a block boundary is never missed: the pattern is matched
// against a window whose first byte always lies in the already-validated
// first half, while the freshly read second half covers any straddle.
//
// Key types:
//   - Candidate: outcome of one search (found flag, absolute position,
//     pattern length)
//   - Find: first occurrence at or after a given start offset
package search
