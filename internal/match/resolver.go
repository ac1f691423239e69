package match

import (
	"fmt"
	"io"

	"binmerge/internal/search"
)

// DefaultThreshold is the quality above which the resolver stops looking
// for a better candidate.
const DefaultThreshold = 0.7

// Resolver selects the best-scoring overlap between a preceding and a
// following stream. Behavior is fully determined by its fields; there is no
// ambient mode state.
type Resolver struct {
	// Aggressive keeps searching past a first match whose quality does not
	// clear Threshold, retaining the highest-quality candidate seen. When
	// false the first match is accepted unconditionally.
	Aggressive bool

	// Threshold is the early-stop quality bound for aggressive mode. It is
	// a pragmatic exit, not a correctness bound: when no candidate clears
	// it, the best one found before stream exhaustion wins.
	Threshold float64
}

// Resolve searches next for fingerprint and scores every candidate overlap
// by comparing the tail of prev against the head of next. It returns the
// selected match, or a zero Scored (Found=false, quality 0) when the
// fingerprint does not occur in next.
//
// Both streams have their read cursors repositioned freely; neither is
// written to.
func (rv Resolver) Resolve(prev, next io.ReadSeeker, fingerprint []byte) (Scored, error) {
	var best Scored

	cand, err := search.Find(next, fingerprint, 0)
	if err != nil {
		return Scored{}, err
	}

	for cand.Found {
		overlap := cand.OverlapLen()

		if _, err := prev.Seek(-overlap, io.SeekEnd); err != nil {
			return Scored{}, fmt.Errorf("failed to position preceding stream at overlap: %w", err)
		}
		if _, err := next.Seek(0, io.SeekStart); err != nil {
			return Scored{}, fmt.Errorf("failed to rewind following stream: %w", err)
		}

		differing, err := CountDiffering(prev, next, overlap)
		if err != nil {
			return Scored{}, err
		}

		scored := Scored{Candidate: cand, BytesDiffering: differing}
		if scored.Quality() > best.Quality() {
			best = scored
		}

		if best.Quality() > rv.Threshold || !rv.Aggressive {
			break
		}

		cand, err = search.Find(next, fingerprint, cand.Position+1)
		if err != nil {
			return Scored{}, err
		}
	}

	return best, nil
}
