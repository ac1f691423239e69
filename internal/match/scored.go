package match

import "binmerge/internal/search"

// Scored is a search candidate together with the result of comparing the
// full candidate overlap region byte by byte. Immutable after scoring.
type Scored struct {
	search.Candidate

	// BytesDiffering counts mismatches within the first OverlapLen() bytes
	// of the following file compared against the last OverlapLen() bytes of
	// the preceding file. Always <= OverlapLen().
	BytesDiffering int64
}

// Quality returns the fraction of the overlap region whose bytes agree,
// in [0,1]. A missing match or an empty overlap scores 0.
func (s Scored) Quality() float64 {
	overlap := s.OverlapLen()
	if !s.Found || overlap == 0 {
		return 0
	}
	return float64(overlap-s.BytesDiffering) / float64(overlap)
}
