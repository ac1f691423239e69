package match

import (
	"io"

	"binmerge/internal/block"
)

// CountDiffering compares up to length bytes of a and b block by block and
// returns the number of positions at which they disagree.
//
// Comparison is truncated to the shorter stream: bytes past the end of an
// exhausted stream are never compared and are not counted as mismatches.
// Callers that need the hypothesized overlap length as denominator keep it
// themselves (see Scored.Quality).
func CountDiffering(a, b io.Reader, length int64) (int64, error) {
	var bufA, bufB [block.Size]byte
	var differing int64

	for length > 0 {
		want := int64(block.Size)
		if length < want {
			want = length
		}

		nA, eofA, err := block.Read(a, bufA[:want])
		if err != nil {
			return differing, err
		}
		nB, eofB, err := block.Read(b, bufB[:want])
		if err != nil {
			return differing, err
		}

		n := min(nA, nB)
		for i := 0; i < n; i++ {
			if bufA[i] != bufB[i] {
				differing++
			}
		}
		length -= int64(n)

		if eofA || eofB {
			break
		}
	}

	return differing, nil
}
