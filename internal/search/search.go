package search

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"binmerge/internal/block"
)

// ErrEmptyPattern is returned by Find for a zero-length pattern.
var ErrEmptyPattern = errors.New("search pattern is empty")

// Candidate is the outcome of a single pattern search. Position is the
// absolute offset of the first matched byte within the searched stream,
// meaningful only when Found is true.
type Candidate struct {
	Found      bool
	Position   int64
	PatternLen int
}

// OverlapLen returns the number of bytes from the start of the searched
// stream hypothesized to duplicate the tail of the preceding stream:
// everything up to and including the matched pattern.
func (c Candidate) OverlapLen() int64 {
	return c.Position + int64(c.PatternLen)
}

// Find returns the first occurrence of pattern in r at or after start, or a
// Candidate with Found=false when the stream is exhausted without a match.
// Resuming with start = previous Position+1 never yields a position at or
// before the previous one.
func Find(r io.ReadSeeker, pattern []byte, start int64) (Candidate, error) {
	if len(pattern) == 0 {
		return Candidate{}, ErrEmptyPattern
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return Candidate{}, fmt.Errorf("failed to seek to search start: %w", err)
	}

	// Rolling buffer: first half holds the previous block, second half the
	// block read this iteration.
	buf := make([]byte, 2*block.Size)

	prev, eof, err := block.Read(r, buf[:block.Size])
	if err != nil {
		return Candidate{}, err
	}

	// Absolute offset of buf[0] within the stream.
	position := start

	for !eof || prev >= len(pattern) {
		var n int
		if !eof {
			n, eof, err = block.Read(r, buf[prev:prev+block.Size])
			if err != nil {
				return Candidate{}, err
			}
		}
		filled := prev + n

		// The first byte of a match must lie in the first half; the window
		// extends far enough into the second half to cover a straddle.
		window := min(prev+len(pattern)-1, filled)
		if i := bytes.Index(buf[:window], pattern); i >= 0 {
			return Candidate{
				Found:      true,
				Position:   position + int64(i),
				PatternLen: len(pattern),
			}, nil
		}

		// Shift the fresh block down to become the new first half.
		copy(buf, buf[prev:filled])
		position += int64(prev)
		prev = n
	}

	return Candidate{PatternLen: len(pattern)}, nil
}
