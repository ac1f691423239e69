// Package block provides fixed-size block reads over byte streams,
// with explicit end-of-stream detection and tail extraction for
// fingerprinting.
package block

import (
	"errors"
	"fmt"
	"io"
)

// Size is the fixed block size used for all sequential reads.
const Size = 4096

// ErrShortRead reports a read that delivered fewer bytes than requested
// while the stream had not reached end-of-input. It signals an underlying
// I/O fault rather than a normal end-of-file.
var ErrShortRead = errors.New("short read before end of stream")

// Read fills buf from r and reports how many bytes arrived and whether the
// stream is exhausted. A short read at end-of-stream is normal and returns
// eof=true with a nil error; a short read for any other reason wraps
// ErrShortRead.
func Read(r io.Reader, buf []byte) (n int, eof bool, err error) {
	n, err = io.ReadFull(r, buf)
	switch {
	case err == nil:
		return n, false, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, true, nil
	default:
		return n, false, fmt.Errorf("%w: got %d of %d bytes: %v", ErrShortRead, n, len(buf), err)
	}
}

// Tail returns the last n bytes of r. When the stream holds fewer than n
// bytes the whole stream is returned. The read cursor is left at
// end-of-stream.
func Tail(r io.ReadSeeker, n int) ([]byte, error) {
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to seek to end: %w", err)
	}

	if int64(n) > end {
		n = int(end)
	}
	if n == 0 {
		return nil, nil
	}

	if _, err := r.Seek(-int64(n), io.SeekEnd); err != nil {
		return nil, fmt.Errorf("failed to seek to tail: %w", err)
	}

	buf := make([]byte, n)
	if _, _, err := Read(r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}
