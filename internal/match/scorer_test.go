package match

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binmerge/internal/block"
)

func TestCountDifferingIdentical(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 1024) // two full blocks

	differing, err := CountDiffering(bytes.NewReader(data), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(0), differing)
}

func TestCountDifferingExactCount(t *testing.T) {
	a := make([]byte, 2*block.Size)
	b := make([]byte, 2*block.Size)
	// Flip bytes on both sides of the block boundary and at the very end.
	for _, i := range []int{0, block.Size - 1, block.Size, 2*block.Size - 1} {
		b[i] = 0xff
	}

	differing, err := CountDiffering(bytes.NewReader(a), bytes.NewReader(b), int64(len(a)))
	require.NoError(t, err)
	assert.Equal(t, int64(4), differing)
}

func TestCountDifferingBoundedByLength(t *testing.T) {
	a := strings.NewReader("AAAAAAAAAA")
	b := strings.NewReader("BBBBBAAAAA")

	// Only the first 5 bytes are inside the requested region.
	differing, err := CountDiffering(a, b, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), differing)
}

func TestCountDifferingTruncatesToShorterStream(t *testing.T) {
	// b ends after 4 bytes; the missing tail is never compared and never
	// counted as differing.
	a := strings.NewReader("XXXXYYYY")
	b := strings.NewReader("XXXZ")

	differing, err := CountDiffering(a, b, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), differing)
}

func TestCountDifferingZeroLength(t *testing.T) {
	differing, err := CountDiffering(strings.NewReader("a"), strings.NewReader("b"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), differing)
}
