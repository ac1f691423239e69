package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binmerge/internal/search"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		name     string
		scored   Scored
		expected float64
	}{
		{
			"perfect overlap",
			Scored{Candidate: search.Candidate{Found: true, Position: 0, PatternLen: 5}},
			1.0,
		},
		{
			"partial overlap",
			Scored{
				Candidate:      search.Candidate{Found: true, Position: 3, PatternLen: 5},
				BytesDiffering: 2,
			},
			6.0 / 8.0,
		},
		{
			"all bytes differ",
			Scored{
				Candidate:      search.Candidate{Found: true, Position: 0, PatternLen: 4},
				BytesDiffering: 4,
			},
			0.0,
		},
		{
			"not found",
			Scored{},
			0.0,
		},
		{
			"zero-length overlap never divides",
			Scored{Candidate: search.Candidate{Found: true}},
			0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.scored.Quality(), 1e-12)
		})
	}
}
