package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binmerge/internal/match"
	"binmerge/internal/search"
)

func scored(position int64, patternLen int, differing int64) match.Scored {
	return match.Scored{
		Candidate:      search.Candidate{Found: true, Position: position, PatternLen: patternLen},
		BytesDiffering: differing,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		result   match.Scored
		expected Outcome
	}{
		{"no match", match.Scored{}, OutcomeNoMatch},
		{"perfect overlap", scored(0, 5, 0), OutcomeMatched},
		{"above threshold", scored(3, 5, 1), OutcomeMatched}, // quality 7/8
		{"at threshold", scored(5, 5, 3), OutcomeLowQuality}, // quality 7/10
		{"poor overlap", scored(0, 5, 4), OutcomeLowQuality}, // quality 1/5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.result, 0.7))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "NoMatch", OutcomeNoMatch.String())
	assert.Equal(t, "Matched", OutcomeMatched.String())
	assert.Equal(t, "LowQuality", OutcomeLowQuality.String())
}

func TestHexDump(t *testing.T) {
	assert.Equal(t, "", HexDump(nil))
	assert.Equal(t, "00 ff 41", HexDump([]byte{0x00, 0xff, 'A'}))
}

func TestPairDetail(t *testing.T) {
	assert.Equal(t, "pattern not found\n", PairDetail(match.Scored{}))

	detail := PairDetail(scored(16, 4, 0))
	assert.Contains(t, detail, "position 0x10")
	assert.Contains(t, detail, "100.00%")
	assert.Contains(t, detail, "0 out of 20 bytes differ")
}

func TestSummary(t *testing.T) {
	paths := []string{"/tmp/in/a.bin", "/tmp/in/b.bin", "/tmp/in/c.bin", "/tmp/in/d.bin"}
	results := []match.Scored{scored(0, 5, 0), {}, scored(0, 5, 4)}

	got := Summary(paths, results, 0.7)

	assert.Equal(t, "Summary:\n"+
		"File 1: a.bin\n"+
		" |-> overlap 100.00% (out of 5 bytes)\n"+
		"File 2: b.bin\n"+
		" |-> no match\n"+
		"File 3: c.bin\n"+
		" |-> overlap 20.00% (out of 5 bytes, low quality)\n"+
		"File 4: d.bin\n", got)
}
