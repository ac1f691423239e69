// Package report classifies per-pair overlap results and renders the
// human-readable transcript and summary.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"binmerge/internal/match"
)

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome classifies the resolution of one adjacent file pair.
type Outcome int

const (
	// OutcomeNoMatch: the fingerprint does not occur in the following file;
	// the pair is concatenated in full.
	OutcomeNoMatch Outcome = iota

	// OutcomeMatched: an overlap was found with quality clearing the
	// configured threshold.
	OutcomeMatched

	// OutcomeLowQuality: an overlap was found but its quality is at or
	// below the threshold. It is still merged; the classification exists so
	// the user can judge the result.
	OutcomeLowQuality
)

// Classify maps a scored result onto an Outcome given the quality
// threshold in effect.
func Classify(s match.Scored, threshold float64) Outcome {
	switch {
	case !s.Found:
		return OutcomeNoMatch
	case s.Quality() > threshold:
		return OutcomeMatched
	default:
		return OutcomeLowQuality
	}
}

// HexDump renders a fingerprint as space-separated two-digit hex bytes.
func HexDump(fingerprint []byte) string {
	var sb strings.Builder
	for i, b := range fingerprint {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// PairDetail renders the transcript lines for one resolved pair.
func PairDetail(s match.Scored) string {
	if !s.Found {
		return "pattern not found\n"
	}
	return fmt.Sprintf(
		"found pattern at position %#x\noverlap match quality: %.2f%% (%d out of %d bytes differ)\n",
		s.Position, 100*s.Quality(), s.BytesDiffering, s.OverlapLen(),
	)
}

// Summary renders the final overview: every input file in merge order with
// the overlap decision for each gap between consecutive files. Low-quality
// overlaps are flagged so the user can judge them before confirming the
// merge; they are merged all the same.
func Summary(paths []string, results []match.Scored, threshold float64) string {
	var sb strings.Builder
	sb.WriteString("Summary:\n")

	for i, path := range paths {
		fmt.Fprintf(&sb, "File %d: %s\n", i+1, filepath.Base(path))

		if i == len(paths)-1 {
			break
		}

		s := results[i]
		switch Classify(s, threshold) {
		case OutcomeNoMatch:
			sb.WriteString(" |-> no match\n")
		case OutcomeMatched:
			fmt.Fprintf(&sb, " |-> overlap %.2f%% (out of %d bytes)\n", 100*s.Quality(), s.OverlapLen())
		case OutcomeLowQuality:
			fmt.Fprintf(&sb, " |-> overlap %.2f%% (out of %d bytes, low quality)\n", 100*s.Quality(), s.OverlapLen())
		}
	}

	return sb.String()
}
