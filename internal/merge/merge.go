// Package merge assembles the final output file from an ordered chain of
// inputs, writing each hypothesized overlap region only once.
package merge

import (
	"fmt"
	"io"
	"os"

	"binmerge/internal/match"
)

// Step names one input file and how many of its leading bytes to skip
// because they duplicate the tail of the previous file.
type Step struct {
	Path       string
	SkipPrefix int64
}

// Plan is the ordered sequence of steps producing the merged output. Built
// once after all pairwise overlaps are resolved; never mutated afterward.
type Plan []Step

// BuildPlan derives the merge plan for paths from the per-gap results.
// results holds one entry per adjacent pair, index-aligned with the gaps:
// results[i] covers the overlap between paths[i] and paths[i+1]. The first
// file is always copied whole; a pair without a match concatenates in full.
func BuildPlan(paths []string, results []match.Scored) Plan {
	plan := make(Plan, 0, len(paths))
	for i, path := range paths {
		var skip int64
		if i > 0 && results[i-1].Found {
			skip = results[i-1].OverlapLen()
		}
		plan = append(plan, Step{Path: path, SkipPrefix: skip})
	}
	return plan
}

// Execute writes the merged output to outputPath and returns the number of
// bytes written. Any open or copy failure aborts the merge; a partial
// output file may remain for the caller to discard.
func (p Plan) Execute(outputPath string) (int64, error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer out.Close()

	var written int64
	for _, step := range p {
		n, err := appendFrom(out, step)
		written += n
		if err != nil {
			return written, err
		}
	}

	if err := out.Close(); err != nil {
		return written, fmt.Errorf("failed to close output file %s: %w", outputPath, err)
	}
	return written, nil
}

func appendFrom(out io.Writer, step Step) (int64, error) {
	in, err := os.Open(step.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file %s: %w", step.Path, err)
	}
	defer in.Close()

	if step.SkipPrefix > 0 {
		if _, err := in.Seek(step.SkipPrefix, io.SeekStart); err != nil {
			return 0, fmt.Errorf("failed to skip overlap in %s: %w", step.Path, err)
		}
	}

	n, err := io.Copy(out, in)
	if err != nil {
		return n, fmt.Errorf("failed to copy %s: %w", step.Path, err)
	}
	return n, nil
}
