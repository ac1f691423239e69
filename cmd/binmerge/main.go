// Package main provides the CLI entrypoint for binmerge.
//
// binmerge reconstructs a logical file from an ordered sequence of
// physical chunks whose boundaries overlap by an unknown amount:
//   - Takes a short fingerprint from the tail of each file
//   - Locates it in the next file with a streaming block search
//   - Scores each candidate overlap byte by byte
//   - Merges the chain, writing every overlap region only once
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"binmerge/internal/block"
	"binmerge/internal/config"
	"binmerge/internal/match"
	"binmerge/internal/merge"
	"binmerge/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("binmerge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, `Merge binary files with possible overlap.

Usage:
  binmerge [flags] <file> <file>...

Flags:
  -best           keep searching for the best match instead of taking the first
  -output FILE    output file (default output.bin)
  -config FILE    YAML config file
  -yes            merge without asking for confirmation
`)
	}

	var (
		flagBest   bool
		flagOutput string
		flagConfig string
		flagYes    bool
	)
	fs.BoolVar(&flagBest, "best", false, "perform continuous search to find best match")
	fs.StringVar(&flagOutput, "output", "", "output file")
	fs.StringVar(&flagConfig, "config", "", "YAML config file")
	fs.BoolVar(&flagYes, "yes", false, "merge without confirmation")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) < 2 {
		fmt.Fprintln(stderr, "need at least two input files")
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.LoadFile(flagConfig)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cfg = loaded
	}
	// Flags win over config file values.
	if flagBest {
		cfg.Aggressive = true
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}

	results, err := resolveChain(paths, cfg, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprint(stdout, report.Summary(paths, results, cfg.QualityThreshold))
	fmt.Fprint(stdout, "\nMatching files will be merged accordingly (regardless of quality),\nwhile non-matching files will simply be concatenated.\n")

	if !flagYes && !confirm(stdin, stdout) {
		return 0
	}

	plan := merge.BuildPlan(paths, results)
	written, err := plan.Execute(cfg.Output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "wrote %d bytes to %s\n", written, cfg.Output)
	return 0
}

// resolveChain resolves the overlap of every adjacent pair in order. The
// following file of one pair becomes the preceding file of the next, so
// each input is opened exactly once.
func resolveChain(paths []string, cfg *config.Config, stdout io.Writer) ([]match.Scored, error) {
	prev, err := os.Open(paths[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", paths[0], err)
	}
	defer func() { prev.Close() }()

	resolver := match.Resolver{
		Aggressive: cfg.Aggressive,
		Threshold:  cfg.QualityThreshold,
	}

	results := make([]match.Scored, 0, len(paths)-1)
	for _, path := range paths[1:] {
		fingerprint, err := block.Tail(prev, cfg.FingerprintLength)
		if err != nil {
			return nil, err
		}

		next, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
		}

		fmt.Fprintf(stdout, "Looking for byte pattern in file %s:\n%s\n",
			filepath.Base(path), report.HexDump(fingerprint))

		// A zero-length predecessor yields no fingerprint; treat the pair
		// as non-overlapping rather than searching for nothing.
		var scored match.Scored
		if len(fingerprint) > 0 {
			scored, err = resolver.Resolve(prev, next, fingerprint)
			if err != nil {
				next.Close()
				return nil, err
			}
		}
		results = append(results, scored)

		fmt.Fprint(stdout, report.PairDetail(scored))
		fmt.Fprintln(stdout, "---------")

		prev.Close()
		prev = next
	}

	return results, nil
}

// confirm asks the interactive merge question and reports whether the user
// agreed. Anything but y or Y declines.
func confirm(stdin io.Reader, stdout io.Writer) bool {
	fmt.Fprint(stdout, "Merge files (y/n)? ")

	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		return false
	}
	answer := strings.TrimSpace(sc.Text())
	return answer == "y" || answer == "Y"
}
