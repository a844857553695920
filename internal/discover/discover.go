// Package discover finds conversion jobs in a directory.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Job pairs one input file with the output file its positions go to.
// The output keeps the input's directory and basename and swaps the
// suffix.
type Job struct {
	Input  string
	Output string
}

// Jobs returns one Job per file in dir whose name ends with inSuffix,
// sorted by input path for a deterministic processing order. An empty
// result is not an error; the caller decides what no candidates means.
func Jobs(dir, inSuffix, outSuffix string) ([]Job, error) {
	pattern := filepath.Join(dir, "*"+inSuffix)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	jobs := make([]Job, 0, len(matches))
	for _, in := range matches {
		if info, statErr := os.Stat(in); statErr != nil || info.IsDir() {
			continue
		}
		jobs = append(jobs, Job{
			Input:  in,
			Output: strings.TrimSuffix(in, inSuffix) + outSuffix,
		})
	}
	return jobs, nil
}
