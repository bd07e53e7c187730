package dup

import (
	"runtime"
	"strings"
	"sync"
)

// fileLines is a file split into line views. The strings alias the source
// text and must not outlive it.
type fileLines struct {
	name  string
	lines []string
}

func splitFiles(files []Source) []fileLines {
	out := make([]fileLines, len(files))
	for i, f := range files {
		out[i] = fileLines{name: f.Name(), lines: splitLines(f.Text())}
	}
	return out
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; it is not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// lineIndex maps trimmed line text to every location it occurs at.
type lineIndex map[string][]Location

// buildLineIndex scans all files in parallel, one file per work unit. Each
// worker builds an index it owns; a single reducer folds them. Fold order is
// irrelevant because the merge is a union of location lists per key.
func buildLineIndex(files []fileLines) lineIndex {
	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	results := make(chan lineIndex, len(files))
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results <- indexFile(files[i])
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	return foldLineIndexes(results)
}

func indexFile(f fileLines) lineIndex {
	local := make(lineIndex)
	for i, line := range f.lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		local[trimmed] = append(local[trimmed], Location{File: f.name, Line: uint32(i + 1)})
	}
	return local
}

func foldLineIndexes(results <-chan lineIndex) lineIndex {
	merged := make(lineIndex)
	for local := range results {
		for line, locs := range local {
			merged[line] = append(merged[line], locs...)
		}
	}
	return merged
}

// filterDuplicates keeps only lines occurring at two or more locations.
func filterDuplicates(index lineIndex) lineIndex {
	dups := make(lineIndex)
	for line, locs := range index {
		if len(locs) > 1 {
			dups[line] = locs
		}
	}
	return dups
}
