package dup

import (
	"sort"
	"strings"
)

// minLineChars is the trimmed-length floor for the single-line fast path;
// shorter lines are noise (braces, keywords) no matter how often they repeat.
const minLineChars = 5

// mergeFileLines flattens all files into scanned line entries, keeping only
// non-blank lines whose trimmed text passes the filter.
func mergeFileLines(files []Source, keep func(trimmed string) bool) []LineEntry {
	var entries []LineEntry
	for _, f := range files {
		for i, line := range splitLines(f.Text()) {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || !keep(trimmed) {
				continue
			}
			entries = append(entries, LineEntry{File: f.Name(), Line: uint32(i + 1), Text: trimmed})
		}
	}
	return entries
}

// findDuplicateLines is the fast path for minLines <= 1: single trimmed
// lines longer than minLineChars occurring at two or more locations, longest
// first.
func findDuplicateLines(files []Source) []Block {
	entries := mergeFileLines(files, func(trimmed string) bool {
		return len(trimmed) > minLineChars
	})

	index := make(lineIndex)
	for _, e := range entries {
		index[e.Text] = append(index[e.Text], Location{File: e.File, Line: e.Line})
	}

	var blocks []Block
	for line, locs := range index {
		if len(locs) > 1 {
			blocks = append(blocks, Block{Content: line, Locations: locs})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		a, b := blocks[i], blocks[j]
		if len(a.Content) != len(b.Content) {
			return len(a.Content) > len(b.Content)
		}
		return a.Content < b.Content
	})
	return blocks
}
