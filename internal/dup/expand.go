package dup

import (
	"runtime"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// blockEntry accumulates the locations of one candidate block. Entries are
// keyed by the xxhash of the per-line-trimmed block text, so the same logical
// block found at differently indented occurrences lands in one entry. The
// stored content keeps the relative indentation of the flattest occurrence.
type blockEntry struct {
	content string
	locs    []Location
}

type blockMap map[uint64]*blockEntry

// expandBlocks discovers every candidate block: for each occurrence of a
// duplicate line it extends the match forward against every other occurrence
// of that line, across heterogeneous file pairs. Files are processed in
// parallel; per-file results are folded by a single reducer. The same logical
// block is rediscovered from both match directions and collapses through the
// content-keyed accumulation.
func expandBlocks(files []fileLines, dups lineIndex) blockMap {
	byName := make(map[string][]string, len(files))
	for _, f := range files {
		byName[f.name] = f.lines
	}

	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	results := make(chan blockMap, len(files))
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results <- expandFile(files[i], byName, dups)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	return foldBlockMaps(results)
}

// expandFile grows candidate blocks starting at every duplicate line of one
// file. All results land in a map owned by the caller's worker.
func expandFile(f fileLines, byName map[string][]string, dups lineIndex) blockMap {
	local := make(blockMap)
	lines := f.lines

	for startIdx := range lines {
		trimmed := strings.TrimSpace(lines[startIdx])
		if trimmed == "" {
			continue
		}
		locs, ok := dups[trimmed]
		if !ok {
			continue
		}

		here := Location{File: f.name, Line: uint32(startIdx + 1)}
		for _, other := range locs {
			if other == here {
				continue
			}
			otherLines, ok := byName[other.File]
			if !ok {
				continue
			}
			otherIdx := int(other.Line) - 1

			maxLen := len(lines) - startIdx
			if rem := len(otherLines) - otherIdx; rem < maxLen {
				maxLen = rem
			}

			matchLen := 0
			for off := 0; off < maxLen; off++ {
				if strings.TrimSpace(lines[startIdx+off]) != strings.TrimSpace(otherLines[otherIdx+off]) {
					break
				}
				matchLen++
			}
			if matchLen < 1 {
				continue
			}

			block := lines[startIdx : startIdx+matchLen]
			key := xxhash.Sum64String(trimmedKey(block))
			content := stripCommonIndent(block)
			entry, ok := local[key]
			if !ok {
				entry = &blockEntry{content: content}
				local[key] = entry
			} else if flatter(content, entry.content) {
				entry.content = content
			}
			if !containsLoc(entry.locs, here) {
				entry.locs = append(entry.locs, here)
			}
			if !containsLoc(entry.locs, other) {
				entry.locs = append(entry.locs, other)
			}
		}
	}
	return local
}

func foldBlockMaps(results <-chan blockMap) blockMap {
	merged := make(blockMap)
	for local := range results {
		for key, entry := range local {
			target, ok := merged[key]
			if !ok {
				merged[key] = entry
				continue
			}
			if flatter(entry.content, target.content) {
				target.content = entry.content
			}
			for _, loc := range entry.locs {
				if !containsLoc(target.locs, loc) {
					target.locs = append(target.locs, loc)
				}
			}
		}
	}
	return merged
}

// trimmedKey is the comparison form of a block: its lines trimmed and joined.
// Two occurrences of the same logical block always share this key, whatever
// their indentation.
func trimmedKey(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String()
}

// flatter reports whether a should replace b as the stored representative:
// less residual indentation (shorter), with a lexicographic tie-break so the
// choice never depends on discovery order.
func flatter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// stripCommonIndent joins the block's original lines with the minimum
// leading-whitespace width of its non-empty lines removed from every line.
func stripCommonIndent(lines []string) string {
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	stripped := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= minIndent {
			stripped[i] = line[minIndent:]
		} else {
			stripped[i] = line
		}
	}
	return strings.Join(stripped, "\n")
}

func countNonEmptyLines(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
