package dup

import (
	"sort"
	"strings"
)

// rankBlocks orders candidates so the resolver sees larger duplicates first:
// most non-empty lines, then longest content. The final content tie-break
// only pins the order for repeatability.
func rankBlocks(blocks blockMap) []*blockEntry {
	ranked := make([]*blockEntry, 0, len(blocks))
	for _, entry := range blocks {
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		al, bl := countNonEmptyLines(a.content), countNonEmptyLines(b.content)
		if al != bl {
			return al > bl
		}
		if len(a.content) != len(b.content) {
			return len(a.content) > len(b.content)
		}
		return a.content < b.content
	})
	return ranked
}

// resolveOverlaps performs the greedy, strictly sequential acceptance pass.
// A candidate location is free iff none of its covered lines is claimed by a
// previously accepted block; a block is accepted with its free locations iff
// at least two remain, and only then are its lines claimed.
func resolveOverlaps(ranked []*blockEntry) []Block {
	claimed := make(map[Location]int)
	var result []Block

	for _, entry := range ranked {
		linesCount := uint32(strings.Count(entry.content, "\n") + 1)

		var free []Location
		for _, loc := range entry.locs {
			ok := true
			for l := loc.Line; l < loc.Line+linesCount; l++ {
				if _, used := claimed[Location{File: loc.File, Line: l}]; used {
					ok = false
					break
				}
			}
			if ok {
				free = append(free, loc)
			}
		}

		if len(free) < 2 {
			continue
		}
		idx := len(result)
		for _, loc := range free {
			for l := loc.Line; l < loc.Line+linesCount; l++ {
				claimed[Location{File: loc.File, Line: l}] = idx
			}
		}
		result = append(result, Block{Content: entry.content, Locations: free})
	}
	return result
}
