package dup

// Find runs duplicate detection over the given files. With minLines <= 1 it
// reports single duplicated lines (fast path); otherwise it runs full block
// expansion and keeps blocks with at least minLines non-empty lines. The
// result is ordered by acceptance order, largest blocks first, and satisfies
// the no-overlap and two-location invariants.
func Find(files []Source, minLines int) ([]Block, error) {
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	if minLines <= 1 {
		return findDuplicateLines(files), nil
	}

	split := splitFiles(files)
	dups := filterDuplicates(buildLineIndex(split))
	candidates := expandBlocks(split, dups)
	accepted := resolveOverlaps(rankBlocks(candidates))

	kept := accepted[:0]
	for _, b := range accepted {
		if countNonEmptyLines(b.Content) >= minLines {
			kept = append(kept, b)
		}
	}
	return kept, nil
}
