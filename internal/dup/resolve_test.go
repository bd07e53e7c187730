package dup

import "testing"

func entry(content string, locs ...Location) *blockEntry {
	return &blockEntry{content: content, locs: locs}
}

func TestRankBlocksOrdersBySizeThenLength(t *testing.T) {
	blocks := blockMap{
		1: entry("a\nb", Location{File: "f", Line: 1}),
		2: entry("one line but much longer than the rest", Location{File: "f", Line: 9}),
		3: entry("aaa\nbbb", Location{File: "f", Line: 5}),
	}
	ranked := rankBlocks(blocks)

	if got := countNonEmptyLines(ranked[0].content); got != 2 {
		t.Fatalf("first ranked block has %d non-empty lines, want 2", got)
	}
	if ranked[0].content != "aaa\nbbb" {
		t.Errorf("first block = %q, want the longer 2-line block", ranked[0].content)
	}
	if ranked[1].content != "a\nb" {
		t.Errorf("second block = %q, want the shorter 2-line block", ranked[1].content)
	}
	if ranked[2].content != "one line but much longer than the rest" {
		t.Errorf("third block = %q, want the single-line block", ranked[2].content)
	}
}

func TestResolveOverlapsDropsClaimedBlocks(t *testing.T) {
	big := entry("l1\nl2\nl3",
		Location{File: "a", Line: 1},
		Location{File: "b", Line: 1},
	)
	// Same starting offsets as big, fully shadowed by its claims.
	shadowed := entry("l1\nl2",
		Location{File: "a", Line: 1},
		Location{File: "b", Line: 1},
	)
	disjoint := entry("x1\nx2",
		Location{File: "a", Line: 10},
		Location{File: "b", Line: 20},
	)

	result := resolveOverlaps([]*blockEntry{big, shadowed, disjoint})

	if len(result) != 2 {
		t.Fatalf("got %d accepted blocks, want 2: %+v", len(result), result)
	}
	if result[0].Content != "l1\nl2\nl3" {
		t.Errorf("first accepted = %q, want the big block", result[0].Content)
	}
	if result[1].Content != "x1\nx2" {
		t.Errorf("second accepted = %q, want the disjoint block", result[1].Content)
	}
}

func TestResolveOverlapsKeepsFreeLocationsOnly(t *testing.T) {
	big := entry("l1\nl2\nl3",
		Location{File: "a", Line: 1},
		Location{File: "b", Line: 1},
	)
	// One location collides with big, two remain free: block survives with
	// just the free ones.
	partial := entry("l1\nl2",
		Location{File: "a", Line: 2},
		Location{File: "a", Line: 50},
		Location{File: "b", Line: 40},
	)

	result := resolveOverlaps([]*blockEntry{big, partial})

	if len(result) != 2 {
		t.Fatalf("got %d accepted blocks, want 2: %+v", len(result), result)
	}
	locs := result[1].Locations
	if len(locs) != 2 {
		t.Fatalf("partial block accepted with %d locations, want 2: %v", len(locs), locs)
	}
	if containsLoc(locs, Location{File: "a", Line: 2}) {
		t.Errorf("claimed location a:2 should have been dropped: %v", locs)
	}
}

func TestResolveOverlapsRejectsBelowTwoFree(t *testing.T) {
	big := entry("l1\nl2\nl3",
		Location{File: "a", Line: 1},
		Location{File: "b", Line: 1},
	)
	reduced := entry("l1\nl2",
		Location{File: "a", Line: 1},
		Location{File: "a", Line: 30},
	)

	result := resolveOverlaps([]*blockEntry{big, reduced})
	if len(result) != 1 {
		t.Fatalf("got %d accepted blocks, want only the big one: %+v", len(result), result)
	}
}

func TestStripCommonIndent(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "uniform spaces",
			lines: []string{"    a", "    b"},
			want:  "a\nb",
		},
		{
			name:  "relative indentation preserved",
			lines: []string{"  a", "      b", "  c"},
			want:  "a\n    b\nc",
		},
		{
			name:  "no indentation",
			lines: []string{"a", "  b"},
			want:  "a\n  b",
		},
		{
			name:  "empty lines ignored for the minimum",
			lines: []string{"    a", "", "    b"},
			want:  "a\n\nb",
		},
		{
			name:  "tabs count as characters",
			lines: []string{"\ta", "\tb"},
			want:  "a\nb",
		},
	}
	for _, c := range cases {
		if got := stripCommonIndent(c.lines); got != c.want {
			t.Errorf("%s: stripCommonIndent(%q) = %q, want %q", c.name, c.lines, got, c.want)
		}
	}
}

func TestTrimmedKeyIgnoresIndentation(t *testing.T) {
	a := trimmedKey([]string{"    foo();", "        bar();"})
	b := trimmedKey([]string{"foo();", "bar();"})
	if a != b {
		t.Errorf("keys differ for same logical block: %q vs %q", a, b)
	}
}
